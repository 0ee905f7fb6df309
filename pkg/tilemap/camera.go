package tilemap

// Camera maps world space (y up, origin at the center of the view) to
// screen pixels (y down, origin top-left).
type Camera struct {
	ScreenWidth, ScreenHeight float64
	X, Y                      float64 // world point shown at the screen center
	Zoom                      float64
}

func NewCamera(screenWidth, screenHeight int) *Camera {
	return &Camera{
		ScreenWidth:  float64(screenWidth),
		ScreenHeight: float64(screenHeight),
		Zoom:         1,
	}
}

// WorldToScreen returns the pixel position of a world point.
func (c *Camera) WorldToScreen(x, y float64) (float64, float64) {
	return c.ScreenWidth/2 + (x-c.X)*c.Zoom, c.ScreenHeight/2 - (y-c.Y)*c.Zoom
}

// ScreenToWorld is the inverse of WorldToScreen.
func (c *Camera) ScreenToWorld(sx, sy float64) (float64, float64) {
	if c.Zoom == 0 {
		return c.X, c.Y
	}
	return c.X + (sx-c.ScreenWidth/2)/c.Zoom, c.Y - (sy-c.ScreenHeight/2)/c.Zoom
}

// Scale converts a world length to pixels.
func (c *Camera) Scale(length float64) float64 {
	return length * c.Zoom
}
