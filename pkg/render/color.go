// pkg/render/color.go
package render

import "image/color"

// MapColors holds the colors used for the tile map and its markers.
type MapColors struct {
	BackgroundColor   color.RGBA
	TileColor         color.RGBA
	TileAltColor      color.RGBA
	TileGridColor     color.RGBA
	SelectedTileColor color.RGBA
	BuiltTileColor    color.RGBA
	BuildZoneColor    color.RGBA
	WaypointColor     color.RGBA
	FinishColor       color.RGBA
	SpawnerColor      color.RGBA
	TextLightColor    color.RGBA
	StrokeWidth       float32
}

// EntityColors holds the colors of moving things.
type EntityColors struct {
	CreepColor       color.RGBA
	HealthbarBgColor color.RGBA
	HealthbarColor   color.RGBA
	ArrowTowerColor  color.RGBA
	BombTowerColor   color.RGBA
	ArrowColor       color.RGBA
	BombColor        color.RGBA
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TileShade picks a fill for a tile texture. Without texture images each
// texture index gets its own shade between base and alt.
func TileShade(base, alt color.RGBA, tileset int, textureIndex uint32) color.RGBA {
	if (int(textureIndex)+tileset)%2 == 0 {
		return base
	}
	return alt
}
