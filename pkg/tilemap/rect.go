package tilemap

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Rect is an axis-aligned rectangle. Min <= Max on both axes.
type Rect struct {
	Min, Max f64.Vec2
}

// NewRect builds a rectangle from two opposite corners in any order.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		Min: f64.Vec2{math.Min(x0, x1), math.Min(y0, y1)},
		Max: f64.Vec2{math.Max(x0, x1), math.Max(y0, y1)},
	}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p f64.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] && p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

func (r Rect) Width() float64  { return r.Max[0] - r.Min[0] }
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

// TransformRect maps both corners of r through m. Only meaningful for
// transforms without rotation.
func TransformRect(m f64.Aff3, r Rect) Rect {
	a := Apply(m, r.Min)
	b := Apply(m, r.Max)
	return NewRect(a[0], a[1], b[0], b[1])
}
