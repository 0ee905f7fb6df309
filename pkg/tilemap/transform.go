package tilemap

import "golang.org/x/image/math/f64"

// Identity is the identity affine transform.
var Identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// Translation returns a transform that moves points by (x, y).
func Translation(x, y float64) f64.Aff3 {
	return f64.Aff3{1, 0, x, 0, 1, y}
}

// Mul returns a*b, i.e. b is applied first.
func Mul(a, b f64.Aff3) f64.Aff3 {
	return f64.Aff3{
		a[0]*b[0] + a[1]*b[3],
		a[0]*b[1] + a[1]*b[4],
		a[0]*b[2] + a[1]*b[5] + a[2],
		a[3]*b[0] + a[4]*b[3],
		a[3]*b[1] + a[4]*b[4],
		a[3]*b[2] + a[4]*b[5] + a[5],
	}
}

// Apply transforms p by m.
func Apply(m f64.Aff3, p f64.Vec2) f64.Vec2 {
	return f64.Vec2{
		m[0]*p[0] + m[1]*p[1] + m[2],
		m[3]*p[0] + m[4]*p[1] + m[5],
	}
}

// Invert returns the inverse of m. ok is false for singular transforms.
func Invert(m f64.Aff3) (inv f64.Aff3, ok bool) {
	det := m[0]*m[4] - m[1]*m[3]
	if det == 0 {
		return f64.Aff3{}, false
	}
	a := m[4] / det
	b := -m[1] / det
	d := -m[3] / det
	e := m[0] / det
	return f64.Aff3{
		a, b, -(a*m[2] + b*m[5]),
		d, e, -(d*m[2] + e*m[5]),
	}, true
}
