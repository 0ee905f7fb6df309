// internal/utils/math.go
package utils

import "math"

// Lerp performs linear interpolation between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Angle returns the heading of (dx, dy) in radians, 0 pointing along +X.
func Angle(dx, dy float64) float64 {
	return math.Atan2(dy, dx)
}

// ArcHeight returns the height of a parabolic arc at the given travel
// fraction: 0 at both ends, peak at the midpoint.
func ArcHeight(peak, fraction float64) float64 {
	if fraction < 0 {
		fraction = 0
	} else if fraction > 1 {
		fraction = 1
	}
	c := 2 * (0.5 - math.Abs(fraction-0.5))
	return peak * c * c
}
