// pkg/utils/math.go
package utils

import "math"

// DistanceSq returns the squared distance between (ax, ay) and (bx, by).
func DistanceSq(ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	return dx*dx + dy*dy
}

// Normalize returns (x, y) scaled to unit length. The zero vector stays zero.
func Normalize(x, y float64) (float64, float64) {
	l := math.Hypot(x, y)
	if l == 0 {
		return 0, 0
	}
	return x / l, y / l
}

// Direction returns the unit vector pointing from (fromX, fromY) to (toX, toY).
func Direction(fromX, fromY, toX, toY float64) (float64, float64) {
	return Normalize(toX-fromX, toY-fromY)
}
