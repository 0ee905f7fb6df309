// pkg/tilemap/grid.go
package tilemap

import (
	"math"

	"golang.org/x/image/math/f64"
)

// TilePos is a cell coordinate in a grid, origin at the bottom-left cell.
type TilePos struct {
	X, Y int
}

// Grid describes an orthogonal tile grid and its placement in the world.
// Transform maps map-local coordinates (origin at the bottom-left corner of
// cell 0,0, y up) to world coordinates.
type Grid struct {
	Width, Height         int
	TileWidth, TileHeight float64
	Transform             f64.Aff3
}

// NewGrid returns a grid centered on the world origin.
func NewGrid(width, height int, tileWidth, tileHeight float64) *Grid {
	return &Grid{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Transform:  CenteredTransform(width, height, tileWidth, tileHeight),
	}
}

// CenteredTransform places a width x height map so its center sits on the world origin.
func CenteredTransform(width, height int, tileWidth, tileHeight float64) f64.Aff3 {
	return Translation(-float64(width)*tileWidth/2, -float64(height)*tileHeight/2)
}

// Contains reports whether pos lies inside the grid bounds.
func (g *Grid) Contains(pos TilePos) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < g.Width && pos.Y < g.Height
}

// TileCenterLocal returns the map-local center of a cell.
func (g *Grid) TileCenterLocal(pos TilePos) f64.Vec2 {
	return f64.Vec2{
		(float64(pos.X) + 0.5) * g.TileWidth,
		(float64(pos.Y) + 0.5) * g.TileHeight,
	}
}

// TileCenterWorld returns the world-space center of a cell.
func (g *Grid) TileCenterWorld(pos TilePos) f64.Vec2 {
	return Apply(g.Transform, g.TileCenterLocal(pos))
}

// ToWorld maps a map-local point to world space.
func (g *Grid) ToWorld(local f64.Vec2) f64.Vec2 {
	return Apply(g.Transform, local)
}

// TileFromWorld maps a world point through the inverse placement transform
// to the cell containing it. ok is false when the point is off-grid or the
// transform is degenerate.
func (g *Grid) TileFromWorld(world f64.Vec2) (pos TilePos, ok bool) {
	inv, ok := Invert(g.Transform)
	if !ok || g.TileWidth <= 0 || g.TileHeight <= 0 {
		return TilePos{}, false
	}
	local := Apply(inv, world)
	pos = TilePos{
		X: int(math.Floor(local[0] / g.TileWidth)),
		Y: int(math.Floor(local[1] / g.TileHeight)),
	}
	if !g.Contains(pos) {
		return TilePos{}, false
	}
	return pos, true
}
