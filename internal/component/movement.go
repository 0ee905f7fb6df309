// component/movement.go
package component

// Position is a world-space position, y pointing up.
type Position struct {
	X, Y float64
}

// Velocity moves an entity along a unit direction at Speed units per second.
type Velocity struct {
	Speed      float64
	DirX, DirY float64
	// Goal, when set, is a point the integrator must not step past.
	Goal *Position
}

// Facing is the heading used by renderers, in radians from +X.
type Facing struct {
	Angle float64
}
