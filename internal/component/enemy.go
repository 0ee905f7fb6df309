package component

// Creep marks a hostile unit walking the waypoint path.
type Creep struct {
	Name string
}

// Health of a creep. Current may drop below zero internally; collaborators
// read Displayed or Fraction.
type Health struct {
	Current int
	Max     int
}

// FullHealth returns a Health at its maximum.
func FullHealth(max int) *Health {
	return &Health{Current: max, Max: max}
}

// Displayed returns Current floored at zero.
func (h *Health) Displayed() int {
	if h.Current < 0 {
		return 0
	}
	return h.Current
}

// Fraction returns the remaining health in [0, 1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	f := float64(h.Current) / float64(h.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// WaypointFollower holds the ordinal of the waypoint a creep heads for.
// It only ever increases.
type WaypointFollower struct {
	Index int
}
