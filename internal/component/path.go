package component

// Waypoint is a static checkpoint of the creep path.
type Waypoint struct {
	Index int
	X, Y  float64
	Name  string
}

// Finish is where creeps go once the waypoints run out.
type Finish struct {
	X, Y float64
	Name string
}

// Spawner releases a creep every time its timer completes.
type Spawner struct {
	X, Y  float64
	Timer *Timer
	Name  string
}
