package component

import "ioni-tower-defense/internal/defs"

// Phase is the current interaction mode.
type Phase int

const (
	PlayingPhase Phase = iota
	BuildingPhase
)

// GameState is the context the UI collaborator writes and the build
// systems read. Nothing else in the simulation depends on it.
type GameState struct {
	Phase Phase

	CursorX, CursorY float64
	CursorKnown      bool

	// BuildTowerType is the tower type a build click places.
	BuildTowerType defs.TowerType
	// BuildRequests are drained once per frame by the tower build system.
	BuildRequests []defs.TowerType
}

// NewGameState returns the initial context: playing, arrow towers selected.
func NewGameState() *GameState {
	return &GameState{
		Phase:          PlayingPhase,
		BuildTowerType: defs.TowerArrow,
	}
}
