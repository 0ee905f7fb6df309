// internal/system/state.go
package system

import (
	"log"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/entity"
)

// StateSystem switches between playing and building.
type StateSystem struct {
	ecs   *entity.ECS
	state *component.GameState
}

func NewStateSystem(ecs *entity.ECS, state *component.GameState) *StateSystem {
	return &StateSystem{ecs: ecs, state: state}
}

func (s *StateSystem) SwitchToBuildState() {
	if s.state.Phase == component.BuildingPhase {
		return
	}
	s.state.Phase = component.BuildingPhase
	log.Println("[State] Build mode on")
}

// SwitchToPlayState leaves build mode. Pending build requests are dropped;
// the tile selection clears on the next frame.
func (s *StateSystem) SwitchToPlayState() {
	if s.state.Phase == component.PlayingPhase {
		return
	}
	s.state.Phase = component.PlayingPhase
	s.state.BuildRequests = nil
	log.Println("[State] Build mode off")
}

func (s *StateSystem) Current() component.Phase {
	return s.state.Phase
}
