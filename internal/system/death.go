// internal/system/death.go
package system

import (
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
)

// DeathSystem marks killed creeps for removal and tells listeners once.
type DeathSystem struct {
	ecs             *entity.ECS
	kills           *event.Queue[event.Killed]
	eventDispatcher *event.Dispatcher
}

func NewDeathSystem(ecs *entity.ECS, kills *event.Queue[event.Killed], eventDispatcher *event.Dispatcher) *DeathSystem {
	return &DeathSystem{ecs: ecs, kills: kills, eventDispatcher: eventDispatcher}
}

func (s *DeathSystem) Update(deltaTime float64) {
	for _, killed := range s.kills.Drain() {
		if s.ecs.IsDying(killed.Who) {
			continue
		}
		if _, ok := s.ecs.Creeps[killed.Who]; !ok {
			continue
		}
		s.ecs.Despawn(killed.Who)
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: killed.Who})
	}
}

// SweepSystem removes everything marked dying during the frame.
type SweepSystem struct {
	ecs *entity.ECS
}

func NewSweepSystem(ecs *entity.ECS) *SweepSystem {
	return &SweepSystem{ecs: ecs}
}

func (s *SweepSystem) Update(deltaTime float64) {
	s.ecs.RemoveDying()
}
