// internal/system/damage.go
package system

import (
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
)

// DamageSystem applies queued hits in arrival order.
type DamageSystem struct {
	ecs   *entity.ECS
	hits  *event.Queue[event.Hit]
	kills *event.Queue[event.Killed]
}

func NewDamageSystem(ecs *entity.ECS, hits *event.Queue[event.Hit], kills *event.Queue[event.Killed]) *DamageSystem {
	return &DamageSystem{ecs: ecs, hits: hits, kills: kills}
}

func (s *DamageSystem) Update(deltaTime float64) {
	for _, hit := range s.hits.Drain() {
		if ApplyDamage(s.ecs, hit.Target, hit.Damage) {
			s.kills.Push(event.Killed{Who: hit.Target})
		}
	}
}
