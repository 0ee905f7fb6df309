// internal/system/spawn.go
package system

import (
	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/types"
)

// SpawnSystem releases a creep from every spawner whose timer completes.
// Each spawner keeps its own schedule.
type SpawnSystem struct {
	ecs     *entity.ECS
	library *defs.Library
}

func NewSpawnSystem(ecs *entity.ECS, library *defs.Library) *SpawnSystem {
	return &SpawnSystem{ecs: ecs, library: library}
}

func (s *SpawnSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Spawners) {
		spawner := s.ecs.Spawners[id]
		if spawner.Timer == nil {
			spawner.Timer = component.NewTimer(s.library.Creep.SpawnInterval)
		}
		spawner.Timer.Tick(deltaTime)
		if spawner.Timer.Finished() {
			SpawnCreep(s.ecs, s.library.Creep, spawner.X, spawner.Y)
		}
	}
}

// SpawnCreep creates a creep at (x, y) heading for waypoint 0.
func SpawnCreep(ecs *entity.ECS, def defs.CreepDefinition, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Velocities[id] = &component.Velocity{Speed: def.Speed}
	ecs.Facings[id] = &component.Facing{}
	ecs.Creeps[id] = &component.Creep{Name: def.Name}
	ecs.Healths[id] = component.FullHealth(def.Health)
	ecs.WaypointFollowers[id] = &component.WaypointFollower{Index: 0}
	return id
}
