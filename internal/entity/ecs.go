// internal/entity/ecs.go
package entity

import (
	"slices"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/types"
)

type ECS struct {
	GameTime float64
	NextID   types.EntityID

	Positions  map[types.EntityID]*component.Position
	Velocities map[types.EntityID]*component.Velocity
	Facings    map[types.EntityID]*component.Facing

	Creeps            map[types.EntityID]*component.Creep
	Healths           map[types.EntityID]*component.Health
	WaypointFollowers map[types.EntityID]*component.WaypointFollower

	Waypoints map[types.EntityID]*component.Waypoint
	Finishes  map[types.EntityID]*component.Finish
	Spawners  map[types.EntityID]*component.Spawner

	Towers             map[types.EntityID]*component.Tower
	ProjectileThrowers map[types.EntityID]*component.ProjectileThrower
	Splashers          map[types.EntityID]*component.Splasher

	Projectiles map[types.EntityID]*component.Projectile
	Followers   map[types.EntityID]*component.Follower
	Pointers    map[types.EntityID]*component.Pointer

	Tiles      map[types.EntityID]*component.Tile
	BuildZones map[types.EntityID]*component.BuildZone
	TileMap    *component.TileMap

	// Dying marks entities removed by the next sweep.
	Dying map[types.EntityID]struct{}
}

func NewECS() *ECS {
	return &ECS{
		NextID:             1,
		Positions:          make(map[types.EntityID]*component.Position),
		Velocities:         make(map[types.EntityID]*component.Velocity),
		Facings:            make(map[types.EntityID]*component.Facing),
		Creeps:             make(map[types.EntityID]*component.Creep),
		Healths:            make(map[types.EntityID]*component.Health),
		WaypointFollowers:  make(map[types.EntityID]*component.WaypointFollower),
		Waypoints:          make(map[types.EntityID]*component.Waypoint),
		Finishes:           make(map[types.EntityID]*component.Finish),
		Spawners:           make(map[types.EntityID]*component.Spawner),
		Towers:             make(map[types.EntityID]*component.Tower),
		ProjectileThrowers: make(map[types.EntityID]*component.ProjectileThrower),
		Splashers:          make(map[types.EntityID]*component.Splasher),
		Projectiles:        make(map[types.EntityID]*component.Projectile),
		Followers:          make(map[types.EntityID]*component.Follower),
		Pointers:           make(map[types.EntityID]*component.Pointer),
		Tiles:              make(map[types.EntityID]*component.Tile),
		BuildZones:         make(map[types.EntityID]*component.BuildZone),
		Dying:              make(map[types.EntityID]struct{}),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Despawn marks id for removal at the end of the frame. Marking twice is a no-op.
func (ecs *ECS) Despawn(id types.EntityID) {
	ecs.Dying[id] = struct{}{}
}

// IsDying reports whether id is marked for removal.
func (ecs *ECS) IsDying(id types.EntityID) bool {
	_, dying := ecs.Dying[id]
	return dying
}

// RemoveEntity deletes every component of id immediately.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Velocities, id)
	delete(ecs.Facings, id)
	delete(ecs.Creeps, id)
	delete(ecs.Healths, id)
	delete(ecs.WaypointFollowers, id)
	delete(ecs.Waypoints, id)
	delete(ecs.Finishes, id)
	delete(ecs.Spawners, id)
	delete(ecs.Towers, id)
	delete(ecs.ProjectileThrowers, id)
	delete(ecs.Splashers, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Followers, id)
	delete(ecs.Pointers, id)
	delete(ecs.Tiles, id)
	delete(ecs.BuildZones, id)
	delete(ecs.Dying, id)
}

// RemoveDying removes every entity marked by Despawn and returns how many went.
func (ecs *ECS) RemoveDying() int {
	ids := SortedIDs(ecs.Dying)
	for _, id := range ids {
		ecs.RemoveEntity(id)
	}
	return len(ids)
}

// LiveCreeps returns the creeps not marked dying, in ascending id order.
func (ecs *ECS) LiveCreeps() []types.EntityID {
	ids := make([]types.EntityID, 0, len(ecs.Creeps))
	for _, id := range SortedIDs(ecs.Creeps) {
		if !ecs.IsDying(id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// SortedIDs returns the keys of m in ascending order, so systems visit
// entities in a stable order independent of map iteration.
func SortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
