// internal/system/build.go
package system

import (
	"log"

	"golang.org/x/image/math/f64"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/tilemap"
)

// BuildZoneSystem highlights the tile under the cursor while build mode is
// on, provided the tile center lies in a build zone and the tile is free.
type BuildZoneSystem struct {
	ecs             *entity.ECS
	state           *component.GameState
	eventDispatcher *event.Dispatcher
}

func NewBuildZoneSystem(ecs *entity.ECS, state *component.GameState, eventDispatcher *event.Dispatcher) *BuildZoneSystem {
	return &BuildZoneSystem{ecs: ecs, state: state, eventDispatcher: eventDispatcher}
}

func (s *BuildZoneSystem) Update(deltaTime float64) {
	next, hasNext := s.candidate()

	for _, id := range SelectedTiles(s.ecs) {
		if hasNext && id == next {
			continue
		}
		s.setState(id, component.TileSelectable)
	}
	if hasNext && s.ecs.Tiles[next].State != component.TileSelected {
		s.setState(next, component.TileSelected)
	}
}

// candidate returns the tile that should be selected this frame.
func (s *BuildZoneSystem) candidate() (types.EntityID, bool) {
	if s.state.Phase != component.BuildingPhase || !s.state.CursorKnown {
		return 0, false
	}
	base := s.ecs.TileMap.Base()
	if base == nil {
		return 0, false
	}

	pos, ok := base.Grid.TileFromWorld(f64.Vec2{s.state.CursorX, s.state.CursorY})
	if !ok {
		return 0, false
	}
	id, ok := base.Get(pos)
	if !ok {
		return 0, false
	}
	if tile := s.ecs.Tiles[id]; tile == nil || tile.State == component.TileBuilt {
		return 0, false
	}
	if !InBuildZone(s.ecs, base.Grid.TileCenterWorld(pos)) {
		return 0, false
	}
	return id, true
}

func (s *BuildZoneSystem) setState(id types.EntityID, state component.TileState) {
	tile := s.ecs.Tiles[id]
	tile.State = state
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.TileSelectionChanged,
		Data: event.TileSelectionData{Tile: id, Pos: tile.Pos, State: state},
	})
}

// InBuildZone reports whether p lies inside at least one build zone.
func InBuildZone(ecs *entity.ECS, p f64.Vec2) bool {
	for _, zone := range ecs.BuildZones {
		if zone.Rect.Contains(p) {
			return true
		}
	}
	return false
}

// SelectedTiles returns the ids of all selected tiles in ascending order.
func SelectedTiles(ecs *entity.ECS) []types.EntityID {
	var ids []types.EntityID
	for _, id := range entity.SortedIDs(ecs.Tiles) {
		if ecs.Tiles[id].State == component.TileSelected {
			ids = append(ids, id)
		}
	}
	return ids
}

// TowerBuildSystem turns pending build requests into towers on the
// selected tile. Requests without a selection are dropped.
type TowerBuildSystem struct {
	ecs             *entity.ECS
	state           *component.GameState
	library         *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewTowerBuildSystem(ecs *entity.ECS, state *component.GameState, library *defs.Library, eventDispatcher *event.Dispatcher) *TowerBuildSystem {
	return &TowerBuildSystem{ecs: ecs, state: state, library: library, eventDispatcher: eventDispatcher}
}

func (s *TowerBuildSystem) Update(deltaTime float64) {
	requests := s.state.BuildRequests
	s.state.BuildRequests = nil

	for _, towerType := range requests {
		selected := SelectedTiles(s.ecs)
		if len(selected) == 0 {
			continue
		}
		def, ok := s.library.Tower(towerType)
		if !ok {
			log.Printf("[Build] Unknown tower type %q, request dropped", towerType)
			continue
		}

		tileID := selected[0]
		tile := s.ecs.Tiles[tileID]
		tile.State = component.TileBuilt

		center := f64.Vec2{}
		if base := s.ecs.TileMap.Base(); base != nil {
			center = base.Grid.TileCenterWorld(tile.Pos)
		} else if pos := s.ecs.Positions[tileID]; pos != nil {
			center = f64.Vec2{pos.X, pos.Y}
		}
		towerID := SpawnTower(s.ecs, def, tile.Pos, center[0], center[1])

		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TileSelectionChanged,
			Data: event.TileSelectionData{Tile: tileID, Pos: tile.Pos, State: component.TileBuilt},
		})
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.TowerPlaced,
			Data: event.TowerPlacedData{Tower: towerID, Type: def.Type, Tile: tile.Pos},
		})
		log.Printf("[Build] Placed %s at tile %d,%d", def.Name, tile.Pos.X, tile.Pos.Y)
	}
}

// SpawnTower creates a tower of the given definition at (x, y). Pointer
// projectiles make it a splasher, anything else a projectile thrower.
func SpawnTower(ecs *entity.ECS, def defs.TowerDefinition, tile tilemap.TilePos, x, y float64) types.EntityID {
	id := ecs.NewEntity()
	ecs.Positions[id] = &component.Position{X: x, Y: y}
	ecs.Towers[id] = &component.Tower{Type: def.Type, Tile: tile}
	ecs.Facings[id] = &component.Facing{}

	fc := component.NewFireControl(def)
	if def.Projectile.Motion == defs.MotionPointer {
		ecs.Splashers[id] = &component.Splasher{FireControl: fc}
	} else {
		ecs.ProjectileThrowers[id] = &component.ProjectileThrower{FireControl: fc}
	}
	return id
}
