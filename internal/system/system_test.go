package system

import (
	"math"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/tilemap"
)

type updater interface {
	Update(deltaTime float64)
}

// world wires every system in frame order around one ECS.
type world struct {
	ecs     *entity.ECS
	library *defs.Library
	events  *event.Dispatcher
	hits    *event.Queue[event.Hit]
	kills   *event.Queue[event.Killed]
	state   *component.GameState
	systems []updater

	received []event.Event
}

func newWorld() *world {
	w := &world{
		ecs:     entity.NewECS(),
		library: defs.NewLibrary(),
		events:  event.NewDispatcher(),
		hits:    event.NewQueue[event.Hit](),
		kills:   event.NewQueue[event.Killed](),
		state:   component.NewGameState(),
	}
	w.systems = []updater{
		NewBuildZoneSystem(w.ecs, w.state, w.events),
		NewTowerBuildSystem(w.ecs, w.state, w.library, w.events),
		NewSpawnSystem(w.ecs, w.library),
		NewPathSystem(w.ecs, w.events),
		NewMovementSystem(w.ecs),
		NewFireControlSystem(w.ecs),
		NewProjectileSystem(w.ecs, w.hits),
		NewDamageSystem(w.ecs, w.hits, w.kills),
		NewDeathSystem(w.ecs, w.kills, w.events),
		NewSweepSystem(w.ecs),
	}
	record := event.ListenerFunc(func(e event.Event) { w.received = append(w.received, e) })
	for _, t := range []event.EventType{event.EnemyKilled, event.FinishReached, event.TowerPlaced, event.TileSelectionChanged} {
		w.events.Subscribe(t, record)
	}
	return w
}

func (w *world) step(deltaTime float64) {
	for _, s := range w.systems {
		s.Update(deltaTime)
	}
}

func (w *world) count(t event.EventType) int {
	n := 0
	for _, e := range w.received {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (w *world) creep(x, y float64) types.EntityID {
	return SpawnCreep(w.ecs, w.library.Creep, x, y)
}

func (w *world) waypoint(index int, x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Waypoints[id] = &component.Waypoint{Index: index, X: x, Y: y}
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	return id
}

func (w *world) finish(x, y float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Finishes[id] = &component.Finish{X: x, Y: y}
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	return id
}

func (w *world) tower(t defs.TowerType, x, y float64) types.EntityID {
	def, _ := w.library.Tower(t)
	return SpawnTower(w.ecs, def, tilemap.TilePos{}, x, y)
}

// grid creates a fully populated base tile layer centered on the origin.
func (w *world) grid(width, height int, tileSize float64) *component.TileLayer {
	layer := &component.TileLayer{
		Name:  "base",
		Grid:  tilemap.NewGrid(width, height, tileSize, tileSize),
		Tiles: make(map[tilemap.TilePos]types.EntityID),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pos := tilemap.TilePos{X: x, Y: y}
			id := w.ecs.NewEntity()
			w.ecs.Tiles[id] = &component.Tile{Pos: pos}
			layer.Tiles[pos] = id
		}
	}
	w.ecs.TileMap = &component.TileMap{Layers: []*component.TileLayer{layer}}
	return layer
}

func (w *world) zone(x0, y0, x1, y1 float64) {
	id := w.ecs.NewEntity()
	w.ecs.BuildZones[id] = &component.BuildZone{Rect: tilemap.NewRect(x0, y0, x1, y1)}
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
