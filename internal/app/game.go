// internal/app/game.go
package app

import (
	"log"
	"math"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/level"
	"ioni-tower-defense/internal/system"
)

// Stats are running counters kept from dispatched events.
type Stats struct {
	Killed      int
	Leaked      int
	TowersBuilt int
}

// Game holds the simulation: the ECS, the systems in frame order and the
// command surface used by input handling.
type Game struct {
	ecs             *entity.ECS
	Library         *defs.Library
	EventDispatcher *event.Dispatcher
	State           *component.GameState
	SpeedMultiplier float64

	hits   *event.Queue[event.Hit]
	kills  *event.Queue[event.Killed]
	loader *level.Loader

	BuildZoneSystem   *system.BuildZoneSystem
	TowerBuildSystem  *system.TowerBuildSystem
	SpawnSystem       *system.SpawnSystem
	PathSystem        *system.PathSystem
	MovementSystem    *system.MovementSystem
	FireControlSystem *system.FireControlSystem
	ProjectileSystem  *system.ProjectileSystem
	DamageSystem      *system.DamageSystem
	DeathSystem       *system.DeathSystem
	SweepSystem       *system.SweepSystem
	StateSystem       *system.StateSystem

	gameTime   float64
	isPaused   bool
	speedLevel int
	stats      Stats
}

// NewGame builds an empty simulation using library for tower and creep data.
// A nil library means the built-in definitions.
func NewGame(library *defs.Library) *Game {
	if library == nil {
		library = defs.NewLibrary()
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	state := component.NewGameState()
	hits := event.NewQueue[event.Hit]()
	kills := event.NewQueue[event.Killed]()

	g := &Game{
		ecs:               ecs,
		Library:           library,
		EventDispatcher:   eventDispatcher,
		State:             state,
		SpeedMultiplier:   1.0,
		hits:              hits,
		kills:             kills,
		loader:            level.NewLoader(ecs, library.Creep.SpawnInterval),
		BuildZoneSystem:   system.NewBuildZoneSystem(ecs, state, eventDispatcher),
		TowerBuildSystem:  system.NewTowerBuildSystem(ecs, state, library, eventDispatcher),
		SpawnSystem:       system.NewSpawnSystem(ecs, library),
		PathSystem:        system.NewPathSystem(ecs, eventDispatcher),
		MovementSystem:    system.NewMovementSystem(ecs),
		FireControlSystem: system.NewFireControlSystem(ecs),
		ProjectileSystem:  system.NewProjectileSystem(ecs, hits),
		DamageSystem:      system.NewDamageSystem(ecs, hits, kills),
		DeathSystem:       system.NewDeathSystem(ecs, kills, eventDispatcher),
		SweepSystem:       system.NewSweepSystem(ecs),
		StateSystem:       system.NewStateSystem(ecs, state),
	}

	listener := &GameEventListener{game: g}
	eventDispatcher.Subscribe(event.EnemyKilled, listener)
	eventDispatcher.Subscribe(event.FinishReached, listener)
	eventDispatcher.Subscribe(event.TowerPlaced, listener)

	return g
}

// Update advances the simulation by one frame.
func (g *Game) Update(deltaTime float64) {
	if g.isPaused || deltaTime <= 0 {
		return
	}
	dt := deltaTime * g.SpeedMultiplier
	g.gameTime += dt
	g.ecs.GameTime = g.gameTime

	g.BuildZoneSystem.Update(dt)
	g.TowerBuildSystem.Update(dt)
	g.SpawnSystem.Update(dt)
	g.PathSystem.Update(dt)
	g.MovementSystem.Update(dt)
	g.FireControlSystem.Update(dt)
	g.ProjectileSystem.Update(dt)
	g.DamageSystem.Update(dt)
	g.DeathSystem.Update(dt)
	g.SweepSystem.Update(dt)
}

// LoadLevel replaces the current level. Creeps, towers and projectiles in
// flight are kept.
func (g *Game) LoadLevel(m *level.Map) {
	stats := g.loader.Load(m)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.LevelLoaded,
		Data: event.LevelLoadedData{
			Tiles:     stats.Tiles,
			Waypoints: stats.Waypoints,
			Spawners:  stats.Spawners,
			Finishes:  stats.Finishes,
			Zones:     stats.Zones,
		},
	})
}

// ECS exposes the world to renderers. Callers must not mutate it.
func (g *Game) ECS() *entity.ECS {
	return g.ecs
}

// Events returns the dispatcher collaborators subscribe to.
func (g *Game) Events() *event.Dispatcher {
	return g.EventDispatcher
}

func (g *Game) Stats() Stats {
	return g.stats
}

func (g *Game) GetGameTime() float64 {
	return g.gameTime
}

func (g *Game) HandlePauseClick() {
	g.isPaused = !g.isPaused
}

// IsPaused reports whether updates are suspended.
func (g *Game) IsPaused() bool {
	return g.isPaused
}

// HandleSpeedClick cycles the simulation speed through 1x, 2x and 4x.
func (g *Game) HandleSpeedClick() {
	g.speedLevel = (g.speedLevel + 1) % 3
	g.SpeedMultiplier = math.Pow(2, float64(g.speedLevel))
}

func (g *Game) SpeedLevel() int {
	return g.speedLevel
}

// GameEventListener keeps the running counters.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	switch e.Type {
	case event.EnemyKilled:
		l.game.stats.Killed++
	case event.FinishReached:
		l.game.stats.Leaked++
		log.Printf("[Game] Creep %v reached the finish", e.Data)
	case event.TowerPlaced:
		l.game.stats.TowersBuilt++
	}
}
