// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	game "ioni-tower-defense/internal/app"
	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/level"
	"ioni-tower-defense/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

// loadLibrary reads the definition files. Missing files keep the built-in
// definitions; malformed ones are fatal.
func loadLibrary(towersPath, creepsPath string) *defs.Library {
	library := defs.NewLibrary()
	if err := library.LoadTowerDefinitions(towersPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Failed to load tower definitions: %v", err)
		}
		log.Printf("[Defs] %s not found, using built-in towers", towersPath)
	}
	if err := library.LoadCreepDefinition(creepsPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("Failed to load creep definition: %v", err)
		}
		log.Printf("[Defs] %s not found, using built-in creep", creepsPath)
	}
	return library
}

func main() {
	levelPath := flag.String("level", config.LevelPath, "level file (Tiled JSON or YAML)")
	towersPath := flag.String("towers", config.TowerDefsPath, "tower definitions file")
	creepsPath := flag.String("creeps", config.CreepDefsPath, "creep definition file")
	showMenu := flag.Bool("menu", false, "start on the title screen")
	pprofAddr := flag.String("pprof", "", "serve net/http/pprof on this address, e.g. localhost:6060")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	library := loadLibrary(*towersPath, *creepsPath)
	m, err := level.LoadFile(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	gameLogic := game.NewGame(library)
	sm := state.NewStateMachine()
	gameState := state.NewGameState(sm, gameLogic, *levelPath)
	gameLogic.LoadLevel(m)

	if *showMenu {
		sm.SetState(state.NewMenuState(sm, gameState))
	} else {
		sm.SetState(gameState)
	}

	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Tower Defense")
	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
