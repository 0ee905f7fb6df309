// internal/state/game_state.go
package state

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"

	game "ioni-tower-defense/internal/app"
	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/level"
	"ioni-tower-defense/internal/ui"
	"ioni-tower-defense/pkg/render"
	"ioni-tower-defense/pkg/tilemap"
)

const (
	indicatorOffset = 40
	indicatorRadius = 14
	buttonSize      = 12
)

// GameState turns keyboard and mouse input into simulation commands and
// draws the world.
type GameState struct {
	sm             *StateMachine
	game           *game.Game
	levelPath      string
	camera         *tilemap.Camera
	tileRenderer   *render.TileRenderer
	entityRenderer *render.EntityRenderer
	fontFace       font.Face
	indicator      *ui.StateIndicator
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	mapDirty       bool
}

func NewGameState(sm *StateMachine, gameLogic *game.Game, levelPath string) *GameState {
	face, err := render.NewFontFace(14)
	if err != nil {
		log.Printf("[UI] %v, text disabled", err)
	}

	camera := tilemap.NewCamera(config.ScreenWidth, config.ScreenHeight)
	mapColors := &render.MapColors{
		BackgroundColor:   config.BackgroundColor,
		TileColor:         config.TileColor,
		TileAltColor:      config.TileAltColor,
		TileGridColor:     config.TileGridColor,
		SelectedTileColor: config.SelectedTileColor,
		BuiltTileColor:    config.BuiltTileColor,
		BuildZoneColor:    config.BuildZoneColor,
		WaypointColor:     config.WaypointColor,
		FinishColor:       config.FinishColor,
		SpawnerColor:      config.SpawnerColor,
		TextLightColor:    config.TextLightColor,
		StrokeWidth:       float32(config.StrokeWidth),
	}
	entityColors := &render.EntityColors{
		CreepColor:       config.CreepColor,
		HealthbarBgColor: config.HealthbarBgColor,
		HealthbarColor:   config.HealthbarColor,
		ArrowTowerColor:  config.ArrowTowerColor,
		BombTowerColor:   config.BombTowerColor,
		ArrowColor:       config.ArrowColor,
		BombColor:        config.BombColor,
	}

	right := float32(config.ScreenWidth - indicatorOffset)
	gs := &GameState{
		sm:             sm,
		game:           gameLogic,
		levelPath:      levelPath,
		camera:         camera,
		tileRenderer:   render.NewTileRenderer(camera, mapColors, config.ScreenWidth, config.ScreenHeight, face),
		entityRenderer: render.NewEntityRenderer(camera, entityColors),
		fontFace:       face,
		indicator:      ui.NewStateIndicator(right, indicatorOffset, indicatorRadius),
		speedButton: ui.NewSpeedButton(right-60, indicatorOffset, buttonSize, []color.RGBA{
			config.PlayModeColor, config.BuildModeColor, config.BombTowerColor,
		}),
		pauseButton: ui.NewPauseButton(right-110, indicatorOffset, buttonSize, config.PlayModeColor, config.BuildModeColor),
		mapDirty:    true,
	}

	gameLogic.Events().Subscribe(event.LevelLoaded, event.ListenerFunc(func(event.Event) {
		gs.mapDirty = true
	}))
	return gs
}

func (g *GameState) Enter() {}

func (g *GameState) Exit() {}

func (g *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		g.handlePauseClick()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		g.game.ToggleBuildMode()
		g.indicator.HandleClick()
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		g.game.SelectTowerType(defs.TowerArrow)
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		g.game.SelectTowerType(defs.TowerBomb)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.reloadLevel()
	}

	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		g.game.ClearCursor()
	} else {
		wx, wy := g.camera.ScreenToWorld(float64(x), float64(y))
		g.game.SetCursorWorldPosition(wx, wy)
	}

	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.isClickOnUI(x, y) {
			g.handleUIClick(x, y)
		} else {
			g.game.MouseClick(game.MouseLeft, true)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonRight) {
		g.game.MouseClick(game.MouseRight, true)
	}

	g.game.Update(deltaTime)
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	ecs := g.game.ECS()
	if g.mapDirty {
		g.tileRenderer.RenderMapImage(ecs)
		g.mapDirty = false
	}
	g.tileRenderer.Draw(screen, ecs, g.game.IsBuildMode())
	g.entityRenderer.Draw(screen, ecs)
	g.drawUI(screen)
}

func (g *GameState) drawUI(screen *ebiten.Image) {
	stateColor := config.PlayModeColor
	if g.game.IsBuildMode() {
		stateColor = config.BuildModeColor
	}
	g.indicator.Draw(screen, stateColor)
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)

	towerName := string(g.game.State.BuildTowerType)
	if def, ok := g.game.Library.Tower(g.game.State.BuildTowerType); ok {
		towerName = def.Name
	}
	stats := g.game.Stats()
	render.DrawHUD(screen, g.fontFace, render.HUDInfo{
		BuildMode:   g.game.IsBuildMode(),
		TowerName:   towerName,
		Killed:      stats.Killed,
		Leaked:      stats.Leaked,
		TowersBuilt: stats.TowersBuilt,
		Speed:       g.game.SpeedMultiplier,
		Paused:      g.game.IsPaused(),
	}, config.TextLightColor)
}

// isClickOnUI reports whether the screen point hits one of the HUD buttons.
func (g *GameState) isClickOnUI(x, y int) bool {
	mx, my := float32(x), float32(y)
	return g.indicator.IsClicked(mx, my) || g.speedButton.IsClicked(mx, my) || g.pauseButton.IsClicked(mx, my)
}

func (g *GameState) handleUIClick(x, y int) {
	mx, my := float32(x), float32(y)
	switch {
	case g.indicator.IsClicked(mx, my):
		g.game.ToggleBuildMode()
		g.indicator.HandleClick()
	case g.speedButton.IsClicked(mx, my):
		g.game.HandleSpeedClick()
		g.speedButton.ToggleState()
	case g.pauseButton.IsClicked(mx, my):
		g.handlePauseClick()
	}
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(NewPauseState(g.sm, g))
}

// resume is called by the pause screen.
func (g *GameState) resume() {
	g.game.HandlePauseClick()
	g.pauseButton.TogglePause()
	g.sm.SetState(g)
}

func (g *GameState) reloadLevel() {
	m, err := level.LoadFile(g.levelPath)
	if err != nil {
		log.Printf("[Level] Reload failed: %v", err)
		return
	}
	g.game.LoadLevel(m)
}
