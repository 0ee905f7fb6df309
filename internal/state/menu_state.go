// internal/state/menu_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"ioni-tower-defense/internal/config"
)

// MenuState is the title screen; Space or Enter starts the game.
type MenuState struct {
	sm   *StateMachine
	next *GameState
}

func NewMenuState(sm *StateMachine, next *GameState) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Exit() {}

func (m *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	face := m.next.fontFace
	if face == nil {
		return
	}
	title := "Tower Defense: press Space to start"
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}
