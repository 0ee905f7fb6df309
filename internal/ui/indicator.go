// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StateIndicator is a round button showing whether build mode is on.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// Draw paints the indicator with a short pulse after each click.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.RGBA) {
	elapsed := time.Since(i.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	vector.DrawFilledCircle(screen, i.X, i.Y, currentRadius, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, currentRadius, 1, color.White, true)
}

// IsClicked reports whether the screen point (x, y) is inside the indicator.
func (i *StateIndicator) IsClicked(x, y float32) bool {
	return insideCircle(x, y, i.X, i.Y, i.Radius)
}

func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

func insideCircle(px, py, cx, cy, r float32) bool {
	dx := px - cx
	dy := py - cy
	return dx*dx+dy*dy <= r*r
}
