// pkg/render/hud.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// HUDInfo is what the heads-up display shows.
type HUDInfo struct {
	BuildMode   bool
	TowerName   string
	Killed      int
	Leaked      int
	TowersBuilt int
	Speed       float64
	Paused      bool
}

// NewFontFace loads the bundled Go Regular font at the given size.
func NewFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// DrawHUD writes the status lines in the top-left corner.
func DrawHUD(screen *ebiten.Image, face font.Face, info HUDInfo, textColor color.Color) {
	if face == nil {
		return
	}
	mode := "PLAY"
	if info.BuildMode {
		mode = "BUILD: " + info.TowerName
	}
	lines := []string{
		mode,
		fmt.Sprintf("Killed %d  Leaked %d  Towers %d", info.Killed, info.Leaked, info.TowersBuilt),
		fmt.Sprintf("Speed x%g", info.Speed),
		"[B] build  [1] arrow  [2] bomb  [F5] reload  [Space] pause",
	}
	if info.Paused {
		lines = append(lines, "PAUSED")
	}

	lineHeight := face.Metrics().Height.Ceil()
	for i, line := range lines {
		text.Draw(screen, line, face, 16, 16+lineHeight*(i+1), textColor)
	}
}
