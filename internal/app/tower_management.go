// internal/app/tower_management.go
package app

import (
	"log"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
)

// MouseButton identifies the button of a click.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// SetBuildMode turns build mode on or off.
func (g *Game) SetBuildMode(on bool) {
	if on {
		g.StateSystem.SwitchToBuildState()
	} else {
		g.StateSystem.SwitchToPlayState()
	}
}

// ToggleBuildMode flips build mode.
func (g *Game) ToggleBuildMode() {
	g.SetBuildMode(!g.IsBuildMode())
}

func (g *Game) IsBuildMode() bool {
	return g.StateSystem.Current() == component.BuildingPhase
}

// SelectTowerType sets the tower type left clicks place. Unknown types are
// ignored.
func (g *Game) SelectTowerType(towerType defs.TowerType) {
	if _, ok := g.Library.Tower(towerType); !ok {
		log.Printf("[Build] Unknown tower type %q", towerType)
		return
	}
	g.State.BuildTowerType = towerType
}

// RequestBuildTower queues a build of towerType on the selected tile. The
// request is served on the next Update and dropped if nothing is selected.
func (g *Game) RequestBuildTower(towerType defs.TowerType) {
	g.State.BuildRequests = append(g.State.BuildRequests, towerType)
}

// SetCursorWorldPosition records the cursor in world coordinates.
func (g *Game) SetCursorWorldPosition(x, y float64) {
	g.State.CursorX, g.State.CursorY = x, y
	g.State.CursorKnown = true
}

// ClearCursor forgets the cursor, e.g. when it leaves the window.
func (g *Game) ClearCursor() {
	g.State.CursorKnown = false
}

// MouseClick handles a mouse button event. Releasing the left button in
// build mode requests a tower of the selected type.
func (g *Game) MouseClick(button MouseButton, released bool) {
	if button != MouseLeft || !released || !g.IsBuildMode() {
		return
	}
	g.RequestBuildTower(g.State.BuildTowerType)
}
