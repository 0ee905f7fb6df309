// internal/event/types.go
package event

import (
	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/tilemap"
)

const (
	EnemyKilled          EventType = "EnemyKilled"          // Data: types.EntityID
	FinishReached        EventType = "FinishReached"        // Data: types.EntityID
	TowerPlaced          EventType = "TowerPlaced"          // Data: TowerPlacedData
	TileSelectionChanged EventType = "TileSelectionChanged" // Data: TileSelectionData
	LevelLoaded          EventType = "LevelLoaded"          // Data: LevelLoadedData
)

// TowerPlacedData accompanies TowerPlaced.
type TowerPlacedData struct {
	Tower types.EntityID
	Type  defs.TowerType
	Tile  tilemap.TilePos
}

// TileSelectionData accompanies TileSelectionChanged.
type TileSelectionData struct {
	Tile  types.EntityID
	Pos   tilemap.TilePos
	State component.TileState
}

// LevelLoadedData accompanies LevelLoaded.
type LevelLoadedData struct {
	Tiles     int
	Waypoints int
	Spawners  int
	Finishes  int
	Zones     int
}

// Hit is emitted when a projectile reaches its target.
type Hit struct {
	Damage int
	Target types.EntityID
}

// Killed is emitted when a hit takes a creep to zero health or below.
type Killed struct {
	Who types.EntityID
}
