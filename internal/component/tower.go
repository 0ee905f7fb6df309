// component/tower.go
package component

import (
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/pkg/tilemap"
)

// Tower is a player-built structure standing on a tile.
type Tower struct {
	Type defs.TowerType
	Tile tilemap.TilePos
}
