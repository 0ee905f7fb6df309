package component

import (
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/tilemap"
)

// TileState is the build state of a tile.
type TileState int

const (
	TileSelectable TileState = iota
	TileSelected
	TileBuilt
)

func (s TileState) String() string {
	switch s {
	case TileSelectable:
		return "Selectable"
	case TileSelected:
		return "Selected"
	case TileBuilt:
		return "Built"
	default:
		return "Unknown"
	}
}

// TileFlip holds the horizontal, vertical and diagonal flip flags.
type TileFlip struct {
	X, Y, D bool
}

// Tile is one cell of a tile layer.
type Tile struct {
	Layer        int
	Pos          tilemap.TilePos
	Tileset      int
	TextureIndex uint32
	Flip         TileFlip
	State        TileState
}

// TileLayer is a grid of tile entities sharing one placement transform.
type TileLayer struct {
	ID    int
	Name  string
	Grid  *tilemap.Grid
	Tiles map[tilemap.TilePos]types.EntityID
}

// Get returns the tile entity at pos, if any.
func (l *TileLayer) Get(pos tilemap.TilePos) (types.EntityID, bool) {
	id, ok := l.Tiles[pos]
	return id, ok
}

// TileMap is the set of tile layers of the loaded level. The first layer is
// the one towers are built on.
type TileMap struct {
	Layers []*TileLayer
}

// Base returns the build layer, or nil when the level has no tile layer.
func (m *TileMap) Base() *TileLayer {
	if m == nil || len(m.Layers) == 0 {
		return nil
	}
	return m.Layers[0]
}

// BuildZone is a world-space rectangle where towers may be placed.
type BuildZone struct {
	Rect tilemap.Rect
	Name string
}
