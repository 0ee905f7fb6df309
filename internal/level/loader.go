// internal/level/loader.go
package level

import (
	"log"

	"golang.org/x/image/math/f64"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/tilemap"
)

// Tiled stores flip flags in the top bits of a global tile id. Bit 28 is
// the hexagonal 120 degree rotation, masked out and otherwise ignored.
const (
	flipHorizontal uint32 = 0x80000000
	flipVertical   uint32 = 0x40000000
	flipDiagonal   uint32 = 0x20000000
	rotateHex120   uint32 = 0x10000000
	gidFlagMask           = flipHorizontal | flipVertical | flipDiagonal | rotateHex120
)

// Stats counts what a load generated.
type Stats struct {
	Tiles     int
	Waypoints int
	Spawners  int
	Finishes  int
	Zones     int
}

// Loader turns a Map into tile and marker entities.
type Loader struct {
	ecs           *entity.ECS
	spawnInterval float64
}

// NewLoader returns a loader writing into ecs. Spawners it creates release
// a creep every spawnInterval seconds.
func NewLoader(ecs *entity.ECS, spawnInterval float64) *Loader {
	return &Loader{ecs: ecs, spawnInterval: spawnInterval}
}

// Load replaces the previously generated level with m. Creeps, towers and
// projectiles are left alone; tiles under existing towers are marked Built.
func (l *Loader) Load(m *Map) Stats {
	l.Clear()

	var stats Stats
	base := tilemap.CenteredTransform(m.Width, m.Height, m.TileWidth, m.TileHeight)
	mapHeight := float64(m.Height) * m.TileHeight
	tileMap := &component.TileMap{}

	for i := range m.Layers {
		layer := &m.Layers[i]
		switch layer.Type {
		case TileLayerType:
			if tl := l.loadTileLayer(m, layer, base, len(tileMap.Layers)); tl != nil {
				tileMap.Layers = append(tileMap.Layers, tl)
				stats.Tiles += len(tl.Tiles)
			}
		case ObjectLayerType:
			l.loadObjects(layer, base, mapHeight, &stats)
		default:
			log.Printf("[Level] Skipping layer %q: unsupported type %q", layer.Name, layer.Type)
		}
	}

	l.ecs.TileMap = tileMap
	l.markTowerTiles()

	log.Printf("[Level] Loaded %d tiles, %d waypoints, %d spawners, %d finishes, %d build zones",
		stats.Tiles, stats.Waypoints, stats.Spawners, stats.Finishes, stats.Zones)
	return stats
}

// Clear removes every tile and marker entity.
func (l *Loader) Clear() {
	var ids []types.EntityID
	ids = append(ids, entity.SortedIDs(l.ecs.Tiles)...)
	ids = append(ids, entity.SortedIDs(l.ecs.Waypoints)...)
	ids = append(ids, entity.SortedIDs(l.ecs.Finishes)...)
	ids = append(ids, entity.SortedIDs(l.ecs.Spawners)...)
	ids = append(ids, entity.SortedIDs(l.ecs.BuildZones)...)
	for _, id := range ids {
		l.ecs.RemoveEntity(id)
	}
	l.ecs.TileMap = nil
}

func (l *Loader) loadTileLayer(m *Map, layer *Layer, base f64.Aff3, index int) *component.TileLayer {
	if m.Orientation != "orthogonal" {
		log.Printf("[Level] Skipping tile layer %q: %s maps are not supported", layer.Name, m.Orientation)
		return nil
	}
	if m.Infinite {
		log.Printf("[Level] Skipping tile layer %q: infinite maps are not supported", layer.Name)
		return nil
	}
	if layer.Encoding != "" && layer.Encoding != "csv" {
		log.Printf("[Level] Skipping tile layer %q: %s encoding is not supported", layer.Name, layer.Encoding)
		return nil
	}
	if len(layer.Data) != layer.Width*layer.Height {
		log.Printf("[Level] Skipping tile layer %q: expected %d cells, got %d",
			layer.Name, layer.Width*layer.Height, len(layer.Data))
		return nil
	}

	grid := &tilemap.Grid{
		Width:      layer.Width,
		Height:     layer.Height,
		TileWidth:  m.TileWidth,
		TileHeight: m.TileHeight,
		Transform:  tilemap.Mul(tilemap.Translation(layer.OffsetX, -layer.OffsetY), base),
	}
	tl := &component.TileLayer{
		ID:    layer.ID,
		Name:  layer.Name,
		Grid:  grid,
		Tiles: make(map[tilemap.TilePos]types.EntityID),
	}

	for i, gid := range layer.Data {
		id := gid &^ gidFlagMask
		if id == 0 {
			continue
		}
		tileset, ok := findTileset(m.Tilesets, id)
		if !ok {
			log.Printf("[Level] Layer %q: no tileset for gid %d", layer.Name, id)
			continue
		}

		pos := tilemap.TilePos{X: i % layer.Width, Y: layer.Height - 1 - i/layer.Width}
		e := l.ecs.NewEntity()
		l.ecs.Tiles[e] = &component.Tile{
			Layer:        index,
			Pos:          pos,
			Tileset:      tileset,
			TextureIndex: id - m.Tilesets[tileset].FirstGID,
			Flip: component.TileFlip{
				X: gid&flipHorizontal != 0,
				Y: gid&flipVertical != 0,
				D: gid&flipDiagonal != 0,
			},
			State: component.TileSelectable,
		}
		center := grid.TileCenterWorld(pos)
		l.ecs.Positions[e] = &component.Position{X: center[0], Y: center[1]}
		tl.Tiles[pos] = e
	}
	return tl
}

// findTileset returns the index of the tileset with the highest firstgid not above gid.
func findTileset(tilesets []Tileset, gid uint32) (int, bool) {
	best := -1
	for i, ts := range tilesets {
		if ts.FirstGID == 0 || ts.FirstGID > gid {
			continue
		}
		if best < 0 || ts.FirstGID > tilesets[best].FirstGID {
			best = i
		}
	}
	return best, best >= 0
}

func (l *Loader) loadObjects(layer *Layer, base f64.Aff3, mapHeight float64, stats *Stats) {
	for i := range layer.Objects {
		obj := &layer.Objects[i]
		local := f64.Vec2{obj.X + layer.OffsetX, mapHeight - (obj.Y + layer.OffsetY)}
		world := tilemap.Apply(base, local)

		switch obj.UserType() {
		case WaypointObject:
			index, ok := obj.IntProperty(WaypointProperty)
			if !ok {
				log.Printf("[Level] Waypoint %q (id %d) has no integer %q property, skipping",
					obj.Name, obj.ID, WaypointProperty)
				continue
			}
			e := l.ecs.NewEntity()
			l.ecs.Waypoints[e] = &component.Waypoint{Index: index, X: world[0], Y: world[1], Name: obj.Name}
			l.ecs.Positions[e] = &component.Position{X: world[0], Y: world[1]}
			stats.Waypoints++

		case SpawnerObject:
			e := l.ecs.NewEntity()
			l.ecs.Spawners[e] = &component.Spawner{
				X:     world[0],
				Y:     world[1],
				Timer: component.NewTimer(l.spawnInterval),
				Name:  obj.Name,
			}
			l.ecs.Positions[e] = &component.Position{X: world[0], Y: world[1]}
			stats.Spawners++

		case FinishObject:
			e := l.ecs.NewEntity()
			l.ecs.Finishes[e] = &component.Finish{X: world[0], Y: world[1], Name: obj.Name}
			l.ecs.Positions[e] = &component.Position{X: world[0], Y: world[1]}
			stats.Finishes++

		case BuildZoneObj:
			w, h := obj.Width, obj.Height
			if !obj.IsRect() {
				w, h = 0, 0
			}
			rect := tilemap.TransformRect(base, tilemap.NewRect(local[0], local[1]-h, local[0]+w, local[1]))
			e := l.ecs.NewEntity()
			l.ecs.BuildZones[e] = &component.BuildZone{Rect: rect, Name: obj.Name}
			stats.Zones++
		}
	}
}

// markTowerTiles flags base tiles already occupied by a tower.
func (l *Loader) markTowerTiles() {
	baseLayer := l.ecs.TileMap.Base()
	if baseLayer == nil {
		return
	}
	for _, id := range entity.SortedIDs(l.ecs.Towers) {
		if tileID, ok := baseLayer.Get(l.ecs.Towers[id].Tile); ok {
			l.ecs.Tiles[tileID].State = component.TileBuilt
		}
	}
}
