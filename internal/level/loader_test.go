package level

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/pkg/tilemap"
)

func loadSmall(t *testing.T) (*entity.ECS, *Loader, *Map) {
	t.Helper()
	m, err := LoadFile("testdata/small.yaml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	ecs := entity.NewECS()
	loader := NewLoader(ecs, 2.0)
	loader.Load(m)
	return ecs, loader, m
}

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseRejectsBadHeader(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero width", "width: 0\nheight: 2\ntilewidth: 8\ntileheight: 8\n"},
		{"zero tile size", "width: 2\nheight: 2\ntilewidth: 0\ntileheight: 8\n"},
		{"not yaml", "width: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}

func TestParseTiledJSON(t *testing.T) {
	data := `{"width":2,"height":1,"tilewidth":16,"tileheight":16,"layers":[{"type":"tilelayer","name":"a","data":[1,1]}],"tilesets":[{"firstgid":1,"name":"t"}]}`
	m, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if m.Orientation != "orthogonal" {
		t.Errorf("Expected default orientation, got %q", m.Orientation)
	}
	if m.Layers[0].Width != 2 || m.Layers[0].Height != 1 {
		t.Errorf("Layer size should default to map size, got %dx%d", m.Layers[0].Width, m.Layers[0].Height)
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile("testdata/does-not-exist.yaml"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadTiles(t *testing.T) {
	ecs, _, _ := loadSmall(t)

	if got := len(ecs.Tiles); got != 11 {
		t.Fatalf("Expected 11 tiles, got %d", got)
	}
	base := ecs.TileMap.Base()
	if base == nil || len(ecs.TileMap.Layers) != 1 {
		t.Fatal("Expected exactly one tile layer")
	}

	// Bottom source row becomes grid row 0.
	id, ok := base.Get(tilemap.TilePos{X: 0, Y: 0})
	if !ok {
		t.Fatal("Missing tile at 0,0")
	}
	tile := ecs.Tiles[id]
	if !tile.Flip.X || tile.Flip.Y || tile.Flip.D {
		t.Errorf("Expected horizontal flip only, got %+v", tile.Flip)
	}
	if tile.Tileset != 0 || tile.TextureIndex != 0 {
		t.Errorf("Expected tileset 0 texture 0, got %d/%d", tile.Tileset, tile.TextureIndex)
	}

	id, _ = base.Get(tilemap.TilePos{X: 2, Y: 0})
	if ts := ecs.Tiles[id]; ts.Tileset != 1 || ts.TextureIndex != 0 {
		t.Errorf("gid 3 should map to tileset 1 texture 0, got %d/%d", ts.Tileset, ts.TextureIndex)
	}

	id, _ = base.Get(tilemap.TilePos{X: 1, Y: 2})
	if ecs.Tiles[id].TextureIndex != 1 {
		t.Errorf("gid 2 should map to texture 1, got %d", ecs.Tiles[id].TextureIndex)
	}

	if _, ok := base.Get(tilemap.TilePos{X: 2, Y: 2}); ok {
		t.Error("gid 0 should leave the cell empty")
	}

	id, _ = base.Get(tilemap.TilePos{X: 0, Y: 0})
	pos := ecs.Positions[id]
	if !near(pos.X, -96) || !near(pos.Y, -64) {
		t.Errorf("Tile 0,0 center: expected (-96, -64), got (%v, %v)", pos.X, pos.Y)
	}
}

func TestLoadObjects(t *testing.T) {
	ecs, _, _ := loadSmall(t)

	if len(ecs.Waypoints) != 2 {
		t.Fatalf("Expected 2 waypoints (one skipped), got %d", len(ecs.Waypoints))
	}
	want := map[int]f64.Vec2{0: {-32, 0}, 1: {-32, 64}}
	for _, wp := range ecs.Waypoints {
		w, ok := want[wp.Index]
		if !ok {
			t.Errorf("Unexpected waypoint index %d", wp.Index)
			continue
		}
		if !near(wp.X, w[0]) || !near(wp.Y, w[1]) {
			t.Errorf("Waypoint %d: expected %v, got (%v, %v)", wp.Index, w, wp.X, wp.Y)
		}
	}

	if len(ecs.Spawners) != 1 {
		t.Fatalf("Expected 1 spawner, got %d", len(ecs.Spawners))
	}
	for _, s := range ecs.Spawners {
		if !near(s.X, -128) || !near(s.Y, 0) {
			t.Errorf("Spawner: expected (-128, 0), got (%v, %v)", s.X, s.Y)
		}
		if s.Timer == nil || s.Timer.Duration != 2.0 {
			t.Errorf("Spawner timer should last 2s, got %+v", s.Timer)
		}
	}

	if len(ecs.Finishes) != 1 {
		t.Fatalf("Expected 1 finish, got %d", len(ecs.Finishes))
	}
	for _, f := range ecs.Finishes {
		if !near(f.X, 96) || !near(f.Y, 64) {
			t.Errorf("Finish: expected (96, 64), got (%v, %v)", f.X, f.Y)
		}
	}

	if len(ecs.BuildZones) != 1 {
		t.Fatalf("Expected 1 build zone, got %d", len(ecs.BuildZones))
	}
	for _, z := range ecs.BuildZones {
		r := z.Rect
		if !near(r.Min[0], 0) || !near(r.Max[0], 128) || !near(r.Min[1], -96) || !near(r.Max[1], -32) {
			t.Errorf("Build zone: expected [0,128]x[-96,-32], got %v-%v", r.Min, r.Max)
		}
	}
}

func TestReloadIsIdempotent(t *testing.T) {
	ecs, loader, m := loadSmall(t)

	countAll := func() [5]int {
		return [5]int{len(ecs.Tiles), len(ecs.Waypoints), len(ecs.Spawners), len(ecs.Finishes), len(ecs.BuildZones)}
	}
	first := countAll()

	creep := ecs.NewEntity()
	ecs.Creeps[creep] = &component.Creep{}
	ecs.Positions[creep] = &component.Position{}

	stats := loader.Load(m)
	if got := countAll(); got != first {
		t.Errorf("Reload changed entity counts: %v -> %v", first, got)
	}
	if stats.Tiles != first[0] || stats.Waypoints != first[1] {
		t.Errorf("Stats do not match entity counts: %+v", stats)
	}
	if _, ok := ecs.Creeps[creep]; !ok {
		t.Error("Reload should not touch creeps")
	}
	if got := len(ecs.Positions); got != first[0]+first[1]+first[2]+first[3]+1 {
		t.Errorf("Stale positions left after reload: %d", got)
	}
}

func TestReloadKeepsTowerTilesBuilt(t *testing.T) {
	ecs, loader, m := loadSmall(t)

	pos := tilemap.TilePos{X: 3, Y: 0}
	tower := ecs.NewEntity()
	ecs.Towers[tower] = &component.Tower{Tile: pos}

	loader.Load(m)

	id, ok := ecs.TileMap.Base().Get(pos)
	if !ok {
		t.Fatal("Missing tile under tower")
	}
	if ecs.Tiles[id].State != component.TileBuilt {
		t.Errorf("Expected tile under tower to be Built, got %v", ecs.Tiles[id].State)
	}

	other, _ := ecs.TileMap.Base().Get(tilemap.TilePos{X: 2, Y: 0})
	if ecs.Tiles[other].State != component.TileSelectable {
		t.Errorf("Expected free tile to be Selectable, got %v", ecs.Tiles[other].State)
	}
}

func TestLayerOffsetAndSkips(t *testing.T) {
	m := &Map{
		Width: 2, Height: 2, TileWidth: 10, TileHeight: 10, Orientation: "orthogonal",
		Tilesets: []Tileset{{FirstGID: 1}},
		Layers: []Layer{
			{Name: "short", Type: TileLayerType, Width: 2, Height: 2, Data: []uint32{1}},
			{Name: "shifted", Type: TileLayerType, Width: 2, Height: 2, OffsetX: 5, OffsetY: 5, Data: []uint32{1, 1, 1, 1}},
			{Name: "group", Type: "group"},
		},
	}
	ecs := entity.NewECS()
	NewLoader(ecs, 1).Load(m)

	if len(ecs.TileMap.Layers) != 1 {
		t.Fatalf("Expected the short layer to be skipped, got %d layers", len(ecs.TileMap.Layers))
	}
	layer := ecs.TileMap.Base()
	if layer.Name != "shifted" {
		t.Fatalf("Expected base layer 'shifted', got %q", layer.Name)
	}
	c := layer.Grid.TileCenterWorld(tilemap.TilePos{X: 0, Y: 0})
	// Centered: (-10, -10) + half tile (5, 5) + offset (5, -5).
	if !near(c[0], 0) || !near(c[1], -10) {
		t.Errorf("Expected center (0, -10), got %v", c)
	}
}

func TestInfiniteMapSkipsTiles(t *testing.T) {
	m := &Map{
		Width: 1, Height: 1, TileWidth: 8, TileHeight: 8, Orientation: "orthogonal", Infinite: true,
		Tilesets: []Tileset{{FirstGID: 1}},
		Layers: []Layer{
			{Name: "chunks", Type: TileLayerType, Width: 1, Height: 1, Data: []uint32{1}},
			{Name: "obj", Type: ObjectLayerType, Objects: []Object{{Type: FinishObject}}},
		},
	}
	ecs := entity.NewECS()
	stats := NewLoader(ecs, 1).Load(m)

	if stats.Tiles != 0 || ecs.TileMap.Base() != nil {
		t.Error("Infinite maps should produce no tiles")
	}
	if stats.Finishes != 1 {
		t.Error("Objects should still load on infinite maps")
	}
}

func TestIntProperty(t *testing.T) {
	obj := Object{Properties: []Property{
		{Name: "waypoint", Type: "string", Value: "3"},
		{Name: "other", Value: 4},
	}}
	if _, ok := obj.IntProperty("waypoint"); ok {
		t.Error("String property should not read as int")
	}
	if v, ok := obj.IntProperty("other"); !ok || v != 4 {
		t.Errorf("Expected 4, got %d (%v)", v, ok)
	}
	if _, ok := obj.IntProperty("missing"); ok {
		t.Error("Missing property should not be found")
	}
}

func TestShippedLevelLoads(t *testing.T) {
	m, err := LoadFile("../../assets/levels/level_1.yaml")
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	ecs := entity.NewECS()
	stats := NewLoader(ecs, 2.0).Load(m)

	want := Stats{Tiles: 25 * 14, Waypoints: 6, Spawners: 1, Finishes: 1, Zones: 4}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}
