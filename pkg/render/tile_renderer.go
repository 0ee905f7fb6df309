// pkg/render/tile_renderer.go
package render

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/pkg/tilemap"
)

const markerRadius = 8

// TileRenderer draws the tile layers and level markers.
type TileRenderer struct {
	camera   *tilemap.Camera
	colors   *MapColors
	fontFace font.Face
	fillImg  *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	mapImage *ebiten.Image // pre-rendered tile layers
}

func NewTileRenderer(camera *tilemap.Camera, colors *MapColors, screenWidth, screenHeight int, fontFace font.Face) *TileRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &TileRenderer{
		camera:   camera,
		colors:   colors,
		fontFace: fontFace,
		fillImg:  fillImg,
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 12),
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderMapImage redraws the cached tile layers. Call it after every level load.
func (r *TileRenderer) RenderMapImage(ecs *entity.ECS) {
	r.mapImage.Clear()
	if ecs.TileMap == nil {
		return
	}
	for _, layer := range ecs.TileMap.Layers {
		for pos, id := range layer.Tiles {
			tile, ok := ecs.Tiles[id]
			if !ok {
				continue
			}
			fill := TileShade(r.colors.TileColor, r.colors.TileAltColor, tile.Tileset, tile.TextureIndex)
			r.drawTile(r.mapImage, layer.Grid, pos, fill)
			r.strokeTile(r.mapImage, layer.Grid, pos, r.colors.TileGridColor)
		}
	}
}

// Draw paints the cached map, tile state overlays and the level markers.
// Build zones are only outlined while building.
func (r *TileRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS, buildMode bool) {
	screen.DrawImage(r.mapImage, nil)

	if base := ecs.TileMap.Base(); base != nil {
		for pos, id := range base.Tiles {
			switch ecs.Tiles[id].State {
			case component.TileSelected:
				r.drawTile(screen, base.Grid, pos, r.colors.SelectedTileColor)
			case component.TileBuilt:
				r.drawTile(screen, base.Grid, pos, r.colors.BuiltTileColor)
			}
		}
	}

	if buildMode {
		for _, zone := range ecs.BuildZones {
			x0, y0 := r.camera.WorldToScreen(zone.Rect.Min[0], zone.Rect.Max[1])
			x1, y1 := r.camera.WorldToScreen(zone.Rect.Max[0], zone.Rect.Min[1])
			vector.StrokeRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0),
				r.colors.StrokeWidth, r.colors.BuildZoneColor, true)
		}
	}

	for _, wp := range ecs.Waypoints {
		x, y := r.camera.WorldToScreen(wp.X, wp.Y)
		vector.StrokeCircle(screen, float32(x), float32(y), markerRadius, r.colors.StrokeWidth, r.colors.WaypointColor, true)
		r.label(screen, strconv.Itoa(wp.Index), x, y-2*markerRadius, r.colors.WaypointColor)
	}
	for _, f := range ecs.Finishes {
		x, y := r.camera.WorldToScreen(f.X, f.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), markerRadius, r.colors.FinishColor, true)
	}
	for _, s := range ecs.Spawners {
		x, y := r.camera.WorldToScreen(s.X, s.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), markerRadius, r.colors.SpawnerColor, true)
	}
}

// tileCorners returns the screen corners of a cell, counter-clockwise from
// its bottom-left.
func (r *TileRenderer) tileCorners(grid *tilemap.Grid, pos tilemap.TilePos) [4]f64.Vec2 {
	x0 := float64(pos.X) * grid.TileWidth
	y0 := float64(pos.Y) * grid.TileHeight
	local := [4]f64.Vec2{
		{x0, y0},
		{x0 + grid.TileWidth, y0},
		{x0 + grid.TileWidth, y0 + grid.TileHeight},
		{x0, y0 + grid.TileHeight},
	}
	var out [4]f64.Vec2
	for i, p := range local {
		w := grid.ToWorld(p)
		sx, sy := r.camera.WorldToScreen(w[0], w[1])
		out[i] = f64.Vec2{sx, sy}
	}
	return out
}

func (r *TileRenderer) tilePath(grid *tilemap.Grid, pos tilemap.TilePos) *vector.Path {
	corners := r.tileCorners(grid, pos)
	path := &vector.Path{}
	path.MoveTo(float32(corners[0][0]), float32(corners[0][1]))
	for _, c := range corners[1:] {
		path.LineTo(float32(c[0]), float32(c[1]))
	}
	path.Close()
	return path
}

func (r *TileRenderer) drawTile(target *ebiten.Image, grid *tilemap.Grid, pos tilemap.TilePos, fillColor color.RGBA) {
	path := r.tilePath(grid, pos)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	r.paint(target, fillColor)
}

func (r *TileRenderer) strokeTile(target *ebiten.Image, grid *tilemap.Grid, pos tilemap.TilePos, strokeColor color.RGBA) {
	path := r.tilePath(grid, pos)
	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForStroke(r.fillVs[:0], r.fillIs[:0], &vector.StrokeOptions{
		Width: r.colors.StrokeWidth / 2,
	})
	r.paint(target, strokeColor)
}

func (r *TileRenderer) paint(target *ebiten.Image, c color.RGBA) {
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func (r *TileRenderer) label(target *ebiten.Image, s string, x, y float64, c color.Color) {
	if r.fontFace == nil {
		return
	}
	bounds := text.BoundString(r.fontFace, s)
	text.Draw(target, s, r.fontFace, int(x)-bounds.Dx()/2, int(y), c)
}
