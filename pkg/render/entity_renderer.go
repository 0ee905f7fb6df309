// pkg/render/entity_renderer.go
package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/defs"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/pkg/tilemap"
)

const arrowLength = 16

// EntityRenderer draws towers, creeps and projectiles.
type EntityRenderer struct {
	camera *tilemap.Camera
	colors *EntityColors
}

func NewEntityRenderer(camera *tilemap.Camera, colors *EntityColors) *EntityRenderer {
	return &EntityRenderer{camera: camera, colors: colors}
}

func (r *EntityRenderer) Draw(screen *ebiten.Image, ecs *entity.ECS) {
	r.drawTowers(screen, ecs)
	r.drawCreeps(screen, ecs)
	r.drawProjectiles(screen, ecs)
}

func (r *EntityRenderer) drawTowers(screen *ebiten.Image, ecs *entity.ECS) {
	size := float32(r.camera.Scale(config.TowerSize * 0.75))
	for id, tower := range ecs.Towers {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		fill := r.colors.ArrowTowerColor
		if tower.Type == defs.TowerBomb {
			fill = r.colors.BombTowerColor
		}
		x, y := r.camera.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, fill, true)
		vector.StrokeRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, config.StrokeWidth, DarkenColor(fill), true)
	}
}

func (r *EntityRenderer) drawCreeps(screen *ebiten.Image, ecs *entity.ECS) {
	radius := r.camera.Scale(config.CreepRadius)
	for _, id := range ecs.LiveCreeps() {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := r.camera.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), r.colors.CreepColor, true)

		if facing, ok := ecs.Facings[id]; ok {
			// Screen y points down, so the heading's y component flips.
			hx := x + math.Cos(facing.Angle)*radius
			hy := y - math.Sin(facing.Angle)*radius
			vector.StrokeLine(screen, float32(x), float32(y), float32(hx), float32(hy), config.StrokeWidth, r.colors.HealthbarColor, true)
		}

		if health, ok := ecs.Healths[id]; ok {
			r.drawHealthbar(screen, pos.X, pos.Y+config.HealthbarOffsetY, health.Fraction())
		}
	}
}

// drawHealthbar draws a bar centered on the world point (x, y).
func (r *EntityRenderer) drawHealthbar(screen *ebiten.Image, x, y, fraction float64) {
	sx, sy := r.camera.WorldToScreen(x, y)
	length := r.camera.Scale(config.HealthbarLength)
	height := r.camera.Scale(config.HealthbarHeight)
	padding := r.camera.Scale(config.HealthbarPadding)

	left := sx - length/2
	top := sy - height/2
	vector.DrawFilledRect(screen, float32(left), float32(top), float32(length), float32(height), r.colors.HealthbarBgColor, false)

	inner := (length - 2*padding) * fraction
	if inner > 0 {
		vector.DrawFilledRect(screen, float32(left+padding), float32(top+padding), float32(inner), float32(height-2*padding), r.colors.HealthbarColor, false)
	}
}

func (r *EntityRenderer) drawProjectiles(screen *ebiten.Image, ecs *entity.ECS) {
	for id := range ecs.Followers {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		angle := 0.0
		if facing, ok := ecs.Facings[id]; ok {
			angle = facing.Angle
		}
		half := arrowLength / 2.0
		x0, y0 := r.camera.WorldToScreen(pos.X-math.Cos(angle)*half, pos.Y-math.Sin(angle)*half)
		x1, y1 := r.camera.WorldToScreen(pos.X+math.Cos(angle)*half, pos.Y+math.Sin(angle)*half)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), config.StrokeWidth, r.colors.ArrowColor, true)
	}

	radius := float32(r.camera.Scale(config.ProjectileRadius))
	for id, pointer := range ecs.Pointers {
		pos, ok := ecs.Positions[id]
		if !ok {
			continue
		}
		// Shadow on the ground, bomb lifted by the arc.
		gx, gy := r.camera.WorldToScreen(pointer.PosX, pointer.PosY)
		vector.DrawFilledCircle(screen, float32(gx), float32(gy), radius*0.8, DarkenColor(r.colors.HealthbarBgColor), true)
		x, y := r.camera.WorldToScreen(pos.X, pos.Y)
		vector.DrawFilledCircle(screen, float32(x), float32(y), radius, r.colors.BombColor, true)
	}
}
