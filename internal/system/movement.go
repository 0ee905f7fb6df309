// internal/system/movement.go
package system

import (
	"math"

	"ioni-tower-defense/internal/entity"
	internalutils "ioni-tower-defense/internal/utils"
)

// MovementSystem integrates velocities into positions.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Velocities) {
		if s.ecs.IsDying(id) {
			continue
		}
		pos, vel := s.ecs.Positions[id], s.ecs.Velocities[id]
		if pos == nil {
			continue
		}

		moveDistance := vel.Speed * deltaTime
		if vel.Goal != nil {
			dx := vel.Goal.X - pos.X
			dy := vel.Goal.Y - pos.Y
			if math.Sqrt(dx*dx+dy*dy) <= moveDistance {
				pos.X = vel.Goal.X
				pos.Y = vel.Goal.Y
			} else {
				pos.X += vel.DirX * moveDistance
				pos.Y += vel.DirY * moveDistance
			}
		} else {
			pos.X += vel.DirX * moveDistance
			pos.Y += vel.DirY * moveDistance
		}

		if facing, ok := s.ecs.Facings[id]; ok && (vel.DirX != 0 || vel.DirY != 0) {
			facing.Angle = internalutils.Angle(vel.DirX, vel.DirY)
		}
	}
}
