// internal/system/projectile.go
package system

import (
	"math"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/types"
	internalutils "ioni-tower-defense/internal/utils"
	"ioni-tower-defense/pkg/utils"
)

// ProjectileSystem flies projectiles and reports hits to the damage queue.
type ProjectileSystem struct {
	ecs  *entity.ECS
	hits *event.Queue[event.Hit]
}

func NewProjectileSystem(ecs *entity.ECS, hits *event.Queue[event.Hit]) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs, hits: hits}
}

func (s *ProjectileSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.Followers) {
		if !s.ecs.IsDying(id) {
			s.updateFollower(id, deltaTime)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Pointers) {
		if !s.ecs.IsDying(id) {
			s.updatePointer(id, deltaTime)
		}
	}
}

func (s *ProjectileSystem) updateFollower(id types.EntityID, deltaTime float64) {
	follower, pos := s.ecs.Followers[id], s.ecs.Positions[id]
	if pos == nil {
		s.ecs.Despawn(id)
		return
	}

	// Lost target: the projectile vanishes without a hit.
	_, isCreep := s.ecs.Creeps[follower.Target]
	targetPos := s.ecs.Positions[follower.Target]
	if !isCreep || targetPos == nil || s.ecs.IsDying(follower.Target) {
		s.ecs.Despawn(id)
		return
	}

	dx := targetPos.X - pos.X
	dy := targetPos.Y - pos.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	moveDistance := follower.Speed * deltaTime
	if dist <= moveDistance {
		pos.X, pos.Y = targetPos.X, targetPos.Y
	} else {
		pos.X += dx / dist * moveDistance
		pos.Y += dy / dist * moveDistance
	}
	if facing, ok := s.ecs.Facings[id]; ok && dist > 0 {
		facing.Angle = internalutils.Angle(dx, dy)
	}

	if utils.DistanceSq(pos.X, pos.Y, targetPos.X, targetPos.Y) < config.FollowerHitDistSq {
		s.hits.Push(event.Hit{Damage: s.damage(id), Target: follower.Target})
		s.ecs.Despawn(id)
	}
}

func (s *ProjectileSystem) updatePointer(id types.EntityID, deltaTime float64) {
	pointer, pos := s.ecs.Pointers[id], s.ecs.Positions[id]
	if pos == nil {
		s.ecs.Despawn(id)
		return
	}

	total := math.Sqrt(utils.DistanceSq(pointer.SourceX, pointer.SourceY, pointer.TargetX, pointer.TargetY))
	dx := pointer.TargetX - pointer.PosX
	dy := pointer.TargetY - pointer.PosY
	remaining := math.Sqrt(dx*dx + dy*dy)
	moveDistance := pointer.Speed * deltaTime

	if remaining <= moveDistance {
		pointer.PosX, pointer.PosY = pointer.TargetX, pointer.TargetY
		remaining = 0
	} else {
		pointer.PosX += dx / remaining * moveDistance
		pointer.PosY += dy / remaining * moveDistance
		remaining -= moveDistance
	}

	fraction := 1.0
	if total > 0 {
		fraction = 1 - remaining/total
	}
	height := internalutils.ArcHeight(pointer.ArcHeight, fraction)
	pos.X, pos.Y = pointer.PosX, pointer.PosY+height

	if utils.DistanceSq(pointer.PosX, pointer.PosY, pointer.TargetX, pointer.TargetY) < config.PointerArrivalDistSq {
		s.splash(id, pointer)
		s.ecs.Despawn(id)
	}
}

// splash reports one hit per live creep around the landing point.
func (s *ProjectileSystem) splash(id types.EntityID, pointer *component.Pointer) {
	if pointer.SplashRadius <= 0 {
		return
	}
	radiusSq := pointer.SplashRadius * pointer.SplashRadius
	damage := s.damage(id)
	for _, creep := range s.ecs.LiveCreeps() {
		p := s.ecs.Positions[creep]
		if p == nil {
			continue
		}
		if utils.DistanceSq(p.X, p.Y, pointer.TargetX, pointer.TargetY) <= radiusSq {
			s.hits.Push(event.Hit{Damage: damage, Target: creep})
		}
	}
}

func (s *ProjectileSystem) damage(id types.EntityID) int {
	if proj, ok := s.ecs.Projectiles[id]; ok {
		return proj.Damage
	}
	return 0
}
