// internal/system/fire_control.go
package system

import (
	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/types"
	internalutils "ioni-tower-defense/internal/utils"
	"ioni-tower-defense/pkg/utils"
)

// FireControlSystem ticks tower cooldowns and launches projectiles at the
// nearest creep in range.
type FireControlSystem struct {
	ecs *entity.ECS
}

func NewFireControlSystem(ecs *entity.ECS) *FireControlSystem {
	return &FireControlSystem{ecs: ecs}
}

func (s *FireControlSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedIDs(s.ecs.ProjectileThrowers) {
		fc := &s.ecs.ProjectileThrowers[id].FireControl
		if target, ok := s.ready(id, fc, deltaTime); ok {
			s.launchFollower(id, fc, target)
		}
	}
	for _, id := range entity.SortedIDs(s.ecs.Splashers) {
		fc := &s.ecs.Splashers[id].FireControl
		if target, ok := s.ready(id, fc, deltaTime); ok {
			s.launchPointer(id, fc, target)
		}
	}
}

// ready ticks the cooldown and, when it completes, picks a target. The
// cooldown restarts whether or not a target is found.
func (s *FireControlSystem) ready(towerID types.EntityID, fc *component.FireControl, deltaTime float64) (types.EntityID, bool) {
	fc.Cooldown.Tick(deltaTime)
	if !fc.Cooldown.Finished() {
		return 0, false
	}
	pos := s.ecs.Positions[towerID]
	if pos == nil {
		return 0, false
	}
	return s.nearestCreep(pos.X, pos.Y, fc.Range)
}

// nearestCreep returns the closest live creep within rng of (x, y). On a
// tie the lowest id wins.
func (s *FireControlSystem) nearestCreep(x, y, rng float64) (types.EntityID, bool) {
	var (
		best   types.EntityID
		bestSq float64
		found  bool
	)
	for _, id := range s.ecs.LiveCreeps() {
		pos := s.ecs.Positions[id]
		if pos == nil {
			continue
		}
		distSq := utils.DistanceSq(x, y, pos.X, pos.Y)
		if distSq > rng*rng {
			continue
		}
		if !found || distSq < bestSq {
			best, bestSq, found = id, distSq, true
		}
	}
	return best, found
}

func (s *FireControlSystem) launchPosition(towerID types.EntityID, fc *component.FireControl) (float64, float64) {
	pos := s.ecs.Positions[towerID]
	return pos.X + fc.LaunchOffsetX, pos.Y + fc.LaunchOffsetY
}

func (s *FireControlSystem) launchFollower(towerID types.EntityID, fc *component.FireControl, target types.EntityID) {
	x, y := s.launchPosition(towerID, fc)
	targetPos := s.ecs.Positions[target]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Projectiles[id] = &component.Projectile{Damage: fc.Projectile.Damage}
	s.ecs.Followers[id] = &component.Follower{Speed: fc.Projectile.Speed, Target: target}
	s.ecs.Facings[id] = &component.Facing{Angle: internalutils.Angle(targetPos.X-x, targetPos.Y-y)}
}

func (s *FireControlSystem) launchPointer(towerID types.EntityID, fc *component.FireControl, target types.EntityID) {
	x, y := s.launchPosition(towerID, fc)
	targetPos := s.ecs.Positions[target]

	id := s.ecs.NewEntity()
	s.ecs.Positions[id] = &component.Position{X: x, Y: y}
	s.ecs.Projectiles[id] = &component.Projectile{Damage: fc.Projectile.Damage}
	s.ecs.Pointers[id] = &component.Pointer{
		Speed:        fc.Projectile.Speed,
		SourceX:      x,
		SourceY:      y,
		TargetX:      targetPos.X,
		TargetY:      targetPos.Y,
		PosX:         x,
		PosY:         y,
		ArcHeight:    fc.Projectile.ArcHeight,
		SplashRadius: fc.Projectile.SplashRadius,
	}
	s.ecs.Facings[id] = &component.Facing{Angle: internalutils.Angle(targetPos.X-x, targetPos.Y-y)}
}
