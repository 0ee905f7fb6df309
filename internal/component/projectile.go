// internal/component/projectile.go
package component

import "ioni-tower-defense/internal/types"

// Projectile carries the damage a projectile deals.
type Projectile struct {
	Damage int
}

// Follower homes in on a live target and hits it.
type Follower struct {
	Speed  float64
	Target types.EntityID
}

// Pointer flies toward a position captured at launch, drawn along an arc.
// PosX/PosY is the ground position; the entity Position additionally
// carries the arc height.
type Pointer struct {
	Speed            float64
	SourceX, SourceY float64
	TargetX, TargetY float64
	PosX, PosY       float64
	ArcHeight        float64
	SplashRadius     float64
}
