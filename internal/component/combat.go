package component

import "ioni-tower-defense/internal/defs"

// FireControl is the shared state of a tower weapon: a repeating cooldown
// and a maximum engagement range.
type FireControl struct {
	Range         float64
	Cooldown      *Timer
	LaunchOffsetX float64
	LaunchOffsetY float64
	Projectile    defs.ProjectileStats
}

// NewFireControl builds the weapon state described by a tower definition.
func NewFireControl(def defs.TowerDefinition) FireControl {
	return FireControl{
		Range:         def.Range,
		Cooldown:      NewTimer(def.Cooldown),
		LaunchOffsetX: def.LaunchOffsetX,
		LaunchOffsetY: def.LaunchOffsetY,
		Projectile:    def.Projectile,
	}
}

// ProjectileThrower fires homing projectiles at a single target.
type ProjectileThrower struct {
	FireControl
}

// Splasher lobs projectiles at the position a target held at launch.
type Splasher struct {
	FireControl
}
