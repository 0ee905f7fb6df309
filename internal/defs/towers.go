// internal/defs/towers.go
package defs

import "ioni-tower-defense/internal/config"

// TowerDefinition holds the static data for one tower type.
type TowerDefinition struct {
	Type          TowerType       `yaml:"type"`
	Name          string          `yaml:"name"`
	Range         float64         `yaml:"range"`
	Cooldown      float64         `yaml:"cooldown"` // seconds between fire attempts
	LaunchOffsetX float64         `yaml:"launch_offset_x"`
	LaunchOffsetY float64         `yaml:"launch_offset_y"`
	Projectile    ProjectileStats `yaml:"projectile"`
}

// ProjectileStats describes the projectile a tower launches.
type ProjectileStats struct {
	Motion       MotionType `yaml:"motion"`
	Damage       int        `yaml:"damage"`
	Speed        float64    `yaml:"speed"`
	ArcHeight    float64    `yaml:"arc_height,omitempty"`
	SplashRadius float64    `yaml:"splash_radius,omitempty"` // pointer only, 0 = no damage on landing
}

// DefaultTowers returns the built-in tower set.
func DefaultTowers() map[TowerType]TowerDefinition {
	return map[TowerType]TowerDefinition{
		TowerArrow: {
			Type:          TowerArrow,
			Name:          "Arrow Tower",
			Range:         config.ArrowRange,
			Cooldown:      config.ArrowCooldown,
			LaunchOffsetY: config.TowerLaunchOffsetY,
			Projectile: ProjectileStats{
				Motion: MotionFollower,
				Damage: config.ArrowDamage,
				Speed:  config.ArrowSpeed,
			},
		},
		TowerBomb: {
			Type:          TowerBomb,
			Name:          "Bomb Tower",
			Range:         config.BombRange,
			Cooldown:      config.BombCooldown,
			LaunchOffsetY: config.TowerLaunchOffsetY,
			Projectile: ProjectileStats{
				Motion:       MotionPointer,
				Damage:       config.BombDamage,
				Speed:        config.BombSpeed,
				ArcHeight:    config.BombArcHeight,
				SplashRadius: config.BombSplashRadius,
			},
		},
	}
}
