// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1600
	ScreenHeight = 900
	MaxDeltaTime = 0.06

	LevelPath     = "assets/levels/level_1.yaml"
	TowerDefsPath = "assets/defs/towers.yaml"
	CreepDefsPath = "assets/defs/creeps.yaml"

	// Path following
	WaypointReachDistanceSq = 1.0

	// Creeps
	CreepHealth        = 500
	CreepSpeed         = 200.0
	CreepRadius        = 24.0
	SpawnInterval      = 2.0
	HealthbarLength    = 64.0
	HealthbarHeight    = 10.0
	HealthbarPadding   = 2.0
	HealthbarOffsetY   = 32.0
	TowerSize          = 64.0
	TowerLaunchOffsetY = 0.25 * TowerSize

	// Arrow tower / follower projectile
	ArrowRange           = 450.0
	ArrowCooldown        = 1.0
	ArrowDamage          = 40
	ArrowSpeed           = 800.0
	FollowerHitDistance  = 20.0
	FollowerHitDistSq    = FollowerHitDistance * FollowerHitDistance
	ArrowProjectileScale = 0.25

	// Bomb tower / pointer projectile
	BombRange            = 300.0
	BombCooldown         = 3.0
	BombDamage           = 40
	BombSpeed            = 100.0
	BombArcHeight        = 30.0
	BombSplashRadius     = 64.0
	PointerArrivalDist   = 10.0
	PointerArrivalDistSq = PointerArrivalDist * PointerArrivalDist

	ProjectileRadius = 5.0
	StrokeWidth      = 2.0
)

var (
	BackgroundColor   = color.RGBA{51, 51, 51, 255}
	TileColor         = color.RGBA{70, 100, 120, 255}
	TileAltColor      = color.RGBA{80, 112, 96, 255}
	TileGridColor     = color.RGBA{40, 40, 50, 255}
	SelectedTileColor = color.RGBA{0, 255, 128, 128}
	BuiltTileColor    = color.RGBA{150, 70, 70, 160}
	BuildZoneColor    = color.RGBA{255, 255, 0, 128}
	WaypointColor     = color.RGBA{255, 255, 0, 255}
	FinishColor       = color.RGBA{255, 0, 0, 255}
	SpawnerColor      = color.RGBA{0, 255, 0, 255}
	CreepColor        = color.RGBA{20, 20, 30, 255}
	HealthbarBgColor  = color.RGBA{51, 51, 51, 255}
	HealthbarColor    = color.RGBA{0, 255, 64, 255}
	ArrowTowerColor   = color.RGBA{0, 255, 128, 255}
	BombTowerColor    = color.RGBA{255, 140, 0, 255}
	ArrowColor        = color.RGBA{240, 240, 240, 255}
	BombColor         = color.RGBA{20, 20, 20, 255}
	TextLightColor    = color.RGBA{240, 240, 240, 255}
	BuildModeColor    = color.RGBA{102, 204, 153, 220}
	PlayModeColor     = color.RGBA{179, 179, 179, 220}
)
