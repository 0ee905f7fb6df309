// internal/defs/creeps.go
package defs

import "ioni-tower-defense/internal/config"

// CreepDefinition holds the static data for spawned creeps.
type CreepDefinition struct {
	Name          string  `yaml:"name"`
	Health        int     `yaml:"health"`
	Speed         float64 `yaml:"speed"`
	SpawnInterval float64 `yaml:"spawn_interval"`
}

// DefaultCreep returns the built-in creep.
func DefaultCreep() CreepDefinition {
	return CreepDefinition{
		Name:          "Creep",
		Health:        config.CreepHealth,
		Speed:         config.CreepSpeed,
		SpawnInterval: config.SpawnInterval,
	}
}
