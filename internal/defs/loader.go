// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Library holds the tower and creep definitions used by a game.
type Library struct {
	Towers map[TowerType]TowerDefinition
	Creep  CreepDefinition
}

// NewLibrary returns a library filled with the built-in definitions.
func NewLibrary() *Library {
	return &Library{
		Towers: DefaultTowers(),
		Creep:  DefaultCreep(),
	}
}

// Tower returns the definition for t.
func (l *Library) Tower(t TowerType) (TowerDefinition, bool) {
	def, ok := l.Towers[t]
	return def, ok
}

// LoadTowerDefinitions reads a YAML list of tower definitions and replaces
// the matching entries of the library. Types missing from the file keep
// their current definition.
func (l *Library) LoadTowerDefinitions(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file %s: %w", path, err)
	}
	return l.ParseTowerDefinitions(data)
}

// ParseTowerDefinitions is LoadTowerDefinitions on an in-memory document.
func (l *Library) ParseTowerDefinitions(data []byte) error {
	var towerDefs []TowerDefinition
	if err := yaml.Unmarshal(data, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	for i, def := range towerDefs {
		if err := validateTower(def); err != nil {
			return fmt.Errorf("tower definition %d: %w", i, err)
		}
	}
	for _, def := range towerDefs {
		l.Towers[def.Type] = def
	}

	log.Printf("[Defs] Loaded %d tower definitions", len(towerDefs))
	return nil
}

// LoadCreepDefinition reads the creep definition from a YAML file.
func (l *Library) LoadCreepDefinition(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read creep definition file %s: %w", path, err)
	}
	return l.ParseCreepDefinition(data)
}

// ParseCreepDefinition is LoadCreepDefinition on an in-memory document.
func (l *Library) ParseCreepDefinition(data []byte) error {
	creep := DefaultCreep()
	if err := yaml.Unmarshal(data, &creep); err != nil {
		return fmt.Errorf("failed to unmarshal creep definition: %w", err)
	}
	if creep.Health <= 0 {
		return fmt.Errorf("creep health must be positive, got %d", creep.Health)
	}
	if creep.Speed < 0 {
		return fmt.Errorf("creep speed cannot be negative, got %f", creep.Speed)
	}
	if creep.SpawnInterval <= 0 {
		return fmt.Errorf("creep spawn_interval must be positive, got %f", creep.SpawnInterval)
	}

	l.Creep = creep
	log.Printf("[Defs] Loaded creep definition %q", creep.Name)
	return nil
}

func validateTower(def TowerDefinition) error {
	if _, err := ParseTowerType(string(def.Type)); err != nil {
		return err
	}
	if def.Range <= 0 {
		return fmt.Errorf("%s: range must be positive", def.Type)
	}
	if def.Cooldown <= 0 {
		return fmt.Errorf("%s: cooldown must be positive", def.Type)
	}
	switch def.Projectile.Motion {
	case MotionFollower, MotionPointer:
	default:
		return fmt.Errorf("%s: unknown projectile motion %q", def.Type, def.Projectile.Motion)
	}
	if def.Projectile.Speed <= 0 {
		return fmt.Errorf("%s: projectile speed must be positive", def.Type)
	}
	if def.Projectile.Damage < 0 {
		return fmt.Errorf("%s: projectile damage cannot be negative", def.Type)
	}
	return nil
}
