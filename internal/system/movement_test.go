package system

import (
	"math"
	"testing"

	"ioni-tower-defense/internal/component"
)

func TestMovementIntegrates(t *testing.T) {
	w := newWorld()
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{}
	w.ecs.Velocities[id] = &component.Velocity{Speed: 200, DirX: 0, DirY: 1}
	w.ecs.Facings[id] = &component.Facing{}

	NewMovementSystem(w.ecs).Update(0.5)

	pos := w.ecs.Positions[id]
	if !near(pos.X, 0) || !near(pos.Y, 100) {
		t.Errorf("Expected (0, 100), got (%v, %v)", pos.X, pos.Y)
	}
	if !near(w.ecs.Facings[id].Angle, math.Pi/2) {
		t.Errorf("Expected facing pi/2, got %v", w.ecs.Facings[id].Angle)
	}
}

func TestMovementStopsOnGoal(t *testing.T) {
	w := newWorld()
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: 0, Y: 0}
	w.ecs.Velocities[id] = &component.Velocity{
		Speed: 200, DirX: 1, DirY: 0,
		Goal: &component.Position{X: 5, Y: 0},
	}

	NewMovementSystem(w.ecs).Update(0.1)

	pos := w.ecs.Positions[id]
	if pos.X != 5 || pos.Y != 0 {
		t.Errorf("Expected to land on the goal (5, 0), got (%v, %v)", pos.X, pos.Y)
	}
}
