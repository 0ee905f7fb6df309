package system

import (
	"testing"

	"ioni-tower-defense/internal/event"
)

func TestCreepNearWaypointAdvancesAndSteers(t *testing.T) {
	w := newWorld()
	w.waypoint(0, 0, 0)
	w.waypoint(1, 100, 0)
	w.finish(200, 0)
	c := w.creep(0.5, 0)

	NewPathSystem(w.ecs, w.events).Update(0.016)

	if got := w.ecs.WaypointFollowers[c].Index; got != 1 {
		t.Fatalf("Expected index 1, got %d", got)
	}
	vel := w.ecs.Velocities[c]
	if !near(vel.DirX, 1) || !near(vel.DirY, 0) {
		t.Errorf("Expected direction (1, 0), got (%v, %v)", vel.DirX, vel.DirY)
	}
	if vel.Goal == nil || vel.Goal.X != 100 {
		t.Errorf("Expected goal at waypoint 1, got %+v", vel.Goal)
	}
}

func TestSingleAdvancePerTick(t *testing.T) {
	w := newWorld()
	w.waypoint(0, 0, 0)
	w.waypoint(1, 0, 0)
	w.waypoint(2, 0, 0)
	w.finish(50, 0)
	c := w.creep(0, 0)

	path := NewPathSystem(w.ecs, w.events)
	for tick := 1; tick <= 3; tick++ {
		path.Update(0.016)
		if got := w.ecs.WaypointFollowers[c].Index; got != tick {
			t.Errorf("Tick %d: expected index %d, got %d", tick, tick, got)
		}
	}
}

func TestWaypointIndexNeverDecreases(t *testing.T) {
	w := newWorld()
	w.waypoint(0, 100, 0)
	w.waypoint(1, 100, 100)
	w.waypoint(2, -50, 100)
	w.finish(-50, -50)
	c := w.creep(0, 0)

	last := 0
	for i := 0; i < 200; i++ {
		w.step(0.05)
		follower, ok := w.ecs.WaypointFollowers[c]
		if !ok {
			break
		}
		if follower.Index < last {
			t.Fatalf("Index decreased from %d to %d", last, follower.Index)
		}
		last = follower.Index
	}
	if last != 3 {
		t.Errorf("Expected creep to pass all 3 waypoints, last index %d", last)
	}
	if w.count(event.FinishReached) != 1 {
		t.Errorf("Expected one FinishReached, got %d", w.count(event.FinishReached))
	}
	if _, ok := w.ecs.Creeps[c]; ok {
		t.Error("Creep should be removed after reaching the finish")
	}
}

func TestFinishReached(t *testing.T) {
	w := newWorld()
	w.finish(10, 10)
	c := w.creep(10.5, 10)

	NewPathSystem(w.ecs, w.events).Update(0.016)

	if !w.ecs.IsDying(c) {
		t.Fatal("Creep on the finish should be marked dying")
	}
	if w.count(event.FinishReached) != 1 {
		t.Errorf("Expected one FinishReached, got %d", w.count(event.FinishReached))
	}
	if w.received[0].Data != c {
		t.Errorf("Expected event for creep %d, got %v", c, w.received[0].Data)
	}
}

func TestNoFinishRemovesCreep(t *testing.T) {
	w := newWorld()
	c := w.creep(0, 0)

	NewPathSystem(w.ecs, w.events).Update(0.016)

	if !w.ecs.IsDying(c) {
		t.Error("Creep with nowhere to go should be removed")
	}
	if w.count(event.FinishReached) != 0 {
		t.Error("Removal for a missing finish is not a finish")
	}
}

func TestWaypointAddedLaterIsFound(t *testing.T) {
	w := newWorld()
	w.finish(0, -100)
	c := w.creep(0, 0)
	path := NewPathSystem(w.ecs, w.events)

	path.Update(0.016)
	if got := w.ecs.Velocities[c].DirY; !near(got, -1) {
		t.Fatalf("Expected to head for the finish, got DirY %v", got)
	}

	w.waypoint(0, 100, 0)
	path.Update(0.016)
	if got := w.ecs.Velocities[c].DirX; !near(got, 1) {
		t.Errorf("Expected to head for the new waypoint, got DirX %v", got)
	}
}
