package system

import (
	"testing"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/types"
)

func (w *world) follower(x, y float64, target types.EntityID) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: x, Y: y}
	w.ecs.Projectiles[id] = &component.Projectile{Damage: config.ArrowDamage}
	w.ecs.Followers[id] = &component.Follower{Speed: config.ArrowSpeed, Target: target}
	w.ecs.Facings[id] = &component.Facing{}
	return id
}

func (w *world) pointer(sx, sy, tx, ty, splash float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Positions[id] = &component.Position{X: sx, Y: sy}
	w.ecs.Projectiles[id] = &component.Projectile{Damage: config.BombDamage}
	w.ecs.Pointers[id] = &component.Pointer{
		Speed:   config.BombSpeed,
		SourceX: sx, SourceY: sy,
		TargetX: tx, TargetY: ty,
		PosX: sx, PosY: sy,
		ArcHeight:    config.BombArcHeight,
		SplashRadius: splash,
	}
	return id
}

func TestFollowerHomesAndHits(t *testing.T) {
	w := newWorld()
	c := w.creep(400, 0)
	p := w.follower(0, 0, c)
	proj := NewProjectileSystem(w.ecs, w.hits)

	proj.Update(0.25)
	if pos := w.ecs.Positions[p]; !near(pos.X, 200) {
		t.Fatalf("Expected follower at x=200, got %v", pos.X)
	}
	if w.hits.Len() != 0 {
		t.Fatal("No hit expected yet")
	}

	w.ecs.Positions[c].Y = 100
	proj.Update(0.5)

	hits := w.hits.Drain()
	if len(hits) != 1 || hits[0].Target != c || hits[0].Damage != config.ArrowDamage {
		t.Fatalf("Expected one hit on %d, got %v", c, hits)
	}
	if !w.ecs.IsDying(p) {
		t.Error("Follower should be removed after hitting")
	}
}

func TestFollowerLosesTarget(t *testing.T) {
	w := newWorld()
	c := w.creep(400, 0)
	p := w.follower(0, 0, c)

	w.ecs.Despawn(c)
	w.ecs.RemoveDying()
	NewProjectileSystem(w.ecs, w.hits).Update(0.016)

	if !w.ecs.IsDying(p) {
		t.Error("Follower with a lost target should be removed")
	}
	if w.hits.Len() != 0 {
		t.Errorf("Lost target must not produce a hit, got %d", w.hits.Len())
	}
}

func TestFollowerIgnoresDyingTarget(t *testing.T) {
	w := newWorld()
	c := w.creep(10, 0)
	p := w.follower(0, 0, c)
	w.ecs.Despawn(c)

	NewProjectileSystem(w.ecs, w.hits).Update(0.016)

	if !w.ecs.IsDying(p) || w.hits.Len() != 0 {
		t.Error("Follower should vanish without a hit when its target is dying")
	}
}

func TestPointerArcsAndLands(t *testing.T) {
	w := newWorld()
	p := w.pointer(0, 0, 100, 0, 0)
	proj := NewProjectileSystem(w.ecs, w.hits)

	proj.Update(0.5)
	pos := w.ecs.Positions[p]
	if !near(pos.X, 50) || !near(pos.Y, config.BombArcHeight) {
		t.Fatalf("Expected peak (50, %v) at the midpoint, got (%v, %v)", config.BombArcHeight, pos.X, pos.Y)
	}

	proj.Update(0.45)
	if !w.ecs.IsDying(p) {
		t.Fatal("Pointer within 10 units of its target should land")
	}
	if w.hits.Len() != 0 {
		t.Errorf("Pointer without splash should not hit, got %d", w.hits.Len())
	}
}

func TestPointerSplash(t *testing.T) {
	w := newWorld()
	inside := w.creep(100, 30)
	edge := w.creep(100+config.BombSplashRadius, 0)
	outside := w.creep(200, 0)
	dying := w.creep(100, 0)
	w.ecs.Despawn(dying)

	p := w.pointer(100, 0, 100, 0, config.BombSplashRadius)
	NewProjectileSystem(w.ecs, w.hits).Update(0.016)

	if !w.ecs.IsDying(p) {
		t.Fatal("Zero-length flight should land immediately")
	}
	hits := w.hits.Drain()
	if len(hits) != 2 {
		t.Fatalf("Expected 2 hits, got %v", hits)
	}
	if hits[0].Target != inside || hits[1].Target != edge {
		t.Errorf("Expected hits on %d and %d, got %v", inside, edge, hits)
	}
	for _, h := range hits {
		if h.Target == outside {
			t.Error("Creep outside the splash radius was hit")
		}
	}
}

func TestHitsFlowIntoDamage(t *testing.T) {
	w := newWorld()
	w.finish(1000, 0)
	c := w.creep(10, 0)
	w.follower(0, 0, c)

	w.step(0.016)

	if got := w.ecs.Healths[c].Current; got != config.CreepHealth-config.ArrowDamage {
		t.Errorf("Expected health %d, got %d", config.CreepHealth-config.ArrowDamage, got)
	}
	if len(w.ecs.Followers) != 0 {
		t.Error("Follower should be swept after the hit")
	}
	if w.count(event.EnemyKilled) != 0 {
		t.Error("One arrow should not kill")
	}
}
