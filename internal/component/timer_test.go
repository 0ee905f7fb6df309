package component

import "testing"

func TestTimerRepeats(t *testing.T) {
	timer := NewTimer(1.0)

	timer.Tick(0.5)
	if timer.Finished() {
		t.Fatal("Timer should not finish after 0.5s")
	}

	timer.Tick(0.5)
	if !timer.Finished() {
		t.Fatal("Timer should finish after 1.0s")
	}
	if timer.Elapsed != 0 {
		t.Errorf("Expected elapsed to wrap to 0, got %f", timer.Elapsed)
	}

	timer.Tick(0.25)
	if timer.Finished() {
		t.Error("Finished should reset on the next tick")
	}
}

func TestTimerKeepsRemainder(t *testing.T) {
	timer := NewTimer(2.0)
	timer.Tick(2.5)
	if !timer.Finished() {
		t.Fatal("Timer should finish")
	}
	if timer.Elapsed != 0.5 {
		t.Errorf("Expected remainder 0.5, got %f", timer.Elapsed)
	}
}

func TestHealthDisplay(t *testing.T) {
	h := FullHealth(500)
	if h.Fraction() != 1 {
		t.Errorf("Expected full fraction, got %f", h.Fraction())
	}

	h.Current = -40
	if h.Displayed() != 0 {
		t.Errorf("Displayed health should floor at 0, got %d", h.Displayed())
	}
	if h.Fraction() != 0 {
		t.Errorf("Fraction should floor at 0, got %f", h.Fraction())
	}

	h.Current = 250
	if h.Fraction() != 0.5 {
		t.Errorf("Expected 0.5, got %f", h.Fraction())
	}
}

func TestTileMapBase(t *testing.T) {
	var m *TileMap
	if m.Base() != nil {
		t.Error("Nil tile map should have no base layer")
	}

	m = &TileMap{Layers: []*TileLayer{{ID: 3}, {ID: 4}}}
	if m.Base().ID != 3 {
		t.Errorf("Expected first layer as base, got %d", m.Base().ID)
	}
}
