package utils

import (
	"math"
	"testing"
)

func TestArcHeight(t *testing.T) {
	tests := []struct {
		fraction float64
		want     float64
	}{
		{0, 0},
		{0.25, 7.5},
		{0.5, 30},
		{0.75, 7.5},
		{1, 0},
		{-1, 0},
		{2, 0},
	}
	for _, tt := range tests {
		if got := ArcHeight(30, tt.fraction); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("ArcHeight(30, %f): expected %f, got %f", tt.fraction, tt.want, got)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Errorf("Expected 12.5, got %f", got)
	}
}
