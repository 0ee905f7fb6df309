// internal/defs/types.go
package defs

import (
	"fmt"
	"strings"
)

// TowerType is the kind of tower a player can build.
type TowerType string

const (
	TowerArrow TowerType = "ARROW"
	TowerBomb  TowerType = "BOMB"
)

// MotionType selects how a tower's projectiles fly.
type MotionType string

const (
	// MotionFollower homes in on a live target.
	MotionFollower MotionType = "FOLLOWER"
	// MotionPointer flies to a position captured at launch.
	MotionPointer MotionType = "POINTER"
)

// ParseTowerType accepts "arrow"/"bomb" in any case.
func ParseTowerType(s string) (TowerType, error) {
	switch t := TowerType(strings.ToUpper(strings.TrimSpace(s))); t {
	case TowerArrow, TowerBomb:
		return t, nil
	default:
		return "", fmt.Errorf("unknown tower type %q", s)
	}
}

func (t TowerType) String() string {
	switch t {
	case TowerArrow:
		return "Arrow"
	case TowerBomb:
		return "Bomb"
	default:
		return string(t)
	}
}
