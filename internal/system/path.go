// internal/system/path.go
package system

import (
	"log"

	"ioni-tower-defense/internal/component"
	"ioni-tower-defense/internal/config"
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/event"
	"ioni-tower-defense/internal/types"
	"ioni-tower-defense/pkg/utils"
)

// PathSystem advances creeps along the waypoint chain and steers them
// toward their current waypoint, or the finish once waypoints run out.
type PathSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewPathSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *PathSystem {
	return &PathSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *PathSystem) Update(deltaTime float64) {
	creeps := s.ecs.LiveCreeps()
	s.reachWaypoints(creeps)
	s.followWaypoints(creeps)
}

// reachWaypoints advances each creep at most one waypoint per tick and
// retires creeps standing on the finish.
func (s *PathSystem) reachWaypoints(creeps []types.EntityID) {
	waypoints := s.waypointsByIndex()
	finish := s.finish()

	for _, id := range creeps {
		follower, pos := s.ecs.WaypointFollowers[id], s.ecs.Positions[id]
		if follower == nil || pos == nil {
			continue
		}

		if wp, ok := waypoints[follower.Index]; ok {
			if utils.DistanceSq(pos.X, pos.Y, wp.X, wp.Y) < config.WaypointReachDistanceSq {
				follower.Index++
			}
			continue
		}

		if finish != nil && utils.DistanceSq(pos.X, pos.Y, finish.X, finish.Y) < config.WaypointReachDistanceSq {
			s.ecs.Despawn(id)
			s.eventDispatcher.Dispatch(event.Event{Type: event.FinishReached, Data: id})
		}
	}
}

func (s *PathSystem) followWaypoints(creeps []types.EntityID) {
	waypoints := s.waypointsByIndex()
	finish := s.finish()

	for _, id := range creeps {
		if s.ecs.IsDying(id) {
			continue
		}
		follower, pos, vel := s.ecs.WaypointFollowers[id], s.ecs.Positions[id], s.ecs.Velocities[id]
		if follower == nil || pos == nil || vel == nil {
			continue
		}

		var goal component.Position
		if wp, ok := waypoints[follower.Index]; ok {
			goal = component.Position{X: wp.X, Y: wp.Y}
		} else if finish != nil {
			goal = component.Position{X: finish.X, Y: finish.Y}
		} else {
			log.Printf("[Path] Creep %d has no waypoint %d and the level has no finish, removing", id, follower.Index)
			s.ecs.Despawn(id)
			continue
		}

		vel.DirX, vel.DirY = utils.Direction(pos.X, pos.Y, goal.X, goal.Y)
		vel.Goal = &goal
	}
}

// waypointsByIndex indexes the current waypoints. With duplicate indices
// the lowest entity id wins.
func (s *PathSystem) waypointsByIndex() map[int]*component.Waypoint {
	byIndex := make(map[int]*component.Waypoint, len(s.ecs.Waypoints))
	for _, id := range entity.SortedIDs(s.ecs.Waypoints) {
		wp := s.ecs.Waypoints[id]
		if _, exists := byIndex[wp.Index]; !exists {
			byIndex[wp.Index] = wp
		}
	}
	return byIndex
}

func (s *PathSystem) finish() *component.Finish {
	for _, id := range entity.SortedIDs(s.ecs.Finishes) {
		return s.ecs.Finishes[id]
	}
	return nil
}
