// internal/system/utils.go
package system

import (
	"ioni-tower-defense/internal/entity"
	"ioni-tower-defense/internal/types"
)

// ApplyDamage lowers the health of a live entity and reports whether this
// hit took it to zero or below. Dying entities, entities already at zero
// and non-positive damage are left untouched.
func ApplyDamage(ecs *entity.ECS, entityID types.EntityID, damage int) (killed bool) {
	health, hasHealth := ecs.Healths[entityID]
	if !hasHealth || ecs.IsDying(entityID) || health.Current <= 0 {
		return false
	}
	if damage <= 0 {
		return false
	}

	health.Current -= damage
	return health.Current <= 0
}
