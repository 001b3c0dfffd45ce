package rpgtoolkit

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// TargetFromEntity builds a distribution target from any toolkit entity.
// The entity's ID becomes the target identity; name and resistance come
// from the caller because the core entity contract carries neither.
func TargetFromEntity(entity core.Entity, name string, resistance damage.ResistanceType) *damage.Target {
	return &damage.Target{
		ID:             entity.GetID(),
		Name:           name,
		ResistanceType: resistance,
	}
}

// TargetsFromEntities builds one target per entity, all sharing the same
// resistance classification. Order follows the input entities.
func TargetsFromEntities(entities []core.Entity, names []string, resistance damage.ResistanceType) []*damage.Target {
	targets := make([]*damage.Target, 0, len(entities))
	for i, entity := range entities {
		name := entity.GetID()
		if i < len(names) && names[i] != "" {
			name = names[i]
		}
		targets = append(targets, TargetFromEntity(entity, name, resistance))
	}
	return targets
}
