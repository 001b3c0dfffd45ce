package rpgtoolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

func TestTargetFromEntity(t *testing.T) {
	entity := damage.Target{ID: "goblin-1", Name: "Goblin"}

	target := TargetFromEntity(entity, "Goblin Scout", damage.ResistanceResistant)

	assert.Equal(t, "goblin-1", target.ID)
	assert.Equal(t, "Goblin Scout", target.Name)
	assert.Equal(t, damage.ResistanceResistant, target.ResistanceType)
}

func TestTargetsFromEntities(t *testing.T) {
	entities := []core.Entity{
		damage.Target{ID: "goblin-1"},
		damage.Target{ID: "goblin-2"},
		damage.Target{ID: "goblin-3"},
	}

	t.Run("names applied positionally", func(t *testing.T) {
		targets := TargetsFromEntities(entities, []string{"Boss", "Grunt"}, damage.ResistanceNormal)

		assert.Len(t, targets, 3)
		assert.Equal(t, "Boss", targets[0].Name)
		assert.Equal(t, "Grunt", targets[1].Name)
		// Unnamed entities fall back to their ID
		assert.Equal(t, "goblin-3", targets[2].Name)
	})

	t.Run("order follows input entities", func(t *testing.T) {
		targets := TargetsFromEntities(entities, nil, damage.ResistanceImmune)

		assert.Len(t, targets, 3)
		for i, target := range targets {
			assert.Equal(t, entities[i].GetID(), target.ID)
			assert.Equal(t, damage.ResistanceImmune, target.ResistanceType)
		}
	})
}

func TestTargetImplementsEntity(t *testing.T) {
	target := damage.Target{ID: "orc-7", Name: "Orc"}

	assert.Equal(t, "orc-7", target.GetID())
	assert.Equal(t, "damage_target", target.GetType())
}
