package presets

import (
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// DefaultPresets returns the builtin SRD damage catalog. Callers get a
// fresh slice on every call and can modify it freely before seeding.
func DefaultPresets() []*damage.Preset {
	return []*damage.Preset{
		{
			Name:       "dagger",
			DiceCount:  1,
			DieType:    damage.DieD4,
			DamageType: damage.DamageTypePiercing,
			Tags:       []string{"weapon", "melee", "ranged"},
		},
		{
			Name:       "mace",
			DiceCount:  1,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeBludgeoning,
			Tags:       []string{"weapon", "melee"},
		},
		{
			Name:       "shortbow",
			DiceCount:  1,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypePiercing,
			Tags:       []string{"weapon", "ranged"},
		},
		{
			Name:       "longsword",
			DiceCount:  1,
			DieType:    damage.DieD8,
			DamageType: damage.DamageTypeSlashing,
			Tags:       []string{"weapon", "melee"},
		},
		{
			Name:       "longbow",
			DiceCount:  1,
			DieType:    damage.DieD8,
			DamageType: damage.DamageTypePiercing,
			Tags:       []string{"weapon", "ranged"},
		},
		{
			Name:       "greataxe",
			DiceCount:  1,
			DieType:    damage.DieD12,
			DamageType: damage.DamageTypeSlashing,
			Tags:       []string{"weapon", "melee"},
		},
		{
			Name:       "greatsword",
			DiceCount:  2,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeSlashing,
			Tags:       []string{"weapon", "melee"},
		},
		{
			Name:       "magic-missile",
			DiceCount:  1,
			DieType:    damage.DieD4,
			Modifier:   1,
			DamageType: damage.DamageTypeForce,
			Tags:       []string{"spell"},
		},
		{
			Name:       "sacred-flame",
			DiceCount:  1,
			DieType:    damage.DieD8,
			DamageType: damage.DamageTypeRadiant,
			Tags:       []string{"spell"},
		},
		{
			Name:       "eldritch-blast",
			DiceCount:  1,
			DieType:    damage.DieD10,
			DamageType: damage.DamageTypeForce,
			Tags:       []string{"spell"},
		},
		{
			Name:       "fireball",
			DiceCount:  8,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeFire,
			Tags:       []string{"spell", "aoe"},
		},
		{
			Name:       "lightning-bolt",
			DiceCount:  8,
			DieType:    damage.DieD6,
			DamageType: damage.DamageTypeLightning,
			Tags:       []string{"spell", "aoe"},
		},
	}
}
