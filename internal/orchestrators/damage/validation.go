package damage

import (
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// validateDamageInput checks a damage specification against the calculation
// limits. Checks run in a fixed order and the first violation is returned.
func validateDamageInput(input *damage.Input) error {
	if input == nil {
		return errors.InvalidInput("damage input is required")
	}
	if input.DiceCount < 0 {
		return errors.InvalidInputf("dice count must not be negative, got %d", input.DiceCount)
	}
	if input.DiceCount > damage.MaxDiceCount {
		return errors.LimitExceededf("dice count %d exceeds the maximum of %d",
			input.DiceCount, damage.MaxDiceCount)
	}
	if input.Modifier < damage.MinModifier || input.Modifier > damage.MaxModifier {
		return errors.LimitExceededf("modifier %d is outside the allowed range %d to %d",
			input.Modifier, damage.MinModifier, damage.MaxModifier)
	}
	if !input.DieType.Valid() {
		return errors.InvalidInputf("unrecognized die type %q", input.DieType)
	}
	return nil
}

// validateTargets checks a distribution target list. Messages identify the
// offending entry by index and field, like targets[2].id.
func validateTargets(targets []*damage.Target) error {
	if len(targets) == 0 {
		return errors.InvalidInput("at least one target is required")
	}
	if len(targets) > damage.MaxTargets {
		return errors.LimitExceededf("target count %d exceeds the maximum of %d",
			len(targets), damage.MaxTargets)
	}
	for i, target := range targets {
		if target == nil {
			return errors.InvalidInputf("targets[%d] is required", i)
		}
		if target.ID == "" {
			return errors.InvalidInputf("targets[%d].id is required", i)
		}
		if target.Name == "" {
			return errors.InvalidInputf("targets[%d].name is required", i)
		}
		if !target.ResistanceType.Valid() {
			return errors.InvalidInputf("targets[%d].resistance_type %q is not recognized",
				i, target.ResistanceType)
		}
	}
	return nil
}

// validateBaseDamage checks a previously computed result before resistance
// or distribution arithmetic reuses it.
func validateBaseDamage(base *damage.Result) error {
	if base == nil {
		return errors.InvalidInput("base damage result is required")
	}
	if base.TotalDamage < 0 {
		return errors.InvalidInputf("base damage total must not be negative, got %d", base.TotalDamage)
	}
	if base.DiceRolls == nil {
		return errors.InvalidInput("base damage dice rolls are required")
	}
	return nil
}
