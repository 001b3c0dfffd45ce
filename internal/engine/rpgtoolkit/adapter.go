// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-damage/internal/engine"
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	eventBus   events.EventBus
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	EventBus   events.EventBus
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.EventBus == nil {
		return errors.InvalidInput("event bus is required")
	}
	if c.DiceRoller == nil {
		return errors.InvalidInput("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidInput("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		eventBus:   cfg.EventBus,
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// Verify that damage targets satisfy the toolkit entity contract
var _ core.Entity = damage.Target{}

// RollDamage resolves a damage specification into individual die results.
// Range validation happens upstream; an unrecognized die type here panics
// because it indicates a programming error, not bad user input.
func (a *Adapter) RollDamage(ctx context.Context, input *engine.RollDamageInput) (*engine.RollDamageOutput, error) {
	if input == nil || input.Input == nil {
		return nil, errors.InvalidInput("input is required")
	}

	spec := input.Input

	result := &damage.Result{
		DiceRolls:  []int{},
		Modifier:   spec.Modifier,
		DamageType: spec.DamageType,
	}

	if spec.DiceCount > 0 {
		faces := spec.DieType.MustFaces()

		rolls, err := a.diceRoller.RollN(spec.DiceCount, faces)
		if err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDiceRollFailed,
				"failed to roll %dd%d", spec.DiceCount, faces)
		}
		result.DiceRolls = rolls
	}

	total := spec.Modifier
	for _, roll := range result.DiceRolls {
		total += roll
	}
	// Damage never goes below zero, even with a large negative modifier
	result.TotalDamage = max(0, total)

	return &engine.RollDamageOutput{Result: result}, nil
}

// ApplyResistance adjusts a damage total for the target's resistance
// classification. Halving rounds down. Classifications outside the known
// set pass the total through unchanged.
func (a *Adapter) ApplyResistance(total int, resistance damage.ResistanceType) int {
	total = max(0, total)

	switch resistance {
	case damage.ResistanceResistant:
		return total / 2
	case damage.ResistanceVulnerable:
		return total * 2
	case damage.ResistanceImmune:
		return 0
	default:
		return total
	}
}

// CalculateStatistics computes the damage bounds and expected value of a
// specification without rolling any dice.
func (a *Adapter) CalculateStatistics(input *engine.CalculateStatisticsInput) *engine.CalculateStatisticsOutput {
	spec := input.Input

	faces := 0
	if spec.DiceCount > 0 {
		faces = spec.DieType.MustFaces()
	}

	minimum := max(0, spec.DiceCount+spec.Modifier)
	maximum := max(0, spec.DiceCount*faces+spec.Modifier)

	average := float64(spec.DiceCount)*(float64(faces)+1)/2 + float64(spec.Modifier)
	average = max(0, average)

	return &engine.CalculateStatisticsOutput{
		Statistics: &damage.Statistics{
			Minimum:        minimum,
			Maximum:        maximum,
			Average:        average,
			ExpectedDamage: average,
		},
	}
}
