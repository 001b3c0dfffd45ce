// Package damage implements the damage calculation orchestrator
package damage

//go:generate mockgen -destination=mock/mock_service.go -package=damagemock github.com/KirkDiggler/rpg-damage/internal/orchestrators/damage Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-damage/internal/engine"
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
	"github.com/KirkDiggler/rpg-damage/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-damage/internal/repositories/presets"
)

// Service defines the interface for damage calculation operations
type Service interface {
	// Damage calculation
	CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error)
	CalculateCriticalDamage(ctx context.Context, input *CalculateCriticalDamageInput) (*CalculateCriticalDamageOutput, error)
	CalculateDamageWithResistance(ctx context.Context, input *CalculateDamageWithResistanceInput) (*CalculateDamageWithResistanceOutput, error)
	DistributeDamage(ctx context.Context, input *DistributeDamageInput) (*DistributeDamageOutput, error)

	// Preset catalog
	GetPresetByName(ctx context.Context, input *GetPresetByNameInput) (*GetPresetByNameOutput, error)
	ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error)
	ListPresetsByTag(ctx context.Context, input *ListPresetsByTagInput) (*ListPresetsByTagOutput, error)
	CalculateDamageFromPreset(ctx context.Context, input *CalculateDamageFromPresetInput) (*CalculateDamageFromPresetOutput, error)

	// Roll-free analysis
	GetDamageStatistics(ctx context.Context, input *GetDamageStatisticsInput) (*GetDamageStatisticsOutput, error)
}

// Config holds the dependencies for the damage orchestrator
type Config struct {
	Engine      engine.Engine
	PresetRepo  presets.Repository
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.PresetRepo == nil {
		vb.RequiredField("PresetRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine     engine.Engine
	presetRepo presets.Repository
	idGen      idgen.Generator
}

// NewOrchestrator creates a new damage orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:     cfg.Engine,
		presetRepo: cfg.PresetRepo,
		idGen:      cfg.IDGenerator,
	}, nil
}

// CalculateDamage validates a damage specification and rolls it once
func (o *orchestrator) CalculateDamage(ctx context.Context, input *CalculateDamageInput) (*CalculateDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if err := validateDamageInput(input.Input); err != nil {
		return nil, err
	}

	rollOutput, err := o.engine.RollDamage(ctx, &engine.RollDamageInput{
		Input: input.Input,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	calculationID := o.idGen.Generate()
	slog.Debug("Damage dice rolled",
		"calculation_id", calculationID,
		"rolls", rollOutput.Result.DiceRolls,
	)
	slog.Info("Damage calculated",
		"calculation_id", calculationID,
		"dice_count", input.Input.DiceCount,
		"die_type", input.Input.DieType,
		"modifier", input.Input.Modifier,
		"damage_type", input.Input.DamageType,
		"total_damage", rollOutput.Result.TotalDamage,
	)

	return &CalculateDamageOutput{
		Result:        rollOutput.Result,
		CalculationID: calculationID,
	}, nil
}

// CalculateCriticalDamage rolls double the dice of the specification; the
// modifier is not doubled. Validation runs against the original input, so
// the doubled count is allowed to pass MaxDiceCount.
func (o *orchestrator) CalculateCriticalDamage(ctx context.Context, input *CalculateCriticalDamageInput) (*CalculateCriticalDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if err := validateDamageInput(input.Input); err != nil {
		return nil, err
	}

	critInput := &damage.Input{
		DiceCount:  input.Input.DiceCount * 2,
		DieType:    input.Input.DieType,
		Modifier:   input.Input.Modifier,
		DamageType: input.Input.DamageType,
	}

	rollOutput, err := o.engine.RollDamage(ctx, &engine.RollDamageInput{
		Input: critInput,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll critical damage")
	}

	calculationID := o.idGen.Generate()
	slog.Info("Critical damage calculated",
		"calculation_id", calculationID,
		"dice_count", input.Input.DiceCount,
		"dice_rolled", critInput.DiceCount,
		"die_type", input.Input.DieType,
		"total_damage", rollOutput.Result.TotalDamage,
	)

	return &CalculateCriticalDamageOutput{
		Result:        rollOutput.Result,
		CalculationID: calculationID,
	}, nil
}

// CalculateDamageWithResistance applies a resistance classification to a
// previously computed result
func (o *orchestrator) CalculateDamageWithResistance(ctx context.Context, input *CalculateDamageWithResistanceInput) (*CalculateDamageWithResistanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if err := validateBaseDamage(input.BaseDamage); err != nil {
		return nil, err
	}
	if !input.ResistanceType.Valid() {
		return nil, errors.InvalidInputf("unrecognized resistance type %q", input.ResistanceType)
	}

	adjusted := o.engine.ApplyResistance(input.BaseDamage.TotalDamage, input.ResistanceType)

	calculationID := o.idGen.Generate()
	slog.Info("Resistance applied",
		"calculation_id", calculationID,
		"resistance_type", input.ResistanceType,
		"total_damage", input.BaseDamage.TotalDamage,
		"adjusted_damage", adjusted,
	)

	return &CalculateDamageWithResistanceOutput{
		Result: &damage.ResistanceResult{
			Result:         *input.BaseDamage.Clone(),
			ResistanceType: input.ResistanceType,
			AdjustedDamage: adjusted,
		},
		CalculationID: calculationID,
	}, nil
}

// DistributeDamage applies one computed result across multiple targets,
// each mitigating with its own resistance
func (o *orchestrator) DistributeDamage(ctx context.Context, input *DistributeDamageInput) (*DistributeDamageOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if err := validateBaseDamage(input.BaseDamage); err != nil {
		return nil, err
	}
	if err := validateTargets(input.Targets); err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = damage.DistributionEqual
	}

	var results []*damage.TargetResult
	switch method {
	case damage.DistributionEqual:
		results = o.distributeEqual(input.BaseDamage, input.Targets)
	case damage.DistributionSplit:
		results = o.distributeSplit(input.BaseDamage, input.Targets)
	default:
		return nil, errors.InvalidInputf("unrecognized distribution method %q", input.Method)
	}

	calculationID := o.idGen.Generate()
	slog.Info("Damage distributed",
		"calculation_id", calculationID,
		"method", method,
		"target_count", len(input.Targets),
		"total_damage", input.BaseDamage.TotalDamage,
	)

	return &DistributeDamageOutput{
		Results:       results,
		Method:        method,
		CalculationID: calculationID,
	}, nil
}

// distributeEqual gives every target the same base total, the area-effect
// reading: one blast, each target mitigating independently.
func (o *orchestrator) distributeEqual(base *damage.Result, targets []*damage.Target) []*damage.TargetResult {
	results := make([]*damage.TargetResult, 0, len(targets))
	for _, target := range targets {
		results = append(results, &damage.TargetResult{
			TargetID:       target.ID,
			TargetName:     target.Name,
			AdjustedDamage: o.engine.ApplyResistance(base.TotalDamage, target.ResistanceType),
		})
	}
	return results
}

// distributeSplit divides the base total across the targets. The remainder
// goes out one point at a time starting from the first target, then each
// share is mitigated by its target's own resistance.
func (o *orchestrator) distributeSplit(base *damage.Result, targets []*damage.Target) []*damage.TargetResult {
	share := base.TotalDamage / len(targets)
	remainder := base.TotalDamage % len(targets)

	results := make([]*damage.TargetResult, 0, len(targets))
	for i, target := range targets {
		portion := share
		if i < remainder {
			portion++
		}
		results = append(results, &damage.TargetResult{
			TargetID:       target.ID,
			TargetName:     target.Name,
			AdjustedDamage: o.engine.ApplyResistance(portion, target.ResistanceType),
		})
	}
	return results
}

// GetPresetByName looks up a catalog preset. A missing preset is reported
// through the Found flag, not an error.
func (o *orchestrator) GetPresetByName(ctx context.Context, input *GetPresetByNameInput) (*GetPresetByNameOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidInput("preset name is required")
	}

	getOutput, err := o.presetRepo.GetByName(ctx, presets.GetByNameInput{Name: input.Name})
	if err != nil {
		if errors.IsPresetNotFound(err) {
			return &GetPresetByNameOutput{Found: false}, nil
		}
		return nil, errors.Wrap(err, "failed to get preset")
	}

	return &GetPresetByNameOutput{
		Preset: getOutput.Preset,
		Found:  true,
	}, nil
}

// ListPresets returns the whole preset catalog sorted by name
func (o *orchestrator) ListPresets(ctx context.Context, input *ListPresetsInput) (*ListPresetsOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}

	listOutput, err := o.presetRepo.List(ctx, presets.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets")
	}

	return &ListPresetsOutput{Presets: listOutput.Presets}, nil
}

// ListPresetsByTag returns the presets carrying the given tag sorted by name
func (o *orchestrator) ListPresetsByTag(ctx context.Context, input *ListPresetsByTagInput) (*ListPresetsByTagOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if input.Tag == "" {
		return nil, errors.InvalidInput("tag is required")
	}

	listOutput, err := o.presetRepo.ListByTag(ctx, presets.ListByTagInput{Tag: input.Tag})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list presets by tag")
	}

	return &ListPresetsByTagOutput{Presets: listOutput.Presets}, nil
}

// CalculateDamageFromPreset resolves a preset, substitutes the modifier
// override when provided, and rolls the resulting specification
func (o *orchestrator) CalculateDamageFromPreset(ctx context.Context, input *CalculateDamageFromPresetInput) (*CalculateDamageFromPresetOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if input.PresetName == "" {
		return nil, errors.InvalidInput("preset name is required")
	}

	getOutput, err := o.presetRepo.GetByName(ctx, presets.GetByNameInput{Name: input.PresetName})
	if err != nil {
		if errors.IsPresetNotFound(err) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to get preset")
	}
	preset := getOutput.Preset

	calcInput := preset.Input()
	if input.ModifierOverride != nil {
		calcInput.Modifier = *input.ModifierOverride
	}

	// The catalog is validated on write, but an override can push the
	// specification back out of range.
	if err := validateDamageInput(calcInput); err != nil {
		return nil, err
	}

	rollOutput, err := o.engine.RollDamage(ctx, &engine.RollDamageInput{
		Input: calcInput,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll damage")
	}

	calculationID := o.idGen.Generate()
	slog.Info("Damage calculated from preset",
		"calculation_id", calculationID,
		"preset", preset.Name,
		"modifier", calcInput.Modifier,
		"total_damage", rollOutput.Result.TotalDamage,
	)

	return &CalculateDamageFromPresetOutput{
		Preset:        preset,
		Result:        rollOutput.Result,
		CalculationID: calculationID,
	}, nil
}

// GetDamageStatistics derives minimum, maximum, and expected damage for a
// specification without rolling any dice
func (o *orchestrator) GetDamageStatistics(ctx context.Context, input *GetDamageStatisticsInput) (*GetDamageStatisticsOutput, error) {
	if input == nil {
		return nil, errors.InvalidInput("input is required")
	}
	if err := validateDamageInput(input.Input); err != nil {
		return nil, err
	}

	statsOutput := o.engine.CalculateStatistics(&engine.CalculateStatisticsInput{
		Input: input.Input,
	})

	return &GetDamageStatisticsOutput{Statistics: statsOutput.Statistics}, nil
}
