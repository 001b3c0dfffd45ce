// Package presets provides the interface for damage preset persistence
package presets

//go:generate mockgen -destination=mock/mock_repository.go -package=presetsmock github.com/KirkDiggler/rpg-damage/internal/repositories/presets Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// Repository defines the interface for preset persistence
type Repository interface {
	// GetByName retrieves a preset by its name
	// Returns errors.InvalidInput for empty names
	// Returns errors.PresetNotFound if no preset exists with the name
	// Storage failures surface as errors.CalculationFailed
	GetByName(ctx context.Context, input GetByNameInput) (*GetByNameOutput, error)

	// List retrieves all presets, sorted by name
	// Storage failures surface as errors.CalculationFailed
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByTag retrieves all presets carrying the given tag, sorted by name
	// Returns errors.InvalidInput for empty tags
	// Returns an empty slice when no preset carries the tag
	ListByTag(ctx context.Context, input ListByTagInput) (*ListByTagOutput, error)

	// Save stores a preset, replacing any existing preset with the same name
	// Returns errors.InvalidInput for nil or invalid presets
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Seed bulk-loads presets, replacing same-named entries
	// Returns errors.InvalidInput if any preset in the batch is invalid
	Seed(ctx context.Context, input SeedInput) (*SeedOutput, error)
}

// GetByNameInput defines the input for getting a preset
type GetByNameInput struct {
	Name string
}

// GetByNameOutput defines the output for getting a preset
type GetByNameOutput struct {
	Preset *damage.Preset
}

// ListInput defines the input for listing all presets
type ListInput struct {
	// Empty for now, can be extended with pagination later
}

// ListOutput defines the output for listing all presets
type ListOutput struct {
	Presets []*damage.Preset
}

// ListByTagInput defines the input for listing presets by tag
type ListByTagInput struct {
	Tag string
}

// ListByTagOutput defines the output for listing presets by tag
type ListByTagOutput struct {
	Presets []*damage.Preset
}

// SaveInput defines the input for saving a preset
type SaveInput struct {
	Preset *damage.Preset
}

// SaveOutput defines the output for saving a preset
type SaveOutput struct {
	Preset *damage.Preset
}

// SeedInput defines the input for bulk-loading presets
type SeedInput struct {
	Presets []*damage.Preset
}

// SeedOutput defines the output for bulk-loading presets
type SeedOutput struct {
	Count int
}

// Error messages shared by repository implementations
const (
	errPresetNil       = "preset cannot be nil"
	errPresetNameEmpty = "preset name cannot be empty"
	errTagEmpty        = "tag cannot be empty"
)

// validatePreset checks a preset against the catalog storage contract
func validatePreset(p *damage.Preset) error {
	if p == nil {
		return errors.InvalidInput(errPresetNil)
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", p.Name, vb)
	errors.ValidateRange("dice_count", p.DiceCount, 0, damage.MaxDiceCount, vb)

	dieTypes := damage.DieTypes()
	allowed := make([]string, len(dieTypes))
	for i, dt := range dieTypes {
		allowed[i] = string(dt)
	}
	errors.ValidateEnum("die_type", string(p.DieType), allowed, vb)

	errors.ValidateRange("modifier", p.Modifier, damage.MinModifier, damage.MaxModifier, vb)
	errors.ValidateRequired("damage_type", string(p.DamageType), vb)

	return vb.Build()
}
