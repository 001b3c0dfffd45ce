package damage

import (
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// CalculateDamageInput defines the request for a base damage calculation
type CalculateDamageInput struct {
	Input *damage.Input
}

// CalculateDamageOutput defines the response for a base damage calculation
type CalculateDamageOutput struct {
	Result        *damage.Result
	CalculationID string
}

// CalculateCriticalDamageInput defines the request for a critical hit calculation
type CalculateCriticalDamageInput struct {
	Input *damage.Input
}

// CalculateCriticalDamageOutput defines the response for a critical hit calculation
type CalculateCriticalDamageOutput struct {
	Result        *damage.Result
	CalculationID string
}

// CalculateDamageWithResistanceInput defines the request for applying a
// resistance classification to a previously computed result
type CalculateDamageWithResistanceInput struct {
	BaseDamage     *damage.Result
	ResistanceType damage.ResistanceType
}

// CalculateDamageWithResistanceOutput defines the response for a resistance application
type CalculateDamageWithResistanceOutput struct {
	Result        *damage.ResistanceResult
	CalculationID string
}

// DistributeDamageInput defines the request for distributing one result
// across multiple targets. An empty Method selects equal distribution.
type DistributeDamageInput struct {
	BaseDamage *damage.Result
	Targets    []*damage.Target
	Method     damage.DistributionMethod
}

// DistributeDamageOutput defines the response for a damage distribution.
// Method reports the method actually applied after defaulting.
type DistributeDamageOutput struct {
	Results       []*damage.TargetResult
	Method        damage.DistributionMethod
	CalculationID string
}

// GetPresetByNameInput defines the request for looking up a preset
type GetPresetByNameInput struct {
	Name string
}

// GetPresetByNameOutput defines the response for a preset lookup. A missing
// preset is reported through Found, not an error.
type GetPresetByNameOutput struct {
	Preset *damage.Preset
	Found  bool
}

// ListPresetsInput defines the request for listing the preset catalog
type ListPresetsInput struct{}

// ListPresetsOutput defines the response for listing the preset catalog
type ListPresetsOutput struct {
	Presets []*damage.Preset
}

// ListPresetsByTagInput defines the request for listing presets by tag
type ListPresetsByTagInput struct {
	Tag string
}

// ListPresetsByTagOutput defines the response for listing presets by tag
type ListPresetsByTagOutput struct {
	Presets []*damage.Preset
}

// CalculateDamageFromPresetInput defines the request for rolling a preset.
// ModifierOverride replaces the preset's modifier when non-nil; zero is a
// valid override.
type CalculateDamageFromPresetInput struct {
	PresetName       string
	ModifierOverride *int
}

// CalculateDamageFromPresetOutput defines the response for rolling a preset
type CalculateDamageFromPresetOutput struct {
	Preset        *damage.Preset
	Result        *damage.Result
	CalculationID string
}

// GetDamageStatisticsInput defines the request for roll-free damage statistics
type GetDamageStatisticsInput struct {
	Input *damage.Input
}

// GetDamageStatisticsOutput defines the response for roll-free damage statistics
type GetDamageStatisticsOutput struct {
	Statistics *damage.Statistics
}
