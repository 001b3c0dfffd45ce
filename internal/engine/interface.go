// Package engine wraps the rpg toolkit
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/rpg-damage/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// Engine provides damage mechanics and rules calculations
type Engine interface {
	// Dice resolution
	RollDamage(ctx context.Context, input *RollDamageInput) (*RollDamageOutput, error)

	// Utility methods
	ApplyResistance(total int, resistance damage.ResistanceType) int
	CalculateStatistics(input *CalculateStatisticsInput) *CalculateStatisticsOutput
}
