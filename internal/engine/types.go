package engine

import (
	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
)

// RollDamageInput defines the damage specification to resolve
type RollDamageInput struct {
	Input *damage.Input
}

// RollDamageOutput carries the resolved roll
type RollDamageOutput struct {
	Result *damage.Result
}

// CalculateStatisticsInput defines the damage specification to analyze
type CalculateStatisticsInput struct {
	Input *damage.Input
}

// CalculateStatisticsOutput carries the damage bounds and expected value
type CalculateStatisticsOutput struct {
	Statistics *damage.Statistics
}
