package damage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

func TestDieTypeFaces(t *testing.T) {
	tests := []struct {
		dieType damage.DieType
		faces   int
	}{
		{damage.DieD4, 4},
		{damage.DieD6, 6},
		{damage.DieD8, 8},
		{damage.DieD10, 10},
		{damage.DieD12, 12},
		{damage.DieD20, 20},
		{damage.DieD100, 100},
	}

	for _, tt := range tests {
		t.Run(string(tt.dieType), func(t *testing.T) {
			faces, ok := tt.dieType.Faces()
			assert.True(t, ok)
			assert.Equal(t, tt.faces, faces)
			assert.True(t, tt.dieType.Valid())
			assert.Equal(t, tt.faces, tt.dieType.MustFaces())
		})
	}
}

func TestDieTypeUnrecognized(t *testing.T) {
	bad := damage.DieType("d7")

	_, ok := bad.Faces()
	assert.False(t, ok)
	assert.False(t, bad.Valid())
	assert.Panics(t, func() { bad.MustFaces() })
}

func TestDieTypesReturnsCopy(t *testing.T) {
	first := damage.DieTypes()
	first[0] = damage.DieType("tampered")

	second := damage.DieTypes()
	assert.Equal(t, damage.DieD4, second[0])
}

func TestParseNotation(t *testing.T) {
	tests := []struct {
		name      string
		notation  string
		diceCount int
		dieType   damage.DieType
		modifier  int
	}{
		{"count and die", "2d6", 2, damage.DieD6, 0},
		{"positive modifier", "8d6+3", 8, damage.DieD6, 3},
		{"negative modifier", "1d4-1", 1, damage.DieD4, -1},
		{"percentile", "1d100", 1, damage.DieD100, 0},
		{"uppercase and whitespace", "  2D8+2 ", 2, damage.DieD8, 2},
		{"zero dice", "0d6+5", 0, damage.DieD6, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diceCount, dieType, modifier, err := damage.ParseNotation(tt.notation)
			require.NoError(t, err)
			assert.Equal(t, tt.diceCount, diceCount)
			assert.Equal(t, tt.dieType, dieType)
			assert.Equal(t, tt.modifier, modifier)
		})
	}
}

func TestParseNotationRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		notation string
	}{
		{"empty", ""},
		{"no count", "d6"},
		{"no die", "2d"},
		{"unknown die", "2d7"},
		{"trailing garbage", "2d6+3x"},
		{"modifier without sign", "2d6 3"},
		{"words", "two d six"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := damage.ParseNotation(tt.notation)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidInput(err))
		})
	}
}
