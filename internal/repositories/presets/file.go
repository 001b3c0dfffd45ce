package presets

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-damage/internal/entities/damage"
	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// presetFile is the on-disk catalog format:
//
//	presets:
//	  - name: flamestrike
//	    dice: 4d6+2
//	    damage_type: fire
//	    tags: [spell, aoe]
type presetFile struct {
	Presets []presetEntry `yaml:"presets"`
}

type presetEntry struct {
	Name       string   `yaml:"name"`
	Dice       string   `yaml:"dice"`
	DamageType string   `yaml:"damage_type"`
	Tags       []string `yaml:"tags"`
}

// LoadFile reads a YAML preset catalog from disk.
// Returns errors.InvalidInput for malformed files or entries.
func LoadFile(path string) ([]*damage.Preset, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- catalog path comes from the operator
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read preset file %s", path)
	}

	var file presetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidInput, "failed to parse preset file %s", path)
	}

	result := make([]*damage.Preset, 0, len(file.Presets))
	for i, entry := range file.Presets {
		if entry.Name == "" {
			return nil, errors.InvalidInputf("preset at index %d has no name", i)
		}

		diceCount, dieType, modifier, err := damage.ParseNotation(entry.Dice)
		if err != nil {
			return nil, errors.Wrapf(err, "preset %q has invalid dice notation", entry.Name)
		}

		preset := &damage.Preset{
			Name:       entry.Name,
			DiceCount:  diceCount,
			DieType:    dieType,
			Modifier:   modifier,
			DamageType: damage.DamageType(entry.DamageType),
			Tags:       entry.Tags,
		}
		if err := validatePreset(preset); err != nil {
			return nil, errors.Wrapf(err, "invalid preset %q", entry.Name)
		}

		result = append(result, preset)
	}

	return result, nil
}
