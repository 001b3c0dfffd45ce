// Package damage defines the value types shared across the damage
// calculation service: damage specifications, computed results, targets,
// presets, and statistics. Values are transient and treated as immutable
// once constructed; Clone methods exist for the places that hand values
// across an ownership boundary.
package damage

// Input is a single damage specification: how many dice of which type to
// roll, plus the flat modifier and damage type attached to the roll.
type Input struct {
	DiceCount  int        `json:"dice_count"`
	DieType    DieType    `json:"die_type"`
	Modifier   int        `json:"modifier"`
	DamageType DamageType `json:"damage_type"`
}

// Result is a computed damage roll. DiceRolls preserves the individual die
// results in roll order for audit and display. TotalDamage is floored at
// zero after modifier arithmetic.
type Result struct {
	TotalDamage int        `json:"total_damage"`
	DiceRolls   []int      `json:"dice_rolls"`
	Modifier    int        `json:"modifier"`
	DamageType  DamageType `json:"damage_type"`
}

// Clone returns a deep copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	out := *r
	out.DiceRolls = make([]int, len(r.DiceRolls))
	copy(out.DiceRolls, r.DiceRolls)
	return &out
}

// ResistanceResult is a damage result after a resistance classification
// has been applied to its total. AdjustedDamage is floored at zero.
type ResistanceResult struct {
	Result

	ResistanceType ResistanceType `json:"resistance_type"`
	AdjustedDamage int            `json:"adjusted_damage"`
}

// Target is one recipient in a multi-target damage distribution. Identity
// is by ID; two targets may share a Name within one call, never an ID.
type Target struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ResistanceType ResistanceType `json:"resistance_type"`
}

// GetID returns the target's unique identifier.
func (t Target) GetID() string {
	return t.ID
}

// GetType returns the entity type used for rpg-toolkit interop.
func (t Target) GetType() string {
	return "damage_target"
}

// TargetResult is the per-target outcome of a damage distribution, one per
// input target in input order.
type TargetResult struct {
	TargetID       string `json:"target_id"`
	TargetName     string `json:"target_name"`
	AdjustedDamage int    `json:"adjusted_damage"`
}

// Preset is a named, reusable damage specification. Name doubles as the
// unique catalog identifier.
type Preset struct {
	Name       string     `json:"name"`
	DiceCount  int        `json:"dice_count"`
	DieType    DieType    `json:"die_type"`
	Modifier   int        `json:"modifier"`
	DamageType DamageType `json:"damage_type"`
	Tags       []string   `json:"tags,omitempty"`
}

// Clone returns a deep copy of the preset.
func (p *Preset) Clone() *Preset {
	if p == nil {
		return nil
	}
	out := *p
	out.Tags = make([]string, len(p.Tags))
	copy(out.Tags, p.Tags)
	return &out
}

// HasTag reports whether the preset carries the given tag.
func (p *Preset) HasTag(tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Input builds a calculation input from the preset.
func (p *Preset) Input() *Input {
	return &Input{
		DiceCount:  p.DiceCount,
		DieType:    p.DieType,
		Modifier:   p.Modifier,
		DamageType: p.DamageType,
	}
}

// Statistics describes the damage bounds and expected value of a
// specification without rolling it. ExpectedDamage always equals Average;
// both fields are kept so callers reading either name keep working.
type Statistics struct {
	Minimum        int     `json:"minimum"`
	Maximum        int     `json:"maximum"`
	Average        float64 `json:"average"`
	ExpectedDamage float64 `json:"expected_damage"`
}
