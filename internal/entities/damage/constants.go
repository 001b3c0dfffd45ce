package damage

// Calculation limits enforced before any dice are rolled.
const (
	// MaxDiceCount caps the dice in a single specification.
	MaxDiceCount = 100
	// MinModifier is the lowest accepted flat modifier.
	MinModifier = -999
	// MaxModifier is the highest accepted flat modifier.
	MaxModifier = 999
	// MaxTargets caps the target list of a single distribution.
	MaxTargets = 50
)

// ResistanceType classifies how a target mitigates incoming damage.
type ResistanceType string

// Resistance classifications.
const (
	// ResistanceNormal takes damage unchanged.
	ResistanceNormal ResistanceType = "normal"
	// ResistanceResistant takes half damage, rounded down.
	ResistanceResistant ResistanceType = "resistant"
	// ResistanceVulnerable takes double damage.
	ResistanceVulnerable ResistanceType = "vulnerable"
	// ResistanceImmune takes no damage.
	ResistanceImmune ResistanceType = "immune"
)

// allResistanceTypes lists every recognized classification.
var allResistanceTypes = []ResistanceType{
	ResistanceNormal,
	ResistanceResistant,
	ResistanceVulnerable,
	ResistanceImmune,
}

// Valid reports whether the resistance type is recognized.
func (r ResistanceType) Valid() bool {
	switch r {
	case ResistanceNormal, ResistanceResistant, ResistanceVulnerable, ResistanceImmune:
		return true
	default:
		return false
	}
}

// ResistanceTypes returns the recognized resistance classifications.
func ResistanceTypes() []ResistanceType {
	out := make([]ResistanceType, len(allResistanceTypes))
	copy(out, allResistanceTypes)
	return out
}

// DistributionMethod selects how one base damage result is assigned across
// multiple targets.
type DistributionMethod string

// Distribution methods.
const (
	// DistributionEqual applies the same base total to every target, each
	// mitigating independently. This is the default.
	DistributionEqual DistributionMethod = "equal"
	// DistributionSplit divides the base total across the targets before
	// each target's resistance applies.
	DistributionSplit DistributionMethod = "split"
)

// Valid reports whether the distribution method is recognized.
func (m DistributionMethod) Valid() bool {
	switch m {
	case DistributionEqual, DistributionSplit:
		return true
	default:
		return false
	}
}

// DamageType tags the kind of damage dealt. The vocabulary is open; the
// constants below cover the SRD damage types.
type DamageType string

// SRD damage types.
const (
	DamageTypeSlashing    DamageType = "slashing"
	DamageTypePiercing    DamageType = "piercing"
	DamageTypeBludgeoning DamageType = "bludgeoning"
	DamageTypeFire        DamageType = "fire"
	DamageTypeCold        DamageType = "cold"
	DamageTypeLightning   DamageType = "lightning"
	DamageTypeThunder     DamageType = "thunder"
	DamageTypePoison      DamageType = "poison"
	DamageTypeAcid        DamageType = "acid"
	DamageTypePsychic     DamageType = "psychic"
	DamageTypeNecrotic    DamageType = "necrotic"
	DamageTypeRadiant     DamageType = "radiant"
	DamageTypeForce       DamageType = "force"
)
