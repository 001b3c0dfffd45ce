package damage

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-damage/internal/errors"
)

// DieType identifies a die by its face-count token, e.g. "d6".
type DieType string

// The standard polyhedral dice set.
const (
	DieD4   DieType = "d4"
	DieD6   DieType = "d6"
	DieD8   DieType = "d8"
	DieD10  DieType = "d10"
	DieD12  DieType = "d12"
	DieD20  DieType = "d20"
	DieD100 DieType = "d100"
)

// dieFaces is the dice table: every recognized die type and its face count.
var dieFaces = map[DieType]int{
	DieD4:   4,
	DieD6:   6,
	DieD8:   8,
	DieD10:  10,
	DieD12:  12,
	DieD20:  20,
	DieD100: 100,
}

// allDieTypes lists the dice table keys in ascending face order.
var allDieTypes = []DieType{DieD4, DieD6, DieD8, DieD10, DieD12, DieD20, DieD100}

// Faces returns the die's face count and whether the die type is recognized.
func (d DieType) Faces() (int, bool) {
	faces, ok := dieFaces[d]
	return faces, ok
}

// MustFaces returns the die's face count, panicking on an unrecognized die
// type. Public boundaries validate die types before rolling; reaching this
// panic is a programming error, not a recoverable condition.
func (d DieType) MustFaces() int {
	faces, ok := dieFaces[d]
	if !ok {
		panic("unrecognized die type: " + string(d))
	}
	return faces
}

// Valid reports whether the die type is a recognized dice table key.
func (d DieType) Valid() bool {
	_, ok := dieFaces[d]
	return ok
}

// DieTypes returns the recognized die types in ascending face order.
func DieTypes() []DieType {
	out := make([]DieType, len(allDieTypes))
	copy(out, allDieTypes)
	return out
}

// diceNotationRegex matches notation like "2d6", "1d20+5", or "4d8-1".
var diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)

// ParseNotation parses dice notation ("2d6", "8d6+3", "1d4-1") into its
// dice count, die type, and flat modifier. The die must be a recognized
// dice table key.
func ParseNotation(notation string) (diceCount int, dieType DieType, modifier int, err error) {
	normalized := strings.ToLower(strings.TrimSpace(notation))
	matches := diceNotationRegex.FindStringSubmatch(normalized)
	if matches == nil {
		return 0, "", 0, errors.InvalidInputf("invalid dice notation %q: expected a form like 2d6 or 2d6+3", notation)
	}

	diceCount, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, "", 0, errors.InvalidInputf("invalid dice count in notation %q", notation)
	}

	dieType = DieType("d" + matches[2])
	if !dieType.Valid() {
		return 0, "", 0, errors.InvalidInputf("unrecognized die type %q in notation %q", string(dieType), notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, "", 0, errors.InvalidInputf("invalid modifier in notation %q", notation)
		}
	}

	return diceCount, dieType, modifier, nil
}
