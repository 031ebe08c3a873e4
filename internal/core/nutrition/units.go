package nutrition

import (
	"strings"

	"golang.org/x/text/cases"
)

// GramsPerOunce is the avoirdupois ounce
const GramsPerOunce = 28.3495

// ServingLabel labels the designated serving unit
const ServingLabel = "serving"

// Unit is a named measure and its gram equivalent
type Unit struct {
	Label        string  `json:"label"`
	GramsPerUnit float64 `json:"gramsPerUnit"`
}

var (
	unitGram  = Unit{Label: "gram (g)", GramsPerUnit: 1}
	unitOunce = Unit{Label: "ounce (oz)", GramsPerUnit: GramsPerOunce}
)

type unitKey struct {
	label string
	grams float64
}

// unitSet is an insertion ordered set keyed on (label, grams)
type unitSet struct {
	seen  map[unitKey]struct{}
	units []Unit
}

// newUnitSet seeds the set with the gram and ounce units
func newUnitSet() *unitSet {
	s := &unitSet{seen: make(map[unitKey]struct{})}
	s.add(unitGram, unitOunce)
	return s
}

// add appends units not already present; first occurrence wins
func (s *unitSet) add(units ...Unit) {
	for _, u := range units {
		k := unitKey{label: u.Label, grams: u.GramsPerUnit}
		if _, dup := s.seen[k]; dup {
			continue
		}
		s.seen[k] = struct{}{}
		s.units = append(s.units, u)
	}
}

func (s *unitSet) list() []Unit { return s.units }

// foldUnit case folds an upstream unit token
// a Caser is stateful so one is built per call
func foldUnit(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// gramFactor returns the grams per one of the named mass unit
// volume and unknown units report false
func gramFactor(unit string) (float64, bool) {
	switch foldUnit(unit) {
	case "g", "gram", "grams":
		return 1, true
	case "oz", "ounce", "ounces":
		return GramsPerOunce, true
	default:
		return 0, false
	}
}

// isGramUnit reports whether unit names grams
func isGramUnit(unit string) bool {
	f, ok := gramFactor(unit)
	return ok && f == 1
}
