package nutrition

import (
	"strconv"
	"strings"
)

// Portion is one FoodData Central household portion record
type Portion struct {
	Amount             Number       `json:"amount"`
	Modifier           string       `json:"modifier"`
	MeasureUnit        *MeasureUnit `json:"measureUnit"`
	PortionDescription string       `json:"portionDescription"`
	GramWeight         Number       `json:"gramWeight"`
}

// MeasureUnit is the structured unit attached to a portion
type MeasureUnit struct {
	Name string `json:"name"`
}

// unitName returns the structured unit name or ""
func (p Portion) unitName() string {
	if p.MeasureUnit == nil {
		return ""
	}
	return strings.TrimSpace(p.MeasureUnit.Name)
}

// label builds "<amount> <modifier> <unit>", using the description when no unit name exists
func (p Portion) label() string {
	parts := make([]string, 0, 3)
	if p.Amount.Valid && p.Amount.Value != 0 {
		parts = append(parts, strconv.FormatFloat(p.Amount.Value, 'f', -1, 64))
	}
	if m := strings.TrimSpace(p.Modifier); m != "" {
		parts = append(parts, m)
	}
	if u := p.unitName(); u != "" {
		parts = append(parts, u)
	} else if d := strings.TrimSpace(p.PortionDescription); d != "" {
		parts = append(parts, d)
	}

	label := strings.TrimSpace(strings.Join(parts, " "))
	if label == "" {
		label = firstNonEmpty(strings.TrimSpace(p.PortionDescription), ServingLabel)
	}
	return label
}

// ExtractMeasures turns portions into labelled units with gram weights
// portions without a positive gram weight are skipped, (label, grams) duplicates collapse
// to the first occurrence and input order is kept
func ExtractMeasures(portions []Portion) []Unit {
	out := make([]Unit, 0, len(portions))
	seen := make(map[unitKey]struct{}, len(portions))
	for _, p := range portions {
		grams, ok := p.GramWeight.Positive()
		if !ok {
			continue
		}
		u := Unit{Label: p.label(), GramsPerUnit: grams}
		k := unitKey{label: u.Label, grams: u.GramsPerUnit}
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, u)
	}
	return out
}
