package nutrition

import (
	"regexp"
	"strings"
)

var servingText = regexp.MustCompile(`(?i)([\d.]+)\s*(g|gram|grams|oz|ounce|ounces)\b`)

// ParseServingGrams infers a serving weight in grams, best effort
//
// The structured quantity/unit pair is tried first: gram units as is, ounce units
// converted, volume units rejected. Failing that, the free text is scanned for
// "<number> <unit>" pairs; the first gram pair wins over any ounce pair, so
// "1 oz (28 g)" reads as 28. Only positive results count
func ParseServingGrams(qty any, unit, text string) (float64, bool) {
	if q, ok := quantity(qty); ok {
		if f, ok := gramFactor(unit); ok {
			if g := q * f; g > 0 {
				return g, true
			}
		}
	}
	return servingGramsFromText(text)
}

func servingGramsFromText(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	var (
		ounces float64
		haveOz bool
	)
	for _, m := range servingText.FindAllStringSubmatch(text, -1) {
		v, ok := leadingFloat(m[1])
		if !ok || v <= 0 {
			continue
		}
		f, _ := gramFactor(m[2])
		if f == 1 {
			return v, true
		}
		if !haveOz {
			ounces, haveOz = v*f, true
		}
	}
	return ounces, haveOz
}
