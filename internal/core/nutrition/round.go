package nutrition

import "math"

// Round0 rounds to a whole number, half away from zero (149.5 -> 150)
// nil, NaN and infinite inputs or results give nil
func Round0(x *float64) *float64 {
	if x == nil {
		return nil
	}
	return finite(math.Round(*x))
}

// Round1 rounds to one decimal, half away from zero on the scaled value (1.05 -> 1.1)
// nil, NaN and infinite inputs or results give nil
func Round1(x *float64) *float64 {
	if x == nil {
		return nil
	}
	return finite(math.Round(*x*10) / 10)
}

// finite returns &v, or nil when v cannot be written as JSON
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
