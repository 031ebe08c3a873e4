package nutrition

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Number is a JSON numeric leaf that never fails decoding
// null, strings, objects and other non numbers leave it unset
type Number struct {
	Value float64
	Valid bool
}

// Num returns a set Number
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// UnmarshalJSON implements json.Unmarshaler
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	*n = Num(f)
	return nil
}

// MarshalJSON implements json.Marshaler
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the value or nil when unset
func (n Number) Ptr() *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// Positive returns the value when it is set and greater than zero
func (n Number) Positive() (float64, bool) {
	if !n.Valid || !(n.Value > 0) || math.IsInf(n.Value, 0) {
		return 0, false
	}
	return n.Value, true
}

// loose reads a decoded JSON value as a finite float
// accepts numbers and fully numeric strings, nothing else
func loose(v any) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		p, err := x.Float64()
		if err != nil {
			return 0, false
		}
		f = p
	case string:
		p, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		f = p
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// leadingFloat parses the numeric prefix of s, "30g" -> 30, "1.2.3" -> 1.2
func leadingFloat(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// quantity reads a loosely typed amount: numbers as is, strings by numeric prefix
func quantity(v any) (float64, bool) {
	switch x := v.(type) {
	case string:
		return leadingFloat(x)
	default:
		return loose(v)
	}
}
