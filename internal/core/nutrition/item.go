// Package nutrition normalizes FoodData Central and Open Food Facts records into one
// canonical food item with per 100 g and per serving macros plus a list of units
//
// Everything here is pure: no I/O, no shared state, no errors. Fields that cannot be
// determined from the payload come back as nil rather than zero
package nutrition

// Source tags the upstream a FoodItem was built from
type Source string

const (
	// SourceFDC is USDA FoodData Central
	SourceFDC Source = "USDA"
	// SourceOFF is Open Food Facts
	SourceOFF Source = "OFF"
)

// FoodItem is the canonical, client facing food shape
type FoodItem struct {
	Source      Source   `json:"source"`
	FdcID       int64    `json:"fdcId,omitempty"`
	Code        *string  `json:"code,omitempty"`
	Description string   `json:"description"`
	BrandName   *string  `json:"brandName"`
	DataType    string   `json:"dataType,omitempty"`
	Servings    Servings `json:"servings"`
	Units       []Unit   `json:"units"`
}

// Servings holds both macro bases; PerServing is nil unless a gram weight is known
type Servings struct {
	Per100g    Macros         `json:"per100g"`
	PerServing *ServingMacros `json:"perServing"`
}

// ServingMacros is Macros for a single serving of Grams
type ServingMacros struct {
	Grams float64 `json:"grams"`
	Macros
}

// Macros holds the tracked figures. nil means unknown, never zero
type Macros struct {
	Calories *float64 `json:"calories"`
	Protein  *float64 `json:"protein"`
	Carbs    *float64 `json:"carbs"`
	Fat      *float64 `json:"fat"`
}

// scale multiplies every known figure by k
func (m Macros) scale(k float64) Macros {
	mul := func(p *float64) *float64 {
		if p == nil {
			return nil
		}
		v := *p * k
		return &v
	}
	return Macros{
		Calories: mul(m.Calories),
		Protein:  mul(m.Protein),
		Carbs:    mul(m.Carbs),
		Fat:      mul(m.Fat),
	}
}

// or fills each unknown figure from fallback
func (m Macros) or(fallback Macros) Macros {
	pick := func(p, q *float64) *float64 {
		if p != nil {
			return p
		}
		return q
	}
	return Macros{
		Calories: pick(m.Calories, fallback.Calories),
		Protein:  pick(m.Protein, fallback.Protein),
		Carbs:    pick(m.Carbs, fallback.Carbs),
		Fat:      pick(m.Fat, fallback.Fat),
	}
}

// known reports whether at least one figure is set
func (m Macros) known() bool {
	return m.Calories != nil || m.Protein != nil || m.Carbs != nil || m.Fat != nil
}

// rounded applies the output rounding policy: whole kcal, one decimal grams
func (m Macros) rounded() Macros {
	return Macros{
		Calories: Round0(m.Calories),
		Protein:  Round1(m.Protein),
		Carbs:    Round1(m.Carbs),
		Fat:      Round1(m.Fat),
	}
}

// servingsOf rounds both bases at the output boundary; grams <= 0 drops PerServing
func servingsOf(per100g, perServing Macros, grams float64) Servings {
	s := Servings{Per100g: per100g.rounded()}
	if grams > 0 {
		s.PerServing = &ServingMacros{Grams: grams, Macros: perServing.rounded()}
	}
	return s
}

// firstNonEmpty returns the first non blank value or ""
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// optional returns nil for an empty string
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
