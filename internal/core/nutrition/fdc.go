package nutrition

import "strings"

// DataTypeBranded marks packaged foods whose label data is per serving
const DataTypeBranded = "Branded"

// Food is a FoodData Central record; detail and search payloads both decode into it
type Food struct {
	FdcID           int64                 `json:"fdcId"`
	Description     string                `json:"description"`
	BrandName       string                `json:"brandName,omitempty"`
	BrandOwner      string                `json:"brandOwner,omitempty"`
	DataType        string                `json:"dataType"`
	ServingSize     Number                `json:"servingSize"`
	ServingSizeUnit string                `json:"servingSizeUnit,omitempty"`
	LabelNutrients  map[string]LabelValue `json:"labelNutrients,omitempty"`
	FoodNutrients   []NutrientEntry       `json:"foodNutrients,omitempty"`
	FoodPortions    []Portion             `json:"foodPortions,omitempty"`
}

// LabelValue is one labelNutrients entry
type LabelValue struct {
	Value Number `json:"value"`
}

// Branded reports whether the record is packaged/branded rather than generic
// (foundation, survey and legacy are all generic)
func (f Food) Branded() bool {
	return strings.EqualFold(strings.TrimSpace(f.DataType), DataTypeBranded)
}

// labelMacros reads per serving figures from the nutrition label
func (f Food) labelMacros() Macros {
	get := func(key string) *float64 {
		v, ok := f.LabelNutrients[key]
		if !ok {
			return nil
		}
		return v.Value.Ptr()
	}
	return Macros{
		Calories: get("calories"),
		Protein:  get("protein"),
		Carbs:    get("carbohydrates"),
		Fat:      get("fat"),
	}
}

// labelServingGrams trusts servingSize only when its unit is grams
func (f Food) labelServingGrams() (float64, bool) {
	if !isGramUnit(f.ServingSizeUnit) {
		return 0, false
	}
	return f.ServingSize.Positive()
}

// NormalizeFood converts one FoodData Central record into a FoodItem
//
// branded: label data is the per serving truth and per 100 g is scaled from it when the
// serving is declared in grams, otherwise the foodNutrients table is used as is
// generic: foodNutrients is the per 100 g truth and the first household measure, if
// any, becomes the serving
func NormalizeFood(f Food) FoodItem {
	measures := ExtractMeasures(f.FoodPortions)

	var (
		per100g    Macros
		perServing Macros
		grams      float64
	)

	if f.Branded() {
		perServing = f.labelMacros()
		if g, ok := f.labelServingGrams(); ok {
			grams = g
			per100g = perServing.scale(100 / g)
		} else if len(f.FoodNutrients) > 0 {
			per100g = macrosFromNutrients(f.FoodNutrients)
		}
	} else {
		per100g = macrosFromNutrients(f.FoodNutrients)
		if len(measures) > 0 {
			grams = measures[0].GramsPerUnit
			perServing = per100g.scale(grams / 100)
		}
	}

	units := newUnitSet()
	units.add(measures...)
	if grams > 0 {
		units.add(Unit{Label: ServingLabel, GramsPerUnit: grams})
	}

	return FoodItem{
		Source:      SourceFDC,
		FdcID:       f.FdcID,
		Description: firstNonEmpty(f.Description, f.BrandName),
		BrandName:   optional(firstNonEmpty(f.BrandName, f.BrandOwner)),
		DataType:    f.DataType,
		Servings:    servingsOf(per100g, perServing, grams),
		Units:       units.list(),
	}
}
