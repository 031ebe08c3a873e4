package nutrition

// Product is an Open Food Facts product record, trimmed to the fields we read
type Product struct {
	Code                string         `json:"code"`
	ProductName         string         `json:"product_name,omitempty"`
	GenericName         string         `json:"generic_name,omitempty"`
	Brands              string         `json:"brands,omitempty"`
	Nutriments          map[string]any `json:"nutriments,omitempty"`
	ServingQuantity     any            `json:"serving_quantity,omitempty"`
	ServingSizeUnit     string         `json:"serving_size_unit,omitempty"`
	ServingQuantityUnit string         `json:"serving_quantity_unit,omitempty"`
	ServingSize         string         `json:"serving_size,omitempty"`
}

// nutriment keys without their basis suffix
const (
	keyEnergyKcal = "energy-kcal"
	keyProteins   = "proteins"
	keyCarbs      = "carbohydrates"
	keyFat        = "fat"
)

const (
	basisServing = "_serving"
	basis100g    = "_100g"
)

type nutriments map[string]any

// get reads one numeric nutriment, nil when absent or not numeric
func (n nutriments) get(key string) *float64 {
	v, ok := loose(n[key])
	if !ok {
		return nil
	}
	return &v
}

// basis reads all four figures for one suffix
func (n nutriments) basis(suffix string) Macros {
	return Macros{
		Calories: n.get(keyEnergyKcal + suffix),
		Protein:  n.get(keyProteins + suffix),
		Carbs:    n.get(keyCarbs + suffix),
		Fat:      n.get(keyFat + suffix),
	}
}

// servingUnit prefers serving_size_unit and falls back to serving_quantity_unit
func (p Product) servingUnit() string {
	return firstNonEmpty(p.ServingSizeUnit, p.ServingQuantityUnit)
}

// NormalizeProduct converts one Open Food Facts product into a FoodItem
//
// Each macro prefers its _serving figure and falls back to _100g independently, so one
// record may mix bases. When a serving weight is known and any of those figures is set,
// per 100 g is recomputed from them, keeping the _100g value where a figure is missing
func NormalizeProduct(p Product) FoodItem {
	n := nutriments(p.Nutriments)
	baseline := n.basis(basis100g)
	perServing := n.basis(basisServing).or(baseline)

	per100g := baseline
	grams, ok := ParseServingGrams(p.ServingQuantity, p.servingUnit(), p.ServingSize)
	if !ok {
		grams = 0
	}
	if grams > 0 && perServing.known() {
		per100g = perServing.scale(100 / grams).or(baseline)
	}

	units := newUnitSet()
	if grams > 0 {
		units.add(Unit{Label: ServingLabel, GramsPerUnit: grams})
	}

	return FoodItem{
		Source:      SourceOFF,
		Code:        optional(p.Code),
		Description: firstNonEmpty(p.ProductName, p.GenericName),
		BrandName:   optional(p.Brands),
		Servings:    servingsOf(per100g, perServing, grams),
		Units:       units.list(),
	}
}
