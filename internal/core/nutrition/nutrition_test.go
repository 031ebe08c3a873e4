package nutrition

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 { return &v }

func decodeFood(t *testing.T, raw string) Food {
	t.Helper()
	var out Food
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func decodeProduct(t *testing.T, raw string) Product {
	t.Helper()
	var out Product
	require.NoError(t, json.Unmarshal([]byte(raw), &out))
	return out
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 150.0, *Round0(ptr(149.5)))
	assert.Equal(t, -150.0, *Round0(ptr(-149.5)))
	assert.Equal(t, 429.0, *Round0(ptr(120*100.0/28)))
	assert.Equal(t, 1.1, *Round1(ptr(1.05)))
	assert.Equal(t, 0.0, *Round1(ptr(0.04)))
	assert.Nil(t, Round0(nil))
	assert.Nil(t, Round1(nil))

	assert.Nil(t, Round0(ptr(math.Inf(1))))
	assert.Nil(t, Round0(ptr(math.NaN())))
	assert.Nil(t, Round1(ptr(math.Inf(-1))))
	assert.Nil(t, Round1(ptr(math.MaxFloat64)), "scaling by 10 overflows")
}

func TestNormalizeFoodOverflowIsUnknown(t *testing.T) {
	food := decodeFood(t, `{
		"fdcId": 1,
		"description": "Bad label",
		"dataType": "Branded",
		"servingSize": 1,
		"servingSizeUnit": "g",
		"labelNutrients": {"calories": {"value": 1e307}, "protein": {"value": 2}}
	}`)
	item := NormalizeFood(food)

	assert.Nil(t, item.Servings.Per100g.Calories, "1e307 x 100 is not finite")
	assert.Equal(t, 200.0, *item.Servings.Per100g.Protein)
	require.NotNil(t, item.Servings.PerServing)
	assert.Equal(t, 1e307, *item.Servings.PerServing.Calories)

	_, err := json.Marshal(item)
	require.NoError(t, err)
}

func TestParseServingGrams(t *testing.T) {
	cases := []struct {
		name string
		qty  any
		unit string
		text string
		want float64
		ok   bool
	}{
		{"structured grams", 30.0, "g", "", 30, true},
		{"structured string grams", "30", "grams", "", 30, true},
		{"structured ounces", 2.0, "OZ", "", 2 * GramsPerOunce, true},
		{"structured volume rejected", 250.0, "ml", "", 0, false},
		{"structured volume falls to text", 250.0, "ml", "1 cup (240 g)", 240, true},
		{"zero quantity falls to text", 0.0, "g", "15 g", 15, true},
		{"gram match wins over ounce", nil, "", "1 oz (28 g)", 28, true},
		{"ounce only", nil, "", "2 ounces", 2 * GramsPerOunce, true},
		{"no space", nil, "", "40g", 40, true},
		{"decimal", nil, "", "about 12.5 Grams each", 12.5, true},
		{"word boundary", nil, "", "5 gallons", 0, false},
		{"volume text", nil, "", "1 cup (250 ml)", 0, false},
		{"zero text", nil, "", "0 g", 0, false},
		{"empty", nil, "", "", 0, false},
		{"garbage quantity", map[string]any{"x": 1}, "g", "", 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseServingGrams(tc.qty, tc.unit, tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestNutrientEntryShapes(t *testing.T) {
	var entries []NutrientEntry
	raw := `[
		{"nutrient": {"id": 1008, "name": "Energy"}, "amount": 52},
		{"nutrientId": 1003, "value": 0.3},
		{"nutrientId": 1005, "value": null},
		{"something": "else"},
		"not an object"
	]`
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 5)

	id, amount, ok := entries[0].Reading()
	require.True(t, ok)
	assert.Equal(t, NutrientEnergyKcal, id)
	assert.Equal(t, 52.0, *amount)

	id, amount, ok = entries[1].Reading()
	require.True(t, ok)
	assert.Equal(t, NutrientProtein, id)
	assert.Equal(t, 0.3, *amount)

	id, amount, ok = entries[2].Reading()
	require.True(t, ok)
	assert.Equal(t, NutrientCarbohydrate, id)
	assert.Nil(t, amount)

	_, _, ok = entries[3].Reading()
	assert.False(t, ok)
	_, _, ok = entries[4].Reading()
	assert.False(t, ok)

	m := macrosFromNutrients(entries)
	assert.Equal(t, 52.0, *m.Calories)
	assert.Equal(t, 0.3, *m.Protein)
	assert.Nil(t, m.Carbs)
	assert.Nil(t, m.Fat)
}

func TestNutrientEntryMarshalKeepsShape(t *testing.T) {
	b, err := json.Marshal([]NutrientEntry{
		DetailNutrient(NutrientFat, Num(1.5)),
		SearchNutrient(NutrientFat, Number{}),
	})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"nutrient":{"id":1004},"amount":1.5},{"nutrientId":1004,"value":null}]`, string(b))
}

func TestExtractMeasures(t *testing.T) {
	portions := []Portion{
		{Amount: Num(1), MeasureUnit: &MeasureUnit{Name: "cup"}, GramWeight: Num(240)},
		{Amount: Num(1), MeasureUnit: &MeasureUnit{Name: "cup"}, GramWeight: Num(240)},
		{Amount: Num(1), Modifier: "large", PortionDescription: "egg", GramWeight: Num(50)},
		{PortionDescription: "slice", GramWeight: Num(0)},
		{PortionDescription: "piece", GramWeight: Num(-3)},
		{PortionDescription: "bit"},
		{Amount: Num(0.5), MeasureUnit: &MeasureUnit{Name: "cup"}, GramWeight: Num(120)},
		{GramWeight: Num(10)},
	}
	got := ExtractMeasures(portions)
	assert.Equal(t, []Unit{
		{Label: "1 cup", GramsPerUnit: 240},
		{Label: "1 large egg", GramsPerUnit: 50},
		{Label: "0.5 cup", GramsPerUnit: 120},
		{Label: "serving", GramsPerUnit: 10},
	}, got)
}

func TestNormalizeFoodBrandedGramServing(t *testing.T) {
	food := decodeFood(t, `{
		"fdcId": 2345,
		"description": "Granola Bar",
		"brandOwner": "Acme Foods",
		"dataType": "Branded",
		"servingSize": 28,
		"servingSizeUnit": "g",
		"labelNutrients": {
			"calories": {"value": 120},
			"protein": {"value": 2},
			"carbohydrates": {"value": 20},
			"fat": {"value": 4.5}
		}
	}`)
	item := NormalizeFood(food)

	assert.Equal(t, SourceFDC, item.Source)
	assert.Equal(t, int64(2345), item.FdcID)
	assert.Equal(t, "Granola Bar", item.Description)
	require.NotNil(t, item.BrandName)
	assert.Equal(t, "Acme Foods", *item.BrandName)

	assert.Equal(t, 429.0, *item.Servings.Per100g.Calories)
	assert.Equal(t, 7.1, *item.Servings.Per100g.Protein)
	assert.Equal(t, 71.4, *item.Servings.Per100g.Carbs)
	assert.Equal(t, 16.1, *item.Servings.Per100g.Fat)

	require.NotNil(t, item.Servings.PerServing)
	assert.Equal(t, 28.0, item.Servings.PerServing.Grams)
	assert.Equal(t, 120.0, *item.Servings.PerServing.Calories)
	assert.Equal(t, 4.5, *item.Servings.PerServing.Fat)

	assert.Equal(t, []Unit{unitGram, unitOunce, {Label: ServingLabel, GramsPerUnit: 28}}, item.Units)
}

func TestNormalizeFoodBrandedVolumeServing(t *testing.T) {
	withTable := decodeFood(t, `{
		"fdcId": 1,
		"description": "Cola",
		"dataType": "Branded",
		"servingSize": 355,
		"servingSizeUnit": "ml",
		"labelNutrients": {"calories": {"value": 140}},
		"foodNutrients": [{"nutrientId": 1008, "value": 39}]
	}`)
	item := NormalizeFood(withTable)
	assert.Nil(t, item.Servings.PerServing)
	assert.Equal(t, 39.0, *item.Servings.Per100g.Calories)
	assert.Equal(t, []Unit{unitGram, unitOunce}, item.Units)

	bare := decodeFood(t, `{
		"fdcId": 2,
		"description": "Cola",
		"dataType": "Branded",
		"servingSize": 355,
		"servingSizeUnit": "ML",
		"labelNutrients": {"calories": {"value": 140}}
	}`)
	item = NormalizeFood(bare)
	assert.Nil(t, item.Servings.PerServing)
	assert.Equal(t, Macros{}, item.Servings.Per100g)
}

func TestNormalizeFoodGeneric(t *testing.T) {
	t.Run("no measures", func(t *testing.T) {
		item := NormalizeFood(decodeFood(t, `{
			"fdcId": 171705,
			"description": "Apple, raw",
			"dataType": "SR Legacy",
			"foodNutrients": [
				{"nutrient": {"id": 1008}, "amount": 52},
				{"nutrient": {"id": 1003}, "amount": 0.26},
				{"nutrient": {"id": 1005}, "amount": 13.81},
				{"nutrient": {"id": 1004}, "amount": 0.17}
			]
		}`))
		assert.Nil(t, item.Servings.PerServing)
		assert.Equal(t, []Unit{unitGram, unitOunce}, item.Units)
		assert.Equal(t, 52.0, *item.Servings.Per100g.Calories)
		assert.Equal(t, 0.3, *item.Servings.Per100g.Protein)
		assert.Equal(t, 13.8, *item.Servings.Per100g.Carbs)
		assert.Equal(t, 0.2, *item.Servings.Per100g.Fat)
		assert.Nil(t, item.BrandName)
	})

	t.Run("first measure is the serving", func(t *testing.T) {
		item := NormalizeFood(decodeFood(t, `{
			"fdcId": 9,
			"description": "Milk",
			"dataType": "Foundation",
			"foodNutrients": [{"nutrientId": 1008, "value": 60}],
			"foodPortions": [
				{"amount": 1, "measureUnit": {"name": "cup"}, "gramWeight": 244},
				{"amount": 1, "measureUnit": {"name": "tbsp"}, "gramWeight": 15.3}
			]
		}`))
		require.NotNil(t, item.Servings.PerServing)
		assert.Equal(t, 244.0, item.Servings.PerServing.Grams)
		assert.Equal(t, 146.0, *item.Servings.PerServing.Calories)
		assert.Nil(t, item.Servings.PerServing.Fat)
		assert.Equal(t, []Unit{
			unitGram,
			unitOunce,
			{Label: "1 cup", GramsPerUnit: 244},
			{Label: "1 tbsp", GramsPerUnit: 15.3},
			{Label: ServingLabel, GramsPerUnit: 244},
		}, item.Units)
	})
}

func TestNormalizeProduct(t *testing.T) {
	t.Run("per 100 g only", func(t *testing.T) {
		item := NormalizeProduct(decodeProduct(t, `{
			"code": "0123456789012",
			"product_name": "Oat Drink",
			"nutriments": {"energy-kcal_100g": 200}
		}`))
		assert.Equal(t, SourceOFF, item.Source)
		require.NotNil(t, item.Code)
		assert.Equal(t, "0123456789012", *item.Code)
		assert.Equal(t, 200.0, *item.Servings.Per100g.Calories)
		assert.Nil(t, item.Servings.Per100g.Protein)
		assert.Nil(t, item.Servings.PerServing)
		assert.Equal(t, []Unit{unitGram, unitOunce}, item.Units)
		assert.Nil(t, item.BrandName)
	})

	t.Run("free text serving prefers grams", func(t *testing.T) {
		item := NormalizeProduct(decodeProduct(t, `{
			"code": "1",
			"generic_name": "Crackers",
			"brands": "Acme",
			"serving_size": "1 oz (28 g)",
			"nutriments": {"energy-kcal_serving": 120, "fat_100g": "10"}
		}`))
		assert.Equal(t, "Crackers", item.Description)
		require.NotNil(t, item.Servings.PerServing)
		assert.Equal(t, 28.0, item.Servings.PerServing.Grams)
		assert.Equal(t, 120.0, *item.Servings.PerServing.Calories)
		assert.Equal(t, 10.0, *item.Servings.PerServing.Fat)
		assert.Equal(t, 429.0, *item.Servings.Per100g.Calories)
		assert.Equal(t, 35.7, *item.Servings.Per100g.Fat)
		assert.Equal(t, Unit{Label: ServingLabel, GramsPerUnit: 28}, item.Units[2])
	})

	t.Run("structured serving", func(t *testing.T) {
		item := NormalizeProduct(decodeProduct(t, `{
			"code": "2",
			"product_name": "Yogurt",
			"serving_quantity": "125",
			"serving_quantity_unit": "g",
			"nutriments": {"proteins_serving": 5, "proteins_100g": 4}
		}`))
		require.NotNil(t, item.Servings.PerServing)
		assert.Equal(t, 125.0, item.Servings.PerServing.Grams)
		assert.Equal(t, 5.0, *item.Servings.PerServing.Protein)
		assert.Equal(t, 4.0, *item.Servings.Per100g.Protein)
	})

	t.Run("empty nutriments", func(t *testing.T) {
		item := NormalizeProduct(Product{Code: "3"})
		assert.Equal(t, Macros{}, item.Servings.Per100g)
		assert.Equal(t, "", item.Description)
	})
}

func TestNormalizeIsIdempotent(t *testing.T) {
	rawFood := `{"fdcId": 5, "description": "Bread", "dataType": "Branded", "servingSize": 33,
		"servingSizeUnit": "GRM", "labelNutrients": {"calories": {"value": 90}},
		"foodNutrients": [{"nutrientId": 1008, "value": 270}],
		"foodPortions": [{"amount": 1, "measureUnit": {"name": "slice"}, "gramWeight": 33}]}`
	a, err := json.Marshal(NormalizeFood(decodeFood(t, rawFood)))
	require.NoError(t, err)
	b, err := json.Marshal(NormalizeFood(decodeFood(t, rawFood)))
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))

	rawProduct := `{"code": "7", "product_name": "Chips", "serving_size": "30 g",
		"nutriments": {"energy-kcal_100g": 530, "fat_serving": 10}}`
	c, err := json.Marshal(NormalizeProduct(decodeProduct(t, rawProduct)))
	require.NoError(t, err)
	d, err := json.Marshal(NormalizeProduct(decodeProduct(t, rawProduct)))
	require.NoError(t, err)
	assert.Equal(t, string(c), string(d))
}

func TestFoodItemWireShape(t *testing.T) {
	item := NormalizeProduct(decodeProduct(t, `{"code": "42", "product_name": "Water"}`))
	b, err := json.Marshal(item)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"source": "OFF",
		"code": "42",
		"description": "Water",
		"brandName": null,
		"servings": {
			"per100g": {"calories": null, "protein": null, "carbs": null, "fat": null},
			"perServing": null
		},
		"units": [
			{"label": "gram (g)", "gramsPerUnit": 1},
			{"label": "ounce (oz)", "gramsPerUnit": 28.3495}
		]
	}`, string(b))
}
