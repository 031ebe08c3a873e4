package nutrition

import "encoding/json"

// FoodData Central nutrient ids, values are per 100 g
const (
	NutrientEnergyKcal   = 1008
	NutrientProtein      = 1003
	NutrientCarbohydrate = 1005
	NutrientFat          = 1004
)

// NutrientEntry is one foodNutrients element in either of the two FDC payload shapes
//
//	detail: {"nutrient": {"id": 1008}, "amount": 52}
//	search: {"nutrientId": 1008, "value": 52}
//
// exactly one of detail or search is set; an entry matching neither is ignored
type NutrientEntry struct {
	detail *detailNutrient
	search *searchNutrient
}

type detailNutrient struct {
	id     int
	amount Number
}

type searchNutrient struct {
	id    int
	value Number
}

// DetailNutrient builds an entry in the detail payload shape
func DetailNutrient(id int, amount Number) NutrientEntry {
	return NutrientEntry{detail: &detailNutrient{id: id, amount: amount}}
}

// SearchNutrient builds an entry in the search payload shape
func SearchNutrient(id int, value Number) NutrientEntry {
	return NutrientEntry{search: &searchNutrient{id: id, value: value}}
}

// Reading returns the nutrient id and amount whichever shape the entry has
// ok is false for unrecognised entries
func (e NutrientEntry) Reading() (id int, amount *float64, ok bool) {
	switch {
	case e.detail != nil:
		return e.detail.id, e.detail.amount.Ptr(), true
	case e.search != nil:
		return e.search.id, e.search.value.Ptr(), true
	default:
		return 0, nil, false
	}
}

// UnmarshalJSON picks the shape from the keys present; it never fails on odd entries
func (e *NutrientEntry) UnmarshalJSON(b []byte) error {
	*e = NutrientEntry{}
	var probe struct {
		Nutrient *struct {
			ID Number `json:"id"`
		} `json:"nutrient"`
		Amount     Number `json:"amount"`
		NutrientID Number `json:"nutrientId"`
		Value      Number `json:"value"`
	}
	if err := json.Unmarshal(b, &probe); err != nil {
		return nil
	}
	switch {
	case probe.Nutrient != nil && probe.Nutrient.ID.Valid:
		*e = DetailNutrient(int(probe.Nutrient.ID.Value), probe.Amount)
	case probe.NutrientID.Valid:
		*e = SearchNutrient(int(probe.NutrientID.Value), probe.Value)
	}
	return nil
}

// MarshalJSON writes the entry back in its original shape
func (e NutrientEntry) MarshalJSON() ([]byte, error) {
	switch {
	case e.detail != nil:
		return json.Marshal(map[string]any{
			"nutrient": map[string]int{"id": e.detail.id},
			"amount":   e.detail.amount,
		})
	case e.search != nil:
		return json.Marshal(map[string]any{
			"nutrientId": e.search.id,
			"value":      e.search.value,
		})
	default:
		return []byte("{}"), nil
	}
}

// macrosFromNutrients reads the per 100 g table; the last entry for an id wins
func macrosFromNutrients(entries []NutrientEntry) Macros {
	var m Macros
	for _, e := range entries {
		id, amount, ok := e.Reading()
		if !ok {
			continue
		}
		switch id {
		case NutrientEnergyKcal:
			m.Calories = amount
		case NutrientProtein:
			m.Protein = amount
		case NutrientCarbohydrate:
			m.Carbs = amount
		case NutrientFat:
			m.Fat = amount
		}
	}
	return m
}
