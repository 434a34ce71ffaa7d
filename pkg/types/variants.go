package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Variant is one purchasable variation of a store item (e.g. "500g").
type Variant struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Variants is the typed variant list persisted as JSONB on store items.
type Variants []Variant

// Value serializes the variants to JSON.
func (v Variants) Value() (driver.Value, error) {
	if v == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(v)
}

// Scan decodes JSONB into the variant slice.
func (v *Variants) Scan(value interface{}) error {
	if value == nil {
		*v = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded Variants
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*v = decoded
	return nil
}

// ByName returns the variant with the given name, if present.
func (v Variants) ByName(name string) (Variant, bool) {
	for _, candidate := range v {
		if candidate.Name == name {
			return candidate, true
		}
	}
	return Variant{}, false
}
