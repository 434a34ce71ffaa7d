package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// StringArray stores an ordered list of strings as JSONB.
type StringArray []string

// Value serializes the array to JSON.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}

// Scan decodes JSONB into the string slice.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded StringArray
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*s = decoded
	return nil
}

// DecimalArray stores an ordered list of decimal rates as JSONB. Sub-location
// rate tables are positional, so order is significant.
type DecimalArray []decimal.Decimal

// Value serializes the array to JSON.
func (d DecimalArray) Value() (driver.Value, error) {
	if d == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(d)
}

// Scan decodes JSONB into the decimal slice.
func (d *DecimalArray) Scan(value interface{}) error {
	if value == nil {
		*d = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded DecimalArray
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*d = decoded
	return nil
}

// At returns the element at idx, reporting whether the index was in range.
func (d DecimalArray) At(idx int) (decimal.Decimal, bool) {
	if idx < 0 || idx >= len(d) {
		return decimal.Decimal{}, false
	}
	return d[idx], true
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
