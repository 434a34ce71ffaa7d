package types

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// OrderItem is the immutable line snapshot stored on a placed order.
type OrderItem struct {
	ItemName  string          `json:"item_name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	ShopName  string          `json:"shop_name,omitempty"`
}

// OrderItems is the order line list persisted as JSONB.
type OrderItems []OrderItem

// Value serializes the items to JSON.
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(o)
}

// Scan decodes JSONB into the item slice.
func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded OrderItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*o = decoded
	return nil
}
