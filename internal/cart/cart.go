package cart

import (
	"github.com/shopspring/decimal"

	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

// LineKey identifies one cart line. Items with variants get one line per
// variant; the composite key avoids any string concatenation of the parts.
type LineKey struct {
	ItemID  string `json:"item_id"`
	Variant string `json:"variant,omitempty"`
}

// Line is one priced cart entry. Merchant fields are denormalized onto every
// line so the single-merchant invariant can be checked without lookups.
type Line struct {
	Key          LineKey         `json:"key"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	Quantity     int             `json:"quantity"`
	MerchantID   string          `json:"merchant_id"`
	MerchantName string          `json:"merchant_name"`
	Category     string          `json:"category,omitempty"`
	ShopName     string          `json:"shop_name,omitempty"`
}

// Subtotal returns unit price times quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is the per-user cart aggregate. Lines keep insertion order; every
// mutation re-validates the single-merchant and quantity-cap invariants and
// rejects without mutating on violation.
type Cart struct {
	Lines []Line `json:"lines"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.Lines) == 0
}

// TotalQuantity sums the quantities across all lines.
func (c *Cart) TotalQuantity() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// TotalPrice sums line subtotals.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// Merchant returns the id and name shared by all lines, reporting false when
// the cart is empty.
func (c *Cart) Merchant() (id, name string, ok bool) {
	if len(c.Lines) == 0 {
		return "", "", false
	}
	return c.Lines[0].MerchantID, c.Lines[0].MerchantName, true
}

// Find returns the line with the given key, if present.
func (c *Cart) Find(key LineKey) (Line, bool) {
	if idx := c.indexOf(key); idx >= 0 {
		return c.Lines[idx], true
	}
	return Line{}, false
}

// LinesForMerchant returns the lines belonging to the given merchant.
func (c *Cart) LinesForMerchant(merchantID string) []Line {
	var out []Line
	for _, line := range c.Lines {
		if line.MerchantID == merchantID {
			out = append(out, line)
		}
	}
	return out
}

// Add inserts the line at quantity 1. Re-adding an existing key resets that
// line back to quantity 1: the storefront only shows the add control at
// quantity zero, so a stray re-add must not silently stack.
func (c *Cart) Add(line Line, maxTotal int) error {
	if merchantID, _, ok := c.Merchant(); ok && merchantID != line.MerchantID {
		return pkgerrors.New(pkgerrors.CodeMerchantConflict, "cart holds items from another merchant").
			WithDetails(map[string]string{"cart_merchant_id": merchantID, "item_merchant_id": line.MerchantID})
	}

	line.Quantity = 1
	if idx := c.indexOf(line.Key); idx >= 0 {
		c.Lines[idx] = line
		return nil
	}

	if c.TotalQuantity()+1 > maxTotal {
		return limitError(maxTotal)
	}
	c.Lines = append(c.Lines, line)
	return nil
}

// Increment raises the quantity of an existing line by one. Absent keys are
// a no-op.
func (c *Cart) Increment(key LineKey, maxTotal int) error {
	idx := c.indexOf(key)
	if idx < 0 {
		return nil
	}
	if c.TotalQuantity()+1 > maxTotal {
		return limitError(maxTotal)
	}
	c.Lines[idx].Quantity++
	return nil
}

// Decrement lowers the quantity of an existing line by one, removing the
// line when it hits zero. Absent keys are a no-op.
func (c *Cart) Decrement(key LineKey) {
	idx := c.indexOf(key)
	if idx < 0 {
		return
	}
	if c.Lines[idx].Quantity <= 1 {
		c.Lines = append(c.Lines[:idx], c.Lines[idx+1:]...)
		return
	}
	c.Lines[idx].Quantity--
}

// ClearMerchant drops every line belonging to the given merchant.
func (c *Cart) ClearMerchant(merchantID string) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.MerchantID != merchantID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
}

// Clear drops every line.
func (c *Cart) Clear() {
	c.Lines = nil
}

func (c *Cart) indexOf(key LineKey) int {
	for i, line := range c.Lines {
		if line.Key == key {
			return i
		}
	}
	return -1
}

func limitError(maxTotal int) error {
	return pkgerrors.New(pkgerrors.CodeCartLimit, "cart quantity limit reached").
		WithDetails(map[string]int{"max_total_quantity": maxTotal})
}
