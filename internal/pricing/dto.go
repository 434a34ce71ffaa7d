package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
)

// Quote is the computed price breakdown for one merchant's cart lines.
// Warnings carry the user-visible degradation notes produced when a rate or
// surcharge lookup failed and defaults were applied.
type Quote struct {
	ItemsSubtotal     decimal.Decimal `json:"items_subtotal"`
	DeliveryCharge    decimal.Decimal `json:"delivery_charge"`
	ServiceCharge     decimal.Decimal `json:"service_charge"`
	TotalPrice        decimal.Decimal `json:"total_price"`
	OrderType         enums.OrderType `json:"order_type"`
	PreOrderCategory  string          `json:"pre_order_category,omitempty"`
	ProfileIncomplete bool            `json:"profile_incomplete,omitempty"`
	Warnings          []string        `json:"warnings,omitempty"`
}
