package payloads

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
)

// OrderCreatedEvent signals a newly placed order awaiting fulfillment.
type OrderCreatedEvent struct {
	OrderID          uuid.UUID       `json:"order_id"`
	UserID           string          `json:"user_id"`
	MerchantID       string          `json:"merchant_id"`
	MerchantName     string          `json:"merchant_name"`
	OrderType        enums.OrderType `json:"order_type"`
	PreOrderCategory string          `json:"pre_order_category,omitempty"`
	TotalPrice       decimal.Decimal `json:"total_price"`
	ItemCount        int             `json:"item_count"`
	PlacedAt         time.Time       `json:"placed_at"`
}
