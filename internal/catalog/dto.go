package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// GenericStoreName is the display label of the shared grocery storefront.
const GenericStoreName = "Yumzy Store"

// ResolvedItem is a catalog entry resolved to a single priced, orderable
// line ready for the cart. Variant selection and shop orderability are
// settled here so nothing downstream re-derives them.
type ResolvedItem struct {
	ItemID       string
	VariantName  string
	DisplayName  string
	UnitPrice    decimal.Decimal
	MerchantID   string
	MerchantName string
	Category     string
	ShopName     string
}

// StoreItemView is a store item with its orderability resolved against the
// owning shop.
type StoreItemView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	SubCategory string          `json:"sub_category"`
	InStock     bool            `json:"in_stock"`
	Orderable   bool            `json:"orderable"`
	ShopID      *string         `json:"shop_id,omitempty"`
	ShopName    string          `json:"shop_name,omitempty"`
	Variants    types.Variants  `json:"variants"`
}

// SurchargeTotals accumulates the per-item additional charges applied to
// generic-store orders.
type SurchargeTotals struct {
	Delivery decimal.Decimal
	Service  decimal.Decimal
}
