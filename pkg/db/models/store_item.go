package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// Shop is a mini-storefront whose items sell through the generic store
// merchant. Its open flag gates orderability of every item it owns.
type Shop struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;not null"`
	IsOpen    bool      `gorm:"column:is_open;not null;default:true"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// StoreItem is a grocery-style item sold through the generic store. Variants
// are resolved once at the data boundary; per-item surcharges feed the
// checkout calculator for generic-store orders.
type StoreItem struct {
	ID                       string          `gorm:"column:id;primaryKey"`
	ShopID                   *string         `gorm:"column:shop_id;index"`
	Name                     string          `gorm:"column:name;not null"`
	Price                    decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	SubCategory              string          `gorm:"column:sub_category;not null;default:''"`
	InStock                  bool            `gorm:"column:in_stock;not null;default:true"`
	Variants                 types.Variants  `gorm:"column:variants;type:jsonb;serializer:json"`
	AdditionalDeliveryCharge decimal.Decimal `gorm:"column:additional_delivery_charge;type:numeric(12,2);not null;default:0"`
	AdditionalServiceCharge  decimal.Decimal `gorm:"column:additional_service_charge;type:numeric(12,2);not null;default:0"`
	CreatedAt                time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt                time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
