package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// Restaurant is a single-kitchen merchant with its own menu.
type Restaurant struct {
	ID                 string            `gorm:"column:id;primaryKey"`
	Name               string            `gorm:"column:name;not null"`
	ImageURL           *string           `gorm:"column:image_url"`
	IsOpen             bool              `gorm:"column:is_open;not null;default:true"`
	PreOrderCategories types.StringArray `gorm:"column:pre_order_categories;type:jsonb;serializer:json"`
	CreatedAt          time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}

// MenuItem is one orderable dish on a restaurant's menu. Category carries the
// ordering window label ("Current Menu" or a "Pre-order ..." slot).
type MenuItem struct {
	ID           string          `gorm:"column:id;primaryKey"`
	RestaurantID string          `gorm:"column:restaurant_id;not null;index"`
	Name         string          `gorm:"column:name;not null"`
	Price        decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Category     string          `gorm:"column:category;not null;default:'Current Menu'"`
	Available    bool            `gorm:"column:available;not null;default:true"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
