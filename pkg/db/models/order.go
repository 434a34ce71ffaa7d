package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// Order is the immutable record produced by a confirmed checkout. Contact and
// address fields are snapshotted from the profile at confirmation time so
// later profile edits never rewrite order history.
type Order struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID           string            `gorm:"column:user_id;not null;index"`
	UserName         string            `gorm:"column:user_name;not null;default:''"`
	UserPhone        string            `gorm:"column:user_phone;not null;default:''"`
	BaseLocation     string            `gorm:"column:base_location;not null;default:''"`
	SubLocation      string            `gorm:"column:sub_location;not null;default:''"`
	Building         string            `gorm:"column:building;not null;default:''"`
	Floor            string            `gorm:"column:floor;not null;default:''"`
	Room             string            `gorm:"column:room;not null;default:''"`
	MerchantID       string            `gorm:"column:merchant_id;not null"`
	MerchantName     string            `gorm:"column:merchant_name;not null"`
	Items            types.OrderItems  `gorm:"column:items;type:jsonb;serializer:json;not null"`
	ItemsSubtotal    decimal.Decimal   `gorm:"column:items_subtotal;type:numeric(12,2);not null"`
	DeliveryCharge   decimal.Decimal   `gorm:"column:delivery_charge;type:numeric(12,2);not null"`
	ServiceCharge    decimal.Decimal   `gorm:"column:service_charge;type:numeric(12,2);not null"`
	TotalPrice       decimal.Decimal   `gorm:"column:total_price;type:numeric(12,2);not null"`
	Status           enums.OrderStatus `gorm:"column:status;not null;default:'Pending'"`
	OrderType        enums.OrderType   `gorm:"column:order_type;not null;default:'Instant'"`
	PreOrderCategory *string           `gorm:"column:pre_order_category"`
	CreatedAt        time.Time         `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time         `gorm:"column:updated_at;autoUpdateTime"`
}
