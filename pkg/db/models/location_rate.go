package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// LocationRate holds the delivery/service rate tables for one base location.
// The four rate arrays are positional and parallel to SubLocations: the index
// of the customer's sub-location selects the element.
type LocationRate struct {
	ID                     uuid.UUID          `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name                   string             `gorm:"column:name;uniqueIndex;not null"`
	SubLocations           types.StringArray  `gorm:"column:sub_locations;type:jsonb;serializer:json"`
	PreOrderDeliveryRates  types.DecimalArray `gorm:"column:pre_order_delivery_rates;type:jsonb;serializer:json"`
	PreOrderServiceRates   types.DecimalArray `gorm:"column:pre_order_service_rates;type:jsonb;serializer:json"`
	InstantDeliveryRates   types.DecimalArray `gorm:"column:instant_delivery_rates;type:jsonb;serializer:json"`
	InstantServiceRates    types.DecimalArray `gorm:"column:instant_service_rates;type:jsonb;serializer:json"`
	CreatedAt              time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt              time.Time          `gorm:"column:updated_at;autoUpdateTime"`
}
