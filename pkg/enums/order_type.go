package enums

import "fmt"

// OrderType distinguishes immediate deliveries from scheduled pre-orders.
type OrderType string

const (
	OrderTypeInstant  OrderType = "Instant"
	OrderTypePreOrder OrderType = "PreOrder"
)

var validOrderTypes = []OrderType{
	OrderTypeInstant,
	OrderTypePreOrder,
}

// IsValid reports whether the value matches a known order type.
func (t OrderType) IsValid() bool {
	for _, candidate := range validOrderTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseOrderType converts raw input into OrderType.
func ParseOrderType(value string) (OrderType, error) {
	for _, candidate := range validOrderTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order type %q", value)
}
