package orders

import "github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"

// OrderList is one cursor page of a user's order history, newest first.
type OrderList struct {
	Orders     []models.Order `json:"orders"`
	NextCursor string         `json:"next_cursor,omitempty"`
}
