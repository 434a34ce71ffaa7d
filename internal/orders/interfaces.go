package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/pagination"
)

// Repository persists and reads immutable order records.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, order *models.Order) (*models.Order, error)
	ListByUser(ctx context.Context, userID string, params pagination.Params) (*OrderList, error)
	FindByIDForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error)
}

// Service exposes the order history surface.
type Service interface {
	ListByUser(ctx context.Context, userID string, params pagination.Params) (*OrderList, error)
	GetForUser(ctx context.Context, id uuid.UUID, userID string) (*models.Order, error)
}
