package locations

import (
	"context"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

// Repository exposes reads over the location rate tables.
type Repository interface {
	List(ctx context.Context) ([]models.LocationRate, error)
	FindByName(ctx context.Context, name string) (*models.LocationRate, error)
}

// Service exposes location lookups for the profile editor and the pricing
// calculator.
type Service interface {
	List(ctx context.Context) ([]models.LocationRate, error)
	GetByName(ctx context.Context, name string) (*models.LocationRate, error)
}
