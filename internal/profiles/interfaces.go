package profiles

import (
	"context"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

// Repository persists user delivery profiles keyed by the identity uid.
type Repository interface {
	FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error)
}

// Service exposes profile reads/writes for the account screen and checkout.
type Service interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
	Upsert(ctx context.Context, userID string, input UpsertInput) (*models.UserProfile, error)
}

// UpsertInput carries the editable profile fields.
type UpsertInput struct {
	Name         string
	Phone        string
	BaseLocation string
	SubLocation  string
	Building     string
	Floor        string
	Room         string
}
