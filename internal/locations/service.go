package locations

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

type service struct {
	repo Repository
}

// NewService builds a locations service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("locations repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.LocationRate, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list locations")
	}
	return rows, nil
}

func (s *service) GetByName(ctx context.Context, name string) (*models.LocationRate, error) {
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "location name is required")
	}
	row, err := s.repo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "location not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load location")
	}
	return row, nil
}
