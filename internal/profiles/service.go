package profiles

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

type service struct {
	repo Repository
}

// NewService builds a profiles service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("profiles repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	row, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load profile")
	}
	return row, nil
}

// Upsert creates or replaces the editable profile fields. A sub-location
// without a base location is rejected because the rate tables are keyed by
// the pair.
func (s *service) Upsert(ctx context.Context, userID string, input UpsertInput) (*models.UserProfile, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	base := strings.TrimSpace(input.BaseLocation)
	sub := strings.TrimSpace(input.SubLocation)
	if sub != "" && base == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sub location requires a base location")
	}

	profile := &models.UserProfile{
		UserID:       userID,
		Name:         strings.TrimSpace(input.Name),
		Phone:        strings.TrimSpace(input.Phone),
		BaseLocation: base,
		SubLocation:  sub,
		Building:     strings.TrimSpace(input.Building),
		Floor:        strings.TrimSpace(input.Floor),
		Room:         strings.TrimSpace(input.Room),
	}

	saved, err := s.repo.Upsert(ctx, profile)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save profile")
	}
	return saved, nil
}
