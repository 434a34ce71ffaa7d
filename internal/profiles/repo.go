package profiles

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a profiles repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByUserID(ctx context.Context, userID string) (*models.UserProfile, error) {
	var row models.UserProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) Upsert(ctx context.Context, profile *models.UserProfile) (*models.UserProfile, error) {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "phone", "base_location", "sub_location",
				"building", "floor", "room", "updated_at",
			}),
		}).
		Create(profile).Error
	if err != nil {
		return nil, err
	}
	return profile, nil
}
