package locations

import (
	"context"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a locations repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context) ([]models.LocationRate, error) {
	var rows []models.LocationRate
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByName(ctx context.Context, name string) (*models.LocationRate, error) {
	var row models.LocationRate
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}
