package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	var rows []models.Restaurant
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	var row models.Restaurant
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	var rows []models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Order("category ASC").
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindMenuItem(ctx context.Context, restaurantID, itemID string) (*models.MenuItem, error) {
	var row models.MenuItem
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID).
		Where("id = ?", itemID).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListShops(ctx context.Context) ([]models.Shop, error) {
	var rows []models.Shop
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindShop(ctx context.Context, id string) (*models.Shop, error) {
	var row models.Shop
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) ListStoreItems(ctx context.Context, subCategory string) ([]models.StoreItem, error) {
	q := r.db.WithContext(ctx)
	if subCategory != "" {
		q = q.Where("sub_category = ?", subCategory)
	}
	var rows []models.StoreItem
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindStoreItem(ctx context.Context, id string) (*models.StoreItem, error) {
	var row models.StoreItem
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *repository) FindStoreItems(ctx context.Context, ids []string) ([]models.StoreItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []models.StoreItem
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error
	return rows, err
}
