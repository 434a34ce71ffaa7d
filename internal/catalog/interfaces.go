package catalog

import (
	"context"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
)

// Repository exposes catalog reads over restaurants, shops and store items.
type Repository interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	FindRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	ListMenuItems(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	FindMenuItem(ctx context.Context, restaurantID, itemID string) (*models.MenuItem, error)
	ListShops(ctx context.Context) ([]models.Shop, error)
	FindShop(ctx context.Context, id string) (*models.Shop, error)
	ListStoreItems(ctx context.Context, subCategory string) ([]models.StoreItem, error)
	FindStoreItem(ctx context.Context, id string) (*models.StoreItem, error)
	FindStoreItems(ctx context.Context, ids []string) ([]models.StoreItem, error)
}

// Service resolves catalog entries for browsing, the cart and the pricing
// calculator.
type Service interface {
	ListRestaurants(ctx context.Context) ([]models.Restaurant, error)
	GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]models.MenuItem, error)
	ListShops(ctx context.Context) ([]models.Shop, error)
	ListStoreItems(ctx context.Context, subCategory string) ([]StoreItemView, error)
	ResolveMenuItem(ctx context.Context, restaurantID, itemID string) (*ResolvedItem, error)
	ResolveStoreItem(ctx context.Context, itemID, variantName string) (*ResolvedItem, error)
	Surcharges(ctx context.Context, itemIDs []string) (SurchargeTotals, error)
}
