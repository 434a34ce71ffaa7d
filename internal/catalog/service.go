package catalog

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

type service struct {
	repo           Repository
	genericStoreID string
}

// NewService builds a catalog service. genericStoreID identifies the shared
// grocery storefront that store items sell through.
func NewService(repo Repository, genericStoreID string) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	if genericStoreID == "" {
		return nil, fmt.Errorf("generic store id required")
	}
	return &service{repo: repo, genericStoreID: genericStoreID}, nil
}

func (s *service) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	rows, err := s.repo.ListRestaurants(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list restaurants")
	}
	return rows, nil
}

func (s *service) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	if id == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	row, err := s.repo.FindRestaurant(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}
	return row, nil
}

func (s *service) ListMenu(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	if restaurantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required")
	}
	rows, err := s.repo.ListMenuItems(ctx, restaurantID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list menu items")
	}
	return rows, nil
}

func (s *service) ListShops(ctx context.Context) ([]models.Shop, error) {
	rows, err := s.repo.ListShops(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list shops")
	}
	return rows, nil
}

func (s *service) ListStoreItems(ctx context.Context, subCategory string) ([]StoreItemView, error) {
	rows, err := s.repo.ListStoreItems(ctx, subCategory)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list store items")
	}

	shopCache := map[string]*models.Shop{}
	views := make([]StoreItemView, 0, len(rows))
	for _, item := range rows {
		shop, err := s.shopFor(ctx, item.ShopID, shopCache)
		if err != nil {
			return nil, err
		}
		views = append(views, StoreItemView{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			SubCategory: item.SubCategory,
			InStock:     item.InStock,
			Orderable:   orderable(item, shop),
			ShopID:      item.ShopID,
			ShopName:    shopName(shop),
			Variants:    item.Variants,
		})
	}
	return views, nil
}

// ResolveMenuItem resolves one restaurant dish into a cart-ready line.
func (s *service) ResolveMenuItem(ctx context.Context, restaurantID, itemID string) (*ResolvedItem, error) {
	if restaurantID == "" || itemID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id and item id are required")
	}

	restaurant, err := s.repo.FindRestaurant(ctx, restaurantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "restaurant not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load restaurant")
	}

	item, err := s.repo.FindMenuItem(ctx, restaurantID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "menu item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load menu item")
	}
	if !item.Available {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "menu item is not available right now")
	}

	return &ResolvedItem{
		ItemID:       item.ID,
		DisplayName:  item.Name,
		UnitPrice:    item.Price,
		MerchantID:   restaurant.ID,
		MerchantName: restaurant.Name,
		Category:     item.Category,
	}, nil
}

// ResolveStoreItem resolves one store item (and optional variant) into a
// cart-ready line under the generic store merchant. Orderability is stock
// AND owning shop open; a shopless item is gated by stock alone.
func (s *service) ResolveStoreItem(ctx context.Context, itemID, variantName string) (*ResolvedItem, error) {
	if itemID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "item id is required")
	}

	item, err := s.repo.FindStoreItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "store item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load store item")
	}

	shop, err := s.shopFor(ctx, item.ShopID, nil)
	if err != nil {
		return nil, err
	}
	if !orderable(*item, shop) {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "item is not orderable right now")
	}

	resolved := &ResolvedItem{
		ItemID:       item.ID,
		DisplayName:  item.Name,
		UnitPrice:    item.Price,
		MerchantID:   s.genericStoreID,
		MerchantName: GenericStoreName,
		Category:     item.SubCategory,
		ShopName:     shopName(shop),
	}

	if variantName != "" {
		variant, ok := item.Variants.ByName(variantName)
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown variant").
				WithDetails(map[string]string{"variant": variantName})
		}
		resolved.VariantName = variant.Name
		resolved.DisplayName = fmt.Sprintf("%s (%s)", item.Name, variant.Name)
		resolved.UnitPrice = variant.Price
	}

	return resolved, nil
}

// Surcharges sums the additional delivery/service charges of the given store
// items. Each distinct item id contributes once regardless of quantity.
func (s *service) Surcharges(ctx context.Context, itemIDs []string) (SurchargeTotals, error) {
	totals := SurchargeTotals{}
	distinct := dedupe(itemIDs)
	if len(distinct) == 0 {
		return totals, nil
	}

	rows, err := s.repo.FindStoreItems(ctx, distinct)
	if err != nil {
		return totals, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load surcharge items")
	}
	for _, item := range rows {
		totals.Delivery = totals.Delivery.Add(item.AdditionalDeliveryCharge)
		totals.Service = totals.Service.Add(item.AdditionalServiceCharge)
	}
	return totals, nil
}

func (s *service) shopFor(ctx context.Context, shopID *string, cache map[string]*models.Shop) (*models.Shop, error) {
	if shopID == nil || *shopID == "" {
		return nil, nil
	}
	if cache != nil {
		if shop, ok := cache[*shopID]; ok {
			return shop, nil
		}
	}
	shop, err := s.repo.FindShop(ctx, *shopID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Orphaned shop reference behaves like a shopless item.
			if cache != nil {
				cache[*shopID] = nil
			}
			return nil, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load shop")
	}
	if cache != nil {
		cache[*shopID] = shop
	}
	return shop, nil
}

func orderable(item models.StoreItem, shop *models.Shop) bool {
	if !item.InStock {
		return false
	}
	if shop == nil {
		return true
	}
	return shop.IsOpen
}

func shopName(shop *models.Shop) string {
	if shop == nil {
		return ""
	}
	return shop.Name
}

func dedupe(ids []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
