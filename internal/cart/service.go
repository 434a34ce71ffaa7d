package cart

import (
	"context"
	"fmt"

	"github.com/BAPPI-SWE/yumzy-backend/internal/catalog"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

// Service exposes cart mutations with items resolved at the data boundary.
type Service interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	AddStoreItem(ctx context.Context, userID, itemID, variantName string) (*Cart, error)
	AddMenuItem(ctx context.Context, userID, restaurantID, itemID string) (*Cart, error)
	Increment(ctx context.Context, userID string, key LineKey) (*Cart, error)
	Decrement(ctx context.Context, userID string, key LineKey) (*Cart, error)
	ClearMerchant(ctx context.Context, userID, merchantID string) (*Cart, error)
	Clear(ctx context.Context, userID string) error
}

type service struct {
	store   Store
	catalog catalog.Service
	cfg     config.CartConfig
}

// NewService builds a cart service backed by the snapshot store and catalog.
func NewService(store Store, catalogSvc catalog.Service, cfg config.CartConfig) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if cfg.MaxTotalQuantity <= 0 {
		return nil, fmt.Errorf("cart quantity limit must be positive")
	}
	return &service{store: store, catalog: catalogSvc, cfg: cfg}, nil
}

func (s *service) Get(ctx context.Context, userID string) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	return cart, nil
}

// AddStoreItem resolves a store item (orderability and variant included) and
// adds it under the generic store merchant.
func (s *service) AddStoreItem(ctx context.Context, userID, itemID, variantName string) (*Cart, error) {
	resolved, err := s.catalog.ResolveStoreItem(ctx, itemID, variantName)
	if err != nil {
		return nil, err
	}
	return s.add(ctx, userID, resolved)
}

// AddMenuItem resolves a restaurant dish and adds it under the restaurant
// merchant.
func (s *service) AddMenuItem(ctx context.Context, userID, restaurantID, itemID string) (*Cart, error) {
	resolved, err := s.catalog.ResolveMenuItem(ctx, restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	return s.add(ctx, userID, resolved)
}

func (s *service) add(ctx context.Context, userID string, resolved *catalog.ResolvedItem) (*Cart, error) {
	return s.mutate(ctx, userID, func(cart *Cart) error {
		return cart.Add(Line{
			Key:          LineKey{ItemID: resolved.ItemID, Variant: resolved.VariantName},
			Name:         resolved.DisplayName,
			UnitPrice:    resolved.UnitPrice,
			MerchantID:   resolved.MerchantID,
			MerchantName: resolved.MerchantName,
			Category:     resolved.Category,
			ShopName:     resolved.ShopName,
		}, s.cfg.MaxTotalQuantity)
	})
}

func (s *service) Increment(ctx context.Context, userID string, key LineKey) (*Cart, error) {
	return s.mutate(ctx, userID, func(cart *Cart) error {
		return cart.Increment(key, s.cfg.MaxTotalQuantity)
	})
}

func (s *service) Decrement(ctx context.Context, userID string, key LineKey) (*Cart, error) {
	return s.mutate(ctx, userID, func(cart *Cart) error {
		cart.Decrement(key)
		return nil
	})
}

func (s *service) ClearMerchant(ctx context.Context, userID, merchantID string) (*Cart, error) {
	if merchantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "merchant id is required")
	}
	return s.mutate(ctx, userID, func(cart *Cart) error {
		cart.ClearMerchant(merchantID)
		return nil
	})
}

func (s *service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	if err := s.store.Delete(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "clear cart")
	}
	return nil
}

// mutate loads the snapshot, applies the mutation and persists the result.
// Mutation errors surface before any write, so a rejected operation leaves
// the stored cart untouched.
func (s *service) mutate(ctx context.Context, userID string, fn func(cart *Cart) error) (*Cart, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	cart, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cart")
	}
	if err := fn(cart); err != nil {
		return nil, err
	}
	if err := s.store.Save(ctx, userID, cart); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save cart")
	}
	return cart, nil
}
