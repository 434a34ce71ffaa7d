package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	"github.com/BAPPI-SWE/yumzy-backend/internal/catalog"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

type stubLocations struct {
	records map[string]*models.LocationRate
	err     error
}

func (s *stubLocations) List(ctx context.Context) ([]models.LocationRate, error) {
	panic("not implemented")
}

func (s *stubLocations) GetByName(ctx context.Context, name string) (*models.LocationRate, error) {
	if s.err != nil {
		return nil, s.err
	}
	if record, ok := s.records[name]; ok {
		return record, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "location not found")
}

type stubSurcharges struct {
	totals catalog.SurchargeTotals
	err    error
	called bool
}

func (s *stubSurcharges) ListRestaurants(ctx context.Context) ([]models.Restaurant, error) {
	panic("not implemented")
}

func (s *stubSurcharges) GetRestaurant(ctx context.Context, id string) (*models.Restaurant, error) {
	panic("not implemented")
}

func (s *stubSurcharges) ListMenu(ctx context.Context, restaurantID string) ([]models.MenuItem, error) {
	panic("not implemented")
}

func (s *stubSurcharges) ListShops(ctx context.Context) ([]models.Shop, error) {
	panic("not implemented")
}

func (s *stubSurcharges) ListStoreItems(ctx context.Context, subCategory string) ([]catalog.StoreItemView, error) {
	panic("not implemented")
}

func (s *stubSurcharges) ResolveMenuItem(ctx context.Context, restaurantID, itemID string) (*catalog.ResolvedItem, error) {
	panic("not implemented")
}

func (s *stubSurcharges) ResolveStoreItem(ctx context.Context, itemID, variantName string) (*catalog.ResolvedItem, error) {
	panic("not implemented")
}

func (s *stubSurcharges) Surcharges(ctx context.Context, itemIDs []string) (catalog.SurchargeTotals, error) {
	s.called = true
	if s.err != nil {
		return catalog.SurchargeTotals{}, s.err
	}
	return s.totals, nil
}

func campusRates() *stubLocations {
	return &stubLocations{
		records: map[string]*models.LocationRate{
			"Campus": {
				ID:           uuid.New(),
				Name:         "Campus",
				SubLocations: types.StringArray{"Block-A", "Block-B", "Block-C"},
				PreOrderDeliveryRates: types.DecimalArray{
					decimal.RequireFromString("15"), decimal.RequireFromString("18"),
				},
				PreOrderServiceRates: types.DecimalArray{
					decimal.RequireFromString("3"), decimal.RequireFromString("4"),
				},
				InstantDeliveryRates: types.DecimalArray{
					decimal.RequireFromString("25"), decimal.Zero,
				},
				InstantServiceRates: types.DecimalArray{
					decimal.RequireFromString("6"), decimal.RequireFromString("7"),
				},
			},
		},
	}
}

func pricingConfig() config.PricingConfig {
	return config.PricingConfig{
		DefaultDeliveryCharge: "20.0",
		DefaultServiceCharge:  "5.0",
		GenericStoreID:        "yumzy_store",
	}
}

func newPricingService(t *testing.T, locs *stubLocations, cat *stubSurcharges) Service {
	t.Helper()
	svc, err := NewService(locs, cat, pricingConfig(), nil)
	require.NoError(t, err)
	return svc
}

func menuLines(category string) []cart.Line {
	return []cart.Line{{
		Key:        cart.LineKey{ItemID: "dish-1"},
		Name:       "Chicken Biryani",
		UnitPrice:  decimal.RequireFromString("120"),
		Quantity:   2,
		MerchantID: "rest-1",
		Category:   category,
	}}
}

func storeLines() []cart.Line {
	return []cart.Line{
		{
			Key:        cart.LineKey{ItemID: "item-1", Variant: "1kg"},
			UnitPrice:  decimal.RequireFromString("85"),
			Quantity:   1,
			MerchantID: "yumzy_store",
		},
		{
			Key:        cart.LineKey{ItemID: "item-1", Variant: "5kg"},
			UnitPrice:  decimal.RequireFromString("400"),
			Quantity:   1,
			MerchantID: "yumzy_store",
		},
	}
}

func completeProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:       "user-1",
		BaseLocation: "Campus",
		SubLocation:  "Block-A",
	}
}

func TestQuotePreOrderUsesPreOrderRates(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), menuLines("Pre-order Breakfast"), completeProfile())
	require.NoError(t, err)

	assert.Equal(t, enums.OrderTypePreOrder, quote.OrderType)
	assert.Equal(t, "Pre-order Breakfast", quote.PreOrderCategory)
	assert.True(t, quote.ItemsSubtotal.Equal(decimal.RequireFromString("240")))
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("15")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("3")))
	assert.True(t, quote.TotalPrice.Equal(decimal.RequireFromString("258")))
	assert.Empty(t, quote.Warnings)
}

func TestQuotePreOrderPrefixIsCaseInsensitive(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), menuLines("PRE-ORDER Lunch"), completeProfile())
	require.NoError(t, err)
	assert.Equal(t, enums.OrderTypePreOrder, quote.OrderType)
}

func TestQuoteInstantUsesInstantRates(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), menuLines("Current Menu"), completeProfile())
	require.NoError(t, err)
	assert.Equal(t, enums.OrderTypeInstant, quote.OrderType)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("25")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("6")))
}

func TestQuoteNonPositiveRateFallsBackPerField(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})
	profile := completeProfile()
	profile.SubLocation = "Block-B"

	quote, err := svc.Quote(context.Background(), menuLines("Current Menu"), profile)
	require.NoError(t, err)
	// Instant delivery rate for Block-B is zero -> default; service rate holds.
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("7")))
}

func TestQuoteMissingRateElementFallsBack(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})
	profile := completeProfile()
	profile.SubLocation = "Block-C"

	quote, err := svc.Quote(context.Background(), menuLines("Pre-order Dinner"), profile)
	require.NoError(t, err)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("5.0")))
	assert.Empty(t, quote.Warnings)
}

func TestQuoteUnknownLocationUsesDefaultsSilently(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})
	profile := completeProfile()
	profile.BaseLocation = "Nowhere"

	quote, err := svc.Quote(context.Background(), menuLines("Current Menu"), profile)
	require.NoError(t, err)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("5.0")))
	assert.Empty(t, quote.Warnings)
}

func TestQuoteLookupFailureDegradesWithWarning(t *testing.T) {
	svc := newPricingService(t, &stubLocations{err: errors.New("db down")}, &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), menuLines("Current Menu"), completeProfile())
	require.NoError(t, err, "lookup failure never fails the quote")
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	require.Len(t, quote.Warnings, 1)
}

func TestQuoteIncompleteProfileFlagsAndDefaults(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), menuLines("Current Menu"), &models.UserProfile{UserID: "user-1"})
	require.NoError(t, err)
	assert.True(t, quote.ProfileIncomplete)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("5.0")))
}

func TestQuoteIncompleteProfileSkipsSurcharges(t *testing.T) {
	cat := &stubSurcharges{totals: catalog.SurchargeTotals{
		Delivery: decimal.RequireFromString("10"),
		Service:  decimal.RequireFromString("2"),
	}}
	svc := newPricingService(t, campusRates(), cat)

	quote, err := svc.Quote(context.Background(), storeLines(), &models.UserProfile{UserID: "user-1"})
	require.NoError(t, err)
	assert.True(t, quote.ProfileIncomplete)
	assert.False(t, cat.called)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("20.0")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("5.0")))
}

func TestQuoteGenericStoreAddsSurcharges(t *testing.T) {
	cat := &stubSurcharges{totals: catalog.SurchargeTotals{
		Delivery: decimal.RequireFromString("10"),
		Service:  decimal.RequireFromString("2"),
	}}
	svc := newPricingService(t, campusRates(), cat)

	quote, err := svc.Quote(context.Background(), storeLines(), completeProfile())
	require.NoError(t, err)
	assert.True(t, cat.called)
	// Instant Block-A 25/6 plus surcharges 10/2.
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("35")))
	assert.True(t, quote.ServiceCharge.Equal(decimal.RequireFromString("8")))
	assert.True(t, quote.TotalPrice.Equal(decimal.RequireFromString("528")))
}

func TestQuoteRestaurantOrderSkipsSurcharges(t *testing.T) {
	cat := &stubSurcharges{}
	svc := newPricingService(t, campusRates(), cat)

	_, err := svc.Quote(context.Background(), menuLines("Current Menu"), completeProfile())
	require.NoError(t, err)
	assert.False(t, cat.called)
}

func TestQuoteSurchargeFailureDegradesWithWarning(t *testing.T) {
	cat := &stubSurcharges{err: errors.New("db down")}
	svc := newPricingService(t, campusRates(), cat)

	quote, err := svc.Quote(context.Background(), storeLines(), completeProfile())
	require.NoError(t, err)
	assert.True(t, quote.DeliveryCharge.Equal(decimal.RequireFromString("25")), "base rate still applied")
	require.Len(t, quote.Warnings, 1)
}

func TestQuoteIsDeterministic(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	first, err := svc.Quote(context.Background(), menuLines("Pre-order Breakfast"), completeProfile())
	require.NoError(t, err)
	second, err := svc.Quote(context.Background(), menuLines("Pre-order Breakfast"), completeProfile())
	require.NoError(t, err)
	assert.True(t, first.TotalPrice.Equal(second.TotalPrice))
	assert.Equal(t, first.OrderType, second.OrderType)
}

func TestQuoteEmptyLines(t *testing.T) {
	svc := newPricingService(t, campusRates(), &stubSurcharges{})

	quote, err := svc.Quote(context.Background(), nil, completeProfile())
	require.NoError(t, err)
	assert.True(t, quote.ItemsSubtotal.IsZero())
	assert.Equal(t, enums.OrderTypeInstant, quote.OrderType)
}
