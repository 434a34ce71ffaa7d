package pricing

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	"github.com/BAPPI-SWE/yumzy-backend/internal/catalog"
	"github.com/BAPPI-SWE/yumzy-backend/internal/locations"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

const preOrderPrefix = "pre-order"

// Service computes price breakdowns for a merchant's cart lines.
type Service interface {
	Quote(ctx context.Context, lines []cart.Line, profile *models.UserProfile) (*Quote, error)
}

type service struct {
	locations      locations.Service
	catalog        catalog.Service
	genericStoreID string
	baseDelivery   decimal.Decimal
	baseService    decimal.Decimal
	logg           *logger.Logger
}

// NewService builds a pricing service. The configured default charges back
// every rate field that cannot be resolved from the location tables.
func NewService(locationsSvc locations.Service, catalogSvc catalog.Service, cfg config.PricingConfig, logg *logger.Logger) (Service, error) {
	if locationsSvc == nil {
		return nil, fmt.Errorf("locations service required")
	}
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	baseDelivery, err := decimal.NewFromString(cfg.DefaultDeliveryCharge)
	if err != nil {
		return nil, fmt.Errorf("invalid default delivery charge %q: %w", cfg.DefaultDeliveryCharge, err)
	}
	baseService, err := decimal.NewFromString(cfg.DefaultServiceCharge)
	if err != nil {
		return nil, fmt.Errorf("invalid default service charge %q: %w", cfg.DefaultServiceCharge, err)
	}
	if cfg.GenericStoreID == "" {
		return nil, fmt.Errorf("generic store id required")
	}
	return &service{
		locations:      locationsSvc,
		catalog:        catalogSvc,
		genericStoreID: cfg.GenericStoreID,
		baseDelivery:   baseDelivery,
		baseService:    baseService,
		logg:           logg,
	}, nil
}

// Quote prices the given lines. Lookup failures never fail the quote: the
// affected component falls back to its default and a warning is recorded, so
// the same inputs always produce the same breakdown.
func (s *service) Quote(ctx context.Context, lines []cart.Line, profile *models.UserProfile) (*Quote, error) {
	quote := &Quote{OrderType: enums.OrderTypeInstant}

	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.Subtotal())
	}
	quote.ItemsSubtotal = subtotal

	if len(lines) > 0 {
		category := lines[0].Category
		if strings.HasPrefix(strings.ToLower(category), preOrderPrefix) {
			quote.OrderType = enums.OrderTypePreOrder
			quote.PreOrderCategory = category
		}
	}

	if profile == nil || !profile.Complete() {
		quote.ProfileIncomplete = true
	}

	var (
		baseDelivery = s.baseDelivery
		baseService  = s.baseService
		surcharges   catalog.SurchargeTotals
		rateWarning  string
		extraWarning string
	)

	g, gctx := errgroup.WithContext(ctx)

	if !quote.ProfileIncomplete {
		g.Go(func() error {
			rates, warning := s.resolveBaseRates(gctx, profile, quote.OrderType)
			baseDelivery, baseService = rates.delivery, rates.service
			rateWarning = warning
			return nil
		})
	}

	// An incomplete profile short-circuits everything past the subtotal:
	// bare default charges, no surcharge lookup.
	if !quote.ProfileIncomplete && s.isGenericStoreOrder(lines) {
		g.Go(func() error {
			totals, err := s.catalog.Surcharges(gctx, itemIDs(lines))
			if err != nil {
				extraWarning = "item surcharges unavailable, excluded from the total"
				s.warn(gctx, "surcharge lookup failed", err)
				return nil
			}
			surcharges = totals
			return nil
		})
	}

	// Goroutines report through warnings, never errors.
	_ = g.Wait()

	if rateWarning != "" {
		quote.Warnings = append(quote.Warnings, rateWarning)
	}
	if extraWarning != "" {
		quote.Warnings = append(quote.Warnings, extraWarning)
	}

	quote.DeliveryCharge = baseDelivery.Add(surcharges.Delivery)
	quote.ServiceCharge = baseService.Add(surcharges.Service)
	quote.TotalPrice = quote.ItemsSubtotal.Add(quote.DeliveryCharge).Add(quote.ServiceCharge)
	return quote, nil
}

type baseRates struct {
	delivery decimal.Decimal
	service  decimal.Decimal
}

// resolveBaseRates selects the per-sub-location elements of the rate arrays,
// falling back to the defaults field by field when the record, the
// sub-location or the array element is missing or non-positive.
func (s *service) resolveBaseRates(ctx context.Context, profile *models.UserProfile, orderType enums.OrderType) (baseRates, string) {
	rates := baseRates{delivery: s.baseDelivery, service: s.baseService}

	record, err := s.locations.GetByName(ctx, profile.BaseLocation)
	if err != nil {
		// An unknown base location silently keeps the defaults; only a
		// failed lookup warrants a user-visible warning.
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return rates, ""
		}
		s.warn(ctx, "location rate lookup failed", err)
		return rates, "delivery rates unavailable, standard charges applied"
	}

	idx := indexOf(record.SubLocations, profile.SubLocation)
	if idx < 0 {
		return rates, ""
	}

	deliveryArr, serviceArr := record.InstantDeliveryRates, record.InstantServiceRates
	if orderType == enums.OrderTypePreOrder {
		deliveryArr, serviceArr = record.PreOrderDeliveryRates, record.PreOrderServiceRates
	}

	if rate, ok := deliveryArr.At(idx); ok && rate.IsPositive() {
		rates.delivery = rate
	}
	if rate, ok := serviceArr.At(idx); ok && rate.IsPositive() {
		rates.service = rate
	}
	return rates, ""
}

func (s *service) isGenericStoreOrder(lines []cart.Line) bool {
	return len(lines) > 0 && lines[0].MerchantID == s.genericStoreID
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	logCtx := s.logg.WithField(ctx, "error", err.Error())
	s.logg.Warn(logCtx, msg)
}

func itemIDs(lines []cart.Line) []string {
	ids := make([]string, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.Key.ItemID)
	}
	return ids
}

func indexOf(values []string, target string) int {
	for i, value := range values {
		if value == target {
			return i
		}
	}
	return -1
}
