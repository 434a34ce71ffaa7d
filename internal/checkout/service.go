package checkout

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	"github.com/BAPPI-SWE/yumzy-backend/internal/orders"
	"github.com/BAPPI-SWE/yumzy-backend/internal/pricing"
	"github.com/BAPPI-SWE/yumzy-backend/internal/profiles"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/metrics"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/outbox"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/outbox/payloads"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/types"
)

// Service drives the confirm-order screen: pricing a merchant's cart lines
// and turning them into a placed order.
type Service interface {
	Quote(ctx context.Context, userID, merchantID string) (*pricing.Quote, error)
	Confirm(ctx context.Context, userID, merchantID string) (*models.Order, error)
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type submitGuard interface {
	SetNX(ctx context.Context, key string, value any, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
	SubmitGuardKey(userID, merchantID string) string
}

type service struct {
	cart     cart.Service
	pricing  pricing.Service
	profiles profiles.Service
	orders   orders.Repository
	outbox   *outbox.Service
	tx       txRunner
	guard    submitGuard
	cfg      config.CheckoutConfig
	metrics  *metrics.CheckoutMetrics
	logg     *logger.Logger
}

// NewService builds the checkout service. Metrics may be nil.
func NewService(
	cartSvc cart.Service,
	pricingSvc pricing.Service,
	profilesSvc profiles.Service,
	ordersRepo orders.Repository,
	outboxSvc *outbox.Service,
	tx txRunner,
	guard submitGuard,
	cfg config.CheckoutConfig,
	checkoutMetrics *metrics.CheckoutMetrics,
	logg *logger.Logger,
) (Service, error) {
	if cartSvc == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if pricingSvc == nil {
		return nil, fmt.Errorf("pricing service required")
	}
	if profilesSvc == nil {
		return nil, fmt.Errorf("profiles service required")
	}
	if ordersRepo == nil {
		return nil, fmt.Errorf("orders repository required")
	}
	if outboxSvc == nil {
		return nil, fmt.Errorf("outbox service required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if guard == nil {
		return nil, fmt.Errorf("submit guard required")
	}
	return &service{
		cart:     cartSvc,
		pricing:  pricingSvc,
		profiles: profilesSvc,
		orders:   ordersRepo,
		outbox:   outboxSvc,
		tx:       tx,
		guard:    guard,
		cfg:      cfg,
		metrics:  checkoutMetrics,
		logg:     logg,
	}, nil
}

// Quote prices the merchant's cart lines against the user's profile. A
// missing profile still produces a quote with defaults and the incomplete
// flag set.
func (s *service) Quote(ctx context.Context, userID, merchantID string) (*pricing.Quote, error) {
	if userID == "" || merchantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and merchant id are required")
	}

	userCart, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := userCart.LinesForMerchant(merchantID)

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	started := time.Now()
	quote, err := s.pricing.Quote(ctx, lines, profile)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveQuoteDuration(string(quote.OrderType), time.Since(started))
	return quote, nil
}

// Confirm places the order: guard against double submission, re-quote,
// persist the order snapshot plus its outbox event in one transaction, then
// clear the merchant's cart lines. Persistence failure leaves the cart
// intact so the user can retry.
func (s *service) Confirm(ctx context.Context, userID, merchantID string) (*models.Order, error) {
	if userID == "" || merchantID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id and merchant id are required")
	}

	guardKey := s.guard.SubmitGuardKey(userID, merchantID)
	acquired, err := s.guard.SetNX(ctx, guardKey, time.Now().Unix(), s.cfg.SubmitGuardTTL)
	if err != nil {
		s.metrics.IncFailure("confirm")
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "acquire submit guard")
	}
	if !acquired {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "order submission already in progress")
	}
	defer func() {
		if delErr := s.guard.Del(ctx, guardKey); delErr != nil && s.logg != nil {
			s.logg.Warn(s.logg.WithField(ctx, "error", delErr.Error()), "releasing submit guard failed")
		}
	}()

	order, err := s.confirmLocked(ctx, userID, merchantID)
	if err != nil {
		s.metrics.IncFailure("confirm")
		return nil, err
	}
	s.metrics.IncOrderPlaced(string(order.OrderType))
	return order, nil
}

func (s *service) confirmLocked(ctx context.Context, userID, merchantID string) (*models.Order, error) {
	userCart, err := s.cart.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	lines := userCart.LinesForMerchant(merchantID)
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart has no items for this merchant")
	}

	profile, err := s.loadProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.Complete() {
		return nil, pkgerrors.New(pkgerrors.CodeProfileIncomplete, "delivery location missing from profile")
	}

	quote, err := s.pricing.Quote(ctx, lines, profile)
	if err != nil {
		return nil, err
	}

	order := buildOrder(userID, merchantID, lines, profile, quote)

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		created, createErr := s.orders.WithTx(tx).Create(ctx, order)
		if createErr != nil {
			return createErr
		}
		return s.outbox.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.EventOrderCreated,
			AggregateType: enums.AggregateOrder,
			AggregateID:   created.ID,
			Actor:         &outbox.ActorRef{UserID: userID, Name: profile.Name},
			Data: payloads.OrderCreatedEvent{
				OrderID:          created.ID,
				UserID:           userID,
				MerchantID:       created.MerchantID,
				MerchantName:     created.MerchantName,
				OrderType:        created.OrderType,
				PreOrderCategory: quote.PreOrderCategory,
				TotalPrice:       created.TotalPrice,
				ItemCount:        len(created.Items),
				PlacedAt:         created.CreatedAt,
			},
			Version: 1,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist order")
	}

	// The order is committed; a failed cart clear must not undo it.
	if _, clearErr := s.cart.ClearMerchant(ctx, userID, merchantID); clearErr != nil && s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_id": order.ID.String(),
			"error":    clearErr.Error(),
		})
		s.logg.Warn(logCtx, "clearing cart after order placement failed")
	}

	return order, nil
}

// loadProfile returns nil (not an error) when no profile exists yet.
func (s *service) loadProfile(ctx context.Context, userID string) (*models.UserProfile, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		if typed := pkgerrors.As(err); typed != nil && typed.Code() == pkgerrors.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}
	return profile, nil
}

func buildOrder(userID, merchantID string, lines []cart.Line, profile *models.UserProfile, quote *pricing.Quote) *models.Order {
	items := make(types.OrderItems, 0, len(lines))
	for _, line := range lines {
		items = append(items, types.OrderItem{
			ItemName:  line.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			ShopName:  line.ShopName,
		})
	}

	var preOrderCategory *string
	if quote.PreOrderCategory != "" {
		category := quote.PreOrderCategory
		preOrderCategory = &category
	}

	return &models.Order{
		UserID:           userID,
		UserName:         profile.Name,
		UserPhone:        profile.Phone,
		BaseLocation:     profile.BaseLocation,
		SubLocation:      profile.SubLocation,
		Building:         profile.Building,
		Floor:            profile.Floor,
		Room:             profile.Room,
		MerchantID:       merchantID,
		MerchantName:     lines[0].MerchantName,
		Items:            items,
		ItemsSubtotal:    quote.ItemsSubtotal,
		DeliveryCharge:   quote.DeliveryCharge,
		ServiceCharge:    quote.ServiceCharge,
		TotalPrice:       quote.TotalPrice,
		Status:           enums.OrderStatusPending,
		OrderType:        quote.OrderType,
		PreOrderCategory: preOrderCategory,
	}
}
