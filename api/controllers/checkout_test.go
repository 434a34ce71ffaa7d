package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BAPPI-SWE/yumzy-backend/internal/pricing"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db/models"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/enums"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

type stubCheckoutService struct {
	quote *pricing.Quote
	order *models.Order
	err   error

	gotMerchantID string
}

func (s *stubCheckoutService) Quote(_ context.Context, _, merchantID string) (*pricing.Quote, error) {
	s.gotMerchantID = merchantID
	return s.quote, s.err
}

func (s *stubCheckoutService) Confirm(_ context.Context, _, merchantID string) (*models.Order, error) {
	s.gotMerchantID = merchantID
	return s.order, s.err
}

func TestCheckoutQuoteReturnsPricing(t *testing.T) {
	svc := &stubCheckoutService{quote: &pricing.Quote{
		ItemsSubtotal:  decimal.RequireFromString("240"),
		DeliveryCharge: decimal.RequireFromString("15"),
		ServiceCharge:  decimal.RequireFromString("3"),
		TotalPrice:     decimal.RequireFromString("258"),
		OrderType:      enums.OrderTypePreOrder,
	}}

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/checkout/quote", `{"merchant_id":"rest-1"}`)
	CheckoutQuote(svc, nil)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "rest-1", svc.gotMerchantID)

	var envelope struct {
		Data pricing.Quote `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Data.TotalPrice.Equal(decimal.RequireFromString("258")))
}

func TestCheckoutQuoteRejectsMissingMerchant(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/checkout/quote", `{}`)
	CheckoutQuote(&stubCheckoutService{}, nil)(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutConfirmCreated(t *testing.T) {
	svc := &stubCheckoutService{order: &models.Order{
		ID:         uuid.New(),
		UserID:     "user-1",
		MerchantID: "rest-1",
		TotalPrice: decimal.RequireFromString("258"),
		Status:     enums.OrderStatusPending,
		OrderType:  enums.OrderTypeInstant,
	}}

	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/checkout/confirm", `{"merchant_id":"rest-1"}`)
	CheckoutConfirm(svc, nil)(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), svc.order.ID.String())
}

func TestCheckoutConfirmRequiresAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", nil)
	CheckoutConfirm(&stubCheckoutService{}, nil)(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutConfirmSurfacesProfileIncomplete(t *testing.T) {
	svc := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodeProfileIncomplete, "delivery location missing from profile")}
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/checkout/confirm", `{"merchant_id":"rest-1"}`)
	CheckoutConfirm(svc, nil)(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "PROFILE_INCOMPLETE")
}
