package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BAPPI-SWE/yumzy-backend/api/middleware"
	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
)

type stubCartService struct {
	cart *cart.Cart
	err  error

	gotItemID  string
	gotVariant string
	gotKey     cart.LineKey
}

func (s *stubCartService) Get(_ context.Context, _ string) (*cart.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) AddStoreItem(_ context.Context, _, itemID, variantName string) (*cart.Cart, error) {
	s.gotItemID = itemID
	s.gotVariant = variantName
	return s.cart, s.err
}

func (s *stubCartService) AddMenuItem(_ context.Context, _, restaurantID, itemID string) (*cart.Cart, error) {
	s.gotItemID = itemID
	return s.cart, s.err
}

func (s *stubCartService) Increment(_ context.Context, _ string, key cart.LineKey) (*cart.Cart, error) {
	s.gotKey = key
	return s.cart, s.err
}

func (s *stubCartService) Decrement(_ context.Context, _ string, key cart.LineKey) (*cart.Cart, error) {
	s.gotKey = key
	return s.cart, s.err
}

func (s *stubCartService) ClearMerchant(_ context.Context, _, _ string) (*cart.Cart, error) {
	return s.cart, s.err
}

func (s *stubCartService) Clear(_ context.Context, _ string) error {
	return s.err
}

func sampleCart() *cart.Cart {
	return &cart.Cart{Lines: []cart.Line{{
		Key:          cart.LineKey{ItemID: "item-1", Variant: "1kg"},
		Name:         "Rice (1kg)",
		UnitPrice:    decimal.RequireFromString("85"),
		Quantity:     2,
		MerchantID:   "yumzy_store",
		MerchantName: "Yumzy Store",
	}}}
}

func authedRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	return req.WithContext(middleware.WithUserID(req.Context(), "user-1"))
}

func TestCartFetchReturnsSnapshot(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	rec := httptest.NewRecorder()
	CartFetch(svc, nil)(rec, authedRequest(http.MethodGet, "/api/v1/cart", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data cart.Cart `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data.Lines, 1)
	assert.Equal(t, "Rice (1kg)", envelope.Data.Lines[0].Name)
}

func TestCartFetchRequiresAuth(t *testing.T) {
	rec := httptest.NewRecorder()
	CartFetch(&stubCartService{}, nil)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartAddStoreItemPassesVariant(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/cart/store-items", `{"item_id":"item-1","variant":"1kg"}`)
	CartAddStoreItem(svc, nil)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "item-1", svc.gotItemID)
	assert.Equal(t, "1kg", svc.gotVariant)
}

func TestCartAddStoreItemRejectsMissingItem(t *testing.T) {
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/cart/store-items", `{"variant":"1kg"}`)
	CartAddStoreItem(&stubCartService{}, nil)(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartIncrementUsesLineKey(t *testing.T) {
	svc := &stubCartService{cart: sampleCart()}
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/cart/items/increment", `{"item_id":"item-1","variant":"1kg"}`)
	CartIncrement(svc, nil)(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, cart.LineKey{ItemID: "item-1", Variant: "1kg"}, svc.gotKey)
}

func TestCartMutationSurfacesDomainErrors(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeMerchantConflict, "cart already holds items from Campus Kitchen")}
	rec := httptest.NewRecorder()
	req := authedRequest(http.MethodPost, "/api/v1/cart/store-items", `{"item_id":"item-1"}`)
	CartAddStoreItem(svc, nil)(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "CART_MERCHANT_CONFLICT")
}

func TestCartClearMerchantRequiresParam(t *testing.T) {
	rec := httptest.NewRecorder()
	CartClearMerchant(&stubCartService{}, nil)(rec, authedRequest(http.MethodDelete, "/api/v1/cart/merchants/", ""))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
