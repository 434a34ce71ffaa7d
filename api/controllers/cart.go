package controllers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BAPPI-SWE/yumzy-backend/api/middleware"
	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/api/validators"
	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

type addStoreItemPayload struct {
	ItemID  string `json:"item_id" validate:"required"`
	Variant string `json:"variant,omitempty"`
}

type addMenuItemPayload struct {
	RestaurantID string `json:"restaurant_id" validate:"required"`
	ItemID       string `json:"item_id" validate:"required"`
}

type lineKeyPayload struct {
	ItemID  string `json:"item_id" validate:"required"`
	Variant string `json:"variant,omitempty"`
}

// CartFetch returns the caller's full cart snapshot.
func CartFetch(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		userCart, err := svc.Get(ctx, userID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, userCart)
	}
}

// CartAddStoreItem adds one unit of a grocery item, optionally a variant.
func CartAddStoreItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload addStoreItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userCart, err := svc.AddStoreItem(ctx, userID, payload.ItemID, payload.Variant)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, userCart)
	}
}

// CartAddMenuItem adds one unit of a restaurant dish.
func CartAddMenuItem(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload addMenuItemPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userCart, err := svc.AddMenuItem(ctx, userID, payload.RestaurantID, payload.ItemID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, userCart)
	}
}

// CartIncrement bumps the quantity of an existing line by one.
func CartIncrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartLineMutation(logg, func(ctx context.Context, userID string, key cart.LineKey) (*cart.Cart, error) {
		return svc.Increment(ctx, userID, key)
	})
}

// CartDecrement lowers the quantity of an existing line by one, removing the
// line when it reaches zero.
func CartDecrement(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return cartLineMutation(logg, func(ctx context.Context, userID string, key cart.LineKey) (*cart.Cart, error) {
		return svc.Decrement(ctx, userID, key)
	})
}

// CartClearMerchant drops every line belonging to one merchant.
func CartClearMerchant(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		merchantID := chi.URLParam(r, "merchantId")
		if merchantID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "merchant id is required"))
			return
		}

		userCart, err := svc.ClearMerchant(ctx, userID, merchantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, userCart)
	}
}

// CartClear empties the whole cart.
func CartClear(svc cart.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		if err := svc.Clear(ctx, userID); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

func cartLineMutation(
	logg *logger.Logger,
	mutate func(ctx context.Context, userID string, key cart.LineKey) (*cart.Cart, error),
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload lineKeyPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		userCart, err := mutate(ctx, userID, cart.LineKey{ItemID: payload.ItemID, Variant: payload.Variant})
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, userCart)
	}
}
