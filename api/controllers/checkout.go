package controllers

import (
	"net/http"

	"github.com/BAPPI-SWE/yumzy-backend/api/middleware"
	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/api/validators"
	"github.com/BAPPI-SWE/yumzy-backend/internal/checkout"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

type checkoutPayload struct {
	MerchantID string `json:"merchant_id" validate:"required"`
}

// CheckoutQuote prices the caller's cart lines for one merchant without
// placing an order.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload checkoutPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		quote, err := svc.Quote(ctx, userID, payload.MerchantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutConfirm places the order for one merchant's cart lines.
func CheckoutConfirm(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		userID := middleware.UserIDFromContext(ctx)
		if userID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
			return
		}

		var payload checkoutPayload
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}

		order, err := svc.Confirm(ctx, userID, payload.MerchantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}
