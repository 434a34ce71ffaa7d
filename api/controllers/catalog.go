package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/BAPPI-SWE/yumzy-backend/api/responses"
	"github.com/BAPPI-SWE/yumzy-backend/internal/catalog"
	pkgerrors "github.com/BAPPI-SWE/yumzy-backend/pkg/errors"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
)

// CatalogRestaurants lists every restaurant on the storefront.
func CatalogRestaurants(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurants, err := svc.ListRestaurants(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, restaurants)
	}
}

// CatalogRestaurantDetail returns one restaurant.
func CatalogRestaurantDetail(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID := chi.URLParam(r, "restaurantId")
		if restaurantID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required"))
			return
		}

		restaurant, err := svc.GetRestaurant(ctx, restaurantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, restaurant)
	}
}

// CatalogMenu lists a restaurant's menu items.
func CatalogMenu(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		restaurantID := chi.URLParam(r, "restaurantId")
		if restaurantID == "" {
			responses.WriteError(ctx, logg, w, pkgerrors.New(pkgerrors.CodeValidation, "restaurant id is required"))
			return
		}

		menu, err := svc.ListMenu(ctx, restaurantID)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, menu)
	}
}

// CatalogShops lists the shops backing the grocery storefront.
func CatalogShops(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		shops, err := svc.ListShops(ctx)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, shops)
	}
}

// CatalogStoreItems lists grocery items with orderability resolved, optionally
// filtered by sub-category.
func CatalogStoreItems(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		subCategory := strings.TrimSpace(r.URL.Query().Get("sub_category"))

		items, err := svc.ListStoreItems(ctx, subCategory)
		if err != nil {
			responses.WriteError(ctx, logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}
