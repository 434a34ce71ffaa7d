package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BAPPI-SWE/yumzy-backend/api/controllers"
	"github.com/BAPPI-SWE/yumzy-backend/api/middleware"
	"github.com/BAPPI-SWE/yumzy-backend/internal/cart"
	"github.com/BAPPI-SWE/yumzy-backend/internal/catalog"
	checkoutsvc "github.com/BAPPI-SWE/yumzy-backend/internal/checkout"
	"github.com/BAPPI-SWE/yumzy-backend/internal/locations"
	"github.com/BAPPI-SWE/yumzy-backend/internal/orders"
	"github.com/BAPPI-SWE/yumzy-backend/internal/profiles"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/config"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/db"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/logger"
	"github.com/BAPPI-SWE/yumzy-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	locationsService locations.Service,
	profilesService profiles.Service,
	cartService cart.Service,
	checkoutService checkoutsvc.Service,
	ordersService orders.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(redisClient, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/restaurants", controllers.CatalogRestaurants(catalogService, logg))
			r.Get("/restaurants/{restaurantId}", controllers.CatalogRestaurantDetail(catalogService, logg))
			r.Get("/restaurants/{restaurantId}/menu", controllers.CatalogMenu(catalogService, logg))
			r.Get("/shops", controllers.CatalogShops(catalogService, logg))
			r.Get("/store-items", controllers.CatalogStoreItems(catalogService, logg))
		})

		r.Get("/locations", controllers.LocationsList(locationsService, logg))

		r.Route("/profile", func(r chi.Router) {
			r.Get("/", controllers.ProfileGet(profilesService, logg))
			r.Put("/", controllers.ProfileUpsert(profilesService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(cartService, logg))
			r.Delete("/", controllers.CartClear(cartService, logg))
			r.Post("/store-items", controllers.CartAddStoreItem(cartService, logg))
			r.Post("/menu-items", controllers.CartAddMenuItem(cartService, logg))
			r.Post("/items/increment", controllers.CartIncrement(cartService, logg))
			r.Post("/items/decrement", controllers.CartDecrement(cartService, logg))
			r.Delete("/merchants/{merchantId}", controllers.CartClearMerchant(cartService, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/quote", controllers.CheckoutQuote(checkoutService, logg))
			r.Post("/confirm", controllers.CheckoutConfirm(checkoutService, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.OrdersList(ordersService, logg))
			r.Get("/{orderId}", controllers.OrdersDetail(ordersService, logg))
		})
	})

	return r
}
