package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unitedformulas/storefront-api/api/controllers"
	"github.com/unitedformulas/storefront-api/api/middleware"
	"github.com/unitedformulas/storefront-api/internal/dispatch"
	"github.com/unitedformulas/storefront-api/internal/draft"
	"github.com/unitedformulas/storefront-api/internal/requisition"
	"github.com/unitedformulas/storefront-api/pkg/config"
	"github.com/unitedformulas/storefront-api/pkg/logger"
	"github.com/unitedformulas/storefront-api/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	redisClient *redis.Client,
	draftService draft.Service,
	requisitionService requisition.Service,
	dispatchService dispatch.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.SiteURL),
	)

	dispatchPolicy := middleware.NewDispatchRateLimitPolicy(
		"dispatch",
		cfg.RateLimit.DispatchWindow,
		cfg.RateLimit.DispatchIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisClient))
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1/draft", func(r chi.Router) {
		r.Use(middleware.DraftProfile(logg, cfg.Draft.TTL, cfg.App.IsProd()))
		r.Get("/", controllers.DraftFetch(draftService, logg))
		r.Delete("/", controllers.DraftClear(draftService, logg))
		r.Post("/items", controllers.DraftAddItem(draftService, logg))
		r.Patch("/items/{sku}", controllers.DraftUpdateItem(draftService, logg))
		r.Delete("/items/{sku}", controllers.DraftRemoveItem(draftService, logg))
		r.Post("/options", controllers.DraftOptions(draftService, logg))
	})

	r.Route("/api/v1/requisitions", func(r chi.Router) {
		r.Use(middleware.DraftProfile(logg, cfg.Draft.TTL, cfg.App.IsProd()))
		r.Post("/", controllers.RequisitionSubmit(requisitionService, logg))
		r.Post("/receipt", controllers.RequisitionReceipt(logg))
	})

	r.Route("/api/v1/dispatch", func(r chi.Router) {
		r.Use(middleware.DispatchRateLimit(dispatchPolicy, redisClient, logg))
		r.Post("/purchase-order", controllers.DispatchPurchaseOrder(dispatchService, logg))
		r.Post("/inquiry", controllers.DispatchInquiry(dispatchService, logg))
		r.Post("/credit-application", controllers.DispatchCreditApplication(dispatchService, logg))
	})

	return r
}
