package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/MrJamesThe3rd/rentroll/internal/http/apartment"
	"github.com/MrJamesThe3rd/rentroll/internal/http/expense"
	"github.com/MrJamesThe3rd/rentroll/internal/http/payment"
	"github.com/MrJamesThe3rd/rentroll/internal/http/report"
	"github.com/MrJamesThe3rd/rentroll/internal/http/respond"
	"github.com/MrJamesThe3rd/rentroll/internal/http/tenant"
	"github.com/MrJamesThe3rd/rentroll/internal/metrics"
)

type Config struct {
	AllowedOrigins []string
	Timeout        time.Duration
	// Metrics is optional; when nil no /metrics endpoint is mounted.
	Metrics *metrics.Metrics
	// Health backs /healthz. A nil func always reports healthy.
	Health func(ctx context.Context) error
}

type healthResponse struct {
	Status string `json:"status"`
}

func New(
	cfg Config,
	apartmentsV1 *apartment.Handler,
	tenantsV1 *tenant.Handler,
	paymentsV1 *payment.Handler,
	expensesV1 *expense.Handler,
	reportsV1 *report.Handler,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	if cfg.Metrics != nil {
		router.Use(cfg.Metrics.Middleware)
	}

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if cfg.Health != nil {
			if err := cfg.Health(r.Context()); err != nil {
				respond.Error(w, r, err)
				return
			}
		}

		respond.JSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})

	if cfg.Metrics != nil {
		router.Handle("/metrics", cfg.Metrics.Handler())
	}

	router.Route("/api", func(r chi.Router) {
		if cfg.Timeout > 0 {
			r.Use(middleware.Timeout(cfg.Timeout))
		}

		r.Route("/apartments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			apartmentsV1.Routes(r)
		})

		r.Route("/tenants", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			tenantsV1.Routes(r)
		})

		r.Route("/rent-payments", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			paymentsV1.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expensesV1.Routes(r)
		})

		r.Group(reportsV1.Routes)
	})

	return router
}
