package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/rentroll/internal/apartment"
	aptStore "github.com/MrJamesThe3rd/rentroll/internal/apartment/store"
	"github.com/MrJamesThe3rd/rentroll/internal/config"
	"github.com/MrJamesThe3rd/rentroll/internal/database"
	"github.com/MrJamesThe3rd/rentroll/internal/expense"
	expenseStore "github.com/MrJamesThe3rd/rentroll/internal/expense/store"
	rentrollHttp "github.com/MrJamesThe3rd/rentroll/internal/http"
	aptHandler "github.com/MrJamesThe3rd/rentroll/internal/http/apartment"
	expenseHandler "github.com/MrJamesThe3rd/rentroll/internal/http/expense"
	paymentHandler "github.com/MrJamesThe3rd/rentroll/internal/http/payment"
	reportHandler "github.com/MrJamesThe3rd/rentroll/internal/http/report"
	tenantHandler "github.com/MrJamesThe3rd/rentroll/internal/http/tenant"
	"github.com/MrJamesThe3rd/rentroll/internal/metrics"
	"github.com/MrJamesThe3rd/rentroll/internal/payment"
	paymentStore "github.com/MrJamesThe3rd/rentroll/internal/payment/store"
	"github.com/MrJamesThe3rd/rentroll/internal/report"
	"github.com/MrJamesThe3rd/rentroll/internal/tenant"
	tenantStore "github.com/MrJamesThe3rd/rentroll/internal/tenant/store"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(cfg.Logger(os.Stdout))

	if cfg.DB.Migrate {
		if err := database.Migrate(cfg.ConnectionString()); err != nil {
			slog.Error("failed to migrate database", "error", err)
			os.Exit(1)
		}
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New("rentroll")
		m.RegisterDB(db, cfg.DB.Name)
	}

	var (
		apartmentService = apartment.NewService(aptStore.New(db))
		tenantService    = tenant.NewService(tenantStore.New(db))
		paymentService   = payment.NewService(paymentStore.New(db))
		expenseService   = expense.NewService(expenseStore.New(db))
		reportService    = report.NewService(apartmentService, tenantService, paymentService, expenseService)
	)

	var (
		apartmentH = aptHandler.NewHandler(apartmentService)
		tenantH    = tenantHandler.NewHandler(tenantService)
		paymentH   = paymentHandler.NewHandler(paymentService)
		expenseH   = expenseHandler.NewHandler(expenseService)
		reportH    = reportHandler.NewHandler(reportService, m)
	)

	router := rentrollHttp.New(
		rentrollHttp.Config{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			Timeout:        cfg.Server.Timeout,
			Metrics:        m,
			Health: func(ctx context.Context) error {
				return database.Ping(ctx, db)
			},
		},
		apartmentH, tenantH, paymentH, expenseH, reportH,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout + cfg.Server.Timeout/2,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "name", cfg.App.Name, "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
		}
	}
}
