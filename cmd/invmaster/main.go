package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/invmaster/invmaster/internal/app"
	"github.com/invmaster/invmaster/internal/catalog"
	"github.com/invmaster/invmaster/internal/history"
	"github.com/invmaster/invmaster/internal/ledger"
	"github.com/invmaster/invmaster/internal/observability"
	"github.com/invmaster/invmaster/internal/pos"
	"github.com/invmaster/invmaster/internal/reports"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)
	metrics := observability.NewMetrics()
	store := ledger.NewStore()

	catalogService := catalog.NewService(store, metrics)
	catalogHandler := catalog.NewHandler(logger, catalogService)

	posService := pos.NewService(store, pos.ShopIdentity{
		Name:    cfg.ShopName,
		Address: cfg.ShopAddress,
		Phone:   cfg.ShopPhone,
	}, metrics)
	posHandler := pos.NewHandler(logger, posService)

	historyService := history.NewService(store)
	historyHandler := history.NewHandler(logger, historyService)

	reportsService := reports.NewService(store)
	reportsHandler := reports.NewHandler(logger, reportsService)

	if cfg.SeedDemoData {
		if err := catalogService.SeedDemoData(ctx); err != nil {
			logger.Error("seed demo data", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("demo catalog seeded")
	}

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		CatalogHandler: catalogHandler,
		POSHandler:     posHandler,
		HistoryHandler: historyHandler,
		ReportsHandler: reportsHandler,
		Metrics:        metrics,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
