package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/medireon/site/pkg/api"
	"github.com/medireon/site/pkg/clients/intake"
	"github.com/medireon/site/pkg/config"
	"github.com/medireon/site/pkg/countdown"
	"github.com/medireon/site/pkg/flagstore"
	"github.com/medireon/site/pkg/logger"
	"github.com/medireon/site/pkg/metrics"
	"github.com/medireon/site/pkg/services"
)

const serviceName = "medireon-site"

func main() {
	logg := logger.New(logger.Options{ServiceName: serviceName, Level: logger.ParseLevel("info")})

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: serviceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := flagstore.New(ctx, cfg.FlagStore, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap flag store", err)
		os.Exit(1)
	}
	defer closeStore()

	if cfg.Intake.Endpoint == "" {
		logg.Warn(ctx, "intake endpoint not configured; every submission will fail")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	leadMetrics := metrics.NewLeadMetrics(registry)

	// Initialize API clients
	intakeClient := intake.NewClient(cfg.Intake.Endpoint, cfg.Intake.Timeout, logg)

	// Initialize services
	submissionService := services.NewLeadSubmissionService(
		intakeClient,
		services.NewInFlightGuard(cfg.Intake.InFlightTTL),
		leadMetrics,
		logg,
	)
	subscriptionService := services.NewSubscriptionService(store, logg)

	if cfg.App.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	handlers := api.NewHandlers(cfg, submissionService, subscriptionService, leadMetrics, countdown.SystemClock, logg)

	server := &http.Server{
		Addr:              cfg.App.Addr(),
		Handler:           api.NewRouter(handlers, cfg, logg, registry),
		ReadHeaderTimeout: 10 * time.Second,
	}
	server.RegisterOnShutdown(handlers.Shutdown)

	runCtx := logg.WithFields(ctx, map[string]any{
		"env":         cfg.App.Env,
		"addr":        server.Addr,
		"flag_driver": cfg.FlagStore.Driver,
		"launch_at":   cfg.Launch.At.Format(time.RFC3339),
	})
	logg.Info(runCtx, "starting site server")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(runCtx, "site server stopped unexpectedly", err)
			closeStore()
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(runCtx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Intake.Timeout+5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(runCtx, "graceful shutdown failed", err)
		}
	}
}
