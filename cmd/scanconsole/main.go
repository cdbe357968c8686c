// Package main is the entry point for scanconsole. It wires all dependencies
// using samber/do v2, starts the HTTP server and the background refresher, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	backend "github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/scanconsole/internal/adapters/http"
	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/scanconsole/internal/adapters/http/middleware"

	rediscache "github.com/jsamuelsen11/scanconsole/internal/adapters/cache/redis"
	"github.com/jsamuelsen11/scanconsole/internal/adapters/clients/gmp"
	"github.com/jsamuelsen11/scanconsole/internal/app"
	"github.com/jsamuelsen11/scanconsole/internal/platform/config"
	"github.com/jsamuelsen11/scanconsole/internal/platform/health"
	"github.com/jsamuelsen11/scanconsole/internal/platform/httpclient"
	"github.com/jsamuelsen11/scanconsole/internal/platform/logging"
	"github.com/jsamuelsen11/scanconsole/internal/platform/telemetry"
	"github.com/jsamuelsen11/scanconsole/internal/ports"
	"github.com/jsamuelsen11/scanconsole/internal/store"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr,
		slog.String("service", cfg.Telemetry.ServiceName),
		slog.String("profile", profile),
	)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))
	if cfg.Cache.Enabled {
		registry.Register(do.MustInvoke[*rediscache.Cache](injector))
	}

	// Start the refresher, if enabled. It stops when refreshCtx is canceled.
	refreshCtx, stopRefresh := context.WithCancel(ctx)
	defer stopRefresh()

	var refreshWG sync.WaitGroup
	if cfg.Refresh.Enabled {
		refresher := do.MustInvoke[*app.Refresher](injector)
		refreshWG.Go(func() {
			if err := refresher.Run(refreshCtx); err != nil {
				logger.Error("refresher failed", slog.Any("error", err))
			}
		})
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests and background loads.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Let the refresher finish before the backends go away.
	stopRefresh()
	refreshWG.Wait()

	if cfg.Cache.Enabled {
		if err := do.MustInvoke[*backend.Client](injector).Close(); err != nil {
			logger.Error("cache client close error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, "gmp", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*gmp.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return gmp.NewClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*backend.Client, error) {
		return rediscache.NewClient(cfg.Cache), nil
	})

	do.Provide(injector, func(i do.Injector) (*rediscache.Cache, error) {
		return rediscache.New(
			do.MustInvoke[*gmp.Client](i),
			do.MustInvoke[*backend.Client](i),
			rediscache.WithTTL(cfg.Cache.TTL),
			rediscache.WithPrefix(cfg.Cache.KeyPrefix),
			rediscache.WithMetrics(do.MustInvoke[*telemetry.Metrics](i)),
			rediscache.WithLogger(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.EntityFetcher, error) {
		if cfg.Cache.Enabled {
			return do.MustInvoke[*rediscache.Cache](i), nil
		}
		return do.MustInvoke[*gmp.Client](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (*store.Store[app.State], error) {
		return app.NewStore(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.LoaderService, error) {
		return app.NewLoaderService(
			do.MustInvoke[*store.Store[app.State]](i),
			do.MustInvoke[ports.EntityFetcher](i),
			do.MustInvoke[*gmp.Client](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.Refresher, error) {
		svc := do.MustInvoke[ports.LoaderService](i)
		return app.NewRefresher(svc, cfg.Refresh, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*handlers.Background, error) {
		return &handlers.Background{}, nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EntityHandler, error) {
		svc := do.MustInvoke[ports.LoaderService](i)
		return handlers.NewEntityHandler(svc, do.MustInvoke[*handlers.Background](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DashboardHandler, error) {
		svc := do.MustInvoke[ports.LoaderService](i)
		return handlers.NewDashboardHandler(svc, do.MustInvoke[*handlers.Background](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		entityH := do.MustInvoke[*handlers.EntityHandler](i)
		dashboardH := do.MustInvoke[*handlers.DashboardHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(entityH, dashboardH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		loads := do.MustInvoke[*handlers.Background](i)
		return adapthttp.NewServer(cfg.Server, handler, loads, logger), nil
	})
}
