// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2 and serves the createDocument tool either on stdio or
// over streamable HTTP (alongside the REST and health routes), shutting down
// gracefully on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/docseed/internal/adapters/http"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docseed/internal/adapters/http/middleware"
	adaptmcp "github.com/jsamuelsen11/docseed/internal/adapters/mcp"

	"github.com/jsamuelsen11/docseed/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/docseed/internal/adapters/markdown"
	"github.com/jsamuelsen11/docseed/internal/app"
	"github.com/jsamuelsen11/docseed/internal/platform/auth"
	"github.com/jsamuelsen11/docseed/internal/platform/config"
	"github.com/jsamuelsen11/docseed/internal/platform/health"
	"github.com/jsamuelsen11/docseed/internal/platform/httpclient"
	"github.com/jsamuelsen11/docseed/internal/platform/logging"
	"github.com/jsamuelsen11/docseed/internal/platform/telemetry"
	"github.com/jsamuelsen11/docseed/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

// Downstream client names, used as DI keys, breaker names and health check names.
const (
	driveClientName = "drive-api"
	docsClientName  = "docs-api"
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
		profile = "local"
	}

	// Bootstrap: config, logger, telemetry. Stdout belongs to the stdio
	// transport, so everything else logs to stderr.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer otelCancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	tokens, err := auth.NewTokenSource(context.Background(), cfg.Google.Auth)
	if err != nil {
		return fmt.Errorf("configuring google credentials: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, auth.Transport(tokens, nil))

	registerDependencies(injector, cfg, logger)

	tools, err := do.Invoke[*adaptmcp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving tool server: %w", err)
	}

	logger.Info("starting docseed",
		slog.String("profile", profile),
		slog.String("transport", cfg.MCP.Transport),
	)

	if cfg.MCP.Transport == config.TransportStdio {
		if err := tools.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("stdio tool server failed: %w", err)
		}
		logger.Info("shutdown complete")
		return nil
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, driveClientName))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, docsClientName))

	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
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

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
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
	// Outbound clients: one instrumented client per Google API, sharing the
	// OAuth2 transport.
	do.ProvideNamed(injector, driveClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		rt := do.MustInvoke[nethttp.RoundTripper](i)
		return httpclient.New(&cfg.Clients.Drive, driveClientName, metrics, logger,
			httpclient.WithTransport(rt)), nil
	})

	do.ProvideNamed(injector, docsClientName, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		rt := do.MustInvoke[nethttp.RoundTripper](i)
		return httpclient.New(&cfg.Clients.Docs, docsClientName, metrics, logger,
			httpclient.WithTransport(rt)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DriveClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, driveClientName)
		return acl.NewDriveClient(client, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocsClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, docsClientName)
		return acl.NewDocsClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.MarkdownTranslator, error) {
		return markdown.NewTranslator(logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DocumentService, error) {
		return app.NewDocumentService(
			do.MustInvoke[ports.DriveClient](i),
			do.MustInvoke[ports.DocsClient](i),
			do.MustInvoke[ports.MarkdownTranslator](i),
			do.MustInvoke[*telemetry.Metrics](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adaptmcp.Server, error) {
		svc := do.MustInvoke[ports.DocumentService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return adaptmcp.NewServer(cfg.MCP, svc, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(health.DefaultCheckTimeout), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.DocumentHandler, error) {
		svc := do.MustInvoke[ports.DocumentService](i)
		return handlers.NewDocumentHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		docH := do.MustInvoke[*handlers.DocumentHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		tools := do.MustInvoke[*adaptmcp.Server](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(docH, healthH,
			adapthttp.RouterConfig{
				RequestTimeout: cfg.Server.WriteTimeout,
				ToolPath:       cfg.MCP.Path,
				ToolHandler:    tools.Handler(),
			},
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger, adapthttp.WithStreaming()), nil
	})
}
