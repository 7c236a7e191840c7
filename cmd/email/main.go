package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/joao-fontenele/orderflow-email-confirmation/internal/config"
	"github.com/joao-fontenele/orderflow-email-confirmation/internal/email"
	"github.com/joao-fontenele/orderflow-email-confirmation/internal/render"
	"github.com/joao-fontenele/orderflow-email-confirmation/internal/telemetry"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := telemetry.NewLogger(os.Stdout, cfg.LogLevel)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.TracingEnabled {
		shutdownTracer, err := telemetry.InitTracerProvider(ctx, cfg.ServiceName, cfg.ServiceVersion, cfg.OTLPEndpoint)
		if err != nil {
			logger.Error("failed to initialize tracer", "error", err)
			os.Exit(1)
		}
		defer func() { _ = shutdownTracer(context.Background()) }()
	}

	var metricsHandler http.Handler
	if cfg.MetricsEnabled {
		handler, shutdownMeter, err := telemetry.InitMeterProvider(cfg.ServiceName, cfg.ServiceVersion)
		if err != nil {
			logger.Error("failed to initialize meter", "error", err)
			os.Exit(1)
		}
		defer func() { _ = shutdownMeter(context.Background()) }()
		metricsHandler = handler
	}

	template, err := render.Load(render.WithDir(cfg.TemplatesDir), render.WithName(cfg.TemplateName))
	if err != nil {
		logger.Error("failed to load template", "error", err, "dir", cfg.TemplatesDir, "name", cfg.TemplateName)
		os.Exit(1)
	}

	metrics, err := email.NewMetrics(otel.Meter("email"))
	if err != nil {
		logger.Error("failed to create metrics", "error", err)
		os.Exit(1)
	}

	handler := email.NewHandler(template, metrics, logger,
		email.WithMaxBodyBytes(cfg.MaxBodyBytes),
		email.WithContentLogging(cfg.LogConfirmationContent),
	)

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: otelhttp.NewHandler(email.NewRouter(handler, metricsHandler), cfg.ServiceName,
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting email service", "port", cfg.Port, "template", template.Name())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
