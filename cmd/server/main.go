// Hostaudit - Security Audit Event Logging
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/hostaudit

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

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tomtom215/hostaudit/internal/audit"
	"github.com/tomtom215/hostaudit/internal/config"
	"github.com/tomtom215/hostaudit/internal/hooks"
	"github.com/tomtom215/hostaudit/internal/logging"
	"github.com/tomtom215/hostaudit/internal/metrics"
	"github.com/tomtom215/hostaudit/internal/supervisor"
	"github.com/tomtom215/hostaudit/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())
	logging.SetLogger(logging.With().
		Str("component", "hostaudit").
		Str("instance", logging.NewInstanceID()).
		Logger())

	logging.Info().
		Str("log_level", cfg.Logging.Level).
		Bool("audit_enabled", cfg.Audit.Enabled).
		Int("cache_capacity", cfg.Audit.CacheCapacity).
		Msg("Starting Hostaudit")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dispatcher := initAudit(cfg)

	// === SUPERVISOR TREE ===

	treeConfig := supervisor.DefaultTreeConfig()
	treeConfig.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(
		slog.New(logging.NewSlogHandlerWithLogger(logging.WithComponent("suture"))),
		treeConfig,
	)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if dispatcher != nil && cfg.Audit.ReportInterval > 0 {
		tree.AddAuditService(services.NewCacheReporterService(
			dispatcher.Cache(),
			cfg.Audit.ReportInterval,
			logging.WithComponent("audit-cache"),
		))
		logging.Info().Dur("interval", cfg.Audit.ReportInterval).Msg("Audit cache reporter added to supervisor tree")
	}

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newRouter(cfg, dispatcher, hooks.Default, nil),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	// === START SUPERVISOR TREE ===

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}

// initAudit installs the process-wide audit hook and returns its dispatcher,
// or nil when audit logging is disabled.
func initAudit(cfg *config.Config) *audit.Dispatcher {
	if !cfg.Audit.Enabled {
		logging.Warn().Msg("Audit logging disabled")
		return nil
	}

	var sink slog.Handler = logging.NewAuditHandler()
	if cfg.Audit.SinkBreakerFailures > 0 {
		sink = audit.NewBreakerSink(sink, audit.BreakerConfig{
			Name:             "audit-sink",
			FailureThreshold: cfg.Audit.SinkBreakerFailures,
			Timeout:          cfg.Audit.SinkBreakerTimeout,
		})
	}

	d := audit.Init(sink, audit.WithCapacity(cfg.Audit.CacheCapacity))
	if cfg.Metrics.Enabled {
		prometheus.MustRegister(metrics.NewCacheCollector(d.Cache()))
	}

	// Outbound requests made through the default client raise http.request,
	// and the connections they open raise net.dial.
	if base, ok := http.DefaultTransport.(*http.Transport); ok {
		http.DefaultTransport = hooks.InstrumentedTransport(base)
	} else {
		http.DefaultTransport = hooks.Transport(http.DefaultTransport)
	}

	logging.Info().Int("hooks", hooks.Default.Len()).Msg("Audit hook registered")
	return d
}
