// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/groovify/internal/api"
	"github.com/tomtom215/groovify/internal/cache"
	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/metrics"
	"github.com/tomtom215/groovify/internal/middleware"
	"github.com/tomtom215/groovify/internal/supervisor"
	"github.com/tomtom215/groovify/internal/supervisor/services"
)

const (
	gaugeInterval   = 15 * time.Second
	shutdownTimeout = 10 * time.Second

	perfWindow        = 1000
	slowRequestCutoff = time.Second
)

func newServeCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			InitServerLogging(cfg, opts.verbose)

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return RunServer(ctx, cfg)
		},
	}
}

// InitServerLogging applies the logging section of the configuration.
func InitServerLogging(cfg *config.Config, verbose bool) {
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logging.Init(logging.Config{
		Level:     level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
}

// RunServer serves the dashboard API until ctx is canceled. The HTTP server and the metric
// samplers run under a supervisor tree that restarts them on failure.
func RunServer(ctx context.Context, cfg *config.Config) error {
	metrics.AppInfo.WithLabelValues(dashboard.Version, runtime.Version(), cfg.Database.Driver).Set(1)

	db, err := database.New(&cfg.Database)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().
		Str("engine", db.Engine()).
		Str("schema", db.Schema()).
		Msg("Database initialized")

	var resultCache *cache.Cache
	if cfg.Cache.Enabled {
		resultCache = cache.New(cfg.Cache.TTL)
		defer resultCache.Close()
	}

	perfMon := middleware.NewPerformanceMonitor(perfWindow, slowRequestCutoff)
	handler := api.NewHandler(dashboard.NewService(db, resultCache, cfg), cfg, perfMon)
	router := api.NewRouter(handler, perfMon)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// The timeout middleware answers first.
		WriteTimeout: cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddDataService(services.NewTickerService("db-pool-stats", gaugeInterval, func(context.Context) error {
		db.RecordPoolStats()
		return nil
	}))
	if resultCache != nil {
		tree.AddDataService(services.NewTickerService("cache-stats", gaugeInterval, func(context.Context) error {
			resultCache.RecordEntries()
			return nil
		}))
	}
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	logging.Info().
		Str("addr", server.Addr).
		Bool("cache", resultCache != nil).
		Str("environment", cfg.Server.Environment).
		Msg("Starting supervisor tree")

	serveErr := tree.Serve(ctx)
	if errors.Is(serveErr, context.Canceled) {
		serveErr = nil
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	if serveErr != nil {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
		return fmt.Errorf("supervisor tree: %w", serveErr)
	}
	logging.Info().Msg("Server stopped gracefully")
	return nil
}
