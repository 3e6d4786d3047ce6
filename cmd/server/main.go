// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package main is the entry point for the Groovify server.
//
// Groovify serves analytics over the sales data of a digital music store held in the Chinook
// schema: revenue, customers, catalogue, sales staff and alerts, plus a read-only SQL explorer.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml, .env and environment variables (Koanf v2)
//  2. Database: embedded DuckDB, or Postgres through lib/pq, behind a circuit breaker
//  3. Result cache: in-memory TTL cache for query results
//  4. HTTP API: chi router with the page, explorer, health and metrics endpoints
//  5. Supervisor tree: HTTP server and metric samplers, restarted on failure
//
// # Configuration
//
// Common environment variables:
//   - DB_DRIVER: duckdb (default) or postgres
//   - DUCKDB_PATH: database file, ":memory:" for an ephemeral database
//   - SEED_MOCK_DATA: fill an empty database with a synthetic store
//   - HTTP_PORT: listen port (default 8501)
//   - LOG_LEVEL, LOG_FORMAT: logging
//
// # Signal Handling
//
// SIGINT and SIGTERM stop the supervisor tree: the HTTP server drains in-flight requests for
// up to 10 seconds, then the database is closed.
//
// # Example Usage
//
//	export SEED_MOCK_DATA=true
//	export DUCKDB_PATH=/data/groovify.duckdb
//	./groovify-server
//
// The same server is available as "groovify serve" in the command line client.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/groovify/internal/cli"
	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	cli.InitServerLogging(cfg, false)

	logging.Info().
		Str("driver", cfg.Database.Driver).
		Bool("seed_mock_data", cfg.Database.SeedMockData).
		Str("environment", cfg.Server.Environment).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.RunServer(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("Server failed")
		stop()
		os.Exit(1)
	}
}
