// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package database is the query library of Groovify: parameterised analytics queries over
// the Chinook music store schema, returning typed rows.
//
// # Overview
//
// Every query is a method on DB that takes a context, the date filter and any thresholds, and
// returns a slice of models rows ordered as the page expects. Queries are written in the SQL
// subset shared by DuckDB and PostgreSQL; the dialect only rewrites '?' placeholders.
//
// # Architecture
//
// Core:
//   - db.go: connection lifecycle, engine selection, schema creation and seeding
//   - dialect.go: placeholder rebinding and identifier quoting per engine
//   - breaker.go: circuit breaker around every query (sony/gobreaker)
//   - errors.go: unavailability classification and error wrapping
//   - query_helpers.go: generic query-and-scan with metrics
//   - scan.go: NULL tolerant numeric scanners
//
// Query library:
//   - common.go: invoice date bounds and database summary
//   - finance.go: KPIs, revenue trends, geography, amount distribution, seasonality, baskets
//   - customers.go: RFM segments, journeys, churn, locations, preferences, cohorts
//   - music.go: genre revenue, tracks, artists, albums, playlists, discovery, genre trends
//   - employees.go: performance, territories, hierarchy, productivity
//   - alerts.go: low performers, revenue anomalies, churn, inventory, fraud, system health
//   - explorer.go: table statistics, schema, relationships and read-only free-form SQL
//
// Data:
//   - schema.go: Chinook DDL
//   - seed.go: deterministic synthetic store anchored on a configurable date
//   - sqltext.go: statement splitting and literal masking for scripts and the explorer
//
// # Engines
//
// DuckDB runs embedded with external access disabled. PostgreSQL is reached through lib/pq
// and uses the public schema; DuckDB uses main.
//
// # Thread Safety
//
// DB is safe for concurrent use. Page rendering runs several queries at once against the
// shared connection pool.
package database
