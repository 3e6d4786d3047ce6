// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package cli implements the groovify command line: the HTTP server and terminal renderings
// of the dashboard pages and the SQL explorer.
//
// Every command reads the same configuration as the server (defaults, config.yaml, .env and
// environment variables), so a seeded in-memory database can be inspected with:
//
//	SEED_MOCK_DATA=true DUCKDB_PATH=:memory: groovify page finance --granularity quarter
//	groovify query "SELECT name FROM genre ORDER BY name"
//	groovify tables --format json
package cli
