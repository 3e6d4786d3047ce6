// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package api serves the dashboard over HTTP.
//
// Every page of the dashboard is one GET route under /api/v1/pages returning the rendered page:
// an ordered list of sections, each tagged ok, empty or error, with its rows, summary and chart
// specifications. A failing section never fails the request; the HTTP status reflects only
// request-level problems.
//
// Routes:
//
//	GET  /api/v1/health, /api/v1/health/live, /api/v1/health/ready
//	GET  /api/v1/pages/{home,finance,customers,music,employees,alerts,sql}
//	GET  /api/v1/sql/{tables,stats,schema,relationships}
//	POST /api/v1/sql/query
//	GET  /api/v1/meta/date-bounds, /api/v1/meta/cache, /api/v1/meta/performance
//	POST /api/v1/cache/clear
//	GET  /metrics
//
// Every JSON body uses the models.APIResponse envelope:
//
//	{"status": "success", "data": {...}, "metadata": {"timestamp": "...", "query_time_ms": 12}}
//	{"status": "error", "error": {"code": "VALIDATION_ERROR", "message": "..."}, "metadata": {...}}
//
// Error codes: VALIDATION_ERROR (400), READ_ONLY_VIOLATION (400), QUERY_ERROR (400),
// RATE_LIMITED (429), DATABASE_ERROR (500, or 503 while the database is unreachable) and
// INTERNAL_ERROR (500).
package api
