// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Package middleware provides the HTTP middleware shared by the dashboard API.
//
// Every middleware has the chi signature func(http.Handler) http.Handler:
//
//   - RequestID: X-Request-ID propagation plus request and correlation IDs in the logging context
//   - PrometheusMetrics: request counts, durations and in-flight gauge labelled by route pattern
//   - Compression: pooled gzip for clients that accept it
//   - PerformanceMonitor.Middleware: sliding window of request latencies with per-route
//     percentiles, served by the API at /api/v1/meta/performance
//
// Route labels come from the chi route pattern ("/api/v1/pages/{page}") rather than the raw path
// so metric cardinality stays bounded.
//
// Usage:
//
//	r := chi.NewRouter()
//	r.Use(middleware.RequestID)
//	r.Use(middleware.PrometheusMetrics)
//	r.Use(perf.Middleware)
//	r.Use(middleware.Compression)
package middleware
