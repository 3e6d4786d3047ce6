// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/middleware"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response writing and query parsing
//   - handlers_health.go: liveness, readiness and health
//   - handlers_pages.go: one handler per dashboard page
//   - handlers_explorer.go: SQL explorer metadata and free-form queries
//   - handlers_meta.go: date bounds, cache and performance endpoints
type Handler struct {
	svc       *dashboard.Service
	config    *config.Config
	perfMon   *middleware.PerformanceMonitor
	explorer  *rate.Limiter
	startTime time.Time
}

// NewHandler creates the API handler. perfMon may be nil, in which case the performance
// endpoint reports an empty window.
func NewHandler(svc *dashboard.Service, cfg *config.Config, perfMon *middleware.PerformanceMonitor) *Handler {
	return &Handler{
		svc:       svc,
		config:    cfg,
		perfMon:   perfMon,
		explorer:  newExplorerLimiter(cfg.Explorer),
		startTime: time.Now(),
	}
}

// newExplorerLimiter allows QueriesPerMinute free-form queries with the configured burst. A
// non-positive rate disables throttling.
func newExplorerLimiter(cfg config.ExplorerConfig) *rate.Limiter {
	if cfg.QueriesPerMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	burst := max(1, cfg.Burst)
	return rate.NewLimiter(rate.Limit(float64(cfg.QueriesPerMinute)/60), burst)
}

// ClearCache drops every cached query result and returns how many entries were removed.
func (h *Handler) ClearCache() int {
	c := h.svc.Cache()
	if c == nil {
		return 0
	}
	n := c.Clear()
	logging.Info().Int("entries", n).Msg("Query cache cleared")
	return n
}
