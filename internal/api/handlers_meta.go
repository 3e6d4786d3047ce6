// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/groovify/internal/cache"
	"github.com/tomtom215/groovify/internal/middleware"
)

// DateBounds returns the first and last invoice dates used as filter defaults.
//
// Method: GET
// Path: /api/v1/meta/date-bounds
//
// @Summary Invoice date bounds
// @Tags Meta
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.DateBounds}
// @Router /meta/date-bounds [get]
func (h *Handler) DateBounds(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	bounds, err := h.svc.DateBounds(r.Context())
	if err != nil {
		respondDatabaseError(w, r, err)
		return
	}
	respondSuccess(w, r, bounds, start)
}

// CacheStatsResponse reports the result cache.
type CacheStatsResponse struct {
	Enabled bool         `json:"enabled"`
	TTL     string       `json:"ttl,omitempty"`
	Entries int          `json:"entries"`
	Stats   *cache.Stats `json:"stats,omitempty"`
}

// CacheStats reports result cache hits, misses and size.
//
// Method: GET
// Path: /api/v1/meta/cache
//
// @Summary Result cache statistics
// @Tags Meta
// @Produce json
// @Success 200 {object} models.APIResponse{data=api.CacheStatsResponse}
// @Router /meta/cache [get]
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	resp := CacheStatsResponse{}
	if c := h.svc.Cache(); c != nil {
		resp.Enabled = true
		resp.TTL = h.config.Cache.TTL.String()
		resp.Entries = c.Len()
		stats := c.GetStats()
		resp.Stats = &stats
	}
	respondSuccess(w, r, resp, start)
}

// CacheClear drops every cached query result.
//
// Method: POST
// Path: /api/v1/cache/clear
//
// @Summary Clear the result cache
// @Tags Meta
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /cache/clear [post]
func (h *Handler) CacheClear(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, map[string]interface{}{"cleared": h.ClearCache()}, start)
}

// Performance reports per endpoint latency percentiles over the recent request window.
//
// Method: GET
// Path: /api/v1/meta/performance
//
// @Summary Endpoint latency percentiles
// @Tags Meta
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]middleware.EndpointStats}
// @Router /meta/performance [get]
func (h *Handler) Performance(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := []middleware.EndpointStats{}
	if h.perfMon != nil {
		stats = h.perfMon.GetStats()
	}
	respondSuccess(w, r, stats, start)
}
