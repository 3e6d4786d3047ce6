// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/models"
)

// HealthStatus describes the server and its database.
type HealthStatus struct {
	Status      string  `json:"status"`
	Version     string  `json:"version"`
	Engine      string  `json:"engine"`
	DatabaseUp  bool    `json:"database_connected"`
	Breaker     string  `json:"circuit_breaker"`
	Uptime      float64 `json:"uptime_seconds"`
	CacheLength int     `json:"cache_entries"`
}

// Health reports overall status. The server is degraded when the database does not answer.
//
// Method: GET
// Path: /api/v1/health
//
// @Summary Get system health status
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=api.HealthStatus}
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	db := h.svc.DB()

	status := HealthStatus{
		Status:     "healthy",
		Version:    dashboard.Version,
		Engine:     db.Engine(),
		DatabaseUp: db.Ping(r.Context()) == nil,
		Breaker:    db.BreakerState(),
		Uptime:     time.Since(h.startTime).Seconds(),
	}
	if c := h.svc.Cache(); c != nil {
		status.CacheLength = c.Len()
	}
	if !status.DatabaseUp {
		status.Status = "degraded"
	}

	respondSuccess(w, r, status, start)
}

// HealthLive is the liveness probe: the process answers.
//
// Method: GET
// Path: /api/v1/health/live
//
// @Summary Liveness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondSuccess(w, r, map[string]interface{}{
		"alive":          true,
		"uptime_seconds": time.Since(h.startTime).Seconds(),
	}, start)
}

// HealthReady is the readiness probe: 503 until the database answers.
//
// Method: GET
// Path: /api/v1/health/ready
//
// @Summary Readiness probe
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse
// @Failure 503 {object} models.APIResponse "Database not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if err := h.svc.DB().Ping(r.Context()); err != nil {
		respondError(w, r, http.StatusServiceUnavailable, models.ErrCodeDatabase, "Database is not ready", err)
		return
	}
	respondSuccess(w, r, map[string]interface{}{"ready": true}, start)
}
