// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/tomtom215/groovify/docs" // registers the generated swagger spec
	"github.com/tomtom215/groovify/internal/middleware"
)

// Router wires the handler into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
	perfMon       *middleware.PerformanceMonitor
}

// NewRouter creates a router. perfMon may be nil.
func NewRouter(handler *Handler, perfMon *middleware.PerformanceMonitor) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(ChiMiddlewareFromConfig(handler.config.Security)),
		perfMon:       perfMon,
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Applied to ALL routes in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS()) // CORS must be global to handle OPTIONS preflight

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
		httpSwagger.DeepLinking(true),
		httpSwagger.DocExpansion("list"),
		httpSwagger.DomID("swagger-ui"),
	))

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Get("/", router.handler.Health)
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		if router.perfMon != nil {
			r.Use(router.perfMon.Middleware)
		}
		r.Use(middleware.Compression)
		if timeout := router.handler.config.Server.Timeout; timeout > 0 {
			r.Use(chimiddleware.Timeout(timeout))
		}

		r.Route("/pages", func(r chi.Router) {
			r.Get("/home", router.handler.HomePage)
			r.Get("/finance", router.handler.FinancePage)
			r.Get("/customers", router.handler.CustomersPage)
			r.Get("/music", router.handler.MusicPage)
			r.Get("/employees", router.handler.EmployeesPage)
			r.Get("/alerts", router.handler.AlertsPage)
			r.Get("/sql", router.handler.ExplorerPage)
		})

		r.Route("/sql", func(r chi.Router) {
			r.Get("/tables", router.handler.ExplorerTables)
			r.Get("/stats", router.handler.ExplorerStats)
			r.Get("/schema", router.handler.ExplorerSchema)
			r.Get("/relationships", router.handler.ExplorerRelationships)
			r.Post("/query", router.handler.ExplorerQuery)
		})

		r.Route("/meta", func(r chi.Router) {
			r.Get("/date-bounds", router.handler.DateBounds)
			r.Get("/cache", router.handler.CacheStats)
			r.Get("/performance", router.handler.Performance)
		})

		r.Post("/cache/clear", router.handler.CacheClear)
	})

	return r
}
