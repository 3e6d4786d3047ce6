// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"

	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

// AlertsRequest parameterises the Alerts page. Only Filter.AsOf is used by the time-window
// alerts; a nil Thresholds uses the configured ones.
type AlertsRequest struct {
	Filter     models.Filter
	Thresholds *models.AlertThresholds
}

// Alerts renders every alert category and a summary of their counts. The summary counts
// only the categories that loaded.
func (s *Service) Alerts(ctx context.Context, req AlertsRequest) *Page {
	f := req.Filter
	th := s.AlertThresholds()
	if req.Thresholds != nil {
		th = *req.Thresholds
	}

	var set shaping.AlertSet
	page := s.render(ctx, PageAlerts, &f, []task{
		{name: "low_tracks", title: "Low Performance Tracks", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "low performance tracks", []any{th}, func(ctx context.Context) ([]models.LowPerformanceTrack, error) {
				return s.db.GetLowPerformanceTracks(ctx, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Tracks = rows
			return Rows(rows, charts.LowTracks(rows))
		}},
		{name: "low_albums", title: "Low Performance Albums", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "low performance albums", []any{th}, func(ctx context.Context) ([]models.LowPerformanceAlbum, error) {
				return s.db.GetLowPerformanceAlbums(ctx, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Albums = rows
			return Rows(rows, charts.LowAlbums(rows))
		}},
		{name: "revenue_anomalies", title: "Revenue Anomalies", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "revenue anomalies", []any{f.AsOfParam(), th}, func(ctx context.Context) ([]models.RevenueAnomaly, error) {
				return s.db.GetRevenueAnomalies(ctx, f, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Anomalies = rows
			return Rows(rows, charts.RevenueAnomalies(rows))
		}},
		{name: "churn", title: "Customer Churn", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "churn alerts", []any{f.AsOfParam(), th}, func(ctx context.Context) ([]models.ChurnAlert, error) {
				return s.db.GetChurnAlerts(ctx, f, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Churn = rows
			return Rows(rows, charts.ChurnRisk(rows))
		}},
		{name: "inventory", title: "Inventory", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "inventory alerts", []any{th}, func(ctx context.Context) ([]models.InventoryAlert, error) {
				return s.db.GetInventoryAlerts(ctx, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Inventory = rows
			return Rows(rows, charts.InventoryRatings(rows))
		}},
		{name: "performance", title: "Employee Performance", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "performance alerts", []any{th}, func(ctx context.Context) ([]models.PerformanceAlert, error) {
				return s.db.GetPerformanceAlerts(ctx, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Performance = rows
			return Rows(rows, charts.EmployeeAlerts(rows))
		}},
		{name: "fraud", title: "Fraud Detection", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "fraud alerts", []any{f.AsOfParam(), th}, func(ctx context.Context) ([]models.FraudAlert, error) {
				return s.db.GetFraudAlerts(ctx, f, th)
			})
			if err != nil {
				return Failure(err)
			}
			set.Fraud = rows
			return Rows(rows, charts.FraudPatterns(rows))
		}},
		{name: "system_health", title: "System Health", run: func(ctx context.Context) Result {
			rows := s.db.GetSystemHealth(ctx, f)
			return Rows(rows, charts.SystemHealth(rows))
		}},
	})

	summary := shaping.SummarizeAlerts(set)
	overview := Section{
		Name:   "summary",
		Title:  "Alert Summary",
		Result: Single(summary, true, charts.AlertOverview(summary)),
	}
	page.Sections = append([]Section{overview}, page.Sections...)
	return page
}
