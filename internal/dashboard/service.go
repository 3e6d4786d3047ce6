// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/tomtom215/groovify/internal/cache"
	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/metrics"
	"github.com/tomtom215/groovify/internal/models"
)

// Page names.
const (
	PageHome      = "home"
	PageFinance   = "finance"
	PageCustomers = "customers"
	PageMusic     = "music"
	PageEmployees = "employees"
	PageAlerts    = "alerts"
	PageExplorer  = "sql"
)

// PageNames lists the pages in navigation order.
var PageNames = []string{PageHome, PageFinance, PageCustomers, PageMusic, PageEmployees, PageAlerts, PageExplorer}

// Version is reported by the Home page. It is overridden at build time.
var Version = "dev"

// Service renders dashboard pages from the query library.
type Service struct {
	db    *database.DB
	cache *cache.Cache
	cfg   *config.Config
	now   func() time.Time
}

// NewService creates a page service. A nil cache disables result caching.
func NewService(db *database.DB, c *cache.Cache, cfg *config.Config) *Service {
	return &Service{
		db:    db,
		cache: c,
		cfg:   cfg,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Cache returns the result cache, nil when caching is disabled.
func (s *Service) Cache() *cache.Cache {
	return s.cache
}

// DB returns the underlying database.
func (s *Service) DB() *database.DB {
	return s.db
}

// Today is the default reference date.
func (s *Service) Today() time.Time {
	return models.TruncateDay(s.now())
}

// DateBounds returns the first and last invoice dates.
func (s *Service) DateBounds(ctx context.Context) (*models.DateBounds, error) {
	return cache.Fetch(s.cache, "date bounds", nil, func() (*models.DateBounds, error) {
		return s.db.GetDateBounds(ctx)
	})
}

// ResolveFilter completes a partial filter. Missing dates default to the invoice date bounds
// and a missing reference date to today. The result is validated.
func (s *Service) ResolveFilter(ctx context.Context, start, end, asOf time.Time) (models.Filter, error) {
	if start.IsZero() || end.IsZero() {
		bounds, err := s.DateBounds(ctx)
		if err != nil {
			return models.Filter{}, fmt.Errorf("date bounds: %w", err)
		}
		if bounds.MinDate == nil || bounds.MaxDate == nil {
			return models.Filter{}, fmt.Errorf("%w: no invoices to derive a date range from", models.ErrInvalidFilter)
		}
		if start.IsZero() {
			start = *bounds.MinDate
		}
		if end.IsZero() {
			end = *bounds.MaxDate
		}
	}
	if asOf.IsZero() {
		asOf = s.Today()
	}

	f := models.NewFilter(start, end, asOf)
	return f, f.Validate()
}

// ChurnParams returns the configured churn windows.
func (s *Service) ChurnParams() models.ChurnParams {
	return models.ChurnParams{
		ActiveMonths: s.cfg.Analytics.ChurnActiveMonths,
		RiskMonths:   s.cfg.Analytics.ChurnRiskMonths,
	}
}

// MusicParams returns the configured music page thresholds.
func (s *Service) MusicParams() models.MusicParams {
	a := s.cfg.Analytics
	return models.MusicParams{
		MinTrackSales:          a.MinTrackSales,
		TrackLimit:             a.TrackLimit,
		MinArtistAlbums:        a.MinArtistAlbums,
		ArtistLimit:            a.ArtistLimit,
		MinPlaylistAppearances: a.MinPlaylistAppearances,
		PlaylistLimit:          a.PlaylistDiscoveryLimit,
	}
}

// AlertThresholds returns the configured alert thresholds.
func (s *Service) AlertThresholds() models.AlertThresholds {
	a := s.cfg.Alerts
	return models.AlertThresholds{
		MinSalesThreshold:       a.MinSalesThreshold,
		AlbumSalesThreshold:     a.AlbumSalesThreshold,
		TrackLimit:              a.TrackLimit,
		AlbumLimit:              a.AlbumLimit,
		InventoryLimit:          a.InventoryLimit,
		RevenueAnalysisDays:     a.RevenueAnalysisDays,
		CriticalDropPct:         a.CriticalDropPct,
		WarningDropPct:          a.WarningDropPct,
		ChurnDaysThreshold:      a.ChurnDaysThreshold,
		ChurnCriticalDays:       a.ChurnCriticalDays,
		HighValueCustomerMin:    a.HighValueCustomerMin,
		MediumValueCustomerMin:  a.MediumValueCustomerMin,
		LowPerformanceOrders:    a.LowPerformanceOrders,
		MediumPerformanceOrders: a.MediumPerformanceOrders,
		FraudWindowDays:         a.FraudWindowDays,
		FraudLimit:              a.FraudLimit,
		FraudAmount:             a.FraudAmount,
		SuspiciousItems:         a.SuspiciousItems,
		BulkPurchase:            a.BulkPurchase,
		HighValueSingleItem:     a.HighValueSingleItem,
	}
}

// task is one section to render.
type task struct {
	name  string
	title string
	run   func(ctx context.Context) Result
}

// render runs the tasks on a bounded pool and returns their sections in task order.
func (s *Service) render(ctx context.Context, page string, f *models.Filter, tasks []task) *Page {
	sections := make([]Section, len(tasks))

	p := pool.New().WithMaxGoroutines(max(1, s.cfg.Analytics.SectionConcurrency))
	for i, t := range tasks {
		p.Go(func() {
			sections[i] = s.runTask(ctx, page, t)
		})
	}
	p.Wait()

	return &Page{
		Name:        page,
		Filter:      f,
		Sections:    sections,
		GeneratedAt: s.now(),
	}
}

func (s *Service) runTask(ctx context.Context, page string, t task) Section {
	var res Result
	if recovered := panics.Try(func() { res = t.run(ctx) }); recovered != nil {
		res = Failure(fmt.Errorf("%s: %w", t.name, recovered.AsError()))
	}

	metrics.RecordSectionOutcome(page, string(res.Status))
	if res.Status == StatusError {
		logging.Ctx(ctx).Warn().
			Str("page", page).
			Str("section", t.name).
			Str("error", res.Error).
			Msg("Section failed")
	}
	return Section{Name: t.name, Title: t.title, Result: res}
}

// load reads a table through the result cache.
func load[T any](ctx context.Context, s *Service, queryID string, params []any, fn func(context.Context) (T, error)) (T, error) {
	return cache.Fetch(s.cache, queryID, params, func() (T, error) {
		return fn(ctx)
	})
}

func filterParams(f models.Filter, extra ...any) []any {
	return append([]any{f.Start(), f.End(), f.AsOfParam()}, extra...)
}
