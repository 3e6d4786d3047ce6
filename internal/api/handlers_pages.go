// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/logging"
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

// resolveFilter turns the date parameters into a filter, writing the error response itself
// when it fails.
func (h *Handler) resolveFilter(w http.ResponseWriter, r *http.Request, fq FilterQuery) (models.Filter, bool) {
	f, err := h.svc.ResolveFilter(r.Context(), parseDate(fq.StartDate), parseDate(fq.EndDate), parseDate(fq.AsOf))
	if err != nil {
		respondFilterError(w, r, err)
		return models.Filter{}, false
	}
	return f, true
}

// respondPage sends a rendered page. Failed sections are reported inside the page; the
// request itself succeeds.
func respondPage(w http.ResponseWriter, r *http.Request, page *dashboard.Page, start time.Time) {
	if failed := page.Failed(); failed > 0 {
		logPageFailures(r.Context(), page, failed)
	}
	respondSuccess(w, r, page, start)
}

func logPageFailures(ctx context.Context, page *dashboard.Page, failed int) {
	ev := logging.Ctx(ctx).Warn().Str("page", page.Name).Int("failed_sections", failed)
	for _, s := range page.Sections {
		if s.Status == dashboard.StatusError {
			ev = ev.Str(s.Name, sanitizeLogValue(s.Error))
		}
	}
	ev.Msg("Page rendered with failed sections")
}

// HomePage renders the landing page.
//
// Method: GET
// Path: /api/v1/pages/home
//
// @Summary Home page
// @Tags Pages
// @Produce json
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Router /pages/home [get]
func (h *Handler) HomePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondPage(w, r, h.svc.Home(r.Context()), start)
}

// FinancePage renders revenue analytics.
//
// Method: GET
// Path: /api/v1/pages/finance
//
// Query Parameters:
//   - start_date, end_date, as_of: YYYY-MM-DD, default to the invoice date bounds
//   - granularity: month (default), quarter or year
//   - top: countries shown in the country chart (1-100)
//
// @Summary Finance page
// @Tags Pages
// @Produce json
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param as_of query string false "Reference date, YYYY-MM-DD"
// @Param granularity query string false "month, quarter or year"
// @Param top query int false "Countries in the country chart"
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /pages/finance [get]
func (h *Handler) FinancePage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseFinanceQuery(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	f, ok := h.resolveFilter(w, r, req.FilterQuery)
	if !ok {
		return
	}

	page := h.svc.Finance(r.Context(), dashboard.FinanceRequest{
		Filter:       f,
		Granularity:  models.Granularity(req.Granularity),
		TopCountries: req.Top,
	})
	respondPage(w, r, page, start)
}

// CustomersPage renders customer analytics.
//
// Method: GET
// Path: /api/v1/pages/customers
//
// Query Parameters:
//   - start_date, end_date, as_of: YYYY-MM-DD
//   - active_months, risk_months: churn windows; risk_months must exceed active_months
//   - top: number of top clients (1-100)
//   - metric: spending (default), listening, diversity or engagement
//
// @Summary Customers page
// @Tags Pages
// @Produce json
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param as_of query string false "Reference date, YYYY-MM-DD"
// @Param active_months query int false "Active churn window in months"
// @Param risk_months query int false "At-risk churn window in months"
// @Param top query int false "Top clients"
// @Param metric query string false "spending, listening, diversity or engagement"
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /pages/customers [get]
func (h *Handler) CustomersPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseCustomersQuery(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}

	churn := models.ChurnParams{ActiveMonths: req.ActiveMonths, RiskMonths: req.RiskMonths}
	if churn.ActiveMonths != 0 || churn.RiskMonths != 0 {
		defaults := h.svc.ChurnParams()
		if churn.ActiveMonths == 0 {
			churn.ActiveMonths = defaults.ActiveMonths
		}
		if churn.RiskMonths == 0 {
			churn.RiskMonths = defaults.RiskMonths
		}
		if err := churn.Validate(); err != nil {
			respondValidation(w, r, &models.APIError{
				Code:    models.ErrCodeValidation,
				Message: err.Error(),
				Details: map[string]interface{}{"active_months": churn.ActiveMonths, "risk_months": churn.RiskMonths},
			})
			return
		}
	}

	f, ok := h.resolveFilter(w, r, req.FilterQuery)
	if !ok {
		return
	}

	page := h.svc.Customers(r.Context(), dashboard.CustomersRequest{
		Filter:       f,
		Churn:        churn,
		TopClients:   req.Top,
		ClientMetric: shaping.ClientMetric(req.Metric),
	})
	respondPage(w, r, page, start)
}

// MusicPage renders catalogue analytics.
//
// Method: GET
// Path: /api/v1/pages/music
//
// Query Parameters:
//   - start_date, end_date, as_of: YYYY-MM-DD
//   - min_sales, min_albums, min_playlists: thresholds
//   - track_limit, artist_limit, playlist_limit: row limits
//   - genres: comma separated genre names restricting the genre views
//
// @Summary Music page
// @Tags Pages
// @Produce json
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param as_of query string false "Reference date, YYYY-MM-DD"
// @Param min_sales query int false "Minimum track sales"
// @Param min_albums query int false "Minimum albums per artist"
// @Param min_playlists query int false "Minimum playlist appearances"
// @Param track_limit query int false "Tracks listed"
// @Param artist_limit query int false "Artists listed"
// @Param playlist_limit query int false "Discovery rows listed"
// @Param genres query string false "Comma separated genre names"
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /pages/music [get]
func (h *Handler) MusicPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseMusicQuery(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	f, ok := h.resolveFilter(w, r, req.FilterQuery)
	if !ok {
		return
	}

	page := h.svc.Music(r.Context(), dashboard.MusicRequest{
		Filter: f,
		Params: models.MusicParams{
			MinTrackSales:          req.MinSales,
			TrackLimit:             req.TrackLimit,
			MinArtistAlbums:        req.MinAlbums,
			ArtistLimit:            req.ArtistLimit,
			MinPlaylistAppearances: req.MinPlaylists,
			PlaylistLimit:          req.PlaylistLimit,
			Genres:                 parseCommaSeparated(req.Genres),
		},
	})
	respondPage(w, r, page, start)
}

// EmployeesPage renders sales team analytics.
//
// Method: GET
// Path: /api/v1/pages/employees
//
// @Summary Employees page
// @Tags Pages
// @Produce json
// @Param start_date query string false "First day, YYYY-MM-DD"
// @Param end_date query string false "Last day, YYYY-MM-DD"
// @Param as_of query string false "Reference date, YYYY-MM-DD"
// @Param metric query string false "revenue, volume, customers or order_value"
// @Param top query int false "Top customers per employee"
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /pages/employees [get]
func (h *Handler) EmployeesPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseEmployeesQuery(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	f, ok := h.resolveFilter(w, r, req.FilterQuery)
	if !ok {
		return
	}

	page := h.svc.Employees(r.Context(), dashboard.EmployeesRequest{
		Filter:         f,
		SalesMetric:    shaping.EmployeeMetric(req.Metric),
		TopPerEmployee: req.Top,
	})
	respondPage(w, r, page, start)
}

// AlertsPage renders the alert centre. Only as_of positions the time windows; the other
// parameters override single thresholds.
//
// Method: GET
// Path: /api/v1/pages/alerts
//
// @Summary Alerts page
// @Tags Pages
// @Produce json
// @Param as_of query string false "Reference date, YYYY-MM-DD"
// @Param days query int false "Revenue analysis window in days"
// @Param min_sales query int false "Low track sales threshold"
// @Param album_sales query int false "Low album sales threshold"
// @Param churn_days query int false "Inactivity threshold in days"
// @Param fraud_days query int false "Fraud window in days"
// @Param fraud_amount query number false "Fraud amount threshold"
// @Param critical_drop query number false "Critical revenue drop percent"
// @Param warning_drop query number false "Warning revenue drop percent"
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Failure 400 {object} models.APIResponse "Invalid parameters"
// @Router /pages/alerts [get]
func (h *Handler) AlertsPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	req, apiErr := parseAlertsQuery(r)
	if apiErr != nil {
		respondValidation(w, r, apiErr)
		return
	}
	f, ok := h.resolveFilter(w, r, FilterQuery{AsOf: req.AsOf})
	if !ok {
		return
	}

	thresholds := req.apply(h.svc.AlertThresholds())
	if thresholds.WarningDropPct >= thresholds.CriticalDropPct {
		respondValidation(w, r, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: "critical_drop must be greater than warning_drop",
			Details: map[string]interface{}{
				"critical_drop": thresholds.CriticalDropPct,
				"warning_drop":  thresholds.WarningDropPct,
			},
		})
		return
	}

	page := h.svc.Alerts(r.Context(), dashboard.AlertsRequest{Filter: f, Thresholds: &thresholds})
	respondPage(w, r, page, start)
}

// ExplorerPage renders the schema browser.
//
// Method: GET
// Path: /api/v1/pages/sql
//
// @Summary SQL explorer page
// @Tags Pages
// @Produce json
// @Success 200 {object} models.APIResponse{data=dashboard.Page}
// @Router /pages/sql [get]
func (h *Handler) ExplorerPage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	respondPage(w, r, h.svc.Explorer(r.Context()), start)
}
