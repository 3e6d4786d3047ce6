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

// FinanceRequest parameterises the Finance page.
type FinanceRequest struct {
	Filter      models.Filter
	Granularity models.Granularity
	// TopCountries bounds the country bar chart; zero uses the configured default.
	TopCountries int
}

func (s *Service) financeKPIs(ctx context.Context, f models.Filter) (*models.FinanceKPIs, error) {
	return load(ctx, s, "finance kpis", filterParams(f), func(ctx context.Context) (*models.FinanceKPIs, error) {
		return s.db.GetFinanceKPIs(ctx, f)
	})
}

// Finance renders revenue KPIs, trends, geography, invoice amounts, seasonality, weekdays and
// basket evolution for the filter range.
func (s *Service) Finance(ctx context.Context, req FinanceRequest) *Page {
	f, g := req.Filter, req.Granularity
	if g == "" {
		g = models.GranularityMonth
	}
	topCountries := req.TopCountries
	if topCountries <= 0 {
		topCountries = s.cfg.Analytics.TopCountriesLimit
	}

	return s.render(ctx, PageFinance, &f, []task{
		{name: "kpis", title: "Financial Overview", run: func(ctx context.Context) Result {
			kpis, err := s.financeKPIs(ctx, f)
			if err != nil {
				return Failure(err)
			}
			return Single(kpis, kpis.TotalInvoices > 0)
		}},
		{name: "revenue_trends", title: "Revenue Trends", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "revenue trends", filterParams(f, g), func(ctx context.Context) ([]models.RevenueTrend, error) {
				return s.db.GetRevenueTrends(ctx, f, g)
			})
			if err != nil {
				return Failure(err)
			}
			rows = shaping.LabelRevenueTrends(rows, g)
			res := Rows(rows, charts.RevenueTrend(rows))
			if summary, ok := shaping.SummarizeTrend(rows); ok {
				res = res.WithSummary(summary)
			}
			return res
		}},
		{name: "geography", title: "Revenue by Country", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "geographic revenue", filterParams(f), func(ctx context.Context) ([]models.CountryRevenue, error) {
				return s.db.GetGeographicRevenue(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.CountryShare(rows), charts.TopCountries(rows, topCountries))
		}},
		{name: "amount_distribution", title: "Invoice Amounts", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "amount distribution", filterParams(f), func(ctx context.Context) ([]models.AmountBucket, error) {
				return s.db.GetAmountDistribution(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.AmountDistribution(rows), charts.RevenueByRange(rows))
		}},
		{name: "seasonality", title: "Seasonality", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "seasonality", filterParams(f), func(ctx context.Context) ([]models.Seasonality, error) {
				return s.db.GetSeasonality(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			rows = shaping.LabelSeasonality(rows)
			res := Rows(rows, charts.Seasonality(rows))
			if insight, ok := shaping.SeasonalityInsights(rows); ok {
				res = res.WithSummary(insight)
			}
			return res
		}},
		{name: "weekdays", title: "Day of Week", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "weekday trends", filterParams(f), func(ctx context.Context) ([]models.WeekdayTrend, error) {
				return s.db.GetWeekdayTrends(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			rows = shaping.LabelWeekdays(rows)
			return Rows(rows, charts.WeekdayRevenue(rows), charts.WeekdayInvoices(rows))
		}},
		{name: "baskets", title: "Average Basket", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "basket trends", filterParams(f, g), func(ctx context.Context) ([]models.BasketTrend, error) {
				return s.db.GetBasketTrends(ctx, f, g)
			})
			if err != nil {
				return Failure(err)
			}
			rows = shaping.LabelBasketTrends(rows, g)
			res := Rows(rows, charts.BasketEvolution(rows))
			if summary, ok := shaping.SummarizeBaskets(rows); ok {
				res = res.WithSummary(summary)
			}
			return res
		}},
	})
}
