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

// CustomersRequest parameterises the Customers page. Zero values use the configured defaults.
type CustomersRequest struct {
	Filter       models.Filter
	Churn        models.ChurnParams
	TopClients   int
	ClientMetric shaping.ClientMetric
}

// Customers renders RFM segmentation, journeys, churn, geography, preferences, cohorts and
// the top clients.
func (s *Service) Customers(ctx context.Context, req CustomersRequest) *Page {
	f := req.Filter
	churn := req.Churn
	if churn.ActiveMonths == 0 && churn.RiskMonths == 0 {
		churn = s.ChurnParams()
	}
	topN := req.TopClients
	if topN <= 0 {
		topN = s.cfg.Analytics.TopClientsLimit
	}
	metric := req.ClientMetric
	if metric == "" {
		metric = shaping.BySpending
	}

	segments := func(ctx context.Context) ([]models.RFMSegment, error) {
		return load(ctx, s, "rfm segments", filterParams(f), func(ctx context.Context) ([]models.RFMSegment, error) {
			return s.db.GetRFMSegments(ctx, f)
		})
	}

	return s.render(ctx, PageCustomers, &f, []task{
		{name: "rfm_segments", title: "RFM Segmentation", run: func(ctx context.Context) Result {
			rows, err := segments(ctx)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows,
				charts.ClusterDistribution(shaping.ClusterCounts(rows)),
				charts.ValueVsFrequency(rows),
				charts.MusicalProfiles(shaping.MusicalProfileCounts(rows)),
			)
		}},
		{name: "cluster_summary", title: "Cluster Profiles", run: func(ctx context.Context) Result {
			rows, err := segments(ctx)
			if err != nil {
				return Failure(err)
			}
			summary := shaping.SummarizeClusters(rows)
			return Rows(summary, charts.ClusterProfile(summary))
		}},
		{name: "journeys", title: "Customer Journeys", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "customer journeys", filterParams(f), func(ctx context.Context) ([]models.CustomerJourney, error) {
				return s.db.GetCustomerJourneys(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows)
		}},
		{name: "churn", title: "Churn Analysis", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "churn analysis", filterParams(f, churn), func(ctx context.Context) ([]models.ChurnRow, error) {
				return s.db.GetChurnAnalysis(ctx, f, churn)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows,
				charts.ChurnDistribution(shaping.ChurnCounts(rows)),
				charts.ChurnRecency(rows),
			).WithSummary(shaping.SummarizeChurn(rows))
		}},
		{name: "locations", title: "Customer Geography", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "customer locations", filterParams(f), func(ctx context.Context) ([]models.CustomerLocation, error) {
				return s.db.GetCustomerLocations(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.CustomerGeography(rows))
		}},
		{name: "preferences", title: "Musical Preferences", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "customer preferences", filterParams(f), func(ctx context.Context) ([]models.CustomerPreference, error) {
				return s.db.GetCustomerPreferences(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			rows = shaping.ProfilePreferences(rows)
			return Rows(rows, charts.ListeningProfiles(rows))
		}},
		{name: "cohorts", title: "Cohort Retention", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "cohort retention", filterParams(f), func(ctx context.Context) ([]models.CohortCell, error) {
				return s.db.GetCohortRetention(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.CohortRetention(rows))
		}},
		{name: "top_clients", title: "Top Clients", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "top clients", filterParams(f), func(ctx context.Context) ([]models.TopClient, error) {
				return s.db.GetTopClients(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			ranked, err := shaping.RankTopClients(rows, metric, topN)
			if err != nil {
				return Failure(err)
			}
			return Rows(ranked, charts.TopClients(ranked), charts.Diversity(ranked), charts.Engagement(ranked))
		}},
	})
}
