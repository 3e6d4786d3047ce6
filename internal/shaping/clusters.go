// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import (
	"math"

	"github.com/tomtom215/groovify/internal/models"
)

// clusterOrder is the RFM decision order, used to order summaries.
var clusterOrder = []string{
	models.ClusterChampions,
	models.ClusterLoyal,
	models.ClusterPotentialLoyalists,
	models.ClusterNew,
	models.ClusterAtRisk,
	models.ClusterLost,
	models.ClusterOthers,
}

// churnOrder orders churn statuses from healthiest to lost.
var churnOrder = []string{
	models.ChurnActive,
	models.ChurnAtRisk,
	models.ChurnRisk,
	models.ChurnNeverPurchased,
}

type clusterAcc struct {
	recency, frequency, monetary []float64
	genres, tracks               float64
}

// SummarizeClusters aggregates RFM segments per cluster: mean and sample standard deviation
// of recency, frequency and monetary value (two decimals), revenue, and the cluster's share
// of revenue and customers (percent, one decimal). Clusters follow the RFM decision order.
func SummarizeClusters(segments []models.RFMSegment) []models.ClusterSummary {
	if len(segments) == 0 {
		return []models.ClusterSummary{}
	}

	acc := make(map[string]*clusterAcc)
	var totalRevenue float64
	for _, s := range segments {
		a, ok := acc[s.RFMCluster]
		if !ok {
			a = &clusterAcc{}
			acc[s.RFMCluster] = a
		}
		a.recency = append(a.recency, float64(s.RecencyDays))
		a.frequency = append(a.frequency, float64(s.Frequency))
		a.monetary = append(a.monetary, s.Monetary)
		a.genres += float64(s.NbDifferentGenres)
		a.tracks += float64(s.NbPurchasedTracks)
		totalRevenue += s.Monetary
	}

	counts := make(map[string]int, len(acc))
	for label, a := range acc {
		counts[label] = len(a.monetary)
	}

	total := float64(len(segments))
	out := make([]models.ClusterSummary, 0, len(acc))
	for _, lc := range orderedCounts(counts, clusterOrder) {
		a := acc[lc.Label]
		n := float64(lc.Count)
		revenue := sum(a.monetary)

		summary := models.ClusterSummary{
			Cluster:       lc.Label,
			Customers:     lc.Count,
			RecencyMean:   round(mean(a.recency), 2),
			RecencyStd:    round(sampleStd(a.recency), 2),
			FrequencyMean: round(mean(a.frequency), 2),
			FrequencyStd:  round(sampleStd(a.frequency), 2),
			MonetaryMean:  round(mean(a.monetary), 2),
			MonetaryStd:   round(sampleStd(a.monetary), 2),
			Revenue:       round(revenue, 2),
			AvgGenres:     round(a.genres/n, 2),
			AvgTracks:     round(a.tracks/n, 2),
			CustomerShare: round(n/total*100, 1),
		}
		if totalRevenue > 0 {
			summary.RevenueShare = round(revenue/totalRevenue*100, 1)
		}
		out = append(out, summary)
	}
	return out
}

// ClusterCounts counts RFM segments per cluster in decision order.
func ClusterCounts(segments []models.RFMSegment) []LabelCount {
	counts := make(map[string]int)
	for _, s := range segments {
		counts[s.RFMCluster]++
	}
	return orderedCounts(counts, clusterOrder)
}

// SummarizeChurn counts customers per churn status. The churn rate is the percentage of
// customers in "Churn Risk", one decimal.
func SummarizeChurn(rows []models.ChurnRow) models.ChurnSummary {
	summary := models.ChurnSummary{
		TotalCustomers: len(rows),
		ByStatus:       make(map[string]int),
	}
	for _, r := range rows {
		summary.ByStatus[r.ChurnStatus]++
	}
	summary.ChurnRiskCount = summary.ByStatus[models.ChurnRisk]
	if len(rows) > 0 {
		summary.ChurnRate = round(100*float64(summary.ChurnRiskCount)/float64(len(rows)), 1)
	}
	return summary
}

// ChurnCounts counts churn rows per status, healthiest first.
func ChurnCounts(rows []models.ChurnRow) []LabelCount {
	counts := make(map[string]int)
	for _, r := range rows {
		counts[r.ChurnStatus]++
	}
	return orderedCounts(counts, churnOrder)
}

func sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}
	return s
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return sum(values) / float64(len(values))
}

// sampleStd is the standard deviation with n-1 degrees of freedom, zero below two values.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		ss += (v - m) * (v - m)
	}
	return math.Sqrt(ss / float64(len(values)-1))
}
