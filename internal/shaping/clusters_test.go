// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/groovify/internal/models"
)

func TestSummarizeClusters(t *testing.T) {
	t.Parallel()

	segments := []models.RFMSegment{
		{RFMCluster: models.ClusterLost, RecencyDays: 400, Frequency: 1, Monetary: 10, NbDifferentGenres: 1, NbPurchasedTracks: 2},
		{RFMCluster: models.ClusterChampions, RecencyDays: 10, Frequency: 6, Monetary: 50, NbDifferentGenres: 4, NbPurchasedTracks: 30},
		{RFMCluster: models.ClusterChampions, RecencyDays: 20, Frequency: 8, Monetary: 70, NbDifferentGenres: 6, NbPurchasedTracks: 40},
		{RFMCluster: models.ClusterLost, RecencyDays: 500, Frequency: 1, Monetary: 20, NbDifferentGenres: 1, NbPurchasedTracks: 3},
	}

	got := SummarizeClusters(segments)
	require.Len(t, got, 2)

	champions := got[0]
	assert.Equal(t, models.ClusterChampions, champions.Cluster, "clusters follow the decision order")
	assert.Equal(t, 2, champions.Customers)
	assert.InDelta(t, 15, champions.RecencyMean, 1e-9)
	assert.InDelta(t, 7.07, champions.RecencyStd, 1e-9)
	assert.InDelta(t, 7, champions.FrequencyMean, 1e-9)
	assert.InDelta(t, 1.41, champions.FrequencyStd, 1e-9)
	assert.InDelta(t, 60, champions.MonetaryMean, 1e-9)
	assert.InDelta(t, 120, champions.Revenue, 1e-9)
	assert.InDelta(t, 5, champions.AvgGenres, 1e-9)
	assert.InDelta(t, 35, champions.AvgTracks, 1e-9)
	assert.InDelta(t, 80, champions.RevenueShare, 1e-9)
	assert.InDelta(t, 50, champions.CustomerShare, 1e-9)

	lost := got[1]
	assert.Equal(t, models.ClusterLost, lost.Cluster)
	assert.InDelta(t, 20, lost.RevenueShare, 1e-9)

	var revenueShare, customerShare float64
	for _, s := range got {
		revenueShare += s.RevenueShare
		customerShare += s.CustomerShare
	}
	assert.InDelta(t, 100, revenueShare, 0.1)
	assert.InDelta(t, 100, customerShare, 0.1)
}

func TestSummarizeClustersEdgeCases(t *testing.T) {
	t.Parallel()

	empty := SummarizeClusters(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	single := SummarizeClusters([]models.RFMSegment{{RFMCluster: models.ClusterNew, RecencyDays: 5, Frequency: 1}})
	require.Len(t, single, 1)
	assert.Zero(t, single[0].RecencyStd, "a single member has no spread")
	assert.Zero(t, single[0].RevenueShare, "no revenue gives a zero share")
	assert.InDelta(t, 100, single[0].CustomerShare, 1e-9)
}

func TestClusterCounts(t *testing.T) {
	t.Parallel()

	segments := []models.RFMSegment{
		{RFMCluster: models.ClusterOthers},
		{RFMCluster: models.ClusterAtRisk},
		{RFMCluster: models.ClusterOthers},
	}
	assert.Equal(t, []LabelCount{
		{Label: models.ClusterAtRisk, Count: 1},
		{Label: models.ClusterOthers, Count: 2},
	}, ClusterCounts(segments))
}

func TestSummarizeChurn(t *testing.T) {
	t.Parallel()

	rows := []models.ChurnRow{
		{ChurnStatus: models.ChurnActive},
		{ChurnStatus: models.ChurnRisk},
		{ChurnStatus: models.ChurnNeverPurchased},
		{ChurnStatus: models.ChurnAtRisk},
		{ChurnStatus: models.ChurnRisk},
		{ChurnStatus: models.ChurnActive},
	}

	summary := SummarizeChurn(rows)
	assert.Equal(t, 6, summary.TotalCustomers)
	assert.Equal(t, 2, summary.ChurnRiskCount)
	assert.InDelta(t, 33.3, summary.ChurnRate, 1e-9)
	assert.Equal(t, 2, summary.ByStatus[models.ChurnActive])

	assert.Equal(t, []LabelCount{
		{Label: models.ChurnActive, Count: 2},
		{Label: models.ChurnAtRisk, Count: 1},
		{Label: models.ChurnRisk, Count: 2},
		{Label: models.ChurnNeverPurchased, Count: 1},
	}, ChurnCounts(rows))

	none := SummarizeChurn(nil)
	assert.Zero(t, none.ChurnRate)
	assert.NotNil(t, none.ByStatus)
}
