// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import (
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

func labelCountPie(title string, counts []shaping.LabelCount) Spec {
	return Pie(title, counts,
		func(c shaping.LabelCount) string { return c.Label },
		func(c shaping.LabelCount) float64 { return float64(c.Count) },
		Axes{})
}

// ClusterDistribution draws the number of customers per RFM cluster.
func ClusterDistribution(counts []shaping.LabelCount) Spec {
	return labelCountPie("RFM Clusters Distribution", counts)
}

// MusicalProfiles draws the number of customers per musical profile.
func MusicalProfiles(counts []shaping.LabelCount) Spec {
	return labelCountPie("Musical Profiles", counts)
}

// ChurnDistribution draws the number of customers per churn status.
func ChurnDistribution(counts []shaping.LabelCount) Spec {
	return labelCountPie("Churn Distribution", counts)
}

// ListeningProfiles counts the listening profiles of the given preferences.
func ListeningProfiles(rows []models.CustomerPreference) Spec {
	counts := make(map[string]int)
	var order []string
	for _, r := range rows {
		if counts[r.ListeningProfile] == 0 {
			order = append(order, r.ListeningProfile)
		}
		counts[r.ListeningProfile]++
	}
	lc := make([]shaping.LabelCount, len(order))
	for i, label := range order {
		lc[i] = shaping.LabelCount{Label: label, Count: counts[label]}
	}
	return labelCountPie("Distribution of Listening Profiles", lc)
}

// ClusterProfile is a heatmap of each cluster's means normalised by the largest mean across
// clusters, so every metric column peaks at 1.
func ClusterProfile(summaries []models.ClusterSummary) Spec {
	type cell struct {
		metric  string
		cluster string
		value   float64
	}
	metrics := []struct {
		name string
		get  func(models.ClusterSummary) float64
	}{
		{"Recency", func(s models.ClusterSummary) float64 { return s.RecencyMean }},
		{"Frequency", func(s models.ClusterSummary) float64 { return s.FrequencyMean }},
		{"Monetary", func(s models.ClusterSummary) float64 { return s.MonetaryMean }},
		{"Genres", func(s models.ClusterSummary) float64 { return s.AvgGenres }},
		{"Tracks", func(s models.ClusterSummary) float64 { return s.AvgTracks }},
	}

	var cells []cell
	for _, m := range metrics {
		var peak float64
		for _, s := range summaries {
			peak = max(peak, m.get(s))
		}
		for _, s := range summaries {
			v := 0.0
			if peak > 0 {
				v = m.get(s) / peak
			}
			cells = append(cells, cell{metric: m.name, cluster: s.Cluster, value: v})
		}
	}
	return Heatmap("Normalized Profile by Cluster", cells,
		func(c cell) any { return c.metric },
		func(c cell) any { return c.cluster },
		func(c cell) float64 { return c.value },
		Axes{X: "Metric", Y: "Cluster", ColorScale: ScaleViridis})
}

// ValueVsFrequency plots each customer's orders against spend, one series per cluster.
func ValueVsFrequency(rows []models.RFMSegment) Spec {
	return Build(KindScatter, "Value vs Frequency", rows, Mapping[models.RFMSegment]{
		X:     func(r models.RFMSegment) any { return r.Frequency },
		Y:     func(r models.RFMSegment) float64 { return r.Monetary },
		Size:  func(r models.RFMSegment) float64 { return float64(r.NbPurchasedTracks) },
		Label: func(r models.RFMSegment) string { return r.CustomerName },
		Group: func(r models.RFMSegment) string { return r.RFMCluster },
	}, Axes{X: "Orders", Y: "Spend ($)", Hover: []string{"recency_days"}})
}

// ChurnRecency plots days since the last purchase against customer value. Customers without
// purchases have no recency and are left out.
func ChurnRecency(rows []models.ChurnRow) Spec {
	withDays := make([]models.ChurnRow, 0, len(rows))
	for _, r := range rows {
		if r.DaysSinceLastPurchase != nil {
			withDays = append(withDays, r)
		}
	}
	return Build(KindScatter, "Days Since Last Order", withDays, Mapping[models.ChurnRow]{
		X:     func(r models.ChurnRow) any { return *r.DaysSinceLastPurchase },
		Y:     func(r models.ChurnRow) float64 { return r.TotalValue },
		Label: func(r models.ChurnRow) string { return r.CustomerName },
		Group: func(r models.ChurnRow) string { return r.ChurnStatus },
	}, Axes{X: "Days Since Last Order", Y: "Customer Value ($)"})
}

// CustomerGeography nests cities under their country, sized by revenue.
func CustomerGeography(rows []models.CustomerLocation) Spec {
	return Treemap("Revenue by Location", rows,
		func(r models.CustomerLocation) string { return r.City },
		func(r models.CustomerLocation) string { return r.Country },
		func(r models.CustomerLocation) float64 { return r.TotalRevenue },
		Axes{ColorScale: ScaleBlues, Hover: []string{"customer_count", "revenue_per_customer"}})
}

// CohortRetention is the retention matrix, cohorts on rows and months since first purchase
// on columns.
func CohortRetention(rows []models.CohortCell) Spec {
	return Heatmap("Cohort Retention", rows,
		func(c models.CohortCell) any { return c.PeriodNumber },
		func(c models.CohortCell) any { return c.CohortMonth.Format("2006-01") },
		func(c models.CohortCell) float64 { return c.RetentionRate },
		Axes{X: "Months Since First Purchase", Y: "Cohort", ColorScale: ScaleBlues})
}

// TopClients draws the ranked clients by spend.
func TopClients(rows []models.TopClient) Spec {
	return Build(KindBar, "Top Clients", rows, Mapping[models.TopClient]{
		X:     func(r models.TopClient) any { return r.Client },
		Y:     func(r models.TopClient) float64 { return r.TotalSpending },
		Color: func(r models.TopClient) any { return r.MusicalProfile },
	}, Axes{X: "Client", Y: "Spend ($)", Hover: []string{"rank", "nb_orders", "order_frequency"}})
}

// Diversity plots genres against artists per client, sized by spend.
func Diversity(rows []models.TopClient) Spec {
	return Build(KindScatter, "Diversity: Genres vs Artists", rows, Mapping[models.TopClient]{
		X:     func(r models.TopClient) any { return r.NbDifferentGenres },
		Y:     func(r models.TopClient) float64 { return float64(r.NbDifferentArtists) },
		Size:  func(r models.TopClient) float64 { return r.TotalSpending },
		Color: func(r models.TopClient) any { return r.NbDifferentAlbums },
		Label: func(r models.TopClient) string { return r.Client },
	}, Axes{X: "Genres", Y: "Artists", ColorScale: ScaleViridis})
}

// Engagement plots activity span against order frequency per client, sized by spend.
func Engagement(rows []models.TopClient) Spec {
	return Build(KindScatter, "Engagement: Duration vs Frequency", rows, Mapping[models.TopClient]{
		X:     func(r models.TopClient) any { return shaping.ActivityDays(r.FirstOrder, r.LastOrder) },
		Y:     func(r models.TopClient) float64 { return r.OrderFrequency },
		Size:  func(r models.TopClient) float64 { return r.TotalSpending },
		Color: func(r models.TopClient) any { return r.NbOrders },
		Label: func(r models.TopClient) string { return r.Client },
	}, Axes{X: "Activity Days", Y: "Orders per 30 Days", ColorScale: ScalePurples})
}
