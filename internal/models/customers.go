// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import "time"

// RFM cluster labels, in decision order.
const (
	ClusterChampions          = "Champions"
	ClusterLoyal              = "Loyal Customers"
	ClusterPotentialLoyalists = "Potential Loyalists"
	ClusterNew                = "New Customers"
	ClusterAtRisk             = "At Risk"
	ClusterLost               = "Lost"
	ClusterOthers             = "Others"
)

// Churn status labels.
const (
	ChurnNeverPurchased = "Never Purchased"
	ChurnActive         = "Active"
	ChurnAtRisk         = "At Risk"
	ChurnRisk           = "Churn Risk"
)

// RFMSegment is one customer's recency, frequency and monetary values with the derived cluster.
type RFMSegment struct {
	CustomerID        int64   `json:"customer_id"`
	CustomerName      string  `json:"customer_name"`
	RecencyDays       int     `json:"recency_days"`
	Frequency         int     `json:"frequency"`
	Monetary          float64 `json:"monetary"`
	NbDifferentGenres int     `json:"nb_different_genres"`
	NbPurchasedTracks int     `json:"nb_purchased_tracks"`
	RFMCluster        string  `json:"rfm_cluster"`
}

// ClusterSummary aggregates RFM segments per cluster. Shares are percentages of the grand totals.
type ClusterSummary struct {
	Cluster       string  `json:"rfm_cluster"`
	Customers     int     `json:"customers"`
	RecencyMean   float64 `json:"recency_mean"`
	RecencyStd    float64 `json:"recency_std"`
	FrequencyMean float64 `json:"frequency_mean"`
	FrequencyStd  float64 `json:"frequency_std"`
	MonetaryMean  float64 `json:"monetary_mean"`
	MonetaryStd   float64 `json:"monetary_std"`
	Revenue       float64 `json:"revenue"`
	AvgGenres     float64 `json:"avg_genres"`
	AvgTracks     float64 `json:"avg_tracks"`
	RevenueShare  float64 `json:"revenue_share"`
	CustomerShare float64 `json:"customer_share"`
}

// ChurnSummary counts customers per churn status.
type ChurnSummary struct {
	TotalCustomers int            `json:"total_customers"`
	ChurnRiskCount int            `json:"churn_risk_count"`
	ChurnRate      float64        `json:"churn_rate"`
	ByStatus       map[string]int `json:"by_status"`
}

// CustomerJourney is a customer's lifecycle over the filtered range.
type CustomerJourney struct {
	CustomerID           int64     `json:"customer_id"`
	CustomerName         string    `json:"customer_name"`
	Country              string    `json:"country"`
	City                 string    `json:"city"`
	FirstPurchase        time.Time `json:"first_purchase"`
	LastPurchase         time.Time `json:"last_purchase"`
	TotalOrders          int       `json:"total_orders"`
	TotalSpent           float64   `json:"total_spent"`
	AvgOrderValue        float64   `json:"avg_order_value"`
	CustomerLifespanDays int       `json:"customer_lifespan_days"`
	CustomerType         string    `json:"customer_type"`
	ValueSegment         string    `json:"value_segment"`
}

// ChurnRow is a customer's churn classification. Customers without purchases in the range
// have nil dates and the "Never Purchased" status.
type ChurnRow struct {
	CustomerID            int64      `json:"customer_id"`
	CustomerName          string     `json:"customer_name"`
	Country               string     `json:"country"`
	LastPurchaseDate      *time.Time `json:"last_purchase_date"`
	TotalOrders           int        `json:"total_orders"`
	TotalValue            float64    `json:"total_value"`
	AvgOrderValue         float64    `json:"avg_order_value"`
	DaysSinceLastPurchase *int       `json:"days_since_last_purchase"`
	ChurnStatus           string     `json:"churn_status"`
	ValueTier             string     `json:"value_tier"`
}

// CustomerLocation aggregates customers and revenue per country, state and city.
type CustomerLocation struct {
	Country            string  `json:"country"`
	State              string  `json:"state"`
	City               string  `json:"city"`
	CustomerCount      int     `json:"customer_count"`
	TotalOrders        int     `json:"total_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgOrderValue      float64 `json:"avg_order_value"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
}

// CustomerPreference is a customer's top genre with the profile columns derived in Go.
type CustomerPreference struct {
	CustomerID             int64   `json:"customer_id"`
	CustomerName           string  `json:"customer_name"`
	PreferredGenre         string  `json:"preferred_genre"`
	TracksInPreferredGenre int     `json:"tracks_in_preferred_genre"`
	SpentOnGenre           float64 `json:"spent_on_genre"`
	TotalTracks            int     `json:"total_tracks"`
	TotalSpent             float64 `json:"total_spent"`
	GenresExplored         int     `json:"genres_explored"`
	ArtistsExplored        int     `json:"artists_explored"`
	AlbumsExplored         int     `json:"albums_explored"`
	TotalMinutesPurchased  float64 `json:"total_minutes_purchased"`
	GenrePreferencePct     float64 `json:"genre_preference_pct"`

	MusicalProfile   string  `json:"musical_profile"`
	ListeningProfile string  `json:"listening_profile"`
	DiversityScore   float64 `json:"diversity_score"`
}

// CohortCell is one (cohort month, purchase month) cell of the retention matrix.
type CohortCell struct {
	CohortMonth   time.Time `json:"cohort_month"`
	PurchaseMonth time.Time `json:"purchase_month"`
	PeriodNumber  int       `json:"period_number"`
	Customers     int       `json:"customers"`
	CohortSize    int       `json:"cohort_size"`
	RetentionRate float64   `json:"retention_rate"`
	CohortRevenue float64   `json:"cohort_revenue"`
}

// TopClient is a high-spending customer with the ranking and profile columns derived in Go.
type TopClient struct {
	Rank               int       `json:"rank"`
	CustomerID         int64     `json:"customer_id"`
	Client             string    `json:"client"`
	Country            string    `json:"country"`
	NbOrders           int       `json:"nb_orders"`
	NbPurchasedTracks  int       `json:"nb_purchased_tracks"`
	TotalMinutes       float64   `json:"total_minutes"`
	NbDifferentGenres  int       `json:"nb_different_genres"`
	NbDifferentArtists int       `json:"nb_different_artists"`
	NbDifferentAlbums  int       `json:"nb_different_albums"`
	TotalSpending      float64   `json:"total_spending"`
	AvgBasket          float64   `json:"avg_basket"`
	FirstOrder         time.Time `json:"first_order"`
	LastOrder          time.Time `json:"last_order"`

	OrderFrequency   float64 `json:"order_frequency"`
	MusicalProfile   string  `json:"musical_profile"`
	ListeningProfile string  `json:"listening_profile"`
	DiversityScore   float64 `json:"diversity_score"`
}
