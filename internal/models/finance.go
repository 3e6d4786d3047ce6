// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import "time"

// FinanceKPIs holds the headline figures for a date range. Averages and extrema are zero
// when the range holds no invoices.
type FinanceKPIs struct {
	TotalInvoices      int64   `json:"total_invoices"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgInvoiceAmount   float64 `json:"avg_invoice_amount"`
	MinInvoice         float64 `json:"min_invoice"`
	MaxInvoice         float64 `json:"max_invoice"`
	InvoiceStddev      float64 `json:"invoice_stddev"`
	UniqueCustomers    int64   `json:"unique_customers"`
	CountriesServed    int64   `json:"countries_served"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
	ActiveDays         int64   `json:"active_days"`
	TracksSold         int64   `json:"tracks_sold"`
}

// RevenueTrend is one period of a monthly, quarterly or yearly revenue trend.
// Period ("2024-03", "2024-Q1", "2024") and PeriodLabel are derived from PeriodStart.
type RevenueTrend struct {
	PeriodStart     time.Time `json:"period_start"`
	Period          string    `json:"period"`
	PeriodLabel     string    `json:"period_label"`
	InvoiceCount    int64     `json:"invoice_count"`
	Revenue         float64   `json:"revenue"`
	AvgInvoice      float64   `json:"avg_invoice"`
	UniqueCustomers int64     `json:"unique_customers"`
}

// BasketTrend is the average basket for one period.
type BasketTrend struct {
	PeriodStart  time.Time `json:"period_start"`
	Period       string    `json:"period"`
	PeriodLabel  string    `json:"period_label"`
	InvoiceCount int64     `json:"invoice_count"`
	TotalRevenue float64   `json:"total_revenue"`
	AvgBasket    float64   `json:"avg_basket"`
	BasketStd    float64   `json:"basket_std"`
}

// CountryRevenue is billing-country revenue with its share of the filtered total.
type CountryRevenue struct {
	Country            string  `json:"country"`
	Customers          int64   `json:"customers"`
	Invoices           int64   `json:"invoices"`
	TotalRevenue       float64 `json:"total_revenue"`
	AvgInvoiceAmount   float64 `json:"avg_invoice_amount"`
	RevenuePerCustomer float64 `json:"revenue_per_customer"`
	MarketSharePercent float64 `json:"market_share_percent"`
}

// AmountBucket is one invoice amount range of the distribution.
type AmountBucket struct {
	AmountRange  string  `json:"amount_range"`
	InvoiceCount int64   `json:"invoice_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgAmount    float64 `json:"avg_amount"`
	Percentage   float64 `json:"percentage"`
}

// Seasonality aggregates invoices by calendar month across years.
type Seasonality struct {
	MonthNum     int     `json:"month_num"`
	MonthName    string  `json:"month_name"`
	Quarter      int     `json:"quarter"`
	InvoiceCount int64   `json:"invoice_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgInvoice   float64 `json:"avg_invoice"`
}

// WeekdayTrend aggregates invoices by day of week (0 = Sunday).
type WeekdayTrend struct {
	DayNum       int     `json:"day_num"`
	DayName      string  `json:"day_name"`
	InvoiceCount int64   `json:"invoice_count"`
	TotalRevenue float64 `json:"total_revenue"`
	AvgInvoice   float64 `json:"avg_invoice"`
}

// TrendSummary describes a revenue trend: its peak, its average and its growth from the first
// period and from the previous period. Growth is zero when the base period has no revenue.
type TrendSummary struct {
	Periods         int     `json:"periods"`
	PeakPeriod      string  `json:"peak_period"`
	PeakRevenue     float64 `json:"peak_revenue"`
	AvgRevenue      float64 `json:"avg_revenue"`
	PeakVsAvgPct    float64 `json:"peak_vs_avg_pct"`
	TotalGrowthPct  float64 `json:"total_growth_pct"`
	LatestGrowthPct float64 `json:"latest_growth_pct"`
	HasLatestGrowth bool    `json:"has_latest_growth"`
}

// BasketSummary describes the evolution of the average basket.
type BasketSummary struct {
	CurrentBasket float64 `json:"current_basket"`
	FirstBasket   float64 `json:"first_basket"`
	MaxBasket     float64 `json:"max_basket"`
	MinBasket     float64 `json:"min_basket"`
	GrowthPct     float64 `json:"growth_pct"`
}

// SeasonalityInsight names the best and worst calendar months and the coefficient of variation
// of monthly revenue.
type SeasonalityInsight struct {
	BestMonth    string  `json:"best_month"`
	BestRevenue  float64 `json:"best_revenue"`
	WorstMonth   string  `json:"worst_month"`
	WorstRevenue float64 `json:"worst_revenue"`
	VariationPct float64 `json:"variation_pct"`
}
