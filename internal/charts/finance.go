// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import (
	"fmt"

	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

// RevenueTrend draws labelled revenue trends as an area chart.
func RevenueTrend(rows []models.RevenueTrend) Spec {
	return Build(KindArea, "Revenue Trend", rows, Mapping[models.RevenueTrend]{
		X: func(r models.RevenueTrend) any { return r.PeriodLabel },
		Y: func(r models.RevenueTrend) float64 { return r.Revenue },
	}, Axes{X: "Period", Y: "Revenue ($)", Hover: []string{"invoice_count", "avg_invoice", "unique_customers"}})
}

// BasketEvolution draws the average basket per period.
func BasketEvolution(rows []models.BasketTrend) Spec {
	return Build(KindLine, "Average Basket Evolution", rows, Mapping[models.BasketTrend]{
		X: func(r models.BasketTrend) any { return r.PeriodLabel },
		Y: func(r models.BasketTrend) float64 { return r.AvgBasket },
	}, Axes{X: "Period", Y: "Average Basket ($)", Hover: []string{"invoice_count", "basket_std"}})
}

// CountryShare draws the revenue split by billing country.
func CountryShare(rows []models.CountryRevenue) Spec {
	return Pie("Revenue Distribution by Country", rows,
		func(r models.CountryRevenue) string { return r.Country },
		func(r models.CountryRevenue) float64 { return r.TotalRevenue },
		Axes{Hover: []string{"customers", "invoices"}})
}

// TopCountries draws the n largest markets, largest on top.
func TopCountries(rows []models.CountryRevenue, n int) Spec {
	top := shaping.TopN(shaping.RankBy(rows, func(r models.CountryRevenue) float64 { return r.TotalRevenue }), n)
	return Build(KindHorizontalBar, "Top Countries by Revenue", top, Mapping[models.CountryRevenue]{
		X:     func(r models.CountryRevenue) any { return r.Country },
		Y:     func(r models.CountryRevenue) float64 { return r.TotalRevenue },
		Color: func(r models.CountryRevenue) any { return r.TotalRevenue },
	}, Axes{X: "Country", Y: "Revenue ($)", ColorScale: ScaleViridis, Hover: []string{"market_share_percent"}})
}

// AmountDistribution draws the invoice count per amount bucket.
func AmountDistribution(rows []models.AmountBucket) Spec {
	return Pie("Invoice Distribution by Amount", rows,
		func(r models.AmountBucket) string { return r.AmountRange },
		func(r models.AmountBucket) float64 { return float64(r.InvoiceCount) },
		Axes{Hover: []string{"percentage", "avg_amount"}})
}

// RevenueByRange draws the revenue per amount bucket in bucket order.
func RevenueByRange(rows []models.AmountBucket) Spec {
	return Build(KindBar, "Revenue by Amount Range", rows, Mapping[models.AmountBucket]{
		X:     func(r models.AmountBucket) any { return r.AmountRange },
		Y:     func(r models.AmountBucket) float64 { return r.TotalRevenue },
		Color: func(r models.AmountBucket) any { return r.TotalRevenue },
	}, Axes{X: "Amount Range", Y: "Revenue ($)", ColorScale: ScaleBlues})
}

// Seasonality draws the revenue per calendar month.
func Seasonality(rows []models.Seasonality) Spec {
	return Build(KindBar, "Sales Seasonality", rows, Mapping[models.Seasonality]{
		X:     func(r models.Seasonality) any { return r.MonthName },
		Y:     func(r models.Seasonality) float64 { return r.TotalRevenue },
		Group: func(r models.Seasonality) string { return fmt.Sprintf("Q%d", r.Quarter) },
	}, Axes{X: "Month", Y: "Revenue ($)"})
}

// WeekdayRevenue draws the revenue per day of week.
func WeekdayRevenue(rows []models.WeekdayTrend) Spec {
	return Build(KindBar, "Revenue by Day of Week", rows, Mapping[models.WeekdayTrend]{
		X:     func(r models.WeekdayTrend) any { return r.DayName },
		Y:     func(r models.WeekdayTrend) float64 { return r.TotalRevenue },
		Color: func(r models.WeekdayTrend) any { return r.TotalRevenue },
	}, Axes{X: "Day", Y: "Revenue ($)", ColorScale: ScalePurples})
}

// WeekdayInvoices draws the invoice count per day of week.
func WeekdayInvoices(rows []models.WeekdayTrend) Spec {
	return Build(KindBar, "Invoices by Day of Week", rows, Mapping[models.WeekdayTrend]{
		X: func(r models.WeekdayTrend) any { return r.DayName },
		Y: func(r models.WeekdayTrend) float64 { return float64(r.InvoiceCount) },
	}, Axes{X: "Day", Y: "Invoices"})
}
