// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomtom215/groovify/internal/models"
)

// GetFinanceKPIs returns the headline finance figures over the filter range.
func (db *DB) GetFinanceKPIs(ctx context.Context, f models.Filter) (*models.FinanceKPIs, error) {
	query := `
		WITH lines AS (
			SELECT COALESCE(SUM(il.quantity), 0) AS tracks_sold
			FROM invoice_line il
			JOIN invoice i ON i.invoice_id = il.invoice_id
			WHERE ` + dateRangeClause + `
		)
		SELECT
			COUNT(i.invoice_id) AS total_invoices,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_invoice_amount,
			ROUND(MIN(i.total), 2) AS min_invoice,
			ROUND(MAX(i.total), 2) AS max_invoice,
			ROUND(STDDEV(i.total), 2) AS invoice_stddev,
			COUNT(DISTINCT c.customer_id) AS unique_customers,
			COUNT(DISTINCT c.country) AS countries_served,
			ROUND(SUM(i.total) / NULLIF(COUNT(DISTINCT c.customer_id), 0), 2) AS revenue_per_customer,
			COUNT(DISTINCT CAST(i.invoice_date AS DATE)) AS active_days,
			(SELECT tracks_sold FROM lines) AS tracks_sold
		FROM invoice i
		JOIN customer c ON c.customer_id = i.customer_id
		WHERE ` + dateRangeClause

	args := append(rangeArgs(f), rangeArgs(f)...)

	var k models.FinanceKPIs
	err := db.queryRow(ctx, "finance kpis", query, args,
		num(&k.TotalInvoices), num(&k.TotalRevenue), num(&k.AvgInvoiceAmount),
		num(&k.MinInvoice), num(&k.MaxInvoice), num(&k.InvoiceStddev),
		num(&k.UniqueCustomers), num(&k.CountriesServed), num(&k.RevenuePerCustomer),
		num(&k.ActiveDays), num(&k.TracksSold))
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// GetRevenueTrends returns revenue per period, ascending. Period labels are left to shaping.
func (db *DB) GetRevenueTrends(ctx context.Context, f models.Filter, g models.Granularity) ([]models.RevenueTrend, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: granularity %q", models.ErrInvalidFilter, g)
	}

	query := fmt.Sprintf(`
		SELECT
			DATE_TRUNC('%s', i.invoice_date) AS period_start,
			COUNT(*) AS invoice_count,
			ROUND(SUM(i.total), 2) AS revenue,
			ROUND(AVG(i.total), 2) AS avg_invoice,
			COUNT(DISTINCT i.customer_id) AS unique_customers
		FROM invoice i
		WHERE %s
		GROUP BY 1
		ORDER BY 1`, g, dateRangeClause)

	return queryAndScan(ctx, db, "revenue trends "+string(g), query, rangeArgs(f),
		func(rows *sql.Rows) (models.RevenueTrend, error) {
			var t models.RevenueTrend
			err := rows.Scan(&t.PeriodStart, num(&t.InvoiceCount), num(&t.Revenue),
				num(&t.AvgInvoice), num(&t.UniqueCustomers))
			return t, err
		})
}

// GetBasketTrends returns the average basket and its spread per period, ascending.
func (db *DB) GetBasketTrends(ctx context.Context, f models.Filter, g models.Granularity) ([]models.BasketTrend, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: granularity %q", models.ErrInvalidFilter, g)
	}

	query := fmt.Sprintf(`
		SELECT
			DATE_TRUNC('%s', i.invoice_date) AS period_start,
			COUNT(*) AS invoice_count,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_basket,
			ROUND(STDDEV(i.total), 2) AS basket_std
		FROM invoice i
		WHERE %s
		GROUP BY 1
		ORDER BY 1`, g, dateRangeClause)

	return queryAndScan(ctx, db, "basket trends "+string(g), query, rangeArgs(f),
		func(rows *sql.Rows) (models.BasketTrend, error) {
			var t models.BasketTrend
			err := rows.Scan(&t.PeriodStart, num(&t.InvoiceCount), num(&t.TotalRevenue),
				num(&t.AvgBasket), num(&t.BasketStd))
			return t, err
		})
}

// GetGeographicRevenue returns revenue per billing country, highest first, with each
// country's share of the filtered revenue.
func (db *DB) GetGeographicRevenue(ctx context.Context, f models.Filter) ([]models.CountryRevenue, error) {
	query := `
		SELECT
			i.billing_country AS country,
			COUNT(DISTINCT i.customer_id) AS customers,
			COUNT(i.invoice_id) AS invoices,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_invoice_amount,
			ROUND(SUM(i.total) / NULLIF(COUNT(DISTINCT i.customer_id), 0), 2) AS revenue_per_customer,
			ROUND(100.0 * SUM(i.total) / NULLIF((
				SELECT SUM(i.total) FROM invoice i WHERE ` + dateRangeClause + `
			), 0), 2) AS market_share_percent
		FROM invoice i
		WHERE ` + dateRangeClause + `
		GROUP BY i.billing_country
		ORDER BY total_revenue DESC, country`

	args := append(rangeArgs(f), rangeArgs(f)...)

	return queryAndScan(ctx, db, "geographic revenue", query, args,
		func(rows *sql.Rows) (models.CountryRevenue, error) {
			var c models.CountryRevenue
			err := rows.Scan(str(&c.Country), num(&c.Customers), num(&c.Invoices),
				num(&c.TotalRevenue), num(&c.AvgInvoiceAmount), num(&c.RevenuePerCustomer),
				num(&c.MarketSharePercent))
			return c, err
		})
}

// GetAmountDistribution buckets invoices by total, smallest bucket first.
func (db *DB) GetAmountDistribution(ctx context.Context, f models.Filter) ([]models.AmountBucket, error) {
	query := `
		SELECT
			CASE
				WHEN i.total < 5 THEN '< $5'
				WHEN i.total < 10 THEN '$5 - $10'
				WHEN i.total < 20 THEN '$10 - $20'
				WHEN i.total < 50 THEN '$20 - $50'
				ELSE '$50+'
			END AS amount_range,
			COUNT(*) AS invoice_count,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_amount,
			ROUND(100.0 * COUNT(*) / NULLIF((
				SELECT COUNT(*) FROM invoice i WHERE ` + dateRangeClause + `
			), 0), 2) AS percentage
		FROM invoice i
		WHERE ` + dateRangeClause + `
		GROUP BY 1
		ORDER BY MIN(i.total)`

	args := append(rangeArgs(f), rangeArgs(f)...)

	return queryAndScan(ctx, db, "amount distribution", query, args,
		func(rows *sql.Rows) (models.AmountBucket, error) {
			var b models.AmountBucket
			err := rows.Scan(str(&b.AmountRange), num(&b.InvoiceCount), num(&b.TotalRevenue),
				num(&b.AvgAmount), num(&b.Percentage))
			return b, err
		})
}

// GetSeasonality aggregates invoices by calendar month across all years in range.
func (db *DB) GetSeasonality(ctx context.Context, f models.Filter) ([]models.Seasonality, error) {
	query := `
		SELECT
			CAST(EXTRACT(MONTH FROM i.invoice_date) AS INTEGER) AS month_num,
			CAST(EXTRACT(QUARTER FROM i.invoice_date) AS INTEGER) AS quarter,
			COUNT(*) AS invoice_count,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_invoice
		FROM invoice i
		WHERE ` + dateRangeClause + `
		GROUP BY 1, 2
		ORDER BY 1`

	return queryAndScan(ctx, db, "seasonality", query, rangeArgs(f),
		func(rows *sql.Rows) (models.Seasonality, error) {
			var s models.Seasonality
			err := rows.Scan(num(&s.MonthNum), num(&s.Quarter), num(&s.InvoiceCount),
				num(&s.TotalRevenue), num(&s.AvgInvoice))
			return s, err
		})
}

// GetWeekdayTrends aggregates invoices by day of week, Sunday first.
func (db *DB) GetWeekdayTrends(ctx context.Context, f models.Filter) ([]models.WeekdayTrend, error) {
	query := `
		SELECT
			CAST(EXTRACT(DOW FROM i.invoice_date) AS INTEGER) AS day_num,
			COUNT(*) AS invoice_count,
			ROUND(SUM(i.total), 2) AS total_revenue,
			ROUND(AVG(i.total), 2) AS avg_invoice
		FROM invoice i
		WHERE ` + dateRangeClause + `
		GROUP BY 1
		ORDER BY 1`

	return queryAndScan(ctx, db, "weekday trends", query, rangeArgs(f),
		func(rows *sql.Rows) (models.WeekdayTrend, error) {
			var w models.WeekdayTrend
			err := rows.Scan(num(&w.DayNum), num(&w.InvoiceCount), num(&w.TotalRevenue), num(&w.AvgInvoice))
			return w, err
		})
}
