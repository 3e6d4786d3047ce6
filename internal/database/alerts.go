// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"cmp"
	"context"
	"database/sql"
	"slices"

	"github.com/tomtom215/groovify/internal/models"
)

// Alert queries. Catalogue and customer alerts look at all-time sales; revenue and fraud
// alerts look at a window of days ending on the filter's AsOf date.

// anomalyWindow is the number of prior days in the trailing revenue average.
const anomalyWindow = 6

// GetLowPerformanceTracks returns tracks sold at most t.MinSalesThreshold times,
// least sold first.
func (db *DB) GetLowPerformanceTracks(ctx context.Context, t models.AlertThresholds) ([]models.LowPerformanceTrack, error) {
	query := `
		SELECT
			t.name AS track_name,
			ar.name AS artist_name,
			al.title AS album_title,
			g.name AS genre,
			COUNT(il.invoice_line_id) AS total_sales,
			ROUND(AVG(il.unit_price), 2) AS avg_price,
			ROUND(t.milliseconds / 1000.0 / 60.0, 2) AS duration_minutes,
			CASE
				WHEN COUNT(il.invoice_line_id) = 0 THEN 'No Sales'
				WHEN COUNT(il.invoice_line_id) < 3 THEN 'Low Sales'
				WHEN COUNT(il.invoice_line_id) < 5 THEN 'Below Average'
				ELSE 'Normal'
			END AS alert_level
		FROM track t
		JOIN album al ON t.album_id = al.album_id
		JOIN artist ar ON al.artist_id = ar.artist_id
		JOIN genre g ON t.genre_id = g.genre_id
		LEFT JOIN invoice_line il ON t.track_id = il.track_id
		GROUP BY t.track_id, t.name, ar.name, al.title, g.name, t.milliseconds
		HAVING COUNT(il.invoice_line_id) <= ?
		ORDER BY total_sales ASC, t.name, t.track_id
		` + limitClause(t.TrackLimit)

	return queryAndScan(ctx, db, "low performance tracks", query, []any{t.MinSalesThreshold},
		func(rows *sql.Rows) (models.LowPerformanceTrack, error) {
			var r models.LowPerformanceTrack
			err := rows.Scan(str(&r.TrackName), str(&r.ArtistName), str(&r.AlbumTitle), str(&r.Genre),
				num(&r.TotalSales), num(&r.AvgPrice), num(&r.DurationMinutes), str(&r.AlertLevel))
			return r, err
		})
}

// GetLowPerformanceAlbums returns albums sold at most t.AlbumSalesThreshold times,
// least sold first.
func (db *DB) GetLowPerformanceAlbums(ctx context.Context, t models.AlertThresholds) ([]models.LowPerformanceAlbum, error) {
	query := `
		SELECT
			al.title AS album_title,
			ar.name AS artist_name,
			COUNT(DISTINCT t.track_id) AS track_count,
			COUNT(il.invoice_line_id) AS total_sales,
			COALESCE(ROUND(SUM(il.unit_price * il.quantity), 2), 0) AS album_revenue,
			CASE
				WHEN COUNT(il.invoice_line_id) = 0 THEN 'No Sales'
				WHEN COUNT(il.invoice_line_id) < 5 THEN 'Low Sales'
				WHEN COUNT(il.invoice_line_id) < 10 THEN 'Below Average'
				ELSE 'Normal'
			END AS alert_level
		FROM album al
		JOIN artist ar ON al.artist_id = ar.artist_id
		JOIN track t ON al.album_id = t.album_id
		LEFT JOIN invoice_line il ON t.track_id = il.track_id
		GROUP BY al.album_id, al.title, ar.name
		HAVING COUNT(il.invoice_line_id) <= ?
		ORDER BY total_sales ASC, al.title, al.album_id
		` + limitClause(t.AlbumLimit)

	return queryAndScan(ctx, db, "low performance albums", query, []any{t.AlbumSalesThreshold},
		func(rows *sql.Rows) (models.LowPerformanceAlbum, error) {
			var r models.LowPerformanceAlbum
			err := rows.Scan(str(&r.AlbumTitle), str(&r.ArtistName), num(&r.TrackCount),
				num(&r.TotalSales), num(&r.AlbumRevenue), str(&r.AlertLevel))
			return r, err
		})
}

// GetRevenueAnomalies returns days in the t.RevenueAnalysisDays window ending on f.AsOf
// whose revenue fell below the trailing average by more than the warning threshold,
// newest first. The trailing average covers the six previous days with sales; days with
// fewer than six predecessors in the window are not evaluated.
func (db *DB) GetRevenueAnomalies(ctx context.Context, f models.Filter, t models.AlertThresholds) ([]models.RevenueAnomaly, error) {
	query := `
		WITH daily_revenue AS (
			SELECT
				CAST(i.invoice_date AS DATE) AS revenue_date,
				SUM(i.total) AS daily_revenue
			FROM invoice i
			WHERE i.invoice_date >= CAST(? AS DATE) AND i.invoice_date < CAST(? AS DATE)
			GROUP BY CAST(i.invoice_date AS DATE)
		),
		revenue_with_avg AS (
			SELECT
				revenue_date,
				daily_revenue,
				AVG(daily_revenue) OVER (
					ORDER BY revenue_date ROWS BETWEEN 6 PRECEDING AND 1 PRECEDING
				) AS rolling_avg,
				COUNT(*) OVER (
					ORDER BY revenue_date ROWS BETWEEN 6 PRECEDING AND 1 PRECEDING
				) AS prior_days,
				LAG(daily_revenue, 1) OVER (ORDER BY revenue_date) AS prev_day_revenue
			FROM daily_revenue
		),
		anomalies AS (
			SELECT
				revenue_date,
				daily_revenue,
				rolling_avg,
				prev_day_revenue,
				(daily_revenue - rolling_avg) * 100.0 / rolling_avg AS change_pct
			FROM revenue_with_avg
			WHERE prior_days >= ? AND rolling_avg > 0
		)
		SELECT
			revenue_date AS alert_date,
			ROUND(daily_revenue, 2) AS daily_revenue,
			ROUND(rolling_avg, 2) AS rolling_avg,
			prev_day_revenue,
			ROUND(change_pct, 2) AS revenue_change_pct,
			CASE
				WHEN change_pct < ? THEN 'Critical'
				ELSE 'Warning'
			END AS severity,
			CASE
				WHEN change_pct < -30 THEN 'Critical revenue drop detected'
				WHEN change_pct < -15 THEN 'Significant revenue decline'
				ELSE 'Revenue anomaly detected'
			END AS alert_message
		FROM anomalies
		WHERE change_pct < ?
		ORDER BY revenue_date DESC`

	args := []any{
		f.DaysBefore(t.RevenueAnalysisDays), f.DayAfterAsOf(),
		anomalyWindow,
		-t.CriticalDropPct,
		-t.WarningDropPct,
	}

	return queryAndScan(ctx, db, "revenue anomalies", query, args,
		func(rows *sql.Rows) (models.RevenueAnomaly, error) {
			var r models.RevenueAnomaly
			err := rows.Scan(&r.AlertDate, num(&r.DailyRevenue), num(&r.RollingAvg),
				optNum(&r.PrevDayRevenue), num(&r.RevenueChangePct), str(&r.Severity), str(&r.AlertMessage))
			return r, err
		})
}

// GetChurnAlerts returns customers inactive for at least t.ChurnDaysThreshold days before
// f.AsOf, most valuable first.
func (db *DB) GetChurnAlerts(ctx context.Context, f models.Filter, t models.AlertThresholds) ([]models.ChurnAlert, error) {
	query := `
		WITH customer_last_activity AS (
			SELECT
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				MAX(i.invoice_date) AS last_purchase,
				COUNT(i.invoice_id) AS total_orders,
				ROUND(SUM(i.total), 2) AS customer_value,
				CAST(? AS DATE) - CAST(MAX(i.invoice_date) AS DATE) AS days_inactive
			FROM customer c
			JOIN invoice i ON c.customer_id = i.customer_id
			GROUP BY c.customer_id, c.first_name, c.last_name
		),
		spending_analysis AS (
			SELECT
				cla.*,
				CASE
					WHEN days_inactive >= ? AND customer_value >= ? THEN 'High'
					WHEN days_inactive >= ? AND customer_value >= ? THEN 'Medium'
					WHEN days_inactive >= ? THEN 'Low'
					ELSE 'Active'
				END AS risk_level,
				CASE
					WHEN days_inactive >= ? THEN 'Critical'
					WHEN days_inactive >= ? THEN 'Warning'
					ELSE 'Normal'
				END AS severity
			FROM customer_last_activity cla
			WHERE days_inactive > 0
		)
		SELECT
			customer_id, customer_name, last_purchase, total_orders, customer_value,
			days_inactive, risk_level, severity,
			CASE
				WHEN risk_level = 'High' THEN 'High-value customer at risk of churning'
				WHEN risk_level = 'Medium' THEN 'Customer showing signs of disengagement'
				ELSE 'Customer activity decline detected'
			END AS alert_message
		FROM spending_analysis
		WHERE risk_level <> 'Active'
		ORDER BY customer_value DESC, days_inactive DESC, customer_id`

	args := []any{
		f.AsOfParam(),
		t.ChurnDaysThreshold, t.HighValueCustomerMin,
		t.ChurnDaysThreshold, t.MediumValueCustomerMin,
		t.ChurnDaysThreshold,
		t.ChurnCriticalDays,
		t.ChurnDaysThreshold,
	}

	return queryAndScan(ctx, db, "churn alerts", query, args,
		func(rows *sql.Rows) (models.ChurnAlert, error) {
			var r models.ChurnAlert
			err := rows.Scan(num(&r.CustomerID), str(&r.CustomerName), &r.LastPurchase,
				num(&r.TotalOrders), num(&r.CustomerValue), num(&r.DaysInactive),
				str(&r.RiskLevel), str(&r.Severity), str(&r.AlertMessage))
			return r, err
		})
}

// GetInventoryAlerts returns tracks with zero or low all-time sales, never-sold first.
// potential_revenue assumes ten sales at the catalogue price.
func (db *DB) GetInventoryAlerts(ctx context.Context, t models.AlertThresholds) ([]models.InventoryAlert, error) {
	query := `
		WITH track_performance AS (
			SELECT
				t.track_id,
				t.name AS track_name,
				ar.name AS artist_name,
				g.name AS genre,
				COUNT(il.invoice_line_id) AS sales_count,
				COALESCE(ROUND(SUM(il.unit_price * il.quantity), 2), 0) AS total_revenue,
				t.unit_price,
				CASE
					WHEN COUNT(il.invoice_line_id) = 0 THEN 'Zero Sales'
					WHEN COUNT(il.invoice_line_id) < 5 THEN 'Low'
					WHEN COUNT(il.invoice_line_id) < 15 THEN 'Medium'
					ELSE 'High'
				END AS performance_rating,
				CASE
					WHEN COUNT(il.invoice_line_id) = 0 THEN 'Critical'
					WHEN COUNT(il.invoice_line_id) < 3 THEN 'Warning'
					ELSE 'Normal'
				END AS severity
			FROM track t
			JOIN album al ON t.album_id = al.album_id
			JOIN artist ar ON al.artist_id = ar.artist_id
			JOIN genre g ON t.genre_id = g.genre_id
			LEFT JOIN invoice_line il ON t.track_id = il.track_id
			GROUP BY t.track_id, t.name, ar.name, g.name, t.unit_price
		)
		SELECT
			track_id, track_name, artist_name, genre, sales_count, total_revenue, unit_price,
			performance_rating, severity,
			unit_price * 10 AS potential_revenue,
			CASE
				WHEN performance_rating = 'Zero Sales' THEN 'Track has never been purchased'
				WHEN performance_rating = 'Low' THEN 'Track showing poor sales performance'
				ELSE 'Track requires attention'
			END AS alert_message
		FROM track_performance
		WHERE performance_rating IN ('Zero Sales', 'Low')
		ORDER BY
			CASE performance_rating WHEN 'Zero Sales' THEN 1 WHEN 'Low' THEN 2 ELSE 3 END,
			potential_revenue DESC,
			track_id
		` + limitClause(t.InventoryLimit)

	return queryAndScan(ctx, db, "inventory alerts", query, nil,
		func(rows *sql.Rows) (models.InventoryAlert, error) {
			var r models.InventoryAlert
			err := rows.Scan(num(&r.TrackID), str(&r.TrackName), str(&r.ArtistName), str(&r.Genre),
				num(&r.SalesCount), num(&r.TotalRevenue), num(&r.UnitPrice), str(&r.PerformanceRating),
				str(&r.Severity), num(&r.PotentialRevenue), str(&r.AlertMessage))
			return r, err
		})
}

// GetPerformanceAlerts returns employees whose all-time order count is below
// t.MediumPerformanceOrders, critical first.
func (db *DB) GetPerformanceAlerts(ctx context.Context, t models.AlertThresholds) ([]models.PerformanceAlert, error) {
	query := `
		WITH employee_performance AS (
			SELECT
				e.employee_id,
				e.first_name || ' ' || e.last_name AS employee_name,
				COUNT(DISTINCT c.customer_id) AS customer_count,
				COUNT(DISTINCT i.invoice_id) AS order_count,
				COALESCE(ROUND(SUM(i.total), 2), 0) AS total_sales
			FROM employee e
			LEFT JOIN customer c ON e.employee_id = c.support_rep_id
			LEFT JOIN invoice i ON c.customer_id = i.customer_id
			GROUP BY e.employee_id, e.first_name, e.last_name
		),
		performance_levels AS (
			SELECT
				*,
				CASE
					WHEN order_count < ? THEN 'Low Performance'
					WHEN order_count < ? THEN 'Medium Performance'
					ELSE 'High Performance'
				END AS performance_level,
				CASE
					WHEN order_count < ? THEN 'Warning'
					WHEN order_count < ? THEN 'Normal'
					ELSE 'Good'
				END AS metric_type
			FROM employee_performance
		)
		SELECT
			employee_id, employee_name, customer_count, order_count, total_sales,
			performance_level, metric_type,
			CASE
				WHEN performance_level = 'Low Performance' THEN 'Employee performance below expectations'
				ELSE 'Employee performance needs improvement'
			END AS alert_message,
			CASE
				WHEN performance_level = 'Low Performance' THEN 'Critical'
				ELSE 'Warning'
			END AS severity
		FROM performance_levels
		WHERE performance_level <> 'High Performance'
		ORDER BY
			CASE performance_level WHEN 'Low Performance' THEN 1 ELSE 2 END,
			total_sales ASC,
			employee_id`

	args := []any{
		t.LowPerformanceOrders, t.MediumPerformanceOrders,
		t.LowPerformanceOrders, t.MediumPerformanceOrders,
	}

	return queryAndScan(ctx, db, "performance alerts", query, args,
		func(rows *sql.Rows) (models.PerformanceAlert, error) {
			var r models.PerformanceAlert
			err := rows.Scan(num(&r.EmployeeID), str(&r.EmployeeName), num(&r.CustomerCount),
				num(&r.OrderCount), num(&r.TotalSales), str(&r.PerformanceLevel), str(&r.MetricType),
				str(&r.AlertMessage), str(&r.Severity))
			return r, err
		})
}

// GetFraudAlerts flags invoices in the t.FraudWindowDays window ending on f.AsOf by amount
// and line count. The first matching pattern wins.
func (db *DB) GetFraudAlerts(ctx context.Context, f models.Filter, t models.AlertThresholds) ([]models.FraudAlert, error) {
	query := `
		WITH suspicious_transactions AS (
			SELECT
				i.invoice_id,
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				i.invoice_date,
				i.total AS transaction_amount,
				COUNT(il.invoice_line_id) AS items_purchased,
				CASE
					WHEN i.total > ? AND COUNT(il.invoice_line_id) = 1 THEN 'High Value Single Item'
					WHEN COUNT(il.invoice_line_id) > ? THEN 'Bulk Purchase'
					WHEN i.total > ? THEN 'High Value Transaction'
					ELSE 'Normal'
				END AS transaction_pattern,
				CASE
					WHEN i.total > ? THEN 'Fraud'
					WHEN COUNT(il.invoice_line_id) > ? THEN 'Suspicious'
					ELSE 'Normal'
				END AS alert_type
			FROM invoice i
			JOIN customer c ON i.customer_id = c.customer_id
			JOIN invoice_line il ON i.invoice_id = il.invoice_id
			WHERE i.invoice_date >= CAST(? AS DATE) AND i.invoice_date < CAST(? AS DATE)
			GROUP BY i.invoice_id, c.customer_id, c.first_name, c.last_name, i.invoice_date, i.total
		)
		SELECT
			invoice_id, customer_id, customer_name, invoice_date, transaction_amount,
			items_purchased, transaction_pattern, alert_type,
			CASE alert_type WHEN 'Fraud' THEN 'High' WHEN 'Suspicious' THEN 'Medium' ELSE 'Low' END AS severity,
			CASE alert_type
				WHEN 'Fraud' THEN 'Potential fraudulent transaction detected'
				WHEN 'Suspicious' THEN 'Unusual purchasing pattern identified'
				ELSE 'Transaction flagged for review'
			END AS description
		FROM suspicious_transactions
		WHERE alert_type <> 'Normal'
		ORDER BY
			CASE alert_type WHEN 'Fraud' THEN 1 WHEN 'Suspicious' THEN 2 ELSE 3 END,
			transaction_amount DESC,
			invoice_id
		` + limitClause(t.FraudLimit)

	args := []any{
		t.HighValueSingleItem, t.BulkPurchase, t.FraudAmount,
		t.FraudAmount, t.SuspiciousItems,
		f.DaysBefore(t.FraudWindowDays), f.DayAfterAsOf(),
	}

	return queryAndScan(ctx, db, "fraud alerts", query, args,
		func(rows *sql.Rows) (models.FraudAlert, error) {
			var r models.FraudAlert
			err := rows.Scan(num(&r.InvoiceID), num(&r.CustomerID), str(&r.CustomerName), &r.InvoiceDate,
				num(&r.TransactionAmount), num(&r.ItemsPurchased), str(&r.TransactionPattern),
				str(&r.AlertType), str(&r.Severity), str(&r.Description))
			return r, err
		})
}

// System health scores per component and status.
const (
	databaseHealthyScore = 95.5
	applicationScore     = 98.2
	revenueHealthyScore  = 92.0
	degradedScore        = 75.0
)

// GetSystemHealth reports the database (live ping), the application, and the revenue system
// (healthy when an invoice exists within one day of f.AsOf). Worst status first.
func (db *DB) GetSystemHealth(ctx context.Context, f models.Filter) []models.SystemHealth {
	health := make([]models.SystemHealth, 0, 3)

	dbStatus := models.SystemHealth{
		SystemComponent:  "Database",
		SystemStatus:     "Healthy",
		PerformanceScore: databaseHealthyScore,
		StatusMessage:    "All queries executing within normal parameters",
	}
	if err := db.Ping(ctx); err != nil {
		dbStatus.SystemStatus = "Critical"
		dbStatus.PerformanceScore = 0
		dbStatus.StatusMessage = "Database unreachable: " + err.Error()
	} else if db.BreakerState() != "closed" {
		dbStatus.SystemStatus = "Warning"
		dbStatus.PerformanceScore = degradedScore
		dbStatus.StatusMessage = "Query circuit breaker is " + db.BreakerState()
	}
	health = append(health, dbStatus)

	health = append(health, models.SystemHealth{
		SystemComponent:  "Application",
		SystemStatus:     "Healthy",
		PerformanceScore: applicationScore,
		StatusMessage:    "Application responding normally",
	})

	revenue := models.SystemHealth{
		SystemComponent:  "Revenue System",
		SystemStatus:     "Healthy",
		PerformanceScore: revenueHealthyScore,
		StatusMessage:    "Revenue tracking operational",
	}
	var recent int64
	query := `
		SELECT COUNT(*)
		FROM invoice i
		WHERE i.invoice_date >= CAST(? AS DATE) AND i.invoice_date < CAST(? AS DATE)`
	err := db.queryRow(ctx, "revenue system health", query, []any{f.DaysBefore(1), f.DayAfterAsOf()}, num(&recent))
	switch {
	case err != nil:
		revenue.SystemStatus = "Critical"
		revenue.PerformanceScore = 0
		revenue.StatusMessage = "Revenue check failed: " + err.Error()
	case recent == 0:
		revenue.SystemStatus = "Warning"
		revenue.PerformanceScore = degradedScore
		revenue.StatusMessage = "No recent transactions detected"
	}
	health = append(health, revenue)

	slices.SortStableFunc(health, func(a, b models.SystemHealth) int {
		if c := cmp.Compare(statusOrder(a.SystemStatus), statusOrder(b.SystemStatus)); c != 0 {
			return c
		}
		return cmp.Compare(a.PerformanceScore, b.PerformanceScore)
	})
	return health
}

func statusOrder(status string) int {
	switch status {
	case "Critical":
		return 1
	case "Warning":
		return 2
	case "Healthy":
		return 3
	default:
		return 4
	}
}
