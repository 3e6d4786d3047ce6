// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"database/sql"

	"github.com/tomtom215/groovify/internal/models"
)

// GetRFMSegments classifies every customer with an invoice in range into an RFM cluster.
// Recency is measured in days from the latest invoice in range to f.AsOf. The first
// matching rule wins.
func (db *DB) GetRFMSegments(ctx context.Context, f models.Filter) ([]models.RFMSegment, error) {
	query := `
		WITH customer_rfm AS (
			SELECT
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				CAST(? AS DATE) - CAST(MAX(i.invoice_date) AS DATE) AS recency_days,
				COUNT(i.invoice_id) AS frequency,
				ROUND(SUM(i.total), 2) AS monetary
			FROM customer c
			JOIN invoice i ON c.customer_id = i.customer_id
			WHERE ` + dateRangeClause + `
			GROUP BY c.customer_id, c.first_name, c.last_name
		),
		customer_music AS (
			SELECT
				i.customer_id,
				COUNT(DISTINCT t.genre_id) AS nb_different_genres,
				COUNT(il.invoice_line_id) AS nb_purchased_tracks
			FROM invoice i
			JOIN invoice_line il ON i.invoice_id = il.invoice_id
			JOIN track t ON il.track_id = t.track_id
			WHERE ` + dateRangeClause + `
			GROUP BY i.customer_id
		)
		SELECT
			rfm.customer_id,
			rfm.customer_name,
			rfm.recency_days,
			rfm.frequency,
			rfm.monetary,
			COALESCE(mp.nb_different_genres, 0) AS nb_different_genres,
			COALESCE(mp.nb_purchased_tracks, 0) AS nb_purchased_tracks,
			CASE
				WHEN rfm.recency_days <= 90 AND rfm.frequency >= 5 AND rfm.monetary >= 40 THEN 'Champions'
				WHEN rfm.recency_days <= 90 AND rfm.frequency >= 3 AND rfm.monetary >= 25 THEN 'Loyal Customers'
				WHEN rfm.recency_days <= 180 AND rfm.frequency >= 2 THEN 'Potential Loyalists'
				WHEN rfm.recency_days <= 90 AND rfm.frequency < 3 THEN 'New Customers'
				WHEN rfm.recency_days > 180 AND rfm.recency_days <= 365 THEN 'At Risk'
				WHEN rfm.recency_days > 365 THEN 'Lost'
				ELSE 'Others'
			END AS rfm_cluster
		FROM customer_rfm rfm
		LEFT JOIN customer_music mp ON rfm.customer_id = mp.customer_id
		ORDER BY rfm.monetary DESC, rfm.customer_id`

	args := append([]any{f.AsOfParam()}, rangeArgs(f)...)
	args = append(args, rangeArgs(f)...)

	return queryAndScan(ctx, db, "rfm segments", query, args,
		func(rows *sql.Rows) (models.RFMSegment, error) {
			var s models.RFMSegment
			err := rows.Scan(num(&s.CustomerID), str(&s.CustomerName), num(&s.RecencyDays),
				num(&s.Frequency), num(&s.Monetary), num(&s.NbDifferentGenres),
				num(&s.NbPurchasedTracks), str(&s.RFMCluster))
			return s, err
		})
}

// GetCustomerJourneys returns each purchasing customer's lifecycle, biggest spenders first.
func (db *DB) GetCustomerJourneys(ctx context.Context, f models.Filter) ([]models.CustomerJourney, error) {
	query := `
		WITH customer_timeline AS (
			SELECT
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				c.country,
				c.city,
				MIN(i.invoice_date) AS first_purchase,
				MAX(i.invoice_date) AS last_purchase,
				COUNT(i.invoice_id) AS total_orders,
				ROUND(SUM(i.total), 2) AS total_spent,
				ROUND(AVG(i.total), 2) AS avg_order_value,
				CAST(MAX(i.invoice_date) AS DATE) - CAST(MIN(i.invoice_date) AS DATE) AS customer_lifespan_days
			FROM customer c
			JOIN invoice i ON c.customer_id = i.customer_id
			WHERE ` + dateRangeClause + `
			GROUP BY c.customer_id, c.first_name, c.last_name, c.country, c.city
		)
		SELECT
			customer_id, customer_name, country, city, first_purchase, last_purchase,
			total_orders, total_spent, avg_order_value, customer_lifespan_days,
			CASE
				WHEN total_orders = 1 THEN 'One-time'
				WHEN total_orders <= 3 THEN 'Occasional'
				WHEN total_orders <= 6 THEN 'Regular'
				ELSE 'Frequent'
			END AS customer_type,
			CASE
				WHEN total_spent >= 50 THEN 'High Value'
				WHEN total_spent >= 25 THEN 'Medium Value'
				ELSE 'Low Value'
			END AS value_segment
		FROM customer_timeline
		ORDER BY total_spent DESC, customer_id`

	return queryAndScan(ctx, db, "customer journeys", query, rangeArgs(f),
		func(rows *sql.Rows) (models.CustomerJourney, error) {
			var j models.CustomerJourney
			err := rows.Scan(num(&j.CustomerID), str(&j.CustomerName), str(&j.Country), str(&j.City),
				&j.FirstPurchase, &j.LastPurchase, num(&j.TotalOrders), num(&j.TotalSpent),
				num(&j.AvgOrderValue), num(&j.CustomerLifespanDays),
				str(&j.CustomerType), str(&j.ValueSegment))
			return j, err
		})
}

// GetChurnAnalysis classifies every customer by days since their last purchase in range.
// Customers without purchases in range are "Never Purchased".
func (db *DB) GetChurnAnalysis(ctx context.Context, f models.Filter, p models.ChurnParams) ([]models.ChurnRow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	query := `
		WITH customer_activity AS (
			SELECT
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				c.country,
				MAX(i.invoice_date) AS last_purchase_date,
				COUNT(i.invoice_id) AS total_orders,
				ROUND(SUM(i.total), 2) AS total_value,
				ROUND(AVG(i.total), 2) AS avg_order_value,
				CAST(? AS DATE) - CAST(MAX(i.invoice_date) AS DATE) AS days_since_last_purchase
			FROM customer c
			LEFT JOIN invoice i ON c.customer_id = i.customer_id
				AND ` + dateRangeClause + `
			GROUP BY c.customer_id, c.first_name, c.last_name, c.country
		)
		SELECT
			customer_id, customer_name, country, last_purchase_date, total_orders,
			total_value, avg_order_value, days_since_last_purchase,
			CASE
				WHEN days_since_last_purchase IS NULL THEN 'Never Purchased'
				WHEN days_since_last_purchase <= ? THEN 'Active'
				WHEN days_since_last_purchase <= ? THEN 'At Risk'
				ELSE 'Churn Risk'
			END AS churn_status,
			CASE
				WHEN total_value >= 50 THEN 'High'
				WHEN total_value >= 25 THEN 'Medium'
				WHEN total_value > 0 THEN 'Low'
				ELSE 'Zero'
			END AS value_tier
		FROM customer_activity
		ORDER BY total_value DESC NULLS LAST, customer_id`

	args := append([]any{f.AsOfParam()}, rangeArgs(f)...)
	args = append(args, 30*p.ActiveMonths, 30*p.RiskMonths)

	return queryAndScan(ctx, db, "churn analysis", query, args,
		func(rows *sql.Rows) (models.ChurnRow, error) {
			var r models.ChurnRow
			var last sql.NullTime
			err := rows.Scan(num(&r.CustomerID), str(&r.CustomerName), str(&r.Country), &last,
				num(&r.TotalOrders), num(&r.TotalValue), num(&r.AvgOrderValue),
				optNum(&r.DaysSinceLastPurchase), str(&r.ChurnStatus), str(&r.ValueTier))
			if last.Valid {
				r.LastPurchaseDate = &last.Time
			}
			return r, err
		})
}

// GetCustomerLocations aggregates customers and their revenue in range per location.
func (db *DB) GetCustomerLocations(ctx context.Context, f models.Filter) ([]models.CustomerLocation, error) {
	query := `
		SELECT
			c.country,
			c.state,
			c.city,
			COUNT(DISTINCT c.customer_id) AS customer_count,
			COUNT(DISTINCT i.invoice_id) AS total_orders,
			COALESCE(ROUND(SUM(i.total), 2), 0) AS total_revenue,
			COALESCE(ROUND(AVG(i.total), 2), 0) AS avg_order_value,
			COALESCE(ROUND(SUM(i.total) / NULLIF(COUNT(DISTINCT c.customer_id), 0), 2), 0) AS revenue_per_customer
		FROM customer c
		LEFT JOIN invoice i ON c.customer_id = i.customer_id
			AND ` + dateRangeClause + `
		GROUP BY c.country, c.state, c.city
		ORDER BY total_revenue DESC, c.country, c.state, c.city`

	return queryAndScan(ctx, db, "customer locations", query, rangeArgs(f),
		func(rows *sql.Rows) (models.CustomerLocation, error) {
			var l models.CustomerLocation
			err := rows.Scan(str(&l.Country), str(&l.State), str(&l.City), num(&l.CustomerCount),
				num(&l.TotalOrders), num(&l.TotalRevenue), num(&l.AvgOrderValue),
				num(&l.RevenuePerCustomer))
			return l, err
		})
}

// GetCustomerPreferences returns each customer's most purchased genre and breadth of
// purchases. Ties between genres resolve to the alphabetically first genre.
func (db *DB) GetCustomerPreferences(ctx context.Context, f models.Filter) ([]models.CustomerPreference, error) {
	query := `
		WITH customer_genre_prefs AS (
			SELECT
				c.customer_id,
				c.first_name || ' ' || c.last_name AS customer_name,
				g.name AS preferred_genre,
				COUNT(il.invoice_line_id) AS tracks_purchased,
				SUM(il.unit_price * il.quantity) AS spent_on_genre,
				RANK() OVER (
					PARTITION BY c.customer_id
					ORDER BY COUNT(il.invoice_line_id) DESC, g.name
				) AS genre_rank
			FROM customer c
			JOIN invoice i ON c.customer_id = i.customer_id
			JOIN invoice_line il ON i.invoice_id = il.invoice_id
			JOIN track t ON il.track_id = t.track_id
			JOIN genre g ON t.genre_id = g.genre_id
			WHERE ` + dateRangeClause + `
			GROUP BY c.customer_id, c.first_name, c.last_name, g.genre_id, g.name
		),
		customer_totals AS (
			SELECT
				i.customer_id,
				COUNT(il.invoice_line_id) AS total_tracks,
				SUM(il.unit_price * il.quantity) AS total_spent,
				COUNT(DISTINCT t.genre_id) AS genres_explored,
				COUNT(DISTINCT al.artist_id) AS artists_explored,
				COUNT(DISTINCT t.album_id) AS albums_explored,
				SUM(t.milliseconds) / 1000.0 / 60.0 AS total_minutes_purchased
			FROM invoice i
			JOIN invoice_line il ON i.invoice_id = il.invoice_id
			JOIN track t ON il.track_id = t.track_id
			LEFT JOIN album al ON t.album_id = al.album_id
			WHERE ` + dateRangeClause + `
			GROUP BY i.customer_id
		)
		SELECT
			cgp.customer_id,
			cgp.customer_name,
			cgp.preferred_genre,
			cgp.tracks_purchased AS tracks_in_preferred_genre,
			ROUND(cgp.spent_on_genre, 2) AS spent_on_genre,
			ct.total_tracks,
			ROUND(ct.total_spent, 2) AS total_spent,
			ct.genres_explored,
			ct.artists_explored,
			ct.albums_explored,
			ROUND(ct.total_minutes_purchased, 1) AS total_minutes_purchased,
			ROUND(cgp.spent_on_genre * 100.0 / NULLIF(ct.total_spent, 0), 1) AS genre_preference_pct
		FROM customer_genre_prefs cgp
		JOIN customer_totals ct ON cgp.customer_id = ct.customer_id
		WHERE cgp.genre_rank = 1
		ORDER BY ct.total_spent DESC, cgp.customer_id`

	args := append(rangeArgs(f), rangeArgs(f)...)

	return queryAndScan(ctx, db, "customer preferences", query, args,
		func(rows *sql.Rows) (models.CustomerPreference, error) {
			var p models.CustomerPreference
			err := rows.Scan(num(&p.CustomerID), str(&p.CustomerName), str(&p.PreferredGenre),
				num(&p.TracksInPreferredGenre), num(&p.SpentOnGenre), num(&p.TotalTracks),
				num(&p.TotalSpent), num(&p.GenresExplored), num(&p.ArtistsExplored),
				num(&p.AlbumsExplored), num(&p.TotalMinutesPurchased), num(&p.GenrePreferencePct))
			return p, err
		})
}

// GetCohortRetention returns the retention matrix. Cohorts are fixed by each customer's
// first purchase ever; only purchases in range populate the cells. period_number counts
// whole calendar months since the cohort month.
func (db *DB) GetCohortRetention(ctx context.Context, f models.Filter) ([]models.CohortCell, error) {
	query := `
		WITH customer_cohorts AS (
			SELECT
				i.customer_id,
				DATE_TRUNC('month', MIN(i.invoice_date)) AS cohort_month
			FROM invoice i
			GROUP BY i.customer_id
		),
		customer_purchases AS (
			SELECT
				cc.customer_id,
				cc.cohort_month,
				DATE_TRUNC('month', i.invoice_date) AS purchase_month,
				SUM(i.total) AS monthly_revenue
			FROM customer_cohorts cc
			JOIN invoice i ON cc.customer_id = i.customer_id
			WHERE ` + dateRangeClause + `
			GROUP BY cc.customer_id, cc.cohort_month, DATE_TRUNC('month', i.invoice_date)
		),
		cohort_sizes AS (
			SELECT cohort_month, COUNT(DISTINCT customer_id) AS cohort_size
			FROM customer_cohorts
			GROUP BY cohort_month
		)
		SELECT
			cp.cohort_month,
			cp.purchase_month,
			CAST((EXTRACT(YEAR FROM cp.purchase_month) - EXTRACT(YEAR FROM cp.cohort_month)) * 12
				+ (EXTRACT(MONTH FROM cp.purchase_month) - EXTRACT(MONTH FROM cp.cohort_month)) AS INTEGER) AS period_number,
			COUNT(DISTINCT cp.customer_id) AS customers,
			cs.cohort_size,
			ROUND(COUNT(DISTINCT cp.customer_id) * 100.0 / cs.cohort_size, 2) AS retention_rate,
			ROUND(SUM(cp.monthly_revenue), 2) AS cohort_revenue
		FROM customer_purchases cp
		JOIN cohort_sizes cs ON cp.cohort_month = cs.cohort_month
		GROUP BY cp.cohort_month, cp.purchase_month, cs.cohort_size
		ORDER BY cp.cohort_month, cp.purchase_month`

	return queryAndScan(ctx, db, "cohort retention", query, rangeArgs(f),
		func(rows *sql.Rows) (models.CohortCell, error) {
			var c models.CohortCell
			err := rows.Scan(&c.CohortMonth, &c.PurchaseMonth, num(&c.PeriodNumber),
				num(&c.Customers), num(&c.CohortSize), num(&c.RetentionRate), num(&c.CohortRevenue))
			return c, err
		})
}

// GetTopClients returns every purchasing customer's spending and breadth, highest spending
// first. Selection of the top N, ranking and profiles happen in shaping.
func (db *DB) GetTopClients(ctx context.Context, f models.Filter) ([]models.TopClient, error) {
	query := `
		WITH customer_totals AS (
			SELECT
				i.customer_id,
				COUNT(DISTINCT i.invoice_id) AS nb_orders,
				COUNT(il.invoice_line_id) AS nb_purchased_tracks,
				SUM(il.unit_price * il.quantity) AS total_spending,
				COUNT(DISTINCT t.genre_id) AS nb_different_genres,
				COUNT(DISTINCT al.artist_id) AS nb_different_artists,
				COUNT(DISTINCT al.album_id) AS nb_different_albums,
				SUM(t.milliseconds) / 1000.0 / 60.0 AS total_minutes,
				MIN(i.invoice_date) AS first_order,
				MAX(i.invoice_date) AS last_order
			FROM invoice i
			JOIN invoice_line il ON i.invoice_id = il.invoice_id
			JOIN track t ON il.track_id = t.track_id
			JOIN album al ON t.album_id = al.album_id
			WHERE ` + dateRangeClause + `
			GROUP BY i.customer_id
		)
		SELECT
			c.customer_id,
			c.first_name || ' ' || c.last_name AS client,
			c.country,
			ct.nb_orders,
			ct.nb_purchased_tracks,
			ROUND(ct.total_minutes, 1) AS total_minutes,
			ct.nb_different_genres,
			ct.nb_different_artists,
			ct.nb_different_albums,
			ROUND(ct.total_spending, 2) AS total_spending,
			ROUND(ct.total_spending / NULLIF(ct.nb_orders, 0), 2) AS avg_basket,
			ct.first_order,
			ct.last_order
		FROM customer c
		JOIN customer_totals ct ON ct.customer_id = c.customer_id
		ORDER BY ct.total_spending DESC, c.customer_id`

	return queryAndScan(ctx, db, "top clients", query, rangeArgs(f),
		func(rows *sql.Rows) (models.TopClient, error) {
			var c models.TopClient
			err := rows.Scan(num(&c.CustomerID), str(&c.Client), str(&c.Country), num(&c.NbOrders),
				num(&c.NbPurchasedTracks), num(&c.TotalMinutes), num(&c.NbDifferentGenres),
				num(&c.NbDifferentArtists), num(&c.NbDifferentAlbums), num(&c.TotalSpending),
				num(&c.AvgBasket), &c.FirstOrder, &c.LastOrder)
			return c, err
		})
}
