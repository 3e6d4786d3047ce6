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

// GetTrackPerformance returns tracks sold at least p.MinTrackSales times in range, best
// sellers first, capped at p.TrackLimit.
func (db *DB) GetTrackPerformance(ctx context.Context, f models.Filter, p models.MusicParams) ([]models.TrackPerformance, error) {
	query := `
		SELECT
			t.name AS track_name,
			ar.name AS artist_name,
			al.title AS album_title,
			g.name AS genre,
			COUNT(il.invoice_line_id) AS times_purchased,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS total_revenue,
			ROUND(AVG(il.unit_price), 2) AS avg_price,
			ROUND(t.milliseconds / 1000.0 / 60.0, 2) AS duration_minutes
		FROM track t
		JOIN album al ON t.album_id = al.album_id
		JOIN artist ar ON al.artist_id = ar.artist_id
		JOIN genre g ON t.genre_id = g.genre_id
		JOIN invoice_line il ON t.track_id = il.track_id
		JOIN invoice i ON il.invoice_id = i.invoice_id
		WHERE ` + dateRangeClause + `
		GROUP BY t.track_id, t.name, ar.name, al.title, g.name, t.milliseconds
		HAVING COUNT(il.invoice_line_id) >= ?
		ORDER BY times_purchased DESC, t.track_id
		` + limitClause(p.TrackLimit)

	args := append(rangeArgs(f), p.MinTrackSales)

	return queryAndScan(ctx, db, "track performance", query, args,
		func(rows *sql.Rows) (models.TrackPerformance, error) {
			var t models.TrackPerformance
			err := rows.Scan(str(&t.TrackName), str(&t.ArtistName), str(&t.AlbumTitle), str(&t.Genre),
				num(&t.TimesPurchased), num(&t.TotalRevenue), num(&t.AvgPrice), num(&t.DurationMinutes))
			return t, err
		})
}

// GetGenreStats returns sales per genre in range, most tracks sold first.
func (db *DB) GetGenreStats(ctx context.Context, f models.Filter) ([]models.GenreStats, error) {
	query := `
		SELECT
			g.name AS genre,
			COUNT(il.invoice_line_id) AS tracks_sold,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS revenue,
			ROUND(AVG(il.unit_price), 2) AS avg_price,
			COUNT(DISTINCT t.track_id) AS unique_tracks,
			COUNT(DISTINCT al.artist_id) AS unique_artists
		FROM genre g
		JOIN track t ON g.genre_id = t.genre_id
		JOIN invoice_line il ON t.track_id = il.track_id
		JOIN invoice i ON il.invoice_id = i.invoice_id
		JOIN album al ON t.album_id = al.album_id
		WHERE ` + dateRangeClause + `
		GROUP BY g.genre_id, g.name
		ORDER BY tracks_sold DESC, g.name`

	return queryAndScan(ctx, db, "genre stats", query, rangeArgs(f),
		func(rows *sql.Rows) (models.GenreStats, error) {
			var g models.GenreStats
			err := rows.Scan(str(&g.Genre), num(&g.TracksSold), num(&g.Revenue), num(&g.AvgPrice),
				num(&g.UniqueTracks), num(&g.UniqueArtists))
			return g, err
		})
}

// GetArtistInsights returns artists with at least p.MinArtistAlbums albums sold in range,
// highest revenue first, capped at p.ArtistLimit.
func (db *DB) GetArtistInsights(ctx context.Context, f models.Filter, p models.MusicParams) ([]models.ArtistInsight, error) {
	query := `
		SELECT
			ar.name AS artist_name,
			COUNT(DISTINCT al.album_id) AS album_count,
			COUNT(DISTINCT t.track_id) AS track_count,
			COUNT(il.invoice_line_id) AS total_tracks_sold,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS total_revenue,
			ROUND(AVG(il.unit_price), 2) AS avg_price,
			ROUND(AVG(t.milliseconds) / 1000.0 / 60.0, 2) AS avg_track_duration
		FROM artist ar
		JOIN album al ON ar.artist_id = al.artist_id
		JOIN track t ON al.album_id = t.album_id
		JOIN invoice_line il ON t.track_id = il.track_id
		JOIN invoice i ON il.invoice_id = i.invoice_id
		WHERE ` + dateRangeClause + `
		GROUP BY ar.artist_id, ar.name
		HAVING COUNT(DISTINCT al.album_id) >= ?
		ORDER BY total_revenue DESC, ar.artist_id
		` + limitClause(p.ArtistLimit)

	args := append(rangeArgs(f), p.MinArtistAlbums)

	return queryAndScan(ctx, db, "artist insights", query, args,
		func(rows *sql.Rows) (models.ArtistInsight, error) {
			var a models.ArtistInsight
			err := rows.Scan(str(&a.ArtistName), num(&a.AlbumCount), num(&a.TrackCount),
				num(&a.TotalTracksSold), num(&a.TotalRevenue), num(&a.AvgPrice), num(&a.AvgTrackDuration))
			return a, err
		})
}

// GetAlbumAnalytics returns sales per album in range, highest revenue first.
func (db *DB) GetAlbumAnalytics(ctx context.Context, f models.Filter) ([]models.AlbumAnalytics, error) {
	query := `
		SELECT
			al.title AS album_title,
			ar.name AS artist_name,
			COUNT(DISTINCT t.track_id) AS track_count,
			COUNT(il.invoice_line_id) AS total_sales,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS album_revenue,
			ROUND(AVG(il.unit_price), 2) AS avg_track_price,
			ROUND(AVG(t.milliseconds) / 1000.0 / 60.0, 2) AS avg_track_duration,
			ROUND(SUM(t.milliseconds) / 1000.0 / 60.0, 2) AS total_duration_minutes
		FROM album al
		JOIN artist ar ON al.artist_id = ar.artist_id
		JOIN track t ON al.album_id = t.album_id
		JOIN invoice_line il ON t.track_id = il.track_id
		JOIN invoice i ON il.invoice_id = i.invoice_id
		WHERE ` + dateRangeClause + `
		GROUP BY al.album_id, al.title, ar.name
		ORDER BY album_revenue DESC, al.album_id`

	return queryAndScan(ctx, db, "album analytics", query, rangeArgs(f),
		func(rows *sql.Rows) (models.AlbumAnalytics, error) {
			var a models.AlbumAnalytics
			err := rows.Scan(str(&a.AlbumTitle), str(&a.ArtistName), num(&a.TrackCount),
				num(&a.TotalSales), num(&a.AlbumRevenue), num(&a.AvgTrackPrice),
				num(&a.AvgTrackDuration), num(&a.TotalDurationMinutes))
			return a, err
		})
}

// GetPlaylistPerformance returns playlist composition with the all-time sales of the
// listed tracks. Playlists sharing a name are reported once, from the lowest id.
func (db *DB) GetPlaylistPerformance(ctx context.Context) ([]models.PlaylistPerformance, error) {
	query := `
		WITH track_sales AS (
			SELECT
				il.track_id,
				COUNT(il.invoice_line_id) AS tracks_sold,
				SUM(il.unit_price * il.quantity) AS revenue
			FROM invoice_line il
			GROUP BY il.track_id
		),
		playlist_stats AS (
			SELECT
				p.playlist_id,
				p.name AS playlist_name,
				COUNT(pt.track_id) AS track_count,
				ROUND(AVG(t.milliseconds) / 1000.0 / 60.0, 2) AS avg_track_duration,
				ROUND(SUM(t.milliseconds) / 1000.0 / 60.0 / 60.0, 2) AS total_duration_hours,
				COUNT(DISTINCT t.genre_id) AS genre_diversity,
				COUNT(DISTINCT al.artist_id) AS artist_diversity,
				COALESCE(SUM(ts.tracks_sold), 0) AS tracks_sold,
				COALESCE(ROUND(SUM(ts.revenue), 2), 0) AS revenue
			FROM playlist p
			JOIN playlist_track pt ON p.playlist_id = pt.playlist_id
			JOIN track t ON pt.track_id = t.track_id
			JOIN album al ON t.album_id = al.album_id
			LEFT JOIN track_sales ts ON ts.track_id = t.track_id
			GROUP BY p.playlist_id, p.name
		),
		dedup AS (
			SELECT
				*,
				ROW_NUMBER() OVER (PARTITION BY playlist_name ORDER BY playlist_id) AS rn
			FROM playlist_stats
		)
		SELECT
			playlist_name, track_count, avg_track_duration, total_duration_hours,
			genre_diversity, artist_diversity, tracks_sold, revenue
		FROM dedup
		WHERE rn = 1
		ORDER BY track_count DESC, playlist_id`

	return queryAndScan(ctx, db, "playlist performance", query, nil,
		func(rows *sql.Rows) (models.PlaylistPerformance, error) {
			var p models.PlaylistPerformance
			err := rows.Scan(str(&p.PlaylistName), num(&p.TrackCount), num(&p.AvgTrackDuration),
				num(&p.TotalDurationHours), num(&p.GenreDiversity), num(&p.ArtistDiversity),
				num(&p.TracksSold), num(&p.Revenue))
			return p, err
		})
}

// GetContentDiscovery returns tracks listed in more than p.MinPlaylistAppearances
// playlists with their all-time sales, capped at p.PlaylistLimit.
func (db *DB) GetContentDiscovery(ctx context.Context, p models.MusicParams) ([]models.ContentDiscovery, error) {
	query := `
		SELECT
			t.name AS track_name,
			ar.name AS artist_name,
			COUNT(DISTINCT pt.playlist_id) AS playlist_appearances,
			COALESCE(sales.total_sales, 0) AS total_sales
		FROM track t
		JOIN album al ON t.album_id = al.album_id
		JOIN artist ar ON al.artist_id = ar.artist_id
		JOIN playlist_track pt ON t.track_id = pt.track_id
		LEFT JOIN (
			SELECT il.track_id, COUNT(il.invoice_line_id) AS total_sales
			FROM invoice_line il
			GROUP BY il.track_id
		) sales ON t.track_id = sales.track_id
		GROUP BY t.track_id, t.name, ar.name, sales.total_sales
		HAVING COUNT(DISTINCT pt.playlist_id) > ?
		ORDER BY playlist_appearances DESC, total_sales DESC, t.track_id
		` + limitClause(p.PlaylistLimit)

	return queryAndScan(ctx, db, "content discovery", query, []any{p.MinPlaylistAppearances},
		func(rows *sql.Rows) (models.ContentDiscovery, error) {
			var c models.ContentDiscovery
			err := rows.Scan(str(&c.TrackName), str(&c.ArtistName), num(&c.PlaylistAppearances),
				num(&c.TotalSales))
			return c, err
		})
}

// GetGenreRevenue returns revenue per genre in range with each genre's share of the total.
func (db *DB) GetGenreRevenue(ctx context.Context, f models.Filter) ([]models.GenreRevenue, error) {
	query := `
		SELECT
			g.name AS genre,
			COUNT(il.invoice_line_id) AS units_sold,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS total_revenue,
			ROUND(AVG(il.unit_price), 2) AS avg_price,
			COUNT(DISTINCT t.track_id) AS unique_tracks,
			COUNT(DISTINCT al.artist_id) AS unique_artists,
			ROUND(AVG(t.milliseconds) / 1000.0 / 60.0, 2) AS avg_duration,
			ROUND(100.0 * SUM(il.unit_price * il.quantity)
				/ NULLIF(SUM(SUM(il.unit_price * il.quantity)) OVER (), 0), 2) AS revenue_share_pct
		FROM invoice_line il
		JOIN invoice i ON il.invoice_id = i.invoice_id
		JOIN track t ON il.track_id = t.track_id
		JOIN album al ON t.album_id = al.album_id
		JOIN genre g ON t.genre_id = g.genre_id
		WHERE ` + dateRangeClause + `
		GROUP BY g.genre_id, g.name
		ORDER BY total_revenue DESC, g.name`

	return queryAndScan(ctx, db, "genre revenue", query, rangeArgs(f),
		func(rows *sql.Rows) (models.GenreRevenue, error) {
			var g models.GenreRevenue
			err := rows.Scan(str(&g.Genre), num(&g.UnitsSold), num(&g.TotalRevenue), num(&g.AvgPrice),
				num(&g.UniqueTracks), num(&g.UniqueArtists), num(&g.AvgDuration), num(&g.RevenueSharePct))
			return g, err
		})
}

// GetGenreDailyTrends returns sales per day and genre in range, optionally restricted to
// the genres named in p.Genres.
func (db *DB) GetGenreDailyTrends(ctx context.Context, f models.Filter, p models.MusicParams) ([]models.GenreDailyTrend, error) {
	args := rangeArgs(f)
	genreClause := ""
	if len(p.Genres) > 0 {
		genreClause = " AND g.name IN (" + inPlaceholders(len(p.Genres)) + ")"
		args = append(args, stringArgs(p.Genres)...)
	}

	query := `
		SELECT
			CAST(i.invoice_date AS DATE) AS sale_date,
			g.name AS genre,
			COUNT(il.invoice_line_id) AS quantity_sold,
			ROUND(SUM(il.unit_price * il.quantity), 2) AS revenue,
			COUNT(DISTINCT t.track_id) AS unique_tracks_sold
		FROM invoice i
		JOIN invoice_line il ON i.invoice_id = il.invoice_id
		JOIN track t ON il.track_id = t.track_id
		JOIN genre g ON t.genre_id = g.genre_id
		WHERE ` + dateRangeClause + genreClause + `
		GROUP BY CAST(i.invoice_date AS DATE), g.genre_id, g.name
		ORDER BY sale_date, genre`

	return queryAndScan(ctx, db, "genre daily trends", query, args,
		func(rows *sql.Rows) (models.GenreDailyTrend, error) {
			var g models.GenreDailyTrend
			err := rows.Scan(&g.SaleDate, str(&g.Genre), num(&g.QuantitySold), num(&g.Revenue),
				num(&g.UniqueTracksSold))
			return g, err
		})
}
