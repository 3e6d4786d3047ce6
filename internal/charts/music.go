// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package charts

import (
	"github.com/tomtom215/groovify/internal/models"
	"github.com/tomtom215/groovify/internal/shaping"
)

// GenreRevenueShare draws the revenue split by genre.
func GenreRevenueShare(rows []models.GenreRevenue) Spec {
	return Pie("Revenue by Genre", rows,
		func(r models.GenreRevenue) string { return r.Genre },
		func(r models.GenreRevenue) float64 { return r.TotalRevenue },
		Axes{Hover: []string{"units_sold", "revenue_share_pct"}})
}

// TopTracks draws the n best-selling tracks.
func TopTracks(rows []models.TrackPerformance, n int) Spec {
	return Build(KindHorizontalBar, "Top Tracks by Sales", shaping.TopN(rows, n), Mapping[models.TrackPerformance]{
		X:     func(r models.TrackPerformance) any { return r.TrackName },
		Y:     func(r models.TrackPerformance) float64 { return float64(r.TimesPurchased) },
		Color: func(r models.TrackPerformance) any { return r.Genre },
	}, Axes{X: "Track", Y: "Times Purchased", Hover: []string{"artist_name", "total_revenue"}})
}

// GenreSales draws tracks sold per genre.
func GenreSales(rows []models.GenreStats) Spec {
	return Build(KindBar, "Tracks Sold by Genre", rows, Mapping[models.GenreStats]{
		X:     func(r models.GenreStats) any { return r.Genre },
		Y:     func(r models.GenreStats) float64 { return float64(r.TracksSold) },
		Color: func(r models.GenreStats) any { return r.Revenue },
	}, Axes{X: "Genre", Y: "Tracks Sold", ColorScale: ScaleViridis})
}

// ArtistPerformance plots catalogue size against revenue per artist.
func ArtistPerformance(rows []models.ArtistInsight) Spec {
	return Build(KindScatter, "Artist Performance Summary", rows, Mapping[models.ArtistInsight]{
		X:     func(r models.ArtistInsight) any { return r.TrackCount },
		Y:     func(r models.ArtistInsight) float64 { return r.TotalRevenue },
		Size:  func(r models.ArtistInsight) float64 { return float64(r.TotalTracksSold) },
		Color: func(r models.ArtistInsight) any { return r.AlbumCount },
		Label: func(r models.ArtistInsight) string { return r.ArtistName },
	}, Axes{X: "Tracks", Y: "Revenue ($)", ColorScale: ScaleViridis})
}

// AlbumDuration plots album length against track count.
func AlbumDuration(rows []models.AlbumAnalytics) Spec {
	return Build(KindScatter, "Duration vs Track Count", rows, Mapping[models.AlbumAnalytics]{
		X:     func(r models.AlbumAnalytics) any { return r.TrackCount },
		Y:     func(r models.AlbumAnalytics) float64 { return r.TotalDurationMinutes },
		Size:  func(r models.AlbumAnalytics) float64 { return r.AlbumRevenue },
		Label: func(r models.AlbumAnalytics) string { return r.AlbumTitle },
	}, Axes{X: "Tracks", Y: "Duration (min)"})
}

// PlaylistSize draws the track count of each playlist.
func PlaylistSize(rows []models.PlaylistPerformance) Spec {
	return Build(KindBar, "Playlist Size", rows, Mapping[models.PlaylistPerformance]{
		X:     func(r models.PlaylistPerformance) any { return r.PlaylistName },
		Y:     func(r models.PlaylistPerformance) float64 { return float64(r.TrackCount) },
		Color: func(r models.PlaylistPerformance) any { return r.GenreDiversity },
	}, Axes{X: "Playlist", Y: "Tracks", ColorScale: ScaleBlues, Hover: []string{"tracks_sold", "revenue"}})
}

// ContentDiscovery draws playlist appearances of the most featured tracks.
func ContentDiscovery(rows []models.ContentDiscovery) Spec {
	return Build(KindHorizontalBar, "Most Featured Tracks", rows, Mapping[models.ContentDiscovery]{
		X:     func(r models.ContentDiscovery) any { return r.TrackName },
		Y:     func(r models.ContentDiscovery) float64 { return float64(r.PlaylistAppearances) },
		Color: func(r models.ContentDiscovery) any { return r.TotalSales },
	}, Axes{X: "Track", Y: "Playlist Appearances", ColorScale: ScaleViridis})
}

// GenreTrends draws daily revenue with one line per genre.
func GenreTrends(rows []models.GenreDailyTrend) Spec {
	return Build(KindLine, "Genre Trends Over Time", rows, Mapping[models.GenreDailyTrend]{
		X:     func(r models.GenreDailyTrend) any { return r.SaleDate.Format(models.DateLayout) },
		Y:     func(r models.GenreDailyTrend) float64 { return r.Revenue },
		Group: func(r models.GenreDailyTrend) string { return r.Genre },
	}, Axes{X: "Date", Y: "Revenue ($)"})
}
