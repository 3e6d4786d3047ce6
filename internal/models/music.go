// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package models

import "time"

// TrackPerformance is a sold track with its revenue over the range.
type TrackPerformance struct {
	TrackName       string  `json:"track_name"`
	ArtistName      string  `json:"artist_name"`
	AlbumTitle      string  `json:"album_title"`
	Genre           string  `json:"genre"`
	TimesPurchased  int     `json:"times_purchased"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgPrice        float64 `json:"avg_price"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// GenreStats is the popularity of one genre over the range.
type GenreStats struct {
	Genre         string  `json:"genre"`
	TracksSold    int     `json:"tracks_sold"`
	Revenue       float64 `json:"revenue"`
	AvgPrice      float64 `json:"avg_price"`
	UniqueTracks  int     `json:"unique_tracks"`
	UniqueArtists int     `json:"unique_artists"`
}

// GenreRevenue is one genre's revenue over the range with its share of the total.
type GenreRevenue struct {
	Genre           string  `json:"genre"`
	UnitsSold       int     `json:"units_sold"`
	TotalRevenue    float64 `json:"total_revenue"`
	AvgPrice        float64 `json:"avg_price"`
	UniqueTracks    int     `json:"unique_tracks"`
	UniqueArtists   int     `json:"unique_artists"`
	AvgDuration     float64 `json:"avg_duration"`
	RevenueSharePct float64 `json:"revenue_share_pct"`
}

// ArtistInsight is an artist's catalogue and sales over the range.
type ArtistInsight struct {
	ArtistName       string  `json:"artist_name"`
	AlbumCount       int     `json:"album_count"`
	TrackCount       int     `json:"track_count"`
	TotalTracksSold  int     `json:"total_tracks_sold"`
	TotalRevenue     float64 `json:"total_revenue"`
	AvgPrice         float64 `json:"avg_price"`
	AvgTrackDuration float64 `json:"avg_track_duration"`
}

// AlbumAnalytics is an album's sales over the range.
type AlbumAnalytics struct {
	AlbumTitle           string  `json:"album_title"`
	ArtistName           string  `json:"artist_name"`
	TrackCount           int     `json:"track_count"`
	TotalSales           int     `json:"total_sales"`
	AlbumRevenue         float64 `json:"album_revenue"`
	AvgTrackPrice        float64 `json:"avg_track_price"`
	AvgTrackDuration     float64 `json:"avg_track_duration"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
}

// PlaylistPerformance is a playlist's composition and the all-time sales of its tracks.
// Playlists sharing a name are reported once, using the lowest playlist id.
type PlaylistPerformance struct {
	PlaylistName       string  `json:"playlist_name"`
	TrackCount         int     `json:"track_count"`
	AvgTrackDuration   float64 `json:"avg_track_duration"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	GenreDiversity     int     `json:"genre_diversity"`
	ArtistDiversity    int     `json:"artist_diversity"`
	TracksSold         int     `json:"tracks_sold"`
	Revenue            float64 `json:"revenue"`
}

// ContentDiscovery is a track's playlist presence against its sales.
type ContentDiscovery struct {
	TrackName           string `json:"track_name"`
	ArtistName          string `json:"artist_name"`
	PlaylistAppearances int    `json:"playlist_appearances"`
	TotalSales          int    `json:"total_sales"`
}

// GenreDailyTrend is one genre's sales on one day.
type GenreDailyTrend struct {
	SaleDate         time.Time `json:"sale_date"`
	Genre            string    `json:"genre"`
	QuantitySold     int       `json:"quantity_sold"`
	Revenue          float64   `json:"revenue"`
	UniqueTracksSold int       `json:"unique_tracks_sold"`
}
