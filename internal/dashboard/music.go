// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"

	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/models"
)

// topTracksCharted is the number of tracks drawn in the sales chart.
const topTracksCharted = 20

// MusicRequest parameterises the Music page.
type MusicRequest struct {
	Filter models.Filter
	Params models.MusicParams
}

// withDefaults fills zero limits and thresholds from the configuration. Genres are kept.
func (s *Service) withDefaults(p models.MusicParams) models.MusicParams {
	d := s.MusicParams()
	if p.MinTrackSales <= 0 {
		p.MinTrackSales = d.MinTrackSales
	}
	if p.TrackLimit <= 0 {
		p.TrackLimit = d.TrackLimit
	}
	if p.MinArtistAlbums <= 0 {
		p.MinArtistAlbums = d.MinArtistAlbums
	}
	if p.ArtistLimit <= 0 {
		p.ArtistLimit = d.ArtistLimit
	}
	if p.MinPlaylistAppearances <= 0 {
		p.MinPlaylistAppearances = d.MinPlaylistAppearances
	}
	if p.PlaylistLimit <= 0 {
		p.PlaylistLimit = d.PlaylistLimit
	}
	return p
}

// Music renders genre, track, artist, album and playlist analytics.
func (s *Service) Music(ctx context.Context, req MusicRequest) *Page {
	f := req.Filter
	p := s.withDefaults(req.Params)

	return s.render(ctx, PageMusic, &f, []task{
		{name: "genre_revenue", title: "Revenue by Genre", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "genre revenue", filterParams(f), func(ctx context.Context) ([]models.GenreRevenue, error) {
				return s.db.GetGenreRevenue(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.GenreRevenueShare(rows))
		}},
		{name: "tracks", title: "Track Performance", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "track performance", filterParams(f, p.MinTrackSales, p.TrackLimit), func(ctx context.Context) ([]models.TrackPerformance, error) {
				return s.db.GetTrackPerformance(ctx, f, p)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.TopTracks(rows, topTracksCharted))
		}},
		{name: "genres", title: "Genre Analysis", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "genre stats", filterParams(f), func(ctx context.Context) ([]models.GenreStats, error) {
				return s.db.GetGenreStats(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.GenreSales(rows))
		}},
		{name: "artists", title: "Artist Insights", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "artist insights", filterParams(f, p.MinArtistAlbums, p.ArtistLimit), func(ctx context.Context) ([]models.ArtistInsight, error) {
				return s.db.GetArtistInsights(ctx, f, p)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.ArtistPerformance(rows))
		}},
		{name: "albums", title: "Album Analytics", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "album analytics", filterParams(f), func(ctx context.Context) ([]models.AlbumAnalytics, error) {
				return s.db.GetAlbumAnalytics(ctx, f)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.AlbumDuration(rows))
		}},
		{name: "playlists", title: "Playlist Performance", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "playlist performance", nil, s.db.GetPlaylistPerformance)
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.PlaylistSize(rows))
		}},
		{name: "discovery", title: "Content Discovery", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "content discovery", []any{p.MinPlaylistAppearances, p.PlaylistLimit}, func(ctx context.Context) ([]models.ContentDiscovery, error) {
				return s.db.GetContentDiscovery(ctx, p)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.ContentDiscovery(rows))
		}},
		{name: "genre_trends", title: "Genre Trends", run: func(ctx context.Context) Result {
			rows, err := load(ctx, s, "genre daily trends", filterParams(f, p.Genres), func(ctx context.Context) ([]models.GenreDailyTrend, error) {
				return s.db.GetGenreDailyTrends(ctx, f, p)
			})
			if err != nil {
				return Failure(err)
			}
			return Rows(rows, charts.GenreTrends(rows))
		}},
	})
}
