// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import (
	"math"
	"slices"
	"time"

	"github.com/tomtom215/groovify/internal/models"
)

// Musical profile labels.
const (
	ProfileEclectic    = "Eclectic"
	ProfileDiversified = "Diversified"
	ProfileSelective   = "Selective"
	ProfileSpecialized = "Specialized"
	ProfileOccasional  = "Occasional"
	ProfileExplorer    = "Explorer"
	ProfileRegular     = "Regular"
)

// Listening profile labels and their minute floors.
const (
	ListeningMusicLover = "Music Lover"
	ListeningAmateur    = "Amateur"
	ListeningOccasional = "Occasional"
	ListeningBeginner   = "Beginner"

	musicLoverMinutes = 500
	amateurMinutes    = 200
	occasionalMinutes = 100
)

// MusicalProfile labels a customer from the number of distinct genres and tracks bought.
// The first matching rule wins.
func MusicalProfile(genres, tracks int) string {
	switch {
	case genres >= 8 && tracks >= 30:
		return ProfileEclectic
	case genres >= 5 && tracks >= 15:
		return ProfileDiversified
	case genres >= 3 && tracks >= 8:
		return ProfileSelective
	case genres <= 2 && tracks >= 5:
		return ProfileSpecialized
	case tracks < 5:
		return ProfileOccasional
	case genres >= 4 && tracks < 15:
		return ProfileExplorer
	default:
		return ProfileRegular
	}
}

// ListeningProfile labels a customer from the total minutes of music bought.
func ListeningProfile(minutes float64) string {
	switch {
	case minutes >= musicLoverMinutes:
		return ListeningMusicLover
	case minutes >= amateurMinutes:
		return ListeningAmateur
	case minutes >= occasionalMinutes:
		return ListeningOccasional
	default:
		return ListeningBeginner
	}
}

// DiversityScore weighs genres twice as much as artists and albums.
func DiversityScore(genres, artists, albums int) float64 {
	return float64(2*genres+artists+albums) / 4
}

// ActivityDays is the inclusive number of calendar days between two orders.
func ActivityDays(first, last time.Time) int {
	return int(models.TruncateDay(last).Sub(models.TruncateDay(first)).Hours()/24) + 1
}

// OrderFrequency is the number of orders per 30 days of activity. It is zero when the
// activity span is not positive.
func OrderFrequency(orders int, first, last time.Time) float64 {
	days := ActivityDays(first, last)
	if days <= 0 {
		return 0
	}
	return float64(orders) / (float64(days) / 30)
}

// ProfilePreferences fills the profile columns of customer preference rows.
func ProfilePreferences(rows []models.CustomerPreference) []models.CustomerPreference {
	out := slices.Clone(rows)
	for i := range out {
		p := &out[i]
		p.MusicalProfile = MusicalProfile(p.GenresExplored, p.TotalTracks)
		p.ListeningProfile = ListeningProfile(p.TotalMinutesPurchased)
		p.DiversityScore = DiversityScore(p.GenresExplored, p.ArtistsExplored, p.AlbumsExplored)
	}
	return out
}

// ProfileTopClients fills the profile, diversity and frequency columns of top client rows.
// Order frequency is rounded to two decimals.
func ProfileTopClients(rows []models.TopClient) []models.TopClient {
	out := slices.Clone(rows)
	for i := range out {
		c := &out[i]
		c.MusicalProfile = MusicalProfile(c.NbDifferentGenres, c.NbPurchasedTracks)
		c.ListeningProfile = ListeningProfile(c.TotalMinutes)
		c.DiversityScore = DiversityScore(c.NbDifferentGenres, c.NbDifferentArtists, c.NbDifferentAlbums)
		c.OrderFrequency = round(OrderFrequency(c.NbOrders, c.FirstOrder, c.LastOrder), 2)
	}
	return out
}

// LabelCount is the number of rows carrying one label.
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// MusicalProfileCounts counts RFM segments per musical profile, in profile rule order.
// Profiles without customers are omitted.
func MusicalProfileCounts(segments []models.RFMSegment) []LabelCount {
	counts := make(map[string]int)
	for _, s := range segments {
		counts[MusicalProfile(s.NbDifferentGenres, s.NbPurchasedTracks)]++
	}
	return orderedCounts(counts, []string{
		ProfileEclectic, ProfileDiversified, ProfileSelective, ProfileSpecialized,
		ProfileOccasional, ProfileExplorer, ProfileRegular,
	})
}

// orderedCounts lists the labels of order that have a count, followed by any other labels
// in alphabetical order.
func orderedCounts(counts map[string]int, order []string) []LabelCount {
	out := make([]LabelCount, 0, len(counts))
	for _, label := range order {
		if n, ok := counts[label]; ok {
			out = append(out, LabelCount{Label: label, Count: n})
		}
	}
	var extra []string
	for label := range counts {
		if !slices.Contains(order, label) {
			extra = append(extra, label)
		}
	}
	slices.Sort(extra)
	for _, label := range extra {
		out = append(out, LabelCount{Label: label, Count: counts[label]})
	}
	return out
}

// round rounds half away from zero to the given number of decimals.
func round(v float64, decimals int) float64 {
	p := math.Pow(10, float64(decimals))
	return math.Round(v*p) / p
}
