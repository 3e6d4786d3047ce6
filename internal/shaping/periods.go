// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package shaping

import (
	"fmt"
	"slices"
	"time"

	"github.com/tomtom215/groovify/internal/models"
)

func quarterOf(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// PeriodKey is the sortable key of the period starting at t: "2024-03", "2024-Q1" or "2024".
func PeriodKey(t time.Time, g models.Granularity) string {
	switch g {
	case models.GranularityQuarter:
		return fmt.Sprintf("%d-Q%d", t.Year(), quarterOf(t))
	case models.GranularityYear:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("2006-01")
	}
}

// PeriodLabel is the display label of the period starting at t: "Mar 2024", "Q1 2024" or "2024".
func PeriodLabel(t time.Time, g models.Granularity) string {
	switch g {
	case models.GranularityQuarter:
		return fmt.Sprintf("Q%d %d", quarterOf(t), t.Year())
	case models.GranularityYear:
		return fmt.Sprintf("%d", t.Year())
	default:
		return t.Format("Jan 2006")
	}
}

// MonthName returns the English name of month 1-12, or "" outside that range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return time.Month(month).String()
}

// WeekdayName returns the English name of day 0-6 with 0 for Sunday, or "" outside that range.
func WeekdayName(day int) string {
	if day < 0 || day > 6 {
		return ""
	}
	return time.Weekday(day).String()
}

// LabelRevenueTrends fills Period and PeriodLabel from PeriodStart.
func LabelRevenueTrends(rows []models.RevenueTrend, g models.Granularity) []models.RevenueTrend {
	out := slices.Clone(rows)
	for i := range out {
		out[i].Period = PeriodKey(out[i].PeriodStart, g)
		out[i].PeriodLabel = PeriodLabel(out[i].PeriodStart, g)
	}
	return out
}

// LabelBasketTrends fills Period and PeriodLabel from PeriodStart.
func LabelBasketTrends(rows []models.BasketTrend, g models.Granularity) []models.BasketTrend {
	out := slices.Clone(rows)
	for i := range out {
		out[i].Period = PeriodKey(out[i].PeriodStart, g)
		out[i].PeriodLabel = PeriodLabel(out[i].PeriodStart, g)
	}
	return out
}

// LabelSeasonality fills MonthName.
func LabelSeasonality(rows []models.Seasonality) []models.Seasonality {
	out := slices.Clone(rows)
	for i := range out {
		out[i].MonthName = MonthName(out[i].MonthNum)
	}
	return out
}

// LabelWeekdays fills DayName.
func LabelWeekdays(rows []models.WeekdayTrend) []models.WeekdayTrend {
	out := slices.Clone(rows)
	for i := range out {
		out[i].DayName = WeekdayName(out[i].DayNum)
	}
	return out
}

// growthPct is the percentage change from base to current, zero when base is not positive.
func growthPct(base, current float64) float64 {
	if base <= 0 {
		return 0
	}
	return round((current-base)/base*100, 1)
}

// SummarizeTrend reports the peak period, the average revenue, the growth since the first
// period and, with at least two periods, the growth since the previous one. Rows must be
// labelled and in period order. ok is false for an empty trend.
func SummarizeTrend(rows []models.RevenueTrend) (summary models.TrendSummary, ok bool) {
	if len(rows) == 0 {
		return summary, false
	}

	peak := 0
	revenues := make([]float64, len(rows))
	for i, r := range rows {
		revenues[i] = r.Revenue
		if r.Revenue > rows[peak].Revenue {
			peak = i
		}
	}
	avg := mean(revenues)
	first, last := rows[0].Revenue, rows[len(rows)-1].Revenue

	summary = models.TrendSummary{
		Periods:        len(rows),
		PeakPeriod:     rows[peak].PeriodLabel,
		PeakRevenue:    rows[peak].Revenue,
		AvgRevenue:     round(avg, 2),
		TotalGrowthPct: growthPct(first, last),
	}
	if avg > 0 {
		summary.PeakVsAvgPct = round((rows[peak].Revenue-avg)/avg*100, 1)
	}
	if len(rows) >= 2 {
		summary.HasLatestGrowth = true
		summary.LatestGrowthPct = growthPct(rows[len(rows)-2].Revenue, last)
	}
	return summary, true
}

// SummarizeBaskets reports the latest, first, largest and smallest average basket and the
// growth from first to latest. ok is false for an empty trend.
func SummarizeBaskets(rows []models.BasketTrend) (summary models.BasketSummary, ok bool) {
	if len(rows) == 0 {
		return summary, false
	}

	summary = models.BasketSummary{
		CurrentBasket: rows[len(rows)-1].AvgBasket,
		FirstBasket:   rows[0].AvgBasket,
		MaxBasket:     rows[0].AvgBasket,
		MinBasket:     rows[0].AvgBasket,
	}
	for _, r := range rows[1:] {
		summary.MaxBasket = max(summary.MaxBasket, r.AvgBasket)
		summary.MinBasket = min(summary.MinBasket, r.AvgBasket)
	}
	summary.GrowthPct = growthPct(summary.FirstBasket, summary.CurrentBasket)
	return summary, true
}

// SeasonalityInsights names the best and worst months, the first one on ties, and the
// coefficient of variation of monthly revenue in percent. Rows must be labelled. ok is false
// for an empty table.
func SeasonalityInsights(rows []models.Seasonality) (insight models.SeasonalityInsight, ok bool) {
	if len(rows) == 0 {
		return insight, false
	}

	best, worst := 0, 0
	revenues := make([]float64, len(rows))
	for i, r := range rows {
		revenues[i] = r.TotalRevenue
		if r.TotalRevenue > rows[best].TotalRevenue {
			best = i
		}
		if r.TotalRevenue < rows[worst].TotalRevenue {
			worst = i
		}
	}

	insight = models.SeasonalityInsight{
		BestMonth:    rows[best].MonthName,
		BestRevenue:  rows[best].TotalRevenue,
		WorstMonth:   rows[worst].MonthName,
		WorstRevenue: rows[worst].TotalRevenue,
	}
	if m := mean(revenues); m > 0 {
		insight.VariationPct = round(sampleStd(revenues)/m*100, 1)
	}
	return insight, true
}
