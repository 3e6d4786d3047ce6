// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package database

import (
	"context"
	"testing"

	"github.com/tomtom215/groovify/internal/models"
)

// financeFixture holds four invoices in the first quarter of 2024 across two countries and
// one invoice on the day before the range starts.
func financeFixture(t *testing.T) (*fixture, models.Filter) {
	t.Helper()
	fx := newFixture(t)
	fx.customer(1, "Maple", "Leaf", "Canada")
	fx.customer(2, "Stars", "Stripes", "USA")

	fx.invoice(1, mustDate(t, "2023-12-31"), 100)
	fx.invoice(1, mustDate(t, "2024-01-15"), 3.96)
	fx.invoice(1, mustDate(t, "2024-02-10"), 8.91)
	fx.invoice(2, mustDate(t, "2024-03-05"), 19.99)
	fx.invoice(2, mustDate(t, "2024-03-06"), 55.00)

	end := mustDate(t, "2024-03-31")
	return fx, models.NewFilter(mustDate(t, "2024-01-01"), end, end)
}

func TestFinanceKPIs(t *testing.T) {
	fx, f := financeFixture(t)

	k, err := fx.db.GetFinanceKPIs(context.Background(), f)
	checkNoError(t, err)
	checkIntEqual(t, "invoices", int(k.TotalInvoices), 4)
	checkFloatNear(t, "revenue", k.TotalRevenue, 87.86)
	checkFloatNear(t, "min", k.MinInvoice, 3.96)
	checkFloatNear(t, "max", k.MaxInvoice, 55)
	checkIntEqual(t, "customers", int(k.UniqueCustomers), 2)
	checkIntEqual(t, "countries", int(k.CountriesServed), 2)
	checkFloatNear(t, "revenue per customer", k.RevenuePerCustomer, 43.93)
	checkIntEqual(t, "active days", int(k.ActiveDays), 4)
	checkIntEqual(t, "tracks sold", int(k.TracksSold), 4)
}

func TestFinanceKPIsEmptyRange(t *testing.T) {
	fx, _ := financeFixture(t)
	day := mustDate(t, "2025-01-01")

	k, err := fx.db.GetFinanceKPIs(context.Background(), models.NewFilter(day, day, day))
	checkNoError(t, err)
	checkIntEqual(t, "invoices", int(k.TotalInvoices), 0)
	checkFloatNear(t, "revenue", k.TotalRevenue, 0)
	checkFloatNear(t, "revenue per customer", k.RevenuePerCustomer, 0)
}

func TestRevenueTrendsGranularity(t *testing.T) {
	fx, f := financeFixture(t)
	ctx := context.Background()

	monthly, err := fx.db.GetRevenueTrends(ctx, f, models.GranularityMonth)
	checkNoError(t, err)
	checkIntEqual(t, "months", len(monthly), 3)
	checkStringEqual(t, "first month", monthly[0].PeriodStart.Format(models.DateLayout), "2024-01-01")
	checkFloatNear(t, "march revenue", monthly[2].Revenue, 74.99)
	checkIntEqual(t, "march invoices", int(monthly[2].InvoiceCount), 2)

	quarterly, err := fx.db.GetRevenueTrends(ctx, f, models.GranularityQuarter)
	checkNoError(t, err)
	checkIntEqual(t, "quarters", len(quarterly), 1)
	checkFloatNear(t, "quarter revenue", quarterly[0].Revenue, 87.86)

	basket, err := fx.db.GetBasketTrends(ctx, f, models.GranularityYear)
	checkNoError(t, err)
	checkIntEqual(t, "years", len(basket), 1)
	checkIntEqual(t, "basket invoices", int(basket[0].InvoiceCount), 4)

	_, err = fx.db.GetRevenueTrends(ctx, f, models.Granularity("week"))
	checkErrorIs(t, err, models.ErrInvalidFilter)
	_, err = fx.db.GetBasketTrends(ctx, f, models.Granularity("'; DROP TABLE invoice; --"))
	checkErrorIs(t, err, models.ErrInvalidFilter)
}

func TestGeographicRevenueShares(t *testing.T) {
	fx, f := financeFixture(t)

	countries, err := fx.db.GetGeographicRevenue(context.Background(), f)
	checkNoError(t, err)
	checkIntEqual(t, "countries", len(countries), 2)

	checkStringEqual(t, "leader", countries[0].Country, "USA")
	checkFloatNear(t, "usa revenue", countries[0].TotalRevenue, 74.99)
	checkFloatNear(t, "usa share", countries[0].MarketSharePercent, 85.35)
	checkStringEqual(t, "second", countries[1].Country, "Canada")
	checkFloatNear(t, "canada share", countries[1].MarketSharePercent, 14.65)
	checkFloatNear(t, "canada revenue per customer", countries[1].RevenuePerCustomer, 12.87)
}

func TestAmountDistributionBuckets(t *testing.T) {
	fx, f := financeFixture(t)

	buckets, err := fx.db.GetAmountDistribution(context.Background(), f)
	checkNoError(t, err)

	want := []string{"< $5", "$5 - $10", "$10 - $20", "$50+"}
	checkIntEqual(t, "buckets", len(buckets), len(want))
	for i, b := range buckets {
		checkStringEqual(t, "bucket order", b.AmountRange, want[i])
		checkIntEqual(t, b.AmountRange+" count", int(b.InvoiceCount), 1)
		checkFloatNear(t, b.AmountRange+" percentage", b.Percentage, 25)
	}
}

func TestSeasonalityAndWeekdays(t *testing.T) {
	fx, f := financeFixture(t)
	ctx := context.Background()

	months, err := fx.db.GetSeasonality(ctx, f)
	checkNoError(t, err)
	checkIntEqual(t, "months", len(months), 3)
	for i, m := range months {
		checkIntEqual(t, "month number", m.MonthNum, i+1)
		checkIntEqual(t, "quarter", m.Quarter, 1)
	}

	days, err := fx.db.GetWeekdayTrends(ctx, f)
	checkNoError(t, err)
	// Monday, Tuesday, Wednesday and Saturday.
	wantDays := []int{1, 2, 3, 6}
	checkIntEqual(t, "weekdays", len(days), len(wantDays))
	for i, d := range days {
		checkIntEqual(t, "day number", d.DayNum, wantDays[i])
	}
}
