// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package dashboard

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/groovify/internal/cache"
	"github.com/tomtom215/groovify/internal/charts"
	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/models"
)

const testAnchor = "2024-06-30"

// newTestService opens a seeded in-memory database anchored on testAnchor.
func newTestService(t *testing.T, c *cache.Cache) *Service {
	t.Helper()

	cfg := config.Default()
	cfg.Database.Path = ":memory:"
	cfg.Database.SeedMockData = true
	cfg.Database.SeedAnchor = testAnchor

	db, err := database.New(&cfg.Database)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	svc := NewService(db, c, cfg)
	anchor := mustDate(t, testAnchor)
	svc.now = func() time.Time { return anchor }
	return svc
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()
	d, err := time.Parse(models.DateLayout, value)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", value, err)
	}
	return d
}

func fullFilter(t *testing.T, svc *Service) models.Filter {
	t.Helper()
	f, err := svc.ResolveFilter(context.Background(), time.Time{}, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("resolve filter: %v", err)
	}
	return f
}

func sectionNames(p *Page) []string {
	names := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		names[i] = s.Name
	}
	return names
}

func requireAllOK(t *testing.T, p *Page) {
	t.Helper()
	for _, s := range p.Sections {
		if s.Status != StatusOK {
			t.Errorf("%s/%s: expected ok, got %s (%s)", p.Name, s.Name, s.Status, s.Error)
		}
	}
}

func mustSection(t *testing.T, p *Page, name string) Section {
	t.Helper()
	s, ok := p.Section(name)
	if !ok {
		t.Fatalf("%s: section %q missing", p.Name, name)
	}
	return s
}

func TestRenderIsolatesFailures(t *testing.T) {
	svc := &Service{cfg: config.Default(), now: time.Now}

	page := svc.render(context.Background(), "test", nil, []task{
		{name: "ok", run: func(context.Context) Result { return Rows([]int{1, 2}) }},
		{name: "failed", run: func(context.Context) Result { return Failure(errors.New("query timed out")) }},
		{name: "panicked", run: func(context.Context) Result { panic("boom") }},
		{name: "empty", run: func(context.Context) Result { return Rows([]int(nil), charts.Placeholder(charts.KindBar, "x")) }},
	})

	if got, want := sectionNames(page), []string{"ok", "failed", "panicked", "empty"}; !slices.Equal(got, want) {
		t.Fatalf("sections out of order: %v", got)
	}
	want := []Status{StatusOK, StatusError, StatusError, StatusEmpty}
	for i, s := range page.Sections {
		if s.Status != want[i] {
			t.Errorf("%s: expected %s, got %s", s.Name, want[i], s.Status)
		}
	}
	if page.Failed() != 2 {
		t.Errorf("expected 2 failed sections, got %d", page.Failed())
	}
	if page.Sections[1].Error != "query timed out" {
		t.Errorf("unexpected error text %q", page.Sections[1].Error)
	}
	if page.Sections[2].Error == "" {
		t.Error("panicking section should carry an error")
	}
	if rows, ok := page.Sections[3].Rows.([]int); !ok || rows == nil {
		t.Errorf("empty section should have an empty non-nil row set, got %#v", page.Sections[3].Rows)
	}
	if !page.Sections[3].Charts[0].Empty {
		t.Error("empty section should keep its placeholder chart")
	}
}

func TestResolveFilter(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	f := fullFilter(t, svc)
	if f.End() != testAnchor {
		t.Errorf("end date should default to the last invoice, got %s", f.End())
	}
	if f.AsOfParam() != testAnchor {
		t.Errorf("as-of should default to today, got %s", f.AsOfParam())
	}
	if !f.StartDate.Before(f.EndDate) {
		t.Errorf("start %s should precede end %s", f.Start(), f.End())
	}

	explicit, err := svc.ResolveFilter(ctx, mustDate(t, "2024-01-01"), time.Time{}, mustDate(t, "2024-03-01"))
	if err != nil {
		t.Fatal(err)
	}
	if explicit.Start() != "2024-01-01" || explicit.AsOfParam() != "2024-03-01" {
		t.Errorf("explicit values must be kept: %+v", explicit)
	}

	_, err = svc.ResolveFilter(ctx, mustDate(t, "2024-06-01"), mustDate(t, "2024-01-01"), time.Time{})
	if !errors.Is(err, models.ErrInvalidFilter) {
		t.Errorf("inverted range: expected ErrInvalidFilter, got %v", err)
	}
}

func TestHomePage(t *testing.T) {
	svc := newTestService(t, nil)

	page := svc.Home(context.Background())
	requireAllOK(t, page)

	info, ok := mustSection(t, page, "database").Rows.(*models.DatabaseInfo)
	if !ok {
		t.Fatalf("database section rows have type %T", mustSection(t, page, "database").Rows)
	}
	if info.Engine != config.DriverDuckDB {
		t.Errorf("unexpected engine %q", info.Engine)
	}

	kpis := mustSection(t, page, "kpis").Rows.(*models.FinanceKPIs)
	if kpis.TotalInvoices == 0 || kpis.TotalRevenue <= 0 {
		t.Errorf("expected headline KPIs over the full history, got %+v", kpis)
	}

	summary := mustSection(t, page, "summary").Rows.(models.AppSummary)
	if len(summary.Pages) != len(PageNames) {
		t.Errorf("summary lists %d pages", len(summary.Pages))
	}
}

func TestFinancePage(t *testing.T) {
	svc := newTestService(t, nil)
	f := fullFilter(t, svc)

	page := svc.Finance(context.Background(), FinanceRequest{Filter: f, Granularity: models.GranularityQuarter})
	requireAllOK(t, page)

	want := []string{"kpis", "revenue_trends", "geography", "amount_distribution", "seasonality", "weekdays", "baskets"}
	if got := sectionNames(page); !slices.Equal(got, want) {
		t.Fatalf("sections: expected %v, got %v", want, got)
	}

	trends := mustSection(t, page, "revenue_trends")
	rows := trends.Rows.([]models.RevenueTrend)
	if rows[0].PeriodLabel == "" || rows[0].Period[4:6] != "-Q" {
		t.Errorf("trend rows should carry quarter labels, got %q / %q", rows[0].Period, rows[0].PeriodLabel)
	}
	if _, ok := trends.Summary.(models.TrendSummary); !ok {
		t.Errorf("trend summary has type %T", trends.Summary)
	}
	if trends.Charts[0].Kind != charts.KindArea {
		t.Errorf("trend chart kind %s", trends.Charts[0].Kind)
	}

	geo := mustSection(t, page, "geography")
	if len(geo.Charts) != 2 {
		t.Fatalf("geography should carry two charts, got %d", len(geo.Charts))
	}
	if n := len(geo.Charts[1].Series[0].Points); n > svc.cfg.Analytics.TopCountriesLimit {
		t.Errorf("top countries chart has %d bars", n)
	}

	days := mustSection(t, page, "weekdays").Rows.([]models.WeekdayTrend)
	for _, d := range days {
		if d.DayName == "" {
			t.Fatalf("weekday %d is not labelled", d.DayNum)
		}
	}
}

func TestFinancePageEmptyRange(t *testing.T) {
	svc := newTestService(t, nil)
	f := models.NewFilter(mustDate(t, "1990-01-01"), mustDate(t, "1990-12-31"), mustDate(t, testAnchor))

	page := svc.Finance(context.Background(), FinanceRequest{Filter: f})
	if page.Failed() != 0 {
		t.Fatalf("an empty range is not an error: %+v", page.Sections)
	}
	for _, name := range []string{"kpis", "revenue_trends", "seasonality", "baskets"} {
		s := mustSection(t, page, name)
		if s.Status != StatusEmpty {
			t.Errorf("%s: expected empty, got %s", name, s.Status)
		}
		for _, c := range s.Charts {
			if !c.Empty || c.Annotation != charts.NoDataMessage {
				t.Errorf("%s: chart %q should be a placeholder", name, c.Title)
			}
		}
	}
}

func TestFinancePageInvalidGranularity(t *testing.T) {
	svc := newTestService(t, nil)
	f := fullFilter(t, svc)

	page := svc.Finance(context.Background(), FinanceRequest{Filter: f, Granularity: "week"})
	if s := mustSection(t, page, "revenue_trends"); s.Status != StatusError {
		t.Errorf("unsupported granularity should fail the trend section, got %s", s.Status)
	}
	if s := mustSection(t, page, "geography"); s.Status != StatusOK {
		t.Errorf("sibling sections must still render, got %s", s.Status)
	}
}

func TestCustomersPage(t *testing.T) {
	svc := newTestService(t, nil)
	f := fullFilter(t, svc)

	page := svc.Customers(context.Background(), CustomersRequest{Filter: f})
	requireAllOK(t, page)

	clients := mustSection(t, page, "top_clients").Rows.([]models.TopClient)
	if len(clients) != svc.cfg.Analytics.TopClientsLimit {
		t.Fatalf("expected %d top clients, got %d", svc.cfg.Analytics.TopClientsLimit, len(clients))
	}
	for i, c := range clients {
		if c.Rank != i+1 || c.MusicalProfile == "" {
			t.Errorf("client %d not ranked and profiled: %+v", i, c)
		}
	}

	summary := mustSection(t, page, "cluster_summary").Rows.([]models.ClusterSummary)
	var share float64
	for _, s := range summary {
		share += s.CustomerShare
	}
	if share < 99.5 || share > 100.5 {
		t.Errorf("customer shares should sum to 100, got %.1f", share)
	}

	churn := mustSection(t, page, "churn")
	if cs, ok := churn.Summary.(models.ChurnSummary); !ok || cs.TotalCustomers != 59 {
		t.Errorf("unexpected churn summary %+v", churn.Summary)
	}

	prefs := mustSection(t, page, "preferences").Rows.([]models.CustomerPreference)
	if prefs[0].ListeningProfile == "" {
		t.Error("preferences should carry listening profiles")
	}
}

func TestCustomersPageInvalidChurnWindow(t *testing.T) {
	svc := newTestService(t, nil)
	f := fullFilter(t, svc)

	page := svc.Customers(context.Background(), CustomersRequest{
		Filter: f,
		Churn:  models.ChurnParams{ActiveMonths: 12, RiskMonths: 6},
	})
	if s := mustSection(t, page, "churn"); s.Status != StatusError {
		t.Errorf("expected the churn section to fail, got %s", s.Status)
	}
	if page.Failed() != 1 {
		t.Errorf("only the churn section should fail, %d failed", page.Failed())
	}
}

func TestMusicAndEmployeesPages(t *testing.T) {
	svc := newTestService(t, nil)
	f := fullFilter(t, svc)
	ctx := context.Background()

	music := svc.Music(ctx, MusicRequest{Filter: f})
	requireAllOK(t, music)
	tracks := mustSection(t, music, "tracks").Rows.([]models.TrackPerformance)
	if len(tracks) > svc.cfg.Analytics.TrackLimit {
		t.Errorf("track limit exceeded: %d", len(tracks))
	}

	employees := svc.Employees(ctx, EmployeesRequest{Filter: f})
	requireAllOK(t, employees)
	sales := mustSection(t, employees, "sales").Rows.([]models.EmployeeSales)
	for i := 1; i < len(sales); i++ {
		if sales[i].TotalRevenue > sales[i-1].TotalRevenue {
			t.Fatal("employee sales should be ranked by revenue")
		}
	}
	if mustSection(t, employees, "hierarchy").Charts[0].Kind != charts.KindTreemap {
		t.Error("hierarchy should be drawn as a treemap")
	}
}

func TestAlertsPageSummary(t *testing.T) {
	svc := newTestService(t, nil)
	anchor := mustDate(t, testAnchor)

	page := svc.Alerts(context.Background(), AlertsRequest{Filter: models.NewFilter(anchor, anchor, anchor)})
	if page.Sections[0].Name != "summary" {
		t.Fatalf("summary should come first, got %q", page.Sections[0].Name)
	}
	if page.Failed() != 0 {
		t.Fatalf("%d alert sections failed", page.Failed())
	}

	summary := page.Sections[0].Rows.(models.AlertSummary)
	counted := 0
	for _, s := range page.Sections[1:] {
		if s.Name == "system_health" {
			continue
		}
		counted += rowCount(s.Rows)
	}
	if summary.TotalAlerts != counted {
		t.Errorf("summary counts %d alerts, sections hold %d", summary.TotalAlerts, counted)
	}
	if summary.TotalAlerts == 0 {
		t.Error("seeded data should raise alerts")
	}
}

func rowCount(rows any) int {
	switch r := rows.(type) {
	case []models.LowPerformanceTrack:
		return len(r)
	case []models.LowPerformanceAlbum:
		return len(r)
	case []models.RevenueAnomaly:
		return len(r)
	case []models.ChurnAlert:
		return len(r)
	case []models.InventoryAlert:
		return len(r)
	case []models.PerformanceAlert:
		return len(r)
	case []models.FraudAlert:
		return len(r)
	}
	return 0
}

func TestExplorer(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	page := svc.Explorer(ctx)
	requireAllOK(t, page)
	stats := mustSection(t, page, "stats")
	totals, ok := stats.Summary.(models.TableStatsTotals)
	if !ok || totals.TotalTables != len(stats.Rows.([]models.TableStats)) {
		t.Errorf("unexpected totals %+v", stats.Summary)
	}

	res, spec, err := svc.Query(ctx, "SELECT name FROM genre ORDER BY name")
	if err != nil {
		t.Fatal(err)
	}
	if res.RowCount == 0 || spec.Kind != charts.KindTable || spec.Empty {
		t.Errorf("unexpected query result %+v", res)
	}

	_, _, err = svc.Query(ctx, "DROP TABLE genre")
	if !errors.Is(err, database.ErrReadOnlyViolation) {
		t.Errorf("expected a read-only violation, got %v", err)
	}
}

func TestPagesUseResultCache(t *testing.T) {
	c := cache.New(time.Minute)
	t.Cleanup(c.Close)
	svc := newTestService(t, c)
	f := fullFilter(t, svc)
	ctx := context.Background()

	first := svc.Finance(ctx, FinanceRequest{Filter: f})
	cached := c.Len()
	if cached == 0 {
		t.Fatal("expected finance queries to be cached")
	}

	second := svc.Finance(ctx, FinanceRequest{Filter: f})
	if c.Len() != cached {
		t.Errorf("a repeated render should not add entries: %d then %d", cached, c.Len())
	}
	if c.GetStats().Hits == 0 {
		t.Error("expected cache hits on the second render")
	}

	a := mustSection(t, first, "kpis").Rows.(*models.FinanceKPIs)
	b := mustSection(t, second, "kpis").Rows.(*models.FinanceKPIs)
	if *a != *b {
		t.Error("cached KPIs differ from the first render")
	}
}
