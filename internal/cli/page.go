// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/models"
)

// pageNames lists the pages in menu order.
var pageNames = []string{"home", "finance", "customers", "music", "employees", "alerts", "sql"}

type pageFlags struct {
	start       string
	end         string
	asOf        string
	granularity string
	genres      []string
}

func newPageCommand(opts *options) *cobra.Command {
	var pf pageFlags

	cmd := &cobra.Command{
		Use:       "page <" + strings.Join(pageNames, "|") + ">",
		Short:     "Render a dashboard page in the terminal",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: pageNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			page, err := renderPage(commandContext(cmd), s.svc, args[0], pf)
			if err != nil {
				return err
			}
			return opts.printer(s).page(page)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&pf.start, "start", "", "first day of the range, YYYY-MM-DD (default: first invoice)")
	flags.StringVar(&pf.end, "end", "", "last day of the range, YYYY-MM-DD (default: last invoice)")
	flags.StringVar(&pf.asOf, "as-of", "", "reference date for recency and alert windows (default: today)")
	flags.StringVar(&pf.granularity, "granularity", string(models.GranularityMonth), "finance trend period: month, quarter or year")
	flags.StringSliceVar(&pf.genres, "genre", nil, "restrict the music genre views, repeatable")
	return cmd
}

// renderPage builds the named page with the configured defaults.
func renderPage(ctx context.Context, svc *dashboard.Service, name string, pf pageFlags) (*dashboard.Page, error) {
	switch name {
	case "home":
		return svc.Home(ctx), nil
	case "sql":
		return svc.Explorer(ctx), nil
	}

	g := models.Granularity(pf.granularity)
	if !g.Valid() {
		return nil, fmt.Errorf("granularity must be one of month, quarter, year")
	}

	dates := make([]time.Time, 3)
	for i, value := range []string{pf.start, pf.end, pf.asOf} {
		if value == "" {
			continue
		}
		d, err := time.Parse(models.DateLayout, value)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
		}
		dates[i] = d
	}
	if name == "alerts" {
		dates[0], dates[1] = time.Time{}, time.Time{}
	}
	f, err := svc.ResolveFilter(ctx, dates[0], dates[1], dates[2])
	if err != nil {
		return nil, err
	}

	switch name {
	case "finance":
		return svc.Finance(ctx, dashboard.FinanceRequest{Filter: f, Granularity: g}), nil
	case "customers":
		return svc.Customers(ctx, dashboard.CustomersRequest{Filter: f}), nil
	case "music":
		return svc.Music(ctx, dashboard.MusicRequest{Filter: f, Params: models.MusicParams{Genres: pf.genres}}), nil
	case "employees":
		return svc.Employees(ctx, dashboard.EmployeesRequest{Filter: f}), nil
	case "alerts":
		return svc.Alerts(ctx, dashboard.AlertsRequest{Filter: f}), nil
	default:
		return nil, fmt.Errorf("unknown page %q", name)
	}
}
