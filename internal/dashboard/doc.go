// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package dashboard assembles the pages of the Groovify dashboard.

A page is an ordered list of named sections. Every section loads one table through the result
cache, derives its display columns with package shaping and attaches the charts built by
package charts. Sections are independent: they run concurrently on a bounded pool and a
failing section becomes a Result with StatusError while its siblings still render.

	svc := dashboard.NewService(db, resultCache, cfg)
	page := svc.Finance(ctx, dashboard.FinanceRequest{Filter: f, Granularity: models.GranularityMonth})
	for _, s := range page.Sections {
	    fmt.Println(s.Name, s.Status)
	}

A panic inside a section is recovered and reported as that section's error.
*/
package dashboard
