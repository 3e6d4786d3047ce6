// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package cache memoizes query results for a bounded time.

Entries are keyed by the query identifier and a hash of the parameter tuple, so two page
renders with equal filters share one database round trip:

	key := cache.GenerateKey("rfm segments", filter)

Fetch wraps a query function. Successful results are stored with the cache TTL; errors are
returned to the caller and never stored, so a failed section is retried on the next request:

	rows, err := cache.Fetch(c, "rfm segments", []any{filter}, func() ([]models.RFMSegment, error) {
	    return db.GetRFMSegments(ctx, filter)
	})

# Invalidation

Entries expire lazily on Get and are swept by a background goroutine. Clear drops every
entry and is exposed through POST /api/v1/cache/clear. A nil *Cache is valid and disables
caching, which is how the cache.enabled=false setting is honoured.

# Metrics

Every lookup made through Fetch is counted in the groovify_cache_hits_total and
groovify_cache_misses_total series.
*/
package cache
