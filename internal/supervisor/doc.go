// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

/*
Package supervisor runs the long-lived parts of the Groovify server under suture v4.

The tree has two layers so that a failing background sampler never takes the HTTP server
down with it:

	RootSupervisor ("groovify")
	├── DataSupervisor ("data-layer")
	│   ├── TickerService "db-pool-stats"
	│   └── TickerService "cache-stats"
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Crashed services are restarted with suture's backoff. Supervisor events are logged through
sutureslog, so restarts show up next to the request logs.

# Usage

	tree, err := supervisor.NewSupervisorTree(logger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewTickerService("db-pool-stats", 15*time.Second, sample))
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)

Serve blocks until ctx is canceled; UnstoppedServiceReport lists services that missed the
shutdown timeout.
*/
package supervisor
