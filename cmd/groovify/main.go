// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

// Command groovify is the Groovify command line client.
package main

import "github.com/tomtom215/groovify/internal/cli"

func main() {
	cli.Execute()
}
