// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/database"
)

// useSeededDatabase points the configuration at a seeded in-memory store whose latest invoice
// is on 2024-06-30.
func useSeededDatabase(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	t.Setenv(config.DotEnvPathEnvVar, filepath.Join(dir, "missing.env"))
	t.Setenv("DB_DRIVER", config.DriverDuckDB)
	t.Setenv("DUCKDB_PATH", ":memory:")
	t.Setenv("SEED_MOCK_DATA", "true")
	t.Setenv("SEED_ANCHOR", "2024-06-30")
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--no-color"))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Groovify "), out)
}

func TestQueryCommand(t *testing.T) {
	useSeededDatabase(t)

	out, err := run(t, "query", "SELECT artist_id, name FROM artist ORDER BY artist_id LIMIT 3")
	require.NoError(t, err)
	assert.Contains(t, out, "artist_id")
	assert.Contains(t, out, "AC/DC")
	assert.Contains(t, out, "3 row(s)")

	_, err = run(t, "query", "DELETE FROM artist")
	require.Error(t, err)
	assert.ErrorIs(t, err, database.ErrReadOnlyViolation)

	_, err = run(t, "query", "   ")
	assert.Error(t, err)
}

func TestPageCommand(t *testing.T) {
	useSeededDatabase(t)

	out, err := run(t, "page", "finance", "--as-of", "2024-06-30", "--granularity", "quarter", "-o", "json")
	require.NoError(t, err)

	var page struct {
		Name     string `json:"name"`
		Sections []struct {
			Name   string `json:"name"`
			Status string `json:"status"`
		} `json:"sections"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &page))
	assert.Equal(t, "finance", page.Name)
	require.NotEmpty(t, page.Sections)
	assert.Equal(t, "kpis", page.Sections[0].Name)
	for _, s := range page.Sections {
		assert.NotEqual(t, "error", s.Status, s.Name)
	}

	out, err = run(t, "page", "home")
	require.NoError(t, err)
	assert.Contains(t, out, "HOME")

	_, err = run(t, "page", "finance", "--granularity", "week")
	assert.Error(t, err)

	_, err = run(t, "page", "finance", "--start", "30/06/2024")
	assert.Error(t, err)

	_, err = run(t, "page", "nowhere")
	assert.Error(t, err)
}

func TestExplorerCommands(t *testing.T) {
	useSeededDatabase(t)

	out, err := run(t, "tables", "-o", "json")
	require.NoError(t, err)
	var tables []string
	require.NoError(t, json.Unmarshal([]byte(out), &tables))
	assert.Contains(t, tables, "invoice")
	assert.Contains(t, tables, "playlist_track")

	out, err = run(t, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "table_name")
	assert.Contains(t, out, "tables,")
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "version", "--format", "xml")
	assert.Error(t, err)
}
