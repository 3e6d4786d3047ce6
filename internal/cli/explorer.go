// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/shaping"
)

func newQueryCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "query <sql|->",
		Short: "Run a read-only SQL statement",
		Long: `Run one SELECT, WITH, SHOW, DESCRIBE or EXPLAIN statement against the store database.
Pass "-" to read the statement from standard input. Results are capped at the explorer
result limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]
			if query == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read statement: %w", err)
				}
				query = string(b)
			}
			if strings.TrimSpace(query) == "" {
				return errors.New("empty statement")
			}

			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			res, _, err := s.svc.Query(commandContext(cmd), query)
			if err != nil {
				if errors.Is(err, database.ErrReadOnlyViolation) {
					return fmt.Errorf("rejected: %w", err)
				}
				return err
			}
			return opts.printer(s).queryResult(res)
		},
	}
}

func newTablesCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tables",
		Short: "List the tables of the store schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			tables, err := s.db.ListTables(commandContext(cmd))
			if err != nil {
				return err
			}
			p := opts.printer(s)
			if p.format == formatJSON {
				return p.json(tables)
			}
			p.table(tabulate(tables))
			return nil
		},
	}
}

func newStatsCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show row counts and sizes per table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.openSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			stats, err := s.svc.TableStats(commandContext(cmd))
			if err != nil {
				return err
			}
			totals := shaping.TableTotals(stats)

			p := opts.printer(s)
			if p.format == formatJSON {
				return p.json(map[string]any{"tables": stats, "totals": totals})
			}
			p.table(tabulate(stats))
			pageHeading.Fprintf(s.out, "%d tables, %d rows, %s\n", totals.TotalTables, totals.TotalRows, totals.TotalSizeDisplay)
			return nil
		},
	}
}
