// Groovify - Music Store Sales Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/groovify

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tomtom215/groovify/internal/config"
	"github.com/tomtom215/groovify/internal/dashboard"
	"github.com/tomtom215/groovify/internal/database"
	"github.com/tomtom215/groovify/internal/logging"
)

// options are the persistent flags shared by every command.
type options struct {
	configPath string
	format     string
	noColor    bool
	verbose    bool
	maxRows    int

	// load is replaced in tests.
	load func() (*config.Config, error)
}

// NewRootCommand builds the groovify command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{load: config.Load}

	root := &cobra.Command{
		Use:   "groovify",
		Short: "Groovify - music store sales analytics",
		Long: `Groovify reports on the sales of a digital music store stored in the Chinook schema.

Run "groovify serve" for the HTTP dashboard API, or render a page or a query directly in the
terminal with "groovify page" and "groovify query".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.noColor {
				color.NoColor = true
			}
			if opts.configPath != "" {
				if err := os.Setenv(config.ConfigPathEnvVar, opts.configPath); err != nil {
					return err
				}
			}
			switch opts.format {
			case formatTable, formatJSON:
				return nil
			default:
				return fmt.Errorf("unknown format %q: use %s or %s", opts.format, formatTable, formatJSON)
			}
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default: config.yaml, /etc/groovify/config.yaml)")
	flags.StringVarP(&opts.format, "format", "o", formatTable, "output format: table or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")
	flags.IntVar(&opts.maxRows, "max-rows", 20, "rows printed per table, 0 for all")

	root.AddCommand(
		newServeCommand(opts),
		newPageCommand(opts),
		newQueryCommand(opts),
		newTablesCommand(opts),
		newStatsCommand(opts),
		newVersionCommand(),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration and sets up logging for a terminal command. Logs go to
// stderr so that stdout carries only the rendered output.
func (o *options) loadConfig() (*config.Config, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	level := "warn"
	if o.verbose {
		level = "debug"
	}
	logging.Init(logging.Config{Level: level, Format: "console", Output: os.Stderr})
	return cfg, nil
}

// session is an open database with a page service on top.
type session struct {
	cfg *config.Config
	db  *database.DB
	svc *dashboard.Service
	out io.Writer
}

// openSession opens the configured database. Terminal commands run once, so the result
// cache is left out.
func (o *options) openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &session{
		cfg: cfg,
		db:  db,
		svc: dashboard.NewService(db, nil, cfg),
		out: cmd.OutOrStdout(),
	}, nil
}

func (s *session) Close() {
	if err := s.db.Close(); err != nil {
		logging.Warn().Err(err).Msg("Error closing database")
	}
}

func (o *options) printer(s *session) *printer {
	return &printer{out: s.out, format: o.format, maxRows: o.maxRows}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := dashboard.AppSummary()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", s.Name, s.Version)
			return err
		},
	}
}

// commandContext returns the command context, which cobra leaves nil outside ExecuteContext.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
