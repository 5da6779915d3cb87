// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command catalogctl is the operator tool for the catalog database.
//
// # Commands
//
//	catalogctl migrate up                   Apply pending migrations.
//	catalogctl categories tree [--json]     Print the active category forest.
//	catalogctl categories descendants <id>  Print an id and its active descendants.
//
// Connection settings come from DATABASE_URL and MIGRATION_PATH and can be
// overridden with flags. --verbose (or DEBUG=true) prints each migration step.
package main

import (
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// settings are the connection parameters shared by every subcommand.
type settings struct {
	DatabaseURL   string `env:"DATABASE_URL"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
	Verbose       bool   `env:"DEBUG"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With(slog.String("app", "catalogctl"))

	if err := newRootCommand(logger).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(logger *slog.Logger) *cobra.Command {
	opts := &settings{}
	if err := env.Parse(opts); err != nil {
		logger.Warn("environment_parse_failed", slog.Any("error", err))
	}

	root := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Operator tool for the catalog database",
		Version:      constants.AppVersion,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&opts.DatabaseURL, "database-url", opts.DatabaseURL, "PostgreSQL connection URL (env DATABASE_URL)")
	root.PersistentFlags().StringVar(&opts.MigrationPath, "migration-path", opts.MigrationPath, "Directory of SQL migrations (env MIGRATION_PATH)")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", opts.Verbose, "Log every migration step (env DEBUG)")

	root.AddCommand(newMigrateCommand(opts, logger))
	root.AddCommand(newCategoriesCommand(opts, logger))

	return root
}
