//-------------------------------------------------------------------------
//
// pgEdge Warehouse Builder
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-warehouse/internal/feed"
	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/sink"
	"github.com/pgEdge/pgedge-warehouse/internal/warehouse"
)

var (
	buildSourceURL         string
	buildCatalogConnection string
	buildCatalogTable      string
	buildOutputDir         string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the warehouse from a raw order feed",
	Long: `Fetch the raw order feed, run the transform pipeline, and write
the six dimension tables and the orders fact table as snappy parquet
files to the output directory. Exactly one feed source must be set:
a CSV URL or a registered catalog table.

Example:
  pgedge-warehouse build --source-url https://example.com/orders.csv
  pgedge-warehouse build --catalog-connection postgres://localhost/raw --catalog-table orders`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildSourceURL, "source-url", "",
		"URL of the raw CSV feed")
	buildCmd.Flags().StringVar(&buildCatalogConnection, "catalog-connection", "",
		"PostgreSQL connection string of the feed catalog")
	buildCmd.Flags().StringVar(&buildCatalogTable, "catalog-table", "",
		"name of the registered raw order table")
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "",
		"directory the parquet files are written to")
}

func runBuild(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if buildSourceURL != "" {
		cfg.Source.URL = buildSourceURL
	}
	if buildCatalogConnection != "" {
		cfg.Source.Catalog.Connection = buildCatalogConnection
	}
	if buildCatalogTable != "" {
		cfg.Source.Catalog.Table = buildCatalogTable
	}
	if buildOutputDir != "" {
		cfg.Output.Dir = buildOutputDir
	}

	// Validate configuration
	if err := cfg.ValidateBuild(); err != nil {
		return err
	}

	var source feed.Source
	if cfg.Source.URL != "" {
		source = feed.NewHTTPSource(cfg.Source.URL)
	} else {
		source = feed.NewCatalogSource(cfg.Source.Catalog.Connection, cfg.Source.Catalog.Table)
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	start := time.Now()

	raw, err := source.Fetch(ctx)
	if err != nil {
		return err
	}

	orders, err := warehouse.Preprocess(raw)
	if err != nil {
		return err
	}

	wh, err := warehouse.Build(ctx, orders, time.Now().UTC())
	if err != nil {
		return err
	}

	if err := sink.Write(ctx, cfg.Output.Dir, wh); err != nil {
		return err
	}

	logging.Info().
		Str("dir", cfg.Output.Dir).
		Dur("elapsed", time.Since(start)).
		Msg("Warehouse build complete")
	return nil
}
