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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-warehouse/internal/datagen"
	"github.com/pgEdge/pgedge-warehouse/internal/logging"
)

var (
	sampleRows int
	sampleSeed uint64
	sampleOut  string
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Generate a synthetic raw order feed",
	Long: `Generate a synthetic raw order feed CSV for demos and testing.
The output carries the quirks of a real feed, including blank order
numbers and product triples with conflicting costs, so the full
pipeline can be exercised without a live source.

Example:
  pgedge-warehouse sample --rows 5000 --out orders.csv
  pgedge-warehouse sample --rows 1000 --seed 42 --out orders.csv`,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().IntVar(&sampleRows, "rows", 0,
		"number of raw order rows to generate")
	sampleCmd.Flags().Uint64Var(&sampleSeed, "seed", 0,
		"random seed for reproducible output (0 = random)")
	sampleCmd.Flags().StringVar(&sampleOut, "out", "orders.csv",
		"output CSV file")
}

func runSample(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if sampleRows > 0 {
		cfg.Sample.Rows = sampleRows
	}
	if sampleSeed != 0 {
		cfg.Sample.Seed = sampleSeed
	}

	// Validate configuration
	if err := cfg.ValidateSample(); err != nil {
		return err
	}

	f, err := os.Create(sampleOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", sampleOut, err)
	}
	defer f.Close()

	if err := datagen.WriteSampleFeed(f, cfg.Sample.Rows, cfg.Sample.Seed); err != nil {
		return err
	}

	logging.Info().
		Str("file", sampleOut).
		Int("rows", cfg.Sample.Rows).
		Msg("Sample feed written")
	return nil
}
