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

	"github.com/spf13/cobra"

	"github.com/pgEdge/pgedge-warehouse/internal/logging"
	"github.com/pgEdge/pgedge-warehouse/internal/sink"
	"github.com/pgEdge/pgedge-warehouse/internal/upload"
)

var (
	uploadBucket    string
	uploadFolder    string
	uploadRegion    string
	uploadDir       string
	uploadAccessKey string
	uploadSecretKey string
)

var uploadCmd = &cobra.Command{
	Use:   "upload",
	Short: "Upload warehouse parquet files to S3",
	Long: `Copy the seven warehouse parquet files from the local output
directory to an S3 bucket. Missing local files are skipped and failed
uploads are reported; the rest of the batch still goes out.

Example:
  pgedge-warehouse upload --bucket my-warehouse --folder processed/`,
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVar(&uploadBucket, "bucket", "",
		"target S3 bucket name")
	uploadCmd.Flags().StringVar(&uploadFolder, "folder", "",
		"key prefix inside the bucket")
	uploadCmd.Flags().StringVar(&uploadRegion, "region", "",
		"AWS region of the bucket")
	uploadCmd.Flags().StringVar(&uploadDir, "dir", "",
		"local directory holding the parquet files")
	uploadCmd.Flags().StringVar(&uploadAccessKey, "access-key", "",
		"AWS access key id (default: AWS credential chain)")
	uploadCmd.Flags().StringVar(&uploadSecretKey, "secret-key", "",
		"AWS secret access key")
}

func runUpload(cmd *cobra.Command, args []string) error {
	// Override config with CLI flags
	if uploadBucket != "" {
		cfg.S3.Bucket = uploadBucket
	}
	if uploadFolder != "" {
		cfg.S3.Folder = uploadFolder
	}
	if uploadRegion != "" {
		cfg.S3.Region = uploadRegion
	}
	if uploadDir != "" {
		cfg.Output.Dir = uploadDir
	}
	if uploadAccessKey != "" {
		cfg.S3.AccessKey = uploadAccessKey
	}
	if uploadSecretKey != "" {
		cfg.S3.SecretKey = uploadSecretKey
	}

	// Validate configuration
	if err := cfg.ValidateUpload(); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	u, err := upload.New(ctx, cfg.S3)
	if err != nil {
		return err
	}

	n, err := u.UploadFiles(ctx, cfg.Output.Dir, sink.FileNames())
	if err != nil {
		return err
	}

	logging.Info().
		Int("uploaded", n).
		Str("bucket", cfg.S3.Bucket).
		Msg("Upload complete")
	return nil
}
