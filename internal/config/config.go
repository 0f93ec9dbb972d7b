//-------------------------------------------------------------------------
//
// pgEdge Warehouse Builder
//
// Copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-warehouse.
// Configuration is loaded from config files and CLI flags (no environment
// variables). CLI flags take precedence over config file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-warehouse.
type Config struct {
	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// Source describes where the raw order feed comes from.
	Source SourceConfig `mapstructure:"source"`

	// Output holds configuration for the local parquet sink.
	Output OutputConfig `mapstructure:"output"`

	// S3 holds configuration for the upload subcommand.
	S3 S3Config `mapstructure:"s3"`

	// Sample holds configuration for the sample subcommand.
	Sample SampleConfig `mapstructure:"sample"`
}

// SourceConfig selects the raw feed source. Exactly one of URL or
// Catalog must be set for a build.
type SourceConfig struct {
	// URL is the address of a remotely hosted CSV feed. github.com blob
	// URLs are rewritten to their raw content form automatically.
	URL string `mapstructure:"url"`

	// Catalog describes a registered database table holding the raw feed.
	Catalog CatalogConfig `mapstructure:"catalog"`
}

// CatalogConfig identifies a raw feed table in a Postgres catalog.
type CatalogConfig struct {
	// Connection is the PostgreSQL connection string.
	Connection string `mapstructure:"connection"`

	// Table is the name of the registered raw order table.
	Table string `mapstructure:"table"`
}

// OutputConfig holds configuration for the warehouse sink.
type OutputConfig struct {
	// Dir is the directory the seven parquet files are written to.
	Dir string `mapstructure:"dir"`
}

// S3Config holds configuration for uploading warehouse files to S3.
type S3Config struct {
	// Bucket is the target S3 bucket name.
	Bucket string `mapstructure:"bucket"`

	// Folder is the key prefix inside the bucket (e.g. "processed/").
	Folder string `mapstructure:"folder"`

	// Region is the AWS region of the bucket.
	Region string `mapstructure:"region"`

	// AccessKey and SecretKey are optional static credentials. When empty
	// the default AWS credential chain is used.
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// SampleConfig holds configuration for sample feed generation.
type SampleConfig struct {
	// Rows is the number of raw order rows to generate.
	Rows int `mapstructure:"rows"`

	// Seed makes generation reproducible when non-zero.
	Seed uint64 `mapstructure:"seed"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			Dir: "processed",
		},
		S3: S3Config{
			Folder: "processed/",
			Region: "us-east-1",
		},
		Sample: SampleConfig{
			Rows: 1000,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-warehouse.yaml
// 3. ~/.config/pgedge-warehouse/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-warehouse")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-warehouse"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateBuild checks configuration required for the build command.
func (c *Config) ValidateBuild() error {
	hasURL := c.Source.URL != ""
	hasCatalog := c.Source.Catalog.Connection != "" || c.Source.Catalog.Table != ""

	if !hasURL && !hasCatalog {
		return fmt.Errorf("a feed source is required (source.url or source.catalog)")
	}
	if hasURL && hasCatalog {
		return fmt.Errorf("source.url and source.catalog are mutually exclusive")
	}
	if hasCatalog {
		if c.Source.Catalog.Connection == "" {
			return fmt.Errorf("source.catalog.connection is required")
		}
		if c.Source.Catalog.Table == "" {
			return fmt.Errorf("source.catalog.table is required")
		}
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	return nil
}

// ValidateUpload checks configuration required for the upload command.
func (c *Config) ValidateUpload() error {
	if c.S3.Bucket == "" {
		return fmt.Errorf("s3.bucket is required")
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if (c.S3.AccessKey == "") != (c.S3.SecretKey == "") {
		return fmt.Errorf("s3.access_key and s3.secret_key must be set together")
	}
	return nil
}

// ValidateSample checks configuration required for the sample command.
func (c *Config) ValidateSample() error {
	if c.Sample.Rows < 1 {
		return fmt.Errorf("sample.rows must be at least 1")
	}
	return nil
}
