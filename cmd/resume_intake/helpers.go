package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-intake/internal/config"
	"github.com/jonathan/resume-intake/internal/db"
	"github.com/jonathan/resume-intake/internal/ingestion"
	"github.com/jonathan/resume-intake/internal/logging"
	"github.com/jonathan/resume-intake/internal/pipeline"
)

// loadConfigFile loads the JSON config file when a path is given. An empty
// path yields an empty config so commands that never see --config still get
// a value to layer flag overrides onto. A log level from the file takes
// effect unless --log-level was set explicitly.
func loadConfigFile(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if cfg.LogLevel != "" && !rootCmd.PersistentFlags().Changed("log-level") {
		logging.Init(cfg.LogLevel, rootPretty)
	}
	return *cfg, nil
}

// collectDocuments reads matching files from a directory or a zip archive,
// whichever the input path points at.
func collectDocuments(input string, exts ...string) ([]pipeline.Document, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("failed to stat input path %s: %w", input, err)
	}
	if info.IsDir() {
		return ingestion.FromDir(input, exts...)
	}
	if strings.EqualFold(filepath.Ext(input), ".zip") {
		return ingestion.FromZip(input, exts...)
	}
	return nil, fmt.Errorf("input must be a directory or a .zip archive: %s", input)
}

// openStore picks the persistence backend from the merged configuration,
// falling back to the DATABASE_URL environment variable and the default
// SQLite file, and initializes the schema.
func openStore(ctx context.Context, cfg config.Config) (db.Store, error) {
	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	sqlitePath := cfg.SQLitePath
	if sqlitePath == "" {
		sqlitePath = db.DefaultSQLitePath
	}

	store, err := db.Open(ctx, databaseURL, sqlitePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open resume store: %w", err)
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize resume store: %w", err)
	}
	return store, nil
}
