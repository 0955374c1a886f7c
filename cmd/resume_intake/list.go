package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/observability"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every stored resume record",
	RunE:  runList,
}

var (
	listConfigPath  string
	listDatabaseURL string
	listSQLitePath  string
	listJSONOut     bool
)

func init() {
	listCmd.Flags().StringVar(&listConfigPath, "config", "", "Path to JSON config file")
	listCmd.Flags().StringVar(&listDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")
	listCmd.Flags().StringVar(&listSQLitePath, "sqlite", "", "SQLite file path used when no database URL is set")
	listCmd.Flags().BoolVar(&listJSONOut, "json", false, "Emit records as JSON")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(listConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = listDatabaseURL
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = listSQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list resumes: %w", err)
	}

	if listJSONOut {
		encoded, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResumes("Stored Resumes", rows)
	return nil
}
