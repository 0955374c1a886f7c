package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/db"
	"github.com/jonathan/resume-intake/internal/observability"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search stored resume records",
	Long: `Searches stored resumes by name, company, graduation, or creation date.
Text filters match as substrings; --since takes a YYYY-MM-DD date and keeps
records created on or after it. Filters combine with AND.`,
	RunE: runSearch,
}

var (
	searchConfigPath  string
	searchDatabaseURL string
	searchSQLitePath  string
	searchName        string
	searchCompany     string
	searchGraduation  string
	searchSince       string
	searchJSONOut     bool
)

func init() {
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to JSON config file")
	searchCmd.Flags().StringVar(&searchDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")
	searchCmd.Flags().StringVar(&searchSQLitePath, "sqlite", "", "SQLite file path used when no database URL is set")
	searchCmd.Flags().StringVarP(&searchName, "name", "n", "", "Substring match on candidate name")
	searchCmd.Flags().StringVarP(&searchCompany, "company", "c", "", "Substring match on company")
	searchCmd.Flags().StringVarP(&searchGraduation, "graduation", "g", "", "Substring match on graduation")
	searchCmd.Flags().StringVar(&searchSince, "since", "", "Keep records created on or after this date (YYYY-MM-DD)")
	searchCmd.Flags().BoolVar(&searchJSONOut, "json", false, "Emit records as JSON")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(searchConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = searchDatabaseURL
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = searchSQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	filter := db.SearchFilter{
		Name:       searchName,
		Company:    searchCompany,
		Graduation: searchGraduation,
	}
	if searchSince != "" {
		since, err := time.Parse("2006-01-02", searchSince)
		if err != nil {
			return fmt.Errorf("invalid --since date %q (expected YYYY-MM-DD): %w", searchSince, err)
		}
		filter.CreatedSince = since
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	rows, err := store.Search(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to search resumes: %w", err)
	}

	if searchJSONOut {
		encoded, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal records: %w", err)
		}
		fmt.Println(string(encoded))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintResumes("Search Results", rows)
	return nil
}
