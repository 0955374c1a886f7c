package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/aggregate"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <mobile>",
	Short: "Delete the stored record for a mobile number",
	Long: `Deletes the resume record stored under the given mobile number. The
argument is normalized to digits first, so formatted numbers like
"+91 98765-43210" address the same record as their bare form.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var (
	deleteConfigPath  string
	deleteDatabaseURL string
	deleteSQLitePath  string
)

func init() {
	deleteCmd.Flags().StringVar(&deleteConfigPath, "config", "", "Path to JSON config file")
	deleteCmd.Flags().StringVar(&deleteDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")
	deleteCmd.Flags().StringVar(&deleteSQLitePath, "sqlite", "", "SQLite file path used when no database URL is set")

	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfigFile(deleteConfigPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = deleteDatabaseURL
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = deleteSQLitePath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	mobile := aggregate.NormalizeMobile(args[0])
	if mobile == "" {
		return fmt.Errorf("mobile number %q contains no digits", args[0])
	}

	ctx := context.Background()
	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(ctx, mobile); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", mobile, err)
	}
	fmt.Printf("Deleted record for %s.\n", mobile)
	return nil
}
