package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/db"
	"github.com/jonathan/resume-intake/internal/observability"
	"github.com/jonathan/resume-intake/internal/pipeline"
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Flatten a batch of extracted resume JSON into experience rows",
	Long: `Reads a directory or zip archive of extracted resume JSON files, flattens
each resume into one row per employment stint, resolves duration text into
month counts, and aggregates total experience per candidate. Prints a batch
report; use --save to also persist the rows.`,
	RunE: runProcess,
}

var (
	processConfigPath  string
	processInput       string
	processWorkers     int
	processSave        bool
	processJSONOut     bool
	processDatabaseURL string
	processSQLitePath  string
	processVerbose     bool
	processQuiet       bool
)

func init() {
	processCmd.Flags().StringVar(&processConfigPath, "config", "", "Path to JSON config file")
	processCmd.Flags().StringVarP(&processInput, "input", "i", "", "Directory or zip archive of extracted resume JSON (required unless set in config)")
	processCmd.Flags().IntVarP(&processWorkers, "workers", "w", 0, "Concurrent documents during flattening (0 = one per CPU)")
	processCmd.Flags().BoolVar(&processSave, "save", false, "Persist rows to the resume store after processing")
	processCmd.Flags().BoolVar(&processJSONOut, "json", false, "Emit the full batch result as JSON instead of a report")
	processCmd.Flags().StringVar(&processDatabaseURL, "database-url", "", "PostgreSQL connection URL (overrides DATABASE_URL env var)")
	processCmd.Flags().StringVar(&processSQLitePath, "sqlite", "", "SQLite file path used when no database URL is set")
	processCmd.Flags().BoolVarP(&processVerbose, "verbose", "v", false, "Also print the error log and per-candidate totals")
	processCmd.Flags().BoolVarP(&processQuiet, "quiet", "q", false, "Suppress the batch report (errors are still logged)")

	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(processConfigPath)
	if err != nil {
		return err
	}

	// CLI flags override config file values
	if cmd.Flags().Changed("input") {
		cfg.Input = processInput
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = processWorkers
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = processDatabaseURL
	}
	if cmd.Flags().Changed("sqlite") {
		cfg.SQLitePath = processSQLitePath
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = processVerbose
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("input path is required (use --input or set 'input' in the config file)")
	}

	docs, err := collectDocuments(cfg.Input, ".json", ".jsonl")
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := pipeline.Process(ctx, docs, pipeline.Options{
		Workers: cfg.Workers,
		OnProgress: func(event pipeline.ProgressEvent) {
			log.Debug().Str("step", event.Step).Str("run_id", event.RunID).Msg(event.Message)
		},
	})
	if err != nil {
		return fmt.Errorf("failed to process batch: %w", err)
	}

	if processJSONOut {
		encoded, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal batch result: %w", err)
		}
		fmt.Println(string(encoded))
	} else if !processQuiet {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintBatchReport(result)
		if cfg.Verbose {
			printer.PrintErrorLog(result)
			printer.PrintTotals(result.Totals)
		}
	}

	if !processSave {
		return nil
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	inserted := 0
	for _, row := range result.Rows {
		ok, err := store.Insert(ctx, rowToResume(row), result.Now)
		if err != nil {
			return fmt.Errorf("failed to save row for %s: %w", row.Name, err)
		}
		if ok {
			inserted++
		}
	}
	log.Info().Int("inserted", inserted).Int("rows", len(result.Rows)).Msg("batch saved")
	fmt.Printf("Saved %d of %d rows.\n", inserted, len(result.Rows))
	return nil
}

// rowToResume maps a processed pipeline row onto the storage record. The
// store applies its own clamping; raw month values pass through unchanged.
func rowToResume(row pipeline.Row) db.Resume {
	return db.Resume{
		Name:           row.Name,
		Mobile:         row.NormalizedMobile,
		Email:          row.Email,
		Graduation:     row.Graduation,
		Company:        row.Company,
		Role:           row.Role,
		DurationMonths: row.Parsed.Months,
		TotalMonths:    row.TotalMonths,
	}
}

