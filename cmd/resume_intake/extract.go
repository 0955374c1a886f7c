package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-intake/internal/ingestion"
	"github.com/jonathan/resume-intake/internal/llm"
	"github.com/jonathan/resume-intake/internal/schemas"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured resume JSON from PDF and DOCX files",
	Long: `Reads a directory or zip archive of resume documents, extracts the text,
and asks the extraction model for structured JSON. Each document produces a
<name>_resume.json file in the output directory, ready for the process
command. Schema mismatches are logged as warnings but never block output.`,
	RunE: runExtract,
}

var (
	extractConfigPath string
	extractInput      string
	extractOutput     string
	extractAPIKey     string
	extractModel      string
)

func init() {
	extractCmd.Flags().StringVar(&extractConfigPath, "config", "", "Path to JSON config file")
	extractCmd.Flags().StringVarP(&extractInput, "input", "i", "", "Directory or zip archive of resume documents (required unless set in config)")
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Directory for extracted resume JSON (required unless set in config)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	extractCmd.Flags().StringVar(&extractModel, "model", "", "Extraction model name (default "+llm.DefaultModel+")")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfigFile(extractConfigPath)
	if err != nil {
		return err
	}

	// CLI flags override config file values
	if cmd.Flags().Changed("input") {
		cfg.Input = extractInput
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = extractOutput
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = extractAPIKey
	}
	if cmd.Flags().Changed("model") {
		cfg.Model = extractModel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Input == "" {
		return fmt.Errorf("input path is required (use --input or set 'input' in the config file)")
	}
	if cfg.Output == "" {
		return fmt.Errorf("output directory is required (use --output or set 'output' in the config file)")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	docs, err := collectDocuments(cfg.Input, ".pdf", ".docx")
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		return fmt.Errorf("no PDF or DOCX documents found in %s", cfg.Input)
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	ctx := context.Background()
	extractor, err := ingestion.NewGeminiExtractor(ctx, apiKey, cfg.Model)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}
	defer extractor.Close()

	extracted := 0
	for _, doc := range docs {
		outPath, err := extractOne(ctx, extractor, cfg.Output, doc.Name, doc.Content)
		if err != nil {
			log.Error().Str("file", doc.Name).Err(err).Msg("extraction failed")
			continue
		}
		extracted++
		fmt.Printf("Extracted %s -> %s\n", doc.Name, outPath)
	}

	if extracted == 0 {
		return fmt.Errorf("no documents were extracted successfully")
	}
	fmt.Printf("Extracted %d of %d documents.\n", extracted, len(docs))
	return nil
}

// extractOne runs one document through the extraction model, checks the
// result against the resume schema (warning only), and writes it next to
// its siblings as <base>_resume.json.
func extractOne(ctx context.Context, extractor *ingestion.GeminiExtractor, outputDir, name string, content []byte) (string, error) {
	data, err := extractor.Extract(ctx, name, content)
	if err != nil {
		return "", err
	}

	fieldErrors, err := schemas.ValidateResumeRecord(data)
	if err != nil {
		log.Warn().Str("file", name).Err(err).Msg("schema check could not run")
	}
	for _, fe := range fieldErrors {
		log.Warn().Str("file", name).Str("field", fe.Field).Msg(fe.Message)
	}

	base := strings.TrimSuffix(name, filepath.Ext(name))
	outPath := filepath.Join(outputDir, base+"_resume.json")
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", outPath, err)
	}
	return outPath, nil
}
