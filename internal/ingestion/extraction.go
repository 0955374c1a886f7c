package ingestion

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-intake/internal/llm"
)

// Extractor turns one resume file into semi-structured resume JSON. It is
// the system's only dependency on the external extraction service; a failed
// extraction skips that document and the batch continues — there are no
// retries here.
type Extractor interface {
	// Extract returns the structured resume JSON for one document.
	Extract(ctx context.Context, filename string, data []byte) ([]byte, error)
}

// GeminiExtractor implements Extractor on top of the Gemini client: plain
// text is pulled from the file locally, then the model maps it to the
// resume record shape.
type GeminiExtractor struct {
	client llm.Client
}

// NewGeminiExtractor creates an extractor backed by a new Gemini client.
func NewGeminiExtractor(ctx context.Context, apiKey, model string) (*GeminiExtractor, error) {
	client, err := llm.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return nil, fmt.Errorf("failed to create extractor: %w", err)
	}
	return &GeminiExtractor{client: client}, nil
}

// NewExtractorWithClient wires an extractor onto an existing client. Tests
// use this to substitute a fake model.
func NewExtractorWithClient(client llm.Client) *GeminiExtractor {
	return &GeminiExtractor{client: client}
}

// Extract converts one resume file to structured JSON.
func (e *GeminiExtractor) Extract(ctx context.Context, filename string, data []byte) ([]byte, error) {
	text, err := ExtractText(filename, data)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("no text content in %s", filename)
	}

	response, err := e.client.GenerateJSON(ctx, llm.BuildResumeExtractionPrompt(text))
	if err != nil {
		return nil, fmt.Errorf("extraction failed for %s: %w", filename, err)
	}
	return []byte(response), nil
}

// Close releases the underlying model client.
func (e *GeminiExtractor) Close() error {
	return e.client.Close()
}
