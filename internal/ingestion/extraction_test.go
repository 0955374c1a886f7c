package ingestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClient returns a canned response and records the prompt it was given.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestGeminiExtractor_Extract(t *testing.T) {
	client := &fakeClient{response: `{"Name": "Priya Sharma", "Mobile": "9876543210"}`}
	extractor := NewExtractorWithClient(client)

	data := buildDocx(t, `<w:p><w:t>Priya Sharma, 9876543210</w:t></w:p>`)
	out, err := extractor.Extract(context.Background(), "priya.docx", data)
	require.NoError(t, err)

	assert.JSONEq(t, `{"Name": "Priya Sharma", "Mobile": "9876543210"}`, string(out))
	// The resume's extracted text must reach the model prompt.
	assert.Contains(t, client.prompt, "Priya Sharma, 9876543210")
	assert.Contains(t, client.prompt, "Work Experiences")
}

func TestGeminiExtractor_ModelFailurePropagates(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	extractor := NewExtractorWithClient(client)

	data := buildDocx(t, `<w:p><w:t>text</w:t></w:p>`)
	_, err := extractor.Extract(context.Background(), "x.docx", data)
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestGeminiExtractor_UnsupportedFileFailsBeforeModelCall(t *testing.T) {
	client := &fakeClient{response: "{}"}
	extractor := NewExtractorWithClient(client)

	_, err := extractor.Extract(context.Background(), "resume.txt", []byte("plain"))
	require.Error(t, err)
	assert.Empty(t, client.prompt)
}
