// Package schemas provides JSON Schema validation for extraction output.
// Validation here is advisory: the flattener tolerates any shape, so a
// schema miss is reported to the operator but never blocks a document.
package schemas

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed resume_record.schema.json
var resumeRecordSchema string

// FieldError is a single validation finding at a specific field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidateResumeRecord checks extraction output against the resume record
// schema and returns the findings. A non-nil error means the document could
// not be checked at all (e.g. it is not JSON); an empty slice means it
// conforms.
func ValidateResumeRecord(data []byte) ([]FieldError, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(resumeRecordSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation failed to run: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	findings := make([]FieldError, 0, len(result.Errors()))
	for _, issue := range result.Errors() {
		findings = append(findings, FieldError{
			Field:   issue.Field(),
			Message: issue.Description(),
		})
	}
	return findings, nil
}
