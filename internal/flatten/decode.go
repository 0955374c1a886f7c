package flatten

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/resume-intake/internal/types"
)

// DecodeRecord parses one extracted document into a RawResumeRecord. Shape
// problems inside a well-formed object never fail: wrong-typed fields degrade
// to empty strings. Only empty input, malformed JSON, and a non-object top
// level are reported, as an ErrorEntry the caller appends to the batch log.
func DecodeRecord(source string, data []byte) (*types.RawResumeRecord, *ErrorEntry) {
	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, &ErrorEntry{Source: source, Kind: KindEmptyInput, Message: "document is empty"}
	}

	var decoded any
	if err := json.Unmarshal([]byte(content), &decoded); err != nil {
		return nil, &ErrorEntry{Source: source, Kind: KindMalformedSyntax, Message: err.Error()}
	}

	obj, ok := decoded.(map[string]any)
	if !ok {
		return nil, &ErrorEntry{Source: source, Kind: KindUnexpectedShape, Message: "top level is not a single object"}
	}

	record := &types.RawResumeRecord{
		Name:   getString(obj, "Name"),
		Mobile: getString(obj, "Mobile"),
		Email:  getString(obj, "Email"),
	}

	if grad, ok := obj["Graduation"].(map[string]any); ok {
		record.Graduation = types.Graduation{
			Degree:      getString(grad, "Degree"),
			Institution: getString(grad, "Institution"),
		}
	}

	if entries, ok := anySlice(obj, "Work Experiences", "WorkExperiences"); ok {
		for _, entry := range entries {
			exp, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			record.WorkExperiences = append(record.WorkExperiences, types.WorkExperience{
				Company:  getString(exp, "Company"),
				Role:     getString(exp, "Role"),
				Duration: getString(exp, "Duration"),
			})
		}
	}

	return record, nil
}

// getString reads a field defensively: strings pass through, numbers are
// formatted (mobile numbers sometimes arrive as JSON numbers), and a list
// degrades to its first element. Anything else is the empty string.
func getString(obj map[string]any, key string) string {
	return coerceString(obj[key])
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		if len(val) == 0 {
			return ""
		}
		return coerceString(val[0])
	default:
		return ""
	}
}

// anySlice reads the first present list field among the candidate keys.
func anySlice(obj map[string]any, keys ...string) ([]any, bool) {
	for _, key := range keys {
		if list, ok := obj[key].([]any); ok {
			return list, true
		}
	}
	return nil, false
}
