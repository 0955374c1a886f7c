package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from a model response. Models
// often wrap JSON in ```json ... ``` even when told not to; anything outside
// the fence is discarded.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	// Drop a language tag ("json") on the opening fence line.
	if nl := strings.Index(body, "\n"); nl >= 0 && !strings.ContainsAny(body[:nl], " {[") {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
