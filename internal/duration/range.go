package duration

import (
	"strings"
	"time"
)

// ParsedDuration is the resolved form of one free-text duration string.
// Start and End are nil when unresolved. Months is the raw month count
// between the two points: it can be negative when the data places the end
// before the start, and callers must preserve that sign until the storage
// boundary.
type ParsedDuration struct {
	Start  *YearMonth `json:"start_date,omitempty"`
	End    *YearMonth `json:"end_date,omitempty"`
	Months int        `json:"calculated_duration_months"`
}

// SplitRange splits a free-text duration into start and end tokens. An
// en-dash takes precedence over a plain hyphen; with multiple dashes the end
// token is the last segment, not the second. Text without a dash is entirely
// the start token and hasEnd is false.
func SplitRange(text string) (start, end string, hasEnd bool) {
	for _, dash := range []string{"–", "-"} {
		if strings.Contains(text, dash) {
			parts := strings.Split(text, dash)
			return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[len(parts)-1]), true
		}
	}
	return strings.TrimSpace(text), "", false
}

// MonthsBetween computes the month count between two calendar points. An
// unresolved start yields 0 regardless of the end; an unresolved end is
// substituted with the current processing date. The result is not clamped:
// an end before the start produces a negative count, and swapping the
// arguments changes the sign.
func MonthsBetween(start, end *YearMonth, now time.Time) int {
	if start == nil {
		return 0
	}
	if end == nil {
		end = &YearMonth{Year: now.Year(), Month: int(now.Month())}
	}
	return (end.Year-start.Year)*12 + (end.Month - start.Month)
}

// Resolve parses a full duration string into its start and end points and
// month count, relative to the given processing date.
func Resolve(text string, now time.Time) ParsedDuration {
	startToken, endToken, hasEnd := SplitRange(text)

	var parsed ParsedDuration
	if ym, ok := ParseDateToken(startToken, now); ok {
		parsed.Start = &ym
	}
	if hasEnd {
		if ym, ok := ParseDateToken(endToken, now); ok {
			parsed.End = &ym
		}
	}
	parsed.Months = MonthsBetween(parsed.Start, parsed.End, now)
	return parsed
}
