// Package duration parses free-text employment date ranges into calendar
// points and month counts. Resume durations arrive in wildly inconsistent
// shapes ("Jan 2019 – Present", "2020-2022", "March. 2018"); this package
// resolves what it can and treats "unresolved" as a first-class outcome
// rather than an error.
package duration

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// YearMonth is a calendar point with month resolution.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// fixedLayouts are tried in order against a trimmed, lowercased token.
// The first layout that parses wins.
var fixedLayouts = []string{
	"Jan 2006",
	"January 2006",
	"2006-01",
	"01-2006",
	"Jan. 2006",
	"January. 2006",
	"2 Jan 2006",
	"2 January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006",
	"01/2006",
	"2006/01",
}

// monthsByPrefix maps the first three letters of an English month name
// (full or abbreviated) to its number.
var monthsByPrefix = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4,
	"may": 5, "jun": 6, "jul": 7, "aug": 8,
	"sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// lenientDatePattern recovers a "<word> <4-digit year>" token embedded in
// noisier text once every fixed layout has failed.
var lenientDatePattern = regexp.MustCompile(`(\w+)\s*(\d{4})`)

// floatingTokens resolve to the current processing date rather than a fixed
// calendar point.
var floatingTokens = map[string]bool{
	"present": true,
	"running": true,
	"current": true,
}

// ParseDateToken resolves a free-text date token to a (year, month) point.
// The boolean reports whether the token resolved; an unresolved token is a
// legitimate value, not an error. "Present", "running" and "current" (any
// case) float to now's year and month, so output is time-dependent.
func ParseDateToken(token string, now time.Time) (YearMonth, bool) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return YearMonth{}, false
	}

	if floatingTokens[token] {
		return YearMonth{Year: now.Year(), Month: int(now.Month())}, true
	}

	for _, layout := range fixedLayouts {
		if t, err := time.Parse(layout, token); err == nil {
			return YearMonth{Year: t.Year(), Month: int(t.Month())}, true
		}
	}

	// Lenient fallback: a word followed by a 4-digit year. The word's first
	// three letters select the month; an unrecognized word means January.
	if m := lenientDatePattern.FindStringSubmatch(token); m != nil {
		year, err := strconv.Atoi(m[2])
		if err != nil || year < 1 {
			return YearMonth{}, false
		}
		month := 1
		word := m[1]
		if len(word) >= 3 {
			if n, ok := monthsByPrefix[word[:3]]; ok {
				month = n
			}
		}
		return YearMonth{Year: year, Month: month}, true
	}

	return YearMonth{}, false
}
