package duration

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedNow keeps floating tokens deterministic across test runs.
var fixedNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestParseDateToken_FloatingTokens(t *testing.T) {
	for _, token := range []string{"Present", "present", "PRESENT", "running", "Current", "  current  "} {
		ym, ok := ParseDateToken(token, fixedNow)
		require.True(t, ok, "token %q should resolve", token)
		assert.Equal(t, YearMonth{Year: 2025, Month: 6}, ym, "token %q", token)
	}
}

func TestParseDateToken_FixedFormats(t *testing.T) {
	cases := []struct {
		in    string
		year  int
		month int
	}{
		{"Mar 2019", 2019, 3},
		{"March 2019", 2019, 3},
		{"mar 2019", 2019, 3},
		{"Mar. 2019", 2019, 3},
		{"March. 2018", 2018, 3},
		{"2019-07", 2019, 7},
		{"07-2019", 2019, 7},
		{"15 Jan 2020", 2020, 1},
		{"15 January 2020", 2020, 1},
		{"Jan 15, 2020", 2020, 1},
		{"January 15, 2020", 2020, 1},
		{"2019", 2019, 1},
		{"03/2021", 2021, 3},
		{"2021/03", 2021, 3},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ym, ok := ParseDateToken(tc.in, fixedNow)
			require.True(t, ok)
			assert.Equal(t, YearMonth{Year: tc.year, Month: tc.month}, ym)
		})
	}
}

func TestParseDateToken_BareYearDefaultsToJanuary(t *testing.T) {
	ym, ok := ParseDateToken("2019", fixedNow)
	require.True(t, ok)
	assert.Equal(t, YearMonth{Year: 2019, Month: 1}, ym)
}

func TestParseDateToken_LenientFallback(t *testing.T) {
	// "sept" is not a fixed-layout month abbreviation, so it reaches the
	// lenient pattern where the "sep" prefix selects September.
	ym, ok := ParseDateToken("sept 2019", fixedNow)
	require.True(t, ok)
	assert.Equal(t, YearMonth{Year: 2019, Month: 9}, ym)
}

func TestParseDateToken_LenientFallbackUnknownWordDefaultsToJanuary(t *testing.T) {
	ym, ok := ParseDateToken("since 2017", fixedNow)
	require.True(t, ok)
	assert.Equal(t, YearMonth{Year: 2017, Month: 1}, ym)
}

func TestParseDateToken_LenientFallbackInvalidYear(t *testing.T) {
	_, ok := ParseDateToken("foo 0000", fixedNow)
	assert.False(t, ok)
}

func TestParseDateToken_Empty(t *testing.T) {
	_, ok := ParseDateToken("", fixedNow)
	assert.False(t, ok)

	_, ok = ParseDateToken("   ", fixedNow)
	assert.False(t, ok)
}

func TestParseDateToken_Noise(t *testing.T) {
	for _, token := range []string{"n/a", "ongoing", "two years", "??"} {
		_, ok := ParseDateToken(token, fixedNow)
		assert.False(t, ok, "token %q should not resolve", token)
	}
}

func TestParseDateToken_FirstMatchingFormatWins(t *testing.T) {
	// "2019-07" is ambiguous between year-month and month-year; the
	// year-first layout comes earlier in the list and must win.
	ym, ok := ParseDateToken("2019-07", fixedNow)
	require.True(t, ok)
	assert.Equal(t, 2019, ym.Year)
	assert.Equal(t, 7, ym.Month)
}

func TestParseDateToken_AllMonthPrefixes(t *testing.T) {
	names := []string{"jany", "feby", "mary", "apry", "mayy", "juny", "july", "augy", "sepy", "octy", "novy", "decy"}
	for i, name := range names {
		token := fmt.Sprintf("%s 2020", name)
		ym, ok := ParseDateToken(token, fixedNow)
		require.True(t, ok, "token %q", token)
		assert.Equal(t, i+1, ym.Month, "token %q", token)
	}
}
