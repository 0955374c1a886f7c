package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRange_EnDash(t *testing.T) {
	start, end, hasEnd := SplitRange("Jan 2019 – Present")
	assert.Equal(t, "Jan 2019", start)
	assert.Equal(t, "Present", end)
	assert.True(t, hasEnd)
}

func TestSplitRange_Hyphen(t *testing.T) {
	start, end, hasEnd := SplitRange("2020-2022")
	assert.Equal(t, "2020", start)
	assert.Equal(t, "2022", end)
	assert.True(t, hasEnd)
}

func TestSplitRange_EnDashTakesPrecedence(t *testing.T) {
	// The hyphen inside the right side must not override the en-dash split.
	start, end, hasEnd := SplitRange("Jan 2019 – 2022-03")
	assert.Equal(t, "Jan 2019", start)
	assert.Equal(t, "2022-03", end)
	assert.True(t, hasEnd)
}

func TestSplitRange_MultipleDashesEndIsLastSegment(t *testing.T) {
	start, end, hasEnd := SplitRange("2018-2019-2020")
	assert.Equal(t, "2018", start)
	assert.Equal(t, "2020", end)
	assert.True(t, hasEnd)
}

func TestSplitRange_NoDash(t *testing.T) {
	start, end, hasEnd := SplitRange("March 2018")
	assert.Equal(t, "March 2018", start)
	assert.Equal(t, "", end)
	assert.False(t, hasEnd)
}

func TestMonthsBetween_ResolvedPair(t *testing.T) {
	start := &YearMonth{Year: 2019, Month: 1}
	end := &YearMonth{Year: 2019, Month: 12}
	assert.Equal(t, 11, MonthsBetween(start, end, fixedNow))
}

func TestMonthsBetween_AcrossYears(t *testing.T) {
	start := &YearMonth{Year: 2020, Month: 1}
	end := &YearMonth{Year: 2022, Month: 1}
	assert.Equal(t, 24, MonthsBetween(start, end, fixedNow))
}

func TestMonthsBetween_UnresolvedStartIsZero(t *testing.T) {
	end := &YearMonth{Year: 2030, Month: 1}
	assert.Equal(t, 0, MonthsBetween(nil, end, fixedNow))
	assert.Equal(t, 0, MonthsBetween(nil, nil, fixedNow))
}

func TestMonthsBetween_UnresolvedEndSubstitutesNow(t *testing.T) {
	start := &YearMonth{Year: 2019, Month: 1}
	want := (fixedNow.Year()-2019)*12 + (int(fixedNow.Month()) - 1)
	assert.Equal(t, want, MonthsBetween(start, nil, fixedNow))
}

func TestMonthsBetween_NegativePreserved(t *testing.T) {
	start := &YearMonth{Year: 2022, Month: 6}
	end := &YearMonth{Year: 2021, Month: 6}
	assert.Equal(t, -12, MonthsBetween(start, end, fixedNow))
}

func TestMonthsBetween_OrderSensitive(t *testing.T) {
	a := &YearMonth{Year: 2020, Month: 3}
	b := &YearMonth{Year: 2021, Month: 9}
	assert.Equal(t, -MonthsBetween(a, b, fixedNow), MonthsBetween(b, a, fixedNow))
}

func TestResolve_FullRange(t *testing.T) {
	parsed := Resolve("Jan 2019 – Dec 2019", fixedNow)
	require.NotNil(t, parsed.Start)
	require.NotNil(t, parsed.End)
	assert.Equal(t, YearMonth{Year: 2019, Month: 1}, *parsed.Start)
	assert.Equal(t, YearMonth{Year: 2019, Month: 12}, *parsed.End)
	assert.Equal(t, 11, parsed.Months)
}

func TestResolve_OpenEndedRange(t *testing.T) {
	parsed := Resolve("Jan 2019 – Present", fixedNow)
	require.NotNil(t, parsed.Start)
	require.NotNil(t, parsed.End)
	assert.Equal(t, YearMonth{Year: fixedNow.Year(), Month: int(fixedNow.Month())}, *parsed.End)
	assert.Equal(t, (fixedNow.Year()-2019)*12+(int(fixedNow.Month())-1), parsed.Months)
}

func TestResolve_YearOnlyRange(t *testing.T) {
	parsed := Resolve("2020-2022", fixedNow)
	assert.Equal(t, 24, parsed.Months)
}

func TestResolve_NoEndTokenFloatsToNow(t *testing.T) {
	// A bare start date has no end token, so the end stays unresolved and
	// the month count runs to the processing date.
	parsed := Resolve("March 2018", fixedNow)
	require.NotNil(t, parsed.Start)
	assert.Nil(t, parsed.End)
	assert.Equal(t, (fixedNow.Year()-2018)*12+(int(fixedNow.Month())-3), parsed.Months)
}

func TestResolve_Unparsable(t *testing.T) {
	parsed := Resolve("freelance work", fixedNow)
	assert.Nil(t, parsed.Start)
	assert.Nil(t, parsed.End)
	assert.Equal(t, 0, parsed.Months)
}

func TestResolve_EmptyText(t *testing.T) {
	parsed := Resolve("", fixedNow)
	assert.Nil(t, parsed.Start)
	assert.Zero(t, parsed.Months)
}

func TestResolve_TimeDependence(t *testing.T) {
	earlier := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	a := Resolve("Jan 2020 – Present", earlier)
	b := Resolve("Jan 2020 – Present", later)
	assert.Equal(t, a.Months+12, b.Months)
}
