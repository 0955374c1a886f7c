package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMobile(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"9876543210", "9876543210"},
		{"987-654-3210", "9876543210"},
		{"(987) 654 3210", "9876543210"},
		{"+91 98765 43210", "919876543210"},
		{"not a number", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeMobile(tc.in), "input %q", tc.in)
	}
}

func TestTotals_GroupsFormattingVariants(t *testing.T) {
	stints := []Stint{
		{Mobile: "987-654-3210", Months: 11},
		{Mobile: "9876543210", Months: 17},
	}

	totals := Totals(stints)

	assert.Len(t, totals, 1)
	assert.Equal(t, 28, totals["9876543210"])
}

func TestTotals_OneEntryPerCandidate(t *testing.T) {
	stints := []Stint{
		{Mobile: "1111111111", Months: 12},
		{Mobile: "2222222222", Months: 6},
		{Mobile: "1111111111", Months: 3},
	}

	totals := Totals(stints)

	assert.Len(t, totals, 2)
	assert.Equal(t, 15, totals["1111111111"])
	assert.Equal(t, 6, totals["2222222222"])
}

func TestTotals_ExcludesEmptyMobile(t *testing.T) {
	stints := []Stint{
		{Mobile: "", Months: 12},
		{Mobile: "n/a", Months: 7},
		{Mobile: "5555555555", Months: 4},
	}

	totals := Totals(stints)

	assert.Len(t, totals, 1)
	assert.Equal(t, 4, totals["5555555555"])
}

func TestTotals_NegativeMonthsFlowThrough(t *testing.T) {
	// Negative stint counts (end before start) are preserved into the sum;
	// clamping happens only at the storage boundary.
	stints := []Stint{
		{Mobile: "5555555555", Months: -6},
		{Mobile: "5555555555", Months: 10},
	}

	assert.Equal(t, 4, Totals(stints)["5555555555"])
}

func TestTotals_Idempotent(t *testing.T) {
	stints := []Stint{
		{Mobile: "987-654-3210", Months: 11},
		{Mobile: "9876543210", Months: 17},
	}

	first := Totals(stints)
	second := Totals(stints)

	assert.Equal(t, first, second)
}

func TestTotals_EmptyInput(t *testing.T) {
	assert.Empty(t, Totals(nil))
}
