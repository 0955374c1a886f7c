// Package aggregate groups per-stint month counts into per-candidate totals.
package aggregate

import "strings"

// NormalizeMobile strips every non-digit character from a mobile number so
// that formatting variants ("987-654-3210", "(987) 654 3210") group under the
// same key. The result may be empty when the input carries no digits.
func NormalizeMobile(mobile string) string {
	var b strings.Builder
	for _, r := range mobile {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Stint is the minimal view of a flat row the aggregation needs: the
// candidate's mobile number and the computed month count for one employment
// stint.
type Stint struct {
	Mobile string
	Months int
}

// Totals sums stint months per normalized mobile. Stints whose mobile
// normalizes to the empty string cannot be grouped and are excluded. The
// function is pure: the same input always yields the same mapping, with
// exactly one entry per distinct normalized mobile.
func Totals(stints []Stint) map[string]int {
	totals := make(map[string]int)
	for _, s := range stints {
		key := NormalizeMobile(s.Mobile)
		if key == "" {
			continue
		}
		totals[key] += s.Months
	}
	return totals
}
