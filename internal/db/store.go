// Package db provides durable storage for processed resume rows, keyed by
// the candidate's normalized mobile number. Two backends implement the same
// Store interface: a local SQLite file and PostgreSQL.
package db

import (
	"context"
	"time"
)

// Resume is one stored candidate record. DurationMonths and TotalMonths are
// already clamped to non-negative values: the storage boundary is where
// arithmetic anomalies (end-before-start ranges) are coerced to zero.
type Resume struct {
	Name           string    `json:"name"`
	Mobile         string    `json:"mobile"`
	Email          string    `json:"email"`
	Graduation     string    `json:"graduation"`
	Company        string    `json:"company"`
	Role           string    `json:"role"`
	DurationMonths int       `json:"calculated_duration"`
	TotalMonths    int       `json:"total_experience"`
	CreatedAt      time.Time `json:"created_at"`
}

// SearchFilter narrows a resume search. Empty fields match everything;
// text fields match as case-sensitive substrings.
type SearchFilter struct {
	Name         string
	Company      string
	Graduation   string
	CreatedSince time.Time
}

// Store is the persistence surface for processed rows.
//
// Insert obeys the skip policy: a row is inserted only when no record for
// its mobile exists that was created before the processing date. An existing
// older record, or an existing same-day record, leaves the table untouched —
// at most one fresh insert per key per calendar day. The policy is part of
// the storage contract and must survive reimplementation.
type Store interface {
	// Init creates the resumes table if it does not exist.
	Init(ctx context.Context) error
	// Insert applies the skip policy and reports whether a row was written.
	Insert(ctx context.Context, row Resume, processingDate time.Time) (bool, error)
	// List returns every stored resume.
	List(ctx context.Context) ([]Resume, error)
	// Update overwrites the record for row.Mobile.
	Update(ctx context.Context, row Resume) error
	// Delete removes the record for the given mobile.
	Delete(ctx context.Context, mobile string) error
	// Search returns records matching the filter.
	Search(ctx context.Context, filter SearchFilter) ([]Resume, error)
	// Close releases the underlying connection.
	Close() error
}

// clampMonths coerces negative or otherwise anomalous month counts to zero.
// Only the storage boundary applies this; upstream the raw value is kept so
// callers and tests can observe it.
func clampMonths(months int) int {
	if months < 0 {
		return 0
	}
	return months
}
