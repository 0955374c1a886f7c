package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// dayFormat is how created_at days are stored in SQLite. ISO dates compare
// correctly as text, which the skip policy's created_at < ? check relies on.
const dayFormat = "2006-01-02"

// SQLiteStore is the default local backend, a single-file database in the
// spirit of the tool's original resumes.db.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the SQLite database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database %s: %w", path, err)
	}
	// modernc sqlite does not tolerate concurrent writers over a connection pool.
	db.SetMaxOpenConns(1)
	return &SQLiteStore{db: db}, nil
}

// Init creates the resumes table if it does not exist.
func (s *SQLiteStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			name TEXT,
			mobile TEXT PRIMARY KEY,
			email TEXT,
			graduation TEXT,
			company TEXT,
			role TEXT,
			calculated_duration INTEGER,
			total_experience INTEGER,
			created_at TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create resumes table: %w", err)
	}
	return nil
}

// Insert applies the skip policy and reports whether a row was written.
func (s *SQLiteStore) Insert(ctx context.Context, row Resume, processingDate time.Time) (bool, error) {
	day := processingDate.Format(dayFormat)

	var older int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM resumes WHERE mobile = ? AND created_at < ?`,
		row.Mobile, day,
	).Scan(&older)
	if err != nil {
		return false, fmt.Errorf("failed to check existing record for %s: %w", row.Mobile, err)
	}
	if older > 0 {
		return false, nil
	}

	// A same-day record may still exist; leave it untouched rather than merging.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO resumes (name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (mobile) DO NOTHING`,
		row.Name, row.Mobile, row.Email, row.Graduation, row.Company, row.Role,
		clampMonths(row.DurationMonths), clampMonths(row.TotalMonths), day,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert record for %s: %w", row.Mobile, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read insert result: %w", err)
	}
	return affected > 0, nil
}

// List returns every stored resume.
func (s *SQLiteStore) List(ctx context.Context) ([]Resume, error) {
	return s.query(ctx, `SELECT name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at FROM resumes ORDER BY mobile`)
}

// Update overwrites the record for row.Mobile.
func (s *SQLiteStore) Update(ctx context.Context, row Resume) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE resumes
		SET name = ?, email = ?, graduation = ?, company = ?, role = ?, calculated_duration = ?, total_experience = ?
		WHERE mobile = ?`,
		row.Name, row.Email, row.Graduation, row.Company, row.Role,
		clampMonths(row.DurationMonths), clampMonths(row.TotalMonths), row.Mobile,
	)
	if err != nil {
		return fmt.Errorf("failed to update record for %s: %w", row.Mobile, err)
	}
	return nil
}

// Delete removes the record for the given mobile.
func (s *SQLiteStore) Delete(ctx context.Context, mobile string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM resumes WHERE mobile = ?`, mobile); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", mobile, err)
	}
	return nil
}

// Search returns records matching the filter.
func (s *SQLiteStore) Search(ctx context.Context, filter SearchFilter) ([]Resume, error) {
	query := `SELECT name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at FROM resumes WHERE 1=1`
	var args []any
	if filter.Name != "" {
		query += ` AND name LIKE ?`
		args = append(args, "%"+filter.Name+"%")
	}
	if filter.Company != "" {
		query += ` AND company LIKE ?`
		args = append(args, "%"+filter.Company+"%")
	}
	if filter.Graduation != "" {
		query += ` AND graduation LIKE ?`
		args = append(args, "%"+filter.Graduation+"%")
	}
	if !filter.CreatedSince.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, filter.CreatedSince.Format(dayFormat))
	}
	query += ` ORDER BY mobile`
	return s.query(ctx, query, args...)
}

// Close releases the underlying connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...any) ([]Resume, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resume query failed: %w", err)
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var r Resume
		var createdAt string
		if err := rows.Scan(&r.Name, &r.Mobile, &r.Email, &r.Graduation, &r.Company, &r.Role, &r.DurationMonths, &r.TotalMonths, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		r.CreatedAt, _ = time.Parse(dayFormat, createdAt)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resume query failed: %w", err)
	}
	return out, nil
}
