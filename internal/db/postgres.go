package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store on a PostgreSQL connection pool, for
// deployments where the resume table is shared infrastructure rather than a
// local file.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool to the database.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Init creates the resumes table if it does not exist.
func (s *PostgresStore) Init(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resumes (
			name TEXT,
			mobile TEXT PRIMARY KEY,
			email TEXT,
			graduation TEXT,
			company TEXT,
			role TEXT,
			calculated_duration INTEGER,
			total_experience INTEGER,
			created_at DATE NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("failed to create resumes table: %w", err)
	}
	return nil
}

// Insert applies the skip policy and reports whether a row was written.
func (s *PostgresStore) Insert(ctx context.Context, row Resume, processingDate time.Time) (bool, error) {
	day := processingDate.Format(dayFormat)

	var older int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resumes WHERE mobile = $1 AND created_at < $2`,
		row.Mobile, day,
	).Scan(&older)
	if err != nil {
		return false, fmt.Errorf("failed to check existing record for %s: %w", row.Mobile, err)
	}
	if older > 0 {
		return false, nil
	}

	// A same-day record may still exist; leave it untouched rather than merging.
	tag, err := s.pool.Exec(ctx, `
		INSERT INTO resumes (name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (mobile) DO NOTHING`,
		row.Name, row.Mobile, row.Email, row.Graduation, row.Company, row.Role,
		clampMonths(row.DurationMonths), clampMonths(row.TotalMonths), day,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert record for %s: %w", row.Mobile, err)
	}
	return tag.RowsAffected() > 0, nil
}

// List returns every stored resume.
func (s *PostgresStore) List(ctx context.Context) ([]Resume, error) {
	return s.query(ctx, `SELECT name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at FROM resumes ORDER BY mobile`)
}

// Update overwrites the record for row.Mobile.
func (s *PostgresStore) Update(ctx context.Context, row Resume) error {
	_, err := s.pool.Exec(ctx, `
		UPDATE resumes
		SET name = $1, email = $2, graduation = $3, company = $4, role = $5, calculated_duration = $6, total_experience = $7
		WHERE mobile = $8`,
		row.Name, row.Email, row.Graduation, row.Company, row.Role,
		clampMonths(row.DurationMonths), clampMonths(row.TotalMonths), row.Mobile,
	)
	if err != nil {
		return fmt.Errorf("failed to update record for %s: %w", row.Mobile, err)
	}
	return nil
}

// Delete removes the record for the given mobile.
func (s *PostgresStore) Delete(ctx context.Context, mobile string) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM resumes WHERE mobile = $1`, mobile); err != nil {
		return fmt.Errorf("failed to delete record for %s: %w", mobile, err)
	}
	return nil
}

// Search returns records matching the filter.
func (s *PostgresStore) Search(ctx context.Context, filter SearchFilter) ([]Resume, error) {
	query := `SELECT name, mobile, email, graduation, company, role, calculated_duration, total_experience, created_at FROM resumes WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.Name != "" {
		query += ` AND name LIKE ` + arg("%"+filter.Name+"%")
	}
	if filter.Company != "" {
		query += ` AND company LIKE ` + arg("%"+filter.Company+"%")
	}
	if filter.Graduation != "" {
		query += ` AND graduation LIKE ` + arg("%"+filter.Graduation+"%")
	}
	if !filter.CreatedSince.IsZero() {
		query += ` AND created_at >= ` + arg(filter.CreatedSince.Format(dayFormat))
	}
	query += ` ORDER BY mobile`
	return s.query(ctx, query, args...)
}

// Close releases the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]Resume, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("resume query failed: %w", err)
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		var r Resume
		if err := rows.Scan(&r.Name, &r.Mobile, &r.Email, &r.Graduation, &r.Company, &r.Role, &r.DurationMonths, &r.TotalMonths, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resume query failed: %w", err)
	}
	return out, nil
}
