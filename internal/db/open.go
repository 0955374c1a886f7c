package db

import "context"

// DefaultSQLitePath is where the local database lives when no backend is
// configured explicitly.
const DefaultSQLitePath = "resumes.db"

// Open selects a backend: PostgreSQL when a database URL is configured,
// otherwise the local SQLite file.
func Open(ctx context.Context, databaseURL, sqlitePath string) (Store, error) {
	if databaseURL != "" {
		return ConnectPostgres(ctx, databaseURL)
	}
	if sqlitePath == "" {
		sqlitePath = DefaultSQLitePath
	}
	return OpenSQLite(sqlitePath)
}
