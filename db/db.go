package db

import (
	"database/sql"
	"fmt"
	"path/filepath"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/printdeck/paperstock/cliparse"
)

// Open connects to the configured database backend. SQLite is the
// default: a single file on disk with WAL journaling and foreign keys
// enabled. Postgres is selected with DATABASE_TYPE=postgres and a
// DATABASE_URL.
func Open(cfg cliparse.Config) (*sql.DB, error) {
	switch cfg.DatabaseType {
	case "postgres":
		conn, err := sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return conn, nil
	case "sqlite":
		dsn := filepath.Clean(cfg.DatabasePath) +
			"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
		conn, err := sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		// The sqlite driver opens one file handle per pooled
		// connection; a single writer avoids SQLITE_BUSY races.
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}
}
