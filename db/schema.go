package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The SQL sticks to
// the subset both SQLite and PostgreSQL accept.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Paper types
CREATE TABLE IF NOT EXISTS paper_type (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    weight INTEGER NOT NULL CHECK (weight > 0),
    width INTEGER NOT NULL CHECK (width > 0),
    height INTEGER NOT NULL CHECK (height > 0),
    coating TEXT NOT NULL CHECK (coating IN ('coated', 'uncoated')),
    printing_wedges BOOLEAN NOT NULL,
    nozzle_reconditioning BOOLEAN NOT NULL,
    cross_side TEXT NOT NULL CHECK (cross_side IN ('short', 'long')),
    cross_adjust TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_paper_type_identity
    ON paper_type (LOWER(name), weight, width, height);
CREATE INDEX IF NOT EXISTS idx_paper_type_name ON paper_type(name);

-- Adjustment history (append-only; rows removed only by cascade)
CREATE TABLE IF NOT EXISTS paper_history (
    id TEXT PRIMARY KEY,
    paper_id TEXT NOT NULL REFERENCES paper_type(id) ON DELETE CASCADE,
    seq INTEGER NOT NULL,
    old_values TEXT NOT NULL,
    new_values TEXT NOT NULL,
    changed_at TIMESTAMP NOT NULL,
    UNIQUE (paper_id, seq)
);

CREATE INDEX IF NOT EXISTS idx_paper_history_paper_id ON paper_history(paper_id);
`
