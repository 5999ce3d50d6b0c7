/*
Package db handles database connection and schema creation.

# Backends

Open selects the driver from the configuration:

  - sqlite (default): a single file, WAL journaling, foreign keys on
  - postgres: connection string from DATABASE_URL

The schema is written in the SQL subset both engines accept; ids are
generated in the application, so no engine-specific sequences exist.

# Tables

  - paper_type: one row per paper stock; cross_adjust holds both
    orientations' offset pairs as JSON
  - paper_history: append-only adjustment audit log, one row per
    change with full old/new snapshots

# Relationships

	paper_type 1──* paper_history (ON DELETE CASCADE)

# Uniqueness

A unique expression index on (LOWER(name), weight, width, height)
backs the duplicate rejection performed in the store.
*/
package db
