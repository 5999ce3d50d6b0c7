/*
Package cliparse handles configuration from CLI flags and environment
variables.

Flags take precedence; the environment (parsed with caarlos0/env,
including defaults) fills the gaps:

  - PORT (-p): listen port (default: 3000)
  - DATABASE_PATH (-d): SQLite file path (default: paperstock.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-u): PostgreSQL connection string (postgres only)
*/
package cliparse
