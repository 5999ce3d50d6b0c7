/*
Package main provides the entry point for the Paperstock API server.

Paperstock is a catalog manager for print-shop paper stock: paper
types grouped by brand, physical attributes, and per-paper cross
adjustment offsets for both grain orientations, with an audit history
of every adjustment change.

# Starting the Server

The server runs against a local SQLite file by default:

	go run main.go

Or with flags:

	go run main.go -p 3000 -d papers.db

# Configuration

Optional settings (flag / env):

  - -p / PORT: server port (default: 3000)
  - -d / DATABASE_PATH: SQLite file path (default: paperstock.db)
  - -t / DATABASE_TYPE: sqlite or postgres (default: sqlite)
  - -u / DATABASE_URL: PostgreSQL connection string (postgres only)

A .env file is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (papers, adjustments, categories)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain and request/response types
  - adjust: Cross-adjustment normalization and zero-sum validation
  - catalog: Service facade and category projection
  - store: Transactional CRUD and the adjustment audit log
  - errs: Typed error taxonomy
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
