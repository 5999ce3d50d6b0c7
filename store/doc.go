/*
Package store owns durable CRUD over paper types and the append-only
adjustment history.

# Commands

Each command runs as one transaction; either it is entirely applied or
entirely rejected:

  - Create: field validation, duplicate rejection, fresh uuid
  - Update: descriptive fields only (never adjustments)
  - SetAdjustment: validate, replace both orientations, append the
    audit row - all in the same transaction
  - SetCrossSide: flip the active orientation (not audited)
  - Delete: remove the record, history cascades

# Queries

  - List: all papers, ordered by name then weight
  - Get: one record by id
  - FindByCategory: name equals the token or starts with "token "
  - History: newest-first bounded read (default limit 3)

# Uniqueness

No two records may share (name, weight, width, height), compared
case-insensitively on name. Violations return DuplicateError carrying
the conflicting record; the schema's unique index backs this up.
*/
package store
