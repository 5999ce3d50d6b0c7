/*
Package errs defines the typed error taxonomy shared by the store,
service, and handler layers.

Five kinds cover every command failure:

  - ValidationError: missing/out-of-range field (400, per-field detail)
  - DuplicateError: uniqueness collision, carries the existing record (400)
  - ConstraintError: zero-sum adjustment invariant violated (400)
  - NotFoundError: no record for the addressed id or category (404)
  - StorageError: underlying persistence failure (500)

Handlers dispatch with errors.As; inner layers return these unchanged
so no information is lost crossing the facade.
*/
package errs
