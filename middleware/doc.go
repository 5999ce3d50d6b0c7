/*
Package middleware provides request logging, CORS, and JSON helpers
shared by all handlers.

  - WithLogging: wraps a handler with start/completion slog records
  - CORS: permissive cross-origin headers plus OPTIONS preflight
  - JSONResponse / ErrorResponse: uniform response encoding
  - ParseJSONBody: request body decoding
*/
package middleware
