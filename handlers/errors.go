package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/printdeck/paperstock/errs"
	"github.com/printdeck/paperstock/middleware"
	"github.com/printdeck/paperstock/models"
)

// writeError maps the error taxonomy onto HTTP responses. Validation,
// duplicate, and constraint failures are the caller's fault (400);
// missing records are 404; anything else is a storage-level 500.
func writeError(w http.ResponseWriter, err error) {
	var validation *errs.ValidationError
	var duplicate *errs.DuplicateError
	var constraint *errs.ConstraintError
	var notFound *errs.NotFoundError

	switch {
	case errors.As(err, &validation):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: validation.Message,
			Field:   validation.Field,
		})
	case errors.As(err, &duplicate):
		existing := duplicate.Existing
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:    http.StatusText(http.StatusBadRequest),
			Message:  duplicate.Error(),
			Existing: &existing,
		})
	case errors.As(err, &constraint):
		middleware.JSONResponse(w, http.StatusBadRequest, models.ErrorResponse{
			Error:   http.StatusText(http.StatusBadRequest),
			Message: constraint.Message,
			Field:   constraint.Axis,
		})
	case errors.As(err, &notFound):
		middleware.ErrorResponse(w, http.StatusNotFound, notFound.Error())
	default:
		slog.Error("request failed", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
	}
}
