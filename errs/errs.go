package errs

import (
	"errors"
	"fmt"

	"github.com/printdeck/paperstock/models"
)

// ValidationError reports a required field that is missing or outside
// its allowed range. Caught before any write reaches the store.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
}

// DuplicateError reports a uniqueness-key collision on create or
// update. Existing carries the conflicting record so callers can
// display it.
type DuplicateError struct {
	Existing models.PaperType
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate paper type: %q %dgr %d×%dmm already exists",
		e.Existing.Name, e.Existing.Weight, e.Existing.Width, e.Existing.Height)
}

// ConstraintError reports an adjustment pair that fails the zero-sum
// invariant after normalization, or a payload with nothing to edit.
type ConstraintError struct {
	Axis    string
	Message string
}

func (e *ConstraintError) Error() string {
	if e.Axis == "" {
		return "adjustment constraint violated: " + e.Message
	}
	return fmt.Sprintf("adjustment constraint violated: %s: %s", e.Axis, e.Message)
}

// NotFoundError reports an operation addressed at a missing record.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// StorageError wraps an underlying persistence failure. Fatal for the
// request, never retried by the core.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Constructors keep call sites terse.

func Validation(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func Duplicate(existing models.PaperType) error {
	return &DuplicateError{Existing: existing}
}

func Constraint(axis, message string) error {
	return &ConstraintError{Axis: axis, Message: message}
}

func NotFound(resource, id string) error {
	return &NotFoundError{Resource: resource, ID: id}
}

func Storage(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
