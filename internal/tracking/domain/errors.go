package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that a record, or a project a record references, is absent.
// Callers wrap it with resource context and match with errors.Is.
var ErrNotFound = errors.New("record not found")

// Reasons carried by ValidationError.
const (
	ReasonRequired         = "required"
	ReasonInvalidFormat    = "invalid_format"
	ReasonInvalidDateRange = "invalid_date_range"
	ReasonInvalidValue     = "invalid_value"
	ReasonInvalidEnum      = "invalid_enum"
	ReasonInvalidTransition = "invalid_transition"
	ReasonConflictingFlags = "conflicting_flags"
)

// ValidationError reports a payload that violates a domain invariant.
// It is always produced before any persistence attempt.
type ValidationError struct {
	Field   string `json:"field"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s (%s): %s", e.Field, e.Reason, e.Message)
}

// ConflictError reports a uniqueness violation detected at the store.
type ConflictError struct {
	Constraint string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s", e.Constraint)
}

// IntegrityError wraps a store-level constraint violation no named
// validator anticipated. It is surfaced, never swallowed.
type IntegrityError struct {
	Op  string
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity failure in %s: %v", e.Op, e.Err)
}

func (e *IntegrityError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
