package repository

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// Postgres error codes the repositories translate into typed outcomes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// translateWriteErr maps a driver error from an insert or update into the
// domain taxonomy: unique violations become ConflictError, a broken project
// reference becomes ErrNotFound, and any other constraint violation is
// surfaced as an IntegrityError.
func translateWriteErr(op string, err error) error {
	var pgErr *pq.Error
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		return &domain.ConflictError{Constraint: pgErr.Constraint}
	case pgForeignKeyViolation:
		return fmt.Errorf("project: %w", domain.ErrNotFound)
	default:
		if pgErr.Code.Class() == "23" {
			return &domain.IntegrityError{Op: op, Err: err}
		}
		return err
	}
}

// translateDeleteErr maps a driver error from a delete. A foreign-key
// violation here means dependent rows still reference the record, which no
// named validator anticipates, so it surfaces as an IntegrityError.
func translateDeleteErr(op string, err error) error {
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code.Class() == "23" {
		return &domain.IntegrityError{Op: op, Err: err}
	}
	return err
}
