// Package validate holds the stateless domain rules gating every mutation.
// Each check returns a typed *domain.ValidationError or nil; data is never
// silently coerced.
package validate

import (
	"fmt"
	"time"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// CSPCode requires a non-empty alphanumeric code of at least 3 characters.
func CSPCode(code string) error {
	if len(code) < 3 {
		return &domain.ValidationError{
			Field:   "csp_code",
			Reason:  domain.ReasonInvalidFormat,
			Message: "csp code must be at least 3 characters",
		}
	}
	for _, r := range code {
		if !isAlnum(r) {
			return &domain.ValidationError{
				Field:   "csp_code",
				Reason:  domain.ReasonInvalidFormat,
				Message: "csp code must be alphanumeric",
			}
		}
	}
	return nil
}

// DateRange rejects a termination date earlier than the effective date.
func DateRange(effective time.Time, termination *time.Time) error {
	if termination != nil && termination.Before(effective) {
		return &domain.ValidationError{
			Field:   "termination_date",
			Reason:  domain.ReasonInvalidDateRange,
			Message: "termination date precedes effective date",
		}
	}
	return nil
}

// cspForbidden is the fixed transition table for CSP/LOB statuses. A mapping
// may never move back to pending once it has left that state; everything
// else, including no-ops, is allowed. The asymmetry is intentional.
var cspForbidden = map[domain.CSPStatus]map[domain.CSPStatus]bool{
	domain.CSPInactive: {domain.CSPPending: true},
	domain.CSPActive:   {domain.CSPPending: true},
}

// CSPStatusTransition checks a CSP/LOB status change against the fixed table.
func CSPStatusTransition(current, next domain.CSPStatus) error {
	if cspForbidden[current][next] {
		return transitionErr(string(current), string(next))
	}
	return nil
}

// ylineForbidden follows the same rule for Y-Lines: once a line has left
// pending it may not return.
var ylineForbidden = map[domain.YLineStatus]map[domain.YLineStatus]bool{
	domain.YLineActive:    {domain.YLinePending: true},
	domain.YLineCompleted: {domain.YLinePending: true},
	domain.YLineCancelled: {domain.YLinePending: true},
}

// YLineStatusTransition checks a Y-Line status change against the fixed table.
func YLineStatusTransition(current, next domain.YLineStatus) error {
	if ylineForbidden[current][next] {
		return transitionErr(string(current), string(next))
	}
	return nil
}

// IPANumber requires a non-empty value. No further format rule is known for
// IPA numbers; anything non-empty is accepted.
func IPANumber(v string) error {
	if v == "" {
		return &domain.ValidationError{
			Field:   "ipa_number",
			Reason:  domain.ReasonInvalidFormat,
			Message: "ipa number is required",
		}
	}
	return nil
}

// ProductCode requires a non-empty value.
func ProductCode(v string) error {
	if v == "" {
		return &domain.ValidationError{
			Field:   "product_code",
			Reason:  domain.ReasonRequired,
			Message: "product code is required",
		}
	}
	return nil
}

// MonetaryValues rejects negative estimated or actual values. Absent values
// pass; zero is valid.
func MonetaryValues(estimated, actual *float64) error {
	if estimated != nil && *estimated < 0 {
		return moneyErr("estimated_value")
	}
	if actual != nil && *actual < 0 {
		return moneyErr("actual_value")
	}
	return nil
}

// AwardFlags rejects a record flagged pre-award and post-award at once.
func AwardFlags(preAward, postAward bool) error {
	if preAward && postAward {
		return &domain.ValidationError{
			Field:   "pre_award",
			Reason:  domain.ReasonConflictingFlags,
			Message: "record cannot be both pre-award and post-award",
		}
	}
	return nil
}

// ProjectCode caps the human project code at 12 characters.
func ProjectCode(code string) error {
	if code == "" {
		return &domain.ValidationError{
			Field:   "code",
			Reason:  domain.ReasonRequired,
			Message: "project code is required",
		}
	}
	if len(code) > 12 {
		return &domain.ValidationError{
			Field:   "code",
			Reason:  domain.ReasonInvalidFormat,
			Message: "project code must be at most 12 characters",
		}
	}
	return nil
}

// Payor requires a non-empty payor name on a competitor entry.
func Payor(v string) error {
	if v == "" {
		return &domain.ValidationError{
			Field:   "payor",
			Reason:  domain.ReasonRequired,
			Message: "payor is required",
		}
	}
	return nil
}

// StateCode accepts an empty state or a two-letter postal abbreviation.
func StateCode(v string) error {
	if v == "" {
		return nil
	}
	if len(v) != 2 {
		return stateErr()
	}
	for _, r := range v {
		if !((r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')) {
			return stateErr()
		}
	}
	return nil
}

// Mileage rejects a negative mileage cap. Absent passes; zero is valid.
func Mileage(v *int) error {
	if v != nil && *v < 0 {
		return &domain.ValidationError{
			Field:   "max_mileage",
			Reason:  domain.ReasonInvalidValue,
			Message: "max_mileage must be non-negative",
		}
	}
	return nil
}

// NoteText requires a non-empty note body.
func NoteText(v string) error {
	if v == "" {
		return &domain.ValidationError{
			Field:   "note",
			Reason:  domain.ReasonRequired,
			Message: "note text is required",
		}
	}
	return nil
}

func transitionErr(current, next string) error {
	return &domain.ValidationError{
		Field:   "status",
		Reason:  domain.ReasonInvalidTransition,
		Message: fmt.Sprintf("status may not move from %s to %s", current, next),
	}
}

func stateErr() error {
	return &domain.ValidationError{
		Field:   "state",
		Reason:  domain.ReasonInvalidFormat,
		Message: "state must be a two-letter abbreviation",
	}
}

func moneyErr(field string) error {
	return &domain.ValidationError{
		Field:   field,
		Reason:  domain.ReasonInvalidValue,
		Message: field + " must be non-negative",
	}
}

func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
