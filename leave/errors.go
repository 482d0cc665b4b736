/*
errors.go - Error types for the leave domain

PURPOSE:
  All leave-domain errors in one place. The API layer maps these to HTTP
  statuses; nothing here knows about HTTP.

ERROR CATEGORIES:
  1. Validation errors - malformed dates, malformed requests
  2. Temporal errors   - past-date immutability
  3. Store errors      - persistence failures surfaced as-is

USAGE:
  if errors.Is(err, leave.ErrPastDateImmutable) {
      // 400 with the temporal message
  }

SEE ALSO:
  - engine.go: Produces these errors
  - api/handlers.go: Maps them to statuses
*/
package leave

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidDate is returned when a date string is not a valid
	// YYYY-MM-DD calendar date.
	ErrInvalidDate = errors.New("invalid date")

	// ErrPastDateImmutable is returned when a toggle targets a date
	// strictly before today. Today itself is mutable.
	ErrPastDateImmutable = errors.New("past dates are immutable")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// InvalidDateError reports the offending value.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date %q (use YYYY-MM-DD)", e.Value)
}

func (e *InvalidDateError) Unwrap() error { return ErrInvalidDate }

// PastDateError reports which date was rejected and what "today" was.
type PastDateError struct {
	Date  string
	Today string
}

func (e *PastDateError) Error() string {
	return fmt.Sprintf("cannot modify past date %s (today is %s)", e.Date, e.Today)
}

func (e *PastDateError) Unwrap() error { return ErrPastDateImmutable }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrPastDateImmutable)
}
