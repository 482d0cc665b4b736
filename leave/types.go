/*
types.go - Core types for the Saturday leave overlay

PURPOSE:
  Defines the override record and the calendar-date helpers the engine
  and projections are built on.

SPARSE OVERLAY:
  The store only ever holds records for NON-default Saturdays (working
  days). A Saturday with no record is implicitly a holiday. This keeps
  "holiday" as the zero-storage default: reverting a date to holiday
  deletes its record instead of writing isHoliday=true.

DATE HANDLING:
  Dates travel as YYYY-MM-DD strings and are anchored at LOCAL calendar
  midnight, not UTC midnight. A date string is split into components and
  rebuilt with time.Local so that "is this date in the past" never
  misclassifies around a timezone boundary.

SEE ALSO:
  - engine.go: Toggle engine using these types
  - calendar.go: Month projection
  - store.go: Persistence contract
*/
package leave

import (
	"time"
)

// DateLayout is the wire and storage format for calendar dates.
const DateLayout = "2006-01-02"

// Override is an explicit deviation from the default Saturday status.
// Stored overrides always carry IsHoliday=false; the "holiday" state is
// represented by the absence of a record.
type Override struct {
	Date      string    `json:"date"`
	IsHoliday bool      `json:"isHoliday"`
	UpdatedAt time.Time `json:"updatedAt"`
	UpdatedBy string    `json:"updatedBy"`
}

// ToggleResult reports the outcome of a status change.
type ToggleResult struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"isHoliday"`
	Deleted   bool   `json:"deleted,omitempty"`
}

// =============================================================================
// CALENDAR DATES - local midnight anchoring
// =============================================================================

// ParseDate parses a YYYY-MM-DD string into local calendar midnight.
// The strict layout parse validates format and calendar range (rejecting
// 2025-02-30); the result is then rebuilt component-wise in time.Local so
// day-boundary comparisons happen in the server's local calendar.
func ParseDate(s string) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, &InvalidDateError{Value: s}
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local), nil
}

// Midnight truncates an instant to local calendar midnight.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// FormatDate renders a time as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// IsSaturday reports whether a date falls on a Saturday.
func IsSaturday(t time.Time) bool {
	return t.Weekday() == time.Saturday
}
