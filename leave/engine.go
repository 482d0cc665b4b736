/*
engine.go - The Saturday status toggle engine

PURPOSE:
  The core business rule: decides whether a requested status change for a
  calendar date is allowed (authorization, date validity, temporal
  constraints) and applies it against the override store.

PRECONDITION ORDER (first failure wins):
  1. Acting principal must be a Director with a live session
  2. Date must be a valid YYYY-MM-DD calendar date
  3. Date must not be strictly before today (local calendar midnight)

EFFECT (presence encodes meaning):
  desired holiday      -> DELETE the override (absence = default holiday)
  desired working day  -> UPSERT {date, isHoliday:false, updatedAt, updatedBy}

  Both branches are idempotent: repeating a toggle with the same desired
  value leaves the same end state (updatedAt refreshes only on the
  working-day branch). A failed toggle leaves stored state unchanged -
  every precondition runs before the single store call.

SEE ALSO:
  - auth/guard.go: RequireDirector
  - store.go: OverrideStore contract
  - calendar.go: Read-side projection
*/
package leave

import (
	"context"
	"time"

	"github.com/srmorg/leave-engine/auth"
)

// Engine validates and applies Saturday status changes.
type Engine struct {
	store OverrideStore
	now   func() time.Time
}

// NewEngine creates an engine over the given store.
func NewEngine(store OverrideStore) *Engine {
	return &Engine{store: store, now: time.Now}
}

// NewEngineAt creates an engine with a fixed clock. Test seam.
func NewEngineAt(store OverrideStore, now func() time.Time) *Engine {
	return &Engine{store: store, now: now}
}

// SetSaturdayStatus applies the requested status for date on behalf of actor.
//
// Returns auth.ErrUnauthorized / auth.ErrForbidden for authorization
// failures, ErrInvalidDate / ErrPastDateImmutable for validation failures,
// and the store's error verbatim for persistence failures.
func (e *Engine) SetSaturdayStatus(ctx context.Context, date string, isHoliday bool, actor *auth.Principal) (ToggleResult, error) {
	if err := auth.RequireDirector(actor); err != nil {
		return ToggleResult{}, err
	}

	target, err := ParseDate(date)
	if err != nil {
		return ToggleResult{}, err
	}

	today := Midnight(e.now())
	if target.Before(today) {
		return ToggleResult{}, &PastDateError{Date: date, Today: FormatDate(today)}
	}

	if isHoliday {
		// Reverting to the default: remove the override entirely.
		if err := e.store.Delete(ctx, date); err != nil {
			return ToggleResult{}, err
		}
		return ToggleResult{Date: date, IsHoliday: true, Deleted: true}, nil
	}

	rec := Override{
		Date:      date,
		IsHoliday: false,
		UpdatedAt: e.now(),
		UpdatedBy: actor.UID,
	}
	if err := e.store.Put(ctx, rec); err != nil {
		return ToggleResult{}, err
	}
	return ToggleResult{Date: date, IsHoliday: false}, nil
}

// ListOverrides returns the full override set. Read-only; any
// authenticated principal may call it, so no Director check here.
func (e *Engine) ListOverrides(ctx context.Context) (map[string]Override, error) {
	return e.store.List(ctx)
}
