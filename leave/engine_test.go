package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmorg/leave-engine/auth"
	"github.com/srmorg/leave-engine/leave"
	"github.com/srmorg/leave-engine/store/memory"
)

// =============================================================================
// TEST SETUP
// =============================================================================

// Fixed clock: Saturday, June 14, 2025, mid-morning local time.
func fixedNow() time.Time {
	return time.Date(2025, time.June, 14, 10, 30, 0, 0, time.Local)
}

func newTestEngine(t *testing.T) (*leave.Engine, *memory.Store) {
	t.Helper()
	store := memory.New()
	engine := leave.NewEngineAt(store, fixedNow)
	return engine, store
}

func director() *auth.Principal {
	return &auth.Principal{
		UID:       "director-uid",
		Email:     "director@example.com",
		Role:      auth.RoleDirector,
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

// =============================================================================
// AUTHORIZATION
// =============================================================================

func TestSetSaturdayStatus_NoPrincipal_Unauthorized(t *testing.T) {
	engine, _ := newTestEngine(t)

	_, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", false, nil)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestSetSaturdayStatus_ExpiredSession_Unauthorized(t *testing.T) {
	engine, _ := newTestEngine(t)

	expired := director()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	_, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", false, expired)
	assert.ErrorIs(t, err, auth.ErrUnauthorized)
}

func TestSetSaturdayStatus_NonDirector_Forbidden(t *testing.T) {
	engine, store := newTestEngine(t)

	staff := director()
	staff.Role = "Staff"

	_, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", false, staff)
	assert.ErrorIs(t, err, auth.ErrForbidden)

	// A failed toggle leaves stored state unchanged.
	overrides, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

// =============================================================================
// VALIDATION & TEMPORAL CONSTRAINTS
// =============================================================================

func TestSetSaturdayStatus_InvalidDate_Rejected(t *testing.T) {
	engine, _ := newTestEngine(t)

	for _, date := range []string{"", "21-06-2025", "2025/06/21", "2025-13-01", "2025-02-30", "nonsense"} {
		_, err := engine.SetSaturdayStatus(context.Background(), date, false, director())
		assert.ErrorIs(t, err, leave.ErrInvalidDate, "date %q", date)
	}
}

func TestSetSaturdayStatus_PastDate_Immutable(t *testing.T) {
	// GIVEN: today is 2025-06-14
	engine, store := newTestEngine(t)

	// WHEN: toggling the previous Saturday
	_, err := engine.SetSaturdayStatus(context.Background(), "2025-06-07", false, director())

	// THEN: rejected, nothing stored
	assert.ErrorIs(t, err, leave.ErrPastDateImmutable)
	overrides, listErr := store.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, overrides)
}

func TestSetSaturdayStatus_Today_Mutable(t *testing.T) {
	// Today is not strictly in the past, even late in the day.
	engine, _ := newTestEngine(t)

	result, err := engine.SetSaturdayStatus(context.Background(), "2025-06-14", false, director())
	require.NoError(t, err)
	assert.Equal(t, "2025-06-14", result.Date)
	assert.False(t, result.IsHoliday)
}

// =============================================================================
// EFFECT - presence encodes meaning
// =============================================================================

func TestSetSaturdayStatus_WorkingDay_Upserts(t *testing.T) {
	engine, store := newTestEngine(t)

	result, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", false, director())
	require.NoError(t, err)
	assert.Equal(t, leave.ToggleResult{Date: "2025-06-21", IsHoliday: false}, result)

	overrides, err := store.List(context.Background())
	require.NoError(t, err)
	require.Contains(t, overrides, "2025-06-21")

	rec := overrides["2025-06-21"]
	assert.False(t, rec.IsHoliday)
	assert.Equal(t, "director-uid", rec.UpdatedBy)
	assert.Equal(t, fixedNow(), rec.UpdatedAt)
}

func TestSetSaturdayStatus_Holiday_DeletesOverride(t *testing.T) {
	engine, store := newTestEngine(t)

	_, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", false, director())
	require.NoError(t, err)

	result, err := engine.SetSaturdayStatus(context.Background(), "2025-06-21", true, director())
	require.NoError(t, err)
	assert.Equal(t, leave.ToggleResult{Date: "2025-06-21", IsHoliday: true, Deleted: true}, result)

	overrides, err := store.List(context.Background())
	require.NoError(t, err)
	assert.NotContains(t, overrides, "2025-06-21")
}

func TestSetSaturdayStatus_Holiday_IdempotentOnAbsent(t *testing.T) {
	// Deleting a non-existent override is a success, not an error.
	engine, _ := newTestEngine(t)

	result, err := engine.SetSaturdayStatus(context.Background(), "2025-06-28", true, director())
	require.NoError(t, err)
	assert.True(t, result.Deleted)
}

func TestSetSaturdayStatus_Idempotence(t *testing.T) {
	engine, store := newTestEngine(t)
	ctx := context.Background()

	// Working day twice == once
	_, err := engine.SetSaturdayStatus(ctx, "2025-06-21", false, director())
	require.NoError(t, err)
	_, err = engine.SetSaturdayStatus(ctx, "2025-06-21", false, director())
	require.NoError(t, err)

	overrides, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, overrides, 1)
	assert.False(t, overrides["2025-06-21"].IsHoliday)

	// Holiday twice == once
	_, err = engine.SetSaturdayStatus(ctx, "2025-06-21", true, director())
	require.NoError(t, err)
	_, err = engine.SetSaturdayStatus(ctx, "2025-06-21", true, director())
	require.NoError(t, err)

	overrides, err = store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides)
}

func TestToggleRoundTrip_ListOverrides(t *testing.T) {
	// GIVEN: an empty overlay
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	// WHEN: marking a Saturday as working day
	_, err := engine.SetSaturdayStatus(ctx, "2025-06-21", false, director())
	require.NoError(t, err)

	// THEN: it appears in the listing with isHoliday=false
	overrides, err := engine.ListOverrides(ctx)
	require.NoError(t, err)
	require.Contains(t, overrides, "2025-06-21")
	assert.False(t, overrides["2025-06-21"].IsHoliday)

	// WHEN: reverting to holiday
	_, err = engine.SetSaturdayStatus(ctx, "2025-06-21", true, director())
	require.NoError(t, err)

	// THEN: it disappears from the listing
	overrides, err = engine.ListOverrides(ctx)
	require.NoError(t, err)
	assert.NotContains(t, overrides, "2025-06-21")
}
