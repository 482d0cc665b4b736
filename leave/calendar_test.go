package leave_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srmorg/leave-engine/leave"
)

// =============================================================================
// DATE PARSING
// =============================================================================

func TestParseDate_LocalMidnight(t *testing.T) {
	d, err := leave.ParseDate("2025-06-21")
	require.NoError(t, err)

	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 21, d.Day())
	assert.Equal(t, time.Local, d.Location())
	assert.Equal(t, 0, d.Hour())
}

func TestParseDate_RejectsOverflow(t *testing.T) {
	// Component overflow must not normalize (2025-02-30 is not March 2).
	_, err := leave.ParseDate("2025-02-30")
	assert.ErrorIs(t, err, leave.ErrInvalidDate)
}

func TestMidnight_Truncates(t *testing.T) {
	at := time.Date(2025, time.June, 14, 23, 59, 59, 0, time.Local)
	assert.Equal(t, time.Date(2025, time.June, 14, 0, 0, 0, 0, time.Local), leave.Midnight(at))
}

// =============================================================================
// MONTH PROJECTION
// =============================================================================

func TestSaturdaysInMonth_June2025(t *testing.T) {
	saturdays := leave.SaturdaysInMonth(2025, time.June)

	require.Len(t, saturdays, 4)
	want := []string{"2025-06-07", "2025-06-14", "2025-06-21", "2025-06-28"}
	for i, d := range saturdays {
		assert.Equal(t, want[i], leave.FormatDate(d))
		assert.True(t, leave.IsSaturday(d))
	}
}

func TestSaturdaysInMonth_FiveSaturdayMonth(t *testing.T) {
	// August 2025 has five Saturdays.
	saturdays := leave.SaturdaysInMonth(2025, time.August)
	assert.Len(t, saturdays, 5)
}

func TestEffectiveIsHoliday_DefaultHoliday(t *testing.T) {
	// Any date with no override is a holiday.
	assert.True(t, leave.EffectiveIsHoliday("2025-06-21", nil))
	assert.True(t, leave.EffectiveIsHoliday("2025-06-21", map[string]leave.Override{}))
}

func TestEffectiveIsHoliday_OverrideWins(t *testing.T) {
	overrides := map[string]leave.Override{
		"2025-06-21": {Date: "2025-06-21", IsHoliday: false},
	}
	assert.False(t, leave.EffectiveIsHoliday("2025-06-21", overrides))
	assert.True(t, leave.EffectiveIsHoliday("2025-06-28", overrides))
}

func TestMonthView_JuneScenario(t *testing.T) {
	// GIVEN: June 2025 with no overrides
	engine, _ := newTestEngine(t)
	ctx := context.Background()

	overrides, err := engine.ListOverrides(ctx)
	require.NoError(t, err)
	assert.Empty(t, overrides)

	view := leave.NewMonthView(2025, time.June, overrides)
	assert.Equal(t, 4, view.TotalSaturdays)
	assert.Equal(t, 4, view.Holidays)
	assert.Equal(t, 0, view.WorkingDays)

	// WHEN: June 21 becomes a working day
	_, err = engine.SetSaturdayStatus(ctx, "2025-06-21", false, director())
	require.NoError(t, err)

	// THEN: 3 holidays, 1 working day
	overrides, err = engine.ListOverrides(ctx)
	require.NoError(t, err)
	require.Contains(t, overrides, "2025-06-21")

	view = leave.NewMonthView(2025, time.June, overrides)
	assert.Equal(t, 4, view.TotalSaturdays)
	assert.Equal(t, 3, view.Holidays)
	assert.Equal(t, 1, view.WorkingDays)

	for _, day := range view.Saturdays {
		if day.Date == "2025-06-21" {
			assert.False(t, day.IsHoliday)
		} else {
			assert.True(t, day.IsHoliday)
		}
	}
}
