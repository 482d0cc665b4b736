/*
calendar.go - Month projection over the sparse overlay

PURPOSE:
  Derives the effective status of a month's Saturdays from the default
  rule plus the override set. Nothing here is persisted; the projection
  is recomputed per request.

DEFAULT RULE:
  A Saturday is a holiday unless an override with isHoliday=false exists
  for it.

SEE ALSO:
  - engine.go: Write side
  - api/handlers.go: /leaves/month endpoint
*/
package leave

import "time"

// DayStatus is one Saturday with its effective status.
type DayStatus struct {
	Date      string `json:"date"`
	IsHoliday bool   `json:"isHoliday"`
}

// MonthView is the derived calendar for one month's Saturdays.
type MonthView struct {
	Year           int         `json:"year"`
	Month          int         `json:"month"`
	Saturdays      []DayStatus `json:"saturdays"`
	TotalSaturdays int         `json:"totalSaturdays"`
	Holidays       int         `json:"holidays"`
	WorkingDays    int         `json:"workingDays"`
}

// SaturdaysInMonth returns every Saturday of the given month at local
// midnight, in ascending order.
func SaturdaysInMonth(year int, month time.Month) []time.Time {
	var out []time.Time
	d := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	// Jump to the first Saturday, then step a week at a time.
	offset := (int(time.Saturday) - int(d.Weekday()) + 7) % 7
	d = d.AddDate(0, 0, offset)
	for d.Month() == month {
		out = append(out, d)
		d = d.AddDate(0, 0, 7)
	}
	return out
}

// EffectiveIsHoliday applies the default rule: holiday unless an override
// says working day.
func EffectiveIsHoliday(date string, overrides map[string]Override) bool {
	rec, ok := overrides[date]
	if !ok {
		return true
	}
	return rec.IsHoliday
}

// NewMonthView computes the month projection from the override set.
func NewMonthView(year int, month time.Month, overrides map[string]Override) MonthView {
	saturdays := SaturdaysInMonth(year, month)
	view := MonthView{
		Year:           year,
		Month:          int(month),
		Saturdays:      make([]DayStatus, 0, len(saturdays)),
		TotalSaturdays: len(saturdays),
	}
	for _, d := range saturdays {
		date := FormatDate(d)
		holiday := EffectiveIsHoliday(date, overrides)
		view.Saturdays = append(view.Saturdays, DayStatus{Date: date, IsHoliday: holiday})
		if holiday {
			view.Holidays++
		} else {
			view.WorkingDays++
		}
	}
	return view
}
