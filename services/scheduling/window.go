package scheduling

import (
	"time"

	"glowdesk/models"
)

// ResolveWindow returns the availability window that applies to date's day
// of week, or nil when the staff member has no usable window that day.
// The first matching record wins; duplicate records per weekday are
// rejected at write time by the staff service, so in practice there is at
// most one. An absent or inactive window is the ordinary "day closed"
// state, not an error.
func ResolveWindow(date time.Time, windows []models.AvailabilityWindow) *models.AvailabilityWindow {
	day := int(date.Weekday())
	for i := range windows {
		if windows[i].DayOfWeek == day {
			if !windows[i].IsAvailable {
				return nil
			}
			return &windows[i]
		}
	}
	return nil
}

// windowBounds parses a window's opening hours into minutes from midnight.
// A window that fails to parse behaves as closed.
func windowBounds(w *models.AvailabilityWindow) (start, end int, ok bool) {
	start, err := ParseClock(w.StartTime)
	if err != nil {
		return 0, 0, false
	}
	end, err = ParseClock(w.EndTime)
	if err != nil {
		return 0, 0, false
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}
