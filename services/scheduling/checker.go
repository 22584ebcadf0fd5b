package scheduling

import (
	"time"

	"glowdesk/models"
)

// IsSlotAvailable reports whether a candidate slot starting at timeStr on
// date, lasting duration minutes, is free of conflicts with the given
// appointments. Cancelled appointments never conflict. excludeID names an
// appointment to ignore, so an appointment being rescheduled does not
// conflict with itself; pass "" to exclude nothing.
//
// Only the interval-exclusivity model lives here; capacity services use
// CheckServiceCapacity instead.
func IsSlotAvailable(date time.Time, timeStr string, duration int, existing []models.Appointment, excludeID string) bool {
	start, err := ParseClock(timeStr)
	if err != nil || duration <= 0 {
		return false
	}
	candStart := AtClock(date, start)
	candEnd := candStart.Add(time.Duration(duration) * time.Minute)

	for i := range existing {
		appt := &existing[i]
		if !appt.Occupies() {
			continue
		}
		if excludeID != "" && appt.ID == excludeID {
			continue
		}
		if !sameDay(candStart, appt.Date) {
			continue
		}
		if Overlaps(candStart, candEnd, appt.Date.In(candStart.Location()), appt.End().In(candStart.Location())) {
			return false
		}
	}
	return true
}

// IsWithinAvailability reports whether the candidate slot lies entirely
// inside the staff member's availability window for date's day of week and
// clears every break. Window boundaries are inclusive on both ends: a slot
// may start exactly at opening and end exactly at closing. Break
// boundaries follow the overlap rule, so touching a break is fine.
func IsWithinAvailability(date time.Time, timeStr string, duration int, windows []models.AvailabilityWindow) bool {
	window := ResolveWindow(date, windows)
	if window == nil {
		return false
	}
	start, err := ParseClock(timeStr)
	if err != nil || duration <= 0 {
		return false
	}
	winStart, winEnd, ok := windowBounds(window)
	if !ok {
		return false
	}
	end := start + duration
	if start < winStart || end > winEnd {
		return false
	}
	return clearsBreaks(window, start, end)
}

// clearsBreaks reports whether the [start, end) minute interval avoids
// every break in the window. Unparseable breaks are skipped rather than
// blocking the whole day.
func clearsBreaks(window *models.AvailabilityWindow, start, end int) bool {
	for _, br := range window.Breaks {
		bStart, err := ParseClock(br.StartTime)
		if err != nil {
			continue
		}
		bEnd, err := ParseClock(br.EndTime)
		if err != nil {
			continue
		}
		if overlapsMinutes(start, end, bStart, bEnd) {
			return false
		}
	}
	return true
}

// hourBucket truncates an instant to its calendar-hour bucket key.
func hourBucket(t time.Time) string {
	return t.Format("2006-01-02 15:00")
}

// CheckServiceCapacity reports whether a capacity-based (class-style)
// service has room for one more booking at the candidate start time. The
// rule counts non-cancelled appointments for the same service whose start
// falls in the same calendar-hour bucket as the candidate; the slot is
// available iff that count is strictly below capacity. Exact-minute
// overlap, windows and breaks play no part in this model.
func CheckServiceCapacity(date time.Time, timeStr string, capacity int, sameService []models.Appointment) bool {
	start, err := ParseClock(timeStr)
	if err != nil || capacity <= 0 {
		return false
	}
	bucket := hourBucket(AtClock(date, start))

	count := 0
	for i := range sameService {
		appt := &sameService[i]
		if !appt.Occupies() {
			continue
		}
		if hourBucket(appt.Date.In(date.Location())) == bucket {
			count++
		}
	}
	return count < capacity
}
