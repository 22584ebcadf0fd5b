package scheduling

import (
	"time"

	"glowdesk/models"
)

// DefaultSlotInterval is the granularity, in minutes, at which candidate
// start times are generated when the caller does not choose one.
const DefaultSlotInterval = 15

// GenerateAvailableSlots enumerates the bookable start times for one
// calendar date, as ascending "HH:MM" strings. Starting at the window's
// opening time it steps forward interval minutes at a time; a step
// survives when the whole slot still fits before closing, clears every
// break, and does not collide with an existing non-cancelled appointment.
// A date with no usable window yields an empty result.
func GenerateAvailableSlots(date time.Time, windows []models.AvailabilityWindow, existing []models.Appointment, duration, interval int) []string {
	if interval <= 0 {
		interval = DefaultSlotInterval
	}
	if duration <= 0 {
		return nil
	}
	window := ResolveWindow(date, windows)
	if window == nil {
		return nil
	}
	winStart, winEnd, ok := windowBounds(window)
	if !ok {
		return nil
	}

	var slots []string
	for step := winStart; step+duration <= winEnd; step += interval {
		if !clearsBreaks(window, step, step+duration) {
			continue
		}
		clock := FormatClock(step)
		if !IsSlotAvailable(date, clock, duration, existing, "") {
			continue
		}
		slots = append(slots, clock)
	}
	return slots
}

// GetAvailableDays returns the calendar dates in [startDate, endDate]
// whose day of week has at least one availability record, ascending, one
// entry per day. Only existence is tested; the IsAvailable flag and breaks
// are left to slot generation.
func GetAvailableDays(startDate, endDate time.Time, windows []models.AvailabilityWindow) []time.Time {
	present := make(map[int]bool, len(windows))
	for i := range windows {
		present[windows[i].DayOfWeek] = true
	}

	var days []time.Time
	day := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	last := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 0, 0, 0, 0, endDate.Location())
	for !day.After(last) {
		if present[int(day.Weekday())] {
			days = append(days, day)
		}
		day = day.AddDate(0, 0, 1)
	}
	return days
}
