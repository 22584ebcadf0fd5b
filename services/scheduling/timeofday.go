package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses a naive 24-hour "HH:MM" string into minutes from
// midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time format: %s", s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time: %s", s)
	}
	return hour*60 + minute, nil
}

// FormatClock renders minutes from midnight as a "HH:MM" string.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// AtClock anchors minutes-from-midnight onto the calendar day of date,
// in date's location.
func AtClock(date time.Time, minutes int) time.Time {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return midnight.Add(time.Duration(minutes) * time.Minute)
}

// sameDay reports whether two instants fall on the same calendar day of a's
// location.
func sameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
