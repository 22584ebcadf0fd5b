package scheduling

import (
	"testing"
	"time"
)

func at(t *testing.T, clock string) time.Time {
	t.Helper()
	mins, err := ParseClock(clock)
	if err != nil {
		t.Fatalf("bad clock %q: %v", clock, err)
	}
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday
	return AtClock(day, mins)
}

func TestOverlaps_Basic(t *testing.T) {
	if !Overlaps(at(t, "10:00"), at(t, "11:00"), at(t, "10:30"), at(t, "11:30")) {
		t.Fatalf("expected overlap for partially intersecting intervals")
	}
	if Overlaps(at(t, "10:00"), at(t, "11:00"), at(t, "12:00"), at(t, "13:00")) {
		t.Fatalf("expected no overlap for disjoint intervals")
	}
	if !Overlaps(at(t, "10:00"), at(t, "12:00"), at(t, "10:30"), at(t, "11:00")) {
		t.Fatalf("expected overlap when one interval contains the other")
	}
}

func TestOverlaps_TouchingBoundariesAllowed(t *testing.T) {
	// An interval ending exactly when another starts is not a conflict:
	// back-to-back appointments are legal.
	if Overlaps(at(t, "10:00"), at(t, "10:30"), at(t, "10:30"), at(t, "11:00")) {
		t.Fatalf("touching end/start must not overlap")
	}
	if Overlaps(at(t, "10:30"), at(t, "11:00"), at(t, "10:00"), at(t, "10:30")) {
		t.Fatalf("touching start/end must not overlap")
	}
}

func TestParseClock(t *testing.T) {
	mins, err := ParseClock("09:30")
	if err != nil || mins != 570 {
		t.Fatalf("expected 570, got %d (err %v)", mins, err)
	}
	for _, bad := range []string{"25:00", "10:61", "930", "ab:cd", ""} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
	if got := FormatClock(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %s", got)
	}
}
