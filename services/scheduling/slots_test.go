package scheduling

import (
	"reflect"
	"testing"
	"time"

	"glowdesk/models"
)

func TestGenerateAvailableSlots_Basic(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{StaffID: "staff-1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "11:00", IsAvailable: true},
	}
	existing := []models.Appointment{appt("a1", "09:30", 30, models.AppointmentScheduled)}

	got := GenerateAvailableSlots(monday, windows, existing, 30, 15)
	want := []string{"09:00", "10:00", "10:15", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGenerateAvailableSlots_SkipsBreaks(t *testing.T) {
	windows := weekdayWindow(models.BreakInterval{StartTime: "13:00", EndTime: "14:00"})

	got := GenerateAvailableSlots(monday, windows, nil, 60, 60)
	for _, clock := range got {
		if clock == "12:30" || clock == "13:00" || clock == "13:30" {
			t.Fatalf("slot %s collides with the break", clock)
		}
	}
	// 12:00-13:00 touches the break but does not overlap it.
	found := false
	for _, clock := range got {
		if clock == "12:00" {
			found = true
		}
	}
	if !found {
		t.Fatalf("slot ending at break start should be generated, got %v", got)
	}
}

func TestGenerateAvailableSlots_NoWindow(t *testing.T) {
	sunday := monday.AddDate(0, 0, -1)
	if got := GenerateAvailableSlots(sunday, weekdayWindow(), nil, 30, 15); len(got) != 0 {
		t.Fatalf("expected no slots for a closed day, got %v", got)
	}
}

func TestGenerateAvailableSlots_DurationExceedsWindow(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{StaffID: "staff-1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "10:00", IsAvailable: true},
	}
	if got := GenerateAvailableSlots(monday, windows, nil, 90, 15); len(got) != 0 {
		t.Fatalf("expected no slots when duration exceeds the window, got %v", got)
	}
	// Exactly filling the window is one slot.
	got := GenerateAvailableSlots(monday, windows, nil, 60, 15)
	if !reflect.DeepEqual(got, []string{"09:00"}) {
		t.Fatalf("expected [09:00], got %v", got)
	}
}

func TestGenerateAvailableSlots_Deterministic(t *testing.T) {
	windows := weekdayWindow(models.BreakInterval{StartTime: "12:00", EndTime: "12:30"})
	existing := []models.Appointment{appt("a1", "10:00", 45, models.AppointmentScheduled)}

	first := GenerateAvailableSlots(monday, windows, existing, 30, 15)
	second := GenerateAvailableSlots(monday, windows, existing, 30, 15)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must yield identical slots")
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Fatalf("slots must be strictly ascending: %v", first)
		}
	}
}

func TestGetAvailableDays(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{StaffID: "staff-1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
		{StaffID: "staff-1", DayOfWeek: int(time.Wednesday), StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
	}

	start := monday                 // Mon 2026-03-02
	end := monday.AddDate(0, 0, 13) // two full weeks
	days := GetAvailableDays(start, end, windows)

	if len(days) != 4 {
		t.Fatalf("expected 4 days over two weeks, got %d: %v", len(days), days)
	}
	for i, d := range days {
		if wd := d.Weekday(); wd != time.Monday && wd != time.Wednesday {
			t.Errorf("day %d has weekday %s", i, wd)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Errorf("days must be ascending: %v", days)
		}
	}
}

func TestGetAvailableDays_InclusiveRange(t *testing.T) {
	windows := []models.AvailabilityWindow{
		{StaffID: "staff-1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "17:00", IsAvailable: true},
	}
	days := GetAvailableDays(monday, monday, windows)
	if len(days) != 1 || !days[0].Equal(monday) {
		t.Fatalf("single-day range containing a match must return that day, got %v", days)
	}
}
