package staff

import (
	"fmt"
	"testing"
	"time"

	"glowdesk/models"
)

type fakeRepo struct {
	staff   []models.Staff
	windows []models.AvailabilityWindow
}

func (r *fakeRepo) CreateStaff(s *models.Staff) error { r.staff = append(r.staff, *s); return nil }

func (r *fakeRepo) GetStaff(id string) (*models.Staff, error) {
	for i := range r.staff {
		if r.staff[i].ID == id {
			s := r.staff[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}

func (r *fakeRepo) ListStaffByBusiness(businessID string) ([]models.Staff, error) {
	return r.staff, nil
}

func (r *fakeRepo) SetStaffActive(id string, active bool) error { return nil }

func (r *fakeRepo) CreateWindow(w *models.AvailabilityWindow) error {
	r.windows = append(r.windows, *w)
	return nil
}

func (r *fakeRepo) UpdateWindow(w *models.AvailabilityWindow) error { return nil }
func (r *fakeRepo) DeleteWindow(id string) error                   { return nil }

func (r *fakeRepo) GetWindowsByStaff(staffID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range r.windows {
		if w.StaffID == staffID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeRepo) EnsureIndexes() error { return nil }

func newService() (*DefaultStaffService, *fakeRepo) {
	repo := &fakeRepo{
		staff: []models.Staff{{ID: "staff-1", BusinessID: "biz-1", Name: "Dana", Active: true}},
	}
	return &DefaultStaffService{Repo: repo}, repo
}

func validWindow() models.AvailabilityWindow {
	return models.AvailabilityWindow{
		StaffID:     "staff-1",
		DayOfWeek:   int(time.Monday),
		StartTime:   "09:00",
		EndTime:     "17:00",
		IsAvailable: true,
		Breaks:      []models.BreakInterval{{StartTime: "13:00", EndTime: "14:00"}},
	}
}

func TestSetWindow_Success(t *testing.T) {
	svc, repo := newService()

	created, err := svc.SetWindow("biz-1", validWindow())
	if err != nil {
		t.Fatalf("SetWindow failed: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated window ID")
	}
	if len(repo.windows) != 1 {
		t.Fatalf("expected 1 persisted window, got %d", len(repo.windows))
	}
}

func TestSetWindow_DuplicateWeekdayRejected(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.SetWindow("biz-1", validWindow()); err != nil {
		t.Fatalf("first window failed: %v", err)
	}
	_, err := svc.SetWindow("biz-1", validWindow())
	if err == nil {
		t.Fatalf("second window for the same weekday must be rejected")
	}
	if CodeOf(err) != "duplicateWindow" {
		t.Fatalf("expected duplicateWindow, got %v", err)
	}
}

func TestSetWindow_Validation(t *testing.T) {
	svc, _ := newService()

	cases := []struct {
		name   string
		mutate func(*models.AvailabilityWindow)
	}{
		{"bad start", func(w *models.AvailabilityWindow) { w.StartTime = "9am" }},
		{"bad end", func(w *models.AvailabilityWindow) { w.EndTime = "25:00" }},
		{"inverted", func(w *models.AvailabilityWindow) { w.StartTime = "17:00"; w.EndTime = "09:00" }},
		{"bad weekday", func(w *models.AvailabilityWindow) { w.DayOfWeek = 7 }},
		{"break outside window", func(w *models.AvailabilityWindow) {
			w.Breaks = []models.BreakInterval{{StartTime: "08:00", EndTime: "08:30"}}
		}},
		{"inverted break", func(w *models.AvailabilityWindow) {
			w.Breaks = []models.BreakInterval{{StartTime: "14:00", EndTime: "13:00"}}
		}},
	}
	for _, tc := range cases {
		w := validWindow()
		tc.mutate(&w)
		if _, err := svc.SetWindow("biz-1", w); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		} else if CodeOf(err) != "validationError" {
			t.Errorf("%s: expected validationError, got %v", tc.name, err)
		}
	}
}

func TestSetWindow_WrongBusinessRejected(t *testing.T) {
	svc, _ := newService()

	if _, err := svc.SetWindow("other-biz", validWindow()); err == nil {
		t.Fatalf("window for a staff member of another business must be rejected")
	}
}
