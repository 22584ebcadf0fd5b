package booking

import (
	"fmt"
	"testing"
	"time"

	"glowdesk/models"
)

// ---- in-memory fakes ----

type fakeApptRepo struct {
	appts []models.Appointment
}

func (r *fakeApptRepo) Create(a *models.Appointment) error {
	r.appts = append(r.appts, *a)
	return nil
}

func (r *fakeApptRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range r.appts {
		if r.appts[i].ID == id {
			a := r.appts[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (r *fakeApptRepo) between(from, to time.Time, match func(*models.Appointment) bool) []models.Appointment {
	var out []models.Appointment
	for i := range r.appts {
		a := &r.appts[i]
		if match(a) && !a.Date.Before(from) && a.Date.Before(to) {
			out = append(out, *a)
		}
	}
	return out
}

func (r *fakeApptRepo) GetByStaffBetween(staffID string, from, to time.Time) ([]models.Appointment, error) {
	return r.between(from, to, func(a *models.Appointment) bool { return a.StaffID == staffID }), nil
}

func (r *fakeApptRepo) GetByServiceBetween(serviceID string, from, to time.Time) ([]models.Appointment, error) {
	return r.between(from, to, func(a *models.Appointment) bool { return a.ServiceID == serviceID }), nil
}

func (r *fakeApptRepo) ListByBusinessBetween(businessID string, from, to time.Time) ([]models.Appointment, error) {
	return r.between(from, to, func(a *models.Appointment) bool { return a.BusinessID == businessID }), nil
}

func (r *fakeApptRepo) ListByCustomer(customerID string, limit int64) ([]models.Appointment, error) {
	var out []models.Appointment
	for i := range r.appts {
		if r.appts[i].CustomerID == customerID {
			out = append(out, r.appts[i])
		}
	}
	return out, nil
}

func (r *fakeApptRepo) UpdateStatus(id, status string) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

func (r *fakeApptRepo) Reschedule(id string, date time.Time, duration int) error {
	for i := range r.appts {
		if r.appts[i].ID == id {
			r.appts[i].Date = date
			r.appts[i].Duration = duration
			return nil
		}
	}
	return fmt.Errorf("appointment %s not found", id)
}

func (r *fakeApptRepo) EnsureIndexes() error { return nil }

type fakeStaffRepo struct {
	staff   []models.Staff
	windows []models.AvailabilityWindow
}

func (r *fakeStaffRepo) CreateStaff(s *models.Staff) error { r.staff = append(r.staff, *s); return nil }

func (r *fakeStaffRepo) GetStaff(id string) (*models.Staff, error) {
	for i := range r.staff {
		if r.staff[i].ID == id {
			s := r.staff[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("staff %s not found", id)
}

func (r *fakeStaffRepo) ListStaffByBusiness(businessID string) ([]models.Staff, error) {
	return r.staff, nil
}

func (r *fakeStaffRepo) SetStaffActive(id string, active bool) error { return nil }

func (r *fakeStaffRepo) CreateWindow(w *models.AvailabilityWindow) error {
	r.windows = append(r.windows, *w)
	return nil
}

func (r *fakeStaffRepo) UpdateWindow(w *models.AvailabilityWindow) error { return nil }
func (r *fakeStaffRepo) DeleteWindow(id string) error                   { return nil }

func (r *fakeStaffRepo) GetWindowsByStaff(staffID string) ([]models.AvailabilityWindow, error) {
	var out []models.AvailabilityWindow
	for _, w := range r.windows {
		if w.StaffID == staffID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) EnsureIndexes() error { return nil }

type fakeCatalogRepo struct {
	services []models.Service
}

func (r *fakeCatalogRepo) CreateService(s *models.Service) error {
	r.services = append(r.services, *s)
	return nil
}

func (r *fakeCatalogRepo) GetService(id string) (*models.Service, error) {
	for i := range r.services {
		if r.services[i].ID == id {
			s := r.services[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (r *fakeCatalogRepo) ListServicesByBusiness(businessID string) ([]models.Service, error) {
	return r.services, nil
}

func (r *fakeCatalogRepo) UpdateService(s *models.Service) error         { return nil }
func (r *fakeCatalogRepo) SetServiceActive(id string, active bool) error { return nil }
func (r *fakeCatalogRepo) EnsureIndexes() error                          { return nil }

type fakeBusinessRepo struct {
	business  models.Business
	customers []models.Customer
}

func (r *fakeBusinessRepo) CreateBusiness(b *models.Business) error { return nil }

func (r *fakeBusinessRepo) GetBusiness(id string) (*models.Business, error) {
	if r.business.ID != id {
		return nil, fmt.Errorf("business %s not found", id)
	}
	b := r.business
	return &b, nil
}

func (r *fakeBusinessRepo) GetBusinessBySlug(slug string) (*models.Business, error) {
	b := r.business
	return &b, nil
}

func (r *fakeBusinessRepo) GetBusinessByOwnerEmail(email string) (*models.Business, error) {
	b := r.business
	return &b, nil
}

func (r *fakeBusinessRepo) CreateCustomer(c *models.Customer) error {
	r.customers = append(r.customers, *c)
	return nil
}

func (r *fakeBusinessRepo) GetCustomer(id string) (*models.Customer, error) {
	for i := range r.customers {
		if r.customers[i].ID == id {
			c := r.customers[i]
			return &c, nil
		}
	}
	return nil, fmt.Errorf("customer %s not found", id)
}

func (r *fakeBusinessRepo) FindCustomerByEmail(businessID, email string) (*models.Customer, error) {
	return nil, fmt.Errorf("not found")
}

func (r *fakeBusinessRepo) EnsureIndexes() error { return nil }

// ---- fixtures ----

func newTestService(model models.BookingModel, capacity int) (*DefaultBookingService, *fakeApptRepo) {
	appts := &fakeApptRepo{}
	staff := &fakeStaffRepo{
		staff: []models.Staff{{ID: "staff-1", BusinessID: "biz-1", Name: "Dana", Active: true}},
		windows: []models.AvailabilityWindow{
			{ID: "w1", StaffID: "staff-1", DayOfWeek: int(time.Monday), StartTime: "09:00", EndTime: "17:00",
				IsAvailable: true, Breaks: []models.BreakInterval{{StartTime: "13:00", EndTime: "14:00"}}},
		},
	}
	catalog := &fakeCatalogRepo{
		services: []models.Service{{
			ID: "svc-1", BusinessID: "biz-1", Name: "Cut", Duration: 30,
			Model: model, Capacity: capacity, Active: true,
		}},
	}
	biz := &fakeBusinessRepo{
		business:  models.Business{ID: "biz-1", Name: "Glow", Timezone: "UTC"},
		customers: []models.Customer{{ID: "cust-1", BusinessID: "biz-1", Name: "Ada"}},
	}
	return &DefaultBookingService{
		ApptRepo:     appts,
		StaffRepo:    staff,
		CatalogRepo:  catalog,
		BusinessRepo: biz,
	}, appts
}

func request(clock string) BookingRequest {
	return BookingRequest{
		BusinessID: "biz-1",
		StaffID:    "staff-1",
		ServiceID:  "svc-1",
		CustomerID: "cust-1",
		Date:       "2026-03-02", // a Monday
		Time:       clock,
	}
}

// ---- tests ----

func TestBook_Success(t *testing.T) {
	svc, repo := newTestService(models.BookingExclusive, 0)

	appt, err := svc.Book(request("10:00"))
	if err != nil {
		t.Fatalf("expected booking to succeed, got %v", err)
	}
	if appt.Status != models.AppointmentScheduled || appt.Duration != 30 {
		t.Fatalf("unexpected appointment %+v", appt)
	}
	if len(repo.appts) != 1 {
		t.Fatalf("expected 1 persisted appointment, got %d", len(repo.appts))
	}
}

func TestBook_DoubleBookingRejected(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	if _, err := svc.Book(request("10:00")); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	_, err := svc.Book(request("10:15"))
	if err == nil {
		t.Fatalf("overlapping booking must be rejected")
	}
	if CodeOf(err) != "slotTaken" {
		t.Fatalf("expected slotTaken, got %v", err)
	}
}

func TestBook_BackToBackAllowed(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	if _, err := svc.Book(request("10:00")); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	if _, err := svc.Book(request("10:30")); err != nil {
		t.Fatalf("back-to-back booking must be allowed, got %v", err)
	}
}

func TestBook_OutsideWindowRejected(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	for _, clock := range []string{"08:00", "16:45", "13:15"} {
		if _, err := svc.Book(request(clock)); err == nil {
			t.Errorf("booking at %s must be rejected", clock)
		}
	}
}

func TestBook_ClosedDayRejected(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	req := request("10:00")
	req.Date = "2026-03-01" // Sunday, no window
	if _, err := svc.Book(req); err == nil {
		t.Fatalf("booking on a closed day must be rejected")
	}
}

func TestCancel_FreesSlot(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	appt, err := svc.Book(request("10:00"))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	if err := svc.Cancel("biz-1", appt.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.Book(request("10:00")); err != nil {
		t.Fatalf("slot must be free after cancellation, got %v", err)
	}
}

func TestReschedule_ExcludesSelf(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	appt, err := svc.Book(request("10:00"))
	if err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	// Shifting within the original interval must not self-conflict.
	moved, err := svc.Reschedule("biz-1", appt.ID, "2026-03-02", "10:15")
	if err != nil {
		t.Fatalf("reschedule must exclude the appointment itself, got %v", err)
	}
	if moved.Date.Hour() != 10 || moved.Date.Minute() != 15 {
		t.Fatalf("unexpected new start %v", moved.Date)
	}
}

func TestReschedule_ConflictWithOtherRejected(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	if _, err := svc.Book(request("10:00")); err != nil {
		t.Fatalf("first booking failed: %v", err)
	}
	second, err := svc.Book(request("11:00"))
	if err != nil {
		t.Fatalf("second booking failed: %v", err)
	}
	if _, err := svc.Reschedule("biz-1", second.ID, "2026-03-02", "10:15"); err == nil {
		t.Fatalf("reschedule onto another appointment must be rejected")
	}
}

func TestBook_CapacityModel(t *testing.T) {
	svc, _ := newTestService(models.BookingCapacity, 3)

	// Three seats in the 10:00 hour bucket.
	for _, clock := range []string{"10:00", "10:00", "10:30"} {
		if _, err := svc.Book(request(clock)); err != nil {
			t.Fatalf("capacity booking at %s failed: %v", clock, err)
		}
	}
	_, err := svc.Book(request("10:45"))
	if err == nil {
		t.Fatalf("fourth booking in a full hour bucket must be rejected")
	}
	if CodeOf(err) != "slotTaken" {
		t.Fatalf("expected slotTaken, got %v", err)
	}
	// A different hour bucket still has room.
	if _, err := svc.Book(request("11:00")); err != nil {
		t.Fatalf("booking in another hour bucket failed: %v", err)
	}
}

func TestAvailableSlots_Exclusive(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	if _, err := svc.Book(request("10:00")); err != nil {
		t.Fatalf("booking failed: %v", err)
	}
	slots, err := svc.AvailableSlots("biz-1", "staff-1", "svc-1", "2026-03-02")
	if err != nil {
		t.Fatalf("AvailableSlots failed: %v", err)
	}
	for _, clock := range slots {
		if clock == "10:00" || clock == "10:15" {
			t.Errorf("slot %s should be blocked by the booking", clock)
		}
		if clock >= "13:00" && clock < "14:00" {
			t.Errorf("slot %s falls into the break", clock)
		}
	}
	if len(slots) == 0 {
		t.Fatalf("expected remaining open slots")
	}
}

func TestAvailableDays(t *testing.T) {
	svc, _ := newTestService(models.BookingExclusive, 0)

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	days, err := svc.AvailableDays("biz-1", "staff-1", start, start.AddDate(0, 0, 13))
	if err != nil {
		t.Fatalf("AvailableDays failed: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected the two Mondays in range, got %v", days)
	}
}
