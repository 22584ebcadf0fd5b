package booking

import (
	"context"
	"fmt"
	"time"

	apptRepo "glowdesk/database/repository/appointment"
	businessRepo "glowdesk/database/repository/business"
	catalogRepo "glowdesk/database/repository/catalog"
	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/services/scheduling"
	"glowdesk/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production booking engine. The scheduling
// core answers "is this slot free given this snapshot"; this service owns
// the snapshots and closes the read-then-write race at the boundary with a
// per-staff (or per-service, for capacity bookings) Redis lock around the
// re-check and insert.
type DefaultBookingService struct {
	ApptRepo     apptRepo.AppointmentRepository
	StaffRepo    staffRepo.StaffRepository
	CatalogRepo  catalogRepo.CatalogRepository
	BusinessRepo businessRepo.BusinessRepository
	Reminders    ReminderScheduler
	Lock         *redis.Client

	// SlotInterval is the slot granularity in minutes; zero means the
	// scheduling core default.
	SlotInterval int
	// LockTTL bounds how long a booking critical section may hold its lock.
	LockTTL time.Duration
}

// AvailableDays returns the calendar dates in [start, end] on which the
// staff member has any availability record at all.
func (svc *DefaultBookingService) AvailableDays(businessID, staffID string, start, end time.Time) ([]time.Time, error) {
	if _, err := svc.staffOf(businessID, staffID); err != nil {
		return nil, err
	}
	windows, err := svc.StaffRepo.GetWindowsByStaff(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability windows: %w", err)
	}
	return scheduling.GetAvailableDays(start, end, windows), nil
}

// AvailableSlots returns the bookable "HH:MM" start times for one date.
// Exclusive services filter candidates against the staff member's other
// appointments; capacity services filter against the service's hour-bucket
// headcount instead.
func (svc *DefaultBookingService) AvailableSlots(businessID, staffID, serviceID, date string) ([]string, error) {
	business, err := svc.BusinessRepo.GetBusiness(businessID)
	if err != nil {
		return nil, NewNotFoundError("business not found")
	}
	service, err := svc.serviceOf(businessID, serviceID)
	if err != nil {
		return nil, err
	}
	if _, err := svc.staffOf(businessID, staffID); err != nil {
		return nil, err
	}
	day, err := businessDay(business, date)
	if err != nil {
		return nil, err
	}
	windows, err := svc.StaffRepo.GetWindowsByStaff(staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability windows: %w", err)
	}

	if service.IsCapacity() {
		// Candidates still honor the window and breaks; conflicts are a
		// headcount per hour bucket rather than interval exclusivity.
		candidates := scheduling.GenerateAvailableSlots(day, windows, nil, service.Duration, svc.interval())
		if len(candidates) == 0 {
			return nil, nil
		}
		sameService, err := svc.serviceDaySnapshot(service.ID, day)
		if err != nil {
			return nil, err
		}
		var slots []string
		for _, clock := range candidates {
			if scheduling.CheckServiceCapacity(day, clock, service.Capacity, sameService) {
				slots = append(slots, clock)
			}
		}
		return slots, nil
	}

	existing, err := svc.staffDaySnapshot(staffID, day)
	if err != nil {
		return nil, err
	}
	return scheduling.GenerateAvailableSlots(day, windows, existing, service.Duration, svc.interval()), nil
}

// Book validates the request, then re-checks the slot and inserts the
// appointment inside the per-resource critical section.
func (svc *DefaultBookingService) Book(req BookingRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	business, err := svc.BusinessRepo.GetBusiness(req.BusinessID)
	if err != nil {
		return nil, NewNotFoundError("business not found")
	}
	service, err := svc.serviceOf(req.BusinessID, req.ServiceID)
	if err != nil {
		return nil, err
	}
	staff, err := svc.staffOf(req.BusinessID, req.StaffID)
	if err != nil {
		return nil, err
	}
	if !staff.Active {
		return nil, NewValidationError("staff member is not bookable")
	}
	if _, err := svc.BusinessRepo.GetCustomer(req.CustomerID); err != nil {
		return nil, NewNotFoundError("customer not found")
	}
	day, err := businessDay(business, req.Date)
	if err != nil {
		return nil, err
	}
	startMins, err := scheduling.ParseClock(req.Time)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	lockKey := utils.BookingLockPrefix + req.StaffID
	if service.IsCapacity() {
		lockKey = utils.BookingLockPrefix + "svc:" + req.ServiceID
	}
	unlock, err := svc.acquireLock(lockKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := svc.checkBookable(service, req.StaffID, day, req.Time, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		BusinessID: req.BusinessID,
		StaffID:    req.StaffID,
		ServiceID:  req.ServiceID,
		CustomerID: req.CustomerID,
		Date:       scheduling.AtClock(day, startMins),
		Duration:   service.Duration,
		Status:     models.AppointmentScheduled,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := svc.ApptRepo.Create(appt); err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	if svc.Reminders != nil {
		if err := svc.Reminders.ScheduleReminder(appt); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("appointmentID", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment booked",
		zap.String("appointmentID", appt.ID),
		zap.String("staffID", appt.StaffID),
		zap.Time("start", appt.Date))
	return appt, nil
}

// Reschedule moves an existing scheduled appointment to a new date and
// time. The appointment is excluded from its own conflict check so moving
// it within its current slot is legal.
func (svc *DefaultBookingService) Reschedule(businessID, appointmentID, date, timeStr string) (*models.Appointment, error) {
	appt, err := svc.appointmentOf(businessID, appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.Status != models.AppointmentScheduled {
		return nil, NewValidationError(fmt.Sprintf("cannot reschedule a %s appointment", appt.Status))
	}
	business, err := svc.BusinessRepo.GetBusiness(businessID)
	if err != nil {
		return nil, NewNotFoundError("business not found")
	}
	service, err := svc.serviceOf(businessID, appt.ServiceID)
	if err != nil {
		return nil, err
	}
	day, err := businessDay(business, date)
	if err != nil {
		return nil, err
	}
	startMins, err := scheduling.ParseClock(timeStr)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	lockKey := utils.BookingLockPrefix + appt.StaffID
	if service.IsCapacity() {
		lockKey = utils.BookingLockPrefix + "svc:" + service.ID
	}
	unlock, err := svc.acquireLock(lockKey)
	if err != nil {
		return nil, err
	}
	defer unlock()

	if err := svc.checkBookable(service, appt.StaffID, day, timeStr, appt.ID); err != nil {
		return nil, err
	}
	newStart := scheduling.AtClock(day, startMins)
	if err := svc.ApptRepo.Reschedule(appt.ID, newStart, service.Duration); err != nil {
		return nil, fmt.Errorf("failed to reschedule appointment: %w", err)
	}
	appt.Date = newStart
	appt.Duration = service.Duration
	appt.UpdatedAt = time.Now()
	return appt, nil
}

// Cancel marks an appointment cancelled; its time is freed immediately.
func (svc *DefaultBookingService) Cancel(businessID, appointmentID string) error {
	appt, err := svc.appointmentOf(businessID, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status == models.AppointmentCompleted {
		return NewValidationError("cannot cancel a completed appointment")
	}
	if appt.Status == models.AppointmentCancelled {
		return nil
	}
	if err := svc.ApptRepo.UpdateStatus(appt.ID, models.AppointmentCancelled); err != nil {
		return fmt.Errorf("failed to cancel appointment: %w", err)
	}
	return nil
}

// Complete marks a scheduled appointment completed.
func (svc *DefaultBookingService) Complete(businessID, appointmentID string) error {
	appt, err := svc.appointmentOf(businessID, appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.AppointmentScheduled {
		return NewValidationError(fmt.Sprintf("cannot complete a %s appointment", appt.Status))
	}
	if err := svc.ApptRepo.UpdateStatus(appt.ID, models.AppointmentCompleted); err != nil {
		return fmt.Errorf("failed to complete appointment: %w", err)
	}
	return nil
}

// CustomerAppointments lists a customer's appointments, newest first.
func (svc *DefaultBookingService) CustomerAppointments(customerID string, limit int64) ([]models.Appointment, error) {
	return svc.ApptRepo.ListByCustomer(customerID, limit)
}

// DayCalendar returns every appointment for a business on one date, for
// the owner dashboard.
func (svc *DefaultBookingService) DayCalendar(businessID, date string) ([]models.Appointment, error) {
	business, err := svc.BusinessRepo.GetBusiness(businessID)
	if err != nil {
		return nil, NewNotFoundError("business not found")
	}
	day, err := businessDay(business, date)
	if err != nil {
		return nil, err
	}
	return svc.ApptRepo.ListByBusinessBetween(businessID, day, day.AddDate(0, 0, 1))
}

// checkBookable runs the model-appropriate conflict checks against a fresh
// snapshot. Callers hold the booking lock.
func (svc *DefaultBookingService) checkBookable(service *models.Service, staffID string, day time.Time, timeStr, excludeID string) error {
	windows, err := svc.StaffRepo.GetWindowsByStaff(staffID)
	if err != nil {
		return fmt.Errorf("failed to load availability windows: %w", err)
	}
	if !scheduling.IsWithinAvailability(day, timeStr, service.Duration, windows) {
		return NewSlotTakenError("requested time is outside the staff member's availability")
	}

	if service.IsCapacity() {
		sameService, err := svc.serviceDaySnapshot(service.ID, day)
		if err != nil {
			return err
		}
		if excludeID != "" {
			sameService = withoutAppointment(sameService, excludeID)
		}
		if !scheduling.CheckServiceCapacity(day, timeStr, service.Capacity, sameService) {
			return NewSlotTakenError("class is fully booked for that hour")
		}
		return nil
	}

	existing, err := svc.staffDaySnapshot(staffID, day)
	if err != nil {
		return err
	}
	if !scheduling.IsSlotAvailable(day, timeStr, service.Duration, existing, excludeID) {
		return NewSlotTakenError("requested time conflicts with another appointment")
	}
	return nil
}

// acquireLock takes the named lock with SET NX, waiting briefly for a
// concurrent holder. A nil Lock client (tests) degrades to no locking.
func (svc *DefaultBookingService) acquireLock(key string) (func(), error) {
	if svc.Lock == nil {
		return func() {}, nil
	}
	ttl := svc.LockTTL
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), ttl)
	defer cancel()

	for {
		ok, err := svc.Lock.SetNX(ctx, key, "1", ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire booking lock: %w", err)
		}
		if ok {
			client := svc.Lock
			return func() {
				client.Del(context.Background(), key)
			}, nil
		}
		select {
		case <-ctx.Done():
			return nil, NewBusyError("another booking for this calendar is in progress, try again")
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func (svc *DefaultBookingService) interval() int {
	if svc.SlotInterval > 0 {
		return svc.SlotInterval
	}
	return scheduling.DefaultSlotInterval
}

func (svc *DefaultBookingService) staffDaySnapshot(staffID string, day time.Time) ([]models.Appointment, error) {
	appts, err := svc.ApptRepo.GetByStaffBetween(staffID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	return appts, nil
}

func (svc *DefaultBookingService) serviceDaySnapshot(serviceID string, day time.Time) ([]models.Appointment, error) {
	appts, err := svc.ApptRepo.GetByServiceBetween(serviceID, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to load service appointments: %w", err)
	}
	return appts, nil
}

func (svc *DefaultBookingService) staffOf(businessID, staffID string) (*models.Staff, error) {
	staff, err := svc.StaffRepo.GetStaff(staffID)
	if err != nil {
		return nil, NewNotFoundError("staff member not found")
	}
	if staff.BusinessID != businessID {
		return nil, NewNotFoundError("staff member not found")
	}
	return staff, nil
}

func (svc *DefaultBookingService) serviceOf(businessID, serviceID string) (*models.Service, error) {
	service, err := svc.CatalogRepo.GetService(serviceID)
	if err != nil {
		return nil, NewNotFoundError("service not found")
	}
	if service.BusinessID != businessID || !service.Active {
		return nil, NewNotFoundError("service not found")
	}
	if service.Duration <= 0 {
		return nil, NewValidationError("service has no duration configured")
	}
	return service, nil
}

func (svc *DefaultBookingService) appointmentOf(businessID, appointmentID string) (*models.Appointment, error) {
	appt, err := svc.ApptRepo.GetByID(appointmentID)
	if err != nil {
		return nil, NewNotFoundError("appointment not found")
	}
	if appt.BusinessID != businessID {
		return nil, NewNotFoundError("appointment not found")
	}
	return appt, nil
}

// businessDay parses a "2006-01-02" date at midnight in the business's
// timezone, so every downstream comparison happens in one location.
func businessDay(business *models.Business, date string) (time.Time, error) {
	day, err := time.ParseInLocation("2006-01-02", date, business.Location())
	if err != nil {
		return time.Time{}, NewValidationError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date))
	}
	return day, nil
}

func withoutAppointment(appts []models.Appointment, id string) []models.Appointment {
	out := appts[:0]
	for _, a := range appts {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
