package booking

import (
	"time"

	"glowdesk/models"
)

// BookingRequest is the input for creating an appointment through the
// customer portal.
type BookingRequest struct {
	BusinessID string `json:"businessId"`
	StaffID    string `json:"staffId"`
	ServiceID  string `json:"serviceId"`
	CustomerID string `json:"customerId"`
	Date       string `json:"date"` // "2006-01-02", business-local
	Time       string `json:"time"` // "HH:MM", business-local
	Notes      string `json:"notes,omitempty"`
}

// BookingService is the scheduling surface consumed by the portal and API
// handlers: day/slot discovery plus the guarded appointment lifecycle.
type BookingService interface {
	AvailableDays(businessID, staffID string, start, end time.Time) ([]time.Time, error)
	AvailableSlots(businessID, staffID, serviceID, date string) ([]string, error)
	Book(req BookingRequest) (*models.Appointment, error)
	Reschedule(businessID, appointmentID, date, timeStr string) (*models.Appointment, error)
	Cancel(businessID, appointmentID string) error
	Complete(businessID, appointmentID string) error
	CustomerAppointments(customerID string, limit int64) ([]models.Appointment, error)
	DayCalendar(businessID, date string) ([]models.Appointment, error)
}
