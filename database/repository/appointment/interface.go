package apptRepo

import (
	"time"

	"glowdesk/models"
)

// AppointmentRepository defines persistence operations for appointments.
type AppointmentRepository interface {
	Create(appt *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	// GetByStaffBetween returns every appointment for a staff member whose
	// start instant falls in [from, to), regardless of status. Conflict
	// filtering (cancelled exclusion etc.) happens in the scheduling core.
	GetByStaffBetween(staffID string, from, to time.Time) ([]models.Appointment, error)
	// GetByServiceBetween returns every appointment for a service whose
	// start instant falls in [from, to). Used by the capacity model.
	GetByServiceBetween(serviceID string, from, to time.Time) ([]models.Appointment, error)
	ListByCustomer(customerID string, limit int64) ([]models.Appointment, error)
	ListByBusinessBetween(businessID string, from, to time.Time) ([]models.Appointment, error)
	UpdateStatus(id, status string) error
	Reschedule(id string, date time.Time, duration int) error
	EnsureIndexes() error
}
