package models

import "time"

// Appointment statuses. Cancelled appointments no longer occupy time and
// are excluded from every conflict check.
const (
	AppointmentScheduled = "scheduled"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment is a booked reservation. Date is the absolute start instant;
// together with Duration it defines the half-open interval
// [Date, Date+Duration).
type Appointment struct {
	ID         string    `bson:"id" json:"id"`
	BusinessID string    `bson:"businessId" json:"businessId"`
	StaffID    string    `bson:"staffId" json:"staffId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	CustomerID string    `bson:"customerId" json:"customerId"`
	Date       time.Time `bson:"date" json:"date"`
	Duration   int       `bson:"duration" json:"duration"` // minutes
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// End returns the exclusive end instant of the appointment's interval.
func (a *Appointment) End() time.Time {
	return a.Date.Add(time.Duration(a.Duration) * time.Minute)
}

// Occupies reports whether the appointment still blocks time on the
// calendar.
func (a *Appointment) Occupies() bool {
	return a.Status != AppointmentCancelled
}

// ReminderPayload is the asynq task payload for an appointment reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	BusinessID    string `json:"businessId"`
	CustomerID    string `json:"customerId"`
	StaffName     string `json:"staffName,omitempty"`
	ServiceName   string `json:"serviceName,omitempty"`
	StartsAt      string `json:"startsAt"` // RFC 3339
}
