package models

// BookingModel selects which conflict rule applies when checking a
// candidate slot for a service. The two models are incompatible and are
// never mixed: exclusive services use interval overlap against the staff
// member's other appointments, capacity services use a headcount per
// calendar-hour bucket.
type BookingModel string

const (
	// BookingExclusive: one customer per staff member per interval.
	BookingExclusive BookingModel = "exclusive"
	// BookingCapacity: class-style, up to Capacity customers per hour bucket.
	BookingCapacity BookingModel = "capacity"
)

// Service is a bookable offering of a business (haircut, massage, a yoga
// class...). Duration sizes the candidate slot; Capacity only applies when
// Model is BookingCapacity.
type Service struct {
	ID          string       `bson:"id" json:"id"`
	BusinessID  string       `bson:"businessId" json:"businessId"`
	Name        string       `bson:"name" json:"name"`
	Description string       `bson:"description,omitempty" json:"description,omitempty"`
	Duration    int          `bson:"duration" json:"duration"` // minutes
	PriceCents  int64        `bson:"priceCents" json:"priceCents"`
	Model       BookingModel `bson:"model" json:"model"`
	Capacity    int          `bson:"capacity,omitempty" json:"capacity,omitempty"`
	Active      bool         `bson:"active" json:"active"`
}

// IsCapacity reports whether the capacity conflict model applies.
func (s *Service) IsCapacity() bool {
	return s.Model == BookingCapacity && s.Capacity > 1
}
