package models

// Staff is a bookable member of a business's roster.
type Staff struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"businessId" json:"businessId"`
	Name       string `bson:"name" json:"name"`
	Role       string `bson:"role,omitempty" json:"role,omitempty"` // e.g. "stylist", "colorist"
	Active     bool   `bson:"active" json:"active"`
}

// BreakInterval is a sub-interval inside a working window during which the
// staff member cannot be booked (lunch etc.). Times are "HH:MM", 24-hour.
type BreakInterval struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
}

// AvailabilityWindow is one staff member's working hours for one day of the
// week. DayOfWeek follows time.Weekday numbering (0 = Sunday). StartTime and
// EndTime are naive "HH:MM" wall-clock strings interpreted in the business's
// timezone. A staff member has at most one window per day of week; the staff
// service rejects duplicates at write time.
type AvailabilityWindow struct {
	ID          string          `bson:"id" json:"id"`
	StaffID     string          `bson:"staffId" json:"staffId"`
	DayOfWeek   int             `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime   string          `bson:"startTime" json:"startTime"`
	EndTime     string          `bson:"endTime" json:"endTime"`
	IsAvailable bool            `bson:"isAvailable" json:"isAvailable"`
	Breaks      []BreakInterval `bson:"breaks,omitempty" json:"breaks,omitempty"`
}
