package staffRepo

import "glowdesk/models"

// StaffRepository defines persistence operations for the staff roster and
// per-weekday availability windows.
type StaffRepository interface {
	CreateStaff(staff *models.Staff) error
	GetStaff(id string) (*models.Staff, error)
	ListStaffByBusiness(businessID string) ([]models.Staff, error)
	SetStaffActive(id string, active bool) error

	// CreateWindow inserts an availability window. The unique
	// (staffId, dayOfWeek) index makes a second window for the same
	// weekday a duplicate-key error.
	CreateWindow(window *models.AvailabilityWindow) error
	UpdateWindow(window *models.AvailabilityWindow) error
	DeleteWindow(id string) error
	GetWindowsByStaff(staffID string) ([]models.AvailabilityWindow, error)
	EnsureIndexes() error
}
