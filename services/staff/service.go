package staff

import (
	"fmt"

	staffRepo "glowdesk/database/repository/staff"
	"glowdesk/models"
	"glowdesk/services/scheduling"

	"github.com/google/uuid"
)

// StaffService manages a business's roster and availability windows.
type StaffService interface {
	CreateStaff(businessID, name, role string) (*models.Staff, error)
	ListStaff(businessID string) ([]models.Staff, error)
	SetActive(businessID, staffID string, active bool) error

	SetWindow(businessID string, window models.AvailabilityWindow) (*models.AvailabilityWindow, error)
	UpdateWindow(businessID string, window models.AvailabilityWindow) error
	DeleteWindow(businessID, staffID, windowID string) error
	Windows(businessID, staffID string) ([]models.AvailabilityWindow, error)
}

// DefaultStaffService implements StaffService.
type DefaultStaffService struct {
	Repo staffRepo.StaffRepository
}

func (svc *DefaultStaffService) CreateStaff(businessID, name, role string) (*models.Staff, error) {
	if name == "" {
		return nil, NewValidationError("staff name is required")
	}
	staff := &models.Staff{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Role:       role,
		Active:     true,
	}
	if err := svc.Repo.CreateStaff(staff); err != nil {
		return nil, fmt.Errorf("failed to create staff: %w", err)
	}
	return staff, nil
}

func (svc *DefaultStaffService) ListStaff(businessID string) ([]models.Staff, error) {
	return svc.Repo.ListStaffByBusiness(businessID)
}

func (svc *DefaultStaffService) SetActive(businessID, staffID string, active bool) error {
	if _, err := svc.ownedStaff(businessID, staffID); err != nil {
		return err
	}
	if err := svc.Repo.SetStaffActive(staffID, active); err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	return nil
}

// SetWindow creates a staff member's availability window for one weekday.
// A staff member has at most one window per day of week: a second window
// for the same weekday is rejected rather than silently shadowed, which
// keeps the resolver's first-match lookup unambiguous.
func (svc *DefaultStaffService) SetWindow(businessID string, window models.AvailabilityWindow) (*models.AvailabilityWindow, error) {
	if _, err := svc.ownedStaff(businessID, window.StaffID); err != nil {
		return nil, err
	}
	if err := validateWindow(&window); err != nil {
		return nil, err
	}

	existing, err := svc.Repo.GetWindowsByStaff(window.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability windows: %w", err)
	}
	for _, w := range existing {
		if w.DayOfWeek == window.DayOfWeek {
			return nil, NewDuplicateWindowError(
				fmt.Sprintf("staff member already has a window for weekday %d", window.DayOfWeek))
		}
	}

	window.ID = uuid.New().String()
	if err := svc.Repo.CreateWindow(&window); err != nil {
		return nil, fmt.Errorf("failed to create availability window: %w", err)
	}
	return &window, nil
}

func (svc *DefaultStaffService) UpdateWindow(businessID string, window models.AvailabilityWindow) error {
	if _, err := svc.ownedStaff(businessID, window.StaffID); err != nil {
		return err
	}
	if err := validateWindow(&window); err != nil {
		return err
	}
	if err := svc.Repo.UpdateWindow(&window); err != nil {
		return fmt.Errorf("failed to update availability window: %w", err)
	}
	return nil
}

func (svc *DefaultStaffService) DeleteWindow(businessID, staffID, windowID string) error {
	if _, err := svc.ownedStaff(businessID, staffID); err != nil {
		return err
	}
	if err := svc.Repo.DeleteWindow(windowID); err != nil {
		return fmt.Errorf("failed to delete availability window: %w", err)
	}
	return nil
}

func (svc *DefaultStaffService) Windows(businessID, staffID string) ([]models.AvailabilityWindow, error) {
	if _, err := svc.ownedStaff(businessID, staffID); err != nil {
		return nil, err
	}
	return svc.Repo.GetWindowsByStaff(staffID)
}

func (svc *DefaultStaffService) ownedStaff(businessID, staffID string) (*models.Staff, error) {
	staff, err := svc.Repo.GetStaff(staffID)
	if err != nil {
		return nil, NewNotFoundError("staff member not found")
	}
	if staff.BusinessID != businessID {
		return nil, NewNotFoundError("staff member not found")
	}
	return staff, nil
}

// validateWindow rejects malformed windows before they can poison slot
// generation: unparseable clock strings, inverted hours, out-of-range
// weekdays and breaks outside the window all fail here.
func validateWindow(window *models.AvailabilityWindow) error {
	if window.StaffID == "" {
		return NewValidationError("staffId is required")
	}
	if window.DayOfWeek < 0 || window.DayOfWeek > 6 {
		return NewValidationError("dayOfWeek must be 0 (Sunday) through 6 (Saturday)")
	}
	start, err := scheduling.ParseClock(window.StartTime)
	if err != nil {
		return NewValidationError(fmt.Sprintf("startTime: %v", err))
	}
	end, err := scheduling.ParseClock(window.EndTime)
	if err != nil {
		return NewValidationError(fmt.Sprintf("endTime: %v", err))
	}
	if end <= start {
		return NewValidationError("endTime must be after startTime")
	}
	for i, br := range window.Breaks {
		bStart, err := scheduling.ParseClock(br.StartTime)
		if err != nil {
			return NewValidationError(fmt.Sprintf("breaks[%d].startTime: %v", i, err))
		}
		bEnd, err := scheduling.ParseClock(br.EndTime)
		if err != nil {
			return NewValidationError(fmt.Sprintf("breaks[%d].endTime: %v", i, err))
		}
		if bEnd <= bStart {
			return NewValidationError(fmt.Sprintf("breaks[%d] must end after it starts", i))
		}
		if bStart < start || bEnd > end {
			return NewValidationError(fmt.Sprintf("breaks[%d] must lie inside the window", i))
		}
	}
	return nil
}
