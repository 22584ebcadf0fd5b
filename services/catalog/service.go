package catalog

import (
	"fmt"

	catalogRepo "glowdesk/database/repository/catalog"
	"glowdesk/models"

	"github.com/google/uuid"
)

// CatalogService manages a business's bookable offerings.
type CatalogService interface {
	CreateService(businessID string, service models.Service) (*models.Service, error)
	ListServices(businessID string) ([]models.Service, error)
	UpdateService(businessID string, service models.Service) (*models.Service, error)
	SetActive(businessID, serviceID string, active bool) error
}

type CatalogError struct {
	Code    string
	Message string
}

func (e *CatalogError) Error() string { return e.Message }

func NewValidationError(msg string) error {
	return &CatalogError{Code: "validationError", Message: msg}
}

func NewNotFoundError(msg string) error {
	return &CatalogError{Code: "notFound", Message: msg}
}

// CodeOf returns the machine code of a catalog error, or "" for other errors.
func CodeOf(err error) string {
	if ce, ok := err.(*CatalogError); ok {
		return ce.Code
	}
	return ""
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}

func (svc *DefaultCatalogService) CreateService(businessID string, service models.Service) (*models.Service, error) {
	if err := validateService(&service); err != nil {
		return nil, err
	}
	service.ID = uuid.New().String()
	service.BusinessID = businessID
	service.Active = true
	if err := svc.Repo.CreateService(&service); err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &service, nil
}

func (svc *DefaultCatalogService) ListServices(businessID string) ([]models.Service, error) {
	return svc.Repo.ListServicesByBusiness(businessID)
}

func (svc *DefaultCatalogService) UpdateService(businessID string, service models.Service) (*models.Service, error) {
	current, err := svc.owned(businessID, service.ID)
	if err != nil {
		return nil, err
	}
	if err := validateService(&service); err != nil {
		return nil, err
	}
	service.BusinessID = businessID
	service.Active = current.Active
	if err := svc.Repo.UpdateService(&service); err != nil {
		return nil, fmt.Errorf("failed to update service: %w", err)
	}
	return &service, nil
}

func (svc *DefaultCatalogService) SetActive(businessID, serviceID string, active bool) error {
	if _, err := svc.owned(businessID, serviceID); err != nil {
		return err
	}
	if err := svc.Repo.SetServiceActive(serviceID, active); err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

func (svc *DefaultCatalogService) owned(businessID, serviceID string) (*models.Service, error) {
	service, err := svc.Repo.GetService(serviceID)
	if err != nil {
		return nil, NewNotFoundError("service not found")
	}
	if service.BusinessID != businessID {
		return nil, NewNotFoundError("service not found")
	}
	return service, nil
}

func validateService(service *models.Service) error {
	if service.Name == "" {
		return NewValidationError("service name is required")
	}
	if service.Duration <= 0 {
		return NewValidationError("duration must be a positive number of minutes")
	}
	if service.PriceCents < 0 {
		return NewValidationError("priceCents must not be negative")
	}
	switch service.Model {
	case "":
		service.Model = models.BookingExclusive
	case models.BookingExclusive:
	case models.BookingCapacity:
		if service.Capacity < 2 {
			return NewValidationError("capacity services need a capacity of at least 2")
		}
	default:
		return NewValidationError(fmt.Sprintf("unknown booking model %q", service.Model))
	}
	return nil
}
