package catalogRepo

import "glowdesk/models"

// CatalogRepository defines persistence operations for a business's
// service catalog.
type CatalogRepository interface {
	CreateService(service *models.Service) error
	GetService(id string) (*models.Service, error)
	ListServicesByBusiness(businessID string) ([]models.Service, error)
	UpdateService(service *models.Service) error
	SetServiceActive(id string, active bool) error
	EnsureIndexes() error
}
