package businessRepo

import "glowdesk/models"

// BusinessRepository defines persistence operations for tenants and their
// customers.
type BusinessRepository interface {
	CreateBusiness(business *models.Business) error
	GetBusiness(id string) (*models.Business, error)
	GetBusinessBySlug(slug string) (*models.Business, error)
	GetBusinessByOwnerEmail(email string) (*models.Business, error)

	CreateCustomer(customer *models.Customer) error
	GetCustomer(id string) (*models.Customer, error)
	FindCustomerByEmail(businessID, email string) (*models.Customer, error)
	EnsureIndexes() error
}
