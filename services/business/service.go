package business

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	businessRepo "glowdesk/database/repository/business"
	"glowdesk/models"
	"glowdesk/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Typed errors surfaced to handlers.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("a business with this owner email already exists")
)

const ownerTokenTTL = 72 * time.Hour

// RegisterRequest is the payload for creating a new tenant.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Slug     string `json:"slug" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Timezone string `json:"timezone"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// BusinessService manages tenants, owner authentication and customers.
type BusinessService interface {
	Register(req RegisterRequest) (*models.Business, string, error)
	SignIn(email, password string) (*models.Business, string, error)
	GetBySlug(slug string) (*models.Business, error)
	GetByID(id string) (*models.Business, error)
	UpsertCustomer(businessID, name, email, phone string) (*models.Customer, error)
}

// DefaultBusinessService implements BusinessService.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}

// Register creates a business and returns it with a signed owner token.
func (svc *DefaultBusinessService) Register(req RegisterRequest) (*models.Business, string, error) {
	if req.Timezone != "" {
		if _, err := time.LoadLocation(req.Timezone); err != nil {
			return nil, "", fmt.Errorf("invalid timezone %q", req.Timezone)
		}
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := svc.Repo.GetBusinessByOwnerEmail(email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	business := &models.Business{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Slug:         strings.ToLower(strings.TrimSpace(req.Slug)),
		OwnerEmail:   email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		Address:      req.Address,
		Timezone:     req.Timezone,
		CreatedAt:    time.Now(),
	}
	if err := svc.Repo.CreateBusiness(business); err != nil {
		return nil, "", fmt.Errorf("failed to create business: %w", err)
	}

	token, err := utils.GenerateToken(business.ID, business.ID, "owner", ownerTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return business, token, nil
}

// SignIn authenticates a business owner and returns a fresh token.
func (svc *DefaultBusinessService) SignIn(email, password string) (*models.Business, string, error) {
	business, err := svc.Repo.GetBusinessByOwnerEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(business.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := utils.GenerateToken(business.ID, business.ID, "owner", ownerTokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to sign token: %w", err)
	}
	return business, token, nil
}

// GetBySlug resolves a booking-page slug, going through the cache first:
// the public portal hits this on every page load.
func (svc *DefaultBusinessService) GetBySlug(slug string) (*models.Business, error) {
	if cached := cachedBySlug(slug); cached != nil {
		return cached, nil
	}
	business, err := svc.Repo.GetBusinessBySlug(slug)
	if err != nil {
		return nil, err
	}
	cacheBySlug(slug, business)
	return business, nil
}

func cachedBySlug(slug string) *models.Business {
	client := utils.CacheClient
	if client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	raw, err := client.Get(ctx, utils.SlugCachePrefix+slug).Bytes()
	if err != nil {
		return nil
	}
	var business models.Business
	if err := json.Unmarshal(raw, &business); err != nil {
		return nil
	}
	return &business
}

func cacheBySlug(slug string, business *models.Business) {
	client := utils.CacheClient
	if client == nil {
		return
	}
	raw, err := json.Marshal(business)
	if err != nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	client.Set(ctx, utils.SlugCachePrefix+slug, raw, utils.SlugCacheTTL)
}

func (svc *DefaultBusinessService) GetByID(id string) (*models.Business, error) {
	return svc.Repo.GetBusiness(id)
}

// UpsertCustomer returns the existing customer for this email within the
// business, or creates one. The customer portal calls this on checkout so
// repeat visitors keep a single record.
func (svc *DefaultBusinessService) UpsertCustomer(businessID, name, email, phone string) (*models.Customer, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if existing, err := svc.Repo.FindCustomerByEmail(businessID, email); err == nil {
		return existing, nil
	}

	customer := &models.Customer{
		ID:         uuid.New().String(),
		BusinessID: businessID,
		Name:       name,
		Email:      email,
		Phone:      phone,
		CreatedAt:  time.Now(),
	}
	if err := svc.Repo.CreateCustomer(customer); err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}
	return customer, nil
}
