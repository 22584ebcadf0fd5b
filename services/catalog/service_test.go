package catalog

import (
	"errors"
	"testing"

	"glowdesk/models"
)

type fakeRepo struct {
	services map[string]*models.Service
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{services: map[string]*models.Service{}}
}

func (r *fakeRepo) CreateService(s *models.Service) error {
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeRepo) GetService(id string) (*models.Service, error) {
	if s, ok := r.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, errors.New("not found")
}

func (r *fakeRepo) ListServicesByBusiness(businessID string) ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateService(s *models.Service) error {
	if _, ok := r.services[s.ID]; !ok {
		return errors.New("not found")
	}
	cp := *s
	r.services[s.ID] = &cp
	return nil
}

func (r *fakeRepo) SetServiceActive(id string, active bool) error {
	if s, ok := r.services[id]; ok {
		s.Active = active
		return nil
	}
	return errors.New("not found")
}

func (r *fakeRepo) EnsureIndexes() error { return nil }

func TestCreateService_DefaultsToExclusive(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeRepo()}

	created, err := svc.CreateService("biz-1", models.Service{Name: "Cut", Duration: 30, PriceCents: 2500})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if created.Model != models.BookingExclusive {
		t.Errorf("model = %q, want %q", created.Model, models.BookingExclusive)
	}
	if !created.Active {
		t.Error("new service should be active")
	}
	if created.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestCreateService_Validation(t *testing.T) {
	svc := &DefaultCatalogService{Repo: newFakeRepo()}

	cases := []struct {
		name    string
		service models.Service
	}{
		{"missing name", models.Service{Duration: 30}},
		{"zero duration", models.Service{Name: "Cut"}},
		{"negative price", models.Service{Name: "Cut", Duration: 30, PriceCents: -1}},
		{"capacity of one", models.Service{Name: "Yoga", Duration: 60, Model: models.BookingCapacity, Capacity: 1}},
		{"unknown model", models.Service{Name: "Cut", Duration: 30, Model: "shared"}},
	}
	for _, tc := range cases {
		if _, err := svc.CreateService("biz-1", tc.service); CodeOf(err) != "validationError" {
			t.Errorf("%s: error = %v, want validationError", tc.name, err)
		}
	}
}

func TestUpdateService_WrongBusinessRejected(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService("biz-1", models.Service{Name: "Cut", Duration: 30})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}

	created.Name = "Trim"
	if _, err := svc.UpdateService("biz-2", *created); CodeOf(err) != "notFound" {
		t.Errorf("error = %v, want notFound", err)
	}
}

func TestSetActive(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultCatalogService{Repo: repo}

	created, err := svc.CreateService("biz-1", models.Service{Name: "Cut", Duration: 30})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if err := svc.SetActive("biz-1", created.ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	got, _ := repo.GetService(created.ID)
	if got.Active {
		t.Error("service should be inactive")
	}
}
