package catalog

import (
	"fmt"
	"time"

	"barberbook/models"

	"github.com/google/uuid"
)

// ListLocations returns every location.
func (s *DefaultCatalogService) ListLocations() ([]models.Location, error) {
	return s.Locations.GetAll()
}

// GetLocation fetches a single location.
func (s *DefaultCatalogService) GetLocation(id string) (*models.Location, error) {
	return s.Locations.GetByID(id)
}

// CreateLocation inserts a new shop.
func (s *DefaultCatalogService) CreateLocation(l models.Location) (*models.Location, error) {
	if l.Name == "" || l.Address == "" || l.City == "" {
		return nil, fmt.Errorf("location requires name, address and city")
	}
	l.ID = uuid.New().String()
	if l.Timezone == "" {
		l.Timezone = "America/Chicago"
	}
	l.IsActive = true
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	if err := s.Locations.Create(&l); err != nil {
		return nil, err
	}
	return &l, nil
}

// UpdateLocation replaces mutable fields.
func (s *DefaultCatalogService) UpdateLocation(l models.Location) (*models.Location, error) {
	if l.ID == "" {
		return nil, fmt.Errorf("location id is required")
	}
	return s.Locations.Update(&l)
}

// DeleteLocation removes a shop.
func (s *DefaultCatalogService) DeleteLocation(id string) error {
	return s.Locations.Delete(id)
}

// ListServices returns the full service menu.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	return s.Services.GetAll()
}

// GetService fetches a single service.
func (s *DefaultCatalogService) GetService(id string) (*models.Service, error) {
	return s.Services.GetByID(id)
}

// CreateService inserts a menu item. Special services carry a staff-set
// price; there is no per-booking override.
func (s *DefaultCatalogService) CreateService(svc models.Service) (*models.Service, error) {
	if svc.Name == "" || svc.DurationMinutes <= 0 || svc.PriceCents < 0 {
		return nil, fmt.Errorf("service requires a name, positive duration and non-negative price")
	}
	svc.ID = uuid.New().String()
	svc.IsActive = true
	svc.CreatedAt = time.Now()
	svc.UpdatedAt = svc.CreatedAt
	if err := s.Services.Create(&svc); err != nil {
		return nil, err
	}
	return &svc, nil
}

// UpdateService replaces mutable fields. Price changes do not touch existing
// appointments; totals were copied at booking time.
func (s *DefaultCatalogService) UpdateService(svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		return nil, fmt.Errorf("service id is required")
	}
	return s.Services.Update(&svc)
}

// DeleteService removes a menu item.
func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Services.Delete(id)
}
