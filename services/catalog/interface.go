package catalog

import (
	locationRepo "barberbook/database/repository/location"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
)

// CatalogService manages the chain's locations and service menu.
type CatalogService interface {
	ListLocations() ([]models.Location, error)
	GetLocation(id string) (*models.Location, error)
	CreateLocation(l models.Location) (*models.Location, error)
	UpdateLocation(l models.Location) (*models.Location, error)
	DeleteLocation(id string) error

	ListServices() ([]models.Service, error)
	GetService(id string) (*models.Service, error)
	CreateService(s models.Service) (*models.Service, error)
	UpdateService(s models.Service) (*models.Service, error)
	DeleteService(id string) error

	// Seed installs the flagship location and its service menu when the
	// catalog is empty. Idempotent.
	Seed() error
}

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Locations locationRepo.LocationRepository
	Services  serviceRepo.ServiceRepository
}
