package serviceRepo

import "barberbook/models"

// ServiceRepository defines persistence for bookable services.
type ServiceRepository interface {
	Create(s *models.Service) error
	GetByID(id string) (*models.Service, error)
	GetAll() ([]models.Service, error)
	Update(s *models.Service) (*models.Service, error)
	Delete(id string) error
}
