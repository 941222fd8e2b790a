package locationRepo

import "barberbook/models"

// LocationRepository defines persistence for shop locations.
type LocationRepository interface {
	Create(l *models.Location) error
	GetByID(id string) (*models.Location, error)
	GetAll() ([]models.Location, error)
	Update(l *models.Location) (*models.Location, error)
	Delete(id string) error
}
