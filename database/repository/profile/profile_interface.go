package profileRepo

import "barberbook/models"

// ProfileRepository defines persistence for user profiles.
type ProfileRepository interface {
	Create(p *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByUserID(userID string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	GetAll() ([]models.Profile, error)
	Update(p *models.Profile) (*models.Profile, error)
	Delete(id string) error
}
