package directory

import (
	"errors"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/google/uuid"
)

// ErrForbidden is returned when the caller's role does not permit a surface.
var ErrForbidden = errors.New("caller role does not permit this view")

// ResolveCaller looks up the profile for an authenticated subject id.
func (s *DefaultDirectoryService) ResolveCaller(userID string) (*models.Profile, error) {
	return s.Profiles.GetByUserID(userID)
}

// RegisterProfile creates the profile on first sign-in. Role defaults to
// client; staff roles are assigned by managers afterwards.
func (s *DefaultDirectoryService) RegisterProfile(p models.Profile) (*models.Profile, error) {
	if p.UserID == "" || p.Email == "" {
		return nil, fmt.Errorf("profile requires a user id and email")
	}
	existing, err := s.Profiles.GetByUserID(p.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	if p.Role == "" {
		p.Role = models.RoleClient
	}
	p.ID = uuid.New().String()
	p.IsActive = true
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	if err := s.Profiles.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProfile replaces mutable fields.
func (s *DefaultDirectoryService) UpdateProfile(p models.Profile) (*models.Profile, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("profile id is required")
	}
	return s.Profiles.Update(&p)
}

// DeactivateProfile flags a profile inactive; records are never deleted so
// appointment history stays intact.
func (s *DefaultDirectoryService) DeactivateProfile(id string) error {
	p, err := s.Profiles.GetByID(id)
	if err != nil {
		return err
	}
	p.IsActive = false
	_, err = s.Profiles.Update(p)
	return err
}

// ListClients returns client profiles visible to the caller.
func (s *DefaultDirectoryService) ListClients(caller *models.Profile) ([]models.Profile, error) {
	if caller == nil || !caller.IsStaff() {
		return nil, ErrForbidden
	}

	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return nil, err
	}
	var clients []models.Profile
	for _, p := range profiles {
		if p.Role == models.RoleClient {
			clients = append(clients, p)
		}
	}

	// Owners, admins and managers see the full client list; a barber only
	// sees clients who share at least one appointment with them.
	if caller.Role != models.RoleBarber {
		return clients, nil
	}

	appointments, err := s.Appointments.GetAll()
	if err != nil {
		return nil, err
	}
	shared := make(map[string]bool)
	for _, apt := range appointments {
		if apt.BarberID == caller.ID {
			shared[apt.ClientID] = true
		}
	}

	var scoped []models.Profile
	for _, c := range clients {
		if shared[c.ID] {
			scoped = append(scoped, c)
		}
	}
	return scoped, nil
}

// ListStaff returns all staff-role profiles.
func (s *DefaultDirectoryService) ListStaff() ([]models.Profile, error) {
	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return nil, err
	}
	var staff []models.Profile
	for _, p := range profiles {
		if p.IsStaff() {
			staff = append(staff, p)
		}
	}
	return staff, nil
}

// ListBarbers returns active barbers bookable at the location: pinned to it
// or not pinned anywhere.
func (s *DefaultDirectoryService) ListBarbers(locationID string) ([]models.Profile, error) {
	profiles, err := s.Profiles.GetAll()
	if err != nil {
		return nil, err
	}
	var barbers []models.Profile
	for _, p := range profiles {
		if p.Role != models.RoleBarber || !p.IsActive {
			continue
		}
		if p.LocationID == "" || p.LocationID == locationID {
			barbers = append(barbers, p)
		}
	}
	return barbers, nil
}
