package directory

import (
	profileRepo "barberbook/database/repository/profile"
	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"
)

// DirectoryService resolves callers to profiles and answers the management
// surfaces (clients, staff) scoped to the caller's role. Scope filtering is
// a view convenience layered over the record-level rules, done the way the
// front end used to: fetch the collection, filter locally.
type DirectoryService interface {
	// ResolveCaller looks up the profile for an authenticated subject id.
	// Returns nil when the identity has no profile yet.
	ResolveCaller(userID string) (*models.Profile, error)
	// RegisterProfile creates the profile on first sign-in.
	RegisterProfile(p models.Profile) (*models.Profile, error)
	UpdateProfile(p models.Profile) (*models.Profile, error)
	DeactivateProfile(id string) error

	// ListClients returns client profiles visible to the caller: a barber
	// sees clients who share at least one appointment; managers and owners
	// see their scope.
	ListClients(caller *models.Profile) ([]models.Profile, error)
	// ListStaff returns all staff-role profiles.
	ListStaff() ([]models.Profile, error)
	// ListBarbers returns bookable barbers for a location (unpinned barbers
	// included).
	ListBarbers(locationID string) ([]models.Profile, error)
}

// DefaultDirectoryService implements DirectoryService.
type DefaultDirectoryService struct {
	Profiles     profileRepo.ProfileRepository
	Appointments appointmentRepo.AppointmentRepository
}
