package directory

import (
	"errors"
	"testing"
	"time"

	"barberbook/models"
)

type stubProfileRepo struct {
	profiles []models.Profile
	created  []models.Profile
}

func (s *stubProfileRepo) Create(p *models.Profile) error {
	s.created = append(s.created, *p)
	s.profiles = append(s.profiles, *p)
	return nil
}

func (s *stubProfileRepo) GetByID(id string) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == id {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, errors.New("profile not found")
}

func (s *stubProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].UserID == userID {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].Email == email {
			p := s.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *stubProfileRepo) GetAll() ([]models.Profile, error) {
	return append([]models.Profile(nil), s.profiles...), nil
}

func (s *stubProfileRepo) Update(p *models.Profile) (*models.Profile, error) {
	for i := range s.profiles {
		if s.profiles[i].ID == p.ID {
			s.profiles[i] = *p
			return p, nil
		}
	}
	return nil, errors.New("profile not found")
}

func (s *stubProfileRepo) Delete(id string) error { return nil }

type stubAppointmentRepo struct {
	appointments []models.Appointment
}

func (s *stubAppointmentRepo) Create(a *models.Appointment) error { return nil }
func (s *stubAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	return nil, errors.New("not found")
}
func (s *stubAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return append([]models.Appointment(nil), s.appointments...), nil
}
func (s *stubAppointmentRepo) ListByBarberBetween(string, time.Time, time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (s *stubAppointmentRepo) Update(a *models.Appointment) (*models.Appointment, error) {
	return a, nil
}
func (s *stubAppointmentRepo) UpdateFields(string, map[string]interface{}) (*models.Appointment, error) {
	return nil, errors.New("not found")
}
func (s *stubAppointmentRepo) GetByPaymentIntentID(string) (*models.Appointment, error) {
	return nil, nil
}

func testService() (*DefaultDirectoryService, *stubProfileRepo, *stubAppointmentRepo) {
	profiles := &stubProfileRepo{profiles: []models.Profile{
		{ID: "c1", UserID: "u-c1", Email: "c1@x.test", Role: models.RoleClient, IsActive: true},
		{ID: "c2", UserID: "u-c2", Email: "c2@x.test", Role: models.RoleClient, IsActive: true},
		{ID: "b1", UserID: "u-b1", Email: "b1@x.test", Role: models.RoleBarber, LocationID: "loc1", IsActive: true},
		{ID: "b2", UserID: "u-b2", Email: "b2@x.test", Role: models.RoleBarber, IsActive: true},
		{ID: "m1", UserID: "u-m1", Email: "m1@x.test", Role: models.RoleManager, LocationID: "loc1", IsActive: true},
	}}
	appointments := &stubAppointmentRepo{appointments: []models.Appointment{
		{ID: "a1", ClientID: "c1", BarberID: "b1"},
	}}
	return &DefaultDirectoryService{Profiles: profiles, Appointments: appointments}, profiles, appointments
}

func TestRegisterProfileIsIdempotent(t *testing.T) {
	svc, profiles, _ := testService()

	created, err := svc.RegisterProfile(models.Profile{UserID: "u-new", Email: "new@x.test", Name: "New"})
	if err != nil {
		t.Fatalf("RegisterProfile: %v", err)
	}
	if created.Role != models.RoleClient {
		t.Errorf("role = %q, want default client", created.Role)
	}
	if created.ID == "" || !created.IsActive {
		t.Errorf("new profile not initialized: %+v", created)
	}

	again, err := svc.RegisterProfile(models.Profile{UserID: "u-new", Email: "new@x.test"})
	if err != nil {
		t.Fatalf("second RegisterProfile: %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("repeat registration minted a new profile")
	}
	if len(profiles.created) != 1 {
		t.Errorf("repeat registration wrote %d profiles, want 1", len(profiles.created))
	}
}

func TestRegisterProfileValidation(t *testing.T) {
	svc, _, _ := testService()
	if _, err := svc.RegisterProfile(models.Profile{Email: "x@x.test"}); err == nil {
		t.Errorf("missing user id accepted")
	}
	if _, err := svc.RegisterProfile(models.Profile{UserID: "u-x"}); err == nil {
		t.Errorf("missing email accepted")
	}
}

func TestListClientsScoping(t *testing.T) {
	svc, _, _ := testService()

	// A barber only sees clients who share an appointment with them.
	barber := &models.Profile{ID: "b1", Role: models.RoleBarber}
	clients, err := svc.ListClients(barber)
	if err != nil {
		t.Fatalf("ListClients(barber): %v", err)
	}
	if len(clients) != 1 || clients[0].ID != "c1" {
		t.Errorf("barber scope = %v, want only c1", clients)
	}

	// A barber with no appointments sees nobody.
	idle := &models.Profile{ID: "b2", Role: models.RoleBarber}
	clients, err = svc.ListClients(idle)
	if err != nil {
		t.Fatalf("ListClients(idle barber): %v", err)
	}
	if len(clients) != 0 {
		t.Errorf("idle barber sees %d clients", len(clients))
	}

	// Managers see the whole client list.
	manager := &models.Profile{ID: "m1", Role: models.RoleManager}
	clients, err = svc.ListClients(manager)
	if err != nil {
		t.Fatalf("ListClients(manager): %v", err)
	}
	if len(clients) != 2 {
		t.Errorf("manager scope = %d clients, want 2", len(clients))
	}

	// Clients get no directory at all.
	if _, err := svc.ListClients(&models.Profile{ID: "c1", Role: models.RoleClient}); !errors.Is(err, ErrForbidden) {
		t.Errorf("client caller error = %v, want ErrForbidden", err)
	}
}

func TestListBarbers(t *testing.T) {
	svc, _, _ := testService()

	barbers, err := svc.ListBarbers("loc1")
	if err != nil {
		t.Fatalf("ListBarbers: %v", err)
	}
	if len(barbers) != 2 {
		t.Fatalf("loc1 barbers = %d, want pinned plus roaming", len(barbers))
	}

	// A different location only gets the unpinned barber.
	barbers, err = svc.ListBarbers("loc2")
	if err != nil {
		t.Fatalf("ListBarbers: %v", err)
	}
	if len(barbers) != 1 || barbers[0].ID != "b2" {
		t.Errorf("loc2 barbers = %v, want only b2", barbers)
	}
}

func TestDeactivateProfile(t *testing.T) {
	svc, profiles, _ := testService()
	if err := svc.DeactivateProfile("b1"); err != nil {
		t.Fatalf("DeactivateProfile: %v", err)
	}
	p, _ := profiles.GetByID("b1")
	if p.IsActive {
		t.Errorf("profile still active after deactivation")
	}
}
