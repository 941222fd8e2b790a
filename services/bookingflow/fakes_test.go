package bookingflow

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"go.uber.org/zap"
)

// In-memory collaborators for engine tests. Each fake implements just
// enough of its repository contract to drive the wizard.

type fakeLocationRepo struct {
	locations []models.Location
}

func (f *fakeLocationRepo) Create(l *models.Location) error {
	f.locations = append(f.locations, *l)
	return nil
}

func (f *fakeLocationRepo) GetByID(id string) (*models.Location, error) {
	for i := range f.locations {
		if f.locations[i].ID == id {
			l := f.locations[i]
			return &l, nil
		}
	}
	return nil, fmt.Errorf("location %s not found", id)
}

func (f *fakeLocationRepo) GetAll() ([]models.Location, error) {
	return append([]models.Location(nil), f.locations...), nil
}

func (f *fakeLocationRepo) Update(l *models.Location) (*models.Location, error) {
	for i := range f.locations {
		if f.locations[i].ID == l.ID {
			f.locations[i] = *l
			return l, nil
		}
	}
	return nil, fmt.Errorf("location %s not found", l.ID)
}

func (f *fakeLocationRepo) Delete(id string) error { return nil }

type fakeProfileRepo struct {
	profiles []models.Profile
}

func (f *fakeProfileRepo) Create(p *models.Profile) error {
	f.profiles = append(f.profiles, *p)
	return nil
}

func (f *fakeProfileRepo) GetByID(id string) (*models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == id {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("profile %s not found", id)
}

func (f *fakeProfileRepo) GetByUserID(userID string) (*models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].UserID == userID {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetByEmail(email string) (*models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].Email == email {
			p := f.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakeProfileRepo) GetAll() ([]models.Profile, error) {
	return append([]models.Profile(nil), f.profiles...), nil
}

func (f *fakeProfileRepo) Update(p *models.Profile) (*models.Profile, error) {
	for i := range f.profiles {
		if f.profiles[i].ID == p.ID {
			f.profiles[i] = *p
			return p, nil
		}
	}
	return nil, fmt.Errorf("profile %s not found", p.ID)
}

func (f *fakeProfileRepo) Delete(id string) error { return nil }

type fakeServiceRepo struct {
	services []models.Service
}

func (f *fakeServiceRepo) Create(s *models.Service) error {
	f.services = append(f.services, *s)
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == id {
			s := f.services[i]
			return &s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	return append([]models.Service(nil), f.services...), nil
}

func (f *fakeServiceRepo) Update(s *models.Service) (*models.Service, error) {
	for i := range f.services {
		if f.services[i].ID == s.ID {
			f.services[i] = *s
			return s, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", s.ID)
}

func (f *fakeServiceRepo) Delete(id string) error { return nil }

type fakeAppointmentRepo struct {
	appointments []models.Appointment
	createErr    error
}

func (f *fakeAppointmentRepo) Create(a *models.Appointment) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.appointments = append(f.appointments, *a)
	return nil
}

func (f *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			a := f.appointments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) GetAll() ([]models.Appointment, error) {
	return append([]models.Appointment(nil), f.appointments...), nil
}

func (f *fakeAppointmentRepo) ListByBarberBetween(barberID string, from, to time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.BarberID != barberID || a.Status == models.AppointmentCancelled {
			continue
		}
		if a.StartAt.Before(to) && from.Before(a.EndAt) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) Update(a *models.Appointment) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == a.ID {
			f.appointments[i] = *a
			return a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", a.ID)
}

func (f *fakeAppointmentRepo) UpdateFields(id string, fields map[string]interface{}) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID != id {
			continue
		}
		if v, ok := fields["status"].(string); ok {
			f.appointments[i].Status = v
		}
		if v, ok := fields["payment_status"].(string); ok {
			f.appointments[i].PaymentStatus = v
		}
		if v, ok := fields["stripe_payment_intent_id"].(string); ok {
			f.appointments[i].StripePaymentIntentID = v
		}
		a := f.appointments[i]
		return &a, nil
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (f *fakeAppointmentRepo) GetByPaymentIntentID(intentID string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].StripePaymentIntentID == intentID {
			a := f.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

type memStore struct {
	sessions map[string]models.BookingSession
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memStore) Save(ctx context.Context, session *models.BookingSession) error {
	m.sessions[session.SessionID] = *session
	return nil
}

func (m *memStore) Get(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	s, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	out := s
	return &out, nil
}

func (m *memStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
}

type fakeIntentIssuer struct {
	result *models.IntentResult
	err    error
	calls  int
}

func (f *fakeIntentIssuer) CreateIntent(ctx context.Context, appointmentID string, amountCents int64) (*models.IntentResult, error) {
	f.calls++
	return f.result, f.err
}

// Fixed clock well before the test booking dates.
var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func testEngine() (*Engine, *fakeAppointmentRepo, *memStore) {
	locations := &fakeLocationRepo{locations: []models.Location{
		{ID: "loc-waukesha", Name: "Forever Faded - Waukesha", Timezone: "America/Chicago", IsActive: true},
	}}
	profiles := &fakeProfileRepo{profiles: []models.Profile{
		{ID: "barber-mike", Name: "Mike", Role: models.RoleBarber, LocationID: "loc-waukesha", IsActive: true},
		{ID: "barber-roaming", Name: "Jess", Role: models.RoleBarber, IsActive: true},
		{ID: "client-amy", Name: "Amy", Role: models.RoleClient, IsActive: true},
	}}
	services := &fakeServiceRepo{services: []models.Service{
		{ID: "svc-cut", Name: "Haircut", DurationMinutes: 30, PriceCents: 3500, IsActive: true},
		{ID: "svc-retired", Name: "Old Cut", DurationMinutes: 30, PriceCents: 3000, IsActive: false},
	}}
	appointments := &fakeAppointmentRepo{}
	store := newMemStore()

	engine := &Engine{
		Locations:      locations,
		Profiles:       profiles,
		Services:       services,
		Appointments:   appointments,
		Intents:        &fakeIntentIssuer{},
		Store:          store,
		PublishableKey: "pk_test_123",
		Now:            func() time.Time { return testNow },
		Logger:         zap.NewNop(),
	}
	return engine, appointments, store
}
