package catalog

import (
	"fmt"
	"testing"

	"barberbook/models"
)

type stubLocationRepo struct {
	locations []models.Location
}

func (s *stubLocationRepo) Create(l *models.Location) error {
	s.locations = append(s.locations, *l)
	return nil
}

func (s *stubLocationRepo) GetByID(id string) (*models.Location, error) {
	for i := range s.locations {
		if s.locations[i].ID == id {
			l := s.locations[i]
			return &l, nil
		}
	}
	return nil, fmt.Errorf("location %s not found", id)
}

func (s *stubLocationRepo) GetAll() ([]models.Location, error) {
	return append([]models.Location(nil), s.locations...), nil
}

func (s *stubLocationRepo) Update(l *models.Location) (*models.Location, error) {
	for i := range s.locations {
		if s.locations[i].ID == l.ID {
			s.locations[i] = *l
			return l, nil
		}
	}
	return nil, fmt.Errorf("location %s not found", l.ID)
}

func (s *stubLocationRepo) Delete(id string) error { return nil }

type stubServiceRepo struct {
	services []models.Service
}

func (s *stubServiceRepo) Create(svc *models.Service) error {
	s.services = append(s.services, *svc)
	return nil
}

func (s *stubServiceRepo) GetByID(id string) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].ID == id {
			svc := s.services[i]
			return &svc, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", id)
}

func (s *stubServiceRepo) GetAll() ([]models.Service, error) {
	return append([]models.Service(nil), s.services...), nil
}

func (s *stubServiceRepo) Update(svc *models.Service) (*models.Service, error) {
	for i := range s.services {
		if s.services[i].ID == svc.ID {
			s.services[i] = *svc
			return svc, nil
		}
	}
	return nil, fmt.Errorf("service %s not found", svc.ID)
}

func (s *stubServiceRepo) Delete(id string) error { return nil }

func testCatalog() (*DefaultCatalogService, *stubLocationRepo, *stubServiceRepo) {
	locations := &stubLocationRepo{}
	services := &stubServiceRepo{}
	return &DefaultCatalogService{Locations: locations, Services: services}, locations, services
}

func TestCreateLocation(t *testing.T) {
	svc, _, _ := testCatalog()

	created, err := svc.CreateLocation(models.Location{Name: "Downtown", Address: "1 Main St", City: "Waukesha"})
	if err != nil {
		t.Fatalf("CreateLocation: %v", err)
	}
	if created.ID == "" || !created.IsActive {
		t.Errorf("new location not initialized: %+v", created)
	}
	if created.Timezone != "America/Chicago" {
		t.Errorf("timezone default = %q", created.Timezone)
	}

	if _, err := svc.CreateLocation(models.Location{Name: "No Address"}); err == nil {
		t.Errorf("location without address accepted")
	}
}

func TestCreateServiceValidation(t *testing.T) {
	svc, _, _ := testCatalog()
	cases := []models.Service{
		{DurationMinutes: 30, PriceCents: 3500},          // no name
		{Name: "Cut", PriceCents: 3500},                  // no duration
		{Name: "Cut", DurationMinutes: 30, PriceCents: -1}, // negative price
	}
	for i, in := range cases {
		if _, err := svc.CreateService(in); err == nil {
			t.Errorf("case %d: invalid service accepted", i)
		}
	}

	created, err := svc.CreateService(models.Service{Name: "Cut", DurationMinutes: 30, PriceCents: 3500})
	if err != nil {
		t.Fatalf("CreateService: %v", err)
	}
	if created.ID == "" || !created.IsActive {
		t.Errorf("new service not initialized: %+v", created)
	}
}

func TestSeed(t *testing.T) {
	svc, locations, services := testCatalog()

	if err := svc.Seed(); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(locations.locations) != 1 {
		t.Fatalf("seed created %d locations, want 1", len(locations.locations))
	}
	loc := locations.locations[0]
	if loc.City != "Waukesha" || loc.Timezone != "America/Chicago" {
		t.Errorf("flagship location = %+v", loc)
	}
	if len(services.services) != len(seedServices) {
		t.Fatalf("seed created %d services, want %d", len(services.services), len(seedServices))
	}
	for _, s := range services.services {
		if s.LocationID != loc.ID {
			t.Errorf("service %q not pinned to the flagship location", s.Name)
		}
		if !s.IsActive {
			t.Errorf("service %q seeded inactive", s.Name)
		}
	}

	// A populated catalog is left alone.
	if err := svc.Seed(); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	if len(locations.locations) != 1 || len(services.services) != len(seedServices) {
		t.Errorf("second seed duplicated catalog entries")
	}
}
