package catalog

import (
	"fmt"

	"barberbook/models"
)

// The flagship shop and its menu, installed by Seed when the catalog is
// empty.
var seedLocation = models.Location{
	Name:     "Forever Faded - Waukesha",
	Address:  "1427 E Racine Ave Suite H",
	City:     "Waukesha",
	State:    "WI",
	Zip:      "53186",
	Phone:    "(262) 349-9289",
	Timezone: "America/Chicago",
}

var seedServices = []models.Service{
	{Category: "Test", Name: "Test Service", Description: "For testing payments only", DurationMinutes: 15, PriceCents: 100},
	{Category: "Face", Name: "Beard & Head Lining", DurationMinutes: 30, PriceCents: 3500},
	{Category: "Face", Name: "Beard Shave", DurationMinutes: 30, PriceCents: 2500},
	{Category: "Face", Name: "Beard Lining", DurationMinutes: 15, PriceCents: 1500},
	{Category: "Face", Name: "Head Lining", DurationMinutes: 20, PriceCents: 2000},
	{Category: "Face", Name: "Full Facial", DurationMinutes: 45, PriceCents: 5500},
	{Category: "Face", Name: "Full Facial and Hot Shave", DurationMinutes: 60, PriceCents: 7500},
	{Category: "Adults", Name: "Cut", DurationMinutes: 30, PriceCents: 3500},
	{Category: "Adults", Name: "Full Service", DurationMinutes: 60, PriceCents: 6500},
	{Category: "Adults", Name: "Cut and Color", Description: "Simple bleach lightened process", DurationMinutes: 90, PriceCents: 9500},
	{Category: "Adults", Name: "Custom Hair Design and Cut", DurationMinutes: 45, PriceCents: 5000},
	{Category: "Adults", Name: "Female Undercut Design", DurationMinutes: 45, PriceCents: 5000},
	{Category: "Adults", Name: "Hair Braiding", DurationMinutes: 90, PriceCents: 8500},
	{Category: "Adults", Name: "Lining Taper", DurationMinutes: 30, PriceCents: 3500},
	{Category: "Teens", Name: "Cut", DurationMinutes: 30, PriceCents: 3000},
	{Category: "Teens", Name: "Full Service", DurationMinutes: 60, PriceCents: 5500},
	{Category: "Children", Name: "Cut", DurationMinutes: 25, PriceCents: 2500},
	{Category: "Seniors & Military", Name: "Cut", DurationMinutes: 30, PriceCents: 3000},
	{Category: "Seniors & Military", Name: "Full Service", DurationMinutes: 60, PriceCents: 5500},
}

// Seed installs the flagship location and menu. A non-empty catalog makes
// this a no-op so repeated calls stay safe.
func (s *DefaultCatalogService) Seed() error {
	existing, err := s.Locations.GetAll()
	if err != nil {
		return fmt.Errorf("seed: failed to inspect locations: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	loc, err := s.CreateLocation(seedLocation)
	if err != nil {
		return fmt.Errorf("seed: failed to create location: %w", err)
	}
	for _, svc := range seedServices {
		svc.LocationID = loc.ID
		if _, err := s.CreateService(svc); err != nil {
			return fmt.Errorf("seed: failed to create service %q: %w", svc.Name, err)
		}
	}
	return nil
}
