package bookingflow

import (
	"context"
	"errors"
	"testing"

	"barberbook/models"
)

func startSession(t *testing.T, e *Engine, clientID string) *models.BookingSessionView {
	t.Helper()
	view, err := e.StartSession(context.Background(), clientID)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	return view
}

func TestStartSessionPreselectsFirstActiveLocation(t *testing.T) {
	engine, _, _ := testEngine()
	engine.Locations = &fakeLocationRepo{locations: []models.Location{
		{ID: "loc-closed", IsActive: false},
		{ID: "loc-open", IsActive: true},
	}}

	view := startSession(t, engine, "client-amy")
	if view.Session.Step != models.StepSelectLocation {
		t.Errorf("step = %q, want %q", view.Session.Step, models.StepSelectLocation)
	}
	if view.Session.LocationID != "loc-open" {
		t.Errorf("preselected location = %q, want loc-open", view.Session.LocationID)
	}
	if len(view.Locations) != 1 || view.Locations[0].ID != "loc-open" {
		t.Errorf("view should list only active locations, got %v", view.Locations)
	}
}

func TestAdvanceHappyPath(t *testing.T) {
	engine, _, _ := testEngine()
	ctx := context.Background()
	view := startSession(t, engine, "client-amy")
	id := view.Session.SessionID

	view, err := engine.Advance(ctx, id, "client-amy", Selection{LocationID: "loc-waukesha"})
	if err != nil {
		t.Fatalf("advance location: %v", err)
	}
	if view.Session.Step != models.StepSelectBarber {
		t.Fatalf("after location: step = %q", view.Session.Step)
	}
	if len(view.Barbers) != 2 {
		t.Errorf("expected pinned and roaming barbers, got %d", len(view.Barbers))
	}

	view, err = engine.Advance(ctx, id, "client-amy", Selection{BarberID: "barber-mike"})
	if err != nil {
		t.Fatalf("advance barber: %v", err)
	}
	if view.Session.Step != models.StepSelectService {
		t.Fatalf("after barber: step = %q", view.Session.Step)
	}
	if len(view.Services) != 1 || view.Services[0].ID != "svc-cut" {
		t.Errorf("inactive services must not be offered, got %v", view.Services)
	}

	view, err = engine.Advance(ctx, id, "client-amy", Selection{ServiceID: "svc-cut"})
	if err != nil {
		t.Fatalf("advance service: %v", err)
	}
	if view.Session.Step != models.StepSelectDateTime {
		t.Fatalf("after service: step = %q", view.Session.Step)
	}
	if len(view.Slots) == 0 {
		t.Errorf("datetime step should offer the slot grid")
	}

	view, err = engine.Advance(ctx, id, "client-amy", Selection{Date: "2025-03-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("advance datetime: %v", err)
	}
	if view.Session.Step != models.StepConfirm {
		t.Fatalf("after datetime: step = %q", view.Session.Step)
	}
	if view.Session.Message != "" {
		t.Errorf("happy path left a message: %q", view.Session.Message)
	}
}

func TestAdvanceValidation(t *testing.T) {
	cases := []struct {
		name     string
		sel      Selection
		prep     Selection // applied first when non-zero
		wantStep string
		wantMsg  string
	}{
		{
			name:     "barber from another location",
			prep:     Selection{LocationID: "loc-waukesha"},
			sel:      Selection{BarberID: "client-amy"},
			wantStep: models.StepSelectBarber,
			wantMsg:  "that barber does not work at the selected location",
		},
		{
			name:     "missing barber",
			prep:     Selection{LocationID: "loc-waukesha"},
			sel:      Selection{},
			wantStep: models.StepSelectBarber,
			wantMsg:  "choose a barber to continue",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _ := testEngine()
			ctx := context.Background()
			view := startSession(t, engine, "client-amy")
			id := view.Session.SessionID

			if _, err := engine.Advance(ctx, id, "client-amy", tc.prep); err != nil {
				t.Fatalf("prep advance: %v", err)
			}
			view, err := engine.Advance(ctx, id, "client-amy", tc.sel)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			if view.Session.Step != tc.wantStep {
				t.Errorf("step = %q, want %q", view.Session.Step, tc.wantStep)
			}
			if view.Session.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", view.Session.Message, tc.wantMsg)
			}
		})
	}
}

func TestAdvanceDateTimeValidation(t *testing.T) {
	cases := []struct {
		name    string
		sel     Selection
		wantMsg string
	}{
		{"past date", Selection{Date: "2025-02-20", Time: "10:00"}, "the date must be today or later"},
		{"off-grid time", Selection{Date: "2025-03-10", Time: "10:15"}, "the time must be one of the offered slots"},
		{"missing time", Selection{Date: "2025-03-10"}, "choose a date and time to continue"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			engine, _, _ := testEngine()
			ctx := context.Background()
			view := startSession(t, engine, "client-amy")
			id := view.Session.SessionID

			for _, sel := range []Selection{
				{LocationID: "loc-waukesha"},
				{BarberID: "barber-mike"},
				{ServiceID: "svc-cut"},
			} {
				if _, err := engine.Advance(ctx, id, "client-amy", sel); err != nil {
					t.Fatalf("setup advance: %v", err)
				}
			}

			view, err := engine.Advance(ctx, id, "client-amy", tc.sel)
			if err != nil {
				t.Fatalf("advance: %v", err)
			}
			if view.Session.Step != models.StepSelectDateTime {
				t.Errorf("step = %q, want to stay on datetime", view.Session.Step)
			}
			if view.Session.Message != tc.wantMsg {
				t.Errorf("message = %q, want %q", view.Session.Message, tc.wantMsg)
			}
		})
	}
}

func TestChangingLocationClearsDependentSelections(t *testing.T) {
	engine, _, _ := testEngine()
	engine.Locations = &fakeLocationRepo{locations: []models.Location{
		{ID: "loc-waukesha", Timezone: "America/Chicago", IsActive: true},
		{ID: "loc-downtown", Timezone: "America/Chicago", IsActive: true},
	}}
	ctx := context.Background()
	view := startSession(t, engine, "client-amy")
	id := view.Session.SessionID

	for _, sel := range []Selection{
		{LocationID: "loc-waukesha"},
		{BarberID: "barber-mike"},
		{ServiceID: "svc-cut"},
	} {
		if _, err := engine.Advance(ctx, id, "client-amy", sel); err != nil {
			t.Fatalf("setup advance: %v", err)
		}
	}

	// Walk back to the location step, switch shops.
	for i := 0; i < 3; i++ {
		if _, err := engine.Back(ctx, id, "client-amy"); err != nil {
			t.Fatalf("back: %v", err)
		}
	}
	view, err := engine.Advance(ctx, id, "client-amy", Selection{LocationID: "loc-downtown"})
	if err != nil {
		t.Fatalf("advance new location: %v", err)
	}
	if view.Session.LocationID != "loc-downtown" {
		t.Errorf("location = %q, want loc-downtown", view.Session.LocationID)
	}
	if view.Session.BarberID != "" || view.Session.ServiceID != "" {
		t.Errorf("dependent selections survived a location change: barber=%q service=%q",
			view.Session.BarberID, view.Session.ServiceID)
	}
}

func TestBackKeepsSelections(t *testing.T) {
	engine, _, _ := testEngine()
	ctx := context.Background()
	view := startSession(t, engine, "client-amy")
	id := view.Session.SessionID

	for _, sel := range []Selection{
		{LocationID: "loc-waukesha"},
		{BarberID: "barber-mike"},
	} {
		if _, err := engine.Advance(ctx, id, "client-amy", sel); err != nil {
			t.Fatalf("setup advance: %v", err)
		}
	}

	view, err := engine.Back(ctx, id, "client-amy")
	if err != nil {
		t.Fatalf("back: %v", err)
	}
	if view.Session.Step != models.StepSelectBarber {
		t.Errorf("step = %q, want %q", view.Session.Step, models.StepSelectBarber)
	}
	if view.Session.BarberID != "barber-mike" {
		t.Errorf("back cleared the barber selection")
	}
}

func TestResetKeepsLocationOnly(t *testing.T) {
	engine, appointments, store := testEngine()
	ctx := context.Background()
	_ = appointments

	session := &models.BookingSession{
		SessionID:     "sess-1",
		ClientID:      "client-amy",
		Step:          models.StepSuccess,
		LocationID:    "loc-waukesha",
		BarberID:      "barber-mike",
		ServiceID:     "svc-cut",
		Date:          "2025-03-10",
		Time:          "10:00",
		AppointmentID: "apt-1",
		ClientSecret:  "cs_secret",
		Message:       "Booking confirmed. Please pay at the shop.",
	}
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	view, err := engine.Reset(ctx, "sess-1", "client-amy")
	if err != nil {
		t.Fatalf("Reset: %v", err)
	}
	s := view.Session
	if s.Step != models.StepSelectLocation {
		t.Errorf("step = %q, want %q", s.Step, models.StepSelectLocation)
	}
	if s.LocationID != "loc-waukesha" {
		t.Errorf("reset dropped the location")
	}
	if s.BarberID != "" || s.ServiceID != "" || s.Date != "" || s.Time != "" ||
		s.AppointmentID != "" || s.ClientSecret != "" || s.Message != "" {
		t.Errorf("reset left stale wizard state: %+v", s)
	}
}

func TestPreferredBarberPrefill(t *testing.T) {
	engine, _, _ := testEngine()
	engine.Profiles = &fakeProfileRepo{profiles: []models.Profile{
		{ID: "barber-mike", Role: models.RoleBarber, LocationID: "loc-waukesha", IsActive: true},
		{ID: "client-amy", Role: models.RoleClient, PreferredBarberID: "barber-mike", IsActive: true},
	}}
	ctx := context.Background()
	view := startSession(t, engine, "client-amy")

	view, err := engine.Advance(ctx, view.Session.SessionID, "client-amy", Selection{LocationID: "loc-waukesha"})
	if err != nil {
		t.Fatalf("advance location: %v", err)
	}
	if view.Session.BarberID != "barber-mike" {
		t.Errorf("preferred barber not prefilled, got %q", view.Session.BarberID)
	}
	if view.Session.Step != models.StepSelectBarber {
		t.Errorf("prefill skipped the barber step: %q", view.Session.Step)
	}
}

func TestSessionOwnership(t *testing.T) {
	engine, _, _ := testEngine()
	ctx := context.Background()
	view := startSession(t, engine, "client-amy")

	_, err := engine.GetSession(ctx, view.Session.SessionID, "client-bob")
	if !errors.Is(err, ErrNotSessionOwner) {
		t.Errorf("foreign caller error = %v, want ErrNotSessionOwner", err)
	}

	_, err = engine.GetSession(ctx, "no-such-session", "client-amy")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("missing session error = %v, want ErrSessionNotFound", err)
	}
}
