package bookingflow

import (
	"context"
	"errors"
	"fmt"

	"barberbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotSessionOwner is returned when a caller touches someone else's session.
var ErrNotSessionOwner = errors.New("booking session belongs to another client")

// StartSession opens a new wizard run for the client. The first available
// location is preselected.
func (e *Engine) StartSession(ctx context.Context, clientID string) (*models.BookingSessionView, error) {
	locations, err := e.Locations.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	session := &models.BookingSession{
		SessionID: uuid.New().String(),
		ClientID:  clientID,
		Step:      models.StepSelectLocation,
	}
	for _, l := range locations {
		if l.IsActive {
			session.LocationID = l.ID
			break
		}
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	e.Logger.Info("booking session started",
		zap.String("sessionId", session.SessionID), zap.String("clientId", clientID))
	return e.buildView(ctx, session)
}

// GetSession returns the current wizard state and candidates.
func (e *Engine) GetSession(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}
	return e.buildView(ctx, session)
}

// Advance applies the step's selection and moves forward when it validates.
// A missing selection blocks advancement with an inline message and no
// remote call beyond the session store.
func (e *Engine) Advance(ctx context.Context, sessionID, clientID string, sel Selection) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}

	session.Message = ""
	switch session.Step {
	case models.StepSelectLocation:
		e.advanceLocation(session, sel)
	case models.StepSelectBarber:
		e.advanceBarber(ctx, session, sel)
	case models.StepSelectService:
		e.advanceService(ctx, session, sel)
	case models.StepSelectDateTime:
		e.advanceDateTime(session, sel)
	case models.StepConfirm:
		session.Message = "use submit to complete the booking"
	default:
		session.Message = "no further selection expected at this step"
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return e.buildView(ctx, session)
}

func (e *Engine) advanceLocation(session *models.BookingSession, sel Selection) {
	if sel.LocationID != "" && sel.LocationID != session.LocationID {
		// Barber and service candidates depend on the location.
		session.LocationID = sel.LocationID
		session.BarberID = ""
		session.ServiceID = ""
	}
	if session.LocationID == "" {
		session.Message = "choose a location to continue"
		return
	}
	session.Step = models.StepSelectBarber
	e.prefillPreferredBarber(session)
}

// prefillPreferredBarber seeds the barber step with the client's usual
// barber when they have one and that barber works at the chosen location.
// The client can still pick someone else.
func (e *Engine) prefillPreferredBarber(session *models.BookingSession) {
	if session.BarberID != "" {
		return
	}
	client, err := e.Profiles.GetByID(session.ClientID)
	if err != nil || client.PreferredBarberID == "" {
		return
	}
	barbers, err := e.barberCandidates(session.LocationID)
	if err != nil {
		return
	}
	if containsProfile(barbers, client.PreferredBarberID) {
		session.BarberID = client.PreferredBarberID
	}
}

func (e *Engine) advanceBarber(ctx context.Context, session *models.BookingSession, sel Selection) {
	if sel.BarberID != "" {
		session.BarberID = sel.BarberID
	}
	if session.BarberID == "" {
		session.Message = "choose a barber to continue"
		return
	}
	barbers, err := e.barberCandidates(session.LocationID)
	if err != nil {
		session.Message = "could not verify barber availability"
		e.Logger.Warn("barber candidate lookup failed", zap.Error(err))
		return
	}
	if !containsProfile(barbers, session.BarberID) {
		session.BarberID = ""
		session.Message = "that barber does not work at the selected location"
		return
	}
	session.Step = models.StepSelectService
}

func (e *Engine) advanceService(ctx context.Context, session *models.BookingSession, sel Selection) {
	if sel.ServiceID != "" {
		session.ServiceID = sel.ServiceID
	}
	if session.ServiceID == "" {
		session.Message = "choose a service to continue"
		return
	}
	services, err := e.serviceCandidates(session.LocationID)
	if err != nil {
		session.Message = "could not verify the selected service"
		e.Logger.Warn("service candidate lookup failed", zap.Error(err))
		return
	}
	if !containsService(services, session.ServiceID) {
		session.ServiceID = ""
		session.Message = "that service is not offered at the selected location"
		return
	}
	session.Step = models.StepSelectDateTime
}

func (e *Engine) advanceDateTime(session *models.BookingSession, sel Selection) {
	if sel.Date != "" {
		session.Date = sel.Date
	}
	if sel.Time != "" {
		session.Time = sel.Time
	}
	if session.Date == "" || session.Time == "" {
		session.Message = "choose a date and time to continue"
		return
	}
	if !dateNotPast(session.Date, e.now()) {
		session.Message = "the date must be today or later"
		return
	}
	if !validSlotTime(session.Time) {
		session.Message = "the time must be one of the offered slots"
		return
	}
	session.Step = models.StepConfirm
}

// Back returns to the previous selection step. Selections already made are
// kept so the client can step forward again without re-entering them.
func (e *Engine) Back(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}

	session.Message = ""
	switch session.Step {
	case models.StepSelectBarber:
		session.Step = models.StepSelectLocation
	case models.StepSelectService:
		session.Step = models.StepSelectBarber
	case models.StepSelectDateTime:
		session.Step = models.StepSelectService
	case models.StepConfirm:
		session.Step = models.StepSelectDateTime
	default:
		session.Message = "cannot go back from this step"
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return e.buildView(ctx, session)
}

// Reset is "book another": barber, service, date and time are cleared, the
// location selection persists, and the wizard returns to the first step.
func (e *Engine) Reset(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}

	session.Step = models.StepSelectLocation
	session.BarberID = ""
	session.ServiceID = ""
	session.Date = ""
	session.Time = ""
	session.AppointmentID = ""
	session.ClientSecret = ""
	session.PaymentIntentID = ""
	session.Message = ""

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return e.buildView(ctx, session)
}

func (e *Engine) loadOwned(ctx context.Context, sessionID, clientID string) (*models.BookingSession, error) {
	session, err := e.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.ClientID != clientID {
		return nil, ErrNotSessionOwner
	}
	return session, nil
}

// barberCandidates are staff with the barber role who either have no home
// location or are pinned to the selected one.
func (e *Engine) barberCandidates(locationID string) ([]models.Profile, error) {
	profiles, err := e.Profiles.GetAll()
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

// serviceCandidates are active services offered chain-wide or at the
// selected location.
func (e *Engine) serviceCandidates(locationID string) ([]models.Service, error) {
	services, err := e.Services.GetAll()
	if err != nil {
		return nil, err
	}
	var offered []models.Service
	for _, s := range services {
		if !s.IsActive {
			continue
		}
		if s.LocationID == "" || s.LocationID == locationID {
			offered = append(offered, s)
		}
	}
	return offered, nil
}

// buildView attaches the candidate set for the session's current step.
func (e *Engine) buildView(ctx context.Context, session *models.BookingSession) (*models.BookingSessionView, error) {
	view := &models.BookingSessionView{Session: *session}

	switch session.Step {
	case models.StepSelectLocation:
		locations, err := e.Locations.GetAll()
		if err != nil {
			return nil, fmt.Errorf("failed to load locations: %w", err)
		}
		for _, l := range locations {
			if l.IsActive {
				view.Locations = append(view.Locations, l)
			}
		}
	case models.StepSelectBarber:
		barbers, err := e.barberCandidates(session.LocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load barbers: %w", err)
		}
		view.Barbers = barbers
	case models.StepSelectService:
		services, err := e.serviceCandidates(session.LocationID)
		if err != nil {
			return nil, fmt.Errorf("failed to load services: %w", err)
		}
		view.Services = services
	case models.StepSelectDateTime:
		view.Slots = e.slotsForSession(session)
	}
	return view, nil
}

// slotsForSession returns the slot grid for the chosen date, trimmed by the
// barber's existing appointments when a date is already picked.
func (e *Engine) slotsForSession(session *models.BookingSession) []string {
	if session.Date == "" || session.BarberID == "" || session.ServiceID == "" {
		return SlotTimes()
	}

	svc, err := e.Services.GetByID(session.ServiceID)
	if err != nil {
		return SlotTimes()
	}
	timezone := e.sessionTimezone(session)

	dayStart, err := parseStartAt(session.Date, "00:00", timezone)
	if err != nil {
		return SlotTimes()
	}
	busy, err := e.Appointments.ListByBarberBetween(session.BarberID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		e.Logger.Warn("busy slot lookup failed", zap.Error(err))
		return SlotTimes()
	}
	return availableSlots(session.Date, timezone, svc.DurationMinutes, busy)
}

func (e *Engine) sessionTimezone(session *models.BookingSession) string {
	if session.LocationID == "" {
		return ""
	}
	loc, err := e.Locations.GetByID(session.LocationID)
	if err != nil {
		return ""
	}
	return loc.Timezone
}

func containsProfile(profiles []models.Profile, id string) bool {
	for _, p := range profiles {
		if p.ID == id {
			return true
		}
	}
	return false
}

func containsService(services []models.Service, id string) bool {
	for _, s := range services {
		if s.ID == id {
			return true
		}
	}
	return false
}
