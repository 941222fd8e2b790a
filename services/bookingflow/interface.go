package bookingflow

import (
	"context"
	"time"

	appointmentRepo "barberbook/database/repository/appointment"
	locationRepo "barberbook/database/repository/location"
	profileRepo "barberbook/database/repository/profile"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"
	"barberbook/services/payment"

	"go.uber.org/zap"
)

// Selection carries the choice a client makes at the current wizard step.
// Only the field relevant to the step is consulted.
type Selection struct {
	LocationID string `json:"locationId,omitempty"`
	BarberID   string `json:"barberId,omitempty"`
	ServiceID  string `json:"serviceId,omitempty"`
	Date       string `json:"date,omitempty"`
	Time       string `json:"time,omitempty"`
}

// FlowService walks a client through the booking wizard. Every method loads
// the session, applies one transition, persists, and returns the new view.
type FlowService interface {
	StartSession(ctx context.Context, clientID string) (*models.BookingSessionView, error)
	GetSession(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error)
	Advance(ctx context.Context, sessionID, clientID string, sel Selection) (*models.BookingSessionView, error)
	Back(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error)
	SubmitBooking(ctx context.Context, sessionID, clientID string, payNow bool) (*models.BookingSessionView, error)
	CompletePayment(ctx context.Context, sessionID, clientID, outcome string) (*models.BookingSessionView, error)
	Reset(ctx context.Context, sessionID, clientID string) (*models.BookingSessionView, error)
}

// BookingNotifier receives fire-and-forget signals about confirmed bookings.
// Failures are logged by the implementation, never surfaced to the wizard.
type BookingNotifier interface {
	BookingConfirmed(ctx context.Context, apt models.Appointment)
}

// Engine implements FlowService with injected capabilities; nothing in this
// package reaches for a global client, so every collaborator can be swapped
// for a test double.
type Engine struct {
	Locations    locationRepo.LocationRepository
	Profiles     profileRepo.ProfileRepository
	Services     serviceRepo.ServiceRepository
	Appointments appointmentRepo.AppointmentRepository
	Intents      payment.IntentIssuer
	Store        SessionStore
	Notifier     BookingNotifier

	// PublishableKey gates the payment-collection step: without a widget key
	// the pay-now branch soft-fails to pay-at-shop even when the intent
	// succeeded.
	PublishableKey string

	// Now is the clock; defaults to time.Now when nil.
	Now func() time.Time

	Logger *zap.Logger
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
