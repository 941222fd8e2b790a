package payment

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"barberbook/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

type stubAppointmentRepo struct {
	appointments []models.Appointment
	updates      int
}

func (s *stubAppointmentRepo) Create(a *models.Appointment) error { return nil }

func (s *stubAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID == id {
			a := s.appointments[i]
			return &a, nil
		}
	}
	return nil, fmt.Errorf("appointment %s not found", id)
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

func (s *stubAppointmentRepo) UpdateFields(id string, fields map[string]interface{}) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		s.updates++
		if v, ok := fields["payment_status"].(string); ok {
			s.appointments[i].PaymentStatus = v
		}
		if v, ok := fields["stripe_payment_intent_id"].(string); ok {
			s.appointments[i].StripePaymentIntentID = v
		}
		if v, ok := fields["refund_cents"].(int64); ok {
			s.appointments[i].RefundCents = v
		}
		a := s.appointments[i]
		return &a, nil
	}
	return nil, fmt.Errorf("appointment %s not found", id)
}

func (s *stubAppointmentRepo) GetByPaymentIntentID(intentID string) (*models.Appointment, error) {
	for i := range s.appointments {
		if s.appointments[i].StripePaymentIntentID == intentID {
			a := s.appointments[i]
			return &a, nil
		}
	}
	return nil, nil
}

func event(eventType string, payload string) stripe.Event {
	return stripe.Event{
		Type: stripe.EventType(eventType),
		Data: &stripe.EventData{Raw: json.RawMessage(payload)},
	}
}

func TestApplyPaymentSucceeded(t *testing.T) {
	repo := &stubAppointmentRepo{appointments: []models.Appointment{
		{ID: "apt-1", PaymentStatus: models.PaymentUnpaid, StripePaymentIntentID: "pi_123"},
	}}
	r := &Reconciler{Appointments: repo, Logger: zap.NewNop()}

	err := r.Apply(event("payment_intent.succeeded", `{"id":"pi_123"}`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if repo.appointments[0].PaymentStatus != models.PaymentPaid {
		t.Errorf("payment status = %q, want paid", repo.appointments[0].PaymentStatus)
	}

	// Replayed deliveries are ignored.
	if err := r.Apply(event("payment_intent.succeeded", `{"id":"pi_123"}`)); err != nil {
		t.Fatalf("replay Apply: %v", err)
	}
	if repo.updates != 1 {
		t.Errorf("replayed event wrote %d updates, want 1", repo.updates)
	}
}

func TestApplyFallsBackToMetadata(t *testing.T) {
	// The intent id is not stamped yet; the metadata written at intent
	// creation still identifies the appointment.
	repo := &stubAppointmentRepo{appointments: []models.Appointment{
		{ID: "apt-1", PaymentStatus: models.PaymentUnpaid},
	}}
	r := &Reconciler{Appointments: repo, Logger: zap.NewNop()}

	err := r.Apply(event("payment_intent.succeeded",
		`{"id":"pi_456","metadata":{"appointmentId":"apt-1"}}`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	apt := repo.appointments[0]
	if apt.PaymentStatus != models.PaymentPaid {
		t.Errorf("payment status = %q, want paid", apt.PaymentStatus)
	}
	if apt.StripePaymentIntentID != "pi_456" {
		t.Errorf("intent id not stamped during reconciliation")
	}
}

func TestApplyChargeRefunded(t *testing.T) {
	repo := &stubAppointmentRepo{appointments: []models.Appointment{
		{ID: "apt-1", PaymentStatus: models.PaymentPaid, StripePaymentIntentID: "pi_123"},
	}}
	r := &Reconciler{Appointments: repo, Logger: zap.NewNop()}

	err := r.Apply(event("charge.refunded",
		`{"id":"ch_1","payment_intent":{"id":"pi_123"},"amount_refunded":3500}`))
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	apt := repo.appointments[0]
	if apt.PaymentStatus != models.PaymentRefunded {
		t.Errorf("payment status = %q, want refunded", apt.PaymentStatus)
	}
	if apt.RefundCents != 3500 {
		t.Errorf("refund cents = %d, want 3500", apt.RefundCents)
	}
}

func TestApplyIgnoresUnknownEventsAndOrphans(t *testing.T) {
	repo := &stubAppointmentRepo{}
	r := &Reconciler{Appointments: repo, Logger: zap.NewNop()}

	if err := r.Apply(event("customer.created", `{"id":"cus_1"}`)); err != nil {
		t.Errorf("unknown event type errored: %v", err)
	}
	// An event that matches nothing is dropped, not retried forever.
	if err := r.Apply(event("payment_intent.succeeded", `{"id":"pi_orphan"}`)); err != nil {
		t.Errorf("orphan event errored: %v", err)
	}
	if repo.updates != 0 {
		t.Errorf("orphan event wrote updates")
	}
}

func TestCreateIntentWithoutKey(t *testing.T) {
	issuer := NewStripeIntentIssuer("", zap.NewNop())
	result, err := issuer.CreateIntent(context.Background(), "apt-1", 3500)
	if err != nil {
		t.Fatalf("CreateIntent: %v", err)
	}
	if result.Error != "Stripe not configured" {
		t.Errorf("error = %q, want 'Stripe not configured'", result.Error)
	}
	if result.ClientSecret != "" {
		t.Errorf("unconfigured issuer produced a client secret")
	}

	// A malformed key soft-fails the same way.
	issuer = NewStripeIntentIssuer("pk_wrong_kind", zap.NewNop())
	result, err = issuer.CreateIntent(context.Background(), "apt-1", 3500)
	if err != nil || result.Error == "" {
		t.Errorf("malformed key did not soft-fail: result=%+v err=%v", result, err)
	}
}
