package payment

import (
	"encoding/json"
	"fmt"

	appointmentRepo "barberbook/database/repository/appointment"
	"barberbook/models"

	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

// Reconciler applies Stripe webhook events to appointment payment state.
// This is the only place paymentStatus moves to paid or refunded; the
// booking flow never trusts the widget's client-side success signal.
type Reconciler struct {
	Appointments appointmentRepo.AppointmentRepository
	Logger       *zap.Logger
}

// Apply handles a verified Stripe event. Unknown event types are ignored.
func (r *Reconciler) Apply(event stripe.Event) error {
	switch event.Type {
	case "payment_intent.succeeded":
		var pi stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
			return fmt.Errorf("failed to parse payment intent event: %w", err)
		}
		return r.markPaid(pi)
	case "charge.refunded":
		var ch stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &ch); err != nil {
			return fmt.Errorf("failed to parse charge event: %w", err)
		}
		return r.markRefunded(ch)
	default:
		r.Logger.Debug("ignoring stripe event", zap.String("type", string(event.Type)))
		return nil
	}
}

func (r *Reconciler) markPaid(pi stripe.PaymentIntent) error {
	apt, err := r.lookup(pi.ID, pi.Metadata["appointmentId"])
	if err != nil || apt == nil {
		return err
	}
	if apt.PaymentStatus == models.PaymentPaid {
		return nil // replayed event
	}
	_, err = r.Appointments.UpdateFields(apt.ID, map[string]interface{}{
		"payment_status":           models.PaymentPaid,
		"stripe_payment_intent_id": pi.ID,
	})
	if err != nil {
		return fmt.Errorf("failed to mark appointment %s paid: %w", apt.ID, err)
	}
	r.Logger.Info("appointment payment reconciled",
		zap.String("appointmentId", apt.ID), zap.String("intentId", pi.ID))
	return nil
}

func (r *Reconciler) markRefunded(ch stripe.Charge) error {
	intentID := ""
	if ch.PaymentIntent != nil {
		intentID = ch.PaymentIntent.ID
	}
	apt, err := r.lookup(intentID, ch.Metadata["appointmentId"])
	if err != nil || apt == nil {
		return err
	}
	_, err = r.Appointments.UpdateFields(apt.ID, map[string]interface{}{
		"payment_status": models.PaymentRefunded,
		"refund_cents":   ch.AmountRefunded,
	})
	if err != nil {
		return fmt.Errorf("failed to mark appointment %s refunded: %w", apt.ID, err)
	}
	return nil
}

// lookup resolves the appointment by intent reference first, then by the
// appointmentId metadata the issuer stamps on every intent.
func (r *Reconciler) lookup(intentID, appointmentID string) (*models.Appointment, error) {
	if intentID != "" {
		apt, err := r.Appointments.GetByPaymentIntentID(intentID)
		if err != nil {
			return nil, err
		}
		if apt != nil {
			return apt, nil
		}
	}
	if appointmentID == "" {
		r.Logger.Warn("stripe event without appointment reference", zap.String("intentId", intentID))
		return nil, nil
	}
	apt, err := r.Appointments.GetByID(appointmentID)
	if err != nil {
		r.Logger.Warn("stripe event for unknown appointment",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return nil, nil
	}
	return apt, nil
}
