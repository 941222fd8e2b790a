package bookingflow

import (
	"context"
	"fmt"
	"time"

	"barberbook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Terminal messages. The pay-at-shop wording is part of the contract with
// the client UI.
const (
	msgConfirmedPayAtShop = "Booking confirmed. Please pay at the shop."
	msgPaymentUnavailable = "Booking confirmed. Online payment is unavailable right now, please pay at the shop."
	msgPaymentReceived    = "Payment received. Booking confirmed."
	msgSlotTaken          = "That time was just taken. Please pick another slot."
)

// SubmitBooking creates the appointment and, on payNow, drives the online
// payment sub-flow. The booking is the primary transaction: any failure in
// the payment subsystem downgrades to a confirmed pay-at-shop booking and
// never rolls the appointment back.
func (e *Engine) SubmitBooking(ctx context.Context, sessionID, clientID string, payNow bool) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}

	if session.Step != models.StepConfirm {
		session.Message = "confirm your selections before submitting"
		if err := e.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return e.buildView(ctx, session)
	}

	session.Message = ""
	apt, err := e.createAppointment(session)
	if err != nil {
		// Creation failure stays inline at Confirm; the wizard state is
		// preserved so the same submission can be retried.
		e.Logger.Error("appointment creation failed",
			zap.String("sessionId", session.SessionID), zap.Error(err))
		session.Message = err.Error()
		if saveErr := e.Store.Save(ctx, session); saveErr != nil {
			return nil, saveErr
		}
		return e.buildView(ctx, session)
	}
	session.AppointmentID = apt.ID

	if !payNow {
		session.Step = models.StepSuccess
		session.Message = msgConfirmedPayAtShop
		if err := e.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		e.notifyConfirmed(*apt)
		return e.buildView(ctx, session)
	}

	session.Step = models.StepPaymentPending
	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}

	result, err := e.Intents.CreateIntent(ctx, apt.ID, apt.TotalCents)
	switch {
	case err != nil, result == nil, result.Error != "", result.ClientSecret == "":
		// Soft-fail: the slot is kept, the client pays at the shop.
		if err != nil {
			e.Logger.Warn("payment intent request failed",
				zap.String("appointmentId", apt.ID), zap.Error(err))
		}
		session.Step = models.StepSuccess
		session.Message = msgPaymentUnavailable
	case e.PublishableKey == "":
		// Intent succeeded but no widget key is configured; same fallback.
		session.Step = models.StepSuccess
		session.Message = msgPaymentUnavailable
	default:
		session.Step = models.StepPaymentCollection
		session.ClientSecret = result.ClientSecret
		session.PaymentIntentID = result.IntentID
		if _, uerr := e.Appointments.UpdateFields(apt.ID, map[string]interface{}{
			"stripe_payment_intent_id": result.IntentID,
		}); uerr != nil {
			e.Logger.Warn("failed to stamp intent on appointment",
				zap.String("appointmentId", apt.ID), zap.Error(uerr))
		}
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	if session.Step == models.StepSuccess {
		e.notifyConfirmed(*apt)
	}
	return e.buildView(ctx, session)
}

// CompletePayment handles the payment widget's terminal report. The
// controller never mutates paymentStatus here; reconciliation happens via
// the Stripe webhook.
func (e *Engine) CompletePayment(ctx context.Context, sessionID, clientID, outcome string) (*models.BookingSessionView, error) {
	session, err := e.loadOwned(ctx, sessionID, clientID)
	if err != nil {
		return nil, err
	}

	if session.Step != models.StepPaymentCollection {
		session.Message = "no payment is being collected for this session"
		if err := e.Store.Save(ctx, session); err != nil {
			return nil, err
		}
		return e.buildView(ctx, session)
	}

	switch outcome {
	case models.PaymentOutcomeSucceeded:
		session.Step = models.StepSuccess
		session.Message = msgPaymentReceived
	case models.PaymentOutcomePayAtShop:
		session.Step = models.StepSuccess
		session.Message = msgConfirmedPayAtShop
	default:
		session.Message = "payment did not complete; try again or pay at the shop"
	}

	if err := e.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	if session.Step == models.StepSuccess {
		if apt, aerr := e.Appointments.GetByID(session.AppointmentID); aerr == nil {
			e.notifyConfirmed(*apt)
		}
	}
	return e.buildView(ctx, session)
}

// createAppointment computes the appointment from the session's selections
// and persists it. Called with all selections validated by the step gating;
// re-validated here because the submit is the one transition with side
// effects.
func (e *Engine) createAppointment(session *models.BookingSession) (*models.Appointment, error) {
	if session.LocationID == "" || session.BarberID == "" || session.ServiceID == "" ||
		session.Date == "" || session.Time == "" || session.ClientID == "" {
		return nil, fmt.Errorf("booking is missing a required selection")
	}

	svc, err := e.Services.GetByID(session.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("could not load the selected service: %w", err)
	}

	startAt, err := parseStartAt(session.Date, session.Time, e.sessionTimezone(session))
	if err != nil {
		return nil, fmt.Errorf("invalid date or time: %w", err)
	}
	endAt := startAt.Add(time.Duration(svc.DurationMinutes) * time.Minute)

	// Optimistic conflict re-check; the grid already hid busy slots, this
	// catches the race where another booking landed in between.
	busy, err := e.Appointments.ListByBarberBetween(session.BarberID, startAt, endAt)
	if err == nil && len(busy) > 0 {
		return nil, fmt.Errorf("%s", msgSlotTaken)
	}

	now := e.now()
	apt := &models.Appointment{
		ID:            uuid.New().String(),
		LocationID:    session.LocationID,
		ClientID:      session.ClientID,
		BarberID:      session.BarberID,
		ServiceID:     session.ServiceID,
		StartAt:       startAt,
		EndAt:         endAt,
		Status:        models.AppointmentPending,
		PaymentStatus: models.PaymentUnpaid,
		TotalCents:    svc.PriceCents,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := e.Appointments.Create(apt); err != nil {
		return nil, fmt.Errorf("could not create the booking: %w", err)
	}

	e.Logger.Info("appointment created",
		zap.String("appointmentId", apt.ID),
		zap.String("barberId", apt.BarberID),
		zap.Time("startAt", apt.StartAt))
	return apt, nil
}

func (e *Engine) notifyConfirmed(apt models.Appointment) {
	if e.Notifier == nil {
		return
	}
	// Fire-and-forget: notification failures never affect the booking.
	go e.Notifier.BookingConfirmed(context.Background(), apt)
}
