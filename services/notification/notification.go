package notification

import (
	"context"
	"fmt"

	"barberbook/models"

	"go.uber.org/zap"
)

// SendEmail delivers one message through the configured sender.
func (s *DefaultNotificationService) SendEmail(to, subject, body string) error {
	if s.Email == nil {
		return fmt.Errorf("email sender not configured")
	}
	return s.Email.Send(to, subject, body)
}

// SendPush fans a notification out to every device token registered on the
// profile.
func (s *DefaultNotificationService) SendPush(ctx context.Context, profileID, title, body string, data map[string]string) error {
	if s.Push == nil {
		return fmt.Errorf("push sender not configured")
	}
	profile, err := s.Profiles.GetByID(profileID)
	if err != nil {
		return fmt.Errorf("failed to resolve profile for push: %w", err)
	}
	var lastErr error
	for _, token := range profile.DeviceTokens {
		if err := s.Push.Send(ctx, token, title, body, data); err != nil {
			s.Logger.Warn("push delivery failed",
				zap.String("profileId", profileID), zap.Error(err))
			lastErr = err
		}
	}
	return lastErr
}

// BookingConfirmed emails the client, pushes to their devices and schedules
// the pre-appointment reminder. Every failure is logged and swallowed; the
// booking is already confirmed by the time this runs.
func (s *DefaultNotificationService) BookingConfirmed(ctx context.Context, apt models.Appointment) {
	client, err := s.Profiles.GetByID(apt.ClientID)
	if err != nil {
		s.Logger.Warn("booking confirmation: client profile lookup failed",
			zap.String("appointmentId", apt.ID), zap.Error(err))
		return
	}

	serviceName := "your appointment"
	if svc, err := s.Services.GetByID(apt.ServiceID); err == nil {
		serviceName = svc.Name
	}

	subject := "Your booking is confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\n%s is booked for %s.\nTotal: $%.2f (%s).\n\nSee you soon!\n",
		client.Name,
		serviceName,
		apt.StartAt.Format("Monday, Jan 2 at 3:04 PM"),
		float64(apt.TotalCents)/100,
		apt.PaymentStatus,
	)
	if err := s.SendEmail(client.Email, subject, body); err != nil {
		s.Logger.Warn("booking confirmation email failed",
			zap.String("appointmentId", apt.ID), zap.Error(err))
	}

	if err := s.SendPush(ctx, client.ID, subject, serviceName+" - "+apt.StartAt.Format("Jan 2, 3:04 PM"), map[string]string{
		"appointmentId": apt.ID,
	}); err != nil {
		s.Logger.Debug("booking confirmation push failed",
			zap.String("appointmentId", apt.ID), zap.Error(err))
	}

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleAppointmentReminder(apt); err != nil {
			s.Logger.Warn("reminder scheduling failed",
				zap.String("appointmentId", apt.ID), zap.Error(err))
		}
	}
}
