package notification

import (
	"context"

	profileRepo "barberbook/database/repository/profile"
	serviceRepo "barberbook/database/repository/service"
	"barberbook/models"

	"go.uber.org/zap"
)

// NotificationService sends booking-related email and push messages. All of
// it is fire-and-forget from the caller's point of view; delivery failures
// are logged and swallowed.
type NotificationService interface {
	SendEmail(to, subject, body string) error
	SendPush(ctx context.Context, profileID, title, body string, data map[string]string) error
	// BookingConfirmed emails the client, pushes to their devices and
	// schedules the pre-appointment reminder.
	BookingConfirmed(ctx context.Context, apt models.Appointment)
}

// ReminderScheduler enqueues a reminder to fire before the appointment.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(apt models.Appointment) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Profiles  profileRepo.ProfileRepository
	Services  serviceRepo.ServiceRepository
	Email     EmailSender
	Push      PushSender
	Reminders ReminderScheduler
	Logger    *zap.Logger
}
