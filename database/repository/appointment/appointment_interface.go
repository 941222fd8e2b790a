package appointmentRepo

import (
	"time"

	"barberbook/models"
)

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	Create(a *models.Appointment) error
	GetByID(id string) (*models.Appointment, error)
	GetAll() ([]models.Appointment, error)
	// ListByBarberBetween returns a barber's appointments overlapping
	// [from, to), cancelled ones excluded. Used for advisory slot checks.
	ListByBarberBetween(barberID string, from, to time.Time) ([]models.Appointment, error)
	Update(a *models.Appointment) (*models.Appointment, error)
	// UpdateFields applies a partial update and returns the stored document.
	UpdateFields(id string, fields map[string]interface{}) (*models.Appointment, error)
	// GetByPaymentIntentID resolves an appointment by its Stripe intent
	// reference. Returns nil, nil when no appointment carries the id.
	GetByPaymentIntentID(intentID string) (*models.Appointment, error)
}
