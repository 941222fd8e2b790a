package models

// ReminderPayload is the asynq task body for a scheduled appointment
// reminder.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	ClientID      string `json:"clientId"`
	BarberID      string `json:"barberId"`
	FireAt        string `json:"fireAt"`
	Title         string `json:"title"`
	Body          string `json:"body"`
}
