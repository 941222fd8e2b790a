package models

// Wizard steps, linear with back-navigation. PaymentPending and
// PaymentCollection only occur on the pay-now branch.
const (
	StepSelectLocation    = "select_location"
	StepSelectBarber      = "select_barber"
	StepSelectService     = "select_service"
	StepSelectDateTime    = "select_datetime"
	StepConfirm           = "confirm"
	StepPaymentPending    = "payment_pending"
	StepPaymentCollection = "payment_collection"
	StepSuccess           = "success"
)

// BookingSession is the explicit state of one booking wizard run. It is the
// unit persisted between requests; every transition is computed from this
// value plus the incoming event, never from handler-local state.
type BookingSession struct {
	SessionID string `json:"sessionId"`
	ClientID  string `json:"clientId"`
	Step      string `json:"step"`

	LocationID string `json:"locationId,omitempty"`
	BarberID   string `json:"barberId,omitempty"`
	ServiceID  string `json:"serviceId,omitempty"`
	Date       string `json:"date,omitempty"` // "2006-01-02"
	Time       string `json:"time,omitempty"` // "15:04", half-hour grid

	// Set once SubmitBooking has created the appointment.
	AppointmentID string `json:"appointmentId,omitempty"`

	// Pay-now branch only.
	ClientSecret    string `json:"clientSecret,omitempty"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`

	// Inline feedback for the current step (validation or creation errors,
	// terminal confirmation messages).
	Message string `json:"message,omitempty"`
}

// BookingSessionView is what handlers return to the client: the session plus
// the candidate set for the current step.
type BookingSessionView struct {
	Session   BookingSession `json:"session"`
	Locations []Location     `json:"locations,omitempty"`
	Barbers   []Profile      `json:"barbers,omitempty"`
	Services  []Service      `json:"services,omitempty"`
	Slots     []string       `json:"slots,omitempty"`
}
