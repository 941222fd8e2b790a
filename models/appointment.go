package models

import "time"

// Appointment lifecycle status.
const (
	AppointmentPending   = "pending"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Appointment payment status.
const (
	PaymentUnpaid   = "unpaid"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// Appointment is the booking record. EndAt is fixed at creation as
// StartAt + service duration and never recomputed; TotalCents is copied from
// the service price at booking time.
type Appointment struct {
	ID                    string    `bson:"id" json:"id"`
	LocationID            string    `bson:"location_id" json:"locationId"`
	ClientID              string    `bson:"client_id" json:"clientId"`
	BarberID              string    `bson:"barber_id" json:"barberId"`
	ServiceID             string    `bson:"service_id" json:"serviceId"`
	StartAt               time.Time `bson:"start_at" json:"startAt"`
	EndAt                 time.Time `bson:"end_at" json:"endAt"`
	Status                string    `bson:"status" json:"status"`
	PaymentStatus         string    `bson:"payment_status" json:"paymentStatus"`
	TotalCents            int64     `bson:"total_cents" json:"totalCents"`
	DiscountCents         int64     `bson:"discount_cents,omitempty" json:"discountCents,omitempty"`
	RefundCents           int64     `bson:"refund_cents,omitempty" json:"refundCents,omitempty"`
	StripePaymentIntentID string    `bson:"stripe_payment_intent_id,omitempty" json:"stripePaymentIntentId,omitempty"`
	Notes                 string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt             time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt             time.Time `bson:"updated_at" json:"updatedAt"`
}
