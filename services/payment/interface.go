package payment

import (
	"context"

	"barberbook/models"
)

// IntentIssuer requests a payment intent for an appointment. Implementations
// are treated as fallible and optional: the booking flow downgrades any
// failure to a pay-at-shop booking, it never aborts on the issuer's account.
type IntentIssuer interface {
	CreateIntent(ctx context.Context, appointmentID string, amountCents int64) (*models.IntentResult, error)
}
