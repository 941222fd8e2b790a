package payment

import (
	"context"
	"strings"

	"barberbook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// Stripe enforces a minimum charge; anything below is bumped to the floor.
const minChargeCents = 50

// StripeIntentIssuer implements IntentIssuer against the Stripe API.
type StripeIntentIssuer struct {
	secretKey string
	logger    *zap.Logger
}

// NewStripeIntentIssuer builds an issuer for the given secret key. The key
// may be empty or malformed; CreateIntent reports that as a soft error
// rather than failing construction, so a deployment without Stripe still
// boots and books.
func NewStripeIntentIssuer(secretKey string, logger *zap.Logger) *StripeIntentIssuer {
	return &StripeIntentIssuer{secretKey: secretKey, logger: logger}
}

// CreateIntent requests a PaymentIntent for the appointment's total.
func (s *StripeIntentIssuer) CreateIntent(ctx context.Context, appointmentID string, amountCents int64) (*models.IntentResult, error) {
	if !strings.HasPrefix(s.secretKey, "sk_") {
		return &models.IntentResult{Error: "Stripe not configured"}, nil
	}
	stripe.Key = s.secretKey

	amount := amountCents
	if amount < minChargeCents {
		amount = minChargeCents
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("appointmentId", appointmentID)
	params.AddMetadata("source", "barberbook")

	pi, err := paymentintent.New(params)
	if err != nil {
		s.logger.Warn("stripe intent creation failed",
			zap.String("appointmentId", appointmentID), zap.Error(err))
		return &models.IntentResult{Error: err.Error()}, nil
	}

	return &models.IntentResult{
		ClientSecret: pi.ClientSecret,
		IntentID:     pi.ID,
	}, nil
}
