package models

// IntentResult is the outcome of a payment-intent request. A missing
// ClientSecret or a non-empty Error means online payment is unavailable for
// this booking; the booking itself is never rolled back on that account.
type IntentResult struct {
	ClientSecret string `json:"clientSecret,omitempty"`
	IntentID     string `json:"paymentIntentId,omitempty"`
	Error        string `json:"error,omitempty"`
}

// PaymentOutcome is the signal reported back by the payment-collection
// widget. The controller never inspects intermediate widget states.
const (
	PaymentOutcomeSucceeded = "succeeded"
	PaymentOutcomePayAtShop = "pay_at_shop"
	PaymentOutcomeFailed    = "failed"
)
