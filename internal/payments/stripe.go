package payments

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// Intent is what the reservation flow hands back to the client so the
// frontend can collect payment for a priced event.
type Intent struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// Intents creates payment intents for paid reservations.
type Intents interface {
	CreateIntent(ctx context.Context, amountCents int64, description string) (*Intent, error)
}

type StripeIntents struct {
	currency string
}

func NewStripeIntents(secretKey, currency string) *StripeIntents {
	stripe.Key = secretKey
	return &StripeIntents{currency: currency}
}

func (s *StripeIntents) CreateIntent(ctx context.Context, amountCents int64, description string) (*Intent, error) {
	if amountCents <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(s.currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx

	pi, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
	}, nil
}
