package services

import (
	"fmt"
	"math"
	"strconv"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/paymentintent"
)

// CreatePaymentIntent creates a Stripe payment intent for an offer purchase.
// amount is the decimal price string stored on the offer; Stripe wants cents.
func CreatePaymentIntent(amount, offerID, userEmail string) (*stripe.PaymentIntent, error) {
	price, err := strconv.ParseFloat(amount, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid offer price %q: %w", amount, err)
	}

	cents := int64(math.Round(price * 100))
	if cents <= 0 {
		return nil, fmt.Errorf("offer price must be positive, got %q", amount)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(cents),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("offer_id", offerID)
	if userEmail != "" {
		params.AddMetadata("user_email", userEmail)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment intent: %w", err)
	}

	return intent, nil
}
