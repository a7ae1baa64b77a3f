package config

import (
	"log"
	"os"

	"github.com/stripe/stripe-go/v81"
)

var stripeWebhookSecret string

// InitStripe sets the global Stripe API key and remembers the webhook
// signing secret.
func InitStripe() {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		log.Fatal("❌ STRIPE_SECRET_KEY environment variable not set")
	}
	stripe.Key = key

	stripeWebhookSecret = os.Getenv("STRIPE_WEBHOOK_SECRET")
	if stripeWebhookSecret == "" {
		log.Println("⚠️  STRIPE_WEBHOOK_SECRET not set, webhook signature checks will fail")
	}

	log.Println("✅ Stripe initialized")
}

func StripeWebhookSecret() string {
	return stripeWebhookSecret
}
