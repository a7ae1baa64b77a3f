package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zenapticlabs/washbuddy-backend/models"
)

// ErrPaymentPending is returned when polling gives up while the payment is
// still unsettled. The payment may yet complete; the purchase history will
// have the code if it does.
var ErrPaymentPending = errors.New("payment still pending")

// WaitForPaymentCode polls the payment-status endpoint until the webhook
// settles the payment, then returns the assigned wash code. Polling runs
// every 2 seconds for up to 15 attempts.
func (c *Client) WaitForPaymentCode(ctx context.Context, paymentIntentID string) (string, error) {
	for attempt := 1; attempt <= c.pollAttempts; attempt++ {
		status, err := c.PaymentStatus(ctx, paymentIntentID)
		if err != nil {
			return "", err
		}

		switch status.Status {
		case models.PaymentCompleted:
			return status.CarwashCode, nil
		case models.PaymentFailed:
			if status.ErrorMessage != "" {
				return "", fmt.Errorf("payment failed: %s", status.ErrorMessage)
			}
			return "", errors.New("payment failed")
		}

		if attempt < c.pollAttempts {
			select {
			case <-time.After(c.pollInterval):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}
	}

	return "", ErrPaymentPending
}
