package payment_controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/webhook"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/services"
	"gorm.io/gorm"
)

// StripeWebhook godoc
// @Summary Stripe webhook receiver
// @Description Settles pending payments. A succeeded intent is assigned an unused wash code; a failed intent records the decline reason.
// @Tags Payments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]bool "Acknowledged"
// @Failure 400 {object} models.ApiResponse "Invalid signature or payload"
// @Router /carwash/stripe-webhook [post]
func StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, 65536))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to read payload"))
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), config.StripeWebhookSecret())
	if err != nil {
		log.Printf("[payment.webhook] signature verification failed: %v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid webhook signature"))
		return
	}

	switch event.Type {
	case "payment_intent.succeeded":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed event payload"))
			return
		}
		if err := settleSucceededPayment(intent.ID); err != nil {
			log.Printf("[payment.webhook] settle failed for %s: %v", intent.ID, err)
		}
	case "payment_intent.payment_failed":
		var intent stripe.PaymentIntent
		if err := json.Unmarshal(event.Data.Raw, &intent); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Malformed event payload"))
			return
		}
		reason := "Payment failed"
		if intent.LastPaymentError != nil && intent.LastPaymentError.Msg != "" {
			reason = intent.LastPaymentError.Msg
		}
		if err := markPaymentFailed(intent.ID, reason); err != nil {
			log.Printf("[payment.webhook] mark-failed failed for %s: %v", intent.ID, err)
		}
	default:
		// Other event types are subscribed but not acted on
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}

// settleSucceededPayment assigns an unused wash code to the payment and
// marks it completed. Codes already redeemed by the purchaser's email are
// skipped so one buyer never sees the same code twice.
func settleSucceededPayment(intentID string) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payment models.Payment
	var assignedCode string
	var buyerEmail string

	err := config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("payment_intent_id = ?", intentID).
			First(&payment).Error; err != nil {
			return err
		}
		if payment.Status == models.PaymentCompleted {
			return nil // webhook retries are idempotent
		}

		var meta map[string]string
		_ = json.Unmarshal(payment.Metadata, &meta)
		buyerEmail = meta["user_email"]

		var code models.CarWashCode
		query := tx.
			Where("offer_id = ?", payment.OfferID).
			Where(`NOT EXISTS (
				SELECT 1 FROM car_wash_code_usages u
				WHERE u.code_id = car_wash_codes.id AND u.user_email = ?
			)`, buyerEmail).
			Order("created_at ASC")
		if err := query.First(&code).Error; err != nil {
			// No code left: complete the payment anyway and flag it
			msg := "No wash code available"
			return tx.Model(&payment).Updates(map[string]interface{}{
				"status":        models.PaymentFailed,
				"error_message": msg,
			}).Error
		}

		usage := models.CarWashCodeUsage{
			ID:        uuid.New(),
			CodeID:    code.ID,
			UserEmail: buyerEmail,
			UsedAt:    time.Now().UTC(),
		}
		if err := tx.Create(&usage).Error; err != nil {
			return err
		}

		assignedCode = code.Code
		return tx.Model(&payment).Updates(map[string]interface{}{
			"status":           models.PaymentCompleted,
			"car_wash_code_id": code.ID,
		}).Error
	})
	if err != nil {
		return err
	}

	if assignedCode != "" && buyerEmail != "" {
		go func() {
			var carWashName string
			var offer models.Offer
			if err := config.DB.First(&offer, "id = ?", payment.OfferID).Error; err == nil {
				var carWash models.CarWash
				if err := config.DB.First(&carWash, offer.CarWashID).Error; err == nil {
					carWashName = carWash.CarWashName
				}
			}
			if client := services.GetEmailService(); client != nil {
				if err := client.SendWashCodeEmail(buyerEmail, carWashName, assignedCode); err != nil {
					log.Printf("[payment.webhook] wash code email failed: %v", err)
				}
			}
		}()
	}

	log.Printf("[payment.webhook] payment %s completed", intentID)
	return nil
}

func markPaymentFailed(intentID, reason string) error {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	return config.DB.
		WithContext(ctx).
		Model(&models.Payment{}).
		Where("payment_intent_id = ? AND status = ?", intentID, models.PaymentPending).
		Updates(map[string]interface{}{
			"status":        models.PaymentFailed,
			"error_message": reason,
		}).Error
}
