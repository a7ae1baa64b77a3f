package payment_controller

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/services"
	"gorm.io/datatypes"
)

// CreatePaymentIntent godoc
// @Summary Create a payment intent for an offer
// @Description Start checkout for an offer. Returns the Stripe client secret the frontend confirms the payment with.
// @Tags Payments
// @Accept json
// @Produce json
// @Param payment body models.CreatePaymentIntentRequest true "Offer to purchase"
// @Success 200 {object} map[string]string "clientSecret"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 404 {object} models.ApiResponse "Offer not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/create-payment-intent [post]
func CreatePaymentIntent(c *gin.Context) {
	var req models.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "offer_id is required"))
		return
	}

	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid offer_id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var offer models.Offer
	if err := config.DB.
		WithContext(ctx).
		Where("id = ? AND status = 'ACTIVE'", offerID).
		First(&offer).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Offer not found"))
		return
	}

	userEmail, _ := middleware.GetUserEmailFromContext(c)
	var userID *uuid.UUID
	if idStr, ok := middleware.GetUserIDFromContext(c); ok {
		if uid, err := uuid.Parse(idStr); err == nil {
			userID = &uid
		}
	}

	intent, err := services.CreatePaymentIntent(offer.OfferPrice, offer.ID.String(), userEmail)
	if err != nil {
		log.Printf("[payment.intent] stripe create failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create payment intent"))
		return
	}

	metadata, _ := json.Marshal(map[string]string{
		"offer_name": offer.Name,
		"user_email": userEmail,
	})

	payment := models.Payment{
		ID:              uuid.New(),
		PaymentIntentID: intent.ID,
		OfferID:         offer.ID,
		UserID:          userID,
		Amount:          offer.OfferPrice,
		Status:          models.PaymentPending,
		Metadata:        datatypes.JSON(metadata),
	}
	if err := config.DB.WithContext(ctx).Create(&payment).Error; err != nil {
		log.Printf("[payment.intent] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record payment"))
		return
	}

	log.Printf("[payment.intent] created intent %s for offer %s", intent.ID, offer.ID)
	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
