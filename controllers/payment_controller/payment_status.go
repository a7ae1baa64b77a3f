package payment_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

// GetPaymentStatus godoc
// @Summary Poll payment status
// @Description Report the state of a payment intent. Once the webhook settles it, a completed payment carries the wash code and a failed one carries the error message.
// @Tags Payments
// @Produce json
// @Param paymentIntentId path string true "Stripe payment intent ID"
// @Success 200 {object} models.PaymentStatusResponse "Payment status"
// @Failure 404 {object} models.ApiResponse "Payment not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /carwash/payment-status/{paymentIntentId} [get]
func GetPaymentStatus(c *gin.Context) {
	intentID := c.Param("paymentIntentId")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var payment models.Payment
	if err := config.DB.
		WithContext(ctx).
		Where("payment_intent_id = ?", intentID).
		First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Payment not found"))
			return
		}
		log.Printf("[payment.status] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch payment"))
		return
	}

	resp := models.PaymentStatusResponse{Status: payment.Status}

	if payment.Status == models.PaymentCompleted && payment.CarWashCodeID != nil {
		var code models.CarWashCode
		if err := config.DB.
			WithContext(ctx).
			First(&code, "id = ?", *payment.CarWashCodeID).Error; err == nil {
			resp.CarwashCode = code.Code
		}
	}
	if payment.Status == models.PaymentFailed && payment.ErrorMessage != nil {
		resp.ErrorMessage = *payment.ErrorMessage
	}

	c.JSON(http.StatusOK, resp)
}
