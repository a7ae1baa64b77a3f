package payment_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
	"github.com/zenapticlabs/washbuddy-backend/models"
)

// GetPaymentHistory godoc
// @Summary Get purchase history
// @Description List the signed-in user's past purchases, newest first, with the wash code for completed ones.
// @Tags Payments
// @Produce json
// @Success 200 {object} models.ApiResponse "Purchase history fetched successfully"
// @Failure 401 {object} models.ApiResponse "Not authenticated"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Security BearerAuth
// @Router /carwash/payments/history [get]
func GetPaymentHistory(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authentication required"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	history := make([]models.PurchaseHistoryItem, 0)
	err := config.DB.
		WithContext(ctx).
		Raw(`
			SELECT
				p.id,
				cw.car_wash_name,
				o.name AS offer_name,
				p.amount,
				p.status,
				COALESCE(code.code, '') AS wash_code,
				p.created_at AS purchase_date
			FROM payments p
			JOIN offers o ON o.id = p.offer_id
			JOIN car_washes cw ON cw.id = o.car_wash_id
			LEFT JOIN car_wash_codes code ON code.id = p.car_wash_code_id
			WHERE p.user_id = ?
			ORDER BY p.created_at DESC
		`, userID).
		Scan(&history).Error
	if err != nil {
		log.Printf("[payment.history] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch purchase history"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Purchase history fetched successfully", history))
}
