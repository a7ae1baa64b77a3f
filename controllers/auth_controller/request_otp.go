package auth_controller

import (
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"github.com/zenapticlabs/washbuddy-backend/services"
)

const otpTTL = 10 * time.Minute

func otpKey(email string) string {
	return "otp:" + email
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// RequestOTP godoc
// @Summary Request a login code
// @Description Email a six-digit login code. The code lives in Redis for 10 minutes and a fresh request replaces any outstanding one.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.RequestOTPRequest true "Email to send the code to"
// @Success 200 {object} models.ApiResponse "Code sent"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/request-otp [post]
func RequestOTP(c *gin.Context) {
	var req models.RequestOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A valid email is required"))
		return
	}

	code, err := generateOTP()
	if err != nil {
		log.Printf("[auth.otp] code generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send code"))
		return
	}

	if err := config.RedisClient.Set(config.Ctx, otpKey(req.Email), code, otpTTL).Err(); err != nil {
		log.Printf("[auth.otp] redis write failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send code"))
		return
	}

	if err := services.GetEmailService().SendOTPEmail(req.Email, code); err != nil {
		log.Printf("[auth.otp] email failed for %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send code"))
		return
	}

	log.Printf("[auth.otp] code sent to %s", req.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login code sent", nil))
}
