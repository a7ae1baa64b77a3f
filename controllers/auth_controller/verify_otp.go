package auth_controller

import (
	"crypto/subtle"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"gorm.io/gorm"
)

// VerifyOTP godoc
// @Summary Verify a login code
// @Description Exchange an emailed code for a session. Creates the account on first login; the code is single-use.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body models.VerifyOTPRequest true "Email and code"
// @Success 200 {object} models.ApiResponse "Logged in successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid or expired code"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/verify-otp [post]
func VerifyOTP(c *gin.Context) {
	var req models.VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and six-digit code are required"))
		return
	}

	stored, err := config.RedisClient.Get(config.Ctx, otpKey(req.Email)).Result()
	if err == redis.Nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired code"))
		return
	}
	if err != nil {
		log.Printf("[auth.otp] redis read failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to verify code"))
		return
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(req.Code)) != 1 {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired code"))
		return
	}

	// Single use
	if err := config.RedisClient.Del(config.Ctx, otpKey(req.Email)).Err(); err != nil {
		log.Printf("[auth.otp] redis delete failed: %v", err)
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	err = config.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:            uuid.New(),
			Email:         req.Email,
			EmailVerified: true,
		}
		if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
			log.Printf("[auth.otp] user create failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
			return
		}
	} else if err != nil {
		log.Printf("[auth.otp] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to verify code"))
		return
	} else if !user.EmailVerified {
		// Proving control of the inbox verifies the email
		if err := config.DB.WithContext(ctx).Model(&user).Update("email_verified", true).Error; err == nil {
			user.EmailVerified = true
		}
	}

	token, err := issueSession(c, &user)
	if err != nil {
		log.Printf("[auth.otp] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return
	}

	log.Printf("[auth.otp] login via code: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}
