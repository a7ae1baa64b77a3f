package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Log in with email and password
// @Description Verify credentials and start a session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param login body models.LoginRequest true "Login payload"
// @Success 200 {object} models.ApiResponse "Logged in successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 401 {object} models.ApiResponse "Invalid credentials"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var user models.User
	if err := config.DB.WithContext(ctx).Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		log.Printf("[auth.login] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	// OAuth-only and OTP-only accounts have no password to check
	if user.Password == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "This account uses Google or email-code sign-in"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := issueSession(c, &user)
	if err != nil {
		log.Printf("[auth.login] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return
	}

	log.Printf("[auth.login] login: %s", user.Email)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}
