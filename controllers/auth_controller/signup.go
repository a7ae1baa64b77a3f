package auth_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/zenapticlabs/washbuddy-backend/config"
	"github.com/zenapticlabs/washbuddy-backend/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Signup godoc
// @Summary Sign up with email and password
// @Description Create an account and start a session. The JWT is set as an HTTP-only cookie and also returned for clients that prefer a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param signup body models.SignupRequest true "Signup payload"
// @Success 201 {object} models.ApiResponse "Account created successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/signup [post]
func Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing models.User
	err := config.DB.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Email already registered"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[auth.signup] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[auth.signup] hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}
	password := string(hash)

	user := models.User{
		ID:       uuid.New(),
		Email:    req.Email,
		Name:     req.Name,
		Password: &password,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := config.DB.WithContext(ctx).Create(&user).Error; err != nil {
		log.Printf("[auth.signup] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := issueSession(c, &user)
	if err != nil {
		log.Printf("[auth.signup] JWT error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to start session"))
		return
	}

	log.Printf("[auth.signup] account created: %s", user.Email)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}
