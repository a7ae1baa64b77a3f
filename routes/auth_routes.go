package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/controllers/auth_controller"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
)

// SetupAuthRoutes sets up all authentication routes
func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/signup", middleware.RateLimiter(10, time.Minute), auth_controller.Signup)
		auth.POST("/login", middleware.RateLimiter(10, time.Minute), auth_controller.Login)

		// Email-code login
		auth.POST("/request-otp", middleware.RateLimiter(5, time.Minute), auth_controller.RequestOTP)
		auth.POST("/verify-otp", middleware.RateLimiter(10, time.Minute), auth_controller.VerifyOTP)

		// Google OAuth routes
		auth.GET("/google/login", auth_controller.GoogleLogin)
		auth.GET("/google/callback", auth_controller.GoogleCallback)

		auth.POST("/logout", auth_controller.Logout)
	}
}
