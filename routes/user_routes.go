package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/zenapticlabs/washbuddy-backend/controllers/user_controller"
	"github.com/zenapticlabs/washbuddy-backend/middleware"
)

func SetupUserRoutes(router *gin.RouterGroup) {
	users := router.Group("/users", middleware.AuthMiddleware())
	{
		users.GET("/me", user_controller.GetMe)
	}
}
