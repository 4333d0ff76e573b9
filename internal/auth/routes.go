package auth

import (
	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService *AuthService, logService *logs.LogService) {
	authController := &AuthController{AuthService: authService, LS: logService}

	group := r.Group("/api/admin")
	{
		group.POST("/login", authController.Login)
		group.POST("/logout", authController.Logout)
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middlewares.AdminAuthMiddleware())
	{
		adminGroup.GET("/me", authController.Me)
	}
}
