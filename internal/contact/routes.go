package contact

import (
	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, contactService *ContactService, logService *logs.LogService) {
	contactController := &ContactController{ContactService: contactService, LogService: logService}

	r.POST("/api/contact", contactController.Submit)

	adminGroup := r.Group("/api/contact")
	adminGroup.Use(middlewares.AdminAuthMiddleware())
	{
		adminGroup.GET("", contactController.List)
	}
}
