package assist

import (
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, assistService *AssistService) {
	assistController := &AssistController{AssistService: assistService}

	adminGroup := r.Group("/api/assist")
	adminGroup.Use(middlewares.AdminAuthMiddleware())
	{
		adminGroup.POST("", assistController.Ask)
	}
}
