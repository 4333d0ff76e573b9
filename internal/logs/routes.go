package logs

import (
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, logService *LogService) {
	logController := &LogController{LogService: logService}

	adminGroup := r.Group("/api/logs")
	adminGroup.Use(middlewares.AdminAuthMiddleware())
	{
		adminGroup.GET("", logController.GetLogs)
	}
}
