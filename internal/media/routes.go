package media

import (
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, auditService *AuditService) {
	mediaController := &MediaController{AuditService: auditService}

	adminGroup := r.Group("/api/media")
	adminGroup.Use(middlewares.AdminAuthMiddleware())
	{
		adminGroup.GET("/audit", mediaController.Audit)
	}
}
