package catalog

import (
	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts all four dashboards. Reads are public; writes are
// admin-only.
func RegisterRoutes(r *gin.Engine, catalogService *CatalogService, logService *logs.LogService) {
	for _, dashboard := range Dashboards {
		controller := &CatalogController{
			Dashboard:      dashboard,
			CatalogService: catalogService,
			LogService:     logService,
		}

		group := r.Group(dashboard.RouteBase)
		{
			group.GET("", controller.List)
		}

		adminGroup := r.Group(dashboard.RouteBase)
		adminGroup.Use(middlewares.AdminAuthMiddleware())
		{
			adminGroup.POST("", controller.Save)
			adminGroup.PATCH("", controller.ToggleActive)
			adminGroup.DELETE("", controller.Delete)
		}
	}
}
