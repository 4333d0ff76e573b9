package media

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type MediaController struct {
	AuditService *AuditService
}

// GET /api/media/audit?prefix=...
func (mc *MediaController) Audit(c *gin.Context) {
	result, err := mc.AuditService.Audit(c.Request.Context(), c.Query("prefix"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Media audit completed",
		"audit":   result,
	})
}
