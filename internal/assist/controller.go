package assist

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AssistController struct {
	AssistService *AssistService
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

// POST /api/assist
func (ac *AssistController) Ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answer, err := ac.AssistService.Ask(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"answer": answer})
}
