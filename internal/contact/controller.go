package contact

import (
	"errors"
	"fmt"
	"net/http"

	"safar-travel-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	ContactService *ContactService
	LogService     *logs.LogService
}

// POST /api/contact
func (cc *ContactController) Submit(c *gin.Context) {
	var input SubmitInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := cc.ContactService.Submit(input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "contact",
		Action:  "SUBMIT",
		Message: fmt.Sprintf("contact message %d received from %s", record.ID, record.Email),
	}
	if err := cc.LogService.Log(entry, record); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message submitted successfully",
		"record":  record,
	})
}

// GET /api/contact
func (cc *ContactController) List(c *gin.Context) {
	messages, err := cc.ContactService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Messages fetched successfully",
		"records": messages,
	})
}

func statusForError(err error) int {
	var ve *ValidationError
	var ue *UpstreamError
	switch {
	case errors.Is(err, ErrCaptchaFailed):
		return http.StatusBadRequest
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ue):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
