package catalog

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"safar-travel-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	Dashboard      Dashboard
	CatalogService *CatalogService
	LogService     *logs.LogService
}

// GET /<dashboard>
func (cc *CatalogController) List(c *gin.Context) {
	records, err := cc.CatalogService.List(cc.Dashboard)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Records fetched successfully",
		"records": records,
	})
}

// POST /<dashboard>: multipart form. An "id" field selects update, its
// absence selects create. The image arrives as the "image" file part.
func (cc *CatalogController) Save(c *gin.Context) {
	input, err := cc.parseSaveForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, created, err := cc.CatalogService.Save(c.Request.Context(), cc.Dashboard, *input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	action := "UPDATE"
	status := http.StatusOK
	if created {
		action = "CREATE"
		status = http.StatusCreated
	}

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "catalog",
		Action:  action,
		Message: fmt.Sprintf("%s record %d (%s) saved", cc.Dashboard.Kind, record.ID, record.Title),
	}
	if err := cc.LogService.Log(entry, record); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(status, gin.H{
		"message": "Record saved successfully",
		"record":  record,
	})
}

type toggleRequest struct {
	ID       *int  `json:"id" binding:"required"`
	IsActive *bool `json:"is_active" binding:"required"`
}

// PATCH /<dashboard> with body {id, is_active}; flips the flag, nothing else.
func (cc *CatalogController) ToggleActive(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := cc.CatalogService.ToggleActive(cc.Dashboard, *req.ID, *req.IsActive)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Record updated successfully",
		"record":  record,
	})
}

// DELETE /<dashboard>?id=...
func (cc *CatalogController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid id is required"})
		return
	}

	if err := cc.CatalogService.Delete(c.Request.Context(), cc.Dashboard, id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "catalog",
		Action:  "DELETE",
		Message: fmt.Sprintf("%s record %d deleted", cc.Dashboard.Kind, id),
	}
	if err := cc.LogService.Log(entry, gin.H{"id": id}); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

func (cc *CatalogController) parseSaveForm(c *gin.Context) (*SaveInput, error) {
	input := SaveInput{}

	if raw, ok := c.GetPostForm("id"); ok {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return nil, errors.New("invalid id")
		}
		input.ID = &id
	}

	if v, ok := c.GetPostForm("title"); ok {
		input.Title = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		input.Price = &v
	}
	if v, ok := c.GetPostForm("caption"); ok {
		input.Caption = &v
	}
	if v, ok := c.GetPostForm("category"); ok {
		input.Category = &v
	}

	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		f, err := fileHeader.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open uploaded image: %w", err)
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read uploaded image: %w", err)
		}

		input.Image = &ImageBlob{
			Data:        data,
			Filename:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	return &input, nil
}

func statusForError(err error) int {
	var ve *ValidationError
	var ue *UploadError
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ue):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
