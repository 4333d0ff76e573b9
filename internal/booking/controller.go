package booking

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"safar-travel-api/internal/logs"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingService *BookingService
	LogService     *logs.LogService
}

// GET /api/trips
func (bc *BookingController) ListTrips(c *gin.Context) {
	trips, err := bc.BookingService.ListTrips(false)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trips fetched successfully",
		"records": trips,
	})
}

// GET /api/trips/all, drafts included.
func (bc *BookingController) ListAllTrips(c *gin.Context) {
	trips, err := bc.BookingService.ListTrips(true)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Trips fetched successfully",
		"records": trips,
	})
}

// POST /api/trips: multipart form, "id" selects update.
func (bc *BookingController) SaveTrip(c *gin.Context) {
	input, err := bc.parseTripForm(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	trip, created, err := bc.BookingService.SaveTrip(c.Request.Context(), *input)
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
		Service: "booking",
		Action:  action,
		Message: fmt.Sprintf("trip %d (%s) saved", trip.ID, trip.Title),
	}
	if err := bc.LogService.Log(entry, trip); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(status, gin.H{
		"message": "Trip saved successfully",
		"record":  trip,
	})
}

// DELETE /api/trips?id=...
func (bc *BookingController) DeleteTrip(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "valid id is required"})
		return
	}

	if err := bc.BookingService.DeleteTrip(c.Request.Context(), id); err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "booking",
		Action:  "DELETE",
		Message: fmt.Sprintf("trip %d deleted", id),
	}
	if err := bc.LogService.Log(entry, gin.H{"id": id}); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// POST /api/bookings
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bc.BookingService.CreateBooking(input)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}

	entry := logs.SystemLog{
		Level:   "INFO",
		Service: "booking",
		Action:  "BOOK",
		Message: fmt.Sprintf("booking %d for trip %d (%d seats)", booking.ID, booking.TripID, booking.Seats),
	}
	if err := bc.LogService.Log(entry, booking); err != nil {
		fmt.Printf("Failed to insert log: %v\n", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Booking created successfully",
		"record":  booking,
	})
}

// GET /api/bookings
func (bc *BookingController) ListBookings(c *gin.Context) {
	rows, err := bc.BookingService.ListBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Bookings fetched successfully",
		"records": rows,
	})
}

// GET /api/bookings/export
func (bc *BookingController) ExportBookings(c *gin.Context) {
	contentType, filename, out, err := bc.BookingService.ExportBookings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, out)
}

// GET /api/bookings/stats
func (bc *BookingController) TripStats(c *gin.Context) {
	stats, err := bc.BookingService.TripStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stats fetched successfully",
		"records": stats,
	})
}

func (bc *BookingController) parseTripForm(c *gin.Context) (*TripInput, error) {
	input := TripInput{}

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
	if v, ok := c.GetPostForm("destination"); ok {
		input.Destination = &v
	}
	if v, ok := c.GetPostForm("start_date"); ok {
		input.StartDate = &v
	}
	if v, ok := c.GetPostForm("end_date"); ok {
		input.EndDate = &v
	}
	if v, ok := c.GetPostForm("price"); ok {
		input.Price = &v
	}
	if v, ok := c.GetPostForm("seats"); ok {
		input.Seats = &v
	}
	if v, ok := c.GetPostForm("published"); ok {
		input.Published = &v
	}
	if vs, ok := c.GetPostFormArray("highlights"); ok {
		input.Highlights = vs
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
