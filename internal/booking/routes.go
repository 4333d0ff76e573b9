package booking

import (
	"safar-travel-api/internal/logs"
	"safar-travel-api/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, bookingService *BookingService, logService *logs.LogService) {
	bookingController := &BookingController{BookingService: bookingService, LogService: logService}

	r.GET("/api/trips", bookingController.ListTrips)
	r.POST("/api/bookings", bookingController.CreateBooking)

	tripAdmin := r.Group("/api/trips")
	tripAdmin.Use(middlewares.AdminAuthMiddleware())
	{
		tripAdmin.GET("/all", bookingController.ListAllTrips)
		tripAdmin.POST("", bookingController.SaveTrip)
		tripAdmin.DELETE("", bookingController.DeleteTrip)
	}

	bookingAdmin := r.Group("/api/bookings")
	bookingAdmin.Use(middlewares.AdminAuthMiddleware())
	{
		bookingAdmin.GET("", bookingController.ListBookings)
		bookingAdmin.GET("/export", bookingController.ExportBookings)
		bookingAdmin.GET("/stats", bookingController.TripStats)
	}
}
