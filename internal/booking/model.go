package booking

import (
	"time"

	"github.com/lib/pq"
)

type Trip struct {
	ID             int            `gorm:"primaryKey" json:"id"`
	Title          string         `gorm:"not null" json:"title"`
	Destination    string         `gorm:"not null" json:"destination"`
	StartDate      string         `json:"startDate"`
	EndDate        string         `json:"endDate"`
	Price          float64        `json:"price"`
	SeatsTotal     int            `json:"seatsTotal"`
	SeatsAvailable int            `json:"seatsAvailable"`
	Highlights     pq.StringArray `gorm:"type:text[]" json:"highlights"`
	MediaURL       string         `json:"mediaUrl"`
	MediaObjectID  string         `json:"mediaObjectId"`
	Published      bool           `gorm:"default:false" json:"published"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (Trip) TableName() string {
	return "trips"
}

type Booking struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	TripID    int       `gorm:"not null;index" json:"tripId"`
	FullName  string    `gorm:"not null" json:"fullName"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Seats     int       `gorm:"not null" json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

// ImageBlob is the uploaded trip image as it arrives from the form.
type ImageBlob struct {
	Data        []byte
	Filename    string
	ContentType string
}

// TripInput carries the trip form. Pointer fields distinguish "supplied"
// from "absent" so updates only touch the fields the form sent.
type TripInput struct {
	ID          *int
	Title       *string
	Destination *string
	StartDate   *string
	EndDate     *string
	Price       *string
	Seats       *string
	Highlights  []string
	Published   *string
	Image       *ImageBlob
}

type BookingInput struct {
	TripID   int    `json:"trip_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Seats    int    `json:"seats"`
}

// BookingRow is a booking joined with its trip title, for listing and export.
type BookingRow struct {
	ID        int       `json:"id"`
	TripID    int       `json:"tripId"`
	TripTitle string    `json:"tripTitle"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Seats     int       `json:"seats"`
	CreatedAt time.Time `json:"createdAt"`
}

// TripStat aggregates booking demand per trip.
type TripStat struct {
	TripID      int    `json:"tripId"`
	Title       string `json:"title"`
	Bookings    int    `json:"bookings"`
	SeatsBooked int    `json:"seatsBooked"`
}
