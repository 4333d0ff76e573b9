package booking

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"

	"safar-travel-api/internal/media"

	"github.com/lib/pq"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type BookingService struct {
	DB    *gorm.DB
	Media media.Store
}

// ListTrips returns published trips for the public site; admins see every
// trip including drafts.
func (bs *BookingService) ListTrips(includeUnpublished bool) ([]Trip, error) {
	query := bs.DB.Order("created_at DESC")
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var trips []Trip
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// SaveTrip creates a new trip when input carries no id, otherwise updates
// the existing one. Returns the saved trip and whether it was created.
func (bs *BookingService) SaveTrip(ctx context.Context, in TripInput) (*Trip, bool, error) {
	if in.ID == nil {
		trip, err := bs.createTrip(ctx, in)
		return trip, true, err
	}
	trip, err := bs.updateTrip(ctx, in)
	return trip, false, err
}

func (bs *BookingService) createTrip(ctx context.Context, in TripInput) (*Trip, error) {
	title, destination, price, seats, published, err := validateTripFields(in, true)
	if err != nil {
		return nil, err
	}

	trip := Trip{
		Title:          title,
		Destination:    destination,
		Highlights:     pq.StringArray(in.Highlights),
		Published:      published,
		Price:          price,
		SeatsTotal:     seats,
		SeatsAvailable: seats,
	}
	if in.StartDate != nil {
		trip.StartDate = strings.TrimSpace(*in.StartDate)
	}
	if in.EndDate != nil {
		trip.EndDate = strings.TrimSpace(*in.EndDate)
	}

	if in.Image != nil {
		objectID := media.ObjectName("trips", title, in.Image.Filename, in.Image.ContentType)
		url, err := bs.Media.Upload(ctx, in.Image.Data, tripImageContentType(in.Image), objectID)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		trip.MediaURL = url
		trip.MediaObjectID = objectID
	}

	if err := bs.DB.Create(&trip).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

func (bs *BookingService) updateTrip(ctx context.Context, in TripInput) (*Trip, error) {
	var trip Trip
	if err := bs.DB.First(&trip, *in.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	_, _, _, _, _, err := validateTripFields(in, false)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	title := trip.Title
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
		updates["title"] = title
	}
	if in.Destination != nil {
		updates["destination"] = strings.TrimSpace(*in.Destination)
	}
	if in.StartDate != nil {
		updates["start_date"] = strings.TrimSpace(*in.StartDate)
	}
	if in.EndDate != nil {
		updates["end_date"] = strings.TrimSpace(*in.EndDate)
	}
	if in.Price != nil {
		parsed, _ := strconv.ParseFloat(strings.TrimSpace(*in.Price), 64)
		updates["price"] = parsed
	}
	if in.Seats != nil {
		// Adjusting capacity keeps already-booked seats accounted for.
		parsed, _ := strconv.Atoi(strings.TrimSpace(*in.Seats))
		booked := trip.SeatsTotal - trip.SeatsAvailable
		if parsed < booked {
			return nil, invalidf("seats cannot be lower than the %d already booked", booked)
		}
		updates["seats_total"] = parsed
		updates["seats_available"] = parsed - booked
	}
	if in.Highlights != nil {
		updates["highlights"] = pq.StringArray(in.Highlights)
	}
	if in.Published != nil {
		parsed, err := strconv.ParseBool(strings.TrimSpace(*in.Published))
		if err != nil {
			return nil, invalidf("published must be true or false")
		}
		updates["published"] = parsed
	}

	if in.Image != nil {
		if trip.MediaObjectID != "" {
			bs.deleteMedia(ctx, &trip)
		}
		objectID := media.ObjectName("trips", title, in.Image.Filename, in.Image.ContentType)
		url, err := bs.Media.Upload(ctx, in.Image.Data, tripImageContentType(in.Image), objectID)
		if err != nil {
			return nil, &UploadError{Err: err}
		}
		updates["media_url"] = url
		updates["media_object_id"] = objectID
	}

	if len(updates) > 0 {
		if err := bs.DB.Model(&trip).Updates(updates).Error; err != nil {
			return nil, err
		}
	}

	var saved Trip
	if err := bs.DB.First(&saved, *in.ID).Error; err != nil {
		return nil, err
	}
	return &saved, nil
}

func (bs *BookingService) DeleteTrip(ctx context.Context, id int) error {
	var trip Trip
	if err := bs.DB.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	bs.deleteMedia(ctx, &trip)

	return bs.DB.Delete(&trip).Error
}

// CreateBooking checks seat availability with a plain read then writes the
// decrement back. Two simultaneous bookings can both pass the check; the
// window is accepted for this traffic level.
func (bs *BookingService) CreateBooking(in BookingInput) (*Booking, error) {
	if in.TripID <= 0 {
		return nil, invalidf("trip_id is required")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, invalidf("full_name is required")
	}
	email := strings.TrimSpace(in.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, invalidf("a valid email is required")
	}
	if in.Seats <= 0 {
		return nil, invalidf("seats must be at least 1")
	}

	var trip Trip
	if err := bs.DB.First(&trip, in.TripID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !trip.Published {
		return nil, ErrNotFound
	}
	if in.Seats > trip.SeatsAvailable {
		return nil, invalidf("only %d seats available", trip.SeatsAvailable)
	}

	booking := Booking{
		TripID:   trip.ID,
		FullName: strings.TrimSpace(in.FullName),
		Email:    email,
		Phone:    strings.TrimSpace(in.Phone),
		Seats:    in.Seats,
	}
	if err := bs.DB.Create(&booking).Error; err != nil {
		return nil, err
	}

	if err := bs.DB.Model(&trip).
		Update("seats_available", trip.SeatsAvailable-in.Seats).Error; err != nil {
		return nil, err
	}

	return &booking, nil
}

func (bs *BookingService) ListBookings() ([]BookingRow, error) {
	var rows []BookingRow
	err := bs.DB.Table("bookings b").
		Select("b.id, b.trip_id, t.title AS trip_title, b.full_name, b.email, b.phone, b.seats, b.created_at").
		Joins("LEFT JOIN trips t ON t.id = b.trip_id").
		Order("b.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportBookings renders the booking list as an xlsx workbook.
func (bs *BookingService) ExportBookings() (contentType, filename string, out []byte, err error) {
	rows, err := bs.ListBookings()
	if err != nil {
		return "", "", nil, err
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Bookings")
	_ = f.SetSheetRow("Bookings", "A1", &[]interface{}{
		"id", "trip", "full_name", "email", "phone", "seats", "created_at",
	})

	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow("Bookings", cell, &[]interface{}{
			row.ID, row.TripTitle, row.FullName, row.Email, row.Phone, row.Seats,
			row.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "bookings.xlsx", b.Bytes(), nil
}

// TripStats aggregates booking counts and seats booked per trip.
func (bs *BookingService) TripStats() ([]TripStat, error) {
	var stats []TripStat
	err := bs.DB.Raw(`
		SELECT t.id AS trip_id, t.title, COUNT(b.id) AS bookings, COALESCE(SUM(b.seats), 0) AS seats_booked
		FROM trips t
		LEFT JOIN bookings b ON b.trip_id = t.id
		GROUP BY t.id, t.title
		ORDER BY seats_booked DESC`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (bs *BookingService) deleteMedia(ctx context.Context, trip *Trip) {
	if trip.MediaObjectID == "" {
		return
	}
	if err := bs.Media.Delete(ctx, trip.MediaObjectID); err != nil {
		log.Printf("failed to delete media object %s for trip %d: %v",
			trip.MediaObjectID, trip.ID, err)
	}
}

func validateTripFields(in TripInput, create bool) (title, destination string, price float64, seats int, published bool, err error) {
	if in.Title != nil {
		title = strings.TrimSpace(*in.Title)
	}
	if create && title == "" {
		return "", "", 0, 0, false, invalidf("title is required")
	}
	if !create && in.Title != nil && title == "" {
		return "", "", 0, 0, false, invalidf("title cannot be empty")
	}

	if in.Destination != nil {
		destination = strings.TrimSpace(*in.Destination)
	}
	if create && destination == "" {
		return "", "", 0, 0, false, invalidf("destination is required")
	}
	if !create && in.Destination != nil && destination == "" {
		return "", "", 0, 0, false, invalidf("destination cannot be empty")
	}

	if in.Price != nil {
		parsed, perr := strconv.ParseFloat(strings.TrimSpace(*in.Price), 64)
		if perr != nil || parsed <= 0 {
			return "", "", 0, 0, false, invalidf("price must be greater than 0")
		}
		price = parsed
	} else if create {
		return "", "", 0, 0, false, invalidf("price is required")
	}

	if in.Seats != nil {
		parsed, serr := strconv.Atoi(strings.TrimSpace(*in.Seats))
		if serr != nil || parsed <= 0 {
			return "", "", 0, 0, false, invalidf("seats must be greater than 0")
		}
		seats = parsed
	} else if create {
		return "", "", 0, 0, false, invalidf("seats is required")
	}

	if in.Published != nil {
		parsed, perr := strconv.ParseBool(strings.TrimSpace(*in.Published))
		if perr != nil {
			return "", "", 0, 0, false, invalidf("published must be true or false")
		}
		published = parsed
	}

	return title, destination, price, seats, published, nil
}

func tripImageContentType(img *ImageBlob) string {
	if img.ContentType != "" {
		return img.ContentType
	}
	return "image/jpeg"
}
