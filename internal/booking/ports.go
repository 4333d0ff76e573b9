package booking

import "context"

type BookingServicePort interface {
	ListTrips(includeUnpublished bool) ([]Trip, error)
	SaveTrip(ctx context.Context, in TripInput) (*Trip, bool, error)
	DeleteTrip(ctx context.Context, id int) error
	CreateBooking(in BookingInput) (*Booking, error)
	ListBookings() ([]BookingRow, error)
	ExportBookings() (contentType, filename string, out []byte, err error)
	TripStats() ([]TripStat, error)
}

var _ BookingServicePort = (*BookingService)(nil)
