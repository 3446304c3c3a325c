package booking

import (
	"context"
	"time"

	"github.com/jackpyp/massage-shop-web/internal/models"
)

// Submission is the payload sent to the platform API when creating or
// updating a booking.
type Submission struct {
	BookingDate   time.Time
	ServiceMinute int
	UserID        string
}

// Gateway is what the booking usecases need from the platform API. The
// bearer token is an explicit argument on every call so the credential is
// always read from the live session, never captured at construction time.
type Gateway interface {
	ListBookings(
		ctx context.Context,
		token string,
	) ([]models.Booking, error)

	CreateBooking(
		ctx context.Context,
		token string,
		shopID string,
		sub Submission,
	) (*models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		token string,
		bookingID string,
		sub Submission,
	) (*models.Booking, error)

	DeleteBooking(
		ctx context.Context,
		token string,
		bookingID string,
	) error
}
