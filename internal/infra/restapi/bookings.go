package restapi

import (
	"context"
	"net/http"
	"time"

	"github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

type bookingRequest struct {
	BookingDate   string `json:"bookingDate"`
	ServiceMinute int    `json:"serviceMinute"`
	User          string `json:"user"`
}

func bookingRequestFrom(sub booking.Submission) bookingRequest {
	return bookingRequest{
		BookingDate:   sub.BookingDate.Format(time.RFC3339),
		ServiceMinute: sub.ServiceMinute,
		User:          sub.UserID,
	}
}

func (c *Client) ListBookings(ctx context.Context, token string) ([]models.Booking, error) {
	var out listEnvelope[models.Booking]
	if err := c.do(ctx, token, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// CreateBooking is scoped to a shop: POST /shops/{shopId}/bookings.
func (c *Client) CreateBooking(
	ctx context.Context,
	token string,
	shopID string,
	sub booking.Submission,
) (*models.Booking, error) {

	var out entityEnvelope[models.Booking]
	err := c.do(
		ctx, token, http.MethodPost,
		"/shops/"+shopID+"/bookings",
		bookingRequestFrom(sub), &out,
	)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateBooking(
	ctx context.Context,
	token string,
	bookingID string,
	sub booking.Submission,
) (*models.Booking, error) {

	var out entityEnvelope[models.Booking]
	err := c.do(
		ctx, token, http.MethodPut,
		"/bookings/"+bookingID,
		bookingRequestFrom(sub), &out,
	)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token, bookingID string) error {
	return c.do(ctx, token, http.MethodDelete, "/bookings/"+bookingID, nil, nil)
}
