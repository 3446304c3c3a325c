package booking

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// UPDATE
// ======================================================

type UpdateInput struct {
	BookingID string
	Form      FormInput
	UserID    string
}

type Update struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewUpdate(gw domain.Gateway, audit *audit.Dispatcher) *Update {
	return &Update{gw: gw, audit: audit}
}

func (uc *Update) Execute(
	ctx context.Context,
	token string,
	in UpdateInput,
) (*models.Booking, error) {

	// Edits keep the booking on its shop, so the shop field is not required.
	sub, err := parseForm(in.Form, in.UserID, false)
	if err != nil {
		return nil, err
	}

	updated, err := uc.gw.UpdateBooking(ctx, token, in.BookingID, sub)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: in.BookingID,
	})

	return updated, nil
}
