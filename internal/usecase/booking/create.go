package booking

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type CreateInput struct {
	Form   FormInput
	UserID string
}

type Create struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewCreate(gw domain.Gateway, audit *audit.Dispatcher) *Create {
	return &Create{gw: gw, audit: audit}
}

// Execute validates the dialog, then creates the booking scoped to the
// chosen shop. Validation failures come back as *forms.ValidationError
// before anything hits the network; the 3-booking cap comes back as the
// API error and is mapped by the caller.
func (uc *Create) Execute(
	ctx context.Context,
	token string,
	in CreateInput,
) (*models.Booking, error) {

	sub, err := parseForm(in.Form, in.UserID, true)
	if err != nil {
		return nil, err
	}

	created, err := uc.gw.CreateBooking(ctx, token, in.Form.ShopID, sub)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: created.ID,
	})

	return created, nil
}
