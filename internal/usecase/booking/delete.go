package booking

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
)

// ======================================================
// DELETE
// ======================================================

type Delete struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewDelete(gw domain.Gateway, audit *audit.Dispatcher) *Delete {
	return &Delete{gw: gw, audit: audit}
}

// Execute removes the booking remotely. Callers drop the row from the view
// only after this succeeds; a failed delete leaves it in place and the
// failure is surfaced to the visitor.
func (uc *Delete) Execute(ctx context.Context, token, userID, bookingID string) error {
	if err := uc.gw.DeleteBooking(ctx, token, bookingID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: bookingID,
	})

	return nil
}
