package booking

import (
	"context"

	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// LIST VISIBLE
// ======================================================

// ListVisible fetches the full booking list and keeps only the rows the
// current user may see: their own, or everything for admins. The API has no
// server-side scoping, so the filter always runs here.
type ListVisible struct {
	gw domain.Gateway
}

func NewListVisible(gw domain.Gateway) *ListVisible {
	return &ListVisible{gw: gw}
}

func (uc *ListVisible) Execute(
	ctx context.Context,
	token string,
	user *models.User,
) ([]models.Booking, error) {

	all, err := uc.gw.ListBookings(ctx, token)
	if err != nil {
		return nil, err
	}

	return domain.Visible(all, user), nil
}
