package shop

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/shop"
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

func (uc *Delete) Execute(ctx context.Context, token, userID, shopID string) error {
	if err := uc.gw.DeleteShop(ctx, token, shopID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "shop_deleted",
		Entity:   "shop",
		EntityID: shopID,
	})

	return nil
}
