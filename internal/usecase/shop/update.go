package shop

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/shop"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// UPDATE
// ======================================================

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
	userID string,
	shopID string,
	in FormInput,
) (*models.Shop, error) {

	sub, err := parseForm(in)
	if err != nil {
		return nil, err
	}

	updated, err := uc.gw.UpdateShop(ctx, token, shopID, sub)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "shop_updated",
		Entity:   "shop",
		EntityID: shopID,
	})

	return updated, nil
}
