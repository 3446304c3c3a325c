package shop

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/shop"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// CREATE
// ======================================================

type Create struct {
	gw    domain.Gateway
	audit *audit.Dispatcher
}

func NewCreate(gw domain.Gateway, audit *audit.Dispatcher) *Create {
	return &Create{gw: gw, audit: audit}
}

func (uc *Create) Execute(
	ctx context.Context,
	token string,
	userID string,
	in FormInput,
) (*models.Shop, error) {

	sub, err := parseForm(in)
	if err != nil {
		return nil, err
	}

	created, err := uc.gw.CreateShop(ctx, token, sub)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   userID,
		Action:   "shop_created",
		Entity:   "shop",
		EntityID: created.ID,
	})

	return created, nil
}
