package shop

import (
	"context"

	domain "github.com/jackpyp/massage-shop-web/internal/domain/shop"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ======================================================
// LIST
// ======================================================

// List fetches the shop catalog. The same list feeds the public grid and
// the back-office table; the API does not scope it by caller.
type List struct {
	gw domain.Gateway
}

func NewList(gw domain.Gateway) *List {
	return &List{gw: gw}
}

func (uc *List) Execute(ctx context.Context, token string) ([]models.Shop, error) {
	return uc.gw.ListShops(ctx, token)
}
