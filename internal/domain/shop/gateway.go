package shop

import (
	"context"

	"github.com/jackpyp/massage-shop-web/internal/models"
)

// Submission is the payload sent to the platform API when creating or
// updating a shop record.
type Submission struct {
	Name       string
	Address    string
	PriceLevel int
	Province   string
	Postalcode string
	Tel        string
	Picture    string
}

type Gateway interface {
	ListShops(
		ctx context.Context,
		token string,
	) ([]models.Shop, error)

	CreateShop(
		ctx context.Context,
		token string,
		sub Submission,
	) (*models.Shop, error)

	UpdateShop(
		ctx context.Context,
		token string,
		shopID string,
		sub Submission,
	) (*models.Shop, error)

	DeleteShop(
		ctx context.Context,
		token string,
		shopID string,
	) error
}
