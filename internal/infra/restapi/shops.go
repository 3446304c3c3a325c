package restapi

import (
	"context"
	"net/http"

	"github.com/jackpyp/massage-shop-web/internal/domain/shop"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

type shopRequest struct {
	Name       string `json:"name"`
	Address    string `json:"address"`
	PriceLevel int    `json:"priceLevel"`
	Province   string `json:"province"`
	Postalcode string `json:"postalcode"`
	Tel        string `json:"tel"`
	Picture    string `json:"picture"`
}

func shopRequestFrom(sub shop.Submission) shopRequest {
	return shopRequest{
		Name:       sub.Name,
		Address:    sub.Address,
		PriceLevel: sub.PriceLevel,
		Province:   sub.Province,
		Postalcode: sub.Postalcode,
		Tel:        sub.Tel,
		Picture:    sub.Picture,
	}
}

func (c *Client) ListShops(ctx context.Context, token string) ([]models.Shop, error) {
	var out listEnvelope[models.Shop]
	if err := c.do(ctx, token, http.MethodGet, "/shops", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (c *Client) CreateShop(
	ctx context.Context,
	token string,
	sub shop.Submission,
) (*models.Shop, error) {

	var out entityEnvelope[models.Shop]
	err := c.do(ctx, token, http.MethodPost, "/shops", shopRequestFrom(sub), &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) UpdateShop(
	ctx context.Context,
	token string,
	shopID string,
	sub shop.Submission,
) (*models.Shop, error) {

	var out entityEnvelope[models.Shop]
	err := c.do(ctx, token, http.MethodPut, "/shops/"+shopID, shopRequestFrom(sub), &out)
	if err != nil {
		return nil, err
	}
	return &out.Data, nil
}

func (c *Client) DeleteShop(ctx context.Context, token, shopID string) error {
	return c.do(ctx, token, http.MethodDelete, "/shops/"+shopID, nil, nil)
}
