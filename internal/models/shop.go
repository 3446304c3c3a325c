package models

type Shop struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	PriceLevel int    `json:"priceLevel"`
	Province   string `json:"province"`
	Postalcode string `json:"postalcode"`
	Tel        string `json:"tel"`
	Picture    string `json:"picture"`
}
