package shop

import (
	"strconv"
	"strings"

	domain "github.com/jackpyp/massage-shop-web/internal/domain/shop"
	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/validators"
)

// FormInput is the raw shop dialog submission as posted by the browser.
type FormInput struct {
	Name       string
	Address    string
	PriceLevel string
	Province   string
	Postalcode string
	Tel        string
	Picture    string
}

func parseForm(in FormInput) (domain.Submission, error) {
	fieldErrs := forms.Errors{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		fieldErrs.Add("name", "Name is required")
	}

	address := strings.TrimSpace(in.Address)
	if address == "" {
		fieldErrs.Add("address", "Address is required")
	}

	priceLevel, err := strconv.Atoi(in.PriceLevel)
	if err != nil || priceLevel < 0 {
		fieldErrs.Add("priceLevel", "Price level must be at least 0")
	}

	province := strings.TrimSpace(in.Province)
	if province == "" {
		fieldErrs.Add("province", "Province is required")
	}

	if !validators.IsPostalcode(in.Postalcode) {
		fieldErrs.Add("postalcode", "Postal code must be 5 digits")
	}

	if !validators.IsPhoneNumber(in.Tel) {
		fieldErrs.Add("tel", "Phone number must be numeric")
	}

	if !validators.IsPictureURL(in.Picture) {
		fieldErrs.Add("picture", "Picture must be a valid URL")
	}

	if fieldErrs.Any() {
		return domain.Submission{}, forms.NewValidationError(fieldErrs)
	}

	return domain.Submission{
		Name:       name,
		Address:    address,
		PriceLevel: priceLevel,
		Province:   province,
		Postalcode: in.Postalcode,
		Tel:        in.Tel,
		Picture:    in.Picture,
	}, nil
}
