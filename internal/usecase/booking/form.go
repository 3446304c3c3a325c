package booking

import (
	"strconv"
	"time"

	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/timezone"
)

// datetimeLocal is what an <input type="datetime-local"> submits.
const datetimeLocal = "2006-01-02T15:04"

// FormInput is the raw booking dialog submission, all strings, exactly as
// posted by the browser.
type FormInput struct {
	BookingDate   string
	ServiceMinute string
	ShopID        string
}

// parseForm validates the dialog fields and returns the parsed submission.
// It runs entirely locally; no network call happens until it passes.
func parseForm(in FormInput, userID string, requireShop bool) (domain.Submission, error) {
	fieldErrs := forms.Errors{}

	var date time.Time
	if in.BookingDate == "" {
		fieldErrs.Add("bookingDate", "Booking date is required")
	} else {
		parsed, err := time.ParseInLocation(
			datetimeLocal,
			in.BookingDate,
			timezone.Location(timezone.DefaultTimezone),
		)
		if err != nil {
			parsed, err = time.Parse(time.RFC3339, in.BookingDate)
		}
		if err != nil {
			fieldErrs.Add("bookingDate", "Invalid date format")
		} else {
			date = parsed
		}
	}

	minutes, err := strconv.Atoi(in.ServiceMinute)
	if err != nil || !domain.IsAllowedDuration(minutes) {
		fieldErrs.Add("serviceMinute", "Service minute must be 60, 90, or 120")
	}

	if requireShop && in.ShopID == "" {
		fieldErrs.Add("shopId", "Shop is required")
	}

	if fieldErrs.Any() {
		return domain.Submission{}, forms.NewValidationError(fieldErrs)
	}

	return domain.Submission{
		BookingDate:   date,
		ServiceMinute: minutes,
		UserID:        userID,
	}, nil
}
