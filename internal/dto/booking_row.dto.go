package dto

import (
	"fmt"

	"github.com/jackpyp/massage-shop-web/internal/models"
	"github.com/jackpyp/massage-shop-web/internal/timezone"
)

// BookingRowDTO is what the booking list template renders per row.
type BookingRowDTO struct {
	ID            string
	Label         string
	ShopName      string
	ShopID        string
	OwnerID       string
	BookingDate   string // datetime-local value for the edit dialog
	ServiceMinute int
}

func BookingRow(b models.Booking) BookingRowDTO {
	local := b.BookingDate.In(timezone.Location(timezone.DefaultTimezone))

	return BookingRowDTO{
		ID: b.ID,
		Label: fmt.Sprintf(
			"Booking on %s - %d mins",
			local.Format("2 Jan 2006 15:04"),
			b.ServiceMinute,
		),
		ShopName:      b.Shop.Name,
		ShopID:        b.Shop.ID,
		OwnerID:       b.User,
		BookingDate:   local.Format("2006-01-02T15:04"),
		ServiceMinute: b.ServiceMinute,
	}
}

func BookingRows(bookings []models.Booking) []BookingRowDTO {
	rows := make([]BookingRowDTO, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, BookingRow(b))
	}
	return rows
}
