package models

import "time"

// Booking carries the shop embedded, the owner only by id. That asymmetry
// is how the platform API serializes it.
type Booking struct {
	ID            string    `json:"_id"`
	BookingDate   time.Time `json:"bookingDate"`
	ServiceMinute int       `json:"serviceMinute"`
	User          string    `json:"user"`
	Shop          Shop      `json:"shop"`
	CreatedAt     time.Time `json:"createdAt"`
}
