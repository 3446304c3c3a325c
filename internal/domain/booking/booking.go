package booking

import (
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// ===============================
// Domain Rules
// ===============================

// AllowedDurations are the only massage lengths the platform sells.
var AllowedDurations = []int{60, 90, 120}

func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if minutes == d {
			return true
		}
	}
	return false
}

// VisibleTo reports whether a booking row belongs in the given user's list.
// Admins see everything; everyone else sees only what they own.
func VisibleTo(b models.Booking, u *models.User) bool {
	if u == nil {
		return false
	}
	return b.User == u.ID || u.IsAdmin()
}

// Visible filters a fetched list down to the rows the user may see.
func Visible(all []models.Booking, u *models.User) []models.Booking {
	out := make([]models.Booking, 0, len(all))
	for _, b := range all {
		if VisibleTo(b, u) {
			out = append(out, b)
		}
	}
	return out
}
