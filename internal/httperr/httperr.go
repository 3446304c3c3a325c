package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-2xx reply from the platform API. Message is whatever
// the server put in its error body; Status is the HTTP status code.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api: status %d", e.Status)
	}
	return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
}

func NewAPIError(status int, message string) *APIError {
	return &APIError{Status: status, Message: message}
}

// bookingLimitMarker is the fragment the platform API puts in its error
// message when a user already holds 3 concurrent bookings.
const bookingLimitMarker = "has already made 3 bookings"

// IsBookingLimit reports whether err is the server rejecting a booking
// because of the 3-booking cap. Detection is by message substring; the API
// exposes no structured code for it.
func IsBookingLimit(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return strings.Contains(ae.Message, bookingLimitMarker)
}

func IsUnauthorized(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusUnauthorized
}

func IsNotFound(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusNotFound
}
