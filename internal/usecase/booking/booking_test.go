package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackpyp/massage-shop-web/internal/audit"
	domain "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/forms"
	"github.com/jackpyp/massage-shop-web/internal/httperr"
	"github.com/jackpyp/massage-shop-web/internal/models"
)

// spyGateway counts calls so tests can assert nothing was sent when
// validation fails.
type spyGateway struct {
	bookings []models.Booking
	listErr  error

	createCalls int
	createErr   error
	lastShopID  string
	lastSub     domain.Submission

	updateCalls int
	deleteCalls int
	deleteErr   error
	lastID      string
}

func (s *spyGateway) ListBookings(_ context.Context, _ string) ([]models.Booking, error) {
	return s.bookings, s.listErr
}

func (s *spyGateway) CreateBooking(_ context.Context, _ string, shopID string, sub domain.Submission) (*models.Booking, error) {
	s.createCalls++
	s.lastShopID = shopID
	s.lastSub = sub
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &models.Booking{ID: "new", User: sub.UserID, ServiceMinute: sub.ServiceMinute}, nil
}

func (s *spyGateway) UpdateBooking(_ context.Context, _ string, bookingID string, sub domain.Submission) (*models.Booking, error) {
	s.updateCalls++
	s.lastID = bookingID
	s.lastSub = sub
	return &models.Booking{ID: bookingID, User: sub.UserID, ServiceMinute: sub.ServiceMinute}, nil
}

func (s *spyGateway) DeleteBooking(_ context.Context, _ string, bookingID string) error {
	s.deleteCalls++
	s.lastID = bookingID
	return s.deleteErr
}

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.LogSink{})
}

func TestCreateRejectsBadDurationBeforeAnyNetworkCall(t *testing.T) {
	gw := &spyGateway{}
	uc := NewCreate(gw, testDispatcher())

	_, err := uc.Execute(context.Background(), "tok", CreateInput{
		Form: FormInput{
			BookingDate:   "2026-09-10T14:00",
			ServiceMinute: "45",
			ShopID:        "s1",
		},
		UserID: "123",
	})

	require.Error(t, err)
	ve, ok := forms.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "serviceMinute")
	assert.Equal(t, 0, gw.createCalls, "validation failure must not reach the API")
}

func TestCreateRejectsMissingDateAndShop(t *testing.T) {
	gw := &spyGateway{}
	uc := NewCreate(gw, testDispatcher())

	_, err := uc.Execute(context.Background(), "tok", CreateInput{
		Form:   FormInput{ServiceMinute: "60"},
		UserID: "123",
	})

	ve, ok := forms.AsValidation(err)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "bookingDate")
	assert.Contains(t, ve.Fields, "shopId")
	assert.Equal(t, 0, gw.createCalls)
}

func TestCreateSubmitsParsedForm(t *testing.T) {
	gw := &spyGateway{}
	uc := NewCreate(gw, testDispatcher())

	created, err := uc.Execute(context.Background(), "tok", CreateInput{
		Form: FormInput{
			BookingDate:   "2026-09-10T14:00",
			ServiceMinute: "90",
			ShopID:        "s1",
		},
		UserID: "123",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.createCalls)
	assert.Equal(t, "s1", gw.lastShopID)
	assert.Equal(t, 90, gw.lastSub.ServiceMinute)
	assert.Equal(t, "123", gw.lastSub.UserID)
	assert.Equal(t, "new", created.ID)
}

func TestCreatePassesBookingCapErrorThrough(t *testing.T) {
	gw := &spyGateway{
		createErr: httperr.NewAPIError(400, "The user with ID 123 has already made 3 bookings"),
	}
	uc := NewCreate(gw, testDispatcher())

	_, err := uc.Execute(context.Background(), "tok", CreateInput{
		Form: FormInput{
			BookingDate:   "2026-09-10T14:00",
			ServiceMinute: "60",
			ShopID:        "s1",
		},
		UserID: "123",
	})

	require.Error(t, err)
	assert.True(t, httperr.IsBookingLimit(err))
}

func TestUpdateDoesNotRequireShop(t *testing.T) {
	gw := &spyGateway{}
	uc := NewUpdate(gw, testDispatcher())

	_, err := uc.Execute(context.Background(), "tok", UpdateInput{
		BookingID: "b1",
		Form: FormInput{
			BookingDate:   "2026-09-11T10:30",
			ServiceMinute: "120",
		},
		UserID: "123",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, gw.updateCalls)
	assert.Equal(t, "b1", gw.lastID)
	assert.Equal(t, 120, gw.lastSub.ServiceMinute)
}

func TestListVisibleFiltersByOwnerUnlessAdmin(t *testing.T) {
	gw := &spyGateway{bookings: []models.Booking{
		{ID: "b1", User: "123"},
		{ID: "b2", User: "456"},
	}}
	uc := NewListVisible(gw)

	mine, err := uc.Execute(context.Background(), "tok", &models.User{ID: "123", Role: models.RoleUser})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "b1", mine[0].ID)

	everything, err := uc.Execute(context.Background(), "tok", &models.User{ID: "admin", Role: models.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, everything, 2)
}

func TestDeleteReturnsGatewayError(t *testing.T) {
	gw := &spyGateway{deleteErr: errors.New("boom")}
	uc := NewDelete(gw, testDispatcher())

	err := uc.Execute(context.Background(), "tok", "123", "b1")
	require.Error(t, err)
	assert.Equal(t, 1, gw.deleteCalls)
	assert.Equal(t, "b1", gw.lastID)
}
