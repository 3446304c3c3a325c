package restapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackpyp/massage-shop-web/internal/config"
	domainBooking "github.com/jackpyp/massage-shop-web/internal/domain/booking"
	"github.com/jackpyp/massage-shop-web/internal/httperr"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&config.Config{
		APIBaseURL: srv.URL,
		APITimeout: 5 * time.Second,
	})
}

func TestMeForwardsBearerToken(t *testing.T) {
	var gotAuth string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/auth/me", r.URL.Path)
		w.Write([]byte(`{"data":{"_id":"123","name":"Test User","email":"t@e.com","tel":"0812345678","role":"user"}}`))
	})

	user, err := client.Me(context.Background(), "tok-abc")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "123", user.ID)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, "user", user.Role)
}

func TestLoginReturnsToken(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "u@e.com", body["email"])

		w.Write([]byte(`{"token":"issued-token"}`))
	})

	token, err := client.Login(context.Background(), "u@e.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "issued-token", token)
}

func TestListShopsDecodesEnvelope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/shops", r.URL.Path)
		w.Write([]byte(`{"data":[
			{"id":"s1","name":"Lotus Spa","province":"Bangkok","postalcode":"10110"},
			{"id":"s2","name":"Chill Massage","province":"Chiang Mai","postalcode":"50000"}
		]}`))
	})

	shops, err := client.ListShops(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, shops, 2)
	assert.Equal(t, "Lotus Spa", shops[0].Name)
	assert.Equal(t, "s2", shops[1].ID)
}

func TestCreateBookingPostsToShopScope(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/shops/s1/bookings", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(90), body["serviceMinute"])
		assert.Equal(t, "123", body["user"])

		w.Write([]byte(`{"data":{"_id":"b9","serviceMinute":90,"user":"123"}}`))
	})

	created, err := client.CreateBooking(context.Background(), "tok", "s1", domainBooking.Submission{
		BookingDate:   time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC),
		ServiceMinute: 90,
		UserID:        "123",
	})
	require.NoError(t, err)
	assert.Equal(t, "b9", created.ID)
}

func TestErrorBodyBecomesAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"The user with ID 123 has already made 3 bookings"}`))
	})

	_, err := client.CreateBooking(context.Background(), "tok", "s1", domainBooking.Submission{
		BookingDate:   time.Now(),
		ServiceMinute: 60,
		UserID:        "123",
	})
	require.Error(t, err)

	assert.True(t, httperr.IsBookingLimit(err))
	assert.False(t, httperr.IsUnauthorized(err))
}

func TestUnauthorizedMapsToAPIError(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_token"}`))
	})

	_, err := client.Me(context.Background(), "stale")
	require.Error(t, err)
	assert.True(t, httperr.IsUnauthorized(err))
	assert.False(t, httperr.IsBookingLimit(err))
}

func TestDeleteShopSendsDelete(t *testing.T) {
	var gotMethod, gotPath string
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"data":{}}`))
	})

	require.NoError(t, client.DeleteShop(context.Background(), "tok", "s1"))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/shops/s1", gotPath)
}
