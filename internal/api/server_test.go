package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelothai/travelothai-api/internal/api"
	"github.com/travelothai/travelothai-api/internal/config"
	"github.com/travelothai/travelothai-api/internal/domain"
)

func newTestServer(t *testing.T) *api.Server {
	t.Helper()

	conf := &config.AppConfig{
		API: &config.APIConfig{
			Environment:   "test",
			JWTSigningKey: "test-signing-key",
			UseMock:       true,
		},
		Gin: &config.GinConfig{Mode: gin.TestMode},
	}

	return api.NewServer(conf, nil)
}

func doRequest(t *testing.T, s *api.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

// createProvince sets up a category and a province through the API and
// returns the province ID.
func createProvince(t *testing.T, s *api.Server) uint {
	t.Helper()

	rec := doRequest(t, s, http.MethodPost, "/v1/provinces/categories", gin.H{"name": "Beach"})
	require.Equal(t, http.StatusCreated, rec.Code)
	category := decodeBody[domain.ProvinceCategory](t, rec)

	rec = doRequest(t, s, http.MethodPost, "/v1/provinces/", gin.H{
		"name":        "Phuket",
		"category_id": category.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	return decodeBody[domain.Province](t, rec).ID
}

func TestHealthcheck(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())
}

func TestHotelCRUD(t *testing.T) {
	s := newTestServer(t)
	provinceID := createProvince(t, s)

	rec := doRequest(t, s, http.MethodPost, "/v1/hotels/", gin.H{
		"name":        "Riverside Resort",
		"province_id": provinceID,
		"price":       1500.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	hotel := decodeBody[domain.Hotel](t, rec)
	assert.Equal(t, "Riverside Resort", hotel.Name)
	assert.Equal(t, 1500.0, hotel.Price)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/v1/hotels/%d", hotel.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, hotel.ID, decodeBody[domain.Hotel](t, rec).ID)

	rec = doRequest(t, s, http.MethodGet, "/v1/hotels/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]domain.Hotel](t, rec), 1)

	rec = doRequest(t, s, http.MethodPut, fmt.Sprintf("/v1/hotels/%d", hotel.ID), gin.H{
		"name":        "Riverside Resort & Spa",
		"province_id": provinceID,
		"price":       1800.0,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1800.0, decodeBody[domain.Hotel](t, rec).Price)

	rec = doRequest(t, s, http.MethodDelete, fmt.Sprintf("/v1/hotels/%d", hotel.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/v1/hotels/%d", hotel.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Hotel not found"}`, rec.Body.String())
}

func TestCreateHotelValidation(t *testing.T) {
	s := newTestServer(t)
	provinceID := createProvince(t, s)

	rec := doRequest(t, s, http.MethodPost, "/v1/hotels/", gin.H{
		"name":        "Free Stay",
		"province_id": provinceID,
		"price":       0.0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/v1/hotels/", gin.H{
		"name":        "Nowhere Inn",
		"province_id": 999,
		"price":       100.0,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Province not found"}`, rec.Body.String())
}

func TestCampaignRegistrationEndToEnd(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/v1/tickets/types", gin.H{"name": "Hotel Voucher"})
	require.Equal(t, http.StatusCreated, rec.Code)
	ticketType := decodeBody[domain.TicketType](t, rec)

	rec = doRequest(t, s, http.MethodPost, "/v1/tickets/campaigns", gin.H{
		"name":       "Songkran Sale",
		"limit":      2,
		"start_date": time.Now().Format(time.RFC3339),
		"end_date":   time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	campaign := decodeBody[domain.TicketCampaign](t, rec)
	assert.True(t, campaign.IsActive)

	rec = doRequest(t, s, http.MethodPost, "/v1/tickets/campaigns/ticket-types", gin.H{
		"campaign_id":     campaign.ID,
		"ticket_type_id":  ticketType.ID,
		"amount":          3,
		"expiration_date": time.Now().AddDate(0, 3, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	registerPath := fmt.Sprintf("/v1/tickets/campaigns/register/%d", campaign.ID)
	for i := 0; i < 2; i++ {
		rec = doRequest(t, s, http.MethodPost, registerPath, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "true", rec.Body.String())
	}

	// The limit is spent, the third registration must bounce.
	rec = doRequest(t, s, http.MethodPost, registerPath, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/v1/tickets/campaigns/%d", campaign.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, decodeBody[domain.TicketCampaign](t, rec).Registered)

	rec = doRequest(t, s, http.MethodGet, "/v1/tickets/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	tickets := decodeBody[[]domain.Ticket](t, rec)
	require.Len(t, tickets, 2)
	for _, ticket := range tickets {
		assert.Nil(t, ticket.UserID)
		assert.Equal(t, 3, ticket.Amount)
	}

	rec = doRequest(t, s, http.MethodPost, "/v1/tickets/campaigns/register/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Campaign not found"}`, rec.Body.String())
}

func TestToggleCampaignEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/v1/tickets/campaigns", gin.H{
		"name":       "Toggle",
		"start_date": time.Now().Format(time.RFC3339),
		"end_date":   time.Now().AddDate(0, 1, 0).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	campaign := decodeBody[domain.TicketCampaign](t, rec)

	togglePath := fmt.Sprintf("/v1/tickets/campaigns/is-active/%d", campaign.ID)
	rec = doRequest(t, s, http.MethodPut, togglePath, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/v1/tickets/campaigns/%d", campaign.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decodeBody[domain.TicketCampaign](t, rec).IsActive)
}

func TestBookingEndpoints(t *testing.T) {
	s := newTestServer(t)
	provinceID := createProvince(t, s)

	rec := doRequest(t, s, http.MethodPost, "/v1/hotels/", gin.H{
		"name":        "Seaside",
		"province_id": provinceID,
		"price":       1000.0,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	hotel := decodeBody[domain.Hotel](t, rec)

	rec = doRequest(t, s, http.MethodPost, "/v1/bookings/", gin.H{
		"hotel_id": hotel.ID,
		"user_id":  1,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	booking := decodeBody[domain.Booking](t, rec)
	assert.Equal(t, 1000.0, booking.FinalPrice)
	assert.Equal(t, domain.BookingStatusBooking, booking.Status)

	newDate := time.Now().AddDate(0, 0, 21).UTC().Truncate(time.Second)
	rec = doRequest(t, s, http.MethodPost, fmt.Sprintf("/v1/bookings/%d/reschedule", booking.ID), gin.H{
		"new_travel_date": newDate.Format(time.RFC3339),
		"reason":          "flight moved",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "true", rec.Body.String())

	rec = doRequest(t, s, http.MethodGet, fmt.Sprintf("/v1/bookings/%d/reschedule-logs", booking.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	logs := decodeBody[[]domain.BookingRescheduleLog](t, rec)
	require.Len(t, logs, 1)
	assert.Equal(t, "flight moved", logs[0].Reason)

	rec = doRequest(t, s, http.MethodPut, fmt.Sprintf("/v1/bookings/%d/cancel", booking.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.BookingStatusCancelled, decodeBody[domain.Booking](t, rec).Status)

	rec = doRequest(t, s, http.MethodGet, "/v1/bookings/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"detail": "Booking not found"}`, rec.Body.String())
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	rec := doRequest(t, s, http.MethodPost, "/v1/auth/signup", gin.H{
		"username":         "somsak",
		"email":            "somsak@example.com",
		"password":         "secret-pass1",
		"confirm_password": "secret-pass1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	user := decodeBody[domain.User](t, rec)
	assert.Equal(t, "somsak", user.Username)

	rec = doRequest(t, s, http.MethodPost, "/v1/auth/token", gin.H{
		"login":    "somsak",
		"password": "secret-pass1",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var login struct {
		Token string      `json:"token"`
		User  domain.User `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	req := httptest.NewRequest(http.MethodGet, "/v1/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	authRec := httptest.NewRecorder()
	s.Router.ServeHTTP(authRec, req)
	require.Equal(t, http.StatusOK, authRec.Code)
	assert.Equal(t, user.ID, decodeBody[domain.User](t, authRec).ID)

	rec = doRequest(t, s, http.MethodGet, "/v1/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, s, http.MethodPost, "/v1/auth/token", gin.H{
		"login":    "somsak",
		"password": "wrong-pass1",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"detail": "wrong credentials"}`, rec.Body.String())
}
