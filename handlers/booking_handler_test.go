package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-booking/services"
)

func TestBookingHandler_Review(t *testing.T) {
	h := newTestHandlers(testConfig())

	body := `{
		"event_id": "1",
		"seat_ids": ["D1", "D2"],
		"ticket_type_id": "2",
		"contact": {"name": "Alice Example", "email": "alice@example.com", "phone": "555-0100"}
	}`
	c, rec := newTestContext(http.MethodPost, "/api/bookings/review", body)
	require.NoError(t, h.booking.Review(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var review services.BookingReview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &review))
	assert.Equal(t, float64(360), review.Breakdown.Subtotal)
	assert.Equal(t, float64(36), review.Breakdown.ServiceFee)
	assert.Equal(t, float64(29), review.Breakdown.Taxes)
	assert.Equal(t, float64(425), review.Breakdown.Total)
	require.NotNil(t, review.Params.Contact)
	assert.Equal(t, float64(425), review.Params.Total)
}

func TestBookingHandler_Review_InvalidEmail(t *testing.T) {
	h := newTestHandlers(testConfig())

	body := `{
		"event_id": "1",
		"seat_ids": ["D1"],
		"ticket_type_id": "1",
		"contact": {"name": "Alice Example", "email": "not-an-email", "phone": "555-0100"}
	}`
	c, _ := newTestContext(http.MethodPost, "/api/bookings/review", body)
	err := h.booking.Review(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"code":  "invalid_email_format",
		"field": "email",
	}, httpErr.Message)
}

func TestBookingHandler_GetBooking_NotFound(t *testing.T) {
	h := newTestHandlers(testConfig())

	c, _ := newTestContext(http.MethodGet, "/api/bookings/TK0", "", "bookingId", "TK0")
	err := h.booking.GetBooking(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}

func TestBookingHandler_ListBookings_Empty(t *testing.T) {
	h := newTestHandlers(testConfig())

	c, rec := newTestContext(http.MethodGet, "/api/bookings", "")
	require.NoError(t, h.booking.ListBookings(c))

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}
