package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-booking/models"
)

type fakeIntegrations struct {
	calls []string
}

func (f *fakeIntegrations) DownloadTickets(*models.Booking) error {
	f.calls = append(f.calls, "download")
	return nil
}

func (f *fakeIntegrations) AddToCalendar(*models.Booking) error {
	f.calls = append(f.calls, "calendar")
	return nil
}

func (f *fakeIntegrations) ShareBooking(*models.Booking) error {
	f.calls = append(f.calls, "share")
	return nil
}

func TestBookingService_ValidateContact(t *testing.T) {
	_, _, _, booking, _ := newTestStack(testConfig())

	tests := []struct {
		name      string
		contact   models.ContactInfo
		wantField string
		wantCode  string
	}{
		{
			name:      "missing name reported first",
			contact:   models.ContactInfo{Name: "", Email: "a@b.com", Phone: "555"},
			wantField: "name",
			wantCode:  models.ValidationMissingField,
		},
		{
			name:      "missing email",
			contact:   models.ContactInfo{Name: "A", Email: "", Phone: "555"},
			wantField: "email",
			wantCode:  models.ValidationMissingField,
		},
		{
			name:      "missing phone",
			contact:   models.ContactInfo{Name: "A", Email: "a@b.com", Phone: ""},
			wantField: "phone",
			wantCode:  models.ValidationMissingField,
		},
		{
			name:      "bad email format checked last",
			contact:   models.ContactInfo{Name: "A", Email: "not-an-email", Phone: "555"},
			wantField: "email",
			wantCode:  models.ValidationInvalidEmailFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := booking.ValidateContact(tt.contact)
			var validationErr *models.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			assert.Equal(t, tt.wantCode, validationErr.Code)
		})
	}

	assert.NoError(t, booking.ValidateContact(models.ContactInfo{Name: "A", Email: "a@b.com", Phone: "555"}))
}

func TestBookingService_Review(t *testing.T) {
	_, _, _, booking, _ := newTestStack(testConfig())

	params := models.BookingParams{
		EventID:      "1",
		SeatIDs:      []string{"D1", "D2"},
		TicketTypeID: "2",
	}

	review, err := booking.Review(params, validContact())
	require.NoError(t, err)

	// Two seats under VIP (180): subtotal 360, fee 36, taxes round(28.8)=29.
	assert.Equal(t, 360.0, review.Breakdown.Subtotal)
	assert.Equal(t, 36.0, review.Breakdown.ServiceFee)
	assert.Equal(t, 29.0, review.Breakdown.Taxes)
	assert.Equal(t, 425.0, review.Breakdown.Total)

	// The forward hand-off carries the literal contact and the total.
	require.NotNil(t, review.Params.Contact)
	assert.Equal(t, validContact(), *review.Params.Contact)
	assert.Equal(t, 425.0, review.Params.Total)
}

func TestBookingService_Review_Failures(t *testing.T) {
	_, _, _, booking, _ := newTestStack(testConfig())

	_, err := booking.Review(models.BookingParams{EventID: "missing", SeatIDs: []string{"D1"}, TicketTypeID: "1"}, validContact())
	assert.ErrorIs(t, err, models.ErrEventNotFound)

	_, err = booking.Review(models.BookingParams{EventID: "1", TicketTypeID: "1"}, validContact())
	assert.ErrorIs(t, err, models.ErrNoSeatsSelected)

	_, err = booking.Review(models.BookingParams{EventID: "1", SeatIDs: []string{"D1"}, TicketTypeID: "1"}, models.ContactInfo{})
	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestBookingService_Confirm(t *testing.T) {
	_, _, _, booking, _ := newTestStack(testConfig())

	contact := validContact()
	confirmed, err := booking.Confirm(models.BookingParams{
		EventID:      "1",
		SeatIDs:      []string{"D1", "D2"},
		TicketTypeID: "2",
		Contact:      &contact,
		Total:        425,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(confirmed.ID, "TK"))
	assert.Len(t, confirmed.ConfirmationCode, 8)
	assert.Equal(t, "Midnight Jazz Session", confirmed.Event.Title)
	assert.Equal(t, []string{"D1", "D2"}, confirmed.SeatIDs)
	assert.Equal(t, 425.0, confirmed.Breakdown.Total)
	assert.False(t, confirmed.BookedAt.IsZero())

	fetched, err := booking.Booking(confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmed, fetched)

	_, err = booking.Booking("TK0")
	assert.ErrorIs(t, err, models.ErrBookingNotFound)
}

func TestBookingService_Confirm_RequiresContact(t *testing.T) {
	_, _, _, booking, _ := newTestStack(testConfig())

	_, err := booking.Confirm(models.BookingParams{
		EventID:      "1",
		SeatIDs:      []string{"D1"},
		TicketTypeID: "1",
	})
	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "contact", validationErr.Field)
}

func TestBookingService_IntegrationActions(t *testing.T) {
	cfg := testConfig()
	catalog, pricing, _, _, _ := newTestStack(cfg)

	fake := &fakeIntegrations{}
	booking := NewBookingService(catalog, pricing, fake, newTestStackMonitor(), newTestStackLogger())

	contact := validContact()
	confirmed, err := booking.Confirm(models.BookingParams{
		EventID:      "1",
		SeatIDs:      []string{"A1"},
		TicketTypeID: "1",
		Contact:      &contact,
	})
	require.NoError(t, err)

	require.NoError(t, booking.DownloadTickets(confirmed.ID))
	require.NoError(t, booking.AddToCalendar(confirmed.ID))
	require.NoError(t, booking.ShareBooking(confirmed.ID))
	assert.Equal(t, []string{"download", "calendar", "share"}, fake.calls)

	assert.ErrorIs(t, booking.DownloadTickets("TK0"), models.ErrBookingNotFound)
}
