package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ticket-booking/models"
	"ticket-booking/services"
)

type BookingHandler struct {
	booking *services.BookingService
}

func NewBookingHandler(booking *services.BookingService) *BookingHandler {
	return &BookingHandler{booking: booking}
}

// Review validates the contact details against the seat-stage hand-off and
// returns the price breakdown plus the forward params for checkout.
func (h *BookingHandler) Review(c echo.Context) error {
	var req struct {
		EventID      string             `json:"event_id"`
		SeatIDs      []string           `json:"seat_ids"`
		TicketTypeID string             `json:"ticket_type_id"`
		Contact      models.ContactInfo `json:"contact"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	review, err := h.booking.Review(models.BookingParams{
		EventID:      req.EventID,
		SeatIDs:      req.SeatIDs,
		TicketTypeID: req.TicketTypeID,
	}, req.Contact)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// ListBookings returns this session's booking history, oldest first.
func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings := h.booking.Bookings()
	return c.JSON(http.StatusOK, map[string]any{
		"bookings": bookings,
		"count":    len(bookings),
	})
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.booking.Booking(c.Param("bookingId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

// The three actions below are stubbed platform integrations; they log and
// acknowledge.

func (h *BookingHandler) DownloadTickets(c echo.Context) error {
	if err := h.booking.DownloadTickets(c.Param("bookingId")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *BookingHandler) AddToCalendar(c echo.Context) error {
	if err := h.booking.AddToCalendar(c.Param("bookingId")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}

func (h *BookingHandler) ShareBooking(c echo.Context) error {
	if err := h.booking.ShareBooking(c.Param("bookingId")); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusAccepted, map[string]string{"status": "accepted"})
}
