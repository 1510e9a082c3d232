package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ticket-booking/services"
)

type SeatHandler struct {
	seats *services.SeatService
}

func NewSeatHandler(seats *services.SeatService) *SeatHandler {
	return &SeatHandler{seats: seats}
}

// CreateSession opens a seat-map session for an event. Availability is
// randomized at this point and held for the session's lifetime.
func (h *SeatHandler) CreateSession(c echo.Context) error {
	seatMap, err := h.seats.CreateSession(c.Param("eventId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, seatMap)
}

func (h *SeatHandler) GetSession(c echo.Context) error {
	seatMap, err := h.seats.Session(c.Param("sessionId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, seatMap)
}

func (h *SeatHandler) ToggleSeat(c echo.Context) error {
	var req struct {
		SeatID string `json:"seat_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	seatMap, err := h.seats.Toggle(c.Param("sessionId"), req.SeatID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, seatMap)
}

// Review confirms the seat selection together with a ticket tier and
// returns the hand-off for the contact stage.
func (h *SeatHandler) Review(c echo.Context) error {
	var req struct {
		TicketTypeID string `json:"ticket_type_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	review, err := h.seats.Review(c.Param("sessionId"), req.TicketTypeID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, review)
}

func (h *SeatHandler) CloseSession(c echo.Context) error {
	if err := h.seats.CloseSession(c.Param("sessionId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
