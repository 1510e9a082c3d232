package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ticket-booking/models"
	"ticket-booking/services"
)

type SessionHandler struct {
	sessions *services.SessionService
}

func NewSessionHandler(sessions *services.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Start opens an app session at the splash stage; it auto-advances to the
// catalog after the splash delay.
func (h *SessionHandler) Start(c echo.Context) error {
	return c.JSON(http.StatusCreated, h.sessions.Start())
}

func (h *SessionHandler) GetSession(c echo.Context) error {
	session, err := h.sessions.Session(c.Param("sessionId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Advance(c echo.Context) error {
	var req struct {
		Stage models.Stage `json:"stage"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	session, err := h.sessions.Advance(c.Param("sessionId"), req.Stage)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) Close(c echo.Context) error {
	if err := h.sessions.Close(c.Param("sessionId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
