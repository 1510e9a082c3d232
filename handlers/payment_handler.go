package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"ticket-booking/models"
	"ticket-booking/services"
)

type PaymentHandler struct {
	payments *services.PaymentService
}

func NewPaymentHandler(payments *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

func (h *PaymentHandler) ListMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"methods": h.payments.Methods(),
	})
}

// CreateSession opens a checkout session from the review-stage hand-off.
func (h *PaymentHandler) CreateSession(c echo.Context) error {
	var req models.BookingParams
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	view, err := h.payments.CreateSession(req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, view)
}

func (h *PaymentHandler) GetSession(c echo.Context) error {
	view, err := h.payments.Session(c.Param("sessionId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *PaymentHandler) SelectMethod(c echo.Context) error {
	var req struct {
		MethodID string `json:"method_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	view, err := h.payments.SelectMethod(c.Param("sessionId"), req.MethodID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *PaymentHandler) SetCardDetails(c echo.Context) error {
	var req models.CardDetails
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	view, err := h.payments.SetCardDetails(c.Param("sessionId"), req)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, view)
}

// Submit starts the simulated processing window. Callers poll the session
// until it reports confirmed.
func (h *PaymentHandler) Submit(c echo.Context) error {
	view, err := h.payments.Submit(c.Param("sessionId"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusAccepted, view)
}

func (h *PaymentHandler) CloseSession(c echo.Context) error {
	if err := h.payments.CloseSession(c.Param("sessionId")); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
