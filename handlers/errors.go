package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ticket-booking/models"
)

// toHTTPError maps the domain error taxonomy onto HTTP statuses:
// validation failures are 400, the seat capacity limit and late payment
// mutations are 409, unresolvable ids are 404.
func toHTTPError(err error) error {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{
			"code":  validationErr.Code,
			"field": validationErr.Field,
		})
	}

	switch {
	case errors.Is(err, models.ErrSeatLimit),
		errors.Is(err, models.ErrPaymentSubmitted):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrTicketTypeNotFound),
		errors.Is(err, models.ErrSeatNotFound),
		errors.Is(err, models.ErrSessionNotFound),
		errors.Is(err, models.ErrAppSessionNotFound),
		errors.Is(err, models.ErrPaymentNotFound),
		errors.Is(err, models.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, models.ErrNoSeatsSelected),
		errors.Is(err, models.ErrNoTicketType),
		errors.Is(err, models.ErrNoPaymentMethod),
		errors.Is(err, models.ErrUnknownMethod),
		errors.Is(err, models.ErrCardDetailsRequired),
		errors.Is(err, models.ErrStageTransition):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
