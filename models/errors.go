package models

import (
	"errors"
	"fmt"
)

var (
	ErrEventNotFound      = errors.New("event not found")
	ErrTicketTypeNotFound = errors.New("ticket type not found")
	ErrSeatNotFound       = errors.New("seat not found")
	ErrSessionNotFound    = errors.New("seat session not found")
	ErrAppSessionNotFound = errors.New("session not found")
	ErrPaymentNotFound    = errors.New("payment session not found")
	ErrBookingNotFound    = errors.New("booking not found")
)

var (
	ErrSeatLimit           = errors.New("seat selection limit reached")
	ErrNoSeatsSelected     = errors.New("no seats selected")
	ErrNoTicketType        = errors.New("no ticket type selected")
	ErrNoPaymentMethod     = errors.New("no payment method selected")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrCardDetailsRequired = errors.New("card details required")
	ErrPaymentSubmitted    = errors.New("payment already submitted")
	ErrStageTransition     = errors.New("invalid stage transition")
)

const (
	ValidationMissingField       = "missing_field"
	ValidationInvalidEmailFormat = "invalid_email_format"
)

// ValidationError reports which contact field failed and why. Checks run in
// a fixed order (name, email, phone, then email format), so the first
// failing field wins.
type ValidationError struct {
	Field string
	Code  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Field)
}
