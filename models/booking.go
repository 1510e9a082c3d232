package models

import (
	"time"
)

type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PriceBreakdown is a pure function of (seatCount, tierPrice); each derived
// amount is rounded independently before summation.
type PriceBreakdown struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Taxes      float64 `json:"taxes"`
	Total      float64 `json:"total"`
}

// BookingParams is the typed record threaded forward at each stage
// transition of the pipeline. Contact and Total are filled in by the
// review stage before checkout.
type BookingParams struct {
	EventID      string       `json:"event_id"`
	SeatIDs      []string     `json:"seat_ids"`
	TicketTypeID string       `json:"ticket_type_id"`
	Contact      *ContactInfo `json:"contact,omitempty"`
	Total        float64      `json:"total,omitempty"`
}

// Booking is the terminal, immutable record produced after successful
// payment simulation.
type Booking struct {
	ID               string         `json:"booking_id"`
	ConfirmationCode string         `json:"confirmation_code"`
	Event            Event          `json:"event"`
	SeatIDs          []string       `json:"seat_ids"`
	TicketType       TicketType     `json:"ticket_type"`
	Contact          ContactInfo    `json:"contact"`
	Breakdown        PriceBreakdown `json:"breakdown"`
	BookedAt         time.Time      `json:"booked_at"`
}
