package services

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"sync"
	"time"

	"ticket-booking/models"
	"ticket-booking/monitoring"
	"ticket-booking/utils"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Integrations is the port for the stubbed platform side effects. The
// default implementation only logs; tests inject fakes.
type Integrations interface {
	DownloadTickets(booking *models.Booking) error
	AddToCalendar(booking *models.Booking) error
	ShareBooking(booking *models.Booking) error
}

type LogIntegrations struct {
	Logger *slog.Logger
}

func (l *LogIntegrations) DownloadTickets(booking *models.Booking) error {
	l.Logger.Info("download tickets", "booking_id", booking.ID)
	return nil
}

func (l *LogIntegrations) AddToCalendar(booking *models.Booking) error {
	l.Logger.Info("add to calendar", "booking_id", booking.ID, "event", booking.Event.Title)
	return nil
}

func (l *LogIntegrations) ShareBooking(booking *models.Booking) error {
	l.Logger.Info("share booking", "booking_id", booking.ID)
	return nil
}

// BookingReview is the contact-stage result: validated params plus the
// deterministic price breakdown.
type BookingReview struct {
	Params     models.BookingParams  `json:"params"`
	Event      models.Event          `json:"event"`
	TicketType models.TicketType     `json:"ticket_type"`
	Breakdown  models.PriceBreakdown `json:"breakdown"`
}

// BookingService validates contact details, computes the review-stage
// breakdown and creates the terminal booking record.
type BookingService struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking

	catalog      *CatalogService
	pricing      *PricingService
	integrations Integrations
	monitor      *monitoring.Monitor
	logger       *slog.Logger
}

func NewBookingService(catalog *CatalogService, pricing *PricingService, integrations Integrations, monitor *monitoring.Monitor, logger *slog.Logger) *BookingService {
	return &BookingService{
		bookings:     make(map[string]*models.Booking),
		catalog:      catalog,
		pricing:      pricing,
		integrations: integrations,
		monitor:      monitor,
		logger:       logger,
	}
}

// ValidateContact checks the contact fields in a fixed order: name, email,
// phone presence, then email format. Input is preserved literally; no
// trimming or casing normalization happens here.
func (s *BookingService) ValidateContact(contact models.ContactInfo) error {
	if contact.Name == "" {
		return &models.ValidationError{Field: "name", Code: models.ValidationMissingField}
	}
	if contact.Email == "" {
		return &models.ValidationError{Field: "email", Code: models.ValidationMissingField}
	}
	if contact.Phone == "" {
		return &models.ValidationError{Field: "phone", Code: models.ValidationMissingField}
	}
	if !emailPattern.MatchString(contact.Email) {
		return &models.ValidationError{Field: "email", Code: models.ValidationInvalidEmailFormat}
	}
	return nil
}

// Review validates the contact details and attaches them, with the
// computed total, to the forward hand-off.
func (s *BookingService) Review(params models.BookingParams, contact models.ContactInfo) (*BookingReview, error) {
	event, err := s.catalog.EventByID(params.EventID)
	if err != nil {
		return nil, err
	}
	if len(params.SeatIDs) == 0 {
		return nil, models.ErrNoSeatsSelected
	}
	tier, err := s.pricing.TicketTypeByID(event, params.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if err := s.ValidateContact(contact); err != nil {
		return nil, err
	}

	breakdown := s.pricing.Breakdown(len(params.SeatIDs), tier.Price)

	params.Contact = &contact
	params.Total = breakdown.Total

	return &BookingReview{
		Params:     params,
		Event:      *event,
		TicketType: tier,
		Breakdown:  breakdown,
	}, nil
}

// Confirm creates the immutable booking record at the end of the payment
// stage. Params must carry the contact collected at review.
func (s *BookingService) Confirm(params models.BookingParams) (*models.Booking, error) {
	event, err := s.catalog.EventByID(params.EventID)
	if err != nil {
		return nil, err
	}
	tier, err := s.pricing.TicketTypeByID(event, params.TicketTypeID)
	if err != nil {
		return nil, err
	}
	if params.Contact == nil {
		return nil, &models.ValidationError{Field: "contact", Code: models.ValidationMissingField}
	}

	// Short check-in code printed on the confirmation screen.
	code, err := utils.GenerateCode(4)
	if err != nil {
		return nil, fmt.Errorf("generate confirmation code: %w", err)
	}

	booking := &models.Booking{
		ID:               utils.NewBookingID(time.Now()),
		ConfirmationCode: code,
		Event:            *event,
		SeatIDs:          append([]string(nil), params.SeatIDs...),
		TicketType:       tier,
		Contact:          *params.Contact,
		Breakdown:        s.pricing.Breakdown(len(params.SeatIDs), tier.Price),
		BookedAt:         time.Now(),
	}

	s.mu.Lock()
	s.bookings[booking.ID] = booking
	s.mu.Unlock()

	s.monitor.BookingConfirmed()
	s.monitor.TrackOperation("confirm_booking", "success")
	s.logger.Info("booking confirmed",
		"booking_id", booking.ID,
		"event_id", event.ID,
		"seats", len(booking.SeatIDs),
		"total", booking.Breakdown.Total,
	)

	return booking, nil
}

func (s *BookingService) Booking(bookingID string) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking, ok := s.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking %q: %w", bookingID, models.ErrBookingNotFound)
	}
	return booking, nil
}

// Bookings lists every booking confirmed in this session, oldest first.
func (s *BookingService) Bookings() []*models.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookings := make([]*models.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].BookedAt.Before(bookings[j].BookedAt)
	})
	return bookings
}

func (s *BookingService) DownloadTickets(bookingID string) error {
	booking, err := s.Booking(bookingID)
	if err != nil {
		return err
	}
	return s.integrations.DownloadTickets(booking)
}

func (s *BookingService) AddToCalendar(bookingID string) error {
	booking, err := s.Booking(bookingID)
	if err != nil {
		return err
	}
	return s.integrations.AddToCalendar(booking)
}

func (s *BookingService) ShareBooking(bookingID string) error {
	booking, err := s.Booking(bookingID)
	if err != nil {
		return err
	}
	return s.integrations.ShareBooking(booking)
}
