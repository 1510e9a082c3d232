package services

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"ticket-booking/config"
	"ticket-booking/models"
	"ticket-booking/monitoring"
)

// SeatMap is the snapshot of a seat-map session handed to the caller.
// Seats carry the transient IsSelected flag; SelectedSeatIDs preserves
// insertion order.
type SeatMap struct {
	SessionID       string         `json:"session_id"`
	EventID         string         `json:"event_id"`
	Seats           []models.Seat  `json:"seats"`
	SelectedSeatIDs []string       `json:"selected_seat_ids"`
}

// SeatReview is the hand-off produced when a seat selection and ticket
// tier are confirmed together.
type SeatReview struct {
	Params     models.BookingParams `json:"params"`
	TicketType models.TicketType    `json:"ticket_type"`
	Total      float64              `json:"total"`
}

type seatSession struct {
	id        string
	eventID   string
	basePrice float64
	seats     []models.Seat
	selected  []string // seat ids in insertion order
	createdAt time.Time
}

// SeatService owns seat-map sessions. A session generates its seat grid
// exactly once and holds it for the session's lifetime; availability is
// reshuffled only when a new session is created.
type SeatService struct {
	mu       sync.Mutex
	sessions map[string]*seatSession

	catalog *CatalogService
	pricing *PricingService
	cfg     *config.Config
	monitor *monitoring.Monitor
	logger  *slog.Logger
}

func NewSeatService(catalog *CatalogService, pricing *PricingService, cfg *config.Config, monitor *monitoring.Monitor, logger *slog.Logger) *SeatService {
	return &SeatService{
		sessions: make(map[string]*seatSession),
		catalog:  catalog,
		pricing:  pricing,
		cfg:      cfg,
		monitor:  monitor,
		logger:   logger,
	}
}

// CreateSession opens a seat-map session for an event: the grid structure
// is deterministic, availability is randomized per seat at generation time.
func (s *SeatService) CreateSession(eventID string) (*SeatMap, error) {
	event, err := s.catalog.EventByID(eventID)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	session := &seatSession{
		id:        uuid.NewString(),
		eventID:   event.ID,
		basePrice: event.Price.Min,
		seats:     s.generateSeats(event.Price.Min, rng),
		createdAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.monitor.SeatSessionOpened()
	s.logger.Debug("seat session opened", "session_id", session.id, "event_id", event.ID)

	return session.snapshot(), nil
}

func (s *SeatService) Session(sessionID string) (*SeatMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}
	return session.snapshot(), nil
}

// Toggle flips a seat's membership in the selection. Unavailable seats are
// a silent no-op. Adding beyond the per-booking limit fails and leaves the
// selection unchanged.
func (s *SeatService) Toggle(sessionID, seatID string) (*SeatMap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	seat := session.seat(seatID)
	if seat == nil {
		return nil, fmt.Errorf("seat %q: %w", seatID, models.ErrSeatNotFound)
	}
	if !seat.IsAvailable {
		// Disabled seats are not interactive; not an error.
		return session.snapshot(), nil
	}

	if seat.IsSelected {
		seat.IsSelected = false
		session.deselect(seatID)
		return session.snapshot(), nil
	}

	if len(session.selected) >= s.cfg.MaxSeatsPerBooking {
		return nil, models.ErrSeatLimit
	}

	seat.IsSelected = true
	session.selected = append(session.selected, seatID)
	return session.snapshot(), nil
}

// Review validates the stage's exit condition (at least one seat and a
// ticket tier chosen) and produces the forward hand-off plus the combined
// selection total.
func (s *SeatService) Review(sessionID, ticketTypeID string) (*SeatReview, error) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, models.ErrSessionNotFound
	}
	if len(session.selected) == 0 {
		s.mu.Unlock()
		return nil, models.ErrNoSeatsSelected
	}
	seatIDs := append([]string(nil), session.selected...)
	selectedSeats := session.selectedSeats()
	eventID := session.eventID
	basePrice := session.basePrice
	s.mu.Unlock()

	event, err := s.catalog.EventByID(eventID)
	if err != nil {
		return nil, err
	}
	tier, err := s.pricing.TicketTypeByID(event, ticketTypeID)
	if err != nil {
		return nil, err
	}

	total := s.pricing.SelectionTotal(selectedSeats, tier, basePrice)

	return &SeatReview{
		Params: models.BookingParams{
			EventID:      eventID,
			SeatIDs:      seatIDs,
			TicketTypeID: tier.ID,
		},
		TicketType: tier,
		Total:      total,
	}, nil
}

func (s *SeatService) CloseSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[sessionID]; !ok {
		return models.ErrSessionNotFound
	}
	delete(s.sessions, sessionID)
	s.monitor.SeatSessionClosed()
	return nil
}

func (s *SeatService) generateSeats(basePrice float64, rng *rand.Rand) []models.Seat {
	rows := s.cfg.SeatRows
	perRow := s.cfg.SeatsPerRow

	seats := make([]models.Seat, 0, len(rows)*perRow)
	for _, r := range rows {
		row := string(r)
		seatType := models.SeatTypeForRow(row)
		price := s.pricing.SeatPrice(basePrice, seatType)

		for number := 1; number <= perRow; number++ {
			seats = append(seats, models.Seat{
				ID:          fmt.Sprintf("%s%d", row, number),
				Row:         row,
				Number:      number,
				Type:        seatType,
				Price:       price,
				IsAvailable: rng.Float64() < s.cfg.SeatAvailabilityRate,
			})
		}
	}
	return seats
}

func (ss *seatSession) seat(seatID string) *models.Seat {
	for i := range ss.seats {
		if ss.seats[i].ID == seatID {
			return &ss.seats[i]
		}
	}
	return nil
}

func (ss *seatSession) deselect(seatID string) {
	for i, id := range ss.selected {
		if id == seatID {
			ss.selected = append(ss.selected[:i], ss.selected[i+1:]...)
			return
		}
	}
}

func (ss *seatSession) selectedSeats() []models.Seat {
	seats := make([]models.Seat, 0, len(ss.selected))
	for _, id := range ss.selected {
		if seat := ss.seat(id); seat != nil {
			seats = append(seats, *seat)
		}
	}
	return seats
}

func (ss *seatSession) snapshot() *SeatMap {
	return &SeatMap{
		SessionID:       ss.id,
		EventID:         ss.eventID,
		Seats:           append([]models.Seat(nil), ss.seats...),
		SelectedSeatIDs: append([]string(nil), ss.selected...),
	}
}
