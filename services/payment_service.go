package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ticket-booking/config"
	"ticket-booking/models"
	"ticket-booking/monitoring"
	"ticket-booking/utils"
)

var paymentMethods = []models.PaymentMethod{
	{ID: "1", Type: models.PaymentMethodCard, Name: "Credit/Debit Card", Icon: "card"},
	{ID: "2", Type: models.PaymentMethodPayPal, Name: "PayPal", Icon: "logo-paypal"},
	{ID: "3", Type: models.PaymentMethodApplePay, Name: "Apple Pay", Icon: "logo-apple"},
	{ID: "4", Type: models.PaymentMethodGooglePay, Name: "Google Pay", Icon: "logo-google"},
}

// PaymentView is the session snapshot handed to the caller. Card details
// never leave the service; CardComplete reports whether all four fields
// are set.
type PaymentView struct {
	SessionID    string                `json:"session_id"`
	State        models.PaymentState   `json:"state"`
	Method       *models.PaymentMethod `json:"method,omitempty"`
	CardComplete bool                  `json:"card_complete"`
	Total        float64               `json:"total"`
	Booking      *models.Booking       `json:"booking,omitempty"`
}

type paymentSession struct {
	id          string
	params      models.BookingParams
	state       models.PaymentState
	method      *models.PaymentMethod
	card        models.CardDetails
	timer       *time.Timer
	submittedAt time.Time
	booking     *models.Booking
	createdAt   time.Time
}

// PaymentService drives the checkout state machine. Processing is a
// simulated one-shot delay; the pending timer is cleared when a session is
// torn down so a discarded checkout never confirms.
type PaymentService struct {
	mu       sync.Mutex
	sessions map[string]*paymentSession

	booking *BookingService
	cfg     *config.Config
	monitor *monitoring.Monitor
	logger  *slog.Logger
}

func NewPaymentService(booking *BookingService, cfg *config.Config, monitor *monitoring.Monitor, logger *slog.Logger) *PaymentService {
	return &PaymentService{
		sessions: make(map[string]*paymentSession),
		booking:  booking,
		cfg:      cfg,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *PaymentService) Methods() []models.PaymentMethod {
	return append([]models.PaymentMethod(nil), paymentMethods...)
}

// CreateSession opens a checkout session for the reviewed booking params.
// The params must resolve against the catalog and carry the contact from
// the review stage.
func (s *PaymentService) CreateSession(params models.BookingParams) (*PaymentView, error) {
	if _, err := s.booking.catalog.EventByID(params.EventID); err != nil {
		return nil, err
	}
	if len(params.SeatIDs) == 0 {
		return nil, models.ErrNoSeatsSelected
	}
	if params.Contact == nil {
		return nil, &models.ValidationError{Field: "contact", Code: models.ValidationMissingField}
	}

	session := &paymentSession{
		id:        uuid.NewString(),
		params:    params,
		state:     models.PaymentAwaitingMethod,
		createdAt: time.Now(),
	}

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.monitor.PaymentSessionOpened()
	s.logger.Debug("payment session opened", "session_id", session.id, "event_id", params.EventID)

	return session.view(), nil
}

func (s *PaymentService) Session(sessionID string) (*PaymentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	return session.view(), nil
}

// SelectMethod picks (or re-picks) a payment method. Allowed in any state
// before submission.
func (s *PaymentService) SelectMethod(sessionID, methodID string) (*PaymentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	if session.state == models.PaymentSubmitting || session.state == models.PaymentConfirmed {
		return nil, models.ErrPaymentSubmitted
	}

	method := methodByID(methodID)
	if method == nil {
		return nil, models.ErrUnknownMethod
	}

	session.method = method
	if method.Type == models.PaymentMethodCard {
		session.state = models.PaymentAwaitingCard
	} else {
		session.state = models.PaymentMethodSelected
	}
	return session.view(), nil
}

// SetCardDetails stores masked card input for a card checkout. Masking is
// input formatting, not validation; submission checks completeness.
func (s *PaymentService) SetCardDetails(sessionID string, card models.CardDetails) (*PaymentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	if session.state == models.PaymentSubmitting || session.state == models.PaymentConfirmed {
		return nil, models.ErrPaymentSubmitted
	}
	if session.method == nil || session.method.Type != models.PaymentMethodCard {
		return nil, models.ErrNoPaymentMethod
	}

	session.card = models.CardDetails{
		Number: utils.FormatCardNumber(card.Number),
		Expiry: utils.FormatExpiry(card.Expiry),
		CVV:    utils.FormatCVV(card.CVV),
		Name:   card.Name,
	}
	return session.view(), nil
}

// Submit validates the session and enters the simulated processing window.
// Once submitting there is no cancellation path short of tearing the
// session down; completion is unconditional after the configured delay.
func (s *PaymentService) Submit(sessionID string) (*PaymentView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrPaymentNotFound
	}
	if session.state == models.PaymentSubmitting || session.state == models.PaymentConfirmed {
		return nil, models.ErrPaymentSubmitted
	}
	if session.method == nil {
		return nil, models.ErrNoPaymentMethod
	}
	if session.method.Type == models.PaymentMethodCard && !session.cardComplete() {
		return nil, models.ErrCardDetailsRequired
	}

	session.state = models.PaymentSubmitting
	session.submittedAt = time.Now()
	session.timer = time.AfterFunc(s.cfg.PaymentProcessingDelay, func() {
		s.complete(sessionID)
	})

	s.monitor.TrackOperation("submit_payment", "accepted")
	s.logger.Info("payment submitted", "session_id", sessionID, "method", session.method.Type)

	return session.view(), nil
}

// CloseSession tears a session down, clearing any pending processing timer
// so a discarded checkout cannot confirm later.
func (s *PaymentService) CloseSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ErrPaymentNotFound
	}
	if session.timer != nil {
		session.timer.Stop()
	}
	delete(s.sessions, sessionID)
	s.monitor.PaymentSessionClosed()
	return nil
}

// Close stops every pending timer. Called on shutdown.
func (s *PaymentService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		if session.timer != nil {
			session.timer.Stop()
		}
	}
}

func (s *PaymentService) complete(sessionID string) {
	s.mu.Lock()
	session, ok := s.sessions[sessionID]
	if !ok || session.state != models.PaymentSubmitting {
		s.mu.Unlock()
		return
	}
	params := session.params
	submittedAt := session.submittedAt
	s.mu.Unlock()

	// Confirm outside the lock; the booking service owns its own state.
	booking, err := s.booking.Confirm(params)
	if err != nil {
		// Params were validated at session creation, so this only fires if
		// the catalog changed under us. Leave the session submitting.
		s.monitor.TrackOperation("confirm_booking", "error")
		s.logger.Error("payment completion failed", "session_id", sessionID, "error", err)
		return
	}

	s.mu.Lock()
	if session, ok := s.sessions[sessionID]; ok && session.state == models.PaymentSubmitting {
		session.state = models.PaymentConfirmed
		session.booking = booking
	}
	s.mu.Unlock()

	s.monitor.TrackPaymentProcessing(time.Since(submittedAt))
	s.logger.Info("payment confirmed", "session_id", sessionID, "booking_id", booking.ID)
}

func (ps *paymentSession) cardComplete() bool {
	return ps.card.Number != "" && ps.card.Expiry != "" && ps.card.CVV != "" && ps.card.Name != ""
}

func (ps *paymentSession) view() *PaymentView {
	view := &PaymentView{
		SessionID:    ps.id,
		State:        ps.state,
		CardComplete: ps.cardComplete(),
		Total:        ps.params.Total,
		Booking:      ps.booking,
	}
	if ps.method != nil {
		method := *ps.method
		view.Method = &method
	}
	return view
}

func methodByID(id string) *models.PaymentMethod {
	for i := range paymentMethods {
		if paymentMethods[i].ID == id {
			method := paymentMethods[i]
			return &method
		}
	}
	return nil
}
