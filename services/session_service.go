package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"ticket-booking/config"
	"ticket-booking/models"
)

// AppSession is the snapshot of an app session's pipeline position.
type AppSession struct {
	SessionID string       `json:"session_id"`
	Stage     models.Stage `json:"stage"`
}

type appSession struct {
	id          string
	stage       models.Stage
	splashTimer *time.Timer
	createdAt   time.Time
}

// SessionService tracks each app session's position in the pipeline.
// Sessions start at the splash stage and auto-advance to the catalog after
// a one-shot delay; closing a session cancels the pending transition.
type SessionService struct {
	mu       sync.Mutex
	sessions map[string]*appSession

	cfg    *config.Config
	logger *slog.Logger
}

func NewSessionService(cfg *config.Config, logger *slog.Logger) *SessionService {
	return &SessionService{
		sessions: make(map[string]*appSession),
		cfg:      cfg,
		logger:   logger,
	}
}

// Start opens a session at the splash stage and schedules the automatic
// splash-to-catalog transition.
func (s *SessionService) Start() *AppSession {
	session := &appSession{
		id:        uuid.NewString(),
		stage:     models.StageSplash,
		createdAt: time.Now(),
	}
	session.splashTimer = time.AfterFunc(s.cfg.SplashDelay, func() {
		s.advanceFromSplash(session.id)
	})

	s.mu.Lock()
	s.sessions[session.id] = session
	s.mu.Unlock()

	s.logger.Debug("session started", "session_id", session.id)
	return &AppSession{SessionID: session.id, Stage: session.stage}
}

func (s *SessionService) Session(sessionID string) (*AppSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrAppSessionNotFound
	}
	return &AppSession{SessionID: session.id, Stage: session.stage}, nil
}

// Advance moves a session one stage forward. Backward or skipping
// transitions are rejected; restarting means opening a new session.
func (s *SessionService) Advance(sessionID string, to models.Stage) (*AppSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, models.ErrAppSessionNotFound
	}
	if !models.CanAdvance(session.stage, to) {
		return nil, models.ErrStageTransition
	}

	// Advancing past the splash manually neutralizes the pending timer.
	if session.stage == models.StageSplash && session.splashTimer != nil {
		session.splashTimer.Stop()
	}

	session.stage = to
	return &AppSession{SessionID: session.id, Stage: session.stage}, nil
}

// Close tears a session down, canceling the splash transition if it has
// not fired yet.
func (s *SessionService) Close(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return models.ErrAppSessionNotFound
	}
	if session.splashTimer != nil {
		session.splashTimer.Stop()
	}
	delete(s.sessions, sessionID)
	return nil
}

// Shutdown cancels all pending transitions.
func (s *SessionService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, session := range s.sessions {
		if session.splashTimer != nil {
			session.splashTimer.Stop()
		}
	}
}

func (s *SessionService) advanceFromSplash(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok || session.stage != models.StageSplash {
		return
	}
	session.stage = models.StageCatalog
}
