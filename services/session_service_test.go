package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-booking/logger"
	"ticket-booking/models"
)

func TestSessionService_SplashAutoAdvances(t *testing.T) {
	sessions := NewSessionService(testConfig(), logger.Discard())

	session := sessions.Start()
	assert.Equal(t, models.StageSplash, session.Stage)

	require.Eventually(t, func() bool {
		session, err := sessions.Session(session.SessionID)
		return err == nil && session.Stage == models.StageCatalog
	}, time.Second, 5*time.Millisecond)
}

func TestSessionService_CloseCancelsSplashTimer(t *testing.T) {
	cfg := testConfig()
	sessions := NewSessionService(cfg, logger.Discard())

	session := sessions.Start()
	require.NoError(t, sessions.Close(session.SessionID))

	time.Sleep(3 * cfg.SplashDelay)
	_, err := sessions.Session(session.SessionID)
	assert.ErrorIs(t, err, models.ErrAppSessionNotFound)
}

func TestSessionService_ForwardOnlyTransitions(t *testing.T) {
	cfg := testConfig()
	cfg.SplashDelay = time.Hour // keep the auto-advance out of this test
	sessions := NewSessionService(cfg, logger.Discard())

	session := sessions.Start()

	// Manual advance past the splash is allowed and cancels the timer.
	session, err := sessions.Advance(session.SessionID, models.StageCatalog)
	require.NoError(t, err)
	assert.Equal(t, models.StageCatalog, session.Stage)

	// Skipping a stage is rejected.
	_, err = sessions.Advance(session.SessionID, models.StageReview)
	assert.ErrorIs(t, err, models.ErrStageTransition)

	// Going backward is rejected.
	_, err = sessions.Advance(session.SessionID, models.StageSplash)
	assert.ErrorIs(t, err, models.ErrStageTransition)

	for _, stage := range []models.Stage{
		models.StageDetails,
		models.StageSeats,
		models.StageReview,
		models.StageCheckout,
		models.StageConfirmation,
	} {
		session, err = sessions.Advance(session.SessionID, stage)
		require.NoError(t, err)
		assert.Equal(t, stage, session.Stage)
	}

	// The confirmation stage is terminal.
	_, err = sessions.Advance(session.SessionID, models.StageCatalog)
	assert.ErrorIs(t, err, models.ErrStageTransition)
}

func TestSessionService_UnknownSession(t *testing.T) {
	sessions := NewSessionService(testConfig(), logger.Discard())

	_, err := sessions.Session("missing")
	assert.ErrorIs(t, err, models.ErrAppSessionNotFound)
	_, err = sessions.Advance("missing", models.StageCatalog)
	assert.ErrorIs(t, err, models.ErrAppSessionNotFound)
	assert.ErrorIs(t, sessions.Close("missing"), models.ErrAppSessionNotFound)
}
