package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticket-booking/models"
	"ticket-booking/services"
)

func TestSessionHandler_StartAndAdvance(t *testing.T) {
	cfg := testConfig()
	cfg.SplashDelay = time.Hour // drive the stages manually
	h := newTestHandlers(cfg)

	c, rec := newTestContext(http.MethodPost, "/api/sessions", "")
	require.NoError(t, h.session.Start(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var session services.AppSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, models.StageSplash, session.Stage)

	c, rec = newTestContext(http.MethodPost, "/api/sessions/x/advance",
		`{"stage":"catalog"}`, "sessionId", session.SessionID)
	require.NoError(t, h.session.Advance(c))

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, models.StageCatalog, session.Stage)

	// Skipping ahead is rejected.
	c, _ = newTestContext(http.MethodPost, "/api/sessions/x/advance",
		`{"stage":"checkout"}`, "sessionId", session.SessionID)
	err := h.session.Advance(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httpStatus(err))

	c, rec = newTestContext(http.MethodDelete, "/api/sessions/x", "", "sessionId", session.SessionID)
	require.NoError(t, h.session.Close(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSessionHandler_GetSession_NotFound(t *testing.T) {
	h := newTestHandlers(testConfig())

	c, _ := newTestContext(http.MethodGet, "/api/sessions/missing", "", "sessionId", "missing")
	err := h.session.GetSession(c)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httpStatus(err))
}
