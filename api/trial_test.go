package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/voicemaster/voicemaster/domain"
)

func doTrialRequest(t *testing.T, h *Handler, method, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/trial", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var err error
	switch method {
	case http.MethodPost:
		err = h.StartTrial(c)
	case http.MethodGet:
		err = h.GetTrial(c)
	case http.MethodDelete:
		err = h.ClearTrial(c)
	}
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestTrialLifecycleOverHTTP(t *testing.T) {
	h, _ := newTestHandler(t)

	// No record yet.
	rec := doTrialRequest(t, h, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	var status TrialStatusResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, domain.TrialStateNoRecord, status.State)
	assert.Zero(t, status.SecondsLeft)
	assert.Nil(t, status.Record)

	// Start the trial.
	rec = doTrialRequest(t, h, http.MethodPost, `{"email":"a@b.com","name":"Alice"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	var record domain.SessionRecord
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &record))
	assert.Equal(t, "a@b.com", record.Email)
	assert.True(t, record.TrialConsumed)

	// Active with a ticking window.
	rec = doTrialRequest(t, h, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, domain.TrialStateActive, status.State)
	assert.Greater(t, status.SecondsLeft, int64(0))
	assert.LessOrEqual(t, status.SecondsLeft, int64(24*60*60))

	// Same email cannot consume a second trial.
	rec = doTrialRequest(t, h, http.MethodPost, `{"email":"a@b.com"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Logout clears the slot.
	rec = doTrialRequest(t, h, http.MethodDelete, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doTrialRequest(t, h, http.MethodGet, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, domain.TrialStateNoRecord, status.State)
}

func TestStartTrialRejectsInvalidEmail(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doTrialRequest(t, h, http.MethodPost, `{"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
