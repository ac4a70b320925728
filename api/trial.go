package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicemaster/voicemaster/domain"
)

// StartTrialRequest is the body of POST /v1/trial.
type StartTrialRequest struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// TrialStatusResponse is the body of GET /v1/trial.
type TrialStatusResponse struct {
	State       domain.TrialState     `json:"state"`
	SecondsLeft int64                 `json:"seconds_left"`
	Record      *domain.SessionRecord `json:"record,omitempty"`
}

// StartTrial starts the 24h single-use trial for an email.
func (h *Handler) StartTrial(c echo.Context) error {
	var req StartTrialRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	record, err := h.trials.StartTrial(c.Request().Context(), req.Email, req.Name)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": vErr.Error()})
		}
		log.Printf("ERROR: start trial failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to start trial"})
	}

	return c.JSON(http.StatusCreated, record)
}

// GetTrial reports the current trial state and remaining time.
func (h *Handler) GetTrial(c echo.Context) error {
	ctx := c.Request().Context()

	state, err := h.trials.State(ctx)
	if err != nil {
		log.Printf("ERROR: trial state read failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}
	left, err := h.trials.TrialTimeLeft(ctx)
	if err != nil {
		log.Printf("ERROR: trial time read failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}
	record, err := h.trials.Record(ctx)
	if err != nil {
		log.Printf("ERROR: session record read failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}

	return c.JSON(http.StatusOK, TrialStatusResponse{
		State:       state,
		SecondsLeft: left,
		Record:      record,
	})
}

// ClearTrial deletes the session record (logout). Idempotent.
func (h *Handler) ClearTrial(c echo.Context) error {
	if err := h.trials.Clear(c.Request().Context()); err != nil {
		log.Printf("ERROR: clear trial failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to clear session"})
	}
	return c.NoContent(http.StatusNoContent)
}
