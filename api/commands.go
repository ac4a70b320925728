package api

import (
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/voicemaster/voicemaster/agent"
	"github.com/voicemaster/voicemaster/domain"
	"github.com/voicemaster/voicemaster/policy"
)

// CommandRequest is the body of POST /v1/commands.
type CommandRequest struct {
	Text    string         `json:"text"`
	Persona domain.Persona `json:"persona"`
}

// ProcessCommand gates a command behind the trial state and the plan policy,
// then hands it to the agent. The agent itself never fails; only the gates
// produce error statuses.
func (h *Handler) ProcessCommand(c echo.Context) error {
	var req CommandRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if req.Text == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "text is required"})
	}
	if !req.Persona.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown persona"})
	}

	ctx := c.Request().Context()

	active, err := h.trials.IsTrialActive(ctx)
	if err != nil {
		log.Printf("ERROR: trial check failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}
	if !active {
		return c.JSON(http.StatusPaymentRequired, map[string]string{"error": "trial expired or not started"})
	}

	record, err := h.trials.Record(ctx)
	if err != nil {
		log.Printf("ERROR: session record read failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "session store unavailable"})
	}

	intent := agent.Classify(agent.Normalize(req.Text))
	decision, err := h.policy.Evaluate(ctx, policy.Input{
		Intent:     string(intent),
		Plan:       string(record.Plan),
		Subscribed: record.Subscribed,
	})
	if err != nil {
		log.Printf("ERROR: policy evaluation failed: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "policy evaluation failed"})
	}
	if decision == "block" {
		return c.JSON(http.StatusForbidden, map[string]string{"error": "intent not available on the current plan"})
	}

	cmd := domain.Command{
		Text:      req.Text,
		Timestamp: time.Now(),
		Persona:   req.Persona,
	}

	return c.JSON(http.StatusOK, h.agent.ProcessCommand(ctx, cmd))
}
