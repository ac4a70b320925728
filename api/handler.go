// Package api provides HTTP handlers for the assistant service.
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicemaster/voicemaster/agent"
	"github.com/voicemaster/voicemaster/config"
	"github.com/voicemaster/voicemaster/policy"
	"github.com/voicemaster/voicemaster/recognizer"
	"github.com/voicemaster/voicemaster/session"
)

// Handler handles HTTP requests.
type Handler struct {
	agent      *agent.Agent
	trials     *session.TrialService
	policy     *policy.Engine
	recognizer *recognizer.Simulator
	config     *config.Config
}

// NewHandler creates a new handler.
func NewHandler(a *agent.Agent, trials *session.TrialService, policyEngine *policy.Engine, rec *recognizer.Simulator, cfg *config.Config) *Handler {
	return &Handler{
		agent:      a,
		trials:     trials,
		policy:     policyEngine,
		recognizer: rec,
		config:     cfg,
	}
}

// RegisterRoutes registers routes with the echo server.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/v1/commands", h.ProcessCommand)

	e.POST("/v1/trial", h.StartTrial)
	e.GET("/v1/trial", h.GetTrial)
	e.DELETE("/v1/trial", h.ClearTrial)
	e.GET("/v1/trial/countdown", h.TrialCountdown)

	e.POST("/v1/voices/:persona/test", h.TestPersonaVoice)
	e.GET("/v1/recognizer/sample", h.RecognizerSample)

	e.GET("/health", h.Health)
}

// Health returns health status.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "healthy",
		"version": "1.0.0",
	})
}
