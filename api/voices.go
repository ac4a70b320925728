package api

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/voicemaster/voicemaster/domain"
)

// TestPersonaVoice returns one greeting from the persona's pool.
func (h *Handler) TestPersonaVoice(c echo.Context) error {
	persona := domain.Persona(c.Param("persona"))
	if !persona.Valid() {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown persona"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"persona": string(persona),
		"text":    h.agent.TestPersonaVoice(persona),
	})
}

// RecognizerSample returns one simulated transcript.
func (h *Handler) RecognizerSample(c echo.Context) error {
	text, err := h.recognizer.Recognize(c.Request().Context())
	if err != nil {
		log.Printf("WARN: recognizer sample cancelled: %v", err)
		return c.JSON(http.StatusRequestTimeout, map[string]string{"error": "recognition cancelled"})
	}
	return c.JSON(http.StatusOK, map[string]string{"text": text})
}
