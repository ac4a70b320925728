package agent

import (
	"fmt"
	"time"

	"github.com/voicemaster/voicemaster/domain"
)

// Portuguese calendar names; the assistant speaks pt-BR and Go carries no
// locale tables.
var ptWeekdays = [7]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

var ptMonths = [12]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

func formatClock(t time.Time) string {
	return t.Format("15:04")
}

func formatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", ptWeekdays[t.Weekday()], t.Day(), ptMonths[t.Month()-1], t.Year())
}

// deterministicConfidence is the fixed confidence table of the deterministic
// backend.
func deterministicConfidence(intent domain.Intent) float64 {
	switch intent {
	case domain.IntentQueryTime, domain.IntentQueryDate, domain.IntentToggleSilent:
		return 1.0
	case domain.IntentPlayMedia, domain.IntentOpenMessaging:
		return 0.8
	default:
		return 0.3
	}
}

// deterministicResponse renders the persona's canned reply for the intent.
// Time and date intents interpolate the current wall clock.
func (a *Agent) deterministicResponse(intent domain.Intent, persona domain.Persona) domain.AgentResponse {
	profile := persona.Profile()
	text := profile.Replies[intent]

	switch intent {
	case domain.IntentQueryTime:
		text = fmt.Sprintf(text, formatClock(a.now()))
	case domain.IntentQueryDate:
		text = fmt.Sprintf(text, formatLongDate(a.now()))
	}

	return domain.AgentResponse{
		Text:        text,
		Intent:      intent,
		Confidence:  deterministicConfidence(intent),
		ShouldSpeak: true,
	}
}
