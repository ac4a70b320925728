package domain

import "time"

// Command is one utterance submitted for interpretation. Commands are
// transient and never persisted.
type Command struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Persona   Persona   `json:"persona"`
}

// AgentResponse is the structured reply to a single command. Confidence is
// informational only and never drives control flow.
type AgentResponse struct {
	Text        string  `json:"text"`
	Intent      Intent  `json:"intent,omitempty"`
	Confidence  float64 `json:"confidence"`
	ShouldSpeak bool    `json:"should_speak"`
}

// SessionRecord is the single per-device session slot. It is always written
// as a whole (last writer wins) and expiry is computed at read time, never
// stored. Timestamps serialize as RFC 3339 strings.
type SessionRecord struct {
	Email          string     `json:"email"`
	TrialConsumed  bool       `json:"trial_consumed"`
	TrialStartedAt *time.Time `json:"trial_started_at,omitempty"`
	TrialEndsAt    *time.Time `json:"trial_ends_at,omitempty"`
	Subscribed     bool       `json:"subscribed"`
	Plan           Plan       `json:"plan,omitempty"`
}
