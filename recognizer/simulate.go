// Package recognizer simulates speech recognition. Real speech-to-text is an
// external collaborator; this stub supplies plausible transcripts after a
// recognition-like delay.
package recognizer

import (
	"context"
	"math/rand"
	"time"
)

var sampleCommands = []string{
	"Neo, que horas são?",
	"Lia, toca uma música",
	"Neo, abre o WhatsApp",
	"Lia, que dia é hoje?",
	"Neo, ativa o modo silencioso",
}

// Simulator returns one of the example commands after a fixed delay.
type Simulator struct {
	delay time.Duration
}

// New creates a simulator with the given recognition delay.
func New(delay time.Duration) *Simulator {
	return &Simulator{delay: delay}
}

// Recognize blocks for the configured delay and returns a random sample
// transcript, or the context error if cancelled first.
func (s *Simulator) Recognize(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(s.delay):
	}
	return sampleCommands[rand.Intn(len(sampleCommands))], nil
}
