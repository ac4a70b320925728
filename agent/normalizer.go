// Package agent interprets spoken commands and generates replies.
package agent

import (
	"strings"

	"github.com/voicemaster/voicemaster/domain"
)

// trailing punctuation runs are dropped from the end of a command.
const trailingPunct = ",.!?"

// Normalize lowercases and trims the utterance, strips the first matching
// wake-word prefix and any trailing punctuation run. Wake words are checked
// in the order of domain.WakeWords (longest first), so matching is
// deterministic and a short alias never shadows a longer one. If stripping
// would leave nothing, the raw input is returned untouched.
func Normalize(text string) string {
	cleaned := strings.TrimSpace(strings.ToLower(text))

	for _, wake := range domain.WakeWords {
		if strings.HasPrefix(cleaned, wake) {
			cleaned = strings.TrimSpace(cleaned[len(wake):])
			break
		}
	}

	cleaned = strings.TrimRight(cleaned, trailingPunct)

	if cleaned == "" {
		return text
	}
	return cleaned
}
