package agent

import (
	"strings"

	"github.com/voicemaster/voicemaster/domain"
)

// intentKeywords is evaluated top to bottom; the first category with a
// matching substring wins. Ties between categories resolve by this order,
// never by match length or specificity.
var intentKeywords = []struct {
	intent   domain.Intent
	keywords []string
}{
	{domain.IntentQueryTime, []string{"hora", "tempo"}},
	{domain.IntentQueryDate, []string{"dia", "data"}},
	{domain.IntentPlayMedia, []string{"música", "toca"}},
	{domain.IntentOpenMessaging, []string{"whatsapp", "mensagem"}},
	{domain.IntentToggleSilent, []string{"silencioso", "silêncio"}},
}

// Classify maps normalized text to an intent by substring matching. Text
// matching no category resolves to IntentUnknown; classification never fails.
func Classify(text string) domain.Intent {
	lower := strings.ToLower(text)

	for _, entry := range intentKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				return entry.intent
			}
		}
	}

	return domain.IntentUnknown
}
