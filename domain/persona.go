package domain

// WakeWords are the prefixes that wake the assistant, ordered by descending
// length so a short alias can never mask a longer one. Either persona's name
// wakes the assistant regardless of which voice is active.
var WakeWords = []string{"hey neo", "hey lia", "oi neo", "oi lia", "neo", "lia"}

// Profile is the static configuration of one persona: display name, the
// system instruction used by the remote backend, the greeting pool for voice
// tests and the canned reply per intent. Time and date replies carry a single
// %s placeholder for the formatted value.
type Profile struct {
	Name         string
	SystemPrompt string
	Greetings    []string
	Replies      map[Intent]string
}

const promptSuffix = `

Você é um assistente de voz para celular. Responda de forma natural e conversacional.
Para comandos que requerem ação no dispositivo, seja claro sobre o que você faria.
Mantenha as respostas curtas (máximo 2 frases).
Responda sempre em português brasileiro.
Se não souber algo, seja honesto mas ofereça alternativas.`

var profiles = map[Persona]Profile{
	PersonaNeo: {
		Name:         "Neo",
		SystemPrompt: "Você é Neo, um assistente profissional e direto. Seja conciso e objetivo nas respostas." + promptSuffix,
		Greetings: []string{
			"Olá, sou o Neo. Estou pronto para ajudar.",
			"Neo aqui. O que você precisa?",
			"Assistente Neo ativo e funcionando.",
		},
		Replies: map[Intent]string{
			IntentQueryTime:     "São %s.",
			IntentQueryDate:     "Hoje é %s.",
			IntentPlayMedia:     "Abrindo o aplicativo de música.",
			IntentOpenMessaging: "Abrindo WhatsApp.",
			IntentToggleSilent:  "Modo silencioso ativado.",
			IntentUnknown:       "Desculpe, não entendi esse comando.",
		},
	},
	PersonaLia: {
		Name:         "Lia",
		SystemPrompt: "Você é Lia, uma assistente amigável e calorosa. Seja acolhedora e prestativa nas respostas." + promptSuffix,
		Greetings: []string{
			"Oi! Eu sou a Lia, sua assistente virtual!",
			"Olá! Lia aqui, pronta para te ajudar!",
			"Oi! Sou a Lia, como posso ajudar você hoje?",
		},
		Replies: map[Intent]string{
			IntentQueryTime:     "Agora são %s!",
			IntentQueryDate:     "Hoje é %s!",
			IntentPlayMedia:     "Vou tocar uma música para você!",
			IntentOpenMessaging: "Vou abrir o WhatsApp para você!",
			IntentToggleSilent:  "Ativei o modo silencioso!",
			IntentUnknown:       "Desculpe, não consegui entender. Pode repetir?",
		},
	},
}

// Valid reports whether p is a known persona.
func (p Persona) Valid() bool {
	_, ok := profiles[p]
	return ok
}

// Profile returns the persona's configuration. Unknown personas fall back to
// Neo so callers always get a usable profile.
func (p Persona) Profile() Profile {
	if prof, ok := profiles[p]; ok {
		return prof
	}
	return profiles[PersonaNeo]
}
