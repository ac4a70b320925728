// Package notify renders and dispatches trial lifecycle notifications.
// Delivery is simulated: a real deployment would plug a mail provider behind
// the Dispatcher interface.
package notify

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/voicemaster/voicemaster/domain"
)

// Notification is one templated message to a user.
type Notification struct {
	ID    string                  `json:"id"`
	Email string                  `json:"email"`
	Name  string                  `json:"name,omitempty"`
	Kind  domain.NotificationKind `json:"kind"`
}

// Dispatcher produces and sends a templated message. Callers treat dispatch
// as fire-and-forget.
type Dispatcher interface {
	Dispatch(ctx context.Context, n Notification) error
}

// LogDispatcher "sends" by logging the rendered message.
type LogDispatcher struct{}

var _ Dispatcher = (*LogDispatcher)(nil)

// Dispatch renders the notification and logs it.
func (LogDispatcher) Dispatch(ctx context.Context, n Notification) error {
	if n.ID == "" {
		n.ID = "ntf_" + uuid.New().String()[:8]
	}
	log.Printf("notification %s (%s) to %s:\n%s", n.ID, n.Kind, n.Email, Render(n))
	return nil
}

// Render produces the message body for the notification kind. The salutation
// falls back to the email local part when no name was captured.
func Render(n Notification) string {
	userName := n.Name
	if userName == "" {
		userName = strings.SplitN(n.Email, "@", 2)[0]
	}

	switch n.Kind {
	case domain.NotificationTrialStarted:
		return fmt.Sprintf(`Olá %s!

Bem-vindo ao Voice Master!

Seu teste grátis de 24 horas começou agora. Você pode experimentar:
- Comandos de voz com Neo e Lia
- Reconhecimento inteligente
- Controle básico de aplicativos

Aproveite ao máximo seu teste!

Equipe Voice Master`, userName)

	case domain.NotificationTrialEnding:
		return fmt.Sprintf(`Olá %s!

Seu teste grátis do Voice Master expira em breve!

Para continuar usando todas as funcionalidades, considere assinar um de nossos planos:
- Plano Voz/Chat: R$ 29,99/mês
- Plano Completo: R$ 49,99/mês

Não perca suas configurações e histórico!

Equipe Voice Master`, userName)

	case domain.NotificationTrialExpired:
		return fmt.Sprintf(`Olá %s!

Seu teste grátis do Voice Master expirou.

Mas não se preocupe! Você ainda pode assinar e continuar de onde parou:
- Todas as suas configurações serão mantidas
- Histórico de comandos preservado
- Acesso imediato a todas as funcionalidades

Que tal continuar conosco?

Equipe Voice Master`, userName)

	default:
		return fmt.Sprintf("Olá %s! Obrigado por usar o Voice Master.", userName)
	}
}
