package session

import (
	"context"
	"log"
	"time"

	"github.com/voicemaster/voicemaster/domain"
)

// TickFunc receives one countdown observation. Returning an error stops the
// countdown.
type TickFunc func(secondsLeft int64, state domain.TrialState) error

// Countdown periodically re-reads the trial service and reports remaining
// time. Ticks are best-effort: a failed read is logged and skipped, and the
// loop never touches in-flight command processing.
type Countdown struct {
	trials   *TrialService
	interval time.Duration
}

// NewCountdown creates a countdown over the given trial service.
func NewCountdown(trials *TrialService, interval time.Duration) *Countdown {
	return &Countdown{trials: trials, interval: interval}
}

// Run emits one tick immediately and then one per interval until the context
// is cancelled or the tick function returns an error.
func (c *Countdown) Run(ctx context.Context, tick TickFunc) error {
	if err := c.emit(ctx, tick); err != nil {
		return err
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := c.emit(ctx, tick); err != nil {
				return err
			}
		}
	}
}

func (c *Countdown) emit(ctx context.Context, tick TickFunc) error {
	left, err := c.trials.TrialTimeLeft(ctx)
	if err != nil {
		log.Printf("WARN: countdown read failed: %v", err)
		return nil
	}
	state, err := c.trials.State(ctx)
	if err != nil {
		log.Printf("WARN: countdown state read failed: %v", err)
		return nil
	}
	return tick(left, state)
}
