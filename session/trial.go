package session

import (
	"context"
	"log"
	"regexp"
	"time"

	"github.com/voicemaster/voicemaster/domain"
	"github.com/voicemaster/voicemaster/notify"
)

// emailPattern is a deliberately shallow sanity check, not RFC 5321
// validation: local part and domain split by @, domain containing a dot, no
// whitespace anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TrialService is the trial/session state machine. It re-reads the store on
// every query; expiry is always computed against the current clock, never
// stored.
type TrialService struct {
	store      Store
	dispatcher notify.Dispatcher
	duration   time.Duration

	now func() time.Time
}

// NewTrialService creates the trial service with the given trial window.
func NewTrialService(store Store, dispatcher notify.Dispatcher, duration time.Duration) *TrialService {
	return &TrialService{
		store:      store,
		dispatcher: dispatcher,
		duration:   duration,
		now:        time.Now,
	}
}

// CanStartTrial reports whether a trial may start for the email: always true
// with no record, and true when the stored record belongs to another email
// or has not consumed its trial. This is a single-device check, not a
// global guarantee.
func (s *TrialService) CanStartTrial(ctx context.Context, email string) (bool, error) {
	record, err := s.store.Get(ctx)
	if err != nil {
		return false, err
	}
	if record == nil {
		return true, nil
	}
	return record.Email != email || !record.TrialConsumed, nil
}

// StartTrial consumes the trial for the email: the slot is overwritten with
// a fresh 24h window and a trial_started notification goes out
// fire-and-forget. Invalid email or an already consumed trial yields a
// *domain.ValidationError.
func (s *TrialService) StartTrial(ctx context.Context, email, name string) (*domain.SessionRecord, error) {
	if !emailPattern.MatchString(email) {
		return nil, &domain.ValidationError{Field: "email", Reason: "malformed address"}
	}

	ok, err := s.CanStartTrial(ctx, email)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &domain.ValidationError{Field: "email", Reason: "trial already consumed for this email"}
	}

	started := s.now()
	ends := started.Add(s.duration)
	record := &domain.SessionRecord{
		Email:          email,
		TrialConsumed:  true,
		TrialStartedAt: &started,
		TrialEndsAt:    &ends,
		Subscribed:     false,
		Plan:           domain.PlanTrial,
	}

	if err := s.store.Put(ctx, record); err != nil {
		return nil, err
	}

	// Fire-and-forget: the trial does not depend on delivery.
	if err := s.dispatcher.Dispatch(ctx, notify.Notification{
		Email: email,
		Name:  name,
		Kind:  domain.NotificationTrialStarted,
	}); err != nil {
		log.Printf("WARN: failed to dispatch trial_started notification: %v", err)
	}

	return record, nil
}

// Record returns the current session record, or nil when none exists.
func (s *TrialService) Record(ctx context.Context) (*domain.SessionRecord, error) {
	return s.store.Get(ctx)
}

// IsTrialActive reports whether commands may be processed right now. A
// subscription bypasses trial expiry.
func (s *TrialService) IsTrialActive(ctx context.Context) (bool, error) {
	record, err := s.store.Get(ctx)
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	if record.Subscribed {
		return true, nil
	}
	if record.TrialEndsAt == nil {
		return false, nil
	}
	return s.now().Before(*record.TrialEndsAt), nil
}

// TrialTimeLeft returns the whole seconds remaining in the trial window,
// never negative, 0 with no record.
func (s *TrialService) TrialTimeLeft(ctx context.Context) (int64, error) {
	record, err := s.store.Get(ctx)
	if err != nil {
		return 0, err
	}
	if record == nil || record.TrialEndsAt == nil {
		return 0, nil
	}

	left := record.TrialEndsAt.Sub(s.now())
	if left < 0 {
		return 0, nil
	}
	return int64(left / time.Second), nil
}

// State resolves the observable trial state.
func (s *TrialService) State(ctx context.Context) (domain.TrialState, error) {
	record, err := s.store.Get(ctx)
	if err != nil {
		return "", err
	}
	switch {
	case record == nil:
		return domain.TrialStateNoRecord, nil
	case record.Subscribed:
		return domain.TrialStateSubscribed, nil
	case record.TrialEndsAt != nil && s.now().Before(*record.TrialEndsAt):
		return domain.TrialStateActive, nil
	default:
		return domain.TrialStateExpired, nil
	}
}

// Clear deletes the session record (logout). Idempotent.
func (s *TrialService) Clear(ctx context.Context) error {
	return s.store.Delete(ctx)
}
