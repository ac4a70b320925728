package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/voicemaster/voicemaster/domain"
	"github.com/voicemaster/voicemaster/notify"
)

// captureDispatcher records dispatched notifications.
type captureDispatcher struct {
	sent []notify.Notification
}

func (d *captureDispatcher) Dispatch(ctx context.Context, n notify.Notification) error {
	d.sent = append(d.sent, n)
	return nil
}

func newTestTrialService(t *testing.T) (*TrialService, *captureDispatcher, *time.Time) {
	t.Helper()
	dispatcher := &captureDispatcher{}
	svc := NewTrialService(newTestStore(t), dispatcher, 24*time.Hour)

	current := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return current }
	return svc, dispatcher, &current
}

func TestStartTrialLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, dispatcher, now := newTestTrialService(t)
	t0 := *now

	ok, err := svc.CanStartTrial(ctx, "a@b.com")
	if err != nil || !ok {
		t.Fatalf("expected trial available before start: ok=%v err=%v", ok, err)
	}

	record, err := svc.StartTrial(ctx, "a@b.com", "Alice")
	if err != nil {
		t.Fatalf("StartTrial failed: %v", err)
	}
	if !record.TrialConsumed || record.Plan != domain.PlanTrial {
		t.Fatalf("unexpected record: %+v", record)
	}
	if !record.TrialStartedAt.Equal(t0) || !record.TrialEndsAt.Equal(t0.Add(24*time.Hour)) {
		t.Fatalf("trial window wrong: %v .. %v", record.TrialStartedAt, record.TrialEndsAt)
	}

	ok, err = svc.CanStartTrial(ctx, "a@b.com")
	if err != nil || ok {
		t.Fatalf("expected trial consumed for same email: ok=%v err=%v", ok, err)
	}

	// Different email on the same device is intentionally allowed.
	ok, err = svc.CanStartTrial(ctx, "other@b.com")
	if err != nil || !ok {
		t.Fatalf("expected trial available for other email: ok=%v err=%v", ok, err)
	}

	if len(dispatcher.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(dispatcher.sent))
	}
	if dispatcher.sent[0].Kind != domain.NotificationTrialStarted || dispatcher.sent[0].Email != "a@b.com" {
		t.Fatalf("unexpected notification: %+v", dispatcher.sent[0])
	}
}

func TestStartTrialRejectsInvalidEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTrialService(t)

	for _, email := range []string{"", "foo", "a b@c.com", "a@b", "a@b.", "a@@b.com"} {
		_, err := svc.StartTrial(ctx, email, "")
		var vErr *domain.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("email %q: expected ValidationError, got %v", email, err)
		}
	}
}

func TestStartTrialRejectsConsumedEmail(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTrialService(t)

	if _, err := svc.StartTrial(ctx, "a@b.com", ""); err != nil {
		t.Fatalf("StartTrial failed: %v", err)
	}

	_, err := svc.StartTrial(ctx, "a@b.com", "")
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError for consumed trial, got %v", err)
	}
}

func TestTrialActivityWindow(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newTestTrialService(t)
	t0 := *now

	if _, err := svc.StartTrial(ctx, "a@b.com", ""); err != nil {
		t.Fatalf("StartTrial failed: %v", err)
	}

	*now = t0.Add(1 * time.Hour)
	active, err := svc.IsTrialActive(ctx)
	if err != nil || !active {
		t.Fatalf("expected active at T0+1h: active=%v err=%v", active, err)
	}

	*now = t0.Add(25 * time.Hour)
	active, err = svc.IsTrialActive(ctx)
	if err != nil || active {
		t.Fatalf("expected inactive at T0+25h: active=%v err=%v", active, err)
	}

	state, err := svc.State(ctx)
	if err != nil || state != domain.TrialStateExpired {
		t.Fatalf("expected TRIAL_EXPIRED at T0+25h: state=%v err=%v", state, err)
	}
}

func TestTrialTimeLeft(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newTestTrialService(t)
	t0 := *now

	left, err := svc.TrialTimeLeft(ctx)
	if err != nil || left != 0 {
		t.Fatalf("expected 0 with no record: left=%d err=%v", left, err)
	}

	if _, err := svc.StartTrial(ctx, "a@b.com", ""); err != nil {
		t.Fatalf("StartTrial failed: %v", err)
	}

	*now = t0.Add(23*time.Hour + 59*time.Minute)
	left, err = svc.TrialTimeLeft(ctx)
	if err != nil || left != 60 {
		t.Fatalf("expected 60s at T0+23h59m: left=%d err=%v", left, err)
	}

	// Monotonically non-increasing as the clock advances.
	*now = t0.Add(23*time.Hour + 59*time.Minute + 30*time.Second)
	later, err := svc.TrialTimeLeft(ctx)
	if err != nil || later > left {
		t.Fatalf("time left increased: %d then %d (err=%v)", left, later, err)
	}

	// Never negative, exactly 0 past the window.
	*now = t0.Add(30 * time.Hour)
	left, err = svc.TrialTimeLeft(ctx)
	if err != nil || left != 0 {
		t.Fatalf("expected 0 past expiry: left=%d err=%v", left, err)
	}
}

func TestSubscriptionBypassesExpiry(t *testing.T) {
	ctx := context.Background()
	svc, _, now := newTestTrialService(t)

	past := now.Add(-48 * time.Hour)
	ends := past.Add(24 * time.Hour)
	record := &domain.SessionRecord{
		Email:          "a@b.com",
		TrialConsumed:  true,
		TrialStartedAt: &past,
		TrialEndsAt:    &ends,
		Subscribed:     true,
		Plan:           domain.PlanComplete,
	}
	if err := svc.store.Put(ctx, record); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	active, err := svc.IsTrialActive(ctx)
	if err != nil || !active {
		t.Fatalf("expected subscribed session active: active=%v err=%v", active, err)
	}

	state, err := svc.State(ctx)
	if err != nil || state != domain.TrialStateSubscribed {
		t.Fatalf("expected SUBSCRIBED state: state=%v err=%v", state, err)
	}
}

func TestClearIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTestTrialService(t)

	if _, err := svc.StartTrial(ctx, "a@b.com", ""); err != nil {
		t.Fatalf("StartTrial failed: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("second Clear failed: %v", err)
	}

	state, err := svc.State(ctx)
	if err != nil || state != domain.TrialStateNoRecord {
		t.Fatalf("expected NO_RECORD after clear: state=%v err=%v", state, err)
	}
}
