package api

import (
	"context"
	"testing"
	"time"

	"github.com/voicemaster/voicemaster/agent"
	"github.com/voicemaster/voicemaster/config"
	"github.com/voicemaster/voicemaster/notify"
	"github.com/voicemaster/voicemaster/policy"
	"github.com/voicemaster/voicemaster/recognizer"
	"github.com/voicemaster/voicemaster/session"
	"github.com/voicemaster/voicemaster/tests/helpers"
)

func newTestHandler(t *testing.T) (*Handler, *session.SQLiteStore) {
	t.Helper()

	cfg := &config.Config{
		LLMModel:          "gpt-3.5-turbo",
		TrialDuration:     24 * time.Hour,
		CountdownInterval: 10 * time.Millisecond,
		RecognizerDelay:   time.Millisecond,
	}

	store := helpers.NewTestSQLiteStore(t)
	trials := session.NewTrialService(store, notify.LogDispatcher{}, cfg.TrialDuration)

	policyEngine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	if err != nil {
		t.Fatalf("failed to create policy engine: %v", err)
	}

	h := NewHandler(
		agent.New(nil, cfg),
		trials,
		policyEngine,
		recognizer.New(cfg.RecognizerDelay),
		cfg,
	)
	return h, store
}
