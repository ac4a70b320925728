// Package domain defines the core domain models for the voice assistant.
package domain

// Intent is the classified meaning of a spoken command.
type Intent string

const (
	IntentQueryTime     Intent = "query_time"
	IntentQueryDate     Intent = "query_date"
	IntentPlayMedia     Intent = "play_media"
	IntentOpenMessaging Intent = "open_messaging_app"
	IntentToggleSilent  Intent = "toggle_silent_mode"
	IntentUnknown       Intent = "unknown"
)

// Persona identifies one of the selectable assistant voices.
type Persona string

const (
	PersonaNeo Persona = "neo"
	PersonaLia Persona = "lia"
)

// Plan is the subscription plan attached to a session record.
type Plan string

const (
	PlanTrial    Plan = "trial"
	PlanBasic    Plan = "basic"
	PlanComplete Plan = "complete"
)

// TrialState is the observable state of the trial/session machine.
type TrialState string

const (
	TrialStateNoRecord   TrialState = "NO_RECORD"
	TrialStateActive     TrialState = "TRIAL_ACTIVE"
	TrialStateExpired    TrialState = "TRIAL_EXPIRED"
	TrialStateSubscribed TrialState = "SUBSCRIBED"
)

// NotificationKind identifies a trial lifecycle notification.
type NotificationKind string

const (
	NotificationTrialStarted         NotificationKind = "trial_started"
	NotificationTrialEnding          NotificationKind = "trial_ending"
	NotificationTrialExpired         NotificationKind = "trial_expired"
	NotificationSubscriptionReminder NotificationKind = "subscription_reminder"
)
