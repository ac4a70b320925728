// Package session persists the device's single session record and derives
// the trial state from it.
package session

import (
	"context"

	"github.com/voicemaster/voicemaster/domain"
)

// Slot is the name of the single session slot, matching the storage key the
// browser build used.
const Slot = "voice_master_user"

// Store defines the interface for session record persistence. The store
// holds at most one record; writes overwrite the whole slot.
type Store interface {
	// Get returns the current record, or nil when no record exists.
	Get(ctx context.Context) (*domain.SessionRecord, error)

	// Put overwrites the slot with the given record.
	Put(ctx context.Context, record *domain.SessionRecord) error

	// Delete removes the record. Deleting an empty slot is not an error.
	Delete(ctx context.Context) error

	// Lifecycle
	Close() error
}
