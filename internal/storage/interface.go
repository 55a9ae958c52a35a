package storage

import "github.com/revisit-app/revisit/internal/models"

// Provider is the durable store for entries and app settings. Every entry
// operation is a whole-collection read-modify-write; there is no locking
// across concurrent callers (last writer wins), which is acceptable for a
// single-user, UI-serialized store.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Entries
	AddEntry(models.VisitEntry) error
	// ListEntries returns sanitized entries sorted by CreatedAtIso descending.
	// With a profile it returns only that profile's entries; with "" it
	// returns all profiles.
	ListEntries(profile models.ProfileID) ([]models.VisitEntry, error)
	// DeleteEntry removes every record with the given id; deleting an unknown
	// id is a no-op.
	DeleteEntry(id string) error
	// ClearEntries with "" empties the whole collection; with a profile it
	// keeps only the other profile's records.
	ClearEntries(profile models.ProfileID) error
	// CountEntries counts across all profiles (free-tier gating counts the
	// whole store, not just the active profile).
	CountEntries() (int, error)

	// Utils
	GetConfigPath() string
}
