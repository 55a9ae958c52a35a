package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
)

// Store is the on-disk document: one blob holding the settings scalars and
// the full entry list. Old blobs whose entries lack a categoryId must stay
// readable; sanitization on read normalizes them to "other".
type Store struct {
	Version  int                 `json:"version"`
	Settings models.Settings     `json:"settings"`
	Entries  []models.VisitEntry `json:"entries"`
}

// JSONStore keeps the whole journal in a single JSON file. Every write
// replaces the entire blob.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &Store{
		Version:  1,
		Settings: models.DefaultSettings(),
		Entries:  []models.VisitEntry{},
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'revisit init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &Store{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A corrupt blob yields an empty collection, never an error.
		logger.Warn("Storage blob failed to parse, starting empty", "path", s.path, "error", err)
		s.store = &Store{Version: 1, Settings: models.DefaultSettings()}
	}

	if s.store.Entries == nil {
		s.store.Entries = []models.VisitEntry{}
	}
	// An empty language stays empty so startup can detect the device locale.
	if s.store.Settings.Language != "" {
		s.store.Settings.Language = models.NormalizeLanguage(s.store.Settings.Language)
	}
	s.store.Settings.Plan = models.NormalizePlan(s.store.Settings.Plan)
	s.store.Settings.ActiveProfile = models.NormalizeProfile(s.store.Settings.ActiveProfile)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}
	return s.store.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) AddEntry(entry models.VisitEntry) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	// Newest first. No uniqueness check on id; the capture flow generates
	// fresh UUIDs so duplicates only arise from misbehaving callers.
	s.store.Entries = append([]models.VisitEntry{entry}, s.store.Entries...)
	return s.save()
}

func (s *JSONStore) ListEntries(profile models.ProfileID) ([]models.VisitEntry, error) {
	if s.store == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	entries := sanitizeAll(s.store.Entries)

	// CreatedAtIso is RFC3339, so lexicographic order is chronological.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].CreatedAtIso > entries[j].CreatedAtIso
	})

	if profile == "" {
		return entries, nil
	}

	filtered := make([]models.VisitEntry, 0, len(entries))
	for _, e := range entries {
		if e.ProfileID == profile {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

func (s *JSONStore) DeleteEntry(id string) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	kept := make([]models.VisitEntry, 0, len(s.store.Entries))
	for _, e := range s.store.Entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.store.Entries = kept
	return s.save()
}

func (s *JSONStore) ClearEntries(profile models.ProfileID) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}

	if profile == "" {
		s.store.Entries = []models.VisitEntry{}
		return s.save()
	}

	kept := make([]models.VisitEntry, 0, len(s.store.Entries))
	for _, e := range s.store.Entries {
		if e.ProfileID != profile {
			kept = append(kept, e)
		}
	}
	s.store.Entries = kept
	return s.save()
}

func (s *JSONStore) CountEntries() (int, error) {
	if s.store == nil {
		return 0, fmt.Errorf("storage not loaded")
	}
	return len(s.store.Entries), nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// sanitizeAll drops malformed records and normalizes the rest. Rejections are
// logged, never surfaced.
func sanitizeAll(raw []models.VisitEntry) []models.VisitEntry {
	entries := make([]models.VisitEntry, 0, len(raw))
	for _, e := range raw {
		res := models.SanitizeEntry(e)
		if !res.OK {
			logger.Warn("Dropping malformed entry", "id", e.ID, "reason", res.Reason)
			continue
		}
		entries = append(entries, res.Entry)
	}
	return entries
}
