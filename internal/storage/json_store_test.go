package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/revisit-app/revisit/internal/models"
)

func setupTestStore(t *testing.T) *JSONStore {
	t.Helper()
	store := NewJSONStore(filepath.Join(t.TempDir(), "revisit.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	return store
}

func testEntry(id, createdAt string, profile models.ProfileID) models.VisitEntry {
	return models.VisitEntry{
		ID:           id,
		CreatedAtIso: createdAt,
		PhotoURI:     "/photos/" + id + ".jpg",
		Rating:       models.RatingYes,
		ProfileID:    profile,
		CategoryID:   models.CategoryCafe,
	}
}

func TestInit(t *testing.T) {
	t.Run("creates store with defaults", func(t *testing.T) {
		store := setupTestStore(t)

		settings, err := store.GetSettings()
		if err != nil {
			t.Fatalf("GetSettings() failed: %v", err)
		}
		if settings.Plan != models.PlanFree {
			t.Errorf("Plan = %q, want free", settings.Plan)
		}
		if settings.ActiveProfile != models.ProfilePrivate {
			t.Errorf("ActiveProfile = %q, want private", settings.ActiveProfile)
		}
		if settings.Language != "" {
			t.Errorf("Language = %q, want empty (never chosen)", settings.Language)
		}
	})

	t.Run("fails when already initialized", func(t *testing.T) {
		store := setupTestStore(t)
		if err := store.Init(); err == nil {
			t.Error("second Init() should fail")
		}
	})
}

func TestLoad(t *testing.T) {
	t.Run("round trips entries and settings", func(t *testing.T) {
		store := setupTestStore(t)
		if err := store.AddEntry(testEntry("e1", "2026-08-01T10:00:00Z", models.ProfilePrivate)); err != nil {
			t.Fatalf("AddEntry() failed: %v", err)
		}
		if err := store.SaveSettings(models.Settings{
			Language:      models.LangEnglish,
			Plan:          models.PlanPro,
			ActiveProfile: models.ProfileWork,
		}); err != nil {
			t.Fatalf("SaveSettings() failed: %v", err)
		}

		reopened := NewJSONStore(store.GetConfigPath())
		if err := reopened.Load(); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		settings, _ := reopened.GetSettings()
		if settings.Plan != models.PlanPro || settings.ActiveProfile != models.ProfileWork {
			t.Errorf("settings = %+v, want pro/work", settings)
		}
		entries, err := reopened.ListEntries("")
		if err != nil {
			t.Fatalf("ListEntries() failed: %v", err)
		}
		if len(entries) != 1 || entries[0].ID != "e1" {
			t.Errorf("entries = %+v, want single e1", entries)
		}
	})

	t.Run("missing file reports uninitialized", func(t *testing.T) {
		store := NewJSONStore(filepath.Join(t.TempDir(), "missing.json"))
		if err := store.Load(); err == nil {
			t.Error("Load() on missing file should fail")
		}
	})

	t.Run("corrupt blob yields empty store not error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "revisit.json")
		if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}

		store := NewJSONStore(path)
		if err := store.Load(); err != nil {
			t.Fatalf("Load() on corrupt blob returned error: %v", err)
		}
		entries, err := store.ListEntries("")
		if err != nil {
			t.Fatalf("ListEntries() failed: %v", err)
		}
		if len(entries) != 0 {
			t.Errorf("entries = %d, want 0", len(entries))
		}
	})

	t.Run("out-of-set settings values are coerced", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "revisit.json")
		blob := `{"version":1,"settings":{"language":"de","plan":"premium","profile":"shared"},"entries":[]}`
		if err := os.WriteFile(path, []byte(blob), 0600); err != nil {
			t.Fatal(err)
		}

		store := NewJSONStore(path)
		if err := store.Load(); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		settings, _ := store.GetSettings()
		if settings.Plan != models.PlanFree {
			t.Errorf("Plan = %q, want free", settings.Plan)
		}
		if settings.ActiveProfile != models.ProfilePrivate {
			t.Errorf("ActiveProfile = %q, want private", settings.ActiveProfile)
		}
		if settings.Language != models.LangNorwegian {
			t.Errorf("Language = %q, want no", settings.Language)
		}
	})
}

func TestListEntries(t *testing.T) {
	t.Run("sorts newest first by createdAtIso", func(t *testing.T) {
		store := setupTestStore(t)
		for _, e := range []models.VisitEntry{
			testEntry("old", "2026-08-01T10:00:00Z", models.ProfilePrivate),
			testEntry("newest", "2026-08-03T10:00:00Z", models.ProfilePrivate),
			testEntry("middle", "2026-08-02T10:00:00Z", models.ProfilePrivate),
		} {
			if err := store.AddEntry(e); err != nil {
				t.Fatal(err)
			}
		}

		entries, err := store.ListEntries("")
		if err != nil {
			t.Fatalf("ListEntries() failed: %v", err)
		}
		want := []string{"newest", "middle", "old"}
		for i, id := range want {
			if entries[i].ID != id {
				t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, id)
			}
		}
	})

	t.Run("filters by profile", func(t *testing.T) {
		store := setupTestStore(t)
		store.AddEntry(testEntry("p1", "2026-08-01T10:00:00Z", models.ProfilePrivate))
		store.AddEntry(testEntry("w1", "2026-08-02T10:00:00Z", models.ProfileWork))
		store.AddEntry(testEntry("p2", "2026-08-03T10:00:00Z", models.ProfilePrivate))

		private, err := store.ListEntries(models.ProfilePrivate)
		if err != nil {
			t.Fatal(err)
		}
		if len(private) != 2 {
			t.Errorf("private entries = %d, want 2", len(private))
		}
		for _, e := range private {
			if e.ProfileID != models.ProfilePrivate {
				t.Errorf("entry %s leaked from profile %s", e.ID, e.ProfileID)
			}
		}

		work, err := store.ListEntries(models.ProfileWork)
		if err != nil {
			t.Fatal(err)
		}
		if len(work) != 1 || work[0].ID != "w1" {
			t.Errorf("work entries = %+v, want [w1]", work)
		}
	})

	t.Run("drops malformed records on read", func(t *testing.T) {
		store := setupTestStore(t)
		store.AddEntry(testEntry("good", "2026-08-01T10:00:00Z", models.ProfilePrivate))

		bad := testEntry("bad", "2026-08-02T10:00:00Z", models.ProfilePrivate)
		bad.Rating = "amazing"
		store.AddEntry(bad)

		entries, err := store.ListEntries("")
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].ID != "good" {
			t.Errorf("entries = %+v, want only the valid record", entries)
		}
	})
}

func TestDeleteEntry(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("e1", "2026-08-01T10:00:00Z", models.ProfilePrivate))
	store.AddEntry(testEntry("e2", "2026-08-02T10:00:00Z", models.ProfilePrivate))

	t.Run("removes the matching entry", func(t *testing.T) {
		if err := store.DeleteEntry("e1"); err != nil {
			t.Fatalf("DeleteEntry() failed: %v", err)
		}
		entries, _ := store.ListEntries("")
		if len(entries) != 1 || entries[0].ID != "e2" {
			t.Errorf("entries = %+v, want [e2]", entries)
		}
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		if err := store.DeleteEntry("nope"); err != nil {
			t.Errorf("DeleteEntry(unknown) returned error: %v", err)
		}
		entries, _ := store.ListEntries("")
		if len(entries) != 1 {
			t.Errorf("entries = %d, want 1", len(entries))
		}
	})
}

func TestClearEntries(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("p1", "2026-08-01T10:00:00Z", models.ProfilePrivate))
	store.AddEntry(testEntry("w1", "2026-08-02T10:00:00Z", models.ProfileWork))

	if err := store.ClearEntries(models.ProfileWork); err != nil {
		t.Fatalf("ClearEntries() failed: %v", err)
	}
	entries, _ := store.ListEntries("")
	if len(entries) != 1 || entries[0].ID != "p1" {
		t.Errorf("entries = %+v, want [p1]", entries)
	}

	if err := store.ClearEntries(""); err != nil {
		t.Fatalf("ClearEntries(all) failed: %v", err)
	}
	entries, _ = store.ListEntries("")
	if len(entries) != 0 {
		t.Errorf("entries = %d, want 0", len(entries))
	}
}

func TestCountEntries(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("p1", "2026-08-01T10:00:00Z", models.ProfilePrivate))
	store.AddEntry(testEntry("w1", "2026-08-02T10:00:00Z", models.ProfileWork))

	// The entitlement limit is global, so the count spans both profiles.
	count, err := store.CountEntries()
	if err != nil {
		t.Fatalf("CountEntries() failed: %v", err)
	}
	if count != 2 {
		t.Errorf("CountEntries() = %d, want 2", count)
	}
}

func TestBlobShape(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("e1", "2026-08-01T10:00:00Z", models.ProfilePrivate))

	data, err := os.ReadFile(store.GetConfigPath())
	if err != nil {
		t.Fatal(err)
	}

	var blob map[string]json.RawMessage
	if err := json.Unmarshal(data, &blob); err != nil {
		t.Fatalf("blob is not valid JSON: %v", err)
	}
	for _, key := range []string{"version", "settings", "entries"} {
		if _, ok := blob[key]; !ok {
			t.Errorf("blob missing %q key", key)
		}
	}
}
