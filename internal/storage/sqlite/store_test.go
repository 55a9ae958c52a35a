package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/revisit-app/revisit/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "revisit.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testEntry(id, createdAt string, profile models.ProfileID) models.VisitEntry {
	return models.VisitEntry{
		ID:           id,
		CreatedAtIso: createdAt,
		PhotoURI:     "/photos/" + id + ".jpg",
		Rating:       models.RatingNeutral,
		ProfileID:    profile,
		CategoryID:   models.CategoryRestaurant,
	}
}

func TestInitAndLoad(t *testing.T) {
	t.Run("init runs migrations", func(t *testing.T) {
		store := setupTestStore(t)

		var count int
		err := store.GetDB().QueryRow("SELECT count(*) FROM entries").Scan(&count)
		if err != nil {
			t.Fatalf("entries table missing after Init: %v", err)
		}
	})

	t.Run("load validates schema version", func(t *testing.T) {
		store := setupTestStore(t)
		path := store.GetConfigPath()
		store.Close()

		reopened := NewStore(path)
		if err := reopened.Load(); err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		reopened.Close()
	})

	t.Run("load on missing file reports uninitialized", func(t *testing.T) {
		store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
		if err := store.Load(); err == nil {
			t.Error("Load() on missing file should fail")
		}
	})
}

func TestEntriesRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	acc := 12.5
	entry := testEntry("e1", "2026-08-01T10:00:00Z", models.ProfilePrivate)
	entry.Comment = "worth a revisit"
	entry.Location = &models.Location{Lat: 59.91, Lon: 10.75, AccuracyM: &acc}

	if err := store.AddEntry(entry); err != nil {
		t.Fatalf("AddEntry() failed: %v", err)
	}

	entries, err := store.ListEntries("")
	if err != nil {
		t.Fatalf("ListEntries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}

	got := entries[0]
	if got.ID != "e1" || got.Comment != "worth a revisit" {
		t.Errorf("entry = %+v", got)
	}
	if got.Location == nil || got.Location.Lat != 59.91 || got.Location.Lon != 10.75 {
		t.Errorf("location = %+v, want 59.91/10.75", got.Location)
	}
	if got.Location.AccuracyM == nil || *got.Location.AccuracyM != 12.5 {
		t.Errorf("accuracy = %v, want 12.5", got.Location.AccuracyM)
	}
}

func TestListOrderAndFilter(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("old", "2026-08-01T10:00:00Z", models.ProfilePrivate))
	store.AddEntry(testEntry("new", "2026-08-02T10:00:00Z", models.ProfileWork))
	store.AddEntry(testEntry("newest", "2026-08-03T10:00:00Z", models.ProfilePrivate))

	t.Run("all profiles newest first", func(t *testing.T) {
		entries, err := store.ListEntries("")
		if err != nil {
			t.Fatal(err)
		}
		want := []string{"newest", "new", "old"}
		if len(entries) != len(want) {
			t.Fatalf("entries = %d, want %d", len(entries), len(want))
		}
		for i, id := range want {
			if entries[i].ID != id {
				t.Errorf("entries[%d].ID = %q, want %q", i, entries[i].ID, id)
			}
		}
	})

	t.Run("profile filter", func(t *testing.T) {
		entries, err := store.ListEntries(models.ProfileWork)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].ID != "new" {
			t.Errorf("work entries = %+v, want [new]", entries)
		}
	})

	t.Run("count spans profiles", func(t *testing.T) {
		count, err := store.CountEntries()
		if err != nil {
			t.Fatal(err)
		}
		if count != 3 {
			t.Errorf("CountEntries() = %d, want 3", count)
		}
	})
}

func TestMalformedRowsAreDropped(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("good", "2026-08-01T10:00:00Z", models.ProfilePrivate))

	// The schema allows null columns so a partially written row can exist;
	// reads must drop it silently.
	_, err := store.GetDB().Exec(
		"INSERT INTO entries (id, created_at_iso, rating, profile_id) VALUES (?, ?, ?, ?)",
		"bad", "2026-08-02T10:00:00Z", "yes", "private")
	if err != nil {
		t.Fatalf("failed to insert malformed row: %v", err)
	}

	entries, err := store.ListEntries("")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].ID != "good" {
		t.Errorf("entries = %+v, want only the valid row", entries)
	}
}

func TestDeleteAndClear(t *testing.T) {
	store := setupTestStore(t)
	store.AddEntry(testEntry("p1", "2026-08-01T10:00:00Z", models.ProfilePrivate))
	store.AddEntry(testEntry("w1", "2026-08-02T10:00:00Z", models.ProfileWork))

	if err := store.DeleteEntry("p1"); err != nil {
		t.Fatalf("DeleteEntry() failed: %v", err)
	}
	if err := store.DeleteEntry("p1"); err != nil {
		t.Errorf("repeat DeleteEntry() should be a no-op, got: %v", err)
	}

	if err := store.ClearEntries(models.ProfileWork); err != nil {
		t.Fatalf("ClearEntries() failed: %v", err)
	}
	count, _ := store.CountEntries()
	if count != 0 {
		t.Errorf("CountEntries() = %d, want 0", count)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.Plan != models.PlanFree || settings.ActiveProfile != models.ProfilePrivate {
		t.Errorf("defaults = %+v, want free/private", settings)
	}
	if settings.Language != "" {
		t.Errorf("Language = %q, want empty before first choice", settings.Language)
	}

	want := models.Settings{
		Language:      models.LangEnglish,
		Plan:          models.PlanPro,
		ActiveProfile: models.ProfileWork,
	}
	if err := store.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("settings = %+v, want %+v", got, want)
	}
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := setupTestStore(t)

	applied, err := store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if applied != 0 {
		t.Errorf("Migrate() after Init applied %d migrations, want 0", applied)
	}
}
