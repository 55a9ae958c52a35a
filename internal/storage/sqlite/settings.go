package sqlite

import (
	"fmt"

	"github.com/revisit-app/revisit/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	if s.db == nil {
		return models.Settings{}, fmt.Errorf("storage not loaded")
	}

	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return models.Settings{}, err
	}
	defer rows.Close()

	// Missing keys fall back to the hard-coded defaults.
	settings := models.DefaultSettings()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return models.Settings{}, err
		}
		switch key {
		case "language":
			if value != "" {
				settings.Language = models.NormalizeLanguage(models.Language(value))
			}
		case "plan":
			settings.Plan = models.NormalizePlan(models.Plan(value))
		case "profile":
			settings.ActiveProfile = models.NormalizeProfile(models.ProfileID(value))
		}
	}
	if err := rows.Err(); err != nil {
		return models.Settings{}, err
	}

	return settings, nil
}

func (s *Store) SaveSettings(settings models.Settings) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO settings (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	if _, err := stmt.Exec("language", string(settings.Language)); err != nil {
		return err
	}
	if _, err := stmt.Exec("plan", string(settings.Plan)); err != nil {
		return err
	}
	if _, err := stmt.Exec("profile", string(settings.ActiveProfile)); err != nil {
		return err
	}

	return tx.Commit()
}
