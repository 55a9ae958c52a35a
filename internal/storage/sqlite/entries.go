package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
)

func (s *Store) AddEntry(e models.VisitEntry) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var lat, lon, acc any
	if e.Location != nil {
		lat, lon = e.Location.Lat, e.Location.Lon
		if e.Location.AccuracyM != nil {
			acc = *e.Location.AccuracyM
		}
	}

	_, err := s.db.Exec(`
		INSERT INTO entries (id, created_at_iso, photo_uri, rating, comment, lat, lon, accuracy_m, profile_id, category_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAtIso, e.PhotoURI, string(e.Rating), e.Comment,
		lat, lon, acc, string(e.ProfileID), string(e.CategoryID),
	)
	if err != nil {
		return fmt.Errorf("failed to add entry: %w", err)
	}
	return nil
}

func (s *Store) ListEntries(profile models.ProfileID) ([]models.VisitEntry, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}

	// Sort in SQL by the ISO string; lexicographic order is chronological.
	// seq DESC keeps insertion order stable for equal timestamps.
	query := `
		SELECT id, created_at_iso, photo_uri, rating, comment, lat, lon, accuracy_m, profile_id, category_id
		FROM entries ORDER BY created_at_iso DESC, seq DESC`
	args := []any{}
	if profile != "" {
		query = `
		SELECT id, created_at_iso, photo_uri, rating, comment, lat, lon, accuracy_m, profile_id, category_id
		FROM entries WHERE profile_id = ? ORDER BY created_at_iso DESC, seq DESC`
		args = append(args, string(profile))
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []models.VisitEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}

		res := models.SanitizeEntry(e)
		if !res.OK {
			logger.Warn("Dropping malformed entry", "id", e.ID, "reason", res.Reason)
			continue
		}
		entries = append(entries, res.Entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read entries: %w", err)
	}
	if entries == nil {
		entries = []models.VisitEntry{}
	}

	return entries, nil
}

func scanEntry(rows *sql.Rows) (models.VisitEntry, error) {
	var (
		e                       models.VisitEntry
		id, created, photo      sql.NullString
		rating, profile, cat    sql.NullString
		comment                 sql.NullString
		lat, lon, acc           sql.NullFloat64
	)

	if err := rows.Scan(&id, &created, &photo, &rating, &comment, &lat, &lon, &acc, &profile, &cat); err != nil {
		return models.VisitEntry{}, fmt.Errorf("failed to scan entry: %w", err)
	}

	e.ID = id.String
	e.CreatedAtIso = created.String
	e.PhotoURI = photo.String
	e.Rating = models.Rating(rating.String)
	e.Comment = comment.String
	e.ProfileID = models.ProfileID(profile.String)
	e.CategoryID = models.CategoryID(cat.String)

	if lat.Valid && lon.Valid {
		loc := &models.Location{Lat: lat.Float64, Lon: lon.Float64}
		if acc.Valid {
			a := acc.Float64
			loc.AccuracyM = &a
		}
		e.Location = loc
	}

	return e, nil
}

func (s *Store) DeleteEntry(id string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	if _, err := s.db.Exec("DELETE FROM entries WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	return nil
}

func (s *Store) ClearEntries(profile models.ProfileID) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}

	var err error
	if profile == "" {
		_, err = s.db.Exec("DELETE FROM entries")
	} else {
		_, err = s.db.Exec("DELETE FROM entries WHERE profile_id = ?", string(profile))
	}
	if err != nil {
		return fmt.Errorf("failed to clear entries: %w", err)
	}
	return nil
}

func (s *Store) CountEntries() (int, error) {
	if s.db == nil {
		return 0, fmt.Errorf("storage not loaded")
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM entries").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
