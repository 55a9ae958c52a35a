package device

import "github.com/revisit-app/revisit/internal/models"

// StaticLocator serves a fixed position supplied by the user (e.g. via CLI
// flags). Permission is granted exactly when a position was supplied.
type StaticLocator struct {
	Location *models.Location
}

func (l *StaticLocator) RequestPermission() (bool, error) {
	return l.Location != nil, nil
}

func (l *StaticLocator) CurrentPosition() (models.Location, error) {
	return *l.Location, nil
}

// DeniedLocator always denies permission; used when no position source is
// available.
type DeniedLocator struct{}

func (DeniedLocator) RequestPermission() (bool, error) { return false, nil }

func (DeniedLocator) CurrentPosition() (models.Location, error) {
	return models.Location{}, nil
}
