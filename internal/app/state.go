// Package app holds the explicit application state: the chosen language,
// plan tier, and active profile, loaded from storage before the first render
// instead of living in process-wide singletons.
package app

import (
	"errors"

	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/i18n"
	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
	"github.com/revisit-app/revisit/internal/storage"
)

// ErrProfileLocked is returned when the work profile is selected under the
// free plan.
var ErrProfileLocked = errors.New("work profile requires pro")

// State is the shared application state handed to every screen and command.
type State struct {
	Store    storage.Provider
	settings models.Settings
	tr       *i18n.Translator
}

// Load reads the persisted settings and applies the startup rules: a
// never-chosen language is detected from the device locale and persisted,
// and a stored work profile under a free plan is forced back to private.
func Load(store storage.Provider) (*State, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return nil, err
	}

	dirty := false

	if settings.Language == "" {
		settings.Language = i18n.DeviceLanguage()
		dirty = true
	}

	if settings.Plan == models.PlanFree && settings.ActiveProfile == models.ProfileWork {
		settings.ActiveProfile = models.ProfilePrivate
		dirty = true
	}

	if dirty {
		if err := store.SaveSettings(settings); err != nil {
			return nil, err
		}
	}

	return &State{
		Store:    store,
		settings: settings,
		tr:       i18n.New(settings.Language),
	}, nil
}

func (s *State) Settings() models.Settings       { return s.settings }
func (s *State) Plan() models.Plan               { return s.settings.Plan }
func (s *State) ActiveProfile() models.ProfileID { return s.settings.ActiveProfile }
func (s *State) Lang() models.Language           { return s.settings.Language }

// T resolves a display-text key in the current language.
func (s *State) T(key string) string { return s.tr.T(key) }

// Tf resolves a display-text key with placeholder substitution.
func (s *State) Tf(key string, vars map[string]string) string { return s.tr.Tf(key, vars) }

func (s *State) SetLanguage(lang models.Language) error {
	s.settings.Language = models.NormalizeLanguage(lang)
	s.tr = i18n.New(s.settings.Language)
	return s.Store.SaveSettings(s.settings)
}

// SetPlan changes the plan tier. Dropping to free while the work profile is
// active forces the profile back to private in the same write.
func (s *State) SetPlan(plan models.Plan) error {
	s.settings.Plan = models.NormalizePlan(plan)
	if s.settings.Plan == models.PlanFree && s.settings.ActiveProfile == models.ProfileWork {
		logger.Info("Plan dropped to free, forcing profile back to private")
		s.settings.ActiveProfile = models.ProfilePrivate
	}
	return s.Store.SaveSettings(s.settings)
}

// SetProfile switches the active profile; the work profile is gated behind
// pro.
func (s *State) SetProfile(profile models.ProfileID) error {
	profile = models.NormalizeProfile(profile)
	if !entitlement.IsProfileAllowed(s.settings.Plan, profile) {
		return ErrProfileLocked
	}
	s.settings.ActiveProfile = profile
	return s.Store.SaveSettings(s.settings)
}
