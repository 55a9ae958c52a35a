// Package capture implements the photo capture flow: a small state machine
// that acquires a photo, collects rating/category/comment, runs the
// entitlement gate, and persists one new entry.
package capture

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/logger"
	"github.com/revisit-app/revisit/internal/models"
)

// Camera is the photo acquisition capability.
type Camera interface {
	RequestPermission() (bool, error)
	TakePicture() (string, error)
}

// Locator is the position lookup capability. Lookup failures are non-fatal.
type Locator interface {
	RequestPermission() (bool, error)
	CurrentPosition() (models.Location, error)
}

// Transformer resizes/compresses a raw photo before it is persisted.
type Transformer interface {
	Optimize(uri string) (string, error)
}

// Phase is the capture flow state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePhotoTaken
	PhaseSaving
)

// SaveStatus is the outcome of a save attempt.
type SaveStatus int

const (
	// StatusSaved means the entry was persisted.
	StatusSaved SaveStatus = iota
	// StatusLimitWarned means the soft free-tier warning fired; nothing was
	// saved and the user must press save again.
	StatusLimitWarned
	// StatusLimitBlocked means the hard free-tier limit is reached.
	StatusLimitBlocked
)

// SaveResult reports what a Save call did.
type SaveResult struct {
	Status SaveStatus
	Entry  models.VisitEntry
}

var (
	// ErrCameraPermission is returned when camera permission is not granted.
	ErrCameraPermission = errors.New("camera permission denied")
	// ErrNotReady is returned when Save is called without a photo and rating.
	ErrNotReady = errors.New("photo and rating are required before saving")
)

type locPermState int

const (
	locPermUnknown locPermState = iota
	locPermGranted
	locPermDenied // terminal, not retried
)

// Flow drives one capture session for the active profile.
type Flow struct {
	state       *app.State
	camera      Camera
	locator     Locator
	transformer Transformer
	guard       *entitlement.Guard

	phase    Phase
	photoURI string
	rating   models.Rating
	comment  string
	category models.CategoryID
	locPerm  locPermState

	now   func() time.Time
	newID func() string
}

func New(state *app.State, camera Camera, locator Locator, transformer Transformer) *Flow {
	return &Flow{
		state:       state,
		camera:      camera,
		locator:     locator,
		transformer: transformer,
		guard:       entitlement.NewGuard(),
		category:    models.CategoryOther,
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

func (f *Flow) Phase() Phase                { return f.phase }
func (f *Flow) PhotoURI() string            { return f.photoURI }
func (f *Flow) Rating() models.Rating       { return f.rating }
func (f *Flow) Comment() string             { return f.comment }
func (f *Flow) Category() models.CategoryID { return f.category }

// Activate marks the capture screen active again: the per-session soft
// warning becomes armed once more.
func (f *Flow) Activate() {
	f.guard.ResetSession()
}

// OnProfileSwitch discards in-progress capture state so a stale photo can
// never be attached to the wrong profile.
func (f *Flow) OnProfileSwitch() {
	f.Reset()
}

// Reset discards the current photo, rating, comment and category.
func (f *Flow) Reset() {
	f.phase = PhaseIdle
	f.photoURI = ""
	f.rating = ""
	f.comment = ""
	f.category = models.CategoryOther
}

// TakePhoto acquires and optimizes a photo. On any failure the flow stays
// idle and the error is returned for display; nothing is thrown past the
// flow boundary.
func (f *Flow) TakePhoto() error {
	if f.phase != PhaseIdle {
		return nil
	}

	granted, err := f.camera.RequestPermission()
	if err != nil {
		return fmt.Errorf("camera permission check failed: %w", err)
	}
	if !granted {
		return ErrCameraPermission
	}

	raw, err := f.camera.TakePicture()
	if err != nil {
		return fmt.Errorf("could not take photo: %w", err)
	}

	optimized, err := f.transformer.Optimize(raw)
	if err != nil {
		// Optimization is best-effort; keep the raw photo.
		logger.Warn("Photo optimization failed, keeping original", "error", err)
		optimized = raw
	}

	f.photoURI = optimized
	f.phase = PhasePhotoTaken
	return nil
}

func (f *Flow) SetRating(r models.Rating) {
	if models.IsRating(r) {
		f.rating = r
	}
}

func (f *Flow) SetComment(c string) {
	f.comment = c
}

func (f *Flow) SetCategory(c models.CategoryID) {
	f.category = models.NormalizeCategory(c)
}

// CanSave reports whether the save action is enabled.
func (f *Flow) CanSave() bool {
	return f.phase == PhasePhotoTaken && f.photoURI != "" && f.rating != ""
}

// Save runs the entitlement gate and persists the entry. The soft limit
// warning aborts the attempt without saving; the hard limit blocks it. A
// storage failure keeps the flow in PhasePhotoTaken with all fields intact
// so the user can retry.
func (f *Flow) Save() (SaveResult, error) {
	if !f.CanSave() {
		return SaveResult{}, ErrNotReady
	}

	plan := f.state.Plan()
	if plan == models.PlanFree {
		count, err := f.state.Store.CountEntries()
		if err != nil {
			return SaveResult{}, fmt.Errorf("could not check entry count: %w", err)
		}
		switch f.guard.CheckSave(plan, count) {
		case entitlement.Block:
			return SaveResult{Status: StatusLimitBlocked}, nil
		case entitlement.Warn:
			return SaveResult{Status: StatusLimitWarned}, nil
		}
	}

	f.phase = PhaseSaving

	entry := models.VisitEntry{
		ID:           f.newID(),
		CreatedAtIso: f.now().UTC().Format(time.RFC3339),
		PhotoURI:     f.photoURI,
		Rating:       f.rating,
		Comment:      strings.TrimSpace(f.comment),
		Location:     f.lookupLocation(),
		ProfileID:    f.state.ActiveProfile(),
		CategoryID:   models.NormalizeCategory(f.category),
	}

	if err := f.state.Store.AddEntry(entry); err != nil {
		// Form state is preserved for retry.
		f.phase = PhasePhotoTaken
		return SaveResult{}, fmt.Errorf("could not save the moment: %w", err)
	}

	f.Reset()
	return SaveResult{Status: StatusSaved, Entry: entry}, nil
}

// lookupLocation is best-effort: a denied permission or failed lookup yields
// no location, never an error. Denial is terminal for the flow's lifetime.
func (f *Flow) lookupLocation() *models.Location {
	if f.locator == nil || f.locPerm == locPermDenied {
		return nil
	}

	if f.locPerm == locPermUnknown {
		granted, err := f.locator.RequestPermission()
		if err != nil || !granted {
			if err != nil {
				logger.Warn("Location permission check failed", "error", err)
			}
			f.locPerm = locPermDenied
			return nil
		}
		f.locPerm = locPermGranted
	}

	loc, err := f.locator.CurrentPosition()
	if err != nil {
		logger.Warn("Location lookup failed", "error", err)
		return nil
	}
	return &loc
}
