// Package tui is the interactive terminal frontend: a capture tab that walks
// through photo, rating, category and comment, and a log tab for browsing,
// filtering and deleting saved moments.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/capture"
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/device"
	"github.com/revisit-app/revisit/internal/models"
	"github.com/revisit-app/revisit/internal/tui/components/logview"
)

// CaptureFormModel holds the capture form field values while a huh form is
// active.
type CaptureFormModel struct {
	PhotoPath string
	Rating    models.Rating
	Category  models.CategoryID
	Comment   string
}

type formKind int

const (
	formNone formKind = iota
	formPhoto
	formDetails
)

type paywallKind int

const (
	paywallWarn paywallKind = iota
	paywallBlock
	paywallProfile
)

type Model struct {
	state  *app.State
	flow   *capture.Flow
	camera *device.FileCamera

	session         constants.SessionState
	previousSession constants.SessionState
	keys            KeyMap
	help            help.Model
	logList         logview.Model
	form            *huh.Form
	formKind        formKind
	captureForm     *CaptureFormModel
	filterCategory  models.CategoryID // empty means all categories
	filterIdx       int               // 0 = all, 1..len(Categories) indexes models.Categories
	paywall         paywallKind
	entryToDeleteID string
	captureStatus   string
	captureError    string
	debug           bool
	quitting        bool
	width           int
	height          int
}

func NewModel(state *app.State, photoDir string, debug bool) Model {
	camera := device.NewFileCamera()
	flow := capture.New(state, camera, device.DeniedLocator{}, device.NewJPEGTransformer(photoDir))
	flow.Activate()

	m := Model{
		state:   state,
		flow:    flow,
		camera:  camera,
		session: constants.StateCapture,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logList: logview.New(nil, 0, 0),
		debug:   debug,
	}
	m.refreshLog()
	return m
}

// refreshLog reloads the log list for the active profile and category filter.
func (m *Model) refreshLog() {
	m.logList.EmptyText = m.state.T("log.emptyMsg")

	entries, err := m.state.Store.ListEntries(m.state.ActiveProfile())
	if err != nil {
		m.logList.SetEntries(nil)
		return
	}
	if m.filterCategory != "" {
		filtered := entries[:0:0]
		for _, e := range entries {
			if e.CategoryID == m.filterCategory {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}
	m.logList.SetEntries(entries)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.session {
	case constants.StateCapture:
		keys = append(keys, m.keys.TakePhoto, m.keys.Profile)
	case constants.StatePhotoTaken:
		keys = append(keys, m.keys.Save, m.keys.Edit, m.keys.Retake)
	case constants.StateLog:
		keys = append(keys, m.keys.Filter, m.keys.Profile)
	case constants.StateSettings:
		keys = append(keys, m.keys.Language, m.keys.Profile)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help, m.keys.Profile}
	actions := []key.Binding{m.keys.TakePhoto, m.keys.Save, m.keys.Edit, m.keys.Retake, m.keys.Filter, m.keys.Language}
	if m.debug {
		actions = append(actions, m.keys.Plan)
	}
	return [][]key.Binding{global, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// newPhotoForm asks for the image file to ingest as the "camera" shot.
func (m *Model) newPhotoForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(m.state.T("capture.takePhoto")).
				Description(m.state.T("capture.saveHint")).
				Value(&m.captureForm.PhotoPath),
		),
	).WithTheme(huh.ThemeDracula())
}

// newDetailsForm collects rating, category and comment for the taken photo.
func (m *Model) newDetailsForm() *huh.Form {
	catOpts := make([]huh.Option[models.CategoryID], len(models.Categories))
	for i, c := range models.Categories {
		catOpts[i] = huh.NewOption(c.Emoji+" "+m.state.T(c.LabelKey), c.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Rating]().
				Title(m.state.T("capture.ratingQ")).
				Options(
					huh.NewOption(m.state.T("capture.rating.yes"), models.RatingYes),
					huh.NewOption(m.state.T("capture.rating.neutral"), models.RatingNeutral),
					huh.NewOption(m.state.T("capture.rating.no"), models.RatingNo),
				).
				Value(&m.captureForm.Rating),
			huh.NewSelect[models.CategoryID]().
				Title(m.state.T("capture.categoryLabel")).
				Description(m.state.T("capture.categoryHint")).
				Options(catOpts...).
				Value(&m.captureForm.Category),
			huh.NewInput().
				Title(m.state.T("capture.commentLabel")).
				Placeholder(m.state.T("capture.commentPlaceholder")).
				Value(&m.captureForm.Comment),
		),
	).WithTheme(huh.ThemeDracula())
}
