package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/revisit-app/revisit/internal/app"
	"github.com/revisit-app/revisit/internal/capture"
	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/models"
	"github.com/revisit-app/revisit/internal/tui/components/logview"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logList.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case logview.DeleteEntryMsg:
		m.entryToDeleteID = msg.ID
		m.session = constants.StateConfirmDelete
		return m, nil
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	// While the log filter captures input, every key belongs to the list.
	if m.session == constants.StateLog && m.logList.Filtering() {
		var cmd tea.Cmd
		m.logList, cmd = m.logList.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			if !m.inDialog() {
				m.switchTab(1)
			}
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			if !m.inDialog() {
				m.switchTab(-1)
			}
			return m, nil
		case key.Matches(msg, m.keys.Profile):
			if !m.inDialog() {
				m.toggleProfile()
			}
			return m, nil
		case key.Matches(msg, m.keys.Plan):
			if m.debug {
				m.togglePlan()
			}
			return m, nil
		}
	}

	switch m.session {
	case constants.StateCapture:
		return m.updateCapture(msg)
	case constants.StatePhotoTaken:
		return m.updatePhotoTaken(msg)
	case constants.StateLog:
		return m.updateLog(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case constants.StatePaywall:
		return m.updatePaywall(msg)
	case constants.StateSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

// inDialog reports whether a dialog holds the screen; global navigation keys
// are ignored until it is answered.
func (m Model) inDialog() bool {
	return m.session == constants.StateConfirmDelete || m.session == constants.StatePaywall
}

// switchTab cycles Capture, Log, Settings. The photo-taken screen belongs to
// the capture tab; its flow state survives tab switches.
func (m *Model) switchTab(dir int) {
	tabs := []constants.SessionState{constants.StateCapture, constants.StateLog, constants.StateSettings}

	current := 0
	switch m.session {
	case constants.StateLog, constants.StateConfirmDelete:
		current = 1
	case constants.StateSettings:
		current = 2
	}

	next := tabs[(current+dir+len(tabs))%len(tabs)]
	switch next {
	case constants.StateCapture:
		m.flow.Activate()
		if m.flow.Phase() == capture.PhasePhotoTaken {
			m.session = constants.StatePhotoTaken
			return
		}
	case constants.StateLog:
		m.refreshLog()
	}
	m.session = next
}

func (m *Model) toggleProfile() {
	target := models.ProfileWork
	if m.state.ActiveProfile() == models.ProfileWork {
		target = models.ProfilePrivate
	}

	if err := m.state.SetProfile(target); err != nil {
		if errors.Is(err, app.ErrProfileLocked) {
			m.paywall = paywallProfile
			m.previousSession = m.session
			m.session = constants.StatePaywall
		}
		return
	}

	m.flow.OnProfileSwitch()
	m.captureStatus = ""
	m.captureError = ""
	if m.session == constants.StatePhotoTaken {
		m.session = constants.StateCapture
	}
	m.refreshLog()
}

func (m *Model) togglePlan() {
	target := models.PlanPro
	if m.state.Plan() == models.PlanPro {
		target = models.PlanFree
	}
	if err := m.state.SetPlan(target); err != nil {
		return
	}
	m.refreshLog()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyEsc {
		m.closeForm()
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		kind := m.formKind
		m.form = nil
		m.formKind = formNone
		if kind == formPhoto {
			return m.completePhotoForm(cmds)
		}
		return m.completeDetailsForm(cmds)
	case huh.StateAborted:
		m.closeForm()
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	if m.flow.Phase() == capture.PhasePhotoTaken {
		m.session = constants.StatePhotoTaken
	} else {
		m.session = constants.StateCapture
	}
}

func (m Model) completePhotoForm(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m.camera.SetSource(strings.TrimSpace(m.captureForm.PhotoPath))

	if err := m.flow.TakePhoto(); err != nil {
		if errors.Is(err, capture.ErrCameraPermission) {
			m.captureError = m.state.T("capture.cameraPerm")
		} else {
			m.captureError = m.state.T("capture.errTakePhoto")
		}
		m.session = constants.StateCapture
		return m, tea.Batch(cmds...)
	}

	m.captureError = ""
	m.captureStatus = ""
	m.captureForm.Category = m.flow.Category()
	m.form = m.newDetailsForm()
	m.formKind = formDetails
	m.session = constants.StatePhotoTaken
	return m, tea.Batch(append(cmds, m.form.Init())...)
}

func (m Model) completeDetailsForm(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	m.flow.SetRating(m.captureForm.Rating)
	m.flow.SetCategory(m.captureForm.Category)
	m.flow.SetComment(m.captureForm.Comment)
	return m.attemptSave(cmds)
}

func (m Model) attemptSave(cmds []tea.Cmd) (tea.Model, tea.Cmd) {
	result, err := m.flow.Save()
	if err != nil {
		m.captureError = m.state.T("capture.errSave")
		m.session = constants.StatePhotoTaken
		return m, tea.Batch(cmds...)
	}

	switch result.Status {
	case capture.StatusSaved:
		m.captureStatus = m.state.T("capture.savedMsg")
		m.captureError = ""
		m.session = constants.StateCapture
		m.refreshLog()
	case capture.StatusLimitWarned:
		m.paywall = paywallWarn
		m.previousSession = constants.StatePhotoTaken
		m.session = constants.StatePaywall
	case capture.StatusLimitBlocked:
		m.paywall = paywallBlock
		m.previousSession = constants.StatePhotoTaken
		m.session = constants.StatePaywall
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateCapture(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.TakePhoto) {
			m.captureForm = &CaptureFormModel{Category: models.CategoryOther}
			m.captureStatus = ""
			m.form = m.newPhotoForm()
			m.formKind = formPhoto
			return m, m.form.Init()
		}
	}
	return m, nil
}

func (m Model) updatePhotoTaken(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Save):
			if m.flow.CanSave() {
				return m.attemptSave(nil)
			}
		case key.Matches(msg, m.keys.Edit):
			m.captureForm = &CaptureFormModel{
				Rating:   m.flow.Rating(),
				Category: m.flow.Category(),
				Comment:  m.flow.Comment(),
			}
			m.form = m.newDetailsForm()
			m.formKind = formDetails
			return m, m.form.Init()
		case key.Matches(msg, m.keys.Retake):
			m.flow.Reset()
			m.session = constants.StateCapture
		}
	}
	return m, nil
}

func (m Model) updateLog(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Filter) {
			m.filterIdx = (m.filterIdx + 1) % (len(models.Categories) + 1)
			if m.filterIdx == 0 {
				m.filterCategory = ""
			} else {
				m.filterCategory = models.Categories[m.filterIdx-1].ID
			}
			m.refreshLog()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.logList, cmd = m.logList.Update(msg)
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "enter":
			if err := m.state.Store.DeleteEntry(m.entryToDeleteID); err == nil {
				m.refreshLog()
			}
			m.entryToDeleteID = ""
			m.session = constants.StateLog
		case "n", "esc":
			m.entryToDeleteID = ""
			m.session = constants.StateLog
		}
	}
	return m, nil
}

func (m Model) updatePaywall(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter", "esc", " ":
			m.session = m.previousSession
		}
	}
	return m, nil
}

func (m Model) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, m.keys.Language) {
			target := models.LangNorwegian
			if m.state.Lang() == models.LangNorwegian {
				target = models.LangEnglish
			}
			if err := m.state.SetLanguage(target); err == nil {
				m.refreshLog()
			}
		}
	}
	return m, nil
}
