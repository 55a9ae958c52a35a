package tui

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/revisit-app/revisit/internal/constants"
	"github.com/revisit-app/revisit/internal/entitlement"
	"github.com/revisit-app/revisit/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.session {
	case constants.StateCapture:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		} else {
			content = m.viewCapture()
		}
	case constants.StatePhotoTaken:
		if m.form != nil {
			content = docStyle.Render(m.form.View())
		} else {
			content = m.viewPhotoTaken()
		}
	case constants.StateLog:
		content = m.viewLog()
	case constants.StateConfirmDelete:
		content = m.viewConfirmDelete()
	case constants.StatePaywall:
		content = m.viewPaywall()
	case constants.StateSettings:
		content = m.viewSettings()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	var tabs []string
	titles := []string{m.state.T("app.tabs.capture"), m.state.T("app.tabs.log"), "⚙"}

	active := 0
	switch m.session {
	case constants.StateLog, constants.StateConfirmDelete:
		active = 1
	case constants.StateSettings:
		active = 2
	}

	for i, title := range titles {
		if i == active {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}

	profile := m.state.T("app.profiles.private")
	if m.state.ActiveProfile() == models.ProfileWork {
		profile = m.state.T("app.profiles.work")
	}
	badges := inactiveTabStyle.Render(profile + " · " + string(m.state.Lang()))
	if m.state.Plan() == models.PlanPro {
		badges += " " + badgeStyle.Render("PRO")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, append(tabs, badges)...)
}

func (m Model) viewCapture() string {
	lines := []string{
		titleStyle.Render(m.state.T("app.title")),
		subtitleStyle.Render(m.state.T("app.subtitle")),
		"",
	}

	if m.captureError != "" {
		lines = append(lines, dangerStyle.Render(m.captureError), "")
	}
	if m.captureStatus != "" {
		lines = append(lines, statusStyle.Render(m.captureStatus), "")
	}

	lines = append(lines,
		fmt.Sprintf("[t] %s", m.state.T("capture.takePhoto")),
		subtitleStyle.Render(m.state.T("capture.saveHint")),
	)

	if m.state.Plan() == models.PlanFree {
		count, err := m.state.Store.CountEntries()
		if err == nil && count >= constants.FreeWarnAt {
			lines = append(lines, "",
				warningStyle.Render(fmt.Sprintf("%d/%d", count, constants.FreeMaxEntries)))
		}
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewPhotoTaken() string {
	cat := models.CategoryByID(m.flow.Category())

	lines := []string{
		titleStyle.Render(m.state.T("app.tabs.capture")),
		"",
		"📷 " + filepath.Base(m.flow.PhotoURI()),
		cat.Emoji + " " + m.state.T(cat.LabelKey),
	}
	if m.flow.Rating() != "" {
		lines = append(lines, m.state.T("log.rating."+string(m.flow.Rating())))
	}
	if m.flow.Comment() != "" {
		lines = append(lines, "💬 "+m.flow.Comment())
	}
	if m.captureError != "" {
		lines = append(lines, "", dangerStyle.Render(m.captureError))
	}

	lines = append(lines, "",
		fmt.Sprintf("[s] %s  [e] %s  [r] %s",
			m.state.T("capture.save"),
			m.state.T("capture.edit"),
			m.state.T("capture.retakePhoto")),
	)

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewLog() string {
	filter := m.state.T("log.showAll")
	if m.filterCategory != "" {
		cat := models.CategoryByID(m.filterCategory)
		filter = cat.Emoji + " " + m.state.T(cat.LabelKey)
	}
	header := titleStyle.Render(m.state.T("log.title")) +
		subtitleStyle.Render(fmt.Sprintf("  %d %s · %s: %s",
			m.logList.Count(), m.state.T("log.entries"), m.state.T("log.filter"), filter))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", m.logList.View()))
}

func (m Model) viewConfirmDelete() string {
	target := ""
	if entry, ok := m.logList.SelectedEntry(); ok {
		cat := models.CategoryByID(entry.CategoryID)
		target = subtitleStyle.Render(cat.Emoji + " " + entry.CreatedAtIso)
	}

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(m.state.T("log.deleteDialogTitle")),
			"",
			target,
			m.state.T("log.deleteDialogMsg"),
			"",
			fmt.Sprintf("[y] %s   [n] %s", m.state.T("log.confirmDelete"), m.state.T("log.cancel")),
		),
	)
}

func (m Model) viewPaywall() string {
	var title, msg string
	switch m.paywall {
	case paywallWarn:
		title = m.state.T("capture.limitWarnTitle")
		msg = m.state.Tf("capture.limitWarnMsg", map[string]string{"max": strconv.Itoa(constants.FreeMaxEntries)})
	case paywallBlock:
		title = m.state.T("capture.limitHardTitle")
		msg = m.state.Tf("capture.limitHardMsg", map[string]string{"max": strconv.Itoa(constants.FreeMaxEntries)})
	case paywallProfile:
		title = m.state.T("capture.lockedProfileTitle")
		msg = m.state.T("capture.lockedProfileMsg")
	}

	style := warningStyle
	if m.paywall == paywallBlock {
		style = dangerStyle
	}

	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			style.Render(title),
			"",
			msg,
			"",
			fmt.Sprintf("[enter] %s", m.state.T("paywall.secondary")),
		),
	)
}

func (m Model) viewSettings() string {
	limits := entitlement.LimitsFor(m.state.Plan())
	count, _ := m.state.Store.CountEntries()

	usage := fmt.Sprintf("%d", count)
	if !limits.Unlimited {
		usage = fmt.Sprintf("%d / %d", count, limits.MaxEntries)
	}

	profile := m.state.T("app.profiles.private")
	if m.state.ActiveProfile() == models.ProfileWork {
		profile = m.state.T("app.profiles.work")
	}

	lines := []string{
		titleStyle.Render("⚙"),
		"",
		fmt.Sprintf("%s: %s  [g]", m.state.T("language.label"), m.state.Lang()),
		fmt.Sprintf("%s: %s  [p]", m.state.T("log.title"), profile),
		fmt.Sprintf("Plan: %s · %s %s", m.state.Plan(), usage, m.state.T("log.entries")),
	}
	if m.debug {
		lines = append(lines, "", subtitleStyle.Render("[u] free ⇄ pro"))
	}

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
