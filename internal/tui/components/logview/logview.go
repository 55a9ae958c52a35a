package logview

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/revisit-app/revisit/internal/models"
)

type DeleteEntryMsg struct {
	ID string
}

type Item struct {
	Entry models.VisitEntry
}

func ratingGlyph(r models.Rating) string {
	switch r {
	case models.RatingYes:
		return "🙂"
	case models.RatingNeutral:
		return "😐"
	case models.RatingNo:
		return "🙁"
	}
	return "?"
}

func (i Item) Title() string {
	cat := models.CategoryByID(i.Entry.CategoryID)
	return fmt.Sprintf("%s %s %s", cat.Emoji, ratingGlyph(i.Entry.Rating), i.Entry.CreatedAtIso)
}

func (i Item) Description() string {
	gps := "(no GPS)"
	if i.Entry.Location != nil {
		gps = fmt.Sprintf("%.5f,%.5f", i.Entry.Location.Lat, i.Entry.Location.Lon)
	}
	if i.Entry.Comment != "" {
		return i.Entry.Comment + " | " + gps
	}
	return filepath.Base(i.Entry.PhotoURI) + " | " + gps
}

func (i Item) FilterValue() string {
	return i.Entry.Comment + " " + string(i.Entry.CategoryID)
}

type KeyMap struct {
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap

	// EmptyText is shown when there are no entries; the parent owns the
	// localized string.
	EmptyText string
}

func New(entries []models.VisitEntry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.SetShowTitle(false)
	l.SetShowHelp(false) // We handle help globally in the main model

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []models.VisitEntry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

func (m Model) Count() int {
	return len(m.list.Items())
}

// Filtering reports whether the list's fuzzy filter is capturing input.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) SelectedEntry() (models.VisitEntry, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Entry, true
	}
	return models.VisitEntry{}, false
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteEntryMsg{ID: i.Entry.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  " + m.EmptyText
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
