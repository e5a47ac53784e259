// Package tui provides the interactive layout picker.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/cwel/waybarctl/internal/catalog"
)

// Lister supplies the entries and the active layout path shown in the
// picker.
type Lister interface {
	List() ([]catalog.Entry, error)
}

// Model is the bubbletea model for the layout picker.
type Model struct {
	lister  Lister
	current string // active layout path, marked in the list

	entries  []catalog.Entry
	filtered []int // indices into entries; nil means unfiltered

	cursor      int
	filterInput textinput.Model
	filterMode  bool
	width       int
	height      int
	err         error
	quitting    bool
	choice      string // layout path chosen on enter
}

// New creates a picker over the given catalog.
func New(lister Lister, current string) Model {
	ti := textinput.New()
	ti.Placeholder = "filter..."
	ti.CharLimit = 50

	return Model{
		lister:      lister,
		current:     current,
		filterInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.loadEntries
}

func (m Model) loadEntries() tea.Msg {
	if m.lister == nil {
		return entriesLoadedMsg{}
	}
	entries, err := m.lister.List()
	if err != nil {
		return errMsg{err}
	}
	return entriesLoadedMsg{entries}
}

type entriesLoadedMsg struct{ entries []catalog.Entry }
type errMsg struct{ err error }

// Choice returns the layout path chosen by the user, or empty if the picker
// was cancelled.
func (m Model) Choice() string {
	return m.choice
}

// visible returns the indices of the entries currently shown.
func (m Model) visible() []int {
	if m.filtered != nil {
		return m.filtered
	}
	all := make([]int, len(m.entries))
	for i := range m.entries {
		all[i] = i
	}
	return all
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case entriesLoadedMsg:
		m.entries = msg.entries
		return m, nil

	case errMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.filterMode {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}

	return m, nil
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "j", "down":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}

	case "/":
		m.filterMode = true
		m.filterInput.Focus()
		return m, textinput.Blink

	case "enter":
		visible := m.visible()
		if m.cursor < len(visible) {
			m.choice = m.entries[visible[m.cursor]].Path
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filterMode = false
		m.filterInput.Blur()
		m.filterInput.SetValue("")
		m.filtered = nil
		m.cursor = 0
		return m, nil

	case "enter":
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *Model) applyFilter() {
	query := m.filterInput.Value()
	if query == "" {
		m.filtered = nil
		m.cursor = 0
		return
	}

	matches := fuzzy.Find(query, catalog.Names(m.entries))
	m.filtered = make([]int, len(matches))
	for i, match := range matches {
		m.filtered[i] = match.Index
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
}
