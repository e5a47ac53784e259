package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err)
	}

	title := titleStyle.Render("waybarctl")

	var list strings.Builder
	visible := m.visible()
	if len(visible) == 0 {
		list.WriteString(itemStyle.Render("no layouts found"))
	}
	for row, idx := range visible {
		entry := m.entries[idx]

		indicator := inactiveIndicator.String()
		if entry.Path == m.current {
			indicator = activeIndicator.String()
		}

		line := indicator + " " + entry.Name
		if row == m.cursor {
			list.WriteString(selectedItemStyle.Render("> " + line))
		} else {
			list.WriteString(itemStyle.Render(line))
		}
		list.WriteString("\n")
	}

	var footer string
	if m.filterMode {
		footer = filterPromptStyle.Render("/") + m.filterInput.View()
	} else {
		footer = helpStyle.Render("enter apply · j/k move · / filter · q quit")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, list.String(), footer)
}
