package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwel/waybarctl/internal/tui"
)

// runPicker launches the interactive layout picker and applies the chosen
// layout.
func runPicker() error {
	e, err := setup()
	if err != nil {
		return err
	}

	rec, err := e.ctl.Current()
	if err != nil {
		return err
	}

	m := tui.New(e.ctl.Catalog(), rec.LayoutPath)
	p := tea.NewProgram(m, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}

	choice := finalModel.(tui.Model).Choice()
	if choice == "" {
		return nil
	}
	return e.ctl.Set(choice)
}
