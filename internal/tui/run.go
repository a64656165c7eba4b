package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/halcyonic/pulse/internal/report"
)

// Run starts the dashboard and blocks until the user quits.
func Run(source DataSource, generator *report.Generator) error {
	program := tea.NewProgram(NewModel(source, generator), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	return nil
}
