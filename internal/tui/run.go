package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/logsweep/logsweep/internal/types"
)

// Run opens the review screen over files with pending removals and
// returns the approved paths. A cancelled review returns nil.
func Run(files []types.FileResult) ([]string, error) {
	m := NewModel(files)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("error running review: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.Approved(), nil
	}
	return nil, nil
}
