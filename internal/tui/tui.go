package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/prodviz/prodviz/internal/tracker"
)

// RunTrackerTUI starts the interactive hour tracker for today
func RunTrackerTUI(tr *tracker.Tracker) error {
	model, err := NewTrackerModel(tr)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()

	tr.Unsubscribe(model.events)

	if err != nil {
		return err
	}

	// Handle exit messages after TUI closes
	if m, ok := finalModel.(TrackerModel); ok {
		if m.err != nil {
			fmt.Printf("❌ Error: %v\n", m.err)
		} else if m.summary != nil {
			fmt.Printf("✨ %s: %.1f%% achievement over %d rated hours\n",
				m.summary.Date, m.summary.AchievementPercentage, m.summary.TotalHoursRated)
		}
	}

	return nil
}
