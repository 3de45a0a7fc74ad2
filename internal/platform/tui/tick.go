// Package tui provides the Bubble Tea integration for amazer.
// It hosts the interactive area viewer, locally and over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTimeout is how long a status line stays visible.
const statusTimeout = 4 * time.Second

// clearStatusMsg expires the status line set at the given generation.
type clearStatusMsg int

// clearStatusCmd returns a Bubble Tea command that clears status generation gen.
func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg(gen)
	})
}
