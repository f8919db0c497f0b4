// Package tui provides the Bubble Tea frontend for the game.
// It owns the terminal, maps keys and clicks to taps, and drives frames
// while a run is playing.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/kampala-krane/internal/loop"
)

// FrameMsg asks the model to advance one frame of the given run.
type FrameMsg struct {
	Run loop.RunID
}

// frameCmd schedules a frame message after interval. A zero interval
// delivers it immediately.
func frameCmd(run loop.RunID, interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return func() tea.Msg {
			return FrameMsg{Run: run}
		}
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Run: run}
	})
}
