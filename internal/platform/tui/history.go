package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunRecord is one finished run of this session. Nothing is persisted.
type RunRecord struct {
	Run      int
	Score    int
	Ticks    int
	Duration time.Duration
}

// history lists the session's runs, newest first.
type history struct {
	runs  []RunRecord
	table table.Model
}

func newHistory(height int) history {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Score", Width: 7},
		{Title: "Ticks", Width: 8},
		{Title: "Time", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(height-6, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return history{table: t}
}

// add records a finished run.
func (h *history) add(r RunRecord) {
	h.runs = append(h.runs, r)
	h.refresh()
}

// best returns the highest score of the session.
func (h history) best() int {
	best := 0
	for _, r := range h.runs {
		best = max(best, r.Score)
	}
	return best
}

func (h *history) refresh() {
	rows := make([]table.Row, 0, len(h.runs))
	for i := len(h.runs) - 1; i >= 0; i-- {
		r := h.runs[i]
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", r.Run),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Ticks),
			r.Duration.Round(100 * time.Millisecond).String(),
		})
	}
	h.table.SetRows(rows)
	h.table.GotoTop()
}

func (h *history) resize(height int) {
	h.table.SetHeight(max(height-6, 3))
}

func (h history) update(msg tea.Msg) (history, tea.Cmd) {
	var cmd tea.Cmd
	h.table, cmd = h.table.Update(msg)
	return h, cmd
}

func (h history) view(width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	body := h.table.View()
	if len(h.runs) == 0 {
		body = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2).
			Render("No runs yet.\nTap to fly!")
	}

	title := fmt.Sprintf("RUNS - best %d", h.best())
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, titleStyle.Render(title), boxStyle.Render(body)))
}
