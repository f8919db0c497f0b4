package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kampala-krane/internal/audio"
	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/core"
	"github.com/vovakirdan/kampala-krane/internal/loop"
	"github.com/vovakirdan/kampala-krane/internal/registry"
)

// Logical pixels covered by one terminal cell. 80x24 cells map to an
// 800x600 viewport.
const (
	CellW = 10
	CellH = 25
)

// footerRows are reserved below the game surface for the hint line.
const footerRows = 1

// EffectPlayer plays sound effects. *audio.SoundManager satisfies it.
type EffectPlayer interface {
	Play(e audio.Effect)
}

// Options configures the terminal frontend.
type Options struct {
	Width, Height int   // initial terminal size in cells
	TickRate      int   // frames per second
	Seed          int64 // 0 means time-based
	Art           map[canvas.ImageID]canvas.Art
	Sound         EffectPlayer // nil for silence
	Logger        *log.Logger  // nil discards
	ScreenshotDir string       // default ~/.krane/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   registry.Game
	opts   Options
	screen *core.Screen // last rendered game frame
	cells  *canvas.Cells
	driver loop.Driver
	state  core.GameState
	keys   KeyMap
	help   help.Model
	hist   history
	logger *log.Logger

	width, height int   // terminal size in cells
	unavailable   error // set while the terminal cannot host a run
	showHistory   bool
	quitting      bool

	runs     int
	runTicks int
	runStart time.Time
	lastShot string
}

// NewModel creates a new Bubble Tea model for the given game and resets
// it to ready.
func NewModel(game registry.Game, opts Options) Model {
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	// Use time-based seed if not specified
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   h,
		hist:   newHistory(opts.Height),
		logger: logger,
	}
	m.screen = core.NewScreen(opts.Width, max(opts.Height-footerRows, 1))
	m.cells = canvas.NewCells(m.screen, CellW, CellH)
	m.cells.RegisterAll(opts.Art)

	m.game.Reset(core.RuntimeConfig{
		ScreenW:  opts.Width * CellW,
		ScreenH:  (opts.Height - footerRows) * CellH,
		TickRate: opts.TickRate,
		Seed:     opts.Seed,
	})
	m.state = m.game.State()
	m.resize(opts.Width, opts.Height)
	return m
}

// Init sets the window title. Frames start on the first tap.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.game.Title())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if isClick(msg) && !m.showHistory {
			return m.tap()
		}
		return m, nil

	case tea.WindowSizeMsg:
		cmd := m.resize(msg.Width, msg.Height)
		return m, cmd

	case FrameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.driver.Stop()
		return m, tea.Quit
	case core.ActionHistory:
		// Frames keep running during play, so the table only opens between runs.
		if m.state.State != core.StatePlaying {
			m.showHistory = !m.showHistory
		}
		return m, nil
	case core.ActionScreenshot:
		m.saveScreenshot()
		return m, nil
	case core.ActionTap:
		if !m.showHistory {
			return m.tap()
		}
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.hist, cmd = m.hist.update(msg)
		return m, cmd
	}
	return m, nil
}

// tap feeds the single game input and starts the frame chain when a run
// begins.
func (m Model) tap() (tea.Model, tea.Cmd) {
	if m.unavailable != nil {
		return m, nil
	}

	ev := m.game.Tap()
	m.play(ev)
	m.state = m.game.State()

	switch ev {
	case core.EventStart, core.EventRestart:
		m.driver.Start()
		m.runs++
		m.runTicks = 0
		m.runStart = time.Now()
		w, h := m.game.Viewport()
		m.logger.Info("run started", "run", m.runs, "seed", m.opts.Seed, "viewport", fmt.Sprintf("%.0fx%.0f", w, h))
		return m, m.next()
	}
	return m, nil
}

// next schedules the successor frame of the current run, if any.
func (m *Model) next() tea.Cmd {
	id, ok := m.driver.Next()
	if !ok {
		return nil
	}
	return frameCmd(id, loop.Interval(m.opts.TickRate))
}

// handleFrame advances the simulation by one frame.
func (m Model) handleFrame(msg FrameMsg) (tea.Model, tea.Cmd) {
	if !m.driver.Claim(msg.Run) {
		return m, nil
	}

	res := m.game.Step()
	m.runTicks++
	for _, ev := range res.Events {
		m.play(ev)
	}
	if res.Has(core.EventScore) {
		m.logger.Debug("obstacle passed", "run", m.runs, "score", res.State.Score)
	}
	m.state = res.State
	m.render()

	if res.State.State != core.StatePlaying {
		m.driver.Stop()
		m.finishRun()
		return m, nil
	}
	return m, m.next()
}

func (m *Model) finishRun() {
	rec := RunRecord{
		Run:      m.runs,
		Score:    m.state.Score,
		Ticks:    m.runTicks,
		Duration: time.Since(m.runStart),
	}
	m.hist.add(rec)
	m.logger.Info("run ended", "run", rec.Run, "score", rec.Score, "ticks", rec.Ticks)
}

func (m *Model) play(ev core.Event) {
	if m.opts.Sound == nil {
		return
	}
	if e := audio.EffectFor(ev); e != audio.EffectNone {
		m.opts.Sound.Play(e)
	}
}

// resize maps the terminal to a logical viewport and redraws the frozen
// frame at the new size. A run interrupted by a too-small terminal
// resumes once the surface is usable again.
func (m *Model) resize(width, height int) tea.Cmd {
	m.width, m.height = width, height
	rows := max(height-footerRows, 1)
	m.screen.Resize(width, rows)
	m.hist.resize(height)
	m.help.Width = width

	w, h := width*CellW, rows*CellH
	if err := core.ValidateViewport(w, h); err != nil {
		if m.unavailable == nil {
			m.logger.Warn("surface unavailable", "cols", width, "rows", rows, "error", err)
		}
		m.unavailable = err
		m.driver.Stop()
		drawUnavailable(m.screen, err)
		return nil
	}
	m.unavailable = nil

	m.game.Resize(w, h)
	vw, vh := m.game.Viewport()
	m.cells.SetScale(vw/float64(width), vh/float64(rows))
	m.logger.Debug("viewport resized", "cols", width, "rows", rows, "viewport", fmt.Sprintf("%.0fx%.0f", vw, vh))
	m.render()

	if m.state.State == core.StatePlaying && !m.driver.Active() {
		m.driver.Start()
		return m.next()
	}
	return nil
}

func (m *Model) render() {
	m.game.Render(m.cells)
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.logger.Warn("screenshot skipped", "error", err)
			return
		}
		dir = filepath.Join(home, ".krane", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.composite().String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// composite returns the frozen game frame with the overlay for the
// current state on top.
func (m Model) composite() *core.Screen {
	frame := m.screen.Clone()
	if m.unavailable == nil {
		drawOverlay(frame, m.state)
	}
	return frame
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHistory {
		return m.hist.view(m.width) + "\n" + m.help.View(m.keys)
	}

	hint := hintText
	if m.state.State == core.StatePlaying {
		hint = fmt.Sprintf("Score: %d", m.state.Score)
	}
	footer := lipgloss.NewStyle().Foreground(lipgloss.Color(core.Hex(core.ColorHint)))
	return RenderScreen(m.composite()) + "\n" + footer.Render(hint+"  "+m.help.View(m.keys))
}

// State returns what the overlay reads: run state and score.
func (m Model) State() core.GameState {
	return m.state
}

// History returns the finished runs of this session.
func (m Model) History() []RunRecord {
	return m.hist.runs
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are taps
	)

	_, err := p.Run()
	return err
}
