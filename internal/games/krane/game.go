package krane

import (
	"github.com/vovakirdan/kampala-krane/internal/canvas"
	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
	"github.com/vovakirdan/kampala-krane/internal/registry"
)

// Game adapts the simulation and renderer to the registry contract.
type Game struct {
	id       string
	title    string
	cfg      config.KraneConfig
	sim      *Sim
	renderer *Renderer
}

// New creates the score-scaled, viewport-tracking game.
func New(cfg config.KraneConfig) *Game {
	g := &Game{id: "krane", title: "Kampala Krane", cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// NewClassic creates the legacy variant: static difficulty on a fixed
// viewport.
func NewClassic(cfg config.KraneConfig) *Game {
	g := &Game{id: "krane-classic", title: "Kampala Krane (Classic)", cfg: config.Classic(cfg)}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.KraneConfig {
	return g.cfg
}

func (g *Game) fixed() bool {
	return g.cfg.Viewport.Mode == config.ViewportFixed
}

// Reset discards any run and returns to ready with fresh random streams
// seeded from rc.Seed.
func (g *Game) Reset(rc core.RuntimeConfig) {
	w, h := float64(rc.ScreenW), float64(rc.ScreenH)
	if g.fixed() {
		w, h = float64(g.cfg.Viewport.Width), float64(g.cfg.Viewport.Height)
	}
	layout, sparks := newStreams(rc.Seed)
	g.sim = newSim(g.cfg, w, h, layout)
	g.renderer = NewRenderer(g.cfg, sparks)
}

// Tap feeds the single input event.
func (g *Game) Tap() core.Event {
	return g.sim.Tap()
}

// Step advances the game by one frame.
func (g *Game) Step() core.StepResult {
	return g.sim.Step()
}

// Render draws the current frame.
func (g *Game) Render(dst canvas.Surface) {
	g.renderer.Draw(dst, g.sim.Snapshot())
}

// Resize tracks the host surface. Fixed-viewport games ignore it.
func (g *Game) Resize(w, h int) {
	if g.fixed() {
		return
	}
	g.sim.Resize(float64(w), float64(h))
}

// Viewport returns the logical viewport size.
func (g *Game) Viewport() (float64, float64) {
	return g.sim.Viewport()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return g.sim.State()
}

// Snapshot returns a read-only copy of the simulation.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register("krane", func(cfg config.KraneConfig) registry.Game {
		return New(cfg)
	})
	registry.Register("krane-classic", func(cfg config.KraneConfig) registry.Game {
		return NewClassic(cfg)
	})
}
