package krane

import (
	"math/rand"

	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

// Sim owns all mutable run state: the player, the obstacle sequence,
// animation counters, score and run state. Only Tap and Step write it.
type Sim struct {
	cfg       config.KraneConfig
	scaler    *config.Scaler
	viewW     float64
	viewH     float64
	player    Player
	obstacles *ObstacleManager
	anim      Animator
	state     core.RunState
	score     int
	ticks     int
}

// newSim creates a simulation in the ready state for a viewW x viewH
// viewport, drawing obstacle layout from layout.
func newSim(cfg config.KraneConfig, viewW, viewH float64, layout *rand.Rand) *Sim {
	s := &Sim{
		cfg:       cfg,
		scaler:    config.NewScaler(cfg),
		obstacles: NewObstacleManager(layout, cfg.Obstacles.Width, cfg.Obstacles.SpawnMargin),
		anim:      NewAnimator(cfg.Animation.Frames, cfg.Animation.TicksPerFrame),
	}
	s.Resize(viewW, viewH)
	s.resetRun()
	return s
}

// resetRun puts the player at spawn and clears obstacles, score and
// animation. The run state is left to the caller.
func (s *Sim) resetRun() {
	s.player = s.spawn()
	s.obstacles.Reset()
	s.anim.Reset()
	s.score = 0
	s.ticks = 0
}

// spawn returns the player at its configured spawn point. When the
// viewport is too short for it the player is centered vertically.
func (s *Sim) spawn() Player {
	pc := s.cfg.Player
	y := s.viewH - pc.SpawnY - pc.Height
	if y < 0 {
		y = (s.viewH - pc.Height) / 2
	}
	return Player{X: pc.X, Y: y, W: pc.Width, H: pc.Height}
}

// Resize changes the viewport, clamped to the minimum size. Spawned
// obstacles keep their geometry; new ones use the new bounds. The player
// keeps its distance from the top edge.
func (s *Sim) Resize(w, h float64) {
	w = max(w, core.MinViewportW)
	h = max(h, core.MinViewportH)
	if s.viewH > 0 {
		s.player.Y += h - s.viewH
	}
	s.viewW, s.viewH = w, h
}

// Viewport returns the logical viewport size.
func (s *Sim) Viewport() (float64, float64) {
	return s.viewW, s.viewH
}

// Tap is the single input. In ready it starts the run without an
// impulse, in playing it flaps, in gameOver it restarts.
func (s *Sim) Tap() core.Event {
	switch s.state {
	case core.StateReady:
		s.state = core.StatePlaying
		return core.EventStart
	case core.StatePlaying:
		Impulse(&s.player, s.cfg.Physics.JumpImpulse)
		return core.EventFlap
	case core.StateGameOver:
		s.resetRun()
		s.state = core.StatePlaying
		return core.EventRestart
	default:
		return core.EventNone
	}
}

// Step runs one frame of the simulation. It does nothing outside playing.
func (s *Sim) Step() core.StepResult {
	if s.state != core.StatePlaying {
		return core.StepResult{State: s.State()}
	}
	var events []core.Event

	s.ticks++
	Integrate(&s.player, s.cfg.Physics.Gravity)
	s.anim.Tick()

	s.obstacles.Advance(s.scaler.Speed(s.score), s.cfg.Obstacles.SparkStep)
	s.obstacles.MaybeSpawn(s.viewW, s.viewH, s.scaler.Spacing(s.score), s.scaler.Gap(s.score))
	s.obstacles.Retire()

	// Every check runs to completion even after one of them ends the run.
	width := s.obstacles.Width()
	hit := HitBox(s.player, s.viewH, s.cfg.Player.Hitbox)
	crashed := false
	for _, o := range s.obstacles.Obstacles() {
		if Collides(hit, o, width) {
			crashed = true
		}
	}
	passed := ScorePassed(s.obstacles.Obstacles(), s.player.X, width)
	for i := 0; i < passed; i++ {
		events = append(events, core.EventScore)
	}
	s.score += passed

	if OutOfBounds(s.player, s.viewH) {
		crashed = true
	}
	if crashed {
		s.state = core.StateGameOver
		events = append(events, core.EventCrash)
	}

	return core.StepResult{State: s.State(), Events: events}
}

// State returns the only state the presentation layer may read.
func (s *Sim) State() core.GameState {
	return core.GameState{State: s.state, Score: s.score}
}

// Snapshot is a read-only copy of the simulation for rendering, tests and
// the autopilot.
type Snapshot struct {
	State         core.GameState
	Player        Player
	Obstacles     []Obstacle
	Frame         int
	Ticks         int
	Spawned       int
	ViewW, ViewH  float64
	ObstacleWidth float64
}

// Snapshot copies the current state.
func (s *Sim) Snapshot() Snapshot {
	return Snapshot{
		State:         s.State(),
		Player:        s.player,
		Obstacles:     append([]Obstacle(nil), s.obstacles.Obstacles()...),
		Frame:         s.anim.Frame(),
		Ticks:         s.ticks,
		Spawned:       s.obstacles.Spawned(),
		ViewW:         s.viewW,
		ViewH:         s.viewH,
		ObstacleWidth: s.obstacles.Width(),
	}
}
