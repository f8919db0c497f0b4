package krane

import (
	"testing"

	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

func newTestSim(seed int64) *Sim {
	layout, _ := newStreams(seed)
	return newSim(config.DefaultKraneConfig(), 800, 600, layout)
}

func TestSimStartsReady(t *testing.T) {
	s := newTestSim(1)

	if got := s.State(); got.State != core.StateReady || got.Score != 0 {
		t.Fatalf("State() = %+v, expected ready with score 0", got)
	}
	before := s.Snapshot()
	res := s.Step()
	after := s.Snapshot()
	if res.State.State != core.StateReady || after.Ticks != 0 || after.Player != before.Player {
		t.Error("Step() in ready should not advance the simulation")
	}
	if len(after.Obstacles) != 0 {
		t.Error("obstacles should only spawn while playing")
	}
}

func TestTapTransitions(t *testing.T) {
	s := newTestSim(1)

	// ready: start without impulse
	if ev := s.Tap(); ev != core.EventStart {
		t.Errorf("Tap() in ready = %v, expected start", ev)
	}
	if s.State().State != core.StatePlaying {
		t.Fatalf("state = %v, expected playing", s.State().State)
	}
	if v := s.Snapshot().Player.Vel; v != 0 {
		t.Errorf("Vel after start = %v, expected 0", v)
	}

	// playing: flap
	if ev := s.Tap(); ev != core.EventFlap {
		t.Errorf("Tap() in playing = %v, expected flap", ev)
	}
	if v := s.Snapshot().Player.Vel; v != 3 {
		t.Errorf("Vel after flap = %v, expected 3", v)
	}
}

func TestSpawnPosition(t *testing.T) {
	s := newTestSim(1)
	p := s.Snapshot().Player
	// spawn_y 200 from the top of a 600px viewport
	if p.X != 100 || p.Y != 360 || p.W != 40 || p.H != 40 {
		t.Errorf("spawn = %+v, expected x=100 altitude=360 40x40", p)
	}
	if b := p.ScreenBox(600); b.Y != 200 {
		t.Errorf("screen top = %v, expected 200", b.Y)
	}
}

func TestFirstObstacleAtViewportWidth(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	s.Step()

	obs := s.Snapshot().Obstacles
	if len(obs) != 1 {
		t.Fatalf("len(Obstacles) = %d, expected 1", len(obs))
	}
	if obs[0].X != 800 {
		t.Errorf("first obstacle x = %v, expected 800", obs[0].X)
	}
}

func TestFallingEndsRun(t *testing.T) {
	s := newTestSim(1)
	s.Tap()

	var res core.StepResult
	ticks := 0
	for s.State().State == core.StatePlaying {
		res = s.Step()
		ticks++
		if ticks > 1000 {
			t.Fatal("run never ended")
		}
	}
	// altitude 360 - 0.05*n*(n+1) drops below 0 at n = 85
	if ticks != 85 {
		t.Errorf("run ended after %d ticks, expected 85", ticks)
	}
	if !res.Has(core.EventCrash) {
		t.Error("final step should report a crash")
	}
	if res.State.State != core.StateGameOver {
		t.Errorf("state = %v, expected gameOver", res.State.State)
	}

	// No further mutation after the run ends
	before := s.Snapshot()
	s.Step()
	after := s.Snapshot()
	if after.Ticks != before.Ticks || after.Player != before.Player {
		t.Error("Step() after gameOver mutated the simulation")
	}
}

func TestRestartResets(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	for s.State().State == core.StatePlaying {
		s.Step()
	}
	s.score = 7

	if ev := s.Tap(); ev != core.EventRestart {
		t.Fatalf("Tap() in gameOver = %v, expected restart", ev)
	}
	snap := s.Snapshot()
	if snap.State.State != core.StatePlaying || snap.State.Score != 0 {
		t.Errorf("State = %+v, expected playing with score 0", snap.State)
	}
	if len(snap.Obstacles) != 0 {
		t.Errorf("len(Obstacles) = %d, expected 0", len(snap.Obstacles))
	}
	expected := Player{X: 100, Y: 360, W: 40, H: 40}
	if snap.Player != expected {
		t.Errorf("Player = %+v, expected %+v", snap.Player, expected)
	}
	if snap.Frame != 0 || snap.Ticks != 0 {
		t.Errorf("Frame/Ticks = %d/%d, expected 0/0", snap.Frame, snap.Ticks)
	}
}

func TestScoringOncePerObstacle(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	// Trailing edge 93+6 lands just behind the rear edge 100 after one step.
	s.obstacles.obstacles = append(s.obstacles.obstacles, Obstacle{X: 95, TopHeight: 100, Gap: 350})

	res := s.Step()
	if !res.Has(core.EventScore) || res.State.Score != 1 {
		t.Fatalf("Step() = %+v, expected one score event", res)
	}
	res = s.Step()
	if res.Has(core.EventScore) || res.State.Score != 1 {
		t.Errorf("second Step() = %+v, expected score to stay 1", res)
	}
}

func TestScoringCompletesOnCrash(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	s.player.Y = 0.05 // crosses the floor this step
	s.obstacles.obstacles = append(s.obstacles.obstacles, Obstacle{X: 95, TopHeight: 100, Gap: 350})

	res := s.Step()
	if !res.Has(core.EventCrash) {
		t.Fatal("expected crash")
	}
	if res.State.Score != 1 {
		t.Errorf("Score = %d, expected scoring to complete on the crash frame", res.State.Score)
	}
}

func TestCrashIntoObstacleScoresNothing(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	// Wire and chimney leave a 5px gap, far smaller than the crane.
	s.obstacles.obstacles = append(s.obstacles.obstacles, Obstacle{X: 140, TopHeight: 590, Gap: 5})

	var res core.StepResult
	for i := 0; i < 60 && res.State.State != core.StateGameOver; i++ {
		res = s.Step()
	}
	if res.State.State != core.StateGameOver {
		t.Fatalf("State = %v, expected the crane to hit the obstacle", res.State.State)
	}
	if res.State.Score != 0 {
		t.Errorf("Score = %d, expected 0 after crashing into the only obstacle", res.State.Score)
	}
	if s.obstacles.obstacles[0].Passed {
		t.Error("obstacle the crane crashed into should not be marked passed")
	}
}

func TestScaledGapAtScore(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	s.score = 12
	s.Step()

	if gap := s.Snapshot().Obstacles[0].Gap; gap != 290 {
		t.Errorf("Gap at score 12 = %v, expected 290", gap)
	}
}

func TestGapFixedAtSpawn(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	s.Step()
	s.score = 40
	s.Step()

	if gap := s.Snapshot().Obstacles[0].Gap; gap != 350 {
		t.Errorf("existing obstacle gap = %v, expected 350", gap)
	}
}

func TestSimDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		s := newTestSim(seed)
		s.Tap()
		for i := 0; i < 2000 && s.State().State == core.StatePlaying; i++ {
			if i%25 == 0 {
				s.Tap()
			}
			s.Step()
		}
		return s.Snapshot()
	}

	a, b := run(42), run(42)
	if a.Ticks != b.Ticks || a.State != b.State || a.Spawned != b.Spawned {
		t.Fatalf("runs differ: %+v vs %+v", a.State, b.State)
	}
	if len(a.Obstacles) != len(b.Obstacles) {
		t.Fatalf("obstacle counts differ: %d vs %d", len(a.Obstacles), len(b.Obstacles))
	}
	for i := range a.Obstacles {
		if a.Obstacles[i] != b.Obstacles[i] {
			t.Errorf("obstacle %d differs: %+v vs %+v", i, a.Obstacles[i], b.Obstacles[i])
		}
	}
}

func TestSeedChangesLayout(t *testing.T) {
	first := func(seed int64) float64 {
		s := newTestSim(seed)
		s.Tap()
		s.Step()
		return s.Snapshot().Obstacles[0].TopHeight
	}
	if first(1) == first(2) {
		t.Error("different seeds produced the same first obstacle")
	}
}

func TestResizeClampsAndKeepsObstacles(t *testing.T) {
	s := newTestSim(1)
	s.Tap()
	s.Step()
	top := s.Snapshot().Obstacles[0].TopHeight

	s.Resize(50, 40)
	w, h := s.Viewport()
	if w != 100 || h != 100 {
		t.Errorf("Viewport() = %vx%v, expected clamped 100x100", w, h)
	}
	if got := s.Snapshot().Obstacles[0].TopHeight; got != top {
		t.Errorf("TopHeight after resize = %v, expected %v", got, top)
	}
}

func TestResizeKeepsDistanceFromTop(t *testing.T) {
	s := newTestSim(1)
	before := s.Snapshot().Player.ScreenBox(600).Y
	s.Resize(800, 700)
	after := s.Snapshot().Player.ScreenBox(700).Y
	if before != after {
		t.Errorf("screen top moved from %v to %v", before, after)
	}
}
