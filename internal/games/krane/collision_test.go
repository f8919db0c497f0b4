package krane

import (
	"testing"

	"github.com/vovakirdan/kampala-krane/internal/config"
)

func TestCollides(t *testing.T) {
	hb := config.DefaultKraneConfig().Player.Hitbox
	// Sprite at screen (100, 200) 40x40: hitbox spans x 112-128, y 212-228.
	p := Player{X: 100, Y: 360, W: 40, H: 40}
	hit := HitBox(p, 600, hb)

	tests := []struct {
		name     string
		o        Obstacle
		expected bool
	}{
		{"wire above hitbox", Obstacle{X: 120, TopHeight: 250, Gap: 200}, true},
		{"chimney below hitbox", Obstacle{X: 120, TopHeight: 50, Gap: 170}, true},
		{"inside the gap", Obstacle{X: 120, TopHeight: 200, Gap: 350}, false},
		{"sprite edge only (forgiven)", Obstacle{X: 130, TopHeight: 250, Gap: 200}, false},
		{"touching hitbox edge", Obstacle{X: 128, TopHeight: 250, Gap: 200}, false},
		{"left of hitbox", Obstacle{X: 105, TopHeight: 250, Gap: 200}, false},
		{"overlapping left edge", Obstacle{X: 107, TopHeight: 250, Gap: 200}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Collides(hit, tc.o, 6); got != tc.expected {
				t.Errorf("Collides() = %v, expected %v (hit %+v)", got, tc.expected, hit)
			}
		})
	}
}

func TestOutOfBounds(t *testing.T) {
	tests := []struct {
		y        float64
		expected bool
	}{
		{-0.1, true},
		{0, false},
		{300, false},
		{560, false},
		{560.5, true},
	}
	for _, tc := range tests {
		p := Player{Y: tc.y, H: 40}
		if got := OutOfBounds(p, 600); got != tc.expected {
			t.Errorf("OutOfBounds(y=%v) = %v, expected %v", tc.y, got, tc.expected)
		}
	}
}

func TestScorePassedIdempotent(t *testing.T) {
	obs := []Obstacle{{X: 50}, {X: 200}}

	if got := ScorePassed(obs, 100, 6); got != 1 {
		t.Fatalf("ScorePassed() = %d, expected 1", got)
	}
	if !obs[0].Passed || obs[1].Passed {
		t.Errorf("Passed flags = %v/%v, expected true/false", obs[0].Passed, obs[1].Passed)
	}
	if got := ScorePassed(obs, 100, 6); got != 0 {
		t.Errorf("second ScorePassed() = %d, expected 0", got)
	}
}

func TestScorePassedTrailingEdge(t *testing.T) {
	// Trailing edge exactly at the crane's rear edge has not passed yet.
	obs := []Obstacle{{X: 94}}
	if got := ScorePassed(obs, 100, 6); got != 0 {
		t.Errorf("ScorePassed() = %d, expected 0", got)
	}
	// Still under the sprite's front half.
	obs[0].X = 120
	if got := ScorePassed(obs, 100, 6); got != 0 {
		t.Errorf("ScorePassed() under the sprite = %d, expected 0", got)
	}
	obs[0].X = 93.9
	if got := ScorePassed(obs, 100, 6); got != 1 {
		t.Errorf("ScorePassed() = %d, expected 1", got)
	}
}

func TestAnimatorCycle(t *testing.T) {
	a := NewAnimator(10, 6)

	tests := []struct {
		ticks    int
		expected int
	}{
		{5, 0},
		{6, 1},
		{12, 2},
		{59, 9},
		{60, 0},
		{66, 1},
	}
	done := 0
	for _, tc := range tests {
		for done < tc.ticks {
			a.Tick()
			done++
		}
		if got := a.Frame(); got != tc.expected {
			t.Errorf("Frame() after %d ticks = %d, expected %d", tc.ticks, got, tc.expected)
		}
	}

	a.Reset()
	if a.Frame() != 0 {
		t.Errorf("Frame() after Reset = %d, expected 0", a.Frame())
	}
}
