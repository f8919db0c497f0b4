package krane

import (
	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/core"
)

// HitBox returns the forgiving part of the sprite used against obstacles,
// in screen coordinates.
func HitBox(p Player, viewH float64, hb config.Hitbox) core.Box {
	return p.ScreenBox(viewH).Inset(hb.Left, hb.Right, hb.Top, hb.Bottom)
}

// Collides reports whether hit touches the obstacle's wire or chimney:
// the spans overlap horizontally and hit reaches above the gap's top or
// below its bottom.
func Collides(hit core.Box, o Obstacle, width float64) bool {
	column := core.Box{X: o.X, Y: hit.Y, W: width, H: hit.H}
	if !hit.Overlaps(column) {
		return false
	}
	return hit.Y < o.TopHeight || hit.Bottom() > o.GapBottom()
}

// OutOfBounds reports whether the player left the viewport through the
// floor or the ceiling.
func OutOfBounds(p Player, viewH float64) bool {
	return p.Y < 0 || p.Y+p.H > viewH
}

// ScorePassed marks every unpassed obstacle whose trailing edge is behind
// rearEdge, the sprite's left side, and returns how many were marked. The
// crane has fully cleared an obstacle by then. Each obstacle scores once.
func ScorePassed(obstacles []Obstacle, rearEdge, width float64) int {
	n := 0
	for i := range obstacles {
		if !obstacles[i].Passed && obstacles[i].X+width < rearEdge {
			obstacles[i].Passed = true
			n++
		}
	}
	return n
}
