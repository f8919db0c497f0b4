// Package krane implements Kampala Krane: a crane flies between
// electrical wires and chimneys, flapping on every tap.
//
// The simulation is pure. It never logs, never sleeps and never touches a
// real surface; frontends drive it with Tap and Step and draw it through
// a canvas.Surface.
package krane

import "github.com/vovakirdan/kampala-krane/internal/core"

// Player is the crane. Vertical motion uses an altitude frame: Y is the
// height of the sprite's bottom edge above the viewport floor and Vel is
// positive upward.
type Player struct {
	X, Y float64
	W, H float64
	Vel  float64
}

// ScreenBox returns the sprite's box in screen coordinates (y down) for a
// viewport of height viewH.
func (p Player) ScreenBox(viewH float64) core.Box {
	return core.Box{X: p.X, Y: viewH - p.Y - p.H, W: p.W, H: p.H}
}

// Obstacle is one wire and chimney pair. Coordinates are screen space.
type Obstacle struct {
	X           float64 // left edge
	TopHeight   float64 // wire spans y=0 to TopHeight
	Gap         float64 // opening below TopHeight, fixed at spawn
	Passed      bool
	SparkOffset float64 // decorative phase, grows without bound
}

// GapBottom returns the y where the chimney starts.
func (o Obstacle) GapBottom() float64 {
	return o.TopHeight + o.Gap
}
