package krane

// Autopilot taps whenever the crane is predicted to sink below the
// centre of the next gap. It reads snapshots only.
type Autopilot struct {
	Gravity   float64 // per tick, altitude frame
	Jump      float64
	Lookahead int // ticks to predict ahead
}

// NewAutopilot creates an autopilot for the given physics.
func NewAutopilot(gravity, jump float64) *Autopilot {
	return &Autopilot{Gravity: gravity, Jump: jump, Lookahead: 12}
}

// Decide reports whether to tap this frame.
func (a *Autopilot) Decide(snap Snapshot) bool {
	p := snap.Player
	target := snap.ViewH / 2
	if o, ok := nextObstacle(snap); ok {
		target = snap.ViewH - (o.TopHeight + o.Gap/2)
	}

	// Altitude of the sprite centre after Lookahead ticks without a tap.
	k := float64(a.Lookahead)
	center := p.Y + p.H/2
	predicted := center + p.Vel*k + a.Gravity*k*(k+1)/2
	if predicted >= target {
		return false
	}

	// Do not flap into the ceiling: peak height after an impulse.
	peak := 0.0
	if a.Gravity < 0 {
		peak = a.Jump * a.Jump / (-2 * a.Gravity)
	}
	return p.Y+p.H+peak < snap.ViewH
}

// nextObstacle returns the first obstacle whose trailing edge is still
// ahead of the player's tail.
func nextObstacle(snap Snapshot) (Obstacle, bool) {
	for _, o := range snap.Obstacles {
		if o.X+snap.ObstacleWidth >= snap.Player.X {
			return o, true
		}
	}
	return Obstacle{}, false
}
