package krane

// Integrate advances the player one tick: velocity first, then position.
func Integrate(p *Player, gravity float64) {
	p.Vel += gravity
	p.Y += p.Vel
}

// Impulse overrides the current velocity. It is not additive.
func Impulse(p *Player, jump float64) {
	p.Vel = jump
}
