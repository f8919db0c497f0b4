package krane

// Animator cycles sprite frames, advancing one frame every
// ticksPerFrame ticks regardless of score.
type Animator struct {
	frames        int
	ticksPerFrame int
	ticks         int
	frame         int
}

// NewAnimator creates an animator at frame 0.
func NewAnimator(frames, ticksPerFrame int) Animator {
	return Animator{frames: max(frames, 1), ticksPerFrame: max(ticksPerFrame, 1)}
}

// Tick counts one simulation tick.
func (a *Animator) Tick() {
	a.ticks++
	if a.ticks%a.ticksPerFrame == 0 {
		a.frame = (a.frame + 1) % a.frames
	}
}

// Frame returns the current frame index in [0, frames).
func (a *Animator) Frame() int {
	return a.frame
}

// Reset returns to frame 0.
func (a *Animator) Reset() {
	a.ticks = 0
	a.frame = 0
}
