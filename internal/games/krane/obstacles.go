package krane

import (
	"math"
	"math/rand"
)

// ObstacleManager handles spawning, movement, and removal of obstacles.
// Obstacles are kept oldest first.
type ObstacleManager struct {
	obstacles []Obstacle
	rng       *rand.Rand
	width     float64 // obstacle hit width
	margin    float64 // minimum extent of each barrier
	spawned   int
}

// NewObstacleManager creates an empty manager drawing layout from rng.
func NewObstacleManager(rng *rand.Rand, width, margin float64) *ObstacleManager {
	return &ObstacleManager{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		width:     width,
		margin:    margin,
	}
}

// Reset clears all obstacles. The random stream continues so consecutive
// runs see different layouts.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
	m.spawned = 0
}

// Advance moves every obstacle by speed (negative = left) and advances
// its spark phase.
func (m *ObstacleManager) Advance(speed, sparkStep float64) {
	for i := range m.obstacles {
		m.obstacles[i].X += speed
		m.obstacles[i].SparkOffset += sparkStep
	}
}

// MaybeSpawn appends an obstacle at x=viewW when there are none or the
// newest has scrolled left of viewW-spacing. Reports whether it spawned.
func (m *ObstacleManager) MaybeSpawn(viewW, viewH, spacing, gap float64) bool {
	if n := len(m.obstacles); n > 0 && m.obstacles[n-1].X >= viewW-spacing {
		return false
	}

	gap, top := m.layout(viewH, gap)
	m.obstacles = append(m.obstacles, Obstacle{
		X:         viewW,
		TopHeight: top,
		Gap:       gap,
	})
	m.spawned++
	return true
}

// layout picks the gap's top edge uniformly so both barriers keep at
// least margin of extent. On short viewports the gap shrinks to viewH-2
// and the margin to whatever remains, never below 1.
func (m *ObstacleManager) layout(viewH, gap float64) (float64, float64) {
	gap = math.Max(math.Min(gap, viewH-2), 0)
	margin := math.Min(m.margin, (viewH-gap)/2)
	free := viewH - gap - 2*margin
	return gap, margin + m.rng.Float64()*free
}

// Retire removes the oldest obstacle once it is fully off the left edge.
// At most one obstacle is removed per call.
func (m *ObstacleManager) Retire() bool {
	if len(m.obstacles) == 0 || m.obstacles[0].X >= -m.width {
		return false
	}
	copy(m.obstacles, m.obstacles[1:])
	m.obstacles = m.obstacles[:len(m.obstacles)-1]
	return true
}

// Obstacles returns the live sequence, oldest first. Callers may set
// Passed; the slice is invalidated by the next MaybeSpawn or Retire.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Spawned returns how many obstacles were created since Reset.
func (m *ObstacleManager) Spawned() int {
	return m.spawned
}

// Width returns the obstacle hit width.
func (m *ObstacleManager) Width() float64 {
	return m.width
}
