package config

import "math"

// Scaler calculates obstacle parameters from the current score.
// Each parameter falls linearly with score and is floored independently.
type Scaler struct {
	base ObstacleConfig
	cfg  DifficultyConfig
}

// NewScaler creates a scaler for the given configuration.
func NewScaler(cfg KraneConfig) *Scaler {
	return &Scaler{
		base: cfg.Obstacles,
		cfg:  cfg.Difficulty,
	}
}

// Speed returns the obstacle speed (negative) for score. With scaling
// enabled its magnitude is kept within [MinSpeed, MaxSpeed], so it is
// never zero or positive.
func (s *Scaler) Speed(score int) float64 {
	if !s.cfg.Enabled {
		return s.base.Speed
	}
	v := s.base.Speed - float64(score)*s.cfg.SpeedPerPoint
	return clampF(v, -s.cfg.MaxSpeed, -s.cfg.MinSpeed)
}

// Gap returns the vertical opening for obstacles spawned at score.
func (s *Scaler) Gap(score int) float64 {
	return s.shrink(s.base.Gap, s.cfg.GapPerPoint, s.cfg.MinGap, score)
}

// Spacing returns the horizontal distance between spawns at score.
func (s *Scaler) Spacing(score int) float64 {
	return s.shrink(s.base.Spacing, s.cfg.SpacingPerPoint, s.cfg.MinSpacing, score)
}

func (s *Scaler) shrink(base, rate, floor float64, score int) float64 {
	if !s.cfg.Enabled {
		return base
	}
	// A floor above the base value never raises it.
	floor = math.Min(floor, base)
	return math.Max(base-float64(score)*rate, floor)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *KraneConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	var k float64
	switch preset {
	case DifficultyEasy:
		k = 0.5
	case DifficultyHard:
		k = 2
	default:
		return
	}
	cfg.Difficulty.GapPerPoint *= k
	cfg.Difficulty.SpacingPerPoint *= k
	cfg.Difficulty.SpeedPerPoint *= k
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
