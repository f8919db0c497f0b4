// Package config provides YAML-based game configuration loading and
// difficulty scaling for Kampala Krane.
package config

import (
	"errors"
	"fmt"
)

// KraneConfig contains all configuration for the game.
type KraneConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Animation  AnimationConfig  `yaml:"animation"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Scenes     []SceneConfig    `yaml:"scenes"`
	Viewport   ViewportConfig   `yaml:"viewport"`
	Render     RenderConfig     `yaml:"render"`
}

// PhysicsConfig defines the vertical motion constants.
// Values are per tick in an altitude frame (y up), so gravity is negative.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// PlayerConfig defines the crane's spawn geometry and hitbox.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	SpawnY float64 `yaml:"spawn_y"` // distance from viewport top to sprite top
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Hitbox Hitbox  `yaml:"hitbox"`
}

// Hitbox is the fractional span of the sprite used for obstacle collision.
type Hitbox struct {
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
}

// ObstacleConfig defines obstacle geometry and motion at score 0.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	Gap         float64 `yaml:"gap"`
	Spacing     float64 `yaml:"spacing"`
	Speed       float64 `yaml:"speed"`        // negative: leftward
	SpawnMargin float64 `yaml:"spawn_margin"` // minimum barrier extent
	SparkStep   float64 `yaml:"spark_step"`
}

// AnimationConfig defines the sprite frame cycle.
type AnimationConfig struct {
	Frames        int `yaml:"frames"`
	TicksPerFrame int `yaml:"ticks_per_frame"`
}

// DifficultyConfig defines score-linear difficulty scaling.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	GapPerPoint     float64 `yaml:"gap_per_point"`
	SpacingPerPoint float64 `yaml:"spacing_per_point"`
	SpeedPerPoint   float64 `yaml:"speed_per_point"`
	MinGap          float64 `yaml:"min_gap"`
	MinSpacing      float64 `yaml:"min_spacing"`
	MinSpeed        float64 `yaml:"min_speed"` // magnitudes
	MaxSpeed        float64 `yaml:"max_speed"`
}

// SceneConfig maps a score threshold to a background asset.
type SceneConfig struct {
	MinScore int    `yaml:"min_score"`
	Asset    string `yaml:"asset"`
}

// Viewport modes.
const (
	ViewportTrack = "track"
	ViewportFixed = "fixed"
)

// ViewportConfig selects between tracking the host surface and a fixed size.
type ViewportConfig struct {
	Mode   string `yaml:"mode"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// RenderConfig defines presentation constants.
type RenderConfig struct {
	TiltScale     float64 `yaml:"tilt_scale"`
	TiltReference float64 `yaml:"tilt_reference"`
	ChimneyWidth  float64 `yaml:"chimney_width"`
	HUDX          float64 `yaml:"hud_x"`
	HUDY          float64 `yaml:"hud_y"`
	HUDSize       float64 `yaml:"hud_size"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// SceneFor returns the background asset for a score. Scenes are matched
// by the highest threshold not above score.
func (c KraneConfig) SceneFor(score int) string {
	asset := ""
	best := -1
	for _, s := range c.Scenes {
		if s.MinScore <= score && s.MinScore > best {
			best = s.MinScore
			asset = s.Asset
		}
	}
	return asset
}

// Validate rejects values that would make the simulation meaningless.
func (c KraneConfig) Validate() error {
	var errs []error
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size %gx%g must be positive", c.Player.Width, c.Player.Height))
	}
	hb := c.Player.Hitbox
	if hb.Left < 0 || hb.Right > 1 || hb.Left >= hb.Right || hb.Top < 0 || hb.Bottom > 1 || hb.Top >= hb.Bottom {
		errs = append(errs, fmt.Errorf("player hitbox %+v must be increasing fractions in [0, 1]", hb))
	}
	if c.Obstacles.Width <= 0 {
		errs = append(errs, fmt.Errorf("obstacle width %g must be positive", c.Obstacles.Width))
	}
	if c.Obstacles.Gap <= 0 {
		errs = append(errs, fmt.Errorf("obstacle gap %g must be positive", c.Obstacles.Gap))
	}
	if c.Obstacles.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("obstacle spacing %g must be positive", c.Obstacles.Spacing))
	}
	if c.Obstacles.Speed >= 0 {
		errs = append(errs, fmt.Errorf("obstacle speed %g must be negative", c.Obstacles.Speed))
	}
	if c.Animation.Frames <= 0 || c.Animation.TicksPerFrame <= 0 {
		errs = append(errs, fmt.Errorf("animation %d frames / %d ticks must be positive",
			c.Animation.Frames, c.Animation.TicksPerFrame))
	}
	if d := c.Difficulty; d.Enabled {
		if d.MinGap <= 0 || d.MinSpacing <= 0 {
			errs = append(errs, fmt.Errorf("difficulty floors gap=%g spacing=%g must be positive", d.MinGap, d.MinSpacing))
		}
		if d.MinSpeed <= 0 || d.MaxSpeed < d.MinSpeed {
			errs = append(errs, fmt.Errorf("difficulty speed bounds [%g, %g] invalid", d.MinSpeed, d.MaxSpeed))
		}
	}
	switch c.Viewport.Mode {
	case ViewportTrack, "":
	case ViewportFixed:
		if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
			errs = append(errs, fmt.Errorf("fixed viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
		}
	default:
		errs = append(errs, fmt.Errorf("viewport mode %q (track, fixed)", c.Viewport.Mode))
	}
	if len(c.Scenes) == 0 {
		errs = append(errs, errors.New("at least one scene is required"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
