package config

import (
	_ "embed"
)

//go:embed defaults/krane.yaml
var defaultKraneYAML []byte

// DefaultKraneConfig returns the default configuration: the score-scaled,
// viewport-tracking game.
func DefaultKraneConfig() KraneConfig {
	return KraneConfig{
		Physics: PhysicsConfig{
			Gravity:     -0.1,
			JumpImpulse: 3,
		},
		Player: PlayerConfig{
			X:      100,
			SpawnY: 200,
			Width:  40,
			Height: 40,
			Hitbox: Hitbox{Left: 0.3, Right: 0.7, Top: 0.3, Bottom: 0.7},
		},
		Obstacles: ObstacleConfig{
			Width:       6,
			Gap:         350,
			Spacing:     350,
			Speed:       -2,
			SpawnMargin: 50,
			SparkStep:   0.2,
		},
		Animation: AnimationConfig{
			Frames:        10,
			TicksPerFrame: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			GapPerPoint:     5,
			SpacingPerPoint: 5,
			SpeedPerPoint:   0.05,
			MinGap:          200,
			MinSpacing:      200,
			MinSpeed:        0.5,
			MaxSpeed:        6,
		},
		Scenes: []SceneConfig{
			{MinScore: 0, Asset: "kampala"},
			{MinScore: 10, Asset: "mbarara"},
			{MinScore: 30, Asset: "jinja"},
		},
		Viewport: ViewportConfig{
			Mode:   ViewportTrack,
			Width:  800,
			Height: 600,
		},
		Render: RenderConfig{
			TiltScale:     0.5,
			TiltReference: 15,
			ChimneyWidth:  120,
			HUDX:          20,
			HUDY:          40,
			HUDSize:       24,
		},
	}
}

// Classic turns cfg into the static variant, keeping its physics and art.
func Classic(cfg KraneConfig) KraneConfig {
	ApplyPreset(&cfg, DifficultyFixed)
	cfg.Viewport.Mode = ViewportFixed
	if cfg.Viewport.Width <= 0 || cfg.Viewport.Height <= 0 {
		cfg.Viewport.Width, cfg.Viewport.Height = 800, 600
	}
	return cfg
}

