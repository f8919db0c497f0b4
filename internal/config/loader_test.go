package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatch(t *testing.T) {
	cfg, err := parse(defaultKraneYAML)
	if err != nil {
		t.Fatalf("parse(embedded) error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultKraneConfig()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultKraneConfig())
	}
}

func TestLoadKraneCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krane.yaml")
	data := "physics:\n  gravity: -0.2\nobstacles:\n  gap: 300\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadKrane(path)
	if err != nil {
		t.Fatalf("LoadKrane() error: %v", err)
	}
	if cfg.Physics.Gravity != -0.2 {
		t.Errorf("Gravity = %v, expected -0.2", cfg.Physics.Gravity)
	}
	if cfg.Physics.JumpImpulse != 3 {
		t.Errorf("JumpImpulse = %v, expected default 3", cfg.Physics.JumpImpulse)
	}
	if cfg.Obstacles.Gap != 300 || cfg.Obstacles.Spacing != 350 {
		t.Errorf("Obstacles = %+v, expected gap 300 spacing 350", cfg.Obstacles)
	}
	if len(cfg.Scenes) != 3 {
		t.Errorf("Scenes = %v, expected defaults", cfg.Scenes)
	}
}

func TestLoadKraneCustomErrors(t *testing.T) {
	if _, err := LoadKrane(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadKrane(missing) should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("obstacles:\n  gap: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadKrane(path)
	if err == nil {
		t.Fatal("LoadKrane(gap 0) should fail validation")
	}
	if !strings.Contains(err.Error(), "gap") {
		t.Errorf("error %q should mention gap", err)
	}

	if err := os.WriteFile(path, []byte("physics: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadKrane(path); err == nil {
		t.Error("LoadKrane(malformed) should fail")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultKraneConfig().Validate(); err != nil {
		t.Errorf("Validate(default) = %v", err)
	}
	if err := Classic(DefaultKraneConfig()).Validate(); err != nil {
		t.Errorf("Validate(classic) = %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*KraneConfig)
	}{
		{"zero width", func(c *KraneConfig) { c.Player.Width = 0 }},
		{"inverted hitbox", func(c *KraneConfig) { c.Player.Hitbox.Left = 0.8 }},
		{"positive speed", func(c *KraneConfig) { c.Obstacles.Speed = 1 }},
		{"no frames", func(c *KraneConfig) { c.Animation.Frames = 0 }},
		{"bad speed bounds", func(c *KraneConfig) { c.Difficulty.MaxSpeed = 0.1 }},
		{"bad viewport mode", func(c *KraneConfig) { c.Viewport.Mode = "stretch" }},
		{"no scenes", func(c *KraneConfig) { c.Scenes = nil }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultKraneConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestSceneFor(t *testing.T) {
	cfg := DefaultKraneConfig()
	tests := []struct {
		score    int
		expected string
	}{
		{0, "kampala"},
		{9, "kampala"},
		{10, "mbarara"},
		{29, "mbarara"},
		{30, "jinja"},
		{500, "jinja"},
	}
	for _, tc := range tests {
		if got := cfg.SceneFor(tc.score); got != tc.expected {
			t.Errorf("SceneFor(%d) = %q, expected %q", tc.score, got, tc.expected)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Classic(DefaultKraneConfig()))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	cfg, err := parse(data)
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, Classic(DefaultKraneConfig())) {
		t.Errorf("round trip = %+v, expected classic config", cfg)
	}
}
