package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"

	"github.com/vovakirdan/kampala-krane/internal/config"
	"github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/platform/web"
	"github.com/vovakirdan/kampala-krane/internal/registry"
)

// settings selects the variant and its configuration.
type settings struct {
	ConfigPath string
	Difficulty string
	Fixed      bool
	Seed       int64
	Sound      bool
}

// newGame builds the ebiten host for s, fetching images through f.
func newGame(s settings, f web.Fetcher, logger *log.Logger) (*web.Game, error) {
	cfg, err := config.LoadKrane(s.ConfigPath)
	if err != nil {
		return nil, err
	}
	preset, err := config.ParsePreset(s.Difficulty)
	if err != nil {
		return nil, err
	}
	if s.Fixed && s.Difficulty != "" && !config.IsFixedPreset(preset) {
		return nil, fmt.Errorf("--difficulty %s cannot be combined with --fixed, the classic variant never scales", preset)
	}
	config.ApplyPreset(&cfg, preset)

	id := "krane"
	if s.Fixed {
		id = "krane-classic"
	}
	game, err := registry.Create(id, cfg)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", id, err)
	}

	return web.NewGame(game, web.Options{
		Seed:    s.Seed,
		Assets:  krane.Manifest(cfg),
		Fetcher: f,
		Font:    fonts.PressStart2P_ttf,
		Sound:   s.Sound,
		Logger:  logger,
	}), nil
}

func configureWindow() {
	ebiten.SetWindowSize(800, 600)
	ebiten.SetWindowTitle("Kampala Krane")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
}
