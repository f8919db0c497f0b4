package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/kampala-krane/internal/audio"
	"github.com/vovakirdan/kampala-krane/internal/core"
	"github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/platform/tui"
	"github.com/vovakirdan/kampala-krane/internal/registry"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Enter/Click  - Start, fly, play again
  Tab                - Runs of this session
  Ctrl+S             - Save a screenshot
  Q/Ctrl+C           - Quit

Difficulty options:
  easy   - Gaps, spacing and speed change half as fast with score
  normal - As configured
  hard   - Changes twice as fast
  fixed  - No scaling with score

Examples:
  krane play
  krane play --difficulty easy
  krane play --fixed
  krane play --sound --log krane.log
  krane play --config ./my-krane.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addConfigFlags(playCmd)
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	id := gameID(args)
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'krane list' to see available games.")
		os.Exit(1)
	}

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintf(os.Stderr, "Error: stdout is not a terminal: %v\n", core.ErrSurfaceUnavailable)
		os.Exit(1)
	}
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(fd); termErr == nil {
		width = w
		height = h
	}
	if err := core.ValidateViewport(width*tui.CellW, (height-1)*tui.CellH); err != nil {
		fmt.Fprintf(os.Stderr, "Error: terminal %dx%d is too small: %v\n", width, height, err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	logger := newLogger(logFile)

	game, err := registry.Create(id, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts := tui.Options{
		Width:    width,
		Height:   height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Art:      krane.CellArt(cfg),
		Logger:   logger,
	}

	if flagSound {
		sm := audio.NewSoundManager()
		if err := sm.Init(); err != nil {
			// Sound is optional, the game still works
			logger.Warn("could not open audio", "error", err)
		} else {
			defer sm.Close()
			opts.Sound = sm
		}
	}

	if err := tui.Run(game, opts); err != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
