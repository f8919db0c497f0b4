//go:build !js

// krane-web runs Kampala Krane in a desktop window. The same frontend is
// built for browsers with GOOS=js GOARCH=wasm.
//
// Usage:
//
//	krane-web [--assets dir] [--difficulty preset] [--fixed] [--seed n] [--mute]
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/platform/web"
)

var (
	flagAssets  string
	flagMute    bool
	flagVerbose bool
	opts        settings
)

var rootCmd = &cobra.Command{
	Use:   "krane-web",
	Short: "Kampala Krane in a window",
	Long: `Play Kampala Krane in a resizable window. Images are read from
--assets first and downloaded when missing there.

Controls:
  Space/Enter/Click/Touch  - Start, fly, play again`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory with local images")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")
	rootCmd.Flags().StringVar(&opts.ConfigPath, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&opts.Difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVar(&opts.Fixed, "fixed", false, "Classic variant: static difficulty on a fixed 800x600 viewport (only --difficulty fixed applies)")
	rootCmd.Flags().Int64Var(&opts.Seed, "seed", 0, "RNG seed (0 = random based on time)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runWindow(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "krane-web",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	opts.Sound = !flagMute
	fetcher := web.DirFetcher{Root: flagAssets, Remote: web.HTTPFetcher{}}
	g, err := newGame(opts, fetcher, logger)
	if err != nil {
		return err
	}

	configureWindow()
	if err := ebiten.RunGame(g); err != nil {
		logger.Error("game stopped", "error", err)
		return err
	}
	return nil
}
