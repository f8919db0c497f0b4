// krane is a flappy-style game played in the terminal: keep the crane
// flying between power lines and chimneys over Kampala.
//
// Usage:
//
//	krane play [game]   - Play in the terminal (default game: krane)
//	krane sim           - Run the simulation headless and print the result
//	krane list          - List available game variants
//	krane config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--log <path>    - Write logs to a file
//	--verbose       - Log debug messages
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/kampala-krane/internal/config"
	// Import games to register them
	_ "github.com/vovakirdan/kampala-krane/internal/games/krane"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogPath string
	flagVerbose bool

	// Shared by play, sim and config
	flagConfig     string
	flagDifficulty string
	flagFixed      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "krane",
	Short: "Kampala Krane - fly a crane through the city",
	Long: `Kampala Krane is a one-button flying game. Tap to lift the crane,
dodge the power lines and chimneys, and score a point for every one you
pass. The scenery changes from Kampala to Mbarara to Jinja as you go.

Available commands:
  play     - Play in the terminal
  sim      - Run the simulation without a screen
  list     - Show available game variants
  config   - Print the effective configuration

Examples:
  krane play
  krane play --difficulty hard --sound
  krane play --fixed
  krane sim --autopilot --seed 42
  krane config --difficulty easy`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// addConfigFlags registers the configuration flags on cmd.
func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().BoolVar(&flagFixed, "fixed", false, "Classic variant: static difficulty on a fixed 800x600 viewport (only --difficulty fixed applies)")
}

// newLogger builds the process logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "krane",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogFile opens --log for appending, or returns a discarding writer.
func openLogFile() (io.WriteCloser, error) {
	if flagLogPath == "" {
		return nopCloser{io.Discard}, nil
	}
	f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// loadConfig resolves the configuration from the config flags.
func loadConfig() (config.KraneConfig, error) {
	cfg, err := config.LoadKrane(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	if flagFixed && flagDifficulty != "" && !config.IsFixedPreset(preset) {
		return cfg, fmt.Errorf("--difficulty %s cannot be combined with --fixed, the classic variant never scales", preset)
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// gameID returns the registry id selected by the flags and args.
func gameID(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	if flagFixed {
		return "krane-classic"
	}
	return "krane"
}
