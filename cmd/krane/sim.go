package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/kampala-krane/internal/core"
	"github.com/vovakirdan/kampala-krane/internal/games/krane"
	"github.com/vovakirdan/kampala-krane/internal/loop"
)

var (
	flagTicks     int
	flagAutopilot bool
	flagTapEvery  int
	flagRealtime  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a screen",
	Long: `Run one game headless until the crane crashes or --ticks frames pass,
then print the result. Taps come from --tap-every or the autopilot, which
flies toward the centre of the next gap.

Examples:
  krane sim --autopilot --seed 42
  krane sim --tap-every 20 --ticks 600
  krane sim --autopilot --realtime --verbose`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	addConfigFlags(simCmd)
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum frames to simulate")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Tap automatically to stay in the gaps")
	simCmd.Flags().IntVar(&flagTapEvery, "tap-every", 0, "Tap every N frames (0 = never)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Run at --fps instead of as fast as possible")
}

// SimResult summarizes a headless run.
type SimResult struct {
	Seed    int64
	Score   int
	Ticks   int
	Spawned int
	State   core.RunState
	Elapsed time.Duration
}

// simulate plays one run of g to completion or maxTicks frames. With a
// pilot it taps on the pilot's decision, otherwise every tapEvery frames.
func simulate(ctx context.Context, g *krane.Game, pilot *krane.Autopilot, tapEvery int, interval time.Duration, maxTicks int) (SimResult, error) {
	start := time.Now()

	g.Tap() // ready -> playing
	ticks := 0
	err := loop.Run(ctx, interval, func() bool {
		switch {
		case pilot != nil:
			if pilot.Decide(g.Snapshot()) {
				g.Tap()
			}
		case tapEvery > 0 && ticks > 0 && ticks%tapEvery == 0:
			g.Tap()
		}
		res := g.Step()
		ticks++
		return res.State.State == core.StatePlaying && ticks < maxTicks
	})

	snap := g.Snapshot()
	return SimResult{
		Score:   snap.State.Score,
		Ticks:   ticks,
		Spawned: snap.Spawned,
		State:   snap.State.State,
		Elapsed: time.Since(start),
	}, err
}

func runSim(cmd *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := krane.New(cfg)
	if flagFixed {
		g = krane.NewClassic(cfg)
	}
	rc := core.DefaultConfig()
	rc.TickRate = flagFPS
	rc.Seed = seed
	g.Reset(rc)

	interval := time.Duration(0)
	if flagRealtime {
		interval = loop.Interval(flagFPS)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w, h := g.Viewport()
	logger.Info("run started", "seed", seed, "viewport", fmt.Sprintf("%.0fx%.0f", w, h))

	var pilot *krane.Autopilot
	if flagAutopilot {
		pilot = krane.NewAutopilot(cfg.Physics.Gravity, cfg.Physics.JumpImpulse)
	}

	res, err := simulate(ctx, g, pilot, flagTapEvery, interval, flagTicks)
	res.Seed = seed
	if err != nil {
		logger.Warn("run interrupted", "error", err)
	}
	logger.Info("run ended", "score", res.Score, "ticks", res.Ticks)

	fmt.Printf("seed=%d score=%d ticks=%d obstacles=%d state=%s elapsed=%s\n",
		res.Seed, res.Score, res.Ticks, res.Spawned, res.State, res.Elapsed.Round(time.Millisecond))
}
