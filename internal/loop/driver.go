// Package loop schedules the frame driver. A run owns exactly one frame
// chain: each delivered frame schedules at most one successor, and frames
// belonging to a stopped or superseded run are discarded.
package loop

import (
	"context"
	"time"
)

// RunID tags the frames of one playing session.
type RunID uint64

// Driver guards a frame chain scheduled through a host primitive (a
// bubbletea tick, an ebiten update). It is not safe for concurrent use;
// hosts call it from their single update goroutine.
type Driver struct {
	run     RunID
	active  bool
	pending bool // a frame for run is scheduled and not yet claimed
}

// Start begins a new run and returns its id. Frames still in flight from
// an earlier run will fail Claim.
func (d *Driver) Start() RunID {
	d.run++
	d.active = true
	d.pending = false
	return d.run
}

// Stop cancels the current run. Nothing is drawn or stepped after Stop.
func (d *Driver) Stop() {
	d.active = false
	d.pending = false
}

// Active reports whether a run is in progress.
func (d *Driver) Active() bool {
	return d.active
}

// Run returns the id of the current or last run.
func (d *Driver) Run() RunID {
	return d.run
}

// Next reserves the next frame of the current run. It returns false when
// no run is active or a frame is already scheduled, so a chain never
// forks.
func (d *Driver) Next() (RunID, bool) {
	if !d.active || d.pending {
		return 0, false
	}
	d.pending = true
	return d.run, true
}

// Claim consumes a delivered frame and reports whether it may execute.
func (d *Driver) Claim(id RunID) bool {
	if !d.active || id != d.run || !d.pending {
		return false
	}
	d.pending = false
	return true
}

// Run calls fn once per interval until fn returns false or ctx is done.
// A non-positive interval runs frames back to back. It is the frame
// driver for hosts without their own refresh signal.
func Run(ctx context.Context, interval time.Duration, fn func() bool) error {
	if interval <= 0 {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !fn() {
				return nil
			}
		}
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if !fn() {
				return nil
			}
		}
	}
}

// Interval converts a frame rate to a tick interval. Rates <= 0 mean
// unthrottled.
func Interval(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}
