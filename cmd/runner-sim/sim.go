package main

import (
	"context"
	"time"

	"github.com/plus3/advent/runner"
)

// tickMillis is the simulated frame length.
const tickMillis = 16.0

// RunResult describes one simulated run.
type RunResult struct {
	Seed    uint64
	Score   int
	Ticks   int
	Elapsed time.Duration

	Crashed bool

	// Capped is set when the run reached the simulated time limit.
	Capped bool

	// Aborted is set when ctx ended the run early.
	Aborted bool

	TickTime Stats
}

// simulate plays one seeded run with pilot until it crashes, reaches limit
// of simulated time or ctx is done.
func simulate(ctx context.Context, tuning runner.Tuning, seed uint64, pilot Autopilot, limit time.Duration) RunResult {
	tuning.Seed = seed
	game := runner.New(tuning)
	game.MarkAssetsReady()
	game.Start()

	res := RunResult{Seed: seed}
	for {
		if ctx.Err() != nil {
			res.Aborted = true
			break
		}

		scene := game.Scene()
		if !scene.Running {
			res.Crashed = scene.Crashed
			break
		}
		if millis(scene.Elapsed) >= limit {
			res.Capped = true
			break
		}

		Steer(game, pilot.Decide(scene))
		start := time.Now()
		game.Tick(tickMillis)
		res.TickTime.Samples = append(res.TickTime.Samples, time.Since(start))
		res.Ticks++
	}

	scene := game.Scene()
	res.Score = scene.Score
	res.Elapsed = millis(scene.Elapsed)
	res.TickTime.Finalize()
	return res
}

func millis(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}
