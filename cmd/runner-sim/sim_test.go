package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/advent/runner"
)

func TestSimulateTimeLimit(t *testing.T) {
	res := simulate(context.Background(), runner.DefaultTuning(), 3, Autopilot{Lead: 4}, time.Second)

	assert.True(t, res.Capped)
	assert.False(t, res.Crashed)
	assert.Equal(t, 63, res.Ticks)
	assert.Equal(t, 1008*time.Millisecond, res.Elapsed)
	assert.Len(t, res.TickTime.Samples, 63)
	assert.LessOrEqual(t, res.TickTime.Min, res.TickTime.Max)
}

func TestSimulateDeterministic(t *testing.T) {
	tuning := runner.DefaultTuning()
	a := simulate(context.Background(), tuning, 42, Autopilot{Lead: 4}, 30*time.Second)
	b := simulate(context.Background(), tuning, 42, Autopilot{Lead: 4}, 30*time.Second)

	assert.Equal(t, a.Score, b.Score)
	assert.Equal(t, a.Ticks, b.Ticks)
	assert.Equal(t, a.Crashed, b.Crashed)
	assert.True(t, a.Crashed || a.Capped)
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := simulate(ctx, runner.DefaultTuning(), 1, Autopilot{Lead: 4}, time.Minute)
	assert.True(t, res.Aborted)
	assert.Zero(t, res.Ticks)
}

func TestReport(t *testing.T) {
	r := &Report{
		Runs:     3,
		BaseSeed: 10,
		Limit:    time.Minute,
		Lead:     4,
		Results: []RunResult{
			{Seed: 10, Score: 5, Ticks: 100, Crashed: true, TickTime: Stats{Samples: []time.Duration{2, 4}}},
			{Seed: 11, Score: 1, Ticks: 40, Crashed: true, TickTime: Stats{Samples: []time.Duration{6}}},
			{Seed: 12, Score: 9, Ticks: 3750, Capped: true},
		},
	}
	r.Summarize()

	assert.Equal(t, ScoreSummary{Min: 1, Max: 9, Median: 5, Avg: 5}, r.Score)
	assert.Equal(t, 3890, r.TotalTicks)
	assert.Equal(t, 2, r.Crashes)
	assert.Equal(t, time.Duration(2), r.TickTime.Min)
	assert.Equal(t, time.Duration(6), r.TickTime.Max)
	assert.Equal(t, time.Duration(4), r.TickTime.Avg)

	var out strings.Builder
	require.NoError(t, r.Generate(&out))
	text := out.String()
	assert.Contains(t, text, "**Runs:** 3 of 3 requested")
	assert.Contains(t, text, "**Seeds:** 10 to 12")
	assert.Contains(t, text, "**Crashes:** 2 of 3")
	assert.Contains(t, text, "| 12 | 9 | 3750 |")
	assert.Contains(t, text, "time limit")
	assert.NotContains(t, text, "GC Pause")
}

func TestStatsFinalizeEmpty(t *testing.T) {
	var s Stats
	s.Finalize()
	assert.Zero(t, s.Avg)
}

func TestReportSeedsOfCompletedRuns(t *testing.T) {
	r := &Report{
		Runs:     20,
		BaseSeed: 5,
		Results: []RunResult{
			{Seed: 5, Score: 2, Crashed: true},
			{Seed: 6, Aborted: true},
		},
	}
	r.Summarize()

	var out strings.Builder
	require.NoError(t, r.Generate(&out))
	assert.Contains(t, out.String(), "**Runs:** 2 of 20 requested")
	assert.Contains(t, out.String(), "**Seeds:** 5 to 6")
	assert.Contains(t, out.String(), "aborted")
}
