package runner

import (
	"testing"

	"github.com/plus3/advent/ecs"
)

const tick = 16.0

// script is a Source that replays fixed draws and then repeats the last one.
type script []float64

func (s *script) Float64() float64 {
	v := (*s)[0]
	if len(*s) > 1 {
		*s = (*s)[1:]
	}
	return v
}

// steadyTuning disables speed growth so scroll distances are exact.
func steadyTuning() Tuning {
	t := DefaultTuning()
	t.SpeedGain = 0
	return t
}

func newStartedGame(t *testing.T, tuning Tuning, draws ...float64) *Game {
	t.Helper()
	if len(draws) == 0 {
		draws = []float64{0.5}
	}
	src := script(draws)
	g := New(tuning, WithSource(&src))
	g.MarkAssetsReady()
	g.Start()
	if !g.Running() {
		t.Fatal("game did not start")
	}
	return g
}

// placeObstacle puts an obstacle in the world outside the spawn schedule.
func placeObstacle(g *Game, box Rect) ecs.EntityId {
	state := g.state.Get()
	state.Spawned++
	return g.storage.Spawn(
		Obstacle{Class: GroundSmall, Serial: state.Spawned},
		Position{X: box.X, Y: box.Y},
		Body{W: box.W, H: box.H},
	)
}

func ticks(g *Game, n int) {
	for range n {
		g.Tick(tick)
	}
}
