package runner

import (
	"cmp"
	"slices"
)

// PlayerState is a copy of the player's components.
type PlayerState struct {
	Position
	Body
	VY        float64
	Grounded  bool
	Crouching bool
	Frame     int
}

// ObstacleState is a copy of one obstacle.
type ObstacleState struct {
	Rect
	Class  ObstacleClass
	Serial uint64
	Passed bool
}

// Scene is a read-only snapshot of the world, detached from storage.
type Scene struct {
	Player    PlayerState
	Hitbox    Rect
	Obstacles []ObstacleState

	Running bool
	Crashed bool
	Ready   bool

	Score         int
	Best          int
	Runs          int
	Speed         float64
	Elapsed       float64
	SpawnInterval float64
}

// Scene snapshots the current state. Obstacles are ordered by spawn serial.
func (g *Game) Scene() Scene {
	state := g.state.Get()
	p := g.playerState()

	scene := Scene{
		Player: PlayerState{
			Position:  *p.Position,
			Body:      *p.Body,
			VY:        p.Velocity.VY,
			Grounded:  p.Player.Grounded,
			Crouching: p.Player.Crouching,
			Frame:     p.Animation.Frame,
		},
		Hitbox:        Hitbox(*p.Position, *p.Body, p.Player.Crouching, *g.tuning.Get()),
		Running:       state.Running,
		Crashed:       state.Crashed,
		Ready:         g.ready,
		Score:         state.Score,
		Best:          state.Best,
		Runs:          state.Runs,
		Speed:         state.Speed,
		Elapsed:       state.Elapsed,
		SpawnInterval: state.SpawnInterval,
	}

	for ob := range g.obstacles.Values() {
		scene.Obstacles = append(scene.Obstacles, ObstacleState{
			Rect:   Rect{X: ob.Position.X, Y: ob.Position.Y, W: ob.Body.W, H: ob.Body.H},
			Class:  ob.Obstacle.Class,
			Serial: ob.Obstacle.Serial,
			Passed: ob.Obstacle.Passed,
		})
	}
	slices.SortFunc(scene.Obstacles, func(a, b ObstacleState) int {
		return cmp.Compare(a.Serial, b.Serial)
	})
	return scene
}

// Next returns the first obstacle whose right edge is still ahead of x.
func (s Scene) Next(x float64) (ObstacleState, bool) {
	for _, ob := range s.Obstacles {
		if ob.Right() >= x {
			return ob, true
		}
	}
	return ObstacleState{}, false
}
