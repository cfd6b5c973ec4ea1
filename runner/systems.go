package runner

import "github.com/plus3/advent/ecs"

// The runner's systems expect frame.DeltaTime in milliseconds. They are
// registered in the order they appear in this file.

type SpeedSystem struct {
	State  ecs.Singleton[RunState]
	Tuning ecs.Singleton[Tuning]
}

func (s *SpeedSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}
	state.Speed += s.Tuning.Get().SpeedGain * frame.DeltaTime
	state.Elapsed += frame.DeltaTime
}

type SpawnSystem struct {
	State  ecs.Singleton[RunState]
	Tuning ecs.Singleton[Tuning]

	Rand Source
}

func (s *SpawnSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}

	state.SpawnTimer += frame.DeltaTime
	if state.SpawnTimer <= state.SpawnInterval {
		return
	}

	state.SpawnTimer = 0
	state.SpawnInterval = nextSpawnInterval(*s.Tuning.Get(), state.Score, s.Rand.Float64())

	obstacle, pos, body := rollObstacle(s.Rand)
	state.Spawned++
	obstacle.Serial = state.Spawned
	// Spawned directly so ObstacleSystem moves and tests it this same tick.
	frame.Storage.Spawn(obstacle, pos, body)
}

type GravitySystem struct {
	Players ecs.Query[playerView]
	State   ecs.Singleton[RunState]
	Tuning  ecs.Singleton[Tuning]
}

func (s *GravitySystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}

	step := frame.DeltaTime / frameStep
	gravity := s.Tuning.Get().Gravity
	for p := range s.Players.Values() {
		p.Velocity.VY += gravity * step
		p.Position.Y += p.Velocity.VY * step
	}
}

// Sprite sheet frames.
const (
	FrameIdle = iota
	FrameRunA
	FrameRunB
	FrameCrouch
	FrameAirborne

	FrameCount
)

type AnimationSystem struct {
	Players ecs.Query[playerView]
	State   ecs.Singleton[RunState]
	Tuning  ecs.Singleton[Tuning]
}

func (s *AnimationSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}

	interval := s.Tuning.Get().FrameInterval
	for p := range s.Players.Values() {
		p.Animation.Timer += frame.DeltaTime
		if p.Animation.Timer < interval {
			continue
		}
		p.Animation.Timer = 0

		switch {
		case !p.Player.Grounded:
			p.Animation.Frame = FrameAirborne
		case p.Player.Crouching:
			p.Animation.Frame = FrameCrouch
		case p.Animation.Frame == FrameRunA:
			p.Animation.Frame = FrameRunB
		default:
			p.Animation.Frame = FrameRunA
		}
	}
}

type GroundSystem struct {
	Players ecs.Query[playerView]
	State   ecs.Singleton[RunState]
}

func (s *GroundSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}

	for p := range s.Players.Values() {
		floor := GroundY - p.Body.H
		if p.Position.Y >= floor {
			p.Position.Y = floor
			p.Velocity.VY = 0
			p.Player.Grounded = true
		} else {
			p.Player.Grounded = false
		}
	}
}

// ObstacleSystem scrolls obstacles, ends the run on contact, scores passed
// obstacles and culls the ones that left the field.
type ObstacleSystem struct {
	Obstacles ecs.Query[obstacleView]
	Players   ecs.Query[playerView]
	State     ecs.Singleton[RunState]
	Tuning    ecs.Singleton[Tuning]
}

func (s *ObstacleSystem) Execute(frame *ecs.UpdateFrame) {
	state := s.State.Get()
	if state == nil || !state.Running {
		return
	}
	player, ok := s.Players.First()
	if !ok {
		return
	}

	tuning := *s.Tuning.Get()
	hitbox := Hitbox(*player.Position, *player.Body, player.Player.Crouching, tuning)
	shift := state.Speed * frame.DeltaTime / frameStep

	for ob := range s.Obstacles.Values() {
		ob.Position.X -= shift
		box := Rect{X: ob.Position.X, Y: ob.Position.Y, W: ob.Body.W, H: ob.Body.H}

		if state.Running && hitbox.Intersects(box) {
			state.Running = false
			state.Crashed = true
			state.Events |= EventCrashed
		}

		if !ob.Obstacle.Passed && box.Right() < player.Position.X {
			ob.Obstacle.Passed = true
			state.Score++
			state.Events |= EventScored
		}

		if box.Right() < CullX {
			frame.Commands.Delete(ob.EntityId)
		}
	}
}
