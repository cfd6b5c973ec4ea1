// Package runner implements the endless-runner game loop: a player that
// jumps and crouches past procedurally spawned obstacles scrolling in from the
// right. State lives in an ecs.Storage and is advanced by a fixed chain of
// systems, one Tick per frame.
package runner

import (
	"math/rand/v2"
	"time"

	"github.com/plus3/advent/ecs"
)

// Game owns one runner world. It is not safe for concurrent use; the host
// calls every method from its update goroutine.
type Game struct {
	storage   *ecs.Storage
	scheduler *ecs.Scheduler
	state     *ecs.Singleton[RunState]
	tuning    *ecs.Singleton[Tuning]

	player    ecs.EntityId
	players   *ecs.View[playerView]
	obstacles *ecs.View[obstacleView]

	ready        bool
	pendingStart bool
}

type options struct {
	registry *ecs.ComponentRegistry
	source   Source
}

type Option func(*options)

// WithRegistry builds the world on registry, so the host can register its own
// components alongside the runner's.
func WithRegistry(registry *ecs.ComponentRegistry) Option {
	return func(o *options) { o.registry = registry }
}

// WithSource overrides the randomness used for obstacle spawning.
func WithSource(src Source) Option {
	return func(o *options) { o.source = src }
}

// New creates a game with the player standing on the ground and no run
// active. tuning is assumed valid.
func New(tuning Tuning, opts ...Option) *Game {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = ecs.NewComponentRegistry()
	}
	if o.source == nil {
		seed := tuning.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		o.source = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	RegisterComponents(o.registry)

	storage := ecs.NewStorage(o.registry)
	g := &Game{
		storage:   storage,
		tuning:    ecs.NewSingleton(storage, tuning),
		state:     ecs.NewSingleton(storage, RunState{Speed: tuning.InitialSpeed}),
		players:   ecs.NewView[playerView](storage),
		obstacles: ecs.NewView[obstacleView](storage),
	}
	g.player = storage.Spawn(
		Position{X: PlayerX, Y: GroundY - PlayerH},
		Velocity{},
		Body{W: PlayerW, H: PlayerH},
		Player{Grounded: true},
		Animation{},
	)

	g.scheduler = ecs.NewScheduler(storage)
	g.scheduler.Register(&SpeedSystem{})
	g.scheduler.Register(&SpawnSystem{Rand: o.source})
	g.scheduler.Register(&GravitySystem{})
	g.scheduler.Register(&AnimationSystem{})
	g.scheduler.Register(&GroundSystem{})
	g.scheduler.Register(&ObstacleSystem{})

	return g
}

// Storage exposes the world for render and debug systems.
func (g *Game) Storage() *ecs.Storage {
	return g.storage
}

// Stats returns per-system timings of the simulation.
func (g *Game) Stats() *ecs.SchedulerStats {
	return g.scheduler.GetStats()
}

// MarkAssetsReady records that the sprite sheet is loaded and performs a
// start requested earlier.
func (g *Game) MarkAssetsReady() {
	g.ready = true
	if g.pendingStart {
		g.Start()
	}
}

func (g *Game) Ready() bool {
	return g.ready
}

// StartPending reports whether Start was called before assets were ready.
func (g *Game) StartPending() bool {
	return g.pendingStart
}

func (g *Game) Running() bool {
	return g.state.Get().Running
}

// Start begins a fresh run: obstacles are removed, score, speed and spawn
// timing are reset and the player is put back on the ground. Before
// MarkAssetsReady it only remembers the request.
func (g *Game) Start() {
	if !g.ready {
		g.pendingStart = true
		return
	}
	g.pendingStart = false

	for _, id := range g.obstacles.IDs() {
		g.storage.Delete(id)
	}

	tuning := g.tuning.Get()
	state := g.state.Get()
	*state = RunState{
		Running:       true,
		Speed:         tuning.InitialSpeed,
		SpawnInterval: tuning.InitialSpawnInterval,
		Spawned:       state.Spawned,
		Best:          state.Best,
		Runs:          state.Runs + 1,
		Events:        state.Events | EventStarted,
	}

	p := g.playerState()
	*p.Position = Position{X: PlayerX, Y: GroundY - p.Body.H}
	*p.Velocity = Velocity{}
	*p.Player = Player{Grounded: true}
	*p.Animation = Animation{}
}

// Jump starts a run if none is active, then launches the player if it is on
// the ground.
func (g *Game) Jump() {
	if !g.Running() {
		g.Start()
		if !g.Running() {
			return
		}
	}

	p := g.playerState()
	if !p.Player.Grounded {
		return
	}
	p.Velocity.VY = g.tuning.Get().JumpForce
	p.Player.Grounded = false
	p.Player.Crouching = false
	g.state.Get().Events |= EventJumped
}

// Crouch sets the crouch flag. Enabling only takes effect on the ground.
func (g *Game) Crouch(enable bool) {
	p := g.playerState()
	p.Player.Crouching = enable && p.Player.Grounded
}

// Tick advances the run by dt milliseconds. It does nothing once the run has
// ended or before it started.
func (g *Game) Tick(dt float64) {
	state := g.state.Get()
	if !state.Running || dt <= 0 {
		return
	}
	g.scheduler.Once(dt)
	state.Best = max(state.Best, state.Score)
}

// DrainEvents returns the events raised since the previous call.
func (g *Game) DrainEvents() Events {
	state := g.state.Get()
	events := state.Events
	state.Events = 0
	return events
}

func (g *Game) playerState() *playerView {
	p := g.players.Get(g.player)
	if p == nil {
		panic("runner: player entity missing")
	}
	return p
}
