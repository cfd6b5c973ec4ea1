package runner

import "github.com/plus3/advent/ecs"

type Position struct {
	X, Y float64
}

type Velocity struct {
	VY float64
}

// Body is the visual size of an entity in logical units.
type Body struct {
	W, H float64
}

type Player struct {
	Grounded  bool
	Crouching bool
}

// Animation tracks the sprite sheet frame shown for the player.
type Animation struct {
	Frame int
	Timer float64
}

type Obstacle struct {
	Class  ObstacleClass
	Serial uint64
	Passed bool
}

type playerView struct {
	*Position
	*Velocity
	*Body
	*Player
	*Animation
}

type obstacleView struct {
	ecs.EntityId
	*Position
	*Body
	*Obstacle
}

// RegisterComponents adds the runner's component types to registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Body](registry)
	ecs.RegisterComponent[Player](registry)
	ecs.RegisterComponent[Animation](registry)
	ecs.RegisterComponent[Obstacle](registry)
}
