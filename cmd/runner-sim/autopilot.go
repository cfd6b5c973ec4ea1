package main

import "github.com/plus3/advent/runner"

// Action is what the autopilot wants this tick.
type Action struct {
	Jump   bool
	Crouch bool
}

// Autopilot jumps ground obstacles and ducks under elevated ones.
type Autopilot struct {
	// Lead is how many reference frames before contact the pilot jumps.
	// Crouching starts twice as early.
	Lead float64
}

func (p Autopilot) Decide(s runner.Scene) Action {
	next, ok := s.Next(s.Hitbox.X)
	if !ok {
		return Action{}
	}

	gap := next.X - s.Hitbox.Right()
	if next.Class == runner.Elevated {
		return Action{Crouch: gap <= s.Speed*p.Lead*2}
	}
	return Action{Jump: s.Player.Grounded && gap <= s.Speed*p.Lead}
}

// Steer applies a to g.
func Steer(g *runner.Game, a Action) {
	g.Crouch(a.Crouch)
	if a.Jump {
		g.Jump()
	}
}
