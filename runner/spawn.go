package runner

import "math"

// Source is the randomness the spawner draws from. *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

type ObstacleClass uint8

const (
	LowWide ObstacleClass = iota
	GroundSmall
	Elevated
)

func (c ObstacleClass) String() string {
	switch c {
	case LowWide:
		return "low-wide"
	case GroundSmall:
		return "ground-small"
	case Elevated:
		return "elevated"
	}
	return "unknown"
}

// ElevatedLift is how far elevated obstacles float above the ground line.
const ElevatedLift = 60

type obstacleSpec struct {
	class      ObstacleClass
	below      float64
	minW, rngW float64
	minH, rngH float64
	lift       float64
}

// obstacleSpecs is ordered by cumulative probability: 50%, 35%, 15%.
var obstacleSpecs = []obstacleSpec{
	{class: LowWide, below: 0.50, minW: 18, rngW: 22, minH: 20, rngH: 10},
	{class: GroundSmall, below: 0.85, minW: 32, rngW: 30, minH: 35, rngH: 12},
	{class: Elevated, below: 1, minW: 28, rngW: 32, minH: 45, rngH: 20, lift: ElevatedLift},
}

// rollObstacle draws class, size and height for a new obstacle. It consumes
// exactly three values from src.
func rollObstacle(src Source) (Obstacle, Position, Body) {
	r := src.Float64()
	spec := obstacleSpecs[len(obstacleSpecs)-1]
	for _, s := range obstacleSpecs {
		if r < s.below {
			spec = s
			break
		}
	}

	w := spec.minW + src.Float64()*spec.rngW
	h := spec.minH + src.Float64()*spec.rngH
	y := GroundY - h - spec.lift

	return Obstacle{Class: spec.class},
		Position{X: SpawnX, Y: math.Floor(y)},
		Body{W: math.Floor(w), H: math.Floor(h)}
}

// nextSpawnInterval shortens the randomized gap as the score grows, never
// going below MinSpawnInterval. r is a uniform draw in [0,1).
func nextSpawnInterval(t Tuning, score int, r float64) float64 {
	relief := math.Min(t.SpawnScoreCap, float64(score)*t.SpawnScoreFactor)
	return math.Max(t.MinSpawnInterval, t.SpawnBase+r*t.SpawnJitter-relief)
}
