package runner

// Events are raised during a run and drained by the host, which turns them
// into sounds.
type Events uint8

const (
	EventStarted Events = 1 << iota
	EventJumped
	EventScored
	EventCrashed
)

func (e Events) Has(flag Events) bool {
	return e&flag != 0
}

// RunState is the per-run simulation state, held as an ECS singleton.
// Times are in milliseconds.
type RunState struct {
	Running bool
	Crashed bool

	Elapsed       float64
	Speed         float64
	SpawnTimer    float64
	SpawnInterval float64
	Spawned       uint64

	Score int

	// Best and Runs survive restarts but not the process.
	Best int
	Runs int

	Events Events
}
