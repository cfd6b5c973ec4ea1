// Package sound synthesizes the runner's sound cues with beep and plays them
// through ebiten's audio context.
package sound

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/plus3/advent/runner"
)

// SampleRate is shared by synthesis and the audio context.
const SampleRate = beep.SampleRate(44100)

type Cue uint8

const (
	CueStart Cue = iota
	CueJump
	CueScore
	CueCrash

	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueJump:
		return "jump"
	case CueScore:
		return "score"
	case CueCrash:
		return "crash"
	}
	return "unknown"
}

type note struct {
	freq float64
	d    time.Duration
	wave Wave
}

// Each cue is a short sequence of notes.
var cueNotes = [cueCount][]note{
	CueStart: {{523.25, 70 * time.Millisecond, Square}, {659.25, 70 * time.Millisecond, Square}, {783.99, 110 * time.Millisecond, Square}},
	CueJump:  {{392, 40 * time.Millisecond, Triangle}, {587.33, 60 * time.Millisecond, Triangle}},
	CueScore: {{987.77, 50 * time.Millisecond, Sine}, {1318.51, 90 * time.Millisecond, Sine}},
	CueCrash: {{196, 120 * time.Millisecond, Square}, {130.81, 220 * time.Millisecond, Square}},
}

// Duration is the length of cue.
func (c Cue) Duration() time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.d
	}
	return d
}

// Streamer synthesizes cue at rate, scaled by volume in [0,1].
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		release := n.d / 3
		parts = append(parts, newEnvelope(newTone(n.freq, n.d, n.wave, rate), n.d, 5*time.Millisecond, release, rate))
	}
	return withVolume(beep.Seq(parts...), volume*0.5)
}

// CuesFor maps the events of one tick to cues, in play order.
func CuesFor(events runner.Events) []Cue {
	var cues []Cue
	if events.Has(runner.EventStarted) {
		cues = append(cues, CueStart)
	}
	if events.Has(runner.EventJumped) {
		cues = append(cues, CueJump)
	}
	if events.Has(runner.EventScored) {
		cues = append(cues, CueScore)
	}
	if events.Has(runner.EventCrashed) {
		cues = append(cues, CueCrash)
	}
	return cues
}
