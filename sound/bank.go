package sound

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/advent/runner"
)

// Bank holds one prerendered player per cue.
type Bank struct {
	players [cueCount]*audio.Player
	muted   bool
}

// NewBank renders every cue at volume and wraps it in a player on ctx. ctx
// must run at SampleRate.
func NewBank(ctx *audio.Context, volume float64) (*Bank, error) {
	if ctx.SampleRate() != int(SampleRate) {
		return nil, fmt.Errorf("audio context runs at %d Hz, want %d", ctx.SampleRate(), SampleRate)
	}

	b := &Bank{}
	for c := range cueCount {
		pcm, err := PCM(Streamer(c, SampleRate, volume))
		if err != nil {
			return nil, fmt.Errorf("render %s cue: %w", c, err)
		}
		b.players[c] = ctx.NewPlayerFromBytes(pcm)
	}
	return b, nil
}

// SetMuted silences future cues.
func (b *Bank) SetMuted(muted bool) {
	b.muted = muted
}

func (b *Bank) Muted() bool {
	return b.muted
}

// Play restarts cue from its beginning.
func (b *Bank) Play(c Cue) error {
	if b.muted || c >= cueCount {
		return nil
	}
	p := b.players[c]
	if err := p.Rewind(); err != nil {
		return fmt.Errorf("rewind %s cue: %w", c, err)
	}
	p.Play()
	return nil
}

// PlayEvents plays the cues for events.
func (b *Bank) PlayEvents(events runner.Events) error {
	var errs []error
	for _, c := range CuesFor(events) {
		errs = append(errs, b.Play(c))
	}
	return errors.Join(errs...)
}

// Close releases the players.
func (b *Bank) Close() error {
	var errs []error
	for _, p := range b.players {
		if p != nil {
			errs = append(errs, p.Close())
		}
	}
	return errors.Join(errs...)
}
