package sound

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/advent/runner"
)

func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 100)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			break
		}
	}
	require.NoError(t, s.Err())
	return out
}

func TestToneLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	samples := drain(t, newTone(100, 250*time.Millisecond, Sine, rate))
	assert.Len(t, samples, 250)
}

func TestToneWaves(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{Sine, Square, Triangle} {
		samples := drain(t, newTone(440, 20*time.Millisecond, wave, rate))
		for i, s := range samples {
			if s[0] < -1 || s[0] > 1 {
				t.Errorf("wave %d sample %d out of range: %f", wave, i, s[0])
			}
			if s[0] != s[1] {
				t.Errorf("wave %d sample %d is not mono", wave, i)
			}
		}
	}

	square := drain(t, newTone(440, 20*time.Millisecond, Square, rate))
	for _, s := range square {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("square sample %f", s[0])
		}
	}
}

func TestEnvelopeFades(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	samples := drain(t, newEnvelope(newTone(0, d, Square, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate))
	require.Len(t, samples, 100)

	assert.Zero(t, samples[0][0], "starts silent")
	assert.InDelta(t, 0.5, samples[5][0], 1e-9)
	assert.Equal(t, 1.0, samples[50][0])
	assert.InDelta(t, 0.05, samples[99][0], 1e-9)
}

func TestCueDurations(t *testing.T) {
	for c := range cueCount {
		samples := drain(t, Streamer(c, SampleRate, 1))
		assert.InDelta(t, SampleRate.N(c.Duration()), len(samples), float64(len(cueNotes[c])), c.String())
	}
	assert.Equal(t, 250*time.Millisecond, CueStart.Duration())
}

func TestSilentCue(t *testing.T) {
	for _, s := range drain(t, Streamer(CueCrash, SampleRate, 0)) {
		if s != [2]float64{} {
			t.Fatalf("expected silence, got %v", s)
		}
	}
}

func TestPCM(t *testing.T) {
	rate := beep.SampleRate(1000)
	pcm, err := PCM(newTone(0, 10*time.Millisecond, Square, rate))
	require.NoError(t, err)
	require.Len(t, pcm, 10*4)

	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[0:])))
	assert.Equal(t, int16(32767), int16(binary.LittleEndian.Uint16(pcm[2:])))

	assert.Equal(t, int16(-32767), toInt16(-3))
	assert.Equal(t, int16(0), toInt16(0))
}

func TestCuesFor(t *testing.T) {
	assert.Empty(t, CuesFor(0))
	assert.Equal(t, []Cue{CueJump}, CuesFor(runner.EventJumped))
	assert.Equal(t,
		[]Cue{CueStart, CueJump, CueScore, CueCrash},
		CuesFor(runner.EventCrashed|runner.EventScored|runner.EventJumped|runner.EventStarted))
}

func TestCueString(t *testing.T) {
	assert.Equal(t, "crash", CueCrash.String())
	assert.Equal(t, "unknown", Cue(42).String())
}

func TestMutedBankSkipsPlayers(t *testing.T) {
	b := &Bank{}
	b.SetMuted(true)
	assert.True(t, b.Muted())

	// No players exist, so anything but the mute check would panic.
	assert.NoError(t, b.Play(CueJump))
	assert.NoError(t, b.PlayEvents(runner.EventStarted|runner.EventCrashed))
	assert.NoError(t, b.Close())
}
