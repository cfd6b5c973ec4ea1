package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/advent/runner"
)

func TestFrameRect(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 260, 450), FrameRect(runner.FrameIdle))
	assert.Equal(t, image.Rect(1040, 0, 1300, 450), FrameRect(runner.FrameAirborne))
}

func TestPlayerRect(t *testing.T) {
	tuning := runner.DefaultTuning()
	p := runner.PlayerState{
		Position: runner.Position{X: runner.PlayerX, Y: runner.GroundY - runner.PlayerH},
		Body:     runner.Body{W: runner.PlayerW, H: runner.PlayerH},
	}

	standing := PlayerRect(p, tuning)
	assert.InDelta(t, 29.2, standing.X, 1e-9)
	assert.InDelta(t, 41.6, standing.W, 1e-9)
	assert.InDelta(t, 72, standing.H, 1e-9)
	assert.InDelta(t, 88, standing.Y, 1e-9)

	p.Crouching = true
	crouching := PlayerRect(p, tuning)
	assert.Equal(t, standing.X, crouching.X)
	assert.InDelta(t, 94.1, crouching.Y, 1e-9)
}

func TestCheckSheet(t *testing.T) {
	assert.NoError(t, CheckSheet(image.NewRGBA(image.Rect(0, 0, 1300, 450))))
	assert.NoError(t, CheckSheet(image.NewRGBA(image.Rect(0, 0, 1400, 500))))
	assert.ErrorContains(t, CheckSheet(image.NewRGBA(image.Rect(0, 0, 1040, 450))), "want at least 1300x450")
	assert.Error(t, CheckSheet(image.NewRGBA(image.Rect(0, 0, 1300, 300))))
}

func TestPlaceholderSheet(t *testing.T) {
	sheet := PlaceholderSheet()
	assert.NoError(t, CheckSheet(sheet))

	for frame := range runner.FrameCount {
		opaque := 0
		r := FrameRect(frame)
		for y := r.Min.Y; y < r.Max.Y; y += 5 {
			for x := r.Min.X; x < r.Max.X; x += 5 {
				if sheet.RGBAAt(x, y).A != 0 {
					opaque++
				}
			}
		}
		assert.Positive(t, opaque, "frame %d is blank", frame)
	}

	runA := FrameRect(runner.FrameRunA).Min
	runB := FrameRect(runner.FrameRunB).Min
	assert.NotZero(t, sheet.RGBAAt(runA.X+70, 420).A)
	assert.Zero(t, sheet.RGBAAt(runB.X+70, 420).A, "run frames differ")
}
