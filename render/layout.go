package render

import (
	"math"

	"github.com/plus3/advent/runner"
)

// WindowMargin is left free around the play field when fitting the window.
const WindowMargin = 40

// WindowSize fits the play field to available pixels of width, keeping the
// aspect ratio and never exceeding maxScale times the logical size.
func WindowSize(available int, maxScale float64) (int, int) {
	if maxScale <= 0 {
		maxScale = 1
	}
	w := math.Min(float64(available-WindowMargin), runner.Width*maxScale)
	w = math.Max(w, runner.Width/4)
	scale := w / runner.Width
	return int(math.Round(runner.Width * scale)), int(math.Round(runner.Height * scale))
}

// PlayButton is the restart button drawn over the field between runs.
var PlayButton = runner.Rect{X: runner.Width/2 - 40, Y: runner.Height/2 - 2, W: 80, H: 26}

// HitPlayButton reports whether the logical point (x, y) is on the button.
func HitPlayButton(x, y float64) bool {
	b := PlayButton
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Viewport places the logical play field inside a larger screen.
type Viewport struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// FitViewport scales the play field to fit w×h and centres it.
func FitViewport(w, h int) Viewport {
	scale := math.Min(float64(w)/runner.Width, float64(h)/runner.Height)
	if scale <= 0 {
		return Viewport{Scale: 1}
	}
	return Viewport{
		Scale:   scale,
		OffsetX: (float64(w) - runner.Width*scale) / 2,
		OffsetY: (float64(h) - runner.Height*scale) / 2,
	}
}

// ToLogical maps a screen pixel into play field units.
func (v Viewport) ToLogical(x, y int) (float64, float64) {
	return (float64(x) - v.OffsetX) / v.Scale, (float64(y) - v.OffsetY) / v.Scale
}

// Contains reports whether the screen pixel falls on the play field.
func (v Viewport) Contains(x, y int) bool {
	lx, ly := v.ToLogical(x, y)
	return lx >= 0 && lx < runner.Width && ly >= 0 && ly < runner.Height
}
