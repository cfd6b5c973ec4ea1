package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/plus3/advent/runner"
)

// Sprite sheet geometry. Frames sit side by side on one row, in the order of
// the runner.Frame constants.
const (
	FrameW = 260
	FrameH = 450

	SpriteScale = 0.16

	// CrouchOffset pushes the sprite down while crouching so the crouch frame
	// lines up with the shorter hitbox.
	CrouchOffset = 25
)

// FrameRect is the source rectangle of frame in the sheet.
func FrameRect(frame int) image.Rectangle {
	return image.Rect(frame*FrameW, 0, (frame+1)*FrameW, FrameH)
}

// PlayerRect is where the player's sprite lands on the play field: centred on
// the player's x and bottom-aligned to its collision height.
func PlayerRect(p runner.PlayerState, t runner.Tuning) runner.Rect {
	w := FrameW * SpriteScale
	h := FrameH * SpriteScale
	y := p.Y - h + runner.CollisionHeight(p.Body, p.Crouching, t)
	if p.Crouching {
		y += CrouchOffset
	}
	return runner.Rect{X: p.X - w/2, Y: y, W: w, H: h}
}

// CheckSheet verifies img is large enough to hold every frame.
func CheckSheet(img image.Image) error {
	b := img.Bounds()
	if b.Dx() < runner.FrameCount*FrameW || b.Dy() < FrameH {
		return fmt.Errorf("sprite sheet is %dx%d, want at least %dx%d",
			b.Dx(), b.Dy(), runner.FrameCount*FrameW, FrameH)
	}
	return nil
}

// PlaceholderSheet draws a blocky stand-in figure for every frame, used when
// no sprite sheet is configured.
func PlaceholderSheet() *image.RGBA {
	sheet := image.NewRGBA(image.Rect(0, 0, runner.FrameCount*FrameW, FrameH))
	fill := image.NewUniform(figureColor)

	for frame := range runner.FrameCount {
		origin := image.Pt(frame*FrameW, 0)
		for _, part := range figure(frame) {
			draw.Draw(sheet, part.Add(origin), fill, image.Point{}, draw.Src)
		}
	}
	return sheet
}

// figure returns the body parts of frame in frame-local pixels. Grounded
// frames keep a foot on the bottom edge.
func figure(frame int) []image.Rectangle {
	head := image.Rect(90, 40, 170, 120)
	torso := image.Rect(80, 130, 180, 300)
	legL := image.Rect(90, 300, 125, FrameH)
	legR := image.Rect(135, 300, 170, FrameH)

	switch frame {
	case runner.FrameRunA:
		legL = image.Rect(60, 300, 95, FrameH)
		legR = image.Rect(145, 300, 180, 400)
	case runner.FrameRunB:
		legL = image.Rect(80, 300, 115, 400)
		legR = image.Rect(160, 300, 195, FrameH)
	case runner.FrameCrouch:
		// Squashed into the lower half.
		lower := int(math.Round(FrameH * 0.45))
		head = image.Rect(150, lower, 230, lower+70)
		torso = image.Rect(50, lower+50, 200, lower+160)
		legL = image.Rect(60, lower+160, 110, FrameH)
		legR = image.Rect(140, lower+160, 190, FrameH)
	case runner.FrameAirborne:
		legL = image.Rect(70, 300, 125, 380)
		legR = image.Rect(135, 300, 190, 380)
	}
	return []image.Rectangle{head, torso, legL, legR}
}
