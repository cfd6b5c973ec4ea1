package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/advent/ecs/debugui"
	"github.com/plus3/advent/render"
)

// Intent is one frame of player input, already mapped onto the play field.
type Intent struct {
	Jump          bool
	CrouchHeld    bool
	CrouchRelease bool
	Restart       bool
	Quit          bool
	ToggleMute    bool

	// Pointer is set for a click or new touch on the field, at (X, Y) in
	// logical units.
	Pointer bool
	X, Y    float64
}

func readIntent(vp render.Viewport, captured debugui.ImguiInputState) Intent {
	var in Intent

	if !captured.WantCaptureKeyboard {
		in.Jump = inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp)
		in.CrouchHeld = ebiten.IsKeyPressed(ebiten.KeyArrowDown)
		in.CrouchRelease = inpututil.IsKeyJustReleased(ebiten.KeyArrowDown)
		in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyR)
		in.Quit = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
		in.ToggleMute = inpututil.IsKeyJustPressed(ebiten.KeyM)
	}

	if captured.WantCaptureMouse {
		return in
	}
	var px, py int
	pressed := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		px, py = ebiten.CursorPosition()
		pressed = true
	} else if touches := inpututil.AppendJustPressedTouchIDs(nil); len(touches) > 0 {
		px, py = ebiten.TouchPosition(touches[0])
		pressed = true
	}
	if pressed && vp.Contains(px, py) {
		in.Pointer = true
		in.X, in.Y = vp.ToLogical(px, py)
	}
	return in
}

// Controls is the part of runner.Game input drives.
type Controls interface {
	Start()
	Jump()
	Crouch(bool)
	Running() bool
}

func applyIntent(g Controls, in Intent) {
	if in.Restart {
		g.Start()
	}

	if in.Pointer {
		if !g.Running() && render.HitPlayButton(in.X, in.Y) {
			g.Start()
		} else {
			g.Jump()
		}
	}

	if in.Jump {
		g.Jump()
	}
	if in.CrouchRelease {
		g.Crouch(false)
	} else if in.CrouchHeld {
		g.Crouch(true)
	}
}

// Muter is the part of sound.Bank the mute key drives.
type Muter interface {
	Muted() bool
	SetMuted(bool)
}

// applyMute flips m on a mute key press and reports the new state.
func applyMute(m Muter, in Intent) (muted, changed bool) {
	if !in.ToggleMute {
		return false, false
	}
	m.SetMuted(!m.Muted())
	return m.Muted(), true
}
