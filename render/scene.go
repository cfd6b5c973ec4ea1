// Package render draws the runner's world onto an ebiten screen. Drawing runs
// as an ecs system on its own scheduler, fed the target image through the
// Screen singleton once per Draw call.
package render

import (
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/advent/ecs"
	"github.com/plus3/advent/runner"
)

// Screen is the image being drawn this frame.
type Screen struct {
	Image *ebiten.Image
}

// Sprites holds the player's sprite sheet once it has loaded.
type Sprites struct {
	Sheet *ebiten.Image

	// Failed is set when the sheet could not be loaded.
	Failed bool
}

// SceneSystem paints sky, ground, obstacles, the player and the HUD.
type SceneSystem struct {
	Players ecs.Query[struct {
		*runner.Position
		*runner.Body
		*runner.Player
		*runner.Animation
	}]
	Obstacles ecs.Query[struct {
		*runner.Position
		*runner.Body
		*runner.Obstacle
	}]

	State   ecs.Singleton[runner.RunState]
	Tuning  ecs.Singleton[runner.Tuning]
	Screen  ecs.Singleton[Screen]
	Sprites ecs.Singleton[Sprites]

	frames [runner.FrameCount]*ebiten.Image
	sheet  *ebiten.Image
}

func (s *SceneSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get()
	if screen == nil || screen.Image == nil {
		return
	}
	dst := screen.Image

	vector.DrawFilledRect(dst, 0, 0, runner.Width, runner.Height, SkyColor, false)
	vector.DrawFilledRect(dst, 0, runner.GroundY, runner.Width, runner.Height-runner.GroundY, GroundColor, false)

	for ob := range s.Obstacles.Values() {
		x := float32(math.Round(ob.Position.X))
		y := float32(math.Round(ob.Position.Y))
		w, h := float32(ob.Body.W), float32(ob.Body.H)
		vector.DrawFilledRect(dst, x, y, w, h, ObstacleColor, false)
		vector.StrokeRect(dst, x, y, w, h, 1, OutlineColor, false)
	}

	s.drawPlayer(dst)
	s.drawHUD(dst)
}

func (s *SceneSystem) drawPlayer(dst *ebiten.Image) {
	sprites := s.Sprites.Get()
	if sprites == nil || sprites.Sheet == nil {
		return
	}
	if sprites.Sheet != s.sheet {
		s.sheet = sprites.Sheet
		for i := range s.frames {
			s.frames[i] = s.sheet.SubImage(FrameRect(i)).(*ebiten.Image)
		}
	}

	tuning := s.Tuning.Get()
	for p := range s.Players.Values() {
		frame := min(max(p.Animation.Frame, 0), runner.FrameCount-1)
		rect := PlayerRect(runner.PlayerState{
			Position:  *p.Position,
			Body:      *p.Body,
			Crouching: p.Player.Crouching,
		}, *tuning)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(SpriteScale, SpriteScale)
		op.GeoM.Translate(rect.X, rect.Y)
		op.Filter = ebiten.FilterLinear
		dst.DrawImage(s.frames[frame], op)
	}
}

func (s *SceneSystem) drawHUD(dst *ebiten.Image) {
	state := s.State.Get()
	if state == nil {
		return
	}
	ebitenutil.DebugPrintAt(dst, fmt.Sprintf("SCORE %05d  BEST %05d", state.Score, state.Best), runner.Width-190, 8)

	if state.Running {
		return
	}

	var title string
	sprites := s.Sprites.Get()
	switch {
	case sprites == nil || sprites.Failed:
		title = "Sprites unavailable"
	case sprites.Sheet == nil:
		title = "Loading..."
	case state.Crashed:
		title = fmt.Sprintf("Game over - score %d", state.Score)
	default:
		title = "Space or Up to jump, Down to crouch"
	}

	vector.DrawFilledRect(dst, 0, 40, runner.Width, 100, bannerColor, false)
	ebitenutil.DebugPrintAt(dst, title, centredText(title), 60)

	if sprites != nil && sprites.Sheet != nil {
		b := PlayButton
		vector.DrawFilledRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), buttonColor, false)
		ebitenutil.DebugPrintAt(dst, "Play", centredText("Play"), int(b.Y)+5)
	}
}

// centredText returns the x that centres s in the debug font, which is 6
// pixels per glyph.
func centredText(s string) int {
	return (runner.Width - len(s)*6) / 2
}

// Renderer owns the render scheduler for one world.
type Renderer struct {
	scheduler *ecs.Scheduler
	screen    *ecs.Singleton[Screen]
	sprites   *ecs.Singleton[Sprites]
}

// NewRenderer adds the render singletons to storage and registers the scene
// system.
func NewRenderer(storage *ecs.Storage) *Renderer {
	r := &Renderer{
		scheduler: ecs.NewScheduler(storage),
		screen:    ecs.NewSingleton(storage, Screen{}),
		sprites:   ecs.NewSingleton(storage, Sprites{}),
	}
	r.scheduler.Register(&SceneSystem{})
	return r
}

// SetSheet installs a decoded sprite sheet.
func (r *Renderer) SetSheet(img image.Image) {
	r.sprites.Get().Sheet = ebiten.NewImageFromImage(img)
}

// SetFailed marks the sprite sheet as unavailable.
func (r *Renderer) SetFailed() {
	r.sprites.Get().Failed = true
}

// Draw paints the world onto screen, which must be the logical play field
// size.
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.screen.Get().Image = screen
	r.scheduler.Once(0)
	r.screen.Get().Image = nil
}

// Stats returns the render scheduler's timings.
func (r *Renderer) Stats() *ecs.SchedulerStats {
	return r.scheduler.GetStats()
}
