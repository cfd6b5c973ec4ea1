package main

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/plus3/advent/config"
	"github.com/plus3/advent/ecs"
	"github.com/plus3/advent/ecs/debugui"
	debugui_ebiten "github.com/plus3/advent/ecs/debugui/ebiten"
	"github.com/plus3/advent/render"
	"github.com/plus3/advent/runner"
	"github.com/plus3/advent/sound"
)

var letterbox = color.RGBA{0x10, 0x10, 0x10, 0xff}

// App implements ebiten.Game around one runner.Game.
type App struct {
	game     *runner.Game
	renderer *render.Renderer
	loader   *render.SheetLoader
	sounds   *sound.Bank

	field    *ebiten.Image
	viewport render.Viewport

	overlay *debugui_ebiten.Overlay
	ui      *ecs.Scheduler
	uiInput *ecs.Singleton[debugui.ImguiInputState]
}

func NewApp(cfg config.Config, width, height int) (*App, error) {
	registry := ecs.NewComponentRegistry()
	debugui.RegisterComponents(registry)

	game := runner.New(cfg.Tuning, runner.WithRegistry(registry))
	a := &App{
		game:     game,
		renderer: render.NewRenderer(game.Storage()),
		loader:   render.LoadSheet(context.Background(), cfg.Sprites),
		field:    ebiten.NewImage(runner.Width, runner.Height),
		viewport: render.FitViewport(width, height),
	}

	if cfg.Audio.Enabled {
		bank, err := sound.NewBank(audio.NewContext(int(sound.SampleRate)), cfg.Audio.Volume)
		if err != nil {
			return nil, fmt.Errorf("sound: %w", err)
		}
		a.sounds = bank
	}

	if cfg.Debug {
		a.enableDebug(cfg.Window.Title, max(width, 1280), max(height, 720))
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Window.Title)
	}
	return a, nil
}

func (a *App) enableDebug(title string, width, height int) {
	storage := a.game.Storage()
	backend := ecs.NewSingleton(storage, debugui_ebiten.NewImguiBackend(title, width, height))
	a.overlay = &debugui_ebiten.Overlay{Backend: backend.Get()}

	debugui.SpawnDebugUI(storage,
		debugui.StatsSource{Name: "Simulation", Stats: a.game.Stats},
		debugui.StatsSource{Name: "Render", Stats: a.renderer.Stats},
	)
	spawnRunWindow(storage, a.game)

	a.ui = ecs.NewScheduler(storage)
	a.ui.Register(&debugui.ImguiSystem{})
	a.uiInput = ecs.NewSingleton[debugui.ImguiInputState](storage)
}

func (a *App) Update() error {
	if a.overlay != nil {
		return a.overlay.Update(a.update)
	}
	return a.update()
}

func (a *App) update() error {
	a.pollSprites()

	var captured debugui.ImguiInputState
	if a.uiInput != nil {
		captured = *a.uiInput.Get()
	}
	intent := readIntent(a.viewport, captured)
	if intent.Quit {
		return ebiten.Termination
	}
	applyIntent(a.game, intent)
	if a.sounds != nil {
		if muted, changed := applyMute(a.sounds, intent); changed {
			log.Printf("Sound muted: %v", muted)
		}
	}

	a.game.Tick(1000 / float64(ebiten.TPS()))

	events := a.game.DrainEvents()
	if a.sounds != nil {
		if err := a.sounds.PlayEvents(events); err != nil {
			log.Printf("sound: %v", err)
		}
	}

	if a.ui != nil {
		a.ui.Once(1.0 / float64(ebiten.TPS()))
	}
	return nil
}

func (a *App) pollSprites() {
	if a.loader == nil {
		return
	}
	img, done, err := a.loader.Poll()
	if !done {
		return
	}
	a.loader = nil

	if err != nil {
		log.Printf("Sprites unavailable, the run cannot start: %v", err)
		a.renderer.SetFailed()
		return
	}
	a.renderer.SetSheet(img)
	a.game.MarkAssetsReady()
}

func (a *App) Draw(screen *ebiten.Image) {
	a.field.Clear()
	a.renderer.Draw(a.field)

	screen.Fill(letterbox)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(a.viewport.Scale, a.viewport.Scale)
	op.GeoM.Translate(a.viewport.OffsetX, a.viewport.OffsetY)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(a.field, op)

	if a.overlay != nil {
		a.overlay.Draw(screen)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewport = render.FitViewport(outsideWidth, outsideHeight)
	if a.overlay != nil {
		a.overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// Close stops a pending sprite load and releases audio players.
func (a *App) Close() {
	if a.loader != nil {
		a.loader.Close()
	}
	if a.sounds != nil {
		if err := a.sounds.Close(); err != nil {
			log.Printf("sound: %v", err)
		}
	}
}
