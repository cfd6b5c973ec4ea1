package main

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/advent/ecs"
	"github.com/plus3/advent/ecs/debugui"
	"github.com/plus3/advent/runner"
)

// spawnRunWindow adds a window with the live run state and editable tuning.
func spawnRunWindow(storage *ecs.Storage, game *runner.Game) {
	var editor tuningEditor
	storage.Spawn(debugui.ImguiItem{
		Render: func() {
			var tuning *runner.Tuning
			if !storage.ReadSingleton(&tuning) {
				return
			}

			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(420, 230), imgui.CondOnce)
			if imgui.BeginV("Run", nil, imgui.WindowFlagsNone) {
				scene := game.Scene()
				imgui.Text(fmt.Sprintf("Running: %v  Crashed: %v  Ready: %v", scene.Running, scene.Crashed, scene.Ready))
				imgui.Text(fmt.Sprintf("Score: %d  Best: %d  Runs: %d", scene.Score, scene.Best, scene.Runs))
				imgui.Text(fmt.Sprintf("Speed: %.2f  Elapsed: %.1fs", scene.Speed, scene.Elapsed/1000))
				imgui.Text(fmt.Sprintf("Obstacles: %d  Spawn interval: %.0fms", len(scene.Obstacles), scene.SpawnInterval))
				if next, ok := scene.Next(scene.Hitbox.X); ok {
					imgui.Text(fmt.Sprintf("Next: %s at %.0f (%.0fx%.0f)", next.Class, next.X, next.W, next.H))
				}

				if imgui.Button("Restart") {
					game.Start()
				}
				imgui.Separator()
				if !editor.loaded {
					editor.reset(*tuning)
				}
				debugui.EditValue("Tuning", &editor.draft)
				editor.commit(tuning)
				if editor.err != nil {
					imgui.Text(fmt.Sprintf("Not applied: %v", editor.err))
					if imgui.Button("Revert") {
						editor.reset(*tuning)
					}
				}
			}
			imgui.End()
		},
	})
}

// tuningEditor holds an edited copy of the tuning. The copy replaces the live
// tuning only while it validates.
type tuningEditor struct {
	draft  runner.Tuning
	err    error
	loaded bool
}

func (e *tuningEditor) reset(live runner.Tuning) {
	e.draft = live
	e.err = nil
	e.loaded = true
}

func (e *tuningEditor) commit(live *runner.Tuning) {
	if e.draft == *live {
		e.err = nil
		return
	}
	if err := e.draft.Validate(); err != nil {
		e.err = err
		return
	}
	*live = e.draft
	e.err = nil
}
