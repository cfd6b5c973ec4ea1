package debugui

import (
	"time"

	"github.com/plus3/advent/ecs"
)

// StatsSource names a scheduler whose timings the performance window shows.
type StatsSource struct {
	Name  string
	Stats func() *ecs.SchedulerStats
}

// Inspector groups the generic ECS windows around one shared entity
// selection.
type Inspector struct {
	Entities    *EntityBrowser
	Components  *ComponentInspector
	Archetypes  *ArchetypeViewer
	Performance *PerformanceStats

	storage   *ecs.Storage
	sources   []StatsSource
	lastFrame time.Time
}

// SpawnDebugUI adds the inspector windows to storage as one ImguiItem.
func SpawnDebugUI(storage *ecs.Storage, sources ...StatsSource) *Inspector {
	in := &Inspector{
		Entities:    NewEntityBrowser(100),
		Components:  &ComponentInspector{},
		Archetypes:  NewArchetypeViewer(),
		Performance: NewPerformanceStats(120),
		storage:     storage,
		sources:     sources,
	}
	storage.Spawn(ImguiItem{Render: in.Render})
	ecs.NewSingleton(storage, ImguiInputState{})
	return in
}

// Render draws every inspector window.
func (in *Inspector) Render() {
	now := time.Now()
	if !in.lastFrame.IsZero() {
		in.Performance.Record(now.Sub(in.lastFrame))
	}
	in.lastFrame = now

	if id := in.Archetypes.Render(in.storage); id != nil {
		in.Entities.FilterArchetype(*id)
	}
	in.Entities.Render(in.storage)
	in.Components.Render(in.storage, in.Entities.Selected())
	in.Performance.Render(in.storage, in.sources)
}
