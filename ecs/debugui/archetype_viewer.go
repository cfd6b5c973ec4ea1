package debugui

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/advent/ecs"
)

type ArchetypeInfo struct {
	ID             uint32
	ComponentTypes []string
	EntityCount    int
}

// Archetype table columns.
const (
	archColumnID = iota
	archColumnComponents
	archColumnCompCount
	archColumnEntities
)

type ArchetypeViewer struct {
	archetypes    []ArchetypeInfo
	lastCount     int
	selected      *uint32
	sortColumn    int
	sortAscending bool
}

func NewArchetypeViewer() *ArchetypeViewer {
	return &ArchetypeViewer{sortColumn: archColumnEntities}
}

// Render draws the archetype table and returns the archetype clicked this
// frame, if any.
func (av *ArchetypeViewer) Render(storage *ecs.Storage) *uint32 {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 200), imgui.CondOnce)
	if !imgui.BeginV("Archetype Viewer", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return nil
	}

	av.refresh(storage)

	var clicked *uint32
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("ArchetypeTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Archetype ID")
		imgui.TableSetupColumn("Components")
		imgui.TableSetupColumn("Comp Count")
		imgui.TableSetupColumn("Entity Count")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			av.sortColumn = int(spec.ColumnIndex())
			av.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sortArchetypes(av.archetypes, av.sortColumn, av.sortAscending)
			sortSpecs.SetSpecsDirty(false)
		}

		for _, arch := range av.archetypes {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := av.selected != nil && *av.selected == arch.ID
			if imgui.SelectableBoolV(fmt.Sprintf("0x%08X", arch.ID), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				id := arch.ID
				av.selected = &id
				clicked = &id
			}

			imgui.TableNextColumn()
			imgui.Text(strings.Join(arch.ComponentTypes, ", "))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", len(arch.ComponentTypes)))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", arch.EntityCount))
		}
		imgui.EndTable()
	}

	imgui.End()
	return clicked
}

// refresh rebuilds the table when archetypes were added and otherwise only
// updates the entity counts.
func (av *ArchetypeViewer) refresh(storage *ecs.Storage) {
	archetypes := storage.Archetypes()
	if len(archetypes) != av.lastCount {
		av.archetypes = collectArchetypes(storage)
		av.lastCount = len(archetypes)
	} else {
		for i := range av.archetypes {
			if a := storage.GetArchetypeById(av.archetypes[i].ID); a != nil {
				av.archetypes[i].EntityCount = a.Len()
			}
		}
	}
	sortArchetypes(av.archetypes, av.sortColumn, av.sortAscending)
}

func collectArchetypes(storage *ecs.Storage) []ArchetypeInfo {
	infos := make([]ArchetypeInfo, 0, len(storage.Archetypes()))
	for _, a := range storage.Archetypes() {
		names := make([]string, len(a.Types()))
		for i, t := range a.Types() {
			names[i] = t.String()
		}
		infos = append(infos, ArchetypeInfo{ID: a.ID(), ComponentTypes: names, EntityCount: a.Len()})
	}
	return infos
}

func sortArchetypes(infos []ArchetypeInfo, column int, ascending bool) {
	slices.SortStableFunc(infos, func(a, b ArchetypeInfo) int {
		var c int
		switch column {
		case archColumnID:
			c = cmp.Compare(a.ID, b.ID)
		case archColumnComponents:
			c = strings.Compare(strings.Join(a.ComponentTypes, ","), strings.Join(b.ComponentTypes, ","))
		case archColumnCompCount:
			c = cmp.Compare(len(a.ComponentTypes), len(b.ComponentTypes))
		default:
			c = cmp.Compare(a.EntityCount, b.EntityCount)
		}
		if !ascending {
			c = -c
		}
		return c
	})
}
