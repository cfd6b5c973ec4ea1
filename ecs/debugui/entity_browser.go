package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/advent/ecs"
)

type EntityInfo struct {
	ID             ecs.EntityId
	ArchetypeID    uint32
	ComponentTypes []string
}

type EntityBrowser struct {
	entities []EntityInfo
	selected ecs.EntityId

	filterText      string
	filterArchetype *uint32
	perPage         int
	page            int
}

func NewEntityBrowser(perPage int) *EntityBrowser {
	return &EntityBrowser{perPage: max(perPage, 1)}
}

func (eb *EntityBrowser) Selected() ecs.EntityId {
	return eb.selected
}

func (eb *EntityBrowser) Select(id ecs.EntityId) {
	eb.selected = id
}

// FilterArchetype limits the list to one archetype.
func (eb *EntityBrowser) FilterArchetype(id uint32) {
	eb.filterArchetype = &id
	eb.page = 0
}

func (eb *EntityBrowser) Render(storage *ecs.Storage) {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 220), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 260), imgui.CondOnce)
	if !imgui.BeginV("Entity Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	eb.entities = collectEntities(storage)
	if !storage.Alive(eb.selected) {
		eb.selected = 0
	}

	if imgui.InputTextWithHint("##search", "Search...", &eb.filterText, imgui.InputTextFlagsNone, nil) {
		eb.page = 0
	}
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		eb.filterText = ""
		eb.filterArchetype = nil
		eb.page = 0
	}

	filtered := filterEntities(eb.entities, eb.filterText, eb.filterArchetype)
	pages := max((len(filtered)+eb.perPage-1)/eb.perPage, 1)
	eb.page = min(eb.page, pages-1)
	start := eb.page * eb.perPage
	end := min(start+eb.perPage, len(filtered))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 3, tableFlags, imgui.NewVec2(0, 160), 0) {
		imgui.TableSetupColumn("Entity")
		imgui.TableSetupColumn("Archetype")
		imgui.TableSetupColumn("Components")
		imgui.TableHeadersRow()

		for _, entity := range filtered[start:end] {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			if imgui.SelectableBoolV(entity.ID.String(), eb.selected == entity.ID, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				eb.selected = entity.ID
			}
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("0x%08X", entity.ArchetypeID))
			imgui.TableNextColumn()
			imgui.Text(strings.Join(entity.ComponentTypes, ", "))
		}
		imgui.EndTable()
	}

	if pages > 1 {
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", eb.page+1, pages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && eb.page > 0 {
			eb.page--
		}
		imgui.SameLine()
		if imgui.Button("Next") && eb.page < pages-1 {
			eb.page++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

func collectEntities(storage *ecs.Storage) []EntityInfo {
	var entities []EntityInfo
	for _, a := range storage.Archetypes() {
		names := make([]string, len(a.Types()))
		for i, t := range a.Types() {
			names[i] = t.String()
		}
		for id := range a.Iter() {
			entities = append(entities, EntityInfo{ID: id, ArchetypeID: a.ID(), ComponentTypes: names})
		}
	}
	return entities
}

// filterEntities keeps entities of archetype (when set) whose id, archetype
// or component names contain text, case-insensitively.
func filterEntities(entities []EntityInfo, text string, archetype *uint32) []EntityInfo {
	if text == "" && archetype == nil {
		return entities
	}

	needle := strings.ToLower(text)
	var out []EntityInfo
	for _, e := range entities {
		if archetype != nil && e.ArchetypeID != *archetype {
			continue
		}
		if needle != "" {
			haystack := strings.ToLower(fmt.Sprintf("%s 0x%08x %s", e.ID, e.ArchetypeID, strings.Join(e.ComponentTypes, " ")))
			if !strings.Contains(haystack, needle) {
				continue
			}
		}
		out = append(out, e)
	}
	return out
}
