package debugui

import (
	"fmt"
	"reflect"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/advent/ecs"
)

// ComponentInspector shows and edits the components of one entity.
type ComponentInspector struct{}

func (ci *ComponentInspector) Render(storage *ecs.Storage, id ecs.EntityId) {
	imgui.SetNextWindowPosV(imgui.NewVec2(870, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 300), imgui.CondOnce)
	if !imgui.BeginV("Component Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	if id == 0 {
		imgui.Text("No entity selected")
		return
	}

	archetype := storage.GetArchetypeById(id.ArchetypeId())
	if archetype == nil || !storage.Alive(id) {
		imgui.Text(fmt.Sprintf("Entity %s not found", id))
		return
	}

	imgui.Text(fmt.Sprintf("Entity: %s", id))
	imgui.Text(fmt.Sprintf("Archetype: 0x%08X", archetype.ID()))
	imgui.Separator()

	for _, t := range archetype.Types() {
		component := storage.GetComponent(id, t)
		if component == nil {
			continue
		}
		if imgui.TreeNodeStr(t.String()) {
			renderValue(t.Name(), reflect.ValueOf(component).Elem())
			imgui.TreePop()
		}
	}
}

// renderValue draws an editable widget for v, writing edits straight back
// through the component pointer.
func renderValue(name string, v reflect.Value) {
	label := "##" + name

	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int32(v.Int())
		labelled(name)
		if imgui.InputInt(label, &n) && v.CanSet() {
			v.SetInt(int64(n))
		}

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := int32(min(v.Uint(), 1<<31-1))
		labelled(name)
		if imgui.InputInt(label, &n) && v.CanSet() && n >= 0 {
			v.SetUint(uint64(n))
		}

	case reflect.Float32, reflect.Float64:
		f := float32(v.Float())
		labelled(name)
		if imgui.InputFloat(label, &f) && v.CanSet() {
			v.SetFloat(float64(f))
		}

	case reflect.Bool:
		b := v.Bool()
		if imgui.Checkbox(name, &b) && v.CanSet() {
			v.SetBool(b)
		}

	case reflect.String:
		s := v.String()
		labelled(name)
		if imgui.InputTextWithHint(label, "", &s, imgui.InputTextFlagsNone, nil) && v.CanSet() {
			v.SetString(s)
		}

	case reflect.Struct:
		fields := globalReflectionCache.Fields(v.Type())
		if len(fields) == 0 {
			imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
			return
		}
		if imgui.TreeNodeStr(name) {
			for _, f := range fields {
				fv := v.Field(f.Index)
				if f.IsPointer {
					if fv.IsNil() {
						imgui.Text(f.Name + ": nil")
						continue
					}
					fv = fv.Elem()
				}
				renderValue(f.Name, fv)
			}
			imgui.TreePop()
		}

	case reflect.Slice, reflect.Map:
		imgui.Text(fmt.Sprintf("%s: %s[%d]", name, v.Kind(), v.Len()))

	case reflect.Func:
		imgui.Text(fmt.Sprintf("%s: func", name))

	default:
		if v.CanInterface() {
			imgui.Text(fmt.Sprintf("%s: %v", name, v.Interface()))
		}
	}
}

func labelled(name string) {
	imgui.Text(name + ":")
	imgui.SameLine()
	imgui.SetNextItemWidth(150)
}

// EditValue draws editable widgets for the value ptr points to.
func EditValue(name string, ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		imgui.Text(name + ": nil")
		return
	}
	renderValue(name, v.Elem())
}
