// Package ebiten provides Dear ImGui backend integration for the Ebiten game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/hajimehoshi/ebiten/v2"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// Store it as an ECS singleton so systems can reach it.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the ImGui and ImPlot contexts and the ebiten
// window. ImGui's ini file is disabled.
func NewImguiBackend(title string, width, height int) ImguiBackend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	implot.CreateContext()
	imgui.CurrentIO().SetIniFilename("")
	return ImguiBackend{EbitenBackend: b}
}

// Overlay brackets one game frame with the ImGui frame calls.
type Overlay struct {
	Backend *ImguiBackend
}

// Update runs update between BeginFrame and EndFrame.
func (o Overlay) Update(update func() error) error {
	o.Backend.BeginFrame()
	defer o.Backend.EndFrame()
	return update()
}

// Draw paints the ImGui draw data over screen.
func (o Overlay) Draw(screen *ebiten.Image) {
	o.Backend.EbitenBackend.Draw(screen)
}

// Layout forwards the outside size to ImGui.
func (o Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.EbitenBackend.Layout(outsideWidth, outsideHeight)
}
