// Package render draws a model snapshot onto a tcell screen
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/open-island/engine"
)

// SystemRenderer is implemented by anything with visual output
// Renderers only read the model
type SystemRenderer interface {
	Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

type rendererEntry struct {
	renderer SystemRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// RenderOrchestrator coordinates the render pipeline
type RenderOrchestrator struct {
	screen    tcell.Screen
	buffer    *RenderBuffer
	renderers []rendererEntry
	regCount  int
	statusBar *StatusBarRenderer
}

// NewRenderOrchestrator creates an orchestrator sized to the screen
func NewRenderOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	w, h := screen.Size()
	return &RenderOrchestrator{
		screen:    screen,
		buffer:    NewRenderBuffer(w, h),
		renderers: make([]rendererEntry, 0, 16),
	}
}

// NewDefaultOrchestrator registers the full game pipeline
func NewDefaultOrchestrator(screen tcell.Screen) *RenderOrchestrator {
	o := NewRenderOrchestrator(screen)
	o.Register(&RoomRenderer{}, PriorityFloor)
	o.Register(&WallRenderer{}, PriorityWall)
	o.Register(&ParticleRenderer{}, PriorityParticle)
	o.Register(&ObjectRenderer{}, PriorityObject)
	o.Register(&EnemyRenderer{}, PriorityEntities)
	o.Register(&PlayerRenderer{}, PriorityPlayer)
	o.Register(&DrawingRenderer{}, PriorityDrawing)
	o.statusBar = &StatusBarRenderer{}
	o.Register(o.statusBar, PriorityUI)
	o.Register(&GameOverRenderer{}, PriorityOverlay)
	return o
}

// Register adds a renderer at the specified priority. Maintains sorted order via insertion sort
func (o *RenderOrchestrator) Register(r SystemRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// Resize updates buffer dimensions and syncs the screen
func (o *RenderOrchestrator) Resize() {
	w, h := o.screen.Size()
	o.buffer.Resize(w, h)
	o.screen.Sync()
}

// ToggleStatusBar shows or hides the HUD line of the default pipeline
func (o *RenderOrchestrator) ToggleStatusBar() {
	if o.statusBar != nil {
		o.statusBar.Hidden = !o.statusBar.Hidden
	}
}

// Buffer exposes the composited frame
func (o *RenderOrchestrator) Buffer() *RenderBuffer {
	return o.buffer
}

// RenderFrame executes the render pipeline: clear, render all, flush, show
func (o *RenderOrchestrator) RenderFrame(ctx RenderContext, m *engine.Model) {
	o.buffer.Clear()

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, m, o.buffer)
	}

	o.buffer.Flush(o.screen)
	o.screen.Show()
}
