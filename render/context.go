package render

import (
	"math"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// RenderContext provides frame state for renderers, passed by value
// World Y grows upward, screen rows grow downward
type RenderContext struct {
	IsPaused bool
	AudioOn  bool

	// Camera center in world coordinates
	Camera vmath.Vec2

	// Screen margins (game area offset from terminal origin)
	GameYOffset int

	// Viewport dimensions (visible game area, terminal-derived)
	ViewportWidth  int
	ViewportHeight int

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int
}

// NewRenderContext frames the model camera in a terminal of the given size
func NewRenderContext(m *engine.Model, width, height int) RenderContext {
	return RenderContext{
		Camera:         m.Camera.Center,
		GameYOffset:    parameter.TopMargin,
		ViewportWidth:  width,
		ViewportHeight: max(height-parameter.TopMargin, 0),
		ScreenWidth:    width,
		ScreenHeight:   height,
	}
}

// center returns the screen position of the camera center
func (rc *RenderContext) center() (float64, float64) {
	return float64(rc.ViewportWidth) / 2, float64(rc.GameYOffset) + float64(rc.ViewportHeight)/2
}

// WorldToScreen converts a world position to the screen cell containing it
// Returns (sx, sy, visible) where visible=false if outside the viewport
func (rc *RenderContext) WorldToScreen(p vmath.Vec2) (int, int, bool) {
	cx, cy := rc.center()
	sx := int(math.Floor(cx + (p.X-rc.Camera.X)*parameter.CellsPerUnitX))
	sy := int(math.Floor(cy - (p.Y-rc.Camera.Y)*parameter.CellsPerUnitY))
	return sx, sy, rc.InViewport(sx, sy)
}

// ScreenToWorld converts a screen cell to the world position of its center
func (rc *RenderContext) ScreenToWorld(sx, sy int) vmath.Vec2 {
	cx, cy := rc.center()
	return vmath.Vec2{
		X: rc.Camera.X + (float64(sx)+0.5-cx)/parameter.CellsPerUnitX,
		Y: rc.Camera.Y - (float64(sy)+0.5-cy)/parameter.CellsPerUnitY,
	}
}

// InViewport reports whether a screen cell belongs to the game area
func (rc *RenderContext) InViewport(sx, sy int) bool {
	return sx >= 0 && sx < rc.ViewportWidth && sy >= rc.GameYOffset && sy < rc.GameYOffset+rc.ViewportHeight
}

// ScreenRect returns the half-open screen cell range covering box, clamped to the viewport
func (rc *RenderContext) ScreenRect(box vmath.Aabb) (x0, y0, x1, y1 int) {
	ax, ay, _ := rc.WorldToScreen(vmath.Vec2{X: box.Min.X, Y: box.Max.Y})
	bx, by, _ := rc.WorldToScreen(vmath.Vec2{X: box.Max.X, Y: box.Min.Y})
	x0 = max(ax, 0)
	y0 = max(ay, rc.GameYOffset)
	x1 = min(bx+1, rc.ViewportWidth)
	y1 = min(by+1, rc.GameYOffset+rc.ViewportHeight)
	return x0, y0, x1, y1
}

// EachCell calls fn for every viewport cell whose center lies inside box
func (rc *RenderContext) EachCell(box vmath.Aabb, fn func(sx, sy int, world vmath.Vec2)) {
	x0, y0, x1, y1 := rc.ScreenRect(box)
	for sy := y0; sy < y1; sy++ {
		for sx := x0; sx < x1; sx++ {
			w := rc.ScreenToWorld(sx, sy)
			if box.Contains(w) {
				fn(sx, sy, w)
			}
		}
	}
}
