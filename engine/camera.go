package engine

import "github.com/lixenwraith/open-island/vmath"

// Camera is the world-space view center consumed by the renderer
type Camera struct {
	Center vmath.Vec2
}

// PlayerControls is the per-tick input
// MoveDir may have any magnitude and is clamped to unit length; Drawing is the cursor world position while the draw key is held
type PlayerControls struct {
	MoveDir vmath.Vec2
	Drawing *vmath.Vec2
}
