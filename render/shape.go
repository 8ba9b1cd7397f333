package render

import (
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// covers reports whether world point p lies inside the collider outline
func covers(c *physics.Collider, p vmath.Vec2) bool {
	local := p.Sub(c.Position)
	if c.Shape.Kind == physics.ShapeCircle {
		return local.LenSq() <= c.Shape.Radius*c.Shape.Radius
	}
	local = local.Rotate(-c.Rotation)
	verts := c.Shape.Vertices()
	if len(verts) < 3 {
		return false
	}
	// Counter-clockwise convex hull: inside is left of every edge
	for i := range verts {
		a, b := verts[i], verts[(i+1)%len(verts)]
		if b.Sub(a).Cross(local.Sub(a)) < 0 {
			return false
		}
	}
	return true
}

// fillCollider paints every cell covered by c and always the center cell, so sub-cell shapes stay visible
// Returns the center cell and whether it is on screen
func fillCollider(ctx RenderContext, buf *RenderBuffer, c *physics.Collider, glyph rune, fg RGB) (int, int, bool) {
	ctx.EachCell(c.AABB(), func(sx, sy int, w vmath.Vec2) {
		if covers(c, w) {
			buf.SetFgOnly(sx, sy, glyph, fg)
		}
	})
	sx, sy, ok := ctx.WorldToScreen(c.Position)
	if ok {
		buf.SetFgOnly(sx, sy, glyph, fg)
	}
	return sx, sy, ok
}
