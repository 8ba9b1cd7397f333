package physics

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/lixenwraith/open-island/vmath"
)

// Collider places a shape in the world
type Collider struct {
	Position vmath.Vec2
	Rotation float64
	Shape    Shape
}

// satShape is a resolv shape that can be flattened onto an axis
type satShape interface {
	resolv.IShape
	Project(axis resolv.Vector) resolv.Projection
}

// Collision describes the contact between two colliders
// Normal points from the other collider toward the receiver
type Collision struct {
	Normal      vmath.Vec2
	Penetration float64
	Point       vmath.Vec2
}

func NewCollider(position vmath.Vec2, shape Shape) Collider {
	return Collider{Position: position, Shape: shape.Sanitized()}
}

// AABB returns the tight world-space bounding box
func (c *Collider) AABB() vmath.Aabb {
	shape := c.Shape.Sanitized()
	if shape.Kind == ShapeCircle {
		return shape.localAabb().Translate(c.Position)
	}
	verts := shape.Vertices()
	world := make([]vmath.Vec2, len(verts))
	for i, v := range verts {
		world[i] = v.Rotate(c.Rotation).Add(c.Position)
	}
	return vmath.AabbFromPoints(world)
}

// ApproxRadius estimates a bounding circle radius from the box diagonal
func (c *Collider) ApproxRadius() float64 {
	return c.AABB().Size().Len() / (2 * math.Sqrt2)
}

// Check reports whether the colliders overlap
func (c *Collider) Check(other *Collider) bool {
	_, ok := c.Collide(other)
	return ok
}

// Collide returns the penetration info when the colliders overlap
func (c *Collider) Collide(other *Collider) (Collision, bool) {
	a, b := c.Shape.Sanitized(), other.Shape.Sanitized()
	if a.Kind == ShapeCircle && b.Kind == ShapeCircle {
		return collideCircles(c.Position, a.Radius, other.Position, b.Radius)
	}

	sa, sb := c.resolvShape(a), other.resolvShape(b)
	mtv, ok := separatingAxis(sa, sb)
	if !ok {
		return Collision{}, false
	}

	depth := mtv.Len()
	normal := mtv.NormalizeOrZero()
	// Orient away from the other body
	if normal.Dot(c.Position.Sub(other.Position)) < 0 {
		normal = normal.Neg()
	}
	if normal.IsZero() {
		normal = c.Position.Sub(other.Position).NormalizeOrZero()
	}

	return Collision{Normal: normal, Penetration: depth, Point: contactPoint(c, other, sa, sb)}, true
}

// separatingAxis runs SAT over both shapes' edge normals plus, for circles, the axis to the nearest vertex
// Returns the minimum translation vector; false when any axis separates the shapes
func separatingAxis(a, b satShape) (vmath.Vec2, bool) {
	axes := satAxes(a, b)
	axes = append(axes, satAxes(b, a)...)
	if len(axes) == 0 {
		return vmath.Zero, false
	}

	best := math.Inf(1)
	var mtv vmath.Vec2
	for _, axis := range axes {
		overlap := a.Project(axis).Overlap(b.Project(axis))
		if overlap <= 0 {
			return vmath.Zero, false
		}
		if overlap < best {
			best = overlap
			mtv = vmath.V(axis.X, axis.Y).Scale(overlap)
		}
	}
	return mtv, true
}

// satAxes returns the unit test axes contributed by s against other
func satAxes(s, other resolv.IShape) []resolv.Vector {
	switch shape := s.(type) {
	case *resolv.ConvexPolygon:
		return shape.SATAxes()
	case *resolv.Circle:
		poly, ok := other.(*resolv.ConvexPolygon)
		if !ok {
			return nil
		}
		center := shape.Position()
		var (
			nearest resolv.Vector
			bestSq  = math.Inf(1)
		)
		for _, v := range poly.Transformed() {
			if d := v.DistanceSquared(center); d < bestSq {
				nearest, bestSq = v, d
			}
		}
		// A vertex on the center gives no direction; edge normals decide alone
		if bestSq == 0 {
			return nil
		}
		return []resolv.Vector{center.Sub(nearest).Unit()}
	}
	return nil
}

// contactPoint averages the boundary crossings, falling back to the points of either shape lying inside the other
// Crossings are empty when one shape contains the other
func contactPoint(c, other *Collider, sa, sb resolv.IShape) vmath.Vec2 {
	if set := sa.Intersection(sb); len(set.Intersections) > 0 {
		var sum vmath.Vec2
		for _, in := range set.Intersections {
			sum = sum.Add(vmath.V(in.Point.X, in.Point.Y))
		}
		return sum.Div(float64(len(set.Intersections)))
	}

	var (
		sum vmath.Vec2
		n   int
	)
	collect := func(from, into resolv.IShape) {
		for _, p := range outline(from) {
			if p.IsInside(into) {
				sum = sum.Add(vmath.V(p.X, p.Y))
				n++
			}
		}
	}
	collect(sa, sb)
	collect(sb, sa)
	if n == 0 {
		return vmath.Lerp(c.Position, other.Position, 0.5)
	}
	return sum.Div(float64(n))
}

// outline returns the center and, for polygons, the world vertices
func outline(s resolv.IShape) []resolv.Vector {
	points := []resolv.Vector{s.Position()}
	if poly, ok := s.(*resolv.ConvexPolygon); ok {
		points = append(points, poly.Transformed()...)
	}
	return points
}

func collideCircles(pa vmath.Vec2, ra float64, pb vmath.Vec2, rb float64) (Collision, bool) {
	delta := pa.Sub(pb)
	dist := delta.Len()
	pen := ra + rb - dist
	if pen <= 0 {
		return Collision{}, false
	}
	normal := delta.NormalizeOrZero()
	if normal.IsZero() {
		normal = vmath.V(1, 0)
	}
	return Collision{
		Normal:      normal,
		Penetration: pen,
		Point:       pb.Add(normal.Scale(rb - pen/2)),
	}, true
}

func (c *Collider) resolvShape(s Shape) satShape {
	if s.Kind == ShapeCircle {
		return resolv.NewCircle(c.Position.X, c.Position.Y, s.Radius)
	}
	verts := s.Vertices()
	flat := make([]float64, 0, 2*len(verts))
	for _, v := range verts {
		flat = append(flat, v.X, v.Y)
	}
	poly := resolv.NewConvexPolygon(c.Position.X, c.Position.Y, flat)
	// resolv turns its points by the negated rotation
	poly.SetRotation(-c.Rotation)
	return poly
}
