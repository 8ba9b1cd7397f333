package physics

import (
	"fmt"
	"math"
	"strings"

	"github.com/lixenwraith/open-island/vmath"
)

// ShapeKind discriminates the Shape union
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeRectangle
	ShapeTriangle
)

var shapeKindNames = [...]string{"circle", "rectangle", "triangle"}

func (k ShapeKind) String() string {
	if int(k) < len(shapeKindNames) {
		return shapeKindNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", k)
}

// UnmarshalText decodes the lowercase kind name used by configuration
func (k *ShapeKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range shapeKindNames {
		if n == name {
			*k = ShapeKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown shape kind %q", name)
}

func (k ShapeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Shape is an immutable collision shape centered on the local origin
// Circle uses Radius, Rectangle uses Width and Height, Triangle uses Height (equilateral)
type Shape struct {
	Kind   ShapeKind `yaml:"kind"`
	Radius float64   `yaml:"radius,omitempty"`
	Width  float64   `yaml:"width,omitempty"`
	Height float64   `yaml:"height,omitempty"`
}

func Circle(radius float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: radius}
}

func Rectangle(width, height float64) Shape {
	return Shape{Kind: ShapeRectangle, Width: width, Height: height}
}

func Square(size float64) Shape {
	return Rectangle(size, size)
}

func Triangle(height float64) Shape {
	return Shape{Kind: ShapeTriangle, Height: height}
}

// Vertices returns the polygon outline in local space, nil for circles
// Rectangles are wound counter-clockwise from the bottom-left corner
func (s Shape) Vertices() []vmath.Vec2 {
	switch s.Kind {
	case ShapeRectangle:
		c := vmath.AabbCentered(vmath.Zero, vmath.V(s.Width, s.Height)).Corners()
		return c[:]
	case ShapeTriangle:
		base := s.Height * 2 / math.Sqrt(3)
		return []vmath.Vec2{
			{X: -base / 2, Y: -s.Height / 3},
			{X: base / 2, Y: -s.Height / 3},
			{X: 0, Y: s.Height * 2 / 3},
		}
	}
	return nil
}

// Degenerate reports whether the shape cannot form a convex hull
func (s Shape) Degenerate() bool {
	switch s.Kind {
	case ShapeCircle:
		return !vmath.Finite(s.Radius) || s.Radius < 0
	case ShapeRectangle:
		return !(s.Width > 0 && s.Height > 0) || !vmath.Finite(s.Width) || !vmath.Finite(s.Height)
	case ShapeTriangle:
		return !(s.Height > 0) || !vmath.Finite(s.Height)
	}
	return true
}

// Sanitized returns a usable shape; degenerate hulls collapse to a zero-radius circle
func (s Shape) Sanitized() Shape {
	if s.Degenerate() {
		return Circle(0)
	}
	return s
}

// localAabb returns the bounding box of the unrotated shape
func (s Shape) localAabb() vmath.Aabb {
	if s.Kind == ShapeCircle {
		return vmath.AabbCentered(vmath.Zero, vmath.V(2*s.Radius, 2*s.Radius))
	}
	return vmath.AabbFromPoints(s.Vertices())
}
