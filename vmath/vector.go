package vmath

import "math"

// Vec2 is a 2D vector in world units
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2
func V(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// Zero is the origin
var Zero = Vec2{}

func (v Vec2) Add(o Vec2) Vec2        { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2        { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(s float64) Vec2   { return Vec2{v.X * s, v.Y * s} }
func (v Vec2) Div(s float64) Vec2     { return Vec2{v.X / s, v.Y / s} }
func (v Vec2) Mul(o Vec2) Vec2        { return Vec2{v.X * o.X, v.Y * o.Y} }
func (v Vec2) Neg() Vec2              { return Vec2{-v.X, -v.Y} }
func (v Vec2) Dot(o Vec2) float64     { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Cross(o Vec2) float64   { return v.X*o.Y - v.Y*o.X }
func (v Vec2) LenSq() float64         { return v.X*v.X + v.Y*v.Y }
func (v Vec2) Len() float64           { return math.Hypot(v.X, v.Y) }
func (v Vec2) IsZero() bool           { return v.X == 0 && v.Y == 0 }
func (v Vec2) Map(f func(float64) float64) Vec2 {
	return Vec2{f(v.X), f(v.Y)}
}

// Arg returns the angle of the vector in radians, 0 for the zero vector
func (v Vec2) Arg() float64 {
	if v.IsZero() {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// NormalizeOrZero returns the unit vector, zero-safe
func (v Vec2) NormalizeOrZero() Vec2 {
	l := v.Len()
	if l == 0 || !Finite(l) {
		return Zero
	}
	return v.Div(l)
}

// ClampLen limits the vector magnitude to maxLen while preserving direction
// Returns unchanged vector if magnitude <= maxLen
func (v Vec2) ClampLen(maxLen float64) Vec2 {
	if maxLen <= 0 {
		return Zero
	}
	l := v.Len()
	if l <= maxLen || l == 0 {
		return v
	}
	return v.Scale(maxLen / l)
}

// Rotate90 returns vector rotated 90° counter-clockwise
func (v Vec2) Rotate90() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Rotate rotates the vector by angle radians counter-clockwise
func (v Vec2) Rotate(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{v.X*c - v.Y*s, v.X*s + v.Y*c}
}

// Unit returns the unit vector at the given angle
func Unit(angle float64) Vec2 {
	s, c := math.Sincos(angle)
	return Vec2{c, s}
}

// Lerp interpolates between a and b
func Lerp(a, b Vec2, t float64) Vec2 {
	return a.Add(b.Sub(a).Scale(t))
}

// Distance returns the Euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Reflect returns velocity reflected off surface with given normal
// vel' = vel - 2 * dot(vel, normal) * normal
func Reflect(vel, normal Vec2) Vec2 {
	return vel.Sub(normal.Scale(2 * vel.Dot(normal)))
}
