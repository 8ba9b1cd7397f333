package vmath

// Aabb is an axis-aligned box; Min is bottom-left, Max is top-right
type Aabb struct {
	Min, Max Vec2
}

// AabbPoint returns a zero-size box at p
func AabbPoint(p Vec2) Aabb {
	return Aabb{Min: p, Max: p}
}

// AabbCentered returns a box of the given size centered at c
func AabbCentered(c, size Vec2) Aabb {
	half := size.Scale(0.5)
	return Aabb{Min: c.Sub(half), Max: c.Add(half)}
}

func (a Aabb) Width() float64  { return a.Max.X - a.Min.X }
func (a Aabb) Height() float64 { return a.Max.Y - a.Min.Y }
func (a Aabb) Size() Vec2      { return Vec2{a.Width(), a.Height()} }
func (a Aabb) Center() Vec2    { return Lerp(a.Min, a.Max, 0.5) }

// Contains checks if point is within the box, half-open on the max edges
func (a Aabb) Contains(p Vec2) bool {
	return p.X >= a.Min.X && p.X < a.Max.X && p.Y >= a.Min.Y && p.Y < a.Max.Y
}

// ExtendUniform grows the box by d on every side; negative d shrinks it
// Shrinking past the center collapses to the center point
func (a Aabb) ExtendUniform(d float64) Aabb {
	r := Aabb{Min: a.Min.Sub(Vec2{d, d}), Max: a.Max.Add(Vec2{d, d})}
	if r.Min.X > r.Max.X {
		c := (a.Min.X + a.Max.X) / 2
		r.Min.X, r.Max.X = c, c
	}
	if r.Min.Y > r.Max.Y {
		c := (a.Min.Y + a.Max.Y) / 2
		r.Min.Y, r.Max.Y = c, c
	}
	return r
}

// ExtendSymmetric grows the box by d on both sides of each axis
func (a Aabb) ExtendSymmetric(d Vec2) Aabb {
	return Aabb{Min: a.Min.Sub(d), Max: a.Max.Add(d)}
}

func (a Aabb) ExtendLeft(d float64) Aabb  { a.Min.X -= d; return a }
func (a Aabb) ExtendRight(d float64) Aabb { a.Max.X += d; return a }
func (a Aabb) ExtendDown(d float64) Aabb  { a.Min.Y -= d; return a }
func (a Aabb) ExtendUp(d float64) Aabb    { a.Max.Y += d; return a }

// Corners returns the four corners counter-clockwise from Min
func (a Aabb) Corners() [4]Vec2 {
	return [4]Vec2{
		a.Min,
		{a.Max.X, a.Min.Y},
		a.Max,
		{a.Min.X, a.Max.Y},
	}
}

// Union returns the smallest box containing both
func (a Aabb) Union(b Aabb) Aabb {
	return Aabb{
		Min: Vec2{min(a.Min.X, b.Min.X), min(a.Min.Y, b.Min.Y)},
		Max: Vec2{max(a.Max.X, b.Max.X), max(a.Max.Y, b.Max.Y)},
	}
}

// AabbFromPoints returns the bounding box of the points, zero box for none
func AabbFromPoints(points []Vec2) Aabb {
	if len(points) == 0 {
		return Aabb{}
	}
	box := AabbPoint(points[0])
	for _, p := range points[1:] {
		box = box.Union(AabbPoint(p))
	}
	return box
}

// Translate moves the box by d
func (a Aabb) Translate(d Vec2) Aabb {
	return Aabb{Min: a.Min.Add(d), Max: a.Max.Add(d)}
}
