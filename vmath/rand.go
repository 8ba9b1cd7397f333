package vmath

import "math"

// FastRand is a xorshift64 generator; all simulation randomness flows through one instance per model
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// Seed resets the generator state
func (r *FastRand) Seed(seed uint64) {
	if seed == 0 {
		seed = 1
	}
	r.state = seed
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Chance reports true with probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// Angle returns a uniform angle in [0, 2pi)
func (r *FastRand) Angle() float64 {
	return r.Float64() * 2 * math.Pi
}

// InCircle returns a uniformly distributed point inside a circle
func (r *FastRand) InCircle(center Vec2, radius float64) Vec2 {
	d := math.Sqrt(r.Float64()) * radius
	return center.Add(Unit(r.Angle()).Scale(d))
}

// InAabb returns a uniformly distributed point inside a box
func (r *FastRand) InAabb(a Aabb) Vec2 {
	return Vec2{r.Range(a.Min.X, a.Max.X), r.Range(a.Min.Y, a.Max.Y)}
}
