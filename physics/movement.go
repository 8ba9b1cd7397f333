package physics

import (
	"math"

	"github.com/lixenwraith/open-island/vmath"
)

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(vel *vmath.Vec2, maxSpeed float64) bool {
	if vel.LenSq() > maxSpeed*maxSpeed {
		*vel = vel.ClampLen(maxSpeed)
		return true
	}
	return false
}

// ApplyDrag scales velocity by a per-tick drag factor
func ApplyDrag(b *Body, drag float64) {
	b.Velocity = b.Velocity.Scale(drag)
}

// AxisSnap keeps only the dominant axis of delta, producing grid-like motion
func AxisSnap(delta vmath.Vec2) vmath.Vec2 {
	if math.Abs(delta.X) > math.Abs(delta.Y) {
		return vmath.V(delta.X, 0)
	}
	return vmath.V(0, delta.Y)
}

func pow(x, p float64) float64 {
	switch p {
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	}
	return math.Pow(x, p)
}
