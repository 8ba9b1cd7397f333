package physics

import (
	"github.com/lixenwraith/open-island/vmath"
)

// SteerProfile defines acceleration-limited steering parameters
type SteerProfile struct {
	Speed float64 // Target cruising speed (units/sec)
	Accel float64 // Maximum velocity change per second
}

// Steer blends velocity toward the direction of target offset by repel
// velocity += clamp(target_velocity - velocity, accel*dt)
func Steer(b *Body, target, repel vmath.Vec2, profile SteerProfile, dt float64) {
	desired := target.Sub(b.Collider.Position).Add(repel).NormalizeOrZero().Scale(profile.Speed)
	SteerVelocity(b, desired, profile.Accel, dt)
}

// SteerVelocity blends velocity toward desired with acceleration clamp
func SteerVelocity(b *Body, desired vmath.Vec2, accel, dt float64) {
	b.Velocity = b.Velocity.Add(desired.Sub(b.Velocity).ClampLen(accel * dt))
}

// Repulsion sums inverse-power separation from each source position
// Coincident sources contribute nothing
func Repulsion(self vmath.Vec2, sources []vmath.Vec2, profile *RepulsionProfile) vmath.Vec2 {
	var force vmath.Vec2
	for _, src := range sources {
		force = force.Add(RepelFrom(self, src, profile))
	}
	return force
}

// RepelFrom returns the separation force from a single source
func RepelFrom(self, src vmath.Vec2, profile *RepulsionProfile) vmath.Vec2 {
	delta := self.Sub(src)
	l := delta.Len()
	if l < vmath.Epsilon {
		return vmath.Zero
	}
	return delta.Div(pow(l, profile.Power)).Scale(profile.Weight)
}
