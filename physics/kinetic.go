package physics

import (
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// Body is a collider with mass and velocities
type Body struct {
	Collider        Collider
	Mass            float64
	Velocity        vmath.Vec2
	AngularVelocity float64
}

func NewBody(position vmath.Vec2, shape Shape, mass float64) Body {
	if !(mass > 0) {
		mass = parameter.DefaultMass
	}
	return Body{Collider: NewCollider(position, shape), Mass: mass}
}

// Integrate performs position and rotation integration: p = p + v*dt
func (b *Body) Integrate(dt float64) {
	b.Collider.Position = b.Collider.Position.Add(b.Velocity.Scale(dt))
	b.Collider.Rotation = vmath.NormalizeAngle(b.Collider.Rotation + b.AngularVelocity*dt)
}

// MoveRotation derives spin from velocity: magnitude sets the rate, x sign sets the direction
func (b *Body) MoveRotation() {
	b.AngularVelocity = b.Velocity.Len() * vmath.Signum(b.Velocity.X) * parameter.MoveRotationFactor
}

// ApplyImpulse adds velocity delta (momentum transfer)
func (b *Body) ApplyImpulse(dv vmath.Vec2) {
	b.Velocity = b.Velocity.Add(dv)
}

// Bounce reflects the velocity component into the surface, scaled by (1 + Bounciness)
// Returns the projected speed into the surface before the bounce
func (b *Body) Bounce(normal vmath.Vec2, profile *BounceProfile) float64 {
	proj := -b.Velocity.Dot(normal)
	if proj > 0 {
		b.Velocity = b.Velocity.Add(normal.Scale(proj * (1 + profile.Bounciness)))
	}
	return proj
}

// Slide removes the normal component of velocity entirely
// Returns the projected speed into the surface before the slide
func (b *Body) Slide(normal vmath.Vec2) float64 {
	proj := -b.Velocity.Dot(normal)
	b.Velocity = b.Velocity.Add(normal.Scale(proj))
	return proj
}

// PushOut moves the body along the contact normal by the penetration depth
func (b *Body) PushOut(c Collision) {
	b.Collider.Position = b.Collider.Position.Add(c.Normal.Scale(c.Penetration))
}
