package component

import (
	"math"

	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

type ParticleKind uint8

const (
	ParticleDraw ParticleKind = iota
	ParticleBounce
	ParticleDamage
	ParticleShield
	ParticleDrawing
	ParticleHitSelf
	ParticleHeal
	ParticleUpgrade
	ParticleWallBreakable
	ParticleWallBlock
)

// Distribution samples spawn positions for a particle batch
type Distribution interface {
	Sample(rng *vmath.FastRand, density float64) []vmath.Vec2
}

// CircleDistribution spawns density*area particles uniformly in a disc
type CircleDistribution struct {
	Center vmath.Vec2
	Radius float64
}

func (c CircleDistribution) Sample(rng *vmath.FastRand, density float64) []vmath.Vec2 {
	amount := int(math.Ceil(density * c.Radius * c.Radius * math.Pi))
	out := make([]vmath.Vec2, 0, max(amount, 0))
	for i := 0; i < amount; i++ {
		out = append(out, rng.InCircle(c.Center, c.Radius))
	}
	return out
}

// DrawingDistribution spawns along a polyline within Width of it
// Fractional amounts carry across segments so long chains of short segments still emit
type DrawingDistribution struct {
	Points []vmath.Vec2
	Width  float64
}

func (d DrawingDistribution) Sample(rng *vmath.FastRand, density float64) []vmath.Vec2 {
	var (
		out     []vmath.Vec2
		leftOut float64
	)
	for i := 1; i < len(d.Points); i++ {
		a, b := d.Points[i-1], d.Points[i]
		seg := b.Sub(a)
		n := seg.NormalizeOrZero().Rotate90()
		amount := density * seg.Len() * d.Width
		leftOut += vmath.Fract(amount)
		count := int(math.Floor(amount) + math.Floor(leftOut))
		leftOut = vmath.Fract(leftOut)
		for j := 0; j < count; j++ {
			t := rng.Float64()
			u := rng.Range(-1, 1)
			out = append(out, a.Add(seg.Scale(t)).Add(n.Scale(d.Width*u)))
		}
	}
	return out
}

// AabbDistribution spawns density*area particles uniformly in a box
type AabbDistribution struct {
	Box vmath.Aabb
}

func (d AabbDistribution) Sample(rng *vmath.FastRand, density float64) []vmath.Vec2 {
	amount := int(math.Ceil(density * d.Box.Width() * d.Box.Height()))
	out := make([]vmath.Vec2, 0, max(amount, 0))
	for i := 0; i < amount; i++ {
		out = append(out, rng.InAabb(d.Box))
	}
	return out
}

// SpawnParticles is a declarative particle batch request
type SpawnParticles struct {
	Kind         ParticleKind
	Density      float64
	Distribution Distribution
	SizeMin      float64
	SizeMax      float64
	Velocity     vmath.Vec2
	LifetimeMin  float64
	LifetimeMax  float64
}

// Burst returns a request with default density, size and lifetime
func Burst(kind ParticleKind, dist Distribution) SpawnParticles {
	return SpawnParticles{
		Kind:         kind,
		Density:      parameter.ParticleDensity,
		Distribution: dist,
		SizeMin:      parameter.ParticleSizeMin,
		SizeMax:      parameter.ParticleSizeMax,
		LifetimeMin:  parameter.ParticleLifetimeMin,
		LifetimeMax:  parameter.ParticleLifetimeMax,
	}
}

// CircleBurst is Burst over a disc
func CircleBurst(kind ParticleKind, center vmath.Vec2, radius float64) SpawnParticles {
	return Burst(kind, CircleDistribution{Center: center, Radius: radius})
}

// Particle is purely cosmetic
type Particle struct {
	Kind     ParticleKind
	Collider physics.Collider
	Velocity vmath.Vec2
	Lifetime core.Bounded[float64]
}

// Spawn realizes the request into particles
func (s *SpawnParticles) Spawn(rng *vmath.FastRand) []Particle {
	if s.Distribution == nil {
		return nil
	}
	positions := s.Distribution.Sample(rng, s.Density)
	out := make([]Particle, 0, len(positions))
	for _, pos := range positions {
		out = append(out, Particle{
			Kind:     s.Kind,
			Collider: physics.NewCollider(pos, physics.Circle(rng.Range(s.SizeMin, s.SizeMax))),
			Velocity: rng.InCircle(s.Velocity, parameter.ParticleVelocityJitter),
			Lifetime: core.NewBoundedMax(rng.Range(s.LifetimeMin, s.LifetimeMax)),
		})
	}
	return out
}
