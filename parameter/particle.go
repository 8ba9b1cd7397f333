package parameter

// Particle Defaults
const (
	ParticleDensity     = 5.0
	ParticleSizeMin     = 0.05
	ParticleSizeMax     = 0.15
	ParticleLifetimeMin = 0.5
	ParticleLifetimeMax = 1.5

	// ParticleVelocityJitter is the radius of random velocity around the requested velocity
	ParticleVelocityJitter = 0.2
)

// Wall Particles
const (
	WallParticleDensity     = 50.0 // Per second, per unit area
	WallParticleLifetimeMin = 2.0
	WallParticleLifetimeMax = 3.0
)

// Burst radii
const (
	BounceParticleRadius = 0.2
)
