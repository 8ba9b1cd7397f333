package parameter

// Player Presentation
const (
	// PlayerRotationOffsetDeg rotates the player sprite relative to the cursor direction
	PlayerRotationOffsetDeg = 30.0

	// PlayerShieldDownRadius is the particle ring when invincibility ends
	PlayerShieldDownRadius = 0.6

	// PlayerCooldownReadyRadius is the particle ring when the weapon becomes ready
	PlayerCooldownReadyRadius = 0.7

	// PlayerHitSelfRadius is the particle ring when the player takes damage
	PlayerHitSelfRadius = 0.6
)

// Gesture Capture
const (
	// DrawDedupDistSq merges consecutive raw points closer than 0.1
	DrawDedupDistSq = 0.01

	// SplineTension of the cardinal smoothing pass
	SplineTension = 0.5

	// SplineSamples per raw interval
	SplineSamples = 3

	// DrawParticleDensity and DrawParticleWidth shape the trail while drawing
	DrawParticleDensity = 0.5
	DrawParticleWidth   = 0.2
)

// Bow Bullet
const (
	MinionBulletHealth          = 1.0
	MinionBulletRadius          = 0.3
	MinionBulletExplosionDamage = 1.5 // Multiplier on gesture damage
	MinionBulletExplosionRadius = 2.0 // Multiplier on gesture width

	// MinionBulletLifetime in seconds before a bullet expires on its own
	MinionBulletLifetime = 5.0
)
