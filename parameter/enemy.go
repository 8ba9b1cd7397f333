package parameter

// Enemy Common
const (
	// EnemyInvincibilityMax is the ceiling of every enemy invincibility timer (seconds)
	EnemyInvincibilityMax = 0.5

	// IdleDrag is the per-tick velocity decay of idle enemies
	IdleDrag = 0.9

	// BulletDeathParticleRadius marks a bullet dissolving on contact
	BulletDeathParticleRadius = 0.3
)

// Healer
const (
	HealerAuraRadius  = 0.2
	HealerAuraDensity = 30.0 // Particles per second
	HealerBurstRadius = 1.2
)

// Shielder
const (
	ShielderAuraRadius  = 0.3
	ShielderAuraDensity = 50.0 // Particles per second

	// ShielderAdjacency multiplies preferred distance to decide whether the target is covered
	ShielderAdjacency = 1.5
)

// Orbit targets fall back to the player at this multiple of the preferred distance
const OrbitPlayerFactor = 1.5

// Pacman
const (
	PacmanSpawn1UpInterval = 5.0 // Seconds
	PacmanPowerDuration    = 3.0 // Seconds
	PacmanSpeedPower       = 9.0

	// PacmanRevertSpawn1Up is the next pickup countdown after power ends
	PacmanRevertSpawn1Up = 1.0

	PacmanTargetReachSq  = 1.0   // Target considered reached
	PacmanWanderMinSq    = 100.0 // Random wander target must be this far
	PacmanWanderMargin   = 5.0   // Shrink of room area for wander targets
	PacmanWanderTries    = 10
	PacmanAxisThresholdX = 0.5 // Horizontal delta that keeps horizontal motion
	PacmanAxisThresholdY = 0.1 // Vertical delta below which motion turns horizontal

	Pacman1UpCornerInset = 10.0 // Pickup anchor distance from the far corner
	Pacman1UpScatter     = 3.0
	Pacman1UpSpacingSq   = 16.0
	Pacman1UpTries       = 10
	Pacman1UpRadius      = 0.5
)

// Helicopter boss
const (
	HelicopterOscillate     = 7.0 // Idle seconds before picking a new corner
	HelicopterCornerInset   = 5.0
	HelicopterArriveSq      = 1.0
	HelicopterMinionsChance = 0.3
	HelicopterMinionHealth  = 1.5 // Multiplier on squad archetype health
	HelicopterMinionDelay   = 0.15
	HelicopterMinigunTime   = 5.0
	HelicopterShotDelay     = 0.2
	HelicopterGunOffset     = 1.3 // Horizontal offset of each gun from the body center
	HelicopterReverseAccel  = 2.0 // Acceleration multiplier when reversing
)
