package parameter

// Difficulty & Rooms
const (
	// DifficultyStep quantizes raw difficulty into spawn budget steps
	DifficultyStep = 1.0

	// RoomSizeMin and RoomSizeMax bound the random extent of a normal room before scaling
	RoomSizeMin = 15.0
	RoomSizeMax = 25.0

	// CompressionBase and CompressionExponent give speed = base * rooms^exponent
	CompressionBase     = 1.5
	CompressionExponent = 1.2

	// RoomSquashSize is the width or height at which a compressing room is squashed
	RoomSquashSize = 1.0
)

// Enemy Spawning
const (
	SpawnMargin          = 3.0 // Shrink of room area for spawn positions
	SpawnTries           = 50
	SpawnPlayerClearance = 5.0
	GroupCircleCount     = 6
	GroupCircleSpacing   = 2.0 // Multiplier on archetype radius
	GroupSquareSpacing   = 1.0 // Grid step of the rectangle ring
	GroupTriangleCount   = 3
	GroupTriangleSpacing = 1.0 // Multiplier on archetype height
)

// Explosive Barrel
const (
	BarrelChance       = 0.4
	BarrelSize         = 1.33
	BarrelTries        = 10
	BarrelClearance    = 5.0 // Distance from every enemy
	BarrelRangeBonus   = 2.0 // Added to whip width
	BarrelDamageFactor = 1.7 // Multiplier on whip damage
)

// Boss HP boost is whip damage / BossHPDamageDivisor * BossHPFactor
const (
	BossHPDamageDivisor = 7.0
	BossHPFactor        = 0.9
)

// Upgrades
const (
	UpgradeRadius = 0.5
	UpgradeSpread = 2.5 // Spacing between offered upgrades

	// UpgradeAspectThreshold picks a horizontal layout for rooms wider than this aspect
	UpgradeAspectThreshold = 0.5

	UpgradeWidthMelee = 0.5 // Whip and dash
	UpgradeWidthBow   = 0.2
	UpgradeRange      = 3.0
	UpgradeDamage     = 3.0
	UpgradeSpeed      = 1.0
	UpgradeAccel      = 2.5
)

// CameraLag is the time constant of camera follow (seconds)
const CameraLag = 0.5
