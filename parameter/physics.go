package parameter

// Body Defaults
const (
	// DefaultMass is used when an archetype omits mass
	DefaultMass = 1.0

	// MoveRotationFactor scales velocity magnitude into angular velocity (rad/sec per unit/sec)
	MoveRotationFactor = 1.0
)

// Repulsion between enemies and from hazard objects
const (
	RepelEnemyPower   = 3.0
	RepelEnemyWeight  = 1.0
	RepelObjectPower  = 1.5
	RepelObjectWeight = 5.0
)

// Contact Response
const (
	// WallBounciness is the restitution of room walls
	WallBounciness = 0.8

	// ContactBounciness is the restitution of player/enemy contact
	ContactBounciness = 2.0

	// BounceSoundThreshold is the projected speed above which a contact is audible
	BounceSoundThreshold = 1.0

	// WallThickness of generated wall colliders
	WallThickness = 0.1
)
