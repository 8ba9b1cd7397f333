package physics

import (
	"github.com/lixenwraith/open-island/parameter"
)

// Repulsion profiles - pre-defined for zero allocation in hot path

// RepulsionProfile shapes the inverse-power separation force from one source
type RepulsionProfile struct {
	Power  float64 // Falloff exponent applied to distance
	Weight float64 // Multiplier on the resulting force
}

// EnemyRepulsion keeps enemies apart from each other
var EnemyRepulsion = RepulsionProfile{
	Power:  parameter.RepelEnemyPower,
	Weight: parameter.RepelEnemyWeight,
}

// ObjectRepulsion steers enemies around hazard objects
var ObjectRepulsion = RepulsionProfile{
	Power:  parameter.RepelObjectPower,
	Weight: parameter.RepelObjectWeight,
}

// BounceProfile controls velocity response on contact
type BounceProfile struct {
	Bounciness float64 // 0 cancels the normal component, 1 reflects it fully
}

// WallBounce applies to bodies pushed out of room walls
var WallBounce = BounceProfile{Bounciness: parameter.WallBounciness}

// ContactBounce applies to player/enemy body contact
var ContactBounce = BounceProfile{Bounciness: parameter.ContactBounciness}
