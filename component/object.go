package component

import (
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// ExplosiveBarrel detonates when removed, damaging vulnerable enemies within Range
type ExplosiveBarrel struct {
	Range  float64
	Damage float64
}

// Object is a hazard; Dead marks it for removal in the death pass
type Object struct {
	Collider physics.Collider
	Barrel   ExplosiveBarrel
	Dead     bool
}

func NewBarrel(position vmath.Vec2, size float64, barrel ExplosiveBarrel) Object {
	return Object{
		Collider: physics.NewCollider(position, physics.Square(size)),
		Barrel:   barrel,
	}
}

// Pacman1Up is a bonus pickup that powers up pacman enemies
type Pacman1Up struct {
	Collider physics.Collider
}
