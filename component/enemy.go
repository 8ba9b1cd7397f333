package component

import (
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// Attachment links an enemy to a partner at a fixed offset (self - partner)
type Attachment struct {
	Partner core.ID
	Offset  vmath.Vec2
}

// Enemy is a hostile unit; Stats is the archetype snapshot it was spawned from
type Enemy struct {
	ID            core.ID
	IsBoss        bool
	Health        core.Bounded[float64]
	LastHit       float64
	Invincibility core.Bounded[float64]
	Body          physics.Body
	Attachment    *Attachment
	Stats         config.EnemyConfig
	AI            AI
}

func NewEnemy(id core.ID, stats config.EnemyConfig, position vmath.Vec2) *Enemy {
	return &Enemy{
		ID:            id,
		Health:        core.NewBoundedMax(stats.Health),
		LastHit:       -1,
		Invincibility: core.NewBoundedZero(parameter.EnemyInvincibilityMax),
		Body:          physics.NewBody(position, stats.Shape, stats.Mass),
		Stats:         stats,
		AI:            NewAI(stats.AI),
	}
}

// Position is shorthand for the collider position
func (e *Enemy) Position() vmath.Vec2 {
	return e.Body.Collider.Position
}

// Alive reports whether health is above the floor
func (e *Enemy) Alive() bool {
	return e.Health.IsAboveMin()
}

// Vulnerable reports whether the enemy can be damaged this tick
func (e *Enemy) Vulnerable() bool {
	return e.Invincibility.IsMin()
}

// Damage subtracts health if vulnerable; returns whether it applied
func (e *Enemy) Damage(amount float64) bool {
	if !e.Vulnerable() {
		return false
	}
	e.Health.Change(-amount)
	return true
}

// Kill drives health to the floor
func (e *Enemy) Kill() {
	e.Health.SetRatio(0)
}

// IsBullet reports whether the enemy is a projectile
func (e *Enemy) IsBullet() bool {
	_, ok := e.AI.(*BulletAI)
	return ok
}
