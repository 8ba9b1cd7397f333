package component

import (
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// MinionBullet is the bow projectile behavior; damage on hit, explosion on death
type MinionBullet struct {
	Damage          float64
	ExplosionDamage float64
	ExplosionRadius float64
}

// Minion is a player-owned projectile
type Minion struct {
	Health   core.Bounded[float64]
	Body     physics.Body
	AI       MinionBullet
	Lifetime core.Bounded[float64]
}

// NewBowBullet creates a projectile from the bow stats
func NewBowBullet(stats *DrawStats, position, dir vmath.Vec2) Minion {
	m := Minion{
		Health: core.NewBoundedMax(parameter.MinionBulletHealth),
		Body:   physics.NewBody(position, physics.Circle(parameter.MinionBulletRadius), parameter.DefaultMass),
		AI: MinionBullet{
			Damage:          stats.Damage,
			ExplosionDamage: stats.Damage * parameter.MinionBulletExplosionDamage,
			ExplosionRadius: stats.Width * parameter.MinionBulletExplosionRadius,
		},
		Lifetime: core.NewBoundedMax(parameter.MinionBulletLifetime),
	}
	m.Body.Velocity = dir.Scale(stats.Speed)
	return m
}

func (m *Minion) Kill() {
	m.Health.SetRatio(0)
}
