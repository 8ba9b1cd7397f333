package system

import (
	"math"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// DamageAround applies a resolved gesture along chain
// Each vulnerable enemy within width of the chain takes damage once; objects in reach are destroyed;
// the closest reachable upgrade is collected and the rest vanish
func DamageAround(m *engine.Model, chain []vmath.Vec2, width, damage float64) {
	if len(chain) < 2 {
		return
	}
	p := &m.Player
	// Fishing hits fling along the final stroke of the gesture
	n := len(chain)
	fling := chain[n-1].Sub(chain[n-2]).NormalizeOrZero().Scale(p.Stats.Fishing.Speed)

	m.Enemies.Each(func(e *component.Enemy) {
		if !e.Vulnerable() {
			return
		}
		box := e.Body.Collider.AABB()
		reach := width + box.Size().Len()/(2*math.Sqrt2)
		if vmath.DistanceToChain(e.Position(), chain) >= reach {
			return
		}
		e.Health.Change(-damage)
		e.LastHit = m.GameTime
		if p.ActiveWeapon == component.WeaponFishingRod {
			e.Body.ApplyImpulse(fling)
		}
		m.QueueParticles(component.CircleBurst(component.ParticleDamage, e.Position(), box.Size().Len()/2))
		m.Events.Push(event.SoundHit)
	})

	for i := range m.Objects {
		o := &m.Objects[i]
		if vmath.DistanceToChain(o.Collider.Position, chain) < width+o.Collider.ApproxRadius() {
			o.Dead = true
		}
	}

	if len(m.Upgrades) > 0 {
		best, bestDist := -1, math.Inf(1)
		for i := range m.Upgrades {
			d := vmath.DistanceToChain(m.Upgrades[i].Collider.Position, chain)
			if d < width && d < bestDist {
				best, bestDist = i, d
			}
		}
		if best >= 0 {
			u := m.Upgrades[best]
			m.Upgrades = m.Upgrades[:0]
			CollectUpgrade(m, u)
		}
	}

	m.QueueParticles(component.Burst(component.ParticleDraw, component.DrawingDistribution{Points: chain, Width: width}))
}

// CollectUpgrade applies an upgrade effect to the player
func CollectUpgrade(m *engine.Model, u component.Upgrade) {
	s := &m.Player.Stats
	switch u.Effect.Kind {
	case component.UpgradeWidth:
		s.Whip.Width += parameter.UpgradeWidthMelee
		s.Dash.Width += parameter.UpgradeWidthMelee
		s.Bow.Width += parameter.UpgradeWidthBow
	case component.UpgradeRange:
		s.Whip.MaxDistance += parameter.UpgradeRange
		s.Dash.MaxDistance += parameter.UpgradeRange
		s.Bow.MaxDistance += parameter.UpgradeRange
	case component.UpgradeDamage:
		s.Whip.Damage += parameter.UpgradeDamage
		s.Dash.Damage += parameter.UpgradeDamage
		s.Bow.Damage += parameter.UpgradeDamage
	case component.UpgradeSpeed:
		s.Speed += parameter.UpgradeSpeed
		s.Acceleration += parameter.UpgradeAccel
	case component.UpgradeDifficulty:
		m.DifficultyRaw += m.Config.Difficulty.UpgradeAmount
		m.ScoreMultiplier += m.Config.Score.UpgradeMultiplier
	case component.UpgradeWeapon:
		m.Player.ActiveWeapon = u.Effect.Weapon
	}

	m.QueueParticles(component.CircleBurst(component.ParticleUpgrade, u.Collider.Position, u.Collider.AABB().Size().Len()))
	m.Log.Debug("upgrade collected", "upgrade", u.Effect.String())
}
