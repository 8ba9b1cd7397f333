package system

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
)

// CollisionSystem resolves contacts between bodies, hazards and walls
// Every Collision normal points toward the body being resolved
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Update(m *engine.Model, dt float64) {
	collideObjects(m)
	collidePlayerEnemies(m)
	collideMinionEnemies(m)
	collideWalls(m)
}

// collideObjects slides the player along hazards; minions and enemies touching a barrel detonate it
func collideObjects(m *engine.Model) {
	p := &m.Player
	for i := range m.Objects {
		o := &m.Objects[i]
		if o.Dead {
			continue
		}

		if c, ok := p.Body.Collider.Collide(&o.Collider); ok {
			p.Body.PushOut(c)
			if proj := p.Body.Slide(c.Normal); proj > parameter.BounceSoundThreshold {
				m.Events.Push(event.SoundBounce)
			}
		}

		for j := range m.Minions {
			mn := &m.Minions[j]
			if mn.Health.IsAboveMin() && mn.Body.Collider.Check(&o.Collider) {
				mn.Kill()
				o.Dead = true
				m.Events.Push(event.SoundHit)
			}
		}

		m.Enemies.Each(func(e *component.Enemy) {
			if e.Body.Collider.Check(&o.Collider) {
				o.Dead = true
				m.Events.Push(event.SoundHit)
			}
		})
	}
}

// collidePlayerEnemies separates the player from enemies with mass-weighted correction and bounce
func collidePlayerEnemies(m *engine.Model) {
	p := &m.Player
	m.Enemies.Each(func(e *component.Enemy) {
		playerCollider := p.Body.Collider
		damageMult := 1.0
		if p.Invincible() {
			playerCollider = m.Shield()
			damageMult = 0
		}

		c, ok := playerCollider.Collide(&e.Body.Collider)
		if !ok {
			return
		}

		// Share of the correction the player absorbs; a drawing player is anchored
		playerShare := 0.0
		if p.Drawing == nil {
			playerShare = e.Body.Mass / (e.Body.Mass + p.Body.Mass)
		}
		enemyShare := 1 - playerShare

		correction := c.Normal.Scale(c.Penetration)
		p.Body.Collider.Position = p.Position().Add(correction.Scale(playerShare))
		e.Body.Collider.Position = e.Position().Sub(correction.Scale(enemyShare))

		rel := p.Body.Velocity.Sub(e.Body.Velocity)
		proj := max(-rel.Dot(c.Normal), 0)
		bounce := c.Normal.Scale(proj * (1 + physics.ContactBounce.Bounciness))
		p.Body.ApplyImpulse(bounce.Scale(playerShare))
		e.Body.ApplyImpulse(bounce.Scale(-enemyShare))

		damage := e.Stats.Damage * damageMult
		p.Health.Change(-damage)
		p.LastHit = m.GameTime
		if damage > 0 {
			p.Invincibility.Set(p.Stats.HurtInvincibilityTime)
			m.QueueParticles(component.CircleBurst(component.ParticleHitSelf, p.Position(), parameter.PlayerHitSelfRadius))
			m.Events.Push(event.SoundHitSelf)
		}

		if e.IsBullet() {
			e.Kill()
		}

		m.QueueParticles(component.CircleBurst(component.ParticleBounce, c.Point, parameter.BounceParticleRadius))
		if rel.LenSq() > parameter.BounceSoundThreshold {
			m.Events.Push(event.SoundBounce)
		}
	})
}

// collideMinionEnemies lets player bullets hit enemies; a bullet is spent on its first contact
func collideMinionEnemies(m *engine.Model) {
	for i := range m.Minions {
		mn := &m.Minions[i]
		m.Enemies.Each(func(e *component.Enemy) {
			if mn.Health.IsMin() || !mn.Body.Collider.Check(&e.Body.Collider) {
				return
			}
			mn.Kill()
			if e.Vulnerable() {
				e.Health.Change(-mn.AI.Damage)
				e.LastHit = m.GameTime
			}
			m.Events.Push(event.SoundHit)
		})
	}
}

// collideWalls pushes bodies back into the rooms; projectiles die on walls
func collideWalls(m *engine.Model) {
	p := &m.Player
	for i := range m.Walls {
		wall := &m.Walls[i].Collider

		if c, ok := p.Body.Collider.Collide(wall); ok {
			p.Body.PushOut(c)
			if proj := p.Body.Bounce(c.Normal, &physics.WallBounce); proj > parameter.BounceSoundThreshold {
				m.Events.Push(event.SoundBounce)
			}
		}

		m.Enemies.Each(func(e *component.Enemy) {
			c, ok := e.Body.Collider.Collide(wall)
			if !ok {
				return
			}
			e.Body.PushOut(c)
			if proj := e.Body.Bounce(c.Normal, &physics.WallBounce); proj > parameter.BounceSoundThreshold {
				m.Events.Push(event.SoundBounce)
			}
			if e.IsBullet() {
				e.Kill()
			}
		})

		for j := range m.Minions {
			if m.Minions[j].Body.Collider.Check(wall) {
				m.Minions[j].Kill()
			}
		}
	}
}
