package system

import (
	"sync/atomic"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
)

// DeathSystem removes dead entities, applies death effects and rewards, and ages particles
type DeathSystem struct {
	statKilled    *atomic.Int64
	statParticles *atomic.Int64
}

func NewDeathSystem(reg *status.Registry) *DeathSystem {
	return &DeathSystem{
		statKilled:    reg.Ints.Get(status.KeyEnemiesKilled),
		statParticles: reg.Ints.Get(status.KeyParticles),
	}
}

func (s *DeathSystem) Name() string {
	return "death"
}

func (s *DeathSystem) Priority() int {
	return parameter.PriorityDeath
}

func (s *DeathSystem) Update(m *engine.Model, dt float64) {
	killObjects(m)
	killMinions(m)

	inBattle := !m.CanExpand()
	s.statKilled.Add(int64(killEnemies(m)))
	if inBattle && m.CanExpand() && m.Player.Alive() {
		FinishBattle(m)
	}

	AgeParticles(m, dt)
	s.statParticles.Store(int64(len(m.Particles)))
}

// killObjects removes dead hazards and any that ended up outside every room; barrels explode
func killObjects(m *engine.Model) {
	kept := m.Objects[:0]
	for _, o := range m.Objects {
		if !o.Dead && room.Inside(m.Rooms, o.Collider.Position) {
			kept = append(kept, o)
			continue
		}
		explode(m, physics.NewCollider(o.Collider.Position, physics.Circle(o.Barrel.Range)), o.Barrel.Damage)
		m.Events.Push(event.SoundExplosion)
	}
	m.Objects = kept
}

// killMinions removes spent projectiles; each one bursts on removal
func killMinions(m *engine.Model) {
	kept := m.Minions[:0]
	for _, mn := range m.Minions {
		if mn.Health.IsAboveMin() {
			kept = append(kept, mn)
			continue
		}
		explode(m, physics.NewCollider(mn.Body.Collider.Position, physics.Circle(mn.AI.ExplosionRadius)), mn.AI.ExplosionDamage)
	}
	m.Minions = kept
}

// explode damages every vulnerable enemy overlapping blast
func explode(m *engine.Model, blast physics.Collider, damage float64) {
	m.Enemies.Each(func(e *component.Enemy) {
		if e.Vulnerable() && e.Body.Collider.Check(&blast) {
			e.Health.Change(-damage)
			e.LastHit = m.GameTime
		}
	})
	m.QueueParticles(component.CircleBurst(component.ParticleDamage, blast.Position, blast.Shape.Radius))
}

// killEnemies removes enemies at the health floor and returns how many died
// Each non-bullet death emits exactly one Kill cue
func killEnemies(m *engine.Model) int {
	killed := 0
	m.Enemies.Retain(func(e *component.Enemy) bool {
		if e.Alive() {
			return true
		}
		killed++
		if e.IsBoss {
			m.BossesKilled++
		}
		if m.Player.Alive() {
			m.Score += int64(float64(e.Stats.Score) * m.ScoreMultiplier)
		}
		if e.IsBullet() {
			m.QueueParticles(component.CircleBurst(component.ParticleBounce, e.Position(), parameter.BulletDeathParticleRadius))
		} else {
			m.Events.Push(event.SoundKill)
		}
		return false
	})
	return killed
}

// AgeParticles moves and expires live particles, then realizes queued batches up to the cap
func AgeParticles(m *engine.Model, dt float64) {
	kept := m.Particles[:0]
	for _, p := range m.Particles {
		p.Collider.Position = p.Collider.Position.Add(p.Velocity.Scale(dt))
		p.Lifetime.Change(-dt)
		if p.Lifetime.IsAboveMin() {
			kept = append(kept, p)
		}
	}
	m.Particles = kept

	for i := range m.ParticleQueue {
		free := parameter.MaxParticles - len(m.Particles)
		if free <= 0 {
			break
		}
		spawned := m.ParticleQueue[i].Spawn(m.Rng)
		if len(spawned) > free {
			spawned = spawned[:free]
		}
		m.Particles = append(m.Particles, spawned...)
	}
	clear(m.ParticleQueue)
	m.ParticleQueue = m.ParticleQueue[:0]
}
