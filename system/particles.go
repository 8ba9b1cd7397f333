package system

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
)

// PassiveParticlesSystem emits ambient particles along walls, marking which ones can be broken
type PassiveParticlesSystem struct{}

func NewPassiveParticlesSystem() *PassiveParticlesSystem {
	return &PassiveParticlesSystem{}
}

func (s *PassiveParticlesSystem) Name() string {
	return "passive_particles"
}

func (s *PassiveParticlesSystem) Priority() int {
	return parameter.PriorityParticles
}

func (s *PassiveParticlesSystem) Update(m *engine.Model, dt float64) {
	peaceful := m.CanExpand()
	for i := range m.Walls {
		w := &m.Walls[i]
		kind := component.ParticleWallBlock
		if r := m.Rooms.Get(w.Room); peaceful && r != nil && r.Breakable(w.Side) {
			kind = component.ParticleWallBreakable
		}
		m.QueueParticles(component.SpawnParticles{
			Kind:         kind,
			Density:      parameter.WallParticleDensity * dt,
			Distribution: component.AabbDistribution{Box: w.Collider.AABB()},
			SizeMin:      parameter.ParticleSizeMin,
			SizeMax:      parameter.ParticleSizeMax,
			LifetimeMin:  parameter.WallParticleLifetimeMin,
			LifetimeMax:  parameter.WallParticleLifetimeMax,
		})
	}
}
