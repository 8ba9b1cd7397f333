package system

import (
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
)

// MinionAISystem flies player projectiles and expires them
type MinionAISystem struct{}

func NewMinionAISystem() *MinionAISystem {
	return &MinionAISystem{}
}

func (s *MinionAISystem) Name() string {
	return "minion_ai"
}

func (s *MinionAISystem) Priority() int {
	return parameter.PriorityMinionAI
}

func (s *MinionAISystem) Update(m *engine.Model, dt float64) {
	for i := range m.Minions {
		mn := &m.Minions[i]
		mn.Body.MoveRotation()
		mn.Body.Integrate(dt)
		mn.Lifetime.Change(-dt)
		if mn.Lifetime.IsMin() {
			mn.Kill()
		}
	}
}
