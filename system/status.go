package system

import (
	"sync/atomic"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/status"
)

// StatusSystem publishes per-tick gauges for the HUD
type StatusSystem struct {
	statTicks  *atomic.Int64
	statAlive  *atomic.Int64
	difficulty *status.AtomicFloat
	weapon     *status.AtomicString
}

func NewStatusSystem(reg *status.Registry) *StatusSystem {
	return &StatusSystem{
		statTicks:  reg.Ints.Get(status.KeyTicks),
		statAlive:  reg.Ints.Get(status.KeyEnemiesAlive),
		difficulty: reg.Floats.Get(status.KeyDifficulty),
		weapon:     reg.Strings.Get(status.KeyWeapon),
	}
}

func (s *StatusSystem) Name() string {
	return "status"
}

func (s *StatusSystem) Priority() int {
	return parameter.PriorityStatus
}

func (s *StatusSystem) Update(m *engine.Model, dt float64) {
	s.statTicks.Add(1)
	s.statAlive.Store(int64(m.Enemies.Len()))
	s.difficulty.Set(m.Difficulty)
	s.weapon.Store(m.Player.ActiveWeapon.String())
}
