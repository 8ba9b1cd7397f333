package system

import (
	"sync/atomic"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/status"
)

// SpawnSystem moves staged enemies into the live set at the end of the tick
type SpawnSystem struct {
	statSpawned *atomic.Int64
}

func NewSpawnSystem(reg *status.Registry) *SpawnSystem {
	return &SpawnSystem{
		statSpawned: reg.Ints.Get(status.KeyEnemiesSpawned),
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Update(m *engine.Model, dt float64) {
	s.statSpawned.Add(int64(FlushSpawns(m)))
}

// FlushSpawns inserts every staged enemy, empties the queue and returns how many joined
func FlushSpawns(m *engine.Model) int {
	n := len(m.SpawnQueue)
	for _, e := range m.SpawnQueue {
		m.Enemies.Insert(e)
	}
	clear(m.SpawnQueue)
	m.SpawnQueue = m.SpawnQueue[:0]
	return n
}
