package system

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
)

// CompressSystem shrinks cleared rooms and squashes collapsed ones
type CompressSystem struct{}

func NewCompressSystem() *CompressSystem {
	return &CompressSystem{}
}

func (s *CompressSystem) Name() string {
	return "compress"
}

func (s *CompressSystem) Priority() int {
	return parameter.PriorityCompress
}

func (s *CompressSystem) Update(m *engine.Model, dt float64) {
	CompressRooms(m, dt)
}

// CompressRooms moves the far walls of orphaned rooms inward
// Paused while any enemy is alive or staged, and while the lone room is a boss room
func CompressRooms(m *engine.Model, dt float64) {
	if !m.CanExpand() {
		return
	}
	if m.Rooms.Len() == 1 {
		if _, boss := m.Config.BossFor(m.RoomsCleared); boss {
			return
		}
	}

	shift := room.CompressionSpeed(m.Rooms.Len()) * dt
	squashed := room.Compress(m.Rooms, shift)
	if len(squashed) == 0 {
		m.RefreshWalls()
		return
	}
	SquashRooms(m, squashed)
}

// SquashRooms removes the rooms and kills anything caught in them or outside every room
func SquashRooms(m *engine.Model, ids []room.Index) {
	if len(ids) == 0 {
		return
	}

	if room.ShouldSquash(m.Rooms, ids, m.Player.Position()) {
		m.Player.Health.SetRatio(0)
	}
	m.Enemies.Each(func(e *component.Enemy) {
		if room.ShouldSquash(m.Rooms, ids, e.Position()) {
			e.Kill()
		}
	})

	for _, idx := range ids {
		m.Rooms.Remove(idx)
	}
	m.Log.Debug("squashed rooms", "rooms", ids)
	m.Status.Ints.Get(status.KeyRoomsSquashed).Add(int64(len(ids)))
	m.RefreshWalls()
}
