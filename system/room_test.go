package system

import (
	"testing"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/vmath"
)

func TestUnlockRoomBuildsAdjacentRoom(t *testing.T) {
	m := newTestModel(t)

	UnlockRoom(m, m.RootRoom, vmath.V(12, 0))

	if got := m.Rooms.Len(); got != 2 {
		t.Fatalf("Expected 2 rooms, got %d", got)
	}
	root := m.Rooms.Get(m.RootRoom)
	var child *room.Room
	m.Rooms.Each(func(idx room.Index, r *room.Room) bool {
		if idx != m.RootRoom {
			child = r
		}
		return true
	})

	if !vmath.ApproxEqual(child.Area.Min.X, root.Area.Max.X) {
		t.Errorf("Expected child to start at the root right wall %v, got %v", root.Area.Max.X, child.Area.Min.X)
	}
	if child.UnlockedAfter == nil || child.UnlockedAfter.Parent != m.RootRoom || child.UnlockedAfter.Side != core.Left {
		t.Errorf("Expected child linked to root through its left wall, got %+v", child.UnlockedAfter)
	}
	if !vmath.ApproxEqual(child.Area.Center().Y, root.Area.Center().Y) {
		t.Errorf("Expected child centered on the shared wall, got center %v", child.Area.Center())
	}
	if got := countSound(m.Events.Drain(), event.SoundExpand); got != 1 {
		t.Errorf("Expected one expand cue, got %d", got)
	}
	if len(m.SpawnQueue) == 0 {
		t.Errorf("Expected enemies staged for the new room")
	}
	if m.Enemies.Len() != 0 {
		t.Errorf("Expected no live enemies before the spawn flush, got %d", m.Enemies.Len())
	}
	if got := m.Status.Int(status.KeyRoomsUnlocked); got != 1 {
		t.Errorf("Expected unlock counter 1, got %d", got)
	}
}

func TestUnlockRoomIgnoresInsidePoint(t *testing.T) {
	m := newTestModel(t)
	UnlockRoom(m, m.RootRoom, vmath.V(1, 1))
	if got := m.Rooms.Len(); got != 1 {
		t.Errorf("Expected no new room for an inside point, got %d rooms", got)
	}
}

func TestUnlockRoomIgnoresStaleIndex(t *testing.T) {
	m := newTestModel(t)
	stale := m.RootRoom
	stale.Gen++
	UnlockRoom(m, stale, vmath.V(12, 0))
	if got := m.Rooms.Len(); got != 1 {
		t.Errorf("Expected stale index to be ignored, got %d rooms", got)
	}
}

func TestSpawnedEnemiesClearOfPlayer(t *testing.T) {
	m := newTestModel(t)
	m.Difficulty = 12

	UnlockRoom(m, m.RootRoom, vmath.V(0, 20))

	for _, e := range m.SpawnQueue {
		if !room.Inside(m.Rooms, e.Position()) {
			t.Errorf("Enemy %d spawned outside every room at %v", e.ID, e.Position())
		}
		if vmath.Distance(e.Position(), m.Player.Position()) <= 5 {
			t.Errorf("Enemy %d spawned within 5 of the player at %v", e.ID, e.Position())
		}
	}
}

func TestBossRoomUsesRoster(t *testing.T) {
	m := newTestModel(t)
	m.RoomsCleared = 4

	UnlockRoom(m, m.RootRoom, vmath.V(-12, 0))

	if len(m.SpawnQueue) != 1 {
		t.Fatalf("Expected exactly the boss roster, got %d staged", len(m.SpawnQueue))
	}
	boss := m.SpawnQueue[0]
	if !boss.IsBoss {
		t.Errorf("Expected boss flag on roster enemy")
	}
	if _, ok := boss.AI.(*component.HelicopterAI); !ok {
		t.Errorf("Expected helicopter boss, got %T", boss.AI)
	}
	if len(m.Objects) != 0 {
		t.Errorf("Expected no hazards in a boss room, got %d", len(m.Objects))
	}
}

func TestGroupSpawnLinksMembers(t *testing.T) {
	m := newTestModel(t)
	spawnGroup(m, m.Config.Enemies["circle"], vmath.V(0, 5))

	if len(m.SpawnQueue) != 6 {
		t.Fatalf("Expected hexagon of 6, got %d", len(m.SpawnQueue))
	}
	if m.SpawnQueue[0].Attachment != nil {
		t.Errorf("Expected the first member to be unattached")
	}
	for i := 1; i < len(m.SpawnQueue); i++ {
		e, prev := m.SpawnQueue[i], m.SpawnQueue[i-1]
		if e.Attachment == nil || e.Attachment.Partner != prev.ID {
			t.Fatalf("Expected member %d attached to member %d", i, i-1)
		}
		if !near(e.Attachment.Offset, e.Position().Sub(prev.Position()), 1e-9) {
			t.Errorf("Expected member %d offset to match spawn layout", i)
		}
	}

	m.SpawnQueue = m.SpawnQueue[:0]
	spawnGroup(m, m.Config.Enemies["tank"], vmath.V(0, 5))
	if len(m.SpawnQueue) != 8 {
		t.Errorf("Expected 3x3 ring of 8, got %d", len(m.SpawnQueue))
	}
}
