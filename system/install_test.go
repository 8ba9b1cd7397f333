package system

import (
	"testing"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/vmath"
)

func TestPipelineOrder(t *testing.T) {
	m := newTestModel(t)
	want := []string{
		"difficulty", "compress", "controls", "enemy_ai", "minion_ai", "collision",
		"passive_particles", "death", "camera", "spawn", "status",
	}

	got := m.Systems()
	if len(got) != len(want) {
		t.Fatalf("Expected %d systems, got %d", len(want), len(got))
	}
	for i, s := range got {
		if s.Name() != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], s.Name())
		}
		if i > 0 && got[i-1].Priority() > s.Priority() {
			t.Errorf("Expected %s to run after %s", s.Name(), got[i-1].Name())
		}
	}
}

func TestSteppedDifficulty(t *testing.T) {
	tests := []struct {
		raw, want float64
	}{
		{0, 0},
		{0.99, 0},
		{1, 1},
		{3.7, 3},
	}
	for _, tt := range tests {
		if got := SteppedDifficulty(tt.raw); got != tt.want {
			t.Errorf("SteppedDifficulty(%v): expected %v, got %v", tt.raw, tt.want, got)
		}
	}
}

func TestDifficultyFrozenInStartingRoom(t *testing.T) {
	m := newTestModel(t)
	raw := m.DifficultyRaw

	steps(m, engine.PlayerControls{}, 120)

	if m.DifficultyRaw != raw {
		t.Errorf("Expected raw difficulty to hold in the starting room, got %v", m.DifficultyRaw)
	}
}

func TestDifficultyRampsAfterExpansion(t *testing.T) {
	m := newTestModel(t)
	UnlockRoom(m, m.RootRoom, vmath.V(12, 0))
	raw := m.DifficultyRaw

	NewDifficultySystem().Update(m, 1)

	if got := m.DifficultyRaw - raw; !vmath.ApproxEqual(got, m.Config.Difficulty.TimeScaling) {
		t.Errorf("Expected raw difficulty +%v, got %v", m.Config.Difficulty.TimeScaling, got)
	}
}

func TestStatusPublishesCounters(t *testing.T) {
	m := newTestModel(t)
	addEnemy(t, m, "dummy", vmath.V(4, 4))

	steps(m, engine.PlayerControls{}, 10)

	if got := m.Status.Int(status.KeyTicks); got != 10 {
		t.Errorf("Expected 10 ticks, got %d", got)
	}
	if got := m.Status.Int(status.KeyEnemiesAlive); got != 1 {
		t.Errorf("Expected 1 enemy alive, got %d", got)
	}
}

func TestSessionsReplayWithSameSeed(t *testing.T) {
	run := func() *engine.Model {
		m := newTestModel(t)
		m.Player.Body.Collider.Position = vmath.V(9, 0)
		steps(m, drawAt(vmath.V(9, 0)), 1)
		steps(m, drawAt(vmath.V(13, 0)), 1)
		steps(m, engine.PlayerControls{}, 1)
		steps(m, engine.PlayerControls{MoveDir: vmath.V(1, 0)}, 180)
		return m
	}
	a, b := run(), run()

	if a.Rooms.Len() != b.Rooms.Len() {
		t.Fatalf("Expected equal room counts, got %d and %d", a.Rooms.Len(), b.Rooms.Len())
	}
	if a.Enemies.Len() != b.Enemies.Len() {
		t.Errorf("Expected equal enemy counts, got %d and %d", a.Enemies.Len(), b.Enemies.Len())
	}
	if a.Player.Position() != b.Player.Position() {
		t.Errorf("Expected identical player positions, got %v and %v", a.Player.Position(), b.Player.Position())
	}
	if a.Player.Health.Value() != b.Player.Health.Value() {
		t.Errorf("Expected identical player health")
	}
	if len(a.Particles) != len(b.Particles) {
		t.Errorf("Expected identical particle counts, got %d and %d", len(a.Particles), len(b.Particles))
	}
}

func TestResetRestoresStartingState(t *testing.T) {
	m := newTestModel(t)
	first := m.SessionID
	UnlockRoom(m, m.RootRoom, vmath.V(12, 0))
	FlushSpawns(m)
	m.Score = 500

	m.Reset()

	if m.Rooms.Len() != 1 || !m.InStartingRoom() {
		t.Errorf("Expected a lone starting room after reset, got %d rooms", m.Rooms.Len())
	}
	if m.Enemies.Len() != 0 || m.Score != 0 {
		t.Errorf("Expected empty session after reset")
	}
	if m.SessionID == first {
		t.Errorf("Expected a fresh session id")
	}
	if len(m.Systems()) != 11 {
		t.Errorf("Expected installed systems kept, got %d", len(m.Systems()))
	}
}
