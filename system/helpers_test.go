package system

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

const dt = parameter.TickSeconds

// newTestModel builds a full pipeline over the default config with a fixed seed
func newTestModel(t *testing.T, opts ...engine.Option) *engine.Model {
	t.Helper()
	opts = append([]engine.Option{engine.WithSeed(42)}, opts...)
	return NewGame(config.Default(), opts...)
}

// newLoggedModel is newTestModel with log output captured
func newLoggedModel(t *testing.T) (*engine.Model, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return newTestModel(t, engine.WithLogger(logger)), &buf
}

// addEnemy inserts a live enemy of the named archetype directly into the store
func addEnemy(t *testing.T, m *engine.Model, name string, pos vmath.Vec2) *component.Enemy {
	t.Helper()
	cfg, ok := m.Config.Enemies[name]
	if !ok {
		t.Fatalf("archetype %q missing from default config", name)
	}
	e := component.NewEnemy(m.NextID(), cfg, pos)
	m.Enemies.Insert(e)
	return e
}

func steps(m *engine.Model, input engine.PlayerControls, n int) {
	for i := 0; i < n; i++ {
		m.Update(input, dt)
	}
}

func drawAt(p vmath.Vec2) engine.PlayerControls {
	return engine.PlayerControls{Drawing: &p}
}

func countSound(sounds []event.Sound, want event.Sound) int {
	n := 0
	for _, s := range sounds {
		if s == want {
			n++
		}
	}
	return n
}

func near(a, b vmath.Vec2, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
