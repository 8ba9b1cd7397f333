package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/open-island/asset"
	"github.com/lixenwraith/open-island/physics"
)

// patched returns the embedded config with one textual substitution
func patched(t *testing.T, old, new string) []byte {
	t.Helper()
	src := string(asset.DefaultGameConfig)
	if !strings.Contains(src, old) {
		t.Fatalf("embedded config lacks %q", old)
	}
	return []byte(strings.Replace(src, old, new, 1))
}

func TestDefaultConfigLoads(t *testing.T) {
	cfg := Default()

	if cfg.StartingArea.X != 20 || cfg.StartingArea.Y != 16 {
		t.Errorf("Expected starting area 20x16, got %v", cfg.StartingArea)
	}
	if cfg.UpgradesPerLevel != 3 {
		t.Errorf("Expected 3 upgrades per level, got %d", cfg.UpgradesPerLevel)
	}
	for _, name := range []string{"circle", "tank", "shooter", "healer", "shielder", "pacman", "dummy", "helicopter"} {
		if _, ok := cfg.Enemies[name]; !ok {
			t.Errorf("Expected archetype %s", name)
		}
	}

	dummy := cfg.Enemies["dummy"]
	if _, ok := dummy.Budget(); ok {
		t.Error("Expected dummy excluded from the spawn budget")
	}
	if shooter := cfg.Enemies["shooter"]; shooter.AI.Kind != AIShooter || shooter.AI.Bullet == nil {
		t.Errorf("Expected shooter with a bullet archetype, got %+v", shooter.AI)
	}
	if cfg.Player.Shape.Kind != physics.ShapeCircle {
		t.Errorf("Expected circular player, got %v", cfg.Player.Shape.Kind)
	}
}

func TestBossFor(t *testing.T) {
	cfg := Default()
	boss, ok := cfg.BossFor(4)
	if !ok {
		t.Fatal("Expected a boss after four cleared rooms")
	}
	if len(boss.Enemies) == 0 || boss.Enemies[0] != "helicopter" {
		t.Errorf("Expected helicopter roster, got %v", boss.Enemies)
	}
	if _, ok := cfg.BossFor(0); ok {
		t.Error("Expected no boss for the first room")
	}
}

func TestUnknownFieldRejected(t *testing.T) {
	_, err := Parse(patched(t, "upgrades_per_level: 3", "upgrades_per_level: 3\nupgrade_per_level: 4"))
	if err == nil {
		t.Fatal("Expected unknown key to fail decoding")
	}
}

func TestZeroCostRejected(t *testing.T) {
	_, err := Parse(patched(t, "cost: 1.0", "cost: 0.0"))
	if !errors.Is(err, ErrZeroCost) {
		t.Errorf("Expected ErrZeroCost, got %v", err)
	}
}

func TestShooterChargeRequired(t *testing.T) {
	_, err := Parse(patched(t, "charge: 2.0", "charge: 0.0"))
	if !errors.Is(err, ErrNonPositive) {
		t.Fatalf("Expected ErrNonPositive, got %v", err)
	}
	if !strings.Contains(err.Error(), "enemies.shooter.ai.charge") {
		t.Errorf("Expected the failing path in the error, got %v", err)
	}
}

func TestDegenerateShapeDowngraded(t *testing.T) {
	cfg, err := Parse(patched(t, "shape: { kind: circle, radius: 0.5 }", "shape: { kind: rectangle, width: 0, height: 1 }"))
	if err != nil {
		t.Fatalf("Expected degenerate shape to load, got %v", err)
	}
	if cfg.Player.Shape != physics.Circle(0) {
		t.Errorf("Expected zero circle, got %+v", cfg.Player.Shape)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, asset.DefaultGameConfig, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Expected file to load, got %v", err)
	}
	if len(cfg.Enemies) != len(Default().Enemies) {
		t.Errorf("Expected file and embedded configs to match")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected missing file to fail")
	}
}
