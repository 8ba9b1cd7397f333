package component

import (
	"testing"

	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/vmath"
)

func TestDrawingAppendCapsLength(t *testing.T) {
	d := NewDrawing(vmath.Zero, 0)

	if !d.Append(DrawPoint{Position: vmath.V(3, 0), Time: 0.1}, 5) {
		t.Fatal("Expected first append to fit")
	}
	if !d.Append(DrawPoint{Position: vmath.V(3, 10), Time: 0.2}, 5) {
		t.Fatal("Expected second append to be shortened, not rejected")
	}
	if !vmath.ApproxEqual(d.Length(), 5) {
		t.Errorf("Expected raw length capped at 5, got %v", d.Length())
	}
	if got := d.Raw[len(d.Raw)-1].Position; got.Sub(vmath.V(3, 2)).Len() > vmath.Epsilon {
		t.Errorf("Expected last point shortened to (3,2), got %v", got)
	}
	if d.Append(DrawPoint{Position: vmath.V(0, 0)}, 5) {
		t.Error("Expected append past the cap to be rejected")
	}
}

func TestDrawingSmoothEndpoints(t *testing.T) {
	d := NewDrawing(vmath.V(1, 1), 0)
	d.Append(DrawPoint{Position: vmath.V(2, 1)}, 100)
	d.Append(DrawPoint{Position: vmath.V(3, 2)}, 100)

	if d.Smoothed[0] != vmath.V(1, 1) {
		t.Errorf("Expected smoothed start at the first point, got %v", d.Smoothed[0])
	}
	last, dir, ok := d.Last()
	if !ok {
		t.Fatal("Expected a resolvable gesture")
	}
	if last != vmath.V(3, 2) {
		t.Errorf("Expected smoothed end at the last point, got %v", last)
	}
	if !vmath.ApproxEqual(dir.Len(), 1) {
		t.Errorf("Expected unit final direction, got %v", dir)
	}
}

func TestDrawingDedupsNearPoints(t *testing.T) {
	d := NewDrawing(vmath.Zero, 0)
	d.Append(DrawPoint{Position: vmath.V(0.01, 0)}, 10)

	if _, _, ok := d.Last(); ok {
		t.Errorf("Expected a near-duplicate point to collapse, got %d smoothed points", len(d.Smoothed))
	}
}

func TestCircleDistributionCount(t *testing.T) {
	rng := vmath.NewFastRand(3)
	points := CircleDistribution{Center: vmath.V(2, 2), Radius: 1}.Sample(rng, 10)
	// ceil(10 * pi)
	if len(points) != 32 {
		t.Errorf("Expected 32 points, got %d", len(points))
	}
	for _, p := range points {
		if vmath.Distance(p, vmath.V(2, 2)) > 1 {
			t.Fatalf("Expected point inside the disc, got %v", p)
		}
	}
}

func TestDrawingDistributionCarriesFraction(t *testing.T) {
	rng := vmath.NewFastRand(3)
	// Ten segments each worth 0.5 particles
	chain := make([]vmath.Vec2, 11)
	for i := range chain {
		chain[i] = vmath.V(float64(i), 0)
	}
	points := DrawingDistribution{Points: chain, Width: 0.5}.Sample(rng, 1)
	if len(points) != 5 {
		t.Errorf("Expected fractional amounts to accumulate to 5, got %d", len(points))
	}
}

func TestSpawnParticlesLifetime(t *testing.T) {
	rng := vmath.NewFastRand(5)
	req := CircleBurst(ParticleDamage, vmath.Zero, 0.5)
	particles := req.Spawn(rng)
	if len(particles) == 0 {
		t.Fatal("Expected a non-empty burst")
	}
	for _, p := range particles {
		if !p.Lifetime.IsMax() {
			t.Errorf("Expected fresh particles at full lifetime")
		}
		if p.Lifetime.Max() < req.LifetimeMin || p.Lifetime.Max() >= req.LifetimeMax {
			t.Errorf("Expected lifetime in [%v, %v), got %v", req.LifetimeMin, req.LifetimeMax, p.Lifetime.Max())
		}
	}

	empty := SpawnParticles{}
	if empty.Spawn(rng) != nil {
		t.Error("Expected no particles without a distribution")
	}
}

func TestPlayerInvincibilityCeiling(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg.Player, vmath.Zero)

	p.Invincibility.Set(1e9)
	want := cfg.Player.HurtInvincibilityTime
	for _, w := range Weapons {
		want = max(want, p.Stats.Weapon(w).InvincibilityTime)
	}
	if p.Invincibility.Value() != want {
		t.Errorf("Expected ceiling %v, got %v", want, p.Invincibility.Value())
	}
	if p.ActiveWeapon != WeaponWhip || p.Active() != &p.Stats.Whip {
		t.Error("Expected the whip active at start")
	}
}

func TestNewEnemyBuildsVariant(t *testing.T) {
	cfg := config.Default()
	tests := map[string]config.AIKind{
		"circle":     config.AICrawler,
		"shooter":    config.AIShooter,
		"healer":     config.AIHealer,
		"shielder":   config.AIShielder,
		"pacman":     config.AIPacman,
		"helicopter": config.AIHelicopter,
		"dummy":      config.AIIdle,
	}
	for name, kind := range tests {
		e := NewEnemy(1, cfg.Enemies[name], vmath.Zero)
		if e.AI.Kind() != kind {
			t.Errorf("%s: expected %v, got %v", name, kind, e.AI.Kind())
		}
		if !e.Health.IsMax() || !e.Vulnerable() {
			t.Errorf("%s: expected full health and vulnerable at spawn", name)
		}
	}

	bullet := NewEnemy(2, *cfg.Enemies["shooter"].AI.Bullet, vmath.Zero)
	if !bullet.IsBullet() {
		t.Error("Expected bullet archetype to build a bullet")
	}
}

func TestWeaponText(t *testing.T) {
	var w Weapon
	if err := w.UnmarshalText([]byte("Fishing_Rod")); err != nil || w != WeaponFishingRod {
		t.Errorf("Expected fishing rod, got %v (%v)", w, err)
	}
	if err := w.UnmarshalText([]byte("sword")); err == nil {
		t.Error("Expected unknown weapon to fail")
	}
}
