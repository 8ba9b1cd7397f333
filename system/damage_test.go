package system

import (
	"testing"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

func upgradeAt(kind component.UpgradeKind, pos vmath.Vec2) component.Upgrade {
	return component.Upgrade{
		Collider: physics.NewCollider(pos, physics.Circle(0.5)),
		Effect:   component.UpgradeEffect{Kind: kind},
	}
}

func TestDamageAroundHitsEachEnemyOnce(t *testing.T) {
	m := newTestModel(t)
	hit := addEnemy(t, m, "dummy", vmath.V(2, 0.3))
	miss := addEnemy(t, m, "dummy", vmath.V(2, 5))

	// A doubled-back chain passes the enemy twice
	chain := []vmath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 0.1}}
	DamageAround(m, chain, 0.5, 7)

	if want := hit.Health.Max() - 7; !vmath.ApproxEqual(hit.Health.Value(), want) {
		t.Errorf("Expected flat damage once, health %v, got %v", want, hit.Health.Value())
	}
	if !miss.Health.IsMax() {
		t.Errorf("Expected far enemy untouched")
	}
	if hit.LastHit != m.GameTime {
		t.Errorf("Expected last hit stamped")
	}
}

func TestDamageAroundSkipsInvincible(t *testing.T) {
	m := newTestModel(t)
	e := addEnemy(t, m, "dummy", vmath.V(2, 0))
	e.Invincibility.SetRatio(1)

	DamageAround(m, []vmath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, 0.5, 7)

	if !e.Health.IsMax() {
		t.Errorf("Expected invincible enemy untouched")
	}
}

func TestDamageAroundDestroysObjects(t *testing.T) {
	m := newTestModel(t)
	m.Objects = append(m.Objects, component.NewBarrel(vmath.V(2, 0.5), 1.33, component.ExplosiveBarrel{}))

	DamageAround(m, []vmath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, 0.5, 7)

	if !m.Objects[0].Dead {
		t.Errorf("Expected barrel in reach destroyed")
	}
}

func TestCollectClosestUpgradeOnly(t *testing.T) {
	m := newTestModel(t)
	widthBefore := m.Player.Stats.Whip.Width
	damageBefore := m.Player.Stats.Whip.Damage
	m.Upgrades = append(m.Upgrades,
		upgradeAt(component.UpgradeDamage, vmath.V(2, 0.4)),
		upgradeAt(component.UpgradeWidth, vmath.V(3, 0.1)),
		upgradeAt(component.UpgradeSpeed, vmath.V(0, 6)),
	)

	DamageAround(m, []vmath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, 0.5, 7)

	if len(m.Upgrades) != 0 {
		t.Errorf("Expected every offered upgrade cleared, %d left", len(m.Upgrades))
	}
	if got := m.Player.Stats.Whip.Width - widthBefore; !vmath.ApproxEqual(got, 0.5) {
		t.Errorf("Expected width +0.5 from the closest upgrade, got %v", got)
	}
	if m.Player.Stats.Whip.Damage != damageBefore {
		t.Errorf("Expected only one upgrade applied")
	}
}

func TestCollectWeaponUpgradeSwitches(t *testing.T) {
	m := newTestModel(t)
	CollectUpgrade(m, component.Upgrade{Effect: component.UpgradeEffect{Kind: component.UpgradeWeapon, Weapon: component.WeaponBow}})
	if m.Player.ActiveWeapon != component.WeaponBow {
		t.Errorf("Expected bow active, got %v", m.Player.ActiveWeapon)
	}
}

func TestCollectDifficultyUpgrade(t *testing.T) {
	m := newTestModel(t)
	raw, mult := m.DifficultyRaw, m.ScoreMultiplier
	CollectUpgrade(m, upgradeAt(component.UpgradeDifficulty, vmath.Zero))

	if got := m.DifficultyRaw - raw; !vmath.ApproxEqual(got, m.Config.Difficulty.UpgradeAmount) {
		t.Errorf("Expected raw difficulty +%v, got %v", m.Config.Difficulty.UpgradeAmount, got)
	}
	if got := m.ScoreMultiplier - mult; !vmath.ApproxEqual(got, m.Config.Score.UpgradeMultiplier) {
		t.Errorf("Expected multiplier +%v, got %v", m.Config.Score.UpgradeMultiplier, got)
	}
}

func TestFishingRodFlingsAlongLastStroke(t *testing.T) {
	m := newTestModel(t)
	m.Player.ActiveWeapon = component.WeaponFishingRod
	speed := m.Player.Stats.Fishing.Speed
	e := addEnemy(t, m, "dummy", vmath.V(3, 0))
	above := addEnemy(t, m, "dummy", vmath.V(-3, 2))

	DamageAround(m, []vmath.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}}, 0.5, 1)

	if e.Body.Velocity.Sub(vmath.V(speed, 0)).Len() > vmath.Epsilon {
		t.Errorf("Expected enemy flung along +x at %v, got %v", speed, e.Body.Velocity)
	}
	if !above.Body.Velocity.IsZero() {
		t.Errorf("Expected enemy out of reach untouched, got %v", above.Body.Velocity)
	}

	// Only the final segment sets the direction
	m.Enemies.Clear()
	f := addEnemy(t, m, "dummy", vmath.V(2, 1))
	DamageAround(m, []vmath.Vec2{{X: -2, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 3}}, 0.5, 1)
	if f.Body.Velocity.Sub(vmath.V(0, speed)).Len() > vmath.Epsilon {
		t.Errorf("Expected enemy flung along +y at %v, got %v", speed, f.Body.Velocity)
	}
}
