package system

import (
	"math"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/vmath"
)

// FinishBattle lays out the room-clear upgrades and books the room bonus
// No-op when the player is outside every room
func FinishBattle(m *engine.Model) {
	_, r, ok := room.Find(m.Rooms, m.Player.Position())
	if !ok {
		return
	}

	offset := vmath.V(0, parameter.UpgradeSpread)
	if size := r.Area.Size(); size.Y > 0 && size.X/size.Y > parameter.UpgradeAspectThreshold {
		offset = vmath.V(parameter.UpgradeSpread, 0)
	}

	m.Pacman1Ups = m.Pacman1Ups[:0]

	options := upgradeOptions(m.Player.ActiveWeapon)
	n := min(max(m.Config.UpgradesPerLevel, 0), len(options))
	// Partial Fisher-Yates: the first n entries become a uniform sample without replacement
	for i := 0; i < n; i++ {
		j := i + m.Rng.Intn(len(options)-i)
		options[i], options[j] = options[j], options[i]
	}

	center := r.Area.Center()
	for i, effect := range options[:n] {
		pos := center.Add(offset.Scale(float64(i) - float64(n-1)/2))
		m.Upgrades = append(m.Upgrades, component.Upgrade{
			Collider: physics.NewCollider(pos, physics.Circle(parameter.UpgradeRadius)),
			Effect:   effect,
		})
	}

	m.RoomsCleared++
	d := m.Config.Difficulty
	m.DifficultyRaw += d.RoomBonus * math.Pow(d.RoomExponent, float64(m.RoomsCleared))
	m.Score += int64(float64(m.Config.Score.RoomBonus) * m.ScoreMultiplier)
	m.Log.Debug("room cleared", "rooms_cleared", m.RoomsCleared, "upgrades", n)
}

// upgradeOptions lists stat boosts plus a switch to every weapon other than the active one
func upgradeOptions(active component.Weapon) []component.UpgradeEffect {
	options := []component.UpgradeEffect{
		{Kind: component.UpgradeWidth},
		{Kind: component.UpgradeRange},
		{Kind: component.UpgradeDamage},
		{Kind: component.UpgradeSpeed},
		{Kind: component.UpgradeDifficulty},
	}
	for _, w := range component.Weapons {
		if w != active {
			options = append(options, component.UpgradeEffect{Kind: component.UpgradeWeapon, Weapon: w})
		}
	}
	return options
}
