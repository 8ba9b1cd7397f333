package component

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
)

// Weapon selects how a finished gesture resolves
type Weapon uint8

const (
	WeaponWhip Weapon = iota
	WeaponDash
	WeaponBow
	WeaponFishingRod
)

// Weapons lists every weapon in declaration order
var Weapons = [...]Weapon{WeaponWhip, WeaponDash, WeaponBow, WeaponFishingRod}

var weaponNames = [...]string{"whip", "dash", "bow", "fishing_rod"}

func (w Weapon) String() string {
	if int(w) < len(weaponNames) {
		return weaponNames[w]
	}
	return fmt.Sprintf("Weapon(%d)", uint8(w))
}

func (w *Weapon) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range weaponNames {
		if n == name {
			*w = Weapon(i)
			return nil
		}
	}
	return fmt.Errorf("unknown weapon %q", name)
}

// DrawStats is the live, upgradable tuning of one weapon
type DrawStats struct {
	Cooldown          core.Bounded[float64]
	MaxDistance       float64
	Speed             float64
	Width             float64
	Damage            float64
	InvincibilityTime float64
}

func NewDrawStats(cfg config.DrawConfig) DrawStats {
	return DrawStats{
		Cooldown:          core.NewBoundedZero(cfg.Cooldown),
		MaxDistance:       cfg.MaxDistance,
		Speed:             cfg.Speed,
		Width:             cfg.Width,
		Damage:            cfg.Damage,
		InvincibilityTime: cfg.InvincibilityTime,
	}
}
