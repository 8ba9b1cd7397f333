package component

import (
	"fmt"

	"github.com/lixenwraith/open-island/physics"
)

type UpgradeKind uint8

const (
	UpgradeWidth UpgradeKind = iota
	UpgradeRange
	UpgradeDamage
	UpgradeSpeed
	UpgradeDifficulty
	UpgradeWeapon
)

var upgradeKindNames = [...]string{"width", "range", "damage", "speed", "difficulty", "weapon"}

func (k UpgradeKind) String() string {
	if int(k) < len(upgradeKindNames) {
		return upgradeKindNames[k]
	}
	return fmt.Sprintf("UpgradeKind(%d)", uint8(k))
}

// UpgradeEffect is a stat boost, or a weapon switch when Kind is UpgradeWeapon
type UpgradeEffect struct {
	Kind   UpgradeKind
	Weapon Weapon
}

func (e UpgradeEffect) String() string {
	if e.Kind == UpgradeWeapon {
		return e.Weapon.String()
	}
	return e.Kind.String()
}

type Upgrade struct {
	Collider physics.Collider
	Effect   UpgradeEffect
}
