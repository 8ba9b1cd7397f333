package config

import (
	"fmt"
	"strings"
)

// AIKind discriminates the enemy behavior union
type AIKind uint8

const (
	AIIdle AIKind = iota
	AIBullet
	AICrawler
	AIShooter
	AIHealer
	AIShielder
	AIPacman
	AIHelicopter
)

var aiKindNames = [...]string{
	AIIdle:       "idle",
	AIBullet:     "bullet",
	AICrawler:    "crawler",
	AIShooter:    "shooter",
	AIHealer:     "healer",
	AIShielder:   "shielder",
	AIPacman:     "pacman",
	AIHelicopter: "helicopter",
}

func (k AIKind) String() string {
	if int(k) < len(aiKindNames) {
		return aiKindNames[k]
	}
	return fmt.Sprintf("AIKind(%d)", uint8(k))
}

func (k *AIKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range aiKindNames {
		if n == name {
			*k = AIKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown ai kind %q", name)
}

func (k AIKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// AIConfig is the flattened union of every behavior's parameters; Kind selects which fields apply
type AIConfig struct {
	Kind AIKind `yaml:"kind"`

	// Shooter, Shielder
	PreferredDistance float64 `yaml:"preferred_distance,omitempty"`

	// Shooter: seconds between shots and the projectile archetype
	Charge float64      `yaml:"charge,omitempty"`
	Bullet *EnemyConfig `yaml:"bullet,omitempty"`

	// Healer
	Range     float64 `yaml:"range,omitempty"`
	HealRatio float64 `yaml:"heal_ratio,omitempty"`
	Cooldown  float64 `yaml:"cooldown,omitempty"`

	// Pacman
	SpeedPower float64 `yaml:"speed_power,omitempty"`

	// Helicopter: minigun projectile and the squad dropped in minion phase, spawned last to first
	MinigunBullet *EnemyConfig `yaml:"minigun_bullet,omitempty"`
	Squad         []string     `yaml:"squad,omitempty"`
}
