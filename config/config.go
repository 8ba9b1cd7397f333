// Package config holds the read-only game configuration tree decoded from YAML
package config

import (
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// Config is the root configuration document
type Config struct {
	StartingArea     vmath.Vec2             `yaml:"starting_area"`
	UpgradesPerLevel int                    `yaml:"upgrades_per_level"`
	Difficulty       DifficultyConfig       `yaml:"difficulty"`
	Score            ScoreConfig            `yaml:"score"`
	Player           PlayerConfig           `yaml:"player"`
	Enemies          map[string]EnemyConfig `yaml:"enemies"`
	Bosses           []BossConfig           `yaml:"bosses"`
}

type ScoreConfig struct {
	RoomBonus         int64   `yaml:"room_bonus"`
	UpgradeMultiplier float64 `yaml:"upgrade_multiplier"`
}

type DifficultyConfig struct {
	Initial            float64 `yaml:"initial"`
	UpgradeAmount      float64 `yaml:"upgrade_amount"`
	TimeScaling        float64 `yaml:"time_scaling"`
	RoomBonus          float64 `yaml:"room_bonus"`
	RoomExponent       float64 `yaml:"room_exponent"`
	EnemyHealthScaling float64 `yaml:"enemy_health_scaling"`
	RoomSizeScaling    float64 `yaml:"room_size_scaling"`
	RoomSizeMax        float64 `yaml:"room_size_max"`
}

type PlayerConfig struct {
	Health                float64       `yaml:"health"`
	Speed                 float64       `yaml:"speed"`
	Acceleration          float64       `yaml:"acceleration"`
	HurtInvincibilityTime float64       `yaml:"hurt_invincibility_time"`
	Whip                  DrawConfig    `yaml:"whip"`
	Dash                  DrawConfig    `yaml:"dash"`
	Bow                   DrawConfig    `yaml:"bow"`
	Fishing               DrawConfig    `yaml:"fishing"`
	Shape                 physics.Shape `yaml:"shape"`
	Shield                physics.Shape `yaml:"shield"`
}

// DrawConfig is the tuning of one gesture weapon
// Cooldown is the full cooldown duration in seconds; weapons start ready
type DrawConfig struct {
	Cooldown          float64 `yaml:"cooldown"`
	MaxDistance       float64 `yaml:"max_distance"`
	Speed             float64 `yaml:"speed"`
	Width             float64 `yaml:"width"`
	Damage            float64 `yaml:"damage"`
	InvincibilityTime float64 `yaml:"invincibility_time"`
}

// EnemyConfig is an enemy archetype; a nil Cost excludes it from the spawn budget
type EnemyConfig struct {
	Cost         *float64        `yaml:"cost,omitempty"`
	Score        int64           `yaml:"score,omitempty"`
	Grouping     *GroupingConfig `yaml:"grouping,omitempty"`
	Mass         float64         `yaml:"mass,omitempty"`
	Health       float64         `yaml:"health"`
	Damage       float64         `yaml:"damage"`
	Speed        float64         `yaml:"speed"`
	Acceleration float64         `yaml:"acceleration"`
	Shape        physics.Shape   `yaml:"shape"`
	AI           AIConfig        `yaml:"ai"`
}

type GroupingConfig struct {
	Cost   float64 `yaml:"cost"`
	Chance float64 `yaml:"chance"`
}

// BossConfig replaces the room generated after Room rooms have been cleared
type BossConfig struct {
	Room     int        `yaml:"room"`
	RoomSize vmath.Vec2 `yaml:"room_size"`
	Enemies  []string   `yaml:"enemies"`
}

// BossFor returns the boss definition triggered by the next room index
func (c *Config) BossFor(roomsCleared int) (*BossConfig, bool) {
	for i := range c.Bosses {
		if c.Bosses[i].Room == roomsCleared+1 {
			return &c.Bosses[i], true
		}
	}
	return nil, false
}

// WithHealth returns a copy of the archetype with health replaced
func (e EnemyConfig) WithHealth(health float64) EnemyConfig {
	e.Health = health
	return e
}

// Budget returns the spawn cost and whether the archetype participates in budget spawning
func (e *EnemyConfig) Budget() (float64, bool) {
	if e.Cost == nil {
		return 0, false
	}
	return *e.Cost, true
}
