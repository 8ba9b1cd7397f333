package component

import (
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/vmath"
)

// PlayerStats is the upgradable part of the player
type PlayerStats struct {
	Speed                 float64
	Acceleration          float64
	HurtInvincibilityTime float64
	Whip                  DrawStats
	Dash                  DrawStats
	Bow                   DrawStats
	Fishing               DrawStats
	Shape                 physics.Shape
	Shield                physics.Shape
}

type Player struct {
	Health        core.Bounded[float64]
	LastHit       float64
	Body          physics.Body
	ActiveWeapon  Weapon
	Stats         PlayerStats
	Invincibility core.Bounded[float64]
	Drawing       *Drawing
}

func NewPlayer(cfg config.PlayerConfig, position vmath.Vec2) Player {
	stats := PlayerStats{
		Speed:                 cfg.Speed,
		Acceleration:          cfg.Acceleration,
		HurtInvincibilityTime: cfg.HurtInvincibilityTime,
		Whip:                  NewDrawStats(cfg.Whip),
		Dash:                  NewDrawStats(cfg.Dash),
		Bow:                   NewDrawStats(cfg.Bow),
		Fishing:               NewDrawStats(cfg.Fishing),
		Shape:                 cfg.Shape,
		Shield:                cfg.Shield,
	}

	// Ceiling covers every window the player can be granted
	ceiling := cfg.HurtInvincibilityTime
	for _, w := range Weapons {
		ceiling = max(ceiling, stats.Weapon(w).InvincibilityTime)
	}

	return Player{
		Health:        core.NewBoundedMax(cfg.Health),
		LastHit:       -1,
		Body:          physics.NewBody(position, cfg.Shape, parameter.DefaultMass),
		ActiveWeapon:  WeaponWhip,
		Stats:         stats,
		Invincibility: core.NewBoundedZero(ceiling),
	}
}

// Weapon returns the stats of the given weapon
func (s *PlayerStats) Weapon(w Weapon) *DrawStats {
	switch w {
	case WeaponDash:
		return &s.Dash
	case WeaponBow:
		return &s.Bow
	case WeaponFishingRod:
		return &s.Fishing
	}
	return &s.Whip
}

// Active returns the stats of the active weapon
func (p *Player) Active() *DrawStats {
	return p.Stats.Weapon(p.ActiveWeapon)
}

func (p *Player) Position() vmath.Vec2 {
	return p.Body.Collider.Position
}

func (p *Player) Alive() bool {
	return p.Health.IsAboveMin()
}

func (p *Player) Invincible() bool {
	return p.Invincibility.IsAboveMin()
}
