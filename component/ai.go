package component

import (
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// AI is the per-enemy behavior state; each variant owns its mutable fields
type AI interface {
	Kind() config.AIKind
}

type IdleAI struct{}

type BulletAI struct{}

type CrawlerAI struct{}

type ShooterAI struct {
	PreferredDistance float64
	Charge            core.Bounded[float64]
	Bullet            config.EnemyConfig
}

type HealerAI struct {
	Range     float64
	HealRatio float64
	Cooldown  core.Bounded[float64]
}

// ShielderAI remembers its protected ally by ID; a miss means pick again
type ShielderAI struct {
	PreferredDistance float64
	Target            *core.ID
}

type PacmanState uint8

const (
	PacmanNormal PacmanState = iota
	PacmanPower
)

type PacmanAI struct {
	State      PacmanState
	SpeedPower float64
	// Normal state
	Spawn1Up core.Bounded[float64]
	Target   *vmath.Vec2
	// Power state
	Timer core.Bounded[float64]
}

// EnterPower switches to the chase state
func (p *PacmanAI) EnterPower() {
	p.State = PacmanPower
	p.Timer = core.NewBoundedMax(parameter.PacmanPowerDuration)
}

// EnterNormal reverts to wandering with a short pickup countdown
func (p *PacmanAI) EnterNormal() {
	p.State = PacmanNormal
	p.Spawn1Up = core.NewBounded(parameter.PacmanRevertSpawn1Up, 0, parameter.PacmanSpawn1UpInterval)
	p.Target = nil
}

type HelicopterState uint8

const (
	HelicopterIdle HelicopterState = iota
	HelicopterMoving
	HelicopterMinigun
	HelicopterMinions
)

var helicopterStateNames = [...]string{"idle", "moving", "minigun", "minions"}

func (s HelicopterState) String() string {
	if int(s) < len(helicopterStateNames) {
		return helicopterStateNames[s]
	}
	return "unknown"
}

type HelicopterAI struct {
	State     HelicopterState
	Oscillate core.Bounded[float64]
	// Moving
	Target vmath.Vec2
	// Minigun
	MinigunTimer float64
	ShotDelay    core.Bounded[float64]
	// Minions: pending squad, spawned from the end
	Minions []config.EnemyConfig
	Delay   core.Bounded[float64]

	MinigunBullet config.EnemyConfig
	Squad         []string
}

func (*IdleAI) Kind() config.AIKind       { return config.AIIdle }
func (*BulletAI) Kind() config.AIKind     { return config.AIBullet }
func (*CrawlerAI) Kind() config.AIKind    { return config.AICrawler }
func (*ShooterAI) Kind() config.AIKind    { return config.AIShooter }
func (*HealerAI) Kind() config.AIKind     { return config.AIHealer }
func (*ShielderAI) Kind() config.AIKind   { return config.AIShielder }
func (*PacmanAI) Kind() config.AIKind     { return config.AIPacman }
func (*HelicopterAI) Kind() config.AIKind { return config.AIHelicopter }

// NewAI builds fresh behavior state from configuration
func NewAI(cfg config.AIConfig) AI {
	switch cfg.Kind {
	case config.AIBullet:
		return &BulletAI{}
	case config.AICrawler:
		return &CrawlerAI{}
	case config.AIShooter:
		s := &ShooterAI{
			PreferredDistance: cfg.PreferredDistance,
			Charge:            core.NewBoundedZero(cfg.Charge),
		}
		if cfg.Bullet != nil {
			s.Bullet = *cfg.Bullet
		}
		return s
	case config.AIHealer:
		return &HealerAI{
			Range:     cfg.Range,
			HealRatio: cfg.HealRatio,
			Cooldown:  core.NewBoundedZero(cfg.Cooldown),
		}
	case config.AIShielder:
		return &ShielderAI{PreferredDistance: cfg.PreferredDistance}
	case config.AIPacman:
		speed := cfg.SpeedPower
		if !(speed > 0) {
			speed = parameter.PacmanSpeedPower
		}
		return &PacmanAI{
			State:      PacmanNormal,
			SpeedPower: speed,
			Spawn1Up:   core.NewBoundedMax(parameter.PacmanSpawn1UpInterval),
		}
	case config.AIHelicopter:
		h := &HelicopterAI{
			State:     HelicopterIdle,
			Oscillate: core.NewBoundedMax(parameter.HelicopterOscillate),
			Squad:     append([]string(nil), cfg.Squad...),
		}
		if cfg.MinigunBullet != nil {
			h.MinigunBullet = *cfg.MinigunBullet
		}
		return h
	}
	return &IdleAI{}
}
