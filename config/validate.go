package config

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrNonPositive  = errors.New("must be positive")
	ErrNegative     = errors.New("must not be negative")
	ErrZeroCost     = errors.New("spawn cost must be positive")
	ErrMissingField = errors.New("missing required field")
)

// Validate checks values the simulation depends on
// Degenerate shapes are not errors; they are downgraded to zero-radius circles
func (c *Config) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%s: %w", name, ErrNonPositive))
		}
	}
	nonNegative := func(name string, v float64) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s: %w", name, ErrNegative))
		}
	}

	positive("starting_area.x", c.StartingArea.X)
	positive("starting_area.y", c.StartingArea.Y)
	if c.UpgradesPerLevel < 0 {
		errs = append(errs, fmt.Errorf("upgrades_per_level: %w", ErrNegative))
	}
	positive("difficulty.room_size_max", c.Difficulty.RoomSizeMax)
	nonNegative("difficulty.time_scaling", c.Difficulty.TimeScaling)

	positive("player.health", c.Player.Health)
	nonNegative("player.speed", c.Player.Speed)
	nonNegative("player.acceleration", c.Player.Acceleration)
	nonNegative("player.hurt_invincibility_time", c.Player.HurtInvincibilityTime)
	for name, d := range map[string]DrawConfig{
		"whip": c.Player.Whip, "dash": c.Player.Dash, "bow": c.Player.Bow, "fishing": c.Player.Fishing,
	} {
		positive("player."+name+".max_distance", d.MaxDistance)
		nonNegative("player."+name+".cooldown", d.Cooldown)
		nonNegative("player."+name+".width", d.Width)
		nonNegative("player."+name+".invincibility_time", d.InvincibilityTime)
	}
	c.Player.Shape = c.Player.Shape.Sanitized()
	c.Player.Shield = c.Player.Shield.Sanitized()

	names := make([]string, 0, len(c.Enemies))
	for name := range c.Enemies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		e := c.Enemies[name]
		errs = append(errs, validateEnemy("enemies."+name, &e)...)
		c.Enemies[name] = e
	}

	for i, b := range c.Bosses {
		prefix := fmt.Sprintf("bosses[%d]", i)
		positive(prefix+".room_size.x", b.RoomSize.X)
		positive(prefix+".room_size.y", b.RoomSize.Y)
		if b.Room <= 0 {
			errs = append(errs, fmt.Errorf("%s.room: %w", prefix, ErrNonPositive))
		}
	}

	// Sorted for stable error output
	sort.SliceStable(errs, func(i, j int) bool { return errs[i].Error() < errs[j].Error() })
	return errors.Join(errs...)
}

func validateEnemy(prefix string, e *EnemyConfig) []error {
	var errs []error
	if cost, ok := e.Budget(); ok && !(cost > 0) {
		errs = append(errs, fmt.Errorf("%s.cost: %w", prefix, ErrZeroCost))
	}
	if e.Grouping != nil && !(e.Grouping.Cost > 0) {
		errs = append(errs, fmt.Errorf("%s.grouping.cost: %w", prefix, ErrZeroCost))
	}
	if !(e.Health > 0) {
		errs = append(errs, fmt.Errorf("%s.health: %w", prefix, ErrNonPositive))
	}
	if e.Speed < 0 || e.Acceleration < 0 {
		errs = append(errs, fmt.Errorf("%s.speed: %w", prefix, ErrNegative))
	}
	e.Shape = e.Shape.Sanitized()

	switch e.AI.Kind {
	case AIShooter:
		if e.AI.Bullet == nil {
			errs = append(errs, fmt.Errorf("%s.ai.bullet: %w", prefix, ErrMissingField))
		} else {
			errs = append(errs, validateEnemy(prefix+".ai.bullet", e.AI.Bullet)...)
		}
		if !(e.AI.Charge > 0) {
			errs = append(errs, fmt.Errorf("%s.ai.charge: %w", prefix, ErrNonPositive))
		}
	case AIHealer:
		if !(e.AI.Range > 0) {
			errs = append(errs, fmt.Errorf("%s.ai.range: %w", prefix, ErrNonPositive))
		}
	case AIHelicopter:
		if e.AI.MinigunBullet == nil {
			errs = append(errs, fmt.Errorf("%s.ai.minigun_bullet: %w", prefix, ErrMissingField))
		} else {
			errs = append(errs, validateEnemy(prefix+".ai.minigun_bullet", e.AI.MinigunBullet)...)
		}
	}
	return errs
}
