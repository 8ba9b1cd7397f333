package system

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/vmath"
)

// ControlsSystem moves the player and captures drawing gestures
type ControlsSystem struct{}

func NewControlsSystem() *ControlsSystem {
	return &ControlsSystem{}
}

func (s *ControlsSystem) Name() string {
	return "controls"
}

func (s *ControlsSystem) Priority() int {
	return parameter.PriorityControls
}

func (s *ControlsSystem) Update(m *engine.Model, dt float64) {
	p := &m.Player

	wasInvincible := p.Invincible()
	p.Invincibility.Change(-dt)
	if wasInvincible && !p.Invincible() {
		m.QueueParticles(component.CircleBurst(component.ParticleShield, p.Position(), parameter.PlayerShieldDownRadius))
	}

	if !p.Alive() {
		p.Body.MoveRotation()
		p.Body.Integrate(dt)
		return
	}

	if p.Drawing != nil {
		p.Body.Velocity = vmath.Zero
	} else {
		desired := m.Input.MoveDir.ClampLen(1).Scale(p.Stats.Speed)
		physics.SteerVelocity(&p.Body, desired, p.Stats.Acceleration, dt)
	}
	p.Body.Integrate(dt)
	p.Body.Collider.Rotation = m.CursorPos.Sub(p.Position()).Arg() + vmath.Radians(parameter.PlayerRotationOffsetDeg)

	active := p.Active()
	wasCooling := active.Cooldown.IsAboveMin()
	active.Cooldown.Change(-dt)
	if wasCooling && active.Cooldown.IsMin() {
		m.QueueParticles(component.CircleBurst(component.ParticleDrawing, p.Position(), parameter.PlayerCooldownReadyRadius))
	}

	if m.Input.Drawing == nil {
		if p.Drawing != nil {
			PlayerDraw(m)
		}
		return
	}
	captureGesture(m, *m.Input.Drawing)
}

// captureGesture extends the held gesture toward point
// Points outside every room are accepted only when the wall under them can be broken
func captureGesture(m *engine.Model, point vmath.Vec2) {
	p := &m.Player
	active := p.Active()

	if p.Drawing == nil {
		if active.Cooldown.IsAboveMin() {
			return
		}
		p.Drawing = component.NewDrawing(p.Position(), m.GameTime)
	}
	drawing := p.Drawing

	remaining := drawing.Remaining(active.MaxDistance)
	if remaining > 0 && (room.Inside(m.Rooms, point) || canBreakToward(m, point)) {
		drawing.Append(component.DrawPoint{Position: point, Time: m.GameTime}, active.MaxDistance)
	}

	m.QueueParticles(component.SpawnParticles{
		Kind:         component.ParticleDraw,
		Density:      parameter.DrawParticleDensity,
		Distribution: component.DrawingDistribution{Points: drawing.Smoothed, Width: parameter.DrawParticleWidth},
		SizeMin:      parameter.ParticleSizeMin,
		SizeMax:      parameter.ParticleSizeMax,
		LifetimeMin:  parameter.ParticleLifetimeMin,
		LifetimeMax:  parameter.ParticleLifetimeMax,
	})

	if drawing.Remaining(active.MaxDistance) <= vmath.Epsilon {
		PlayerDraw(m)
	}
}

// canBreakToward reports whether the player's room may expand through the wall closest to point
func canBreakToward(m *engine.Model, point vmath.Vec2) bool {
	if !m.CanExpand() {
		return false
	}
	_, r, ok := room.Find(m.Rooms, m.Player.Position())
	if !ok {
		return false
	}
	_, side := r.ClosestWall(point)
	return r.Breakable(side)
}

// PlayerDraw finalizes the held gesture and applies the active weapon
// Gestures with fewer than two smoothed points are discarded
func PlayerDraw(m *engine.Model) {
	p := &m.Player
	drawing := p.Drawing
	p.Drawing = nil
	if drawing == nil {
		return
	}
	last, dir, ok := drawing.Last()
	if !ok {
		return
	}

	var (
		expandRoom room.Index
		canExpand  bool
	)
	if m.CanExpand() {
		expandRoom, _, canExpand = room.Find(m.Rooms, p.Position())
	}

	stats := p.Active()
	p.Invincibility.Set(stats.InvincibilityTime)
	stats.Cooldown.SetRatio(1)

	switch p.ActiveWeapon {
	case component.WeaponDash:
		p.Body.Collider.Position = last
		p.Body.Velocity = dir.Scale(stats.Speed)
	case component.WeaponBow:
		m.Minions = append(m.Minions, component.NewBowBullet(stats, last, dir))
	}

	DamageAround(m, drawing.Smoothed, stats.Width, stats.Damage)
	m.Status.Ints.Get(status.KeyGestures).Add(1)

	if canExpand && !room.Inside(m.Rooms, last) {
		if r := m.Rooms.Get(expandRoom); r != nil {
			if _, side := r.ClosestWall(last); r.Breakable(side) {
				UnlockRoom(m, expandRoom, last)
			}
		}
	}
}
