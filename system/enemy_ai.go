package system

import (
	"math"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/vmath"
)

// EnemyAISystem runs per-enemy behavior, integration and attachment constraints
type EnemyAISystem struct{}

func NewEnemyAISystem() *EnemyAISystem {
	return &EnemyAISystem{}
}

func (s *EnemyAISystem) Name() string {
	return "enemy_ai"
}

func (s *EnemyAISystem) Priority() int {
	return parameter.PriorityEnemyAI
}

// Update pulls each enemy out of the store so it can read and mutate the others freely
func (s *EnemyAISystem) Update(m *engine.Model, dt float64) {
	for _, id := range m.Enemies.IDs() {
		e, ok := m.Enemies.Remove(id)
		if !ok {
			m.Log.Error("enemy not found", "enemy", id)
			continue
		}
		updateEnemy(m, e, dt)
		m.Enemies.Insert(e)
	}
}

func updateEnemy(m *engine.Model, e *component.Enemy, dt float64) {
	e.Invincibility.Change(-dt)
	pos := e.Position()

	var repel vmath.Vec2
	m.Enemies.Each(func(other *component.Enemy) {
		repel = repel.Add(physics.RepelFrom(pos, other.Position(), &physics.EnemyRepulsion))
	})
	for i := range m.Objects {
		repel = repel.Add(physics.RepelFrom(pos, m.Objects[i].Collider.Position, &physics.ObjectRepulsion))
	}

	// Pacman and helicopter own their rotation
	spin := true
	switch ai := e.AI.(type) {
	case *component.IdleAI:
		physics.ApplyDrag(&e.Body, parameter.IdleDrag)
	case *component.BulletAI:
	case *component.CrawlerAI:
		steer(e, m.Player.Position(), repel, dt)
	case *component.ShooterAI:
		updateShooter(m, e, ai, repel, dt)
	case *component.HealerAI:
		updateHealer(m, e, ai, repel, dt)
	case *component.ShielderAI:
		updateShielder(m, e, ai, repel, dt)
	case *component.PacmanAI:
		updatePacman(m, e, ai, dt)
		spin = false
	case *component.HelicopterAI:
		updateHelicopter(m, e, ai, dt)
		spin = false
	}
	if spin {
		e.Body.MoveRotation()
	}

	e.Body.Integrate(dt)
	resolveAttachment(m, e)
}

func steer(e *component.Enemy, target, repel vmath.Vec2, dt float64) {
	physics.Steer(&e.Body, target, repel, physics.SteerProfile{Speed: e.Stats.Speed, Accel: e.Stats.Acceleration}, dt)
}

// orbitPoint returns the point at distance from anchor on the side where pos currently is
func orbitPoint(anchor, pos vmath.Vec2, distance float64) vmath.Vec2 {
	return anchor.Add(pos.Sub(anchor).NormalizeOrZero().Scale(distance))
}

func updateShooter(m *engine.Model, e *component.Enemy, ai *component.ShooterAI, repel vmath.Vec2, dt float64) {
	player := m.Player.Position()
	pos := e.Position()

	ai.Charge.Change(dt)
	if ai.Charge.IsMax() {
		ai.Charge.SetRatio(0)
		bullet := m.SpawnEnemy(ai.Bullet, pos)
		bullet.Body.Velocity = player.Sub(pos).NormalizeOrZero().Scale(ai.Bullet.Speed)
	}

	steer(e, orbitPoint(player, pos, ai.PreferredDistance), repel, dt)
}

func updateHealer(m *engine.Model, e *component.Enemy, ai *component.HealerAI, repel vmath.Vec2, dt float64) {
	pos := e.Position()
	m.QueueParticles(healerAura(pos, component.ParticleHeal, parameter.HealerAuraRadius, parameter.HealerAuraDensity*dt))
	ai.Cooldown.Change(-dt)

	// Weakest damaged ally in range, else the closest damaged ally
	var (
		inRange, closest         *component.Enemy
		inRangeRatio, closestDst = math.Inf(1), math.Inf(1)
	)
	m.Enemies.Each(func(other *component.Enemy) {
		if other.Health.IsMax() {
			return
		}
		d := vmath.Distance(pos, other.Position())
		if d < closestDst {
			closest, closestDst = other, d
		}
		if d < ai.Range {
			if r := other.Health.Ratio(); r < inRangeRatio {
				inRange, inRangeRatio = other, r
			}
		}
	})

	target := closest
	if inRange != nil {
		target = inRange
	}

	if target == nil {
		steer(e, orbitPoint(m.Player.Position(), pos, ai.Range*parameter.OrbitPlayerFactor), repel, dt)
		return
	}

	targetPos := target.Position()
	if ai.Cooldown.IsMin() && vmath.Distance(pos, targetPos) < ai.Range {
		ai.Cooldown.SetRatio(1)
		target.Health.Change(target.Health.Max() * ai.HealRatio)
		m.QueueParticles(component.CircleBurst(component.ParticleHeal, targetPos, parameter.HealerBurstRadius))
	}

	steer(e, orbitPoint(targetPos, pos, ai.Range/2), repel, dt)
}

func updateShielder(m *engine.Model, e *component.Enemy, ai *component.ShielderAI, repel vmath.Vec2, dt float64) {
	pos := e.Position()
	m.QueueParticles(healerAura(pos, component.ParticleShield, parameter.ShielderAuraRadius, parameter.ShielderAuraDensity*dt))

	var target *component.Enemy
	if ai.Target != nil {
		if t, ok := m.Enemies.Get(*ai.Target); ok {
			target = t
		} else {
			ai.Target = nil
		}
	}
	if target == nil {
		best := math.Inf(1)
		m.Enemies.Each(func(other *component.Enemy) {
			if _, shielder := other.AI.(*component.ShielderAI); shielder {
				return
			}
			if d := vmath.Distance(pos, other.Position()); d < best {
				target, best = other, d
			}
		})
		if target != nil {
			id := target.ID
			ai.Target = &id
		}
	}

	if target == nil {
		steer(e, orbitPoint(m.Player.Position(), pos, ai.PreferredDistance*parameter.OrbitPlayerFactor), repel, dt)
		return
	}

	targetPos := target.Position()
	if vmath.Distance(pos, targetPos) <= ai.PreferredDistance*parameter.ShielderAdjacency {
		target.Invincibility.SetRatio(1)
	}
	steer(e, orbitPoint(targetPos, pos, ai.PreferredDistance), repel, dt)
}

func healerAura(center vmath.Vec2, kind component.ParticleKind, radius, density float64) component.SpawnParticles {
	p := component.CircleBurst(kind, center, radius)
	p.Density = density
	return p
}

// pacmanVelocity snaps motion toward delta onto a single axis
func pacmanVelocity(current, delta vmath.Vec2, speed float64) vmath.Vec2 {
	horizontal := (current.Y == 0 && math.Abs(delta.X) > parameter.PacmanAxisThresholdX) ||
		(current.X == 0 && math.Abs(delta.Y) < parameter.PacmanAxisThresholdY)
	if horizontal {
		return vmath.V(vmath.Signum(delta.X), 0).Scale(speed)
	}
	return vmath.V(0, vmath.Signum(delta.Y)).Scale(speed)
}

func updatePacman(m *engine.Model, e *component.Enemy, ai *component.PacmanAI, dt float64) {
	pos := e.Position()
	_, r, ok := room.Find(m.Rooms, pos)
	if !ok {
		return
	}

	switch ai.State {
	case component.PacmanNormal:
		goal := pacmanGoal(m, e, ai, r.Area)
		e.Body.Velocity = pacmanVelocity(e.Body.Velocity, goal.Sub(pos), e.Stats.Speed)

		ai.Spawn1Up.Change(-dt)
		if ai.Spawn1Up.IsMin() {
			ai.Spawn1Up.SetRatio(1)
			spawn1Up(m, pos, r.Area)
		}

		eaten := false
		kept := m.Pacman1Ups[:0]
		for _, up := range m.Pacman1Ups {
			if e.Body.Collider.Check(&up.Collider) {
				eaten = true
				continue
			}
			kept = append(kept, up)
		}
		m.Pacman1Ups = kept
		if eaten {
			ai.EnterPower()
		}
	case component.PacmanPower:
		e.Body.Velocity = pacmanVelocity(e.Body.Velocity, m.Player.Position().Sub(pos), ai.SpeedPower)
		ai.Timer.Change(-dt)
		if ai.Timer.IsMin() {
			ai.EnterNormal()
		}
	}

	e.Body.AngularVelocity = 0
	e.Body.Collider.Rotation = e.Body.Velocity.Arg()
}

// pacmanGoal keeps the current wander target until reached, then picks a pickup or a far random point
func pacmanGoal(m *engine.Model, e *component.Enemy, ai *component.PacmanAI, area vmath.Aabb) vmath.Vec2 {
	pos := e.Position()
	if ai.Target != nil && ai.Target.Sub(pos).LenSq() > parameter.PacmanTargetReachSq {
		return *ai.Target
	}

	if n := len(m.Pacman1Ups); n > 0 {
		t := m.Pacman1Ups[m.Rng.Intn(n)].Collider.Position
		ai.Target = &t
	} else {
		inner := area.ExtendUniform(-parameter.PacmanWanderMargin)
		for i := 0; i < parameter.PacmanWanderTries; i++ {
			t := m.Rng.InAabb(inner)
			if t.Sub(pos).LenSq() > parameter.PacmanWanderMinSq {
				ai.Target = &t
				break
			}
		}
	}

	if ai.Target != nil {
		return *ai.Target
	}
	return m.Player.Position()
}

// spawn1Up drops a pickup near the room corner opposite to pos
func spawn1Up(m *engine.Model, pos vmath.Vec2, area vmath.Aabb) {
	center := area.Center()
	half := area.Size().Scale(0.5).Sub(vmath.V(parameter.Pacman1UpCornerInset, parameter.Pacman1UpCornerInset))
	side := center.Sub(pos).Map(vmath.Signum)
	anchor := center.Add(side.Mul(half))

	for i := 0; i < parameter.Pacman1UpTries; i++ {
		p := m.Rng.InCircle(anchor, parameter.Pacman1UpScatter)
		crowded := false
		for _, up := range m.Pacman1Ups {
			if up.Collider.Position.Sub(p).LenSq() < parameter.Pacman1UpSpacingSq {
				crowded = true
				break
			}
		}
		if !crowded {
			m.Pacman1Ups = append(m.Pacman1Ups, component.Pacman1Up{
				Collider: physics.NewCollider(p, physics.Circle(parameter.Pacman1UpRadius)),
			})
			return
		}
	}
}

func updateHelicopter(m *engine.Model, e *component.Enemy, ai *component.HelicopterAI, dt float64) {
	m.Events.Push(event.SoundHelicopter)
	pos := e.Position()
	_, r, ok := room.Find(m.Rooms, pos)
	if !ok {
		return
	}

	switch ai.State {
	case component.HelicopterIdle:
		ai.Oscillate.Change(-dt)
		if !ai.Oscillate.IsMin() {
			return
		}
		ai.Oscillate.SetRatio(1)
		var corners []vmath.Vec2
		for _, c := range r.Area.ExtendUniform(-parameter.HelicopterCornerInset).Corners() {
			if c.Sub(pos).LenSq() > parameter.HelicopterArriveSq {
				corners = append(corners, c)
			}
		}
		if len(corners) > 0 {
			ai.Target = corners[m.Rng.Intn(len(corners))]
			ai.State = component.HelicopterMoving
		}

	case component.HelicopterMoving:
		delta := ai.Target.Sub(pos)
		if delta.LenSq() < parameter.HelicopterArriveSq {
			if m.Rng.Chance(parameter.HelicopterMinionsChance) {
				ai.Minions = helicopterSquad(m, ai)
				ai.Delay = core.NewBoundedMax(parameter.HelicopterMinionDelay)
				ai.State = component.HelicopterMinions
			} else {
				ai.MinigunTimer = parameter.HelicopterMinigunTime
				ai.ShotDelay = core.NewBoundedMax(parameter.HelicopterShotDelay)
				ai.State = component.HelicopterMinigun
			}
			return
		}
		desired := delta.ClampLen(e.Stats.Speed)
		accel := e.Stats.Acceleration
		if desired.Dot(e.Body.Velocity) < 0 {
			accel *= parameter.HelicopterReverseAccel
		}
		physics.SteerVelocity(&e.Body, desired, accel, dt)

	case component.HelicopterMinigun:
		ai.ShotDelay.Change(-dt)
		if ai.ShotDelay.IsMin() {
			ai.ShotDelay.SetRatio(1)
			player := m.Player.Position()
			for _, dx := range [2]float64{-parameter.HelicopterGunOffset, parameter.HelicopterGunOffset} {
				gun := pos.Add(vmath.V(dx, 0))
				bullet := component.NewEnemy(m.NextID(), ai.MinigunBullet, gun)
				bullet.Body.Velocity = player.Sub(gun).NormalizeOrZero().Scale(ai.MinigunBullet.Speed)
				m.QueueEnemy(bullet)
				m.Events.Push(event.SoundMinigun)
			}
		}
		ai.MinigunTimer -= dt
		if ai.MinigunTimer <= 0 {
			ai.State = component.HelicopterIdle
		}

	case component.HelicopterMinions:
		ai.Delay.Change(-dt)
		if !ai.Delay.IsMin() {
			return
		}
		ai.Delay.SetRatio(1)
		if n := len(ai.Minions); n > 0 {
			stats := ai.Minions[n-1]
			ai.Minions = ai.Minions[:n-1]
			m.SpawnEnemy(stats, pos)
		} else {
			ai.State = component.HelicopterIdle
		}
	}
}

// helicopterSquad resolves the squad roster; unknown names are logged and skipped
func helicopterSquad(m *engine.Model, ai *component.HelicopterAI) []config.EnemyConfig {
	squad := make([]config.EnemyConfig, 0, len(ai.Squad))
	for _, name := range ai.Squad {
		cfg, ok := m.Config.Enemies[name]
		if !ok {
			m.Log.Error("enemy archetype not found", "enemy", name)
			continue
		}
		squad = append(squad, cfg.WithHealth(cfg.Health*parameter.HelicopterMinionHealth))
	}
	return squad
}

// resolveAttachment pulls attached pairs back to their rest offset and shares their velocity
// A missing partner clears the link
func resolveAttachment(m *engine.Model, e *component.Enemy) {
	if e.Attachment == nil {
		return
	}
	partner, ok := m.Enemies.Get(e.Attachment.Partner)
	if !ok {
		e.Attachment = nil
		return
	}

	avg := e.Body.Velocity.Add(partner.Body.Velocity).Scale(0.5)
	e.Body.Velocity = avg
	partner.Body.Velocity = avg

	delta := e.Position().Sub(partner.Position())
	correction := e.Attachment.Offset.Sub(delta).Scale(0.5)
	e.Body.Collider.Position = e.Position().Add(correction)
	partner.Body.Collider.Position = partner.Position().Sub(correction)

	e.Body.Collider.Rotation = delta.Arg()
	partner.Body.Collider.Rotation = delta.Neg().Arg()
}
