package engine

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/vmath"
)

// Model is the aggregate root of one game session
// Not safe for concurrent use; the game loop owns it
type Model struct {
	Config *config.Config
	Camera Camera

	RealTime  float64
	GameTime  float64
	CursorPos vmath.Vec2
	Input     PlayerControls
	IDGen     core.IDGenerator

	RoomsCleared    int
	BossesKilled    int
	DifficultyRaw   float64
	Difficulty      float64
	Score           int64
	ScoreMultiplier float64

	Player     component.Player
	Rooms      *room.Rooms
	Walls      []room.Wall
	Objects    []component.Object
	Minions    []component.Minion
	Enemies    *EnemyStore
	Upgrades   []component.Upgrade
	Pacman1Ups []component.Pacman1Up
	Particles  []component.Particle

	// Staged work flushed later in the tick
	ParticleQueue []component.SpawnParticles
	SpawnQueue    []*component.Enemy

	Events *event.Queue
	Rng    *vmath.FastRand
	Log    *slog.Logger
	Status *status.Registry

	SessionID uuid.UUID
	RootRoom  room.Index

	seed    uint64
	baseLog *slog.Logger
	systems []System
}

// Option configures a Model at construction
type Option func(*Model)

// WithSeed fixes the random seed for reproducible sessions
func WithSeed(seed uint64) Option {
	return func(m *Model) { m.seed = seed }
}

// WithLogger sets the structured logger; records carry the session id
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) { m.baseLog = l }
}

// WithStatus shares a metrics registry with the caller
func WithStatus(r *status.Registry) Option {
	return func(m *Model) { m.Status = r }
}

// NewModel builds a session from cfg with no systems installed
func NewModel(cfg *config.Config, opts ...Option) *Model {
	m := &Model{
		Config: cfg,
		seed:   uint64(time.Now().UnixNano()),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.baseLog == nil {
		m.baseLog = slog.New(slog.DiscardHandler)
	}
	if m.Status == nil {
		m.Status = status.NewRegistry()
	}
	m.Events = event.NewQueue()
	m.Rng = vmath.NewFastRand(m.seed)
	m.Enemies = NewEnemyStore()
	m.Rooms = room.NewArena[room.Room]()
	m.reset()
	return m
}

// Reset rebuilds the session from config, keeping installed systems and the seed stream
func (m *Model) Reset() {
	m.reset()
	m.Log.Debug("session reset")
}

func (m *Model) reset() {
	m.SessionID = uuid.New()
	m.Log = m.baseLog.With("session", m.SessionID.String())

	m.Camera = Camera{}
	m.RealTime, m.GameTime = 0, 0
	m.CursorPos = vmath.Zero
	m.Input = PlayerControls{}
	m.IDGen = core.IDGenerator{}
	m.RoomsCleared, m.BossesKilled = 0, 0
	m.DifficultyRaw = m.Config.Difficulty.Initial
	m.Difficulty = m.Config.Difficulty.Initial
	m.Score = 0
	m.ScoreMultiplier = 1

	m.Player = component.NewPlayer(m.Config.Player, vmath.Zero)
	m.Rooms.Clear()
	m.RootRoom = m.Rooms.Insert(room.Room{
		Area: vmath.AabbCentered(vmath.Zero, m.Config.StartingArea),
	})
	m.Objects = m.Objects[:0]
	m.Minions = m.Minions[:0]
	m.Enemies.Clear()
	m.Upgrades = m.Upgrades[:0]
	m.Pacman1Ups = m.Pacman1Ups[:0]
	m.Particles = m.Particles[:0]
	m.ParticleQueue = m.ParticleQueue[:0]
	m.SpawnQueue = m.SpawnQueue[:0]
	m.Events.Reset()
	m.RefreshWalls()
}

// Update advances the simulation by one fixed step
func (m *Model) Update(input PlayerControls, dt float64) {
	m.RealTime += dt
	m.GameTime += dt
	m.Input = input

	if m.Player.Drawing != nil {
		m.Events.Push(event.SoundDrawing)
	}

	for _, s := range m.systems {
		s.Update(m, dt)
	}
}

// RefreshWalls recomputes wall colliders from the room topology
func (m *Model) RefreshWalls() {
	m.Walls = room.ComputeWalls(m.Rooms, func(idx room.Index, err error) {
		m.Log.Error("invalid room setup", "room", idx, "error", err)
	})
}

// CanExpand reports whether the dungeon is at peace: no live or staged enemies
func (m *Model) CanExpand() bool {
	return m.Enemies.Len() == 0 && len(m.SpawnQueue) == 0
}

// InStartingRoom reports whether the root room is the whole dungeon
func (m *Model) InStartingRoom() bool {
	return m.Rooms.Contains(m.RootRoom) && m.Rooms.Len() == 1
}

// NextID issues a fresh entity ID
func (m *Model) NextID() core.ID {
	return m.IDGen.Next()
}

// QueueParticles stages a particle batch for the death pass
func (m *Model) QueueParticles(p component.SpawnParticles) {
	m.ParticleQueue = append(m.ParticleQueue, p)
}

// QueueEnemy stages an enemy to join the live set at the end of the tick
func (m *Model) QueueEnemy(e *component.Enemy) {
	m.SpawnQueue = append(m.SpawnQueue, e)
}

// SpawnEnemy builds an enemy from an archetype, applying difficulty health scaling, and stages it
func (m *Model) SpawnEnemy(stats config.EnemyConfig, position vmath.Vec2) *component.Enemy {
	stats.Health += m.Config.Difficulty.EnemyHealthScaling * m.Difficulty
	e := component.NewEnemy(m.NextID(), stats, position)
	m.QueueEnemy(e)
	return e
}

// Shield returns the collider used for the player while invincible
func (m *Model) Shield() physics.Collider {
	return physics.NewCollider(m.Player.Position(), m.Player.Stats.Shield)
}
