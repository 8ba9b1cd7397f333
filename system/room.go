package system

import (
	"math"
	"sort"

	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/physics"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/status"
	"github.com/lixenwraith/open-island/vmath"
)

// squareRing is the 3x3 ring layout for rectangle groups, walked clockwise from the top-left
var squareRing = [8][2]float64{
	{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0},
}

// UnlockRoom generates a room beyond the wall of idx closest to pos and populates it
// No-op when idx is stale or pos is still inside that room
func UnlockRoom(m *engine.Model, idx room.Index, pos vmath.Vec2) {
	r := m.Rooms.Get(idx)
	if r == nil || r.Contains(pos) {
		return
	}

	_, side := r.ClosestWall(pos)
	expanded := side
	r.ExpandedDirection = &expanded

	var size vmath.Vec2
	if boss, ok := m.Config.BossFor(m.RoomsCleared); ok {
		size = boss.RoomSize
		m.Log.Debug("generating boss room")
	} else {
		size = vmath.V(roomExtent(m), roomExtent(m))
		m.Log.Debug("generating next room")
	}

	area := room.Adjacent(r.Area, side, size)
	next := m.Rooms.Insert(room.Room{
		Area:          area,
		UnlockedAfter: &room.Link{Parent: idx, Side: side.Opposite()},
	})
	m.Log.Debug("expanding room", "room", idx, "direction", side.String(), "new_room", next)

	m.RefreshWalls()
	SpawnEnemies(m, next)
	m.Events.Push(event.SoundExpand)
	m.Status.Ints.Get(status.KeyRoomsUnlocked).Add(1)
}

func roomExtent(m *engine.Model) float64 {
	d := m.Config.Difficulty
	extent := m.Rng.Range(parameter.RoomSizeMin, parameter.RoomSizeMax) + d.RoomSizeScaling*m.Difficulty
	return math.Min(extent, d.RoomSizeMax)
}

// SpawnEnemies populates a freshly generated room from the difficulty budget, or with the boss roster
func SpawnEnemies(m *engine.Model, idx room.Index) {
	r := m.Rooms.Get(idx)
	if r == nil {
		return
	}
	area := r.Area

	if boss, ok := m.Config.BossFor(m.RoomsCleared); ok {
		spawnBosses(m, area, boss)
		return
	}

	names := make([]string, 0, len(m.Config.Enemies))
	for name := range m.Config.Enemies {
		names = append(names, name)
	}
	sort.Strings(names)

	budget := m.Difficulty
	for {
		candidates := names[:0:0]
		for _, name := range names {
			cfg := m.Config.Enemies[name]
			if cost, ok := cfg.Budget(); ok && cost > 0 && cost <= budget {
				candidates = append(candidates, name)
			}
		}
		if len(candidates) == 0 {
			break
		}
		cfg := m.Config.Enemies[candidates[m.Rng.Intn(len(candidates))]]

		if g := cfg.Grouping; g != nil && g.Cost <= budget && m.Rng.Chance(vmath.Clamp(g.Chance, 0, 1)) {
			budget -= g.Cost
			if pos, ok := findSpawnPosition(m, area); ok {
				spawnGroup(m, cfg, pos)
			}
			continue
		}

		cost, _ := cfg.Budget()
		budget -= cost
		if pos, ok := findSpawnPosition(m, area); ok {
			m.SpawnEnemy(cfg, pos)
		}
	}

	spawnBarrel(m, area)
}

func spawnBosses(m *engine.Model, area vmath.Aabb, boss *config.BossConfig) {
	for _, name := range boss.Enemies {
		cfg, ok := m.Config.Enemies[name]
		if !ok {
			m.Log.Error("enemy archetype not found", "enemy", name)
			continue
		}
		pos, ok := findSpawnPosition(m, area)
		if !ok {
			continue
		}
		e := m.SpawnEnemy(cfg, pos)
		e.IsBoss = true
		boost := m.Player.Stats.Whip.Damage / parameter.BossHPDamageDivisor * parameter.BossHPFactor
		e.Health = core.NewBoundedMax(e.Health.Max() * boost)
	}
}

// spawnGroup places a linked formation around center; each member is attached to the previous one
func spawnGroup(m *engine.Model, cfg config.EnemyConfig, center vmath.Vec2) {
	var positions []vmath.Vec2
	switch cfg.Shape.Kind {
	case physics.ShapeCircle:
		for i := 0; i < parameter.GroupCircleCount; i++ {
			angle := 2 * math.Pi * float64(i) / parameter.GroupCircleCount
			positions = append(positions, center.Add(vmath.Unit(angle).Scale(cfg.Shape.Radius*parameter.GroupCircleSpacing)))
		}
	case physics.ShapeRectangle:
		for _, cell := range squareRing {
			positions = append(positions, center.Add(vmath.V(cell[0], cell[1]).Scale(parameter.GroupSquareSpacing)))
		}
	case physics.ShapeTriangle:
		for i := 0; i < parameter.GroupTriangleCount; i++ {
			angle := math.Pi/2 + 2*math.Pi*float64(i)/parameter.GroupTriangleCount
			positions = append(positions, center.Add(vmath.Unit(angle).Scale(cfg.Shape.Height*parameter.GroupTriangleSpacing)))
		}
	}

	var prev *component.Enemy
	for _, pos := range positions {
		e := m.SpawnEnemy(cfg, pos)
		if prev != nil {
			e.Attachment = &component.Attachment{Partner: prev.ID, Offset: e.Position().Sub(prev.Position())}
		}
		prev = e
	}
}

// findSpawnPosition samples the room interior for a point clear of the player
func findSpawnPosition(m *engine.Model, area vmath.Aabb) (vmath.Vec2, bool) {
	inner := area.ExtendUniform(-parameter.SpawnMargin)
	player := m.Player.Position()
	for i := 0; i < parameter.SpawnTries; i++ {
		pos := m.Rng.InAabb(inner)
		if vmath.Distance(pos, player) > parameter.SpawnPlayerClearance {
			return pos, true
		}
	}
	return vmath.Zero, false
}

// spawnBarrel maybe places an explosive barrel away from every enemy, live or staged
func spawnBarrel(m *engine.Model, area vmath.Aabb) {
	if !m.Rng.Chance(parameter.BarrelChance) {
		return
	}
	whip := &m.Player.Stats.Whip
	barrel := component.ExplosiveBarrel{
		Range:  whip.Width + parameter.BarrelRangeBonus,
		Damage: whip.Damage * parameter.BarrelDamageFactor,
	}

	inner := area.ExtendUniform(-parameter.SpawnMargin)
	for i := 0; i < parameter.BarrelTries; i++ {
		pos := m.Rng.InAabb(inner)
		if clearOfEnemies(m, pos, parameter.BarrelClearance) {
			m.Objects = append(m.Objects, component.NewBarrel(pos, parameter.BarrelSize, barrel))
			return
		}
	}
}

func clearOfEnemies(m *engine.Model, pos vmath.Vec2, clearance float64) bool {
	ok := true
	m.Enemies.Each(func(e *component.Enemy) {
		if vmath.Distance(e.Position(), pos) <= clearance {
			ok = false
		}
	})
	for _, e := range m.SpawnQueue {
		if vmath.Distance(e.Position(), pos) <= clearance {
			ok = false
		}
	}
	return ok
}
