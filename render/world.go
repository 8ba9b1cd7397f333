package render

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/room"
	"github.com/lixenwraith/open-island/vmath"
)

// hitFlash is how long a damaged body renders highlighted, in game seconds
const hitFlash = 0.12

// RoomRenderer fills room floors
type RoomRenderer struct{}

func (r *RoomRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	m.Rooms.Each(func(_ room.Index, rm *room.Room) bool {
		ctx.EachCell(rm.Area, func(sx, sy int, _ vmath.Vec2) {
			buf.SetBgOnly(sx, sy, RgbFloor)
		})
		return true
	})
}

// WallRenderer draws wall colliders; walls that can be broken right now are highlighted
type WallRenderer struct{}

func (r *WallRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	peace := m.CanExpand()
	for i := range m.Walls {
		w := &m.Walls[i]
		glyph, fg := parameter.GlyphWall, RgbWall
		if peace {
			if rm := m.Rooms.Get(w.Room); rm != nil && rm.Breakable(w.Side) {
				glyph, fg = parameter.GlyphWallCrack, RgbWallBreak
			}
		}
		// Walls are thinner than a cell; widen so every stretch lands on at least one row or column
		box := w.Collider.AABB().ExtendSymmetric(vmath.Vec2{X: 0.5 / parameter.CellsPerUnitX, Y: 0.5 / parameter.CellsPerUnitY})
		ctx.EachCell(box, func(sx, sy int, _ vmath.Vec2) {
			buf.SetFgOnly(sx, sy, glyph, fg)
		})
	}
}

// ParticleRenderer draws particles fading out with their remaining lifetime
type ParticleRenderer struct{}

func (r *ParticleRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	for i := range m.Particles {
		p := &m.Particles[i]
		sx, sy, ok := ctx.WorldToScreen(p.Collider.Position)
		if !ok {
			continue
		}
		fg := Scale(ParticleColor(p.Kind), 0.3+0.7*p.Lifetime.Ratio())
		buf.Set(sx, sy, parameter.GlyphParticle, fg, RGB{}, BlendFgOnly, 1)
	}
}

// ObjectRenderer draws barrels, 1-up pickups and upgrades
type ObjectRenderer struct{}

func (r *ObjectRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	for i := range m.Objects {
		fillCollider(ctx, buf, &m.Objects[i].Collider, parameter.GlyphBarrel, RgbBarrel)
	}
	for i := range m.Pacman1Ups {
		fillCollider(ctx, buf, &m.Pacman1Ups[i].Collider, parameter.GlyphPacman1Up, RgbPacman1Up)
	}
	for i := range m.Upgrades {
		u := &m.Upgrades[i]
		fg := RgbUpgrade
		if u.Effect.Kind == component.UpgradeWeapon {
			fg = RgbUpgradeGun
		}
		sx, sy, ok := fillCollider(ctx, buf, &u.Collider, parameter.GlyphUpgrade, fg)
		if !ok {
			continue
		}
		// Label to the right of the pickup
		label := u.Effect.String()
		for j, ch := range label {
			buf.SetFgOnly(sx+2+j, sy, ch, RgbStatusDim)
		}
	}
}

// EnemyRenderer draws enemies and player minions
type EnemyRenderer struct{}

func (r *EnemyRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	for i := range m.Minions {
		fillCollider(ctx, buf, &m.Minions[i].Body.Collider, parameter.GlyphMinion, RgbMinion)
	}
	m.Enemies.Each(func(e *component.Enemy) {
		fg := EnemyColor(e.AI.Kind())
		switch {
		case e.LastHit >= 0 && m.GameTime-e.LastHit < hitFlash:
			fg = RgbEnemyHit
		case !e.Vulnerable():
			fg = Blend(fg, RgbShield, 0.6)
		case e.IsBoss:
			fg = Max(fg, RgbEnemyBoss)
		}
		glyph := enemyGlyph(e)
		fillCollider(ctx, buf, &e.Body.Collider, glyph, fg)
	})
}

var enemyGlyphs = map[config.AIKind]rune{
	config.AIIdle:       'i',
	config.AICrawler:    'c',
	config.AIShooter:    's',
	config.AIHealer:     'h',
	config.AIShielder:   'd',
	config.AIPacman:     'p',
	config.AIHelicopter: 'x',
}

func enemyGlyph(e *component.Enemy) rune {
	if e.IsBullet() {
		return parameter.GlyphEnemyBullet
	}
	g, ok := enemyGlyphs[e.AI.Kind()]
	if !ok {
		return '?'
	}
	if e.IsBoss {
		g -= 'a' - 'A'
	}
	return g
}

// PlayerRenderer draws the player, with the shield outline while invincible
type PlayerRenderer struct{}

func (r *PlayerRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	p := &m.Player
	if p.Invincible() {
		shield := m.Shield()
		inner := shield.Shape.Radius - 1/parameter.CellsPerUnitX
		ctx.EachCell(shield.AABB(), func(sx, sy int, w vmath.Vec2) {
			d := vmath.Distance(w, shield.Position)
			if d <= shield.Shape.Radius && d >= inner {
				buf.SetFgOnly(sx, sy, parameter.GlyphShield, RgbShield)
			}
		})
	}
	fg := RgbPlayer
	if p.LastHit >= 0 && m.GameTime-p.LastHit < hitFlash {
		fg = RgbPlayerHurt
	}
	fillCollider(ctx, buf, &p.Body.Collider, parameter.GlyphPlayer, fg)
}

// DrawingRenderer traces the in-progress gesture, shifting toward red as it nears the weapon range
type DrawingRenderer struct{}

func (r *DrawingRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	d := m.Player.Drawing
	if d == nil {
		return
	}
	limit := m.Player.Active().MaxDistance
	t := 1.0
	if limit > 0 {
		t = min(d.Length()/limit, 1)
	}
	fg := Lerp(RgbDrawing, RgbDrawingFull, t)

	pts := d.Smoothed
	if len(pts) == 0 {
		return
	}
	// Sample each segment at sub-cell steps to keep the trace connected
	step := 0.5 / parameter.CellsPerUnitX
	plot := func(p vmath.Vec2) {
		if sx, sy, ok := ctx.WorldToScreen(p); ok {
			buf.Set(sx, sy, parameter.GlyphDrawing, fg, RGB{}, BlendFgOnly, 1)
		}
	}
	plot(pts[0])
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		n := int(vmath.Distance(a, b)/step) + 1
		for j := 1; j <= n; j++ {
			plot(vmath.Lerp(a, b, float64(j)/float64(n)))
		}
	}
}
