package render

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/status"
)

// putText writes s at (x, y) honoring wide runes, clipped to maxX; returns the next free column
func putText(buf *RenderBuffer, x, y, maxX int, s string, fg, bg RGB) int {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		buf.SetWithBg(x, y, r, fg, bg)
		// Fill the second column to avoid rendering artifacts
		for i := 1; i < w; i++ {
			buf.SetWithBg(x+i, y, ' ', fg, bg)
		}
		x += w
	}
	return x
}

// padField pads a HUD field to a stable display width
func padField(s string) string {
	return runewidth.FillRight(runewidth.Truncate(s, parameter.HUDFieldWidth, "…"), parameter.HUDFieldWidth)
}

// StatusBarRenderer draws the top line: health, weapon, score and progression counters
type StatusBarRenderer struct {
	Hidden bool
}

func (r *StatusBarRenderer) IsVisible() bool { return !r.Hidden }

func (r *StatusBarRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	if ctx.GameYOffset < 1 {
		return
	}
	width := ctx.ScreenWidth
	for x := 0; x < width; x++ {
		buf.SetWithBg(x, 0, ' ', RgbStatusBar, RGBBlack)
	}

	// Right-aligned flags reserve their space first
	var flags string
	if ctx.AudioOn {
		flags += parameter.AudioStr
	}
	if ctx.IsPaused {
		flags += "PAUSED "
	}
	limit := max(width-runewidth.StringWidth(flags), 0)
	putText(buf, limit, 0, width, flags, RgbStatusDim, RGBBlack)

	health := m.Player.Health
	hpColor := Lerp(RgbHealthLow, RgbHealthHigh, health.Ratio())

	x := 0
	x = putText(buf, x, 0, limit, padField(fmt.Sprintf("HP %.0f/%.0f", health.Value(), health.Max())), hpColor, RGBBlack)

	weapon := m.Player.Active()
	cd := ""
	if weapon.Cooldown.IsAboveMin() {
		cd = fmt.Sprintf(" %.1fs", weapon.Cooldown.Value())
	}
	x = putText(buf, x, 0, limit, padField(m.Player.ActiveWeapon.String()+cd), RgbDrawing, RGBBlack)

	fields := []string{
		fmt.Sprintf("Score %d", m.Score),
		fmt.Sprintf("x%.2f", m.ScoreMultiplier),
		fmt.Sprintf("Lvl %.1f", m.Difficulty),
		fmt.Sprintf("Rooms %d", m.RoomsCleared),
		fmt.Sprintf("Boss %d", m.BossesKilled),
		fmt.Sprintf("Foes %d", m.Status.Int(status.KeyEnemiesAlive)),
		fmt.Sprintf("Kills %d", m.Status.Int(status.KeyEnemiesKilled)),
	}
	for _, f := range fields {
		x = putText(buf, x, 0, limit, padField(f), RgbStatusBar, RGBBlack)
	}
}

// GameOverRenderer centers a banner once the player is dead
type GameOverRenderer struct{}

func (r *GameOverRenderer) Render(ctx RenderContext, m *engine.Model, buf *RenderBuffer) {
	if m.Player.Alive() {
		return
	}
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score %d  rooms %d  bosses %d", m.Score, m.RoomsCleared, m.BossesKilled),
		"ctrl+r to restart, q to quit",
	}
	cy := ctx.GameYOffset + ctx.ViewportHeight/2 - len(lines)/2
	for i, line := range lines {
		w := runewidth.StringWidth(line)
		x := max((ctx.ScreenWidth-w)/2, 0)
		putText(buf, x, cy+i, ctx.ScreenWidth, line, RgbGameOver, RGBBlack)
	}
}
