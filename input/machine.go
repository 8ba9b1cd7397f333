// Package input turns tcell events into per-tick player controls
package input

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/open-island/core"
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// Projector maps a screen cell to world space
type Projector interface {
	ScreenToWorld(sx, sy int) vmath.Vec2
}

// Machine parses tcell events into intents and tracks held state between ticks
// Terminals report key repeats, not releases, so keys are held until KeyHoldTimeout of silence
type Machine struct {
	keyTable *KeyTable

	held      [4]time.Time
	drawKey   time.Time
	mouseDown bool

	cursorX, cursorY int
	hasCursor        bool
}

// NewMachine creates a new input machine
func NewMachine() *Machine {
	return &Machine{keyTable: DefaultKeyTable()}
}

// Reset releases every held key and the mouse button
func (m *Machine) Reset() {
	m.held = [4]time.Time{}
	m.drawKey = time.Time{}
	m.mouseDown = false
}

// Process parses a tcell event at time now and returns an Intent
// Returns nil for events with no meaning
func (m *Machine) Process(ev tcell.Event, now time.Time) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	case *tcell.EventKey:
		return m.processKey(ev, now)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey, now time.Time) *Intent {
	var (
		entry KeyEntry
		ok    bool
	)
	r := unicode.ToLower(ev.Rune())
	switch {
	case ev.Key() == tcell.KeyRune && ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z':
		// Some terminals report Ctrl+letter as a modified rune
		entry, ok = m.keyTable.SpecialKeys[tcell.KeyCtrlA+tcell.Key(r-'a')]
	case ev.Key() == tcell.KeyRune:
		entry, ok = m.keyTable.Runes[r]
	default:
		entry, ok = m.keyTable.SpecialKeys[ev.Key()]
	}
	if !ok {
		return nil
	}

	switch entry.Intent {
	case IntentMove:
		m.held[entry.Direction] = now
		return &Intent{Type: IntentMove, Direction: entry.Direction}
	case IntentDrawStart:
		m.drawKey = now
		return &Intent{Type: IntentDrawStart, X: m.cursorX, Y: m.cursorY}
	}
	return &Intent{Type: entry.Intent}
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	x, y := ev.Position()
	m.cursorX, m.cursorY = x, y
	m.hasCursor = true

	down := ev.Buttons()&tcell.Button1 != 0
	switch {
	case down && !m.mouseDown:
		m.mouseDown = true
		return &Intent{Type: IntentDrawStart, X: x, Y: y}
	case !down && m.mouseDown:
		m.mouseDown = false
		return &Intent{Type: IntentDrawEnd, X: x, Y: y}
	}
	return &Intent{Type: IntentCursor, X: x, Y: y}
}

// heldAt reports whether a key refreshed at t is still held at now
func heldAt(t, now time.Time) bool {
	return !t.IsZero() && now.Sub(t) < parameter.KeyHoldTimeout
}

// Drawing reports whether a gesture is being held
func (m *Machine) Drawing(now time.Time) bool {
	return m.hasCursor && (m.mouseDown || heldAt(m.drawKey, now))
}

// Cursor returns the last mouse cell, false before any mouse event
func (m *Machine) Cursor() (int, int, bool) {
	return m.cursorX, m.cursorY, m.hasCursor
}

// Controls assembles the tick input; opposite keys cancel
func (m *Machine) Controls(now time.Time, proj Projector) engine.PlayerControls {
	var dir vmath.Vec2
	for _, d := range core.Directions {
		if !heldAt(m.held[d], now) {
			continue
		}
		switch d {
		case core.Left:
			dir.X--
		case core.Right:
			dir.X++
		case core.Down:
			dir.Y--
		case core.Up:
			dir.Y++
		}
	}

	c := engine.PlayerControls{MoveDir: dir}
	if m.Drawing(now) {
		p := proj.ScreenToWorld(m.cursorX, m.cursorY)
		c.Drawing = &p
	}
	return c
}

// CursorWorld returns the world position under the mouse, or fallback before any mouse event
func (m *Machine) CursorWorld(proj Projector, fallback vmath.Vec2) vmath.Vec2 {
	if !m.hasCursor {
		return fallback
	}
	return proj.ScreenToWorld(m.cursorX, m.cursorY)
}
