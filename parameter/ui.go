package parameter

import "time"

// Layout & Margins
const (
	// TopMargin for the HUD line
	TopMargin = 1

	// HUDFieldWidth pads each HUD field to a stable width
	HUDFieldWidth = 12
)

// Held-key emulation
// Terminals deliver key repeats rather than key-up events, so a key counts as held until it goes quiet
const (
	// KeyHoldTimeout is the silence after which a movement key is considered released
	KeyHoldTimeout = 150 * time.Millisecond
)

// UI Symbols
const (
	AudioStr = "♫ "
)

// Glyphs
const (
	GlyphPlayer      = '@'
	GlyphShield      = 'o'
	GlyphWall        = '█'
	GlyphWallCrack   = '▓'
	GlyphBarrel      = '#'
	GlyphPacman1Up   = '+'
	GlyphUpgrade     = '*'
	GlyphMinion      = '•'
	GlyphParticle    = '·'
	GlyphDrawing     = '∙'
	GlyphEnemyBullet = '∘'
)
