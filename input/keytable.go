package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/open-island/core"
)

// KeyEntry describes a key's intent; Direction is set for movement keys
type KeyEntry struct {
	Intent    IntentType
	Direction core.Direction
}

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings
	Runes map[rune]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	move := func(d core.Direction) KeyEntry { return KeyEntry{Intent: IntentMove, Direction: d} }
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlQ:  {Intent: IntentQuit},
			tcell.KeyCtrlC:  {Intent: IntentQuit},
			tcell.KeyCtrlR:  {Intent: IntentReset},
			tcell.KeyCtrlS:  {Intent: IntentToggleMute},
			tcell.KeyEscape: {Intent: IntentPause},
			tcell.KeyTab:    {Intent: IntentToggleHUD},
			tcell.KeyLeft:   move(core.Left),
			tcell.KeyRight:  move(core.Right),
			tcell.KeyDown:   move(core.Down),
			tcell.KeyUp:     move(core.Up),
		},
		Runes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'p': {Intent: IntentPause},
			' ': {Intent: IntentDrawStart},
			'a': move(core.Left),
			'd': move(core.Right),
			's': move(core.Down),
			'w': move(core.Up),
			'h': move(core.Left),
			'l': move(core.Right),
			'j': move(core.Down),
			'k': move(core.Up),
		},
	}
}
