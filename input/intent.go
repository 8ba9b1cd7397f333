package input

import "github.com/lixenwraith/open-island/core"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Ctrl+Q, Ctrl+C
	IntentPause      // p, Esc
	IntentReset      // Ctrl+R
	IntentToggleMute // Ctrl+S
	IntentToggleHUD  // Tab
	IntentResize     // Terminal resize event

	// Gameplay
	IntentMove      // w,a,s,d / h,j,k,l / arrows; refreshes the held timer
	IntentDrawStart // Space or left mouse press
	IntentDrawEnd   // Left mouse release
	IntentCursor    // Mouse motion
)

// Intent is one parsed input action
type Intent struct {
	Type      IntentType
	Direction core.Direction // IntentMove
	X, Y      int            // Screen cell for mouse intents
}
