package parameter

import "time"

// Game Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// TickInterval is the fixed simulation step
	TickInterval = time.Second / 60

	// TickSeconds is TickInterval expressed in simulation seconds
	TickSeconds = 1.0 / 60.0

	// MaxTicksPerFrame bounds catch-up after a stall so the loop never spirals
	MaxTicksPerFrame = 5
)

// Queue & Resource Limits
const (
	// EventQueueSize is the fixed capacity of the sound event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// MaxParticles caps live particles; spawns beyond the cap are dropped
	MaxParticles = 4096
)

// RootRoomSlot is the arena slot of the starting room
const RootRoomSlot = 0
