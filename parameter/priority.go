package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityDifficulty = 10
	PriorityCompress   = 20  // Before controls, rooms settle before the player moves
	PriorityControls   = 30  // Movement and gesture resolution
	PriorityEnemyAI    = 40  // After controls, sees the updated player
	PriorityMinionAI   = 50
	PriorityCollision  = 60  // After all movement
	PriorityParticles  = 70  // Passive wall particles
	PriorityDeath      = 80  // After collisions, reconciles collections
	PriorityCamera     = 90  // After game logic
	PrioritySpawn      = 100 // Last mutation, staged enemies join the live set
	PriorityStatus     = 1000
)
