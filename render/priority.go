package render

// RenderPriority determines render order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityFloor
	PriorityWall
	PriorityParticle
	PriorityObject
	PriorityEntities
	PriorityPlayer
	PriorityDrawing
	PriorityUI
	PriorityOverlay
)
