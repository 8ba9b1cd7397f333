package core

// ID is an opaque entity identifier, unique within a session
type ID uint64

// IDGenerator issues monotonically increasing IDs
type IDGenerator struct {
	next ID
}

// Next returns a fresh ID
func (g *IDGenerator) Next() ID {
	id := g.next
	g.next++
	return id
}

// Peek returns the ID the next call to Next will issue
func (g *IDGenerator) Peek() ID {
	return g.next
}
