package engine

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/core"
)

// EnemyStore is the live enemy collection keyed by ID
// Iteration follows insertion order; a removed and reinserted enemy moves to the end
// Removal tombstones the dense slot found through the index map; tombstones are compacted outside iteration
type EnemyStore struct {
	slots     []*component.Enemy
	index     map[core.ID]int
	dead      int
	iterating int
}

func NewEnemyStore() *EnemyStore {
	return &EnemyStore{
		slots: make([]*component.Enemy, 0, 64),
		index: make(map[core.ID]int),
	}
}

// Insert adds or replaces an enemy; a replacement keeps its position
func (s *EnemyStore) Insert(e *component.Enemy) {
	if i, exists := s.index[e.ID]; exists {
		s.slots[i] = e
		return
	}
	s.index[e.ID] = len(s.slots)
	s.slots = append(s.slots, e)
}

// Get resolves an ID; a miss is a normal outcome for weak references
func (s *EnemyStore) Get(id core.ID) (*component.Enemy, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	return s.slots[i], true
}

// Remove takes the enemy out of the collection in O(1)
func (s *EnemyStore) Remove(id core.ID) (*component.Enemy, bool) {
	i, ok := s.index[id]
	if !ok {
		return nil, false
	}
	e := s.slots[i]
	s.slots[i] = nil
	delete(s.index, id)
	s.dead++
	s.maybeCompact()
	return e, true
}

// maybeCompact squeezes tombstones once they outnumber live enemies
func (s *EnemyStore) maybeCompact() {
	if s.iterating > 0 || s.dead <= len(s.index) {
		return
	}
	live := s.slots[:0]
	for _, e := range s.slots {
		if e == nil {
			continue
		}
		s.index[e.ID] = len(live)
		live = append(live, e)
	}
	clear(s.slots[len(live):])
	s.slots = live
	s.dead = 0
}

// IDs returns a snapshot of live IDs in iteration order
func (s *EnemyStore) IDs() []core.ID {
	out := make([]core.ID, 0, len(s.index))
	for _, e := range s.slots {
		if e != nil {
			out = append(out, e.ID)
		}
	}
	return out
}

// Each visits enemies in iteration order
// Enemies inserted by fn are visited too; removed ones are skipped
func (s *EnemyStore) Each(fn func(*component.Enemy)) {
	s.iterating++
	defer func() {
		s.iterating--
		s.maybeCompact()
	}()
	for i := 0; i < len(s.slots); i++ {
		if e := s.slots[i]; e != nil {
			fn(e)
		}
	}
}

// All returns the enemies in iteration order
func (s *EnemyStore) All() []*component.Enemy {
	out := make([]*component.Enemy, 0, len(s.index))
	for _, e := range s.slots {
		if e != nil {
			out = append(out, e)
		}
	}
	return out
}

// Retain keeps enemies for which keep returns true - O(n) single pass
func (s *EnemyStore) Retain(keep func(*component.Enemy) bool) {
	kept := s.slots[:0]
	for _, e := range s.slots {
		if e == nil {
			continue
		}
		if keep(e) {
			s.index[e.ID] = len(kept)
			kept = append(kept, e)
		} else {
			delete(s.index, e.ID)
		}
	}
	clear(s.slots[len(kept):])
	s.slots = kept
	s.dead = 0
}

func (s *EnemyStore) Len() int {
	return len(s.index)
}

func (s *EnemyStore) Clear() {
	clear(s.slots)
	s.slots = s.slots[:0]
	clear(s.index)
	s.dead = 0
}
