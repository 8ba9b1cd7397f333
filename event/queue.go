package event

import (
	"github.com/lixenwraith/open-island/parameter"
)

// Queue is a fixed-capacity FIFO ring buffer of sound cues
// Single producer and single consumer: the simulation pushes during a tick, the presentation layer drains after it
//
// Overflow: Oldest events overwritten when full
type Queue struct {
	events [parameter.EventQueueSize]Sound
	head   uint64 // Read index
	tail   uint64 // Write index
}

func NewQueue() *Queue {
	return &Queue{}
}

// Push appends a cue, discarding the oldest one if full
func (q *Queue) Push(s Sound) {
	q.events[q.tail&parameter.EventBufferMask] = s
	q.tail++
	if q.tail-q.head > parameter.EventQueueSize {
		q.head = q.tail - parameter.EventQueueSize
	}
}

// Drain returns all pending cues in FIFO order and empties the queue
func (q *Queue) Drain() []Sound {
	n := q.tail - q.head
	if n == 0 {
		return nil
	}
	out := make([]Sound, 0, n)
	for i := q.head; i < q.tail; i++ {
		out = append(out, q.events[i&parameter.EventBufferMask])
	}
	q.head = q.tail
	return out
}

// Len returns pending cue count
func (q *Queue) Len() int {
	return int(q.tail - q.head)
}

// Reset drops pending cues
func (q *Queue) Reset() {
	q.head, q.tail = 0, 0
}
