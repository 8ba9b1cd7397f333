package event

import (
	"testing"

	"github.com/lixenwraith/open-island/parameter"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	q.Push(SoundHit)
	q.Push(SoundKill)
	q.Push(SoundExpand)

	if q.Len() != 3 {
		t.Fatalf("Expected 3 pending, got %d", q.Len())
	}
	got := q.Drain()
	want := []Sound{SoundHit, SoundKill, SoundExpand}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Position %d: expected %v, got %v", i, want[i], got[i])
		}
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Error("Expected queue empty after drain")
	}
}

func TestQueueOverflowDropsOldest(t *testing.T) {
	q := NewQueue()
	q.Push(SoundDrawing)
	for i := 0; i < parameter.EventQueueSize; i++ {
		q.Push(SoundBounce)
	}

	got := q.Drain()
	if len(got) != parameter.EventQueueSize {
		t.Fatalf("Expected %d retained, got %d", parameter.EventQueueSize, len(got))
	}
	for _, s := range got {
		if s == SoundDrawing {
			t.Fatal("Expected the oldest cue overwritten")
		}
	}
}

func TestQueueReset(t *testing.T) {
	q := NewQueue()
	q.Push(SoundHit)
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Expected empty queue after reset, got %d", q.Len())
	}
}

func TestSoundNames(t *testing.T) {
	for i := 0; i < SoundCount; i++ {
		s := Sound(i)
		if s.String() == "" {
			t.Errorf("Expected a name for sound %d", i)
		}
	}
	if !SoundHelicopter.Looped() || SoundHit.Looped() {
		t.Error("Expected only continuous cues to loop")
	}
	if Sound(200).String() != "Sound(200)" {
		t.Errorf("Expected fallback name, got %s", Sound(200).String())
	}
}
