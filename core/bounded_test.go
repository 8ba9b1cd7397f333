package core

import (
	"math"
	"testing"
)

func TestNewBoundedNormalizesRange(t *testing.T) {
	b := NewBounded(5.0, 10.0, 0.0)
	if b.Min() != 0 || b.Max() != 10 {
		t.Errorf("Expected range [0, 10], got [%v, %v]", b.Min(), b.Max())
	}
	if b.Value() != 5 {
		t.Errorf("Expected value 5, got %v", b.Value())
	}
}

func TestBoundedClamps(t *testing.T) {
	b := NewBoundedMax(100.0)

	b.Change(-30)
	if b.Value() != 70 {
		t.Errorf("Expected 70, got %v", b.Value())
	}

	b.Change(500)
	if !b.IsMax() || b.Value() != 100 {
		t.Errorf("Expected clamp to max, got %v", b.Value())
	}

	b.Change(-500)
	if !b.IsMin() || b.IsAboveMin() {
		t.Errorf("Expected clamp to min, got %v", b.Value())
	}
}

func TestBoundedNaNCollapsesToFloor(t *testing.T) {
	b := NewBounded(3.0, 1.0, 5.0)
	b.Set(math.NaN())
	if b.Value() != 1 {
		t.Errorf("Expected NaN to collapse to min, got %v", b.Value())
	}
}

func TestBoundedRatio(t *testing.T) {
	b := NewBounded(0.0, 2.0, 6.0)

	b.SetRatio(0.5)
	if b.Value() != 4 {
		t.Errorf("Expected 4 at ratio 0.5, got %v", b.Value())
	}
	if b.Ratio() != 0.5 {
		t.Errorf("Expected ratio 0.5, got %v", b.Ratio())
	}

	b.SetRatio(1)
	if !b.IsMax() {
		t.Errorf("Expected ratio 1 to land exactly on max, got %v", b.Value())
	}

	b.SetRatio(-2)
	if !b.IsMin() {
		t.Errorf("Expected negative ratio to clamp to min, got %v", b.Value())
	}

	zero := NewBoundedZero(0.0)
	if zero.Ratio() != 0 {
		t.Errorf("Expected zero-width ratio 0, got %v", zero.Ratio())
	}
}

func TestBoundedIntegers(t *testing.T) {
	b := NewBoundedZero(3)
	b.Change(2)
	b.Change(2)
	if b.Value() != 3 {
		t.Errorf("Expected int clamp to 3, got %d", b.Value())
	}
}

func TestIDGenerator(t *testing.T) {
	var g IDGenerator
	if g.Peek() != 0 {
		t.Errorf("Expected first ID 0, got %d", g.Peek())
	}
	a, b := g.Next(), g.Next()
	if a == b || b != a+1 {
		t.Errorf("Expected monotonic IDs, got %d then %d", a, b)
	}
	if g.Peek() != b+1 {
		t.Errorf("Expected peek %d, got %d", b+1, g.Peek())
	}
}

func TestDirectionOpposite(t *testing.T) {
	for _, d := range Directions {
		if d.Opposite().Opposite() != d {
			t.Errorf("Expected %v to round-trip through Opposite", d)
		}
		if d.Opposite() == d {
			t.Errorf("Expected %v opposite to differ", d)
		}
	}
	if Left.Opposite() != Right || Up.Opposite() != Down {
		t.Errorf("Expected left/right and up/down pairs")
	}
}
