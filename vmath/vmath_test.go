package vmath

import (
	"math"
	"testing"
)

func TestSignumTreatsZeroAsPositive(t *testing.T) {
	if Signum(0) != 1 {
		t.Errorf("Expected Signum(+0) = 1, got %v", Signum(0))
	}
	if Signum(math.Copysign(0, -1)) != -1 {
		t.Errorf("Expected Signum(-0) = -1")
	}
	if Sign(0) != 0 {
		t.Errorf("Expected Sign(0) = 0, got %v", Sign(0))
	}
}

func TestNormalizeAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2*math.Pi + 0.5, 0.5},
	}
	for _, tt := range tests {
		if got := NormalizeAngle(tt.in); !ApproxEqual(got, tt.want) {
			t.Errorf("NormalizeAngle(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestClampLen(t *testing.T) {
	v := V(3, 4).ClampLen(1)
	if !ApproxEqual(v.Len(), 1) {
		t.Errorf("Expected unit length, got %v", v.Len())
	}
	short := V(0.3, 0).ClampLen(1)
	if short != V(0.3, 0) {
		t.Errorf("Expected short vector untouched, got %v", short)
	}
	if !Zero.NormalizeOrZero().IsZero() {
		t.Errorf("Expected zero vector to normalize to zero")
	}
}

func TestAabbContainsHalfOpen(t *testing.T) {
	a := Aabb{Min: V(0, 0), Max: V(2, 2)}
	if !a.Contains(V(0, 0)) {
		t.Errorf("Expected min corner inside")
	}
	if a.Contains(V(2, 1)) || a.Contains(V(1, 2)) {
		t.Errorf("Expected max edges outside")
	}
}

func TestAabbExtendUniformCollapses(t *testing.T) {
	a := Aabb{Min: V(0, 0), Max: V(4, 2)}
	shrunk := a.ExtendUniform(-1.5)
	if shrunk.Min.Y != 1 || shrunk.Max.Y != 1 {
		t.Errorf("Expected y to collapse to center 1, got [%v, %v]", shrunk.Min.Y, shrunk.Max.Y)
	}
	if shrunk.Min.X != 1.5 || shrunk.Max.X != 2.5 {
		t.Errorf("Expected x shrunk to [1.5, 2.5], got [%v, %v]", shrunk.Min.X, shrunk.Max.X)
	}
}

func TestAabbFromPoints(t *testing.T) {
	box := AabbFromPoints([]Vec2{V(1, 5), V(-2, 3), V(4, -1)})
	if box.Min != V(-2, -1) || box.Max != V(4, 5) {
		t.Errorf("Expected [-2,-1]..[4,5], got %v..%v", box.Min, box.Max)
	}
	if AabbFromPoints(nil) != (Aabb{}) {
		t.Errorf("Expected zero box for no points")
	}
}

func TestCardinalSplinePassesThroughKnots(t *testing.T) {
	knots := []Vec2{V(0, 0), V(1, 2), V(3, 1), V(4, 4)}
	const samples = 5
	out := CardinalSpline(knots, 0.5, samples)

	if want := (len(knots)-1)*samples + 1; len(out) != want {
		t.Fatalf("Expected %d samples, got %d", want, len(out))
	}
	for i, k := range knots {
		if got := out[i*samples]; got.Sub(k).Len() > Epsilon {
			t.Errorf("Expected knot %d at %v, got %v", i, k, got)
		}
	}
}

func TestCardinalSplineShortInputCopies(t *testing.T) {
	in := []Vec2{V(1, 1), V(2, 2)}
	out := CardinalSpline(in, 0.5, 8)
	if len(out) != 2 {
		t.Fatalf("Expected a copy of 2 points, got %d", len(out))
	}
	out[0] = V(9, 9)
	if in[0] != V(1, 1) {
		t.Errorf("Expected input untouched by edits to the copy")
	}
}

func TestDistanceToChain(t *testing.T) {
	chain := []Vec2{V(0, 0), V(4, 0), V(4, 4)}
	tests := []struct {
		p    Vec2
		want float64
	}{
		{V(2, 1), 1},
		{V(5, 2), 1},
		{V(-3, 0), 3},
		{V(4, 6), 2},
	}
	for _, tt := range tests {
		if got := DistanceToChain(tt.p, chain); !ApproxEqual(got, tt.want) {
			t.Errorf("DistanceToChain(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}

	if !math.IsInf(DistanceToChain(V(1, 1), nil), 1) {
		t.Errorf("Expected empty chain to be infinitely far")
	}
	if got := DistanceToChain(V(3, 4), []Vec2{V(0, 0)}); !ApproxEqual(got, 5) {
		t.Errorf("Expected single point distance 5, got %v", got)
	}
	if got := ChainLength(chain); !ApproxEqual(got, 8) {
		t.Errorf("Expected chain length 8, got %v", got)
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical streams at step %d", i)
		}
	}

	r := NewFastRand(0)
	for i := 0; i < 1000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64 out of [0,1): %v", f)
		}
		if v := r.Range(2, 3); v < 2 || v >= 3 {
			t.Fatalf("Range out of [2,3): %v", v)
		}
		if n := r.Intn(5); n < 0 || n >= 5 {
			t.Fatalf("Intn out of [0,5): %d", n)
		}
	}
	if r.Range(3, 3) != 3 {
		t.Errorf("Expected empty range to return lo")
	}
}

func TestFastRandInAabb(t *testing.T) {
	r := NewFastRand(99)
	box := Aabb{Min: V(-1, 2), Max: V(1, 5)}
	for i := 0; i < 500; i++ {
		if p := r.InAabb(box); !box.Contains(p) {
			t.Fatalf("Expected point inside box, got %v", p)
		}
		if p := r.InCircle(V(1, 1), 2); Distance(p, V(1, 1)) > 2 {
			t.Fatalf("Expected point inside circle, got %v", p)
		}
	}
}
