package vmath

import "math"

// ChainLength sums segment lengths of a polyline
func ChainLength(points []Vec2) float64 {
	var total float64
	for i := 1; i < len(points); i++ {
		total += Distance(points[i-1], points[i])
	}
	return total
}

// DistanceToSegment returns the distance from p to segment ab
func DistanceToSegment(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	l := ab.LenSq()
	if l == 0 {
		return Distance(p, a)
	}
	t := Clamp(p.Sub(a).Dot(ab)/l, 0, 1)
	return Distance(p, a.Add(ab.Scale(t)))
}

// DistanceToChain returns the minimum distance from p to any segment of the polyline
// A single point chain degenerates to point distance; an empty chain is infinitely far
func DistanceToChain(p Vec2, points []Vec2) float64 {
	switch len(points) {
	case 0:
		return math.Inf(1)
	case 1:
		return Distance(p, points[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(points); i++ {
		if d := DistanceToSegment(p, points[i-1], points[i]); d < best {
			best = d
		}
	}
	return best
}
