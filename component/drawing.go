package component

import (
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// DrawPoint is one captured cursor sample
type DrawPoint struct {
	Position vmath.Vec2
	Time     float64
}

// Drawing is an in-progress gesture
// Length is measured along Raw; Smoothed is always rebuilt from deduplicated Raw
type Drawing struct {
	Raw      []DrawPoint
	Smoothed []vmath.Vec2
}

// NewDrawing starts a gesture at the player position
func NewDrawing(start vmath.Vec2, time float64) *Drawing {
	return &Drawing{Raw: []DrawPoint{{Position: start, Time: time}}}
}

// Length returns the raw polyline length
func (d *Drawing) Length() float64 {
	var total float64
	for i := 1; i < len(d.Raw); i++ {
		total += vmath.Distance(d.Raw[i-1].Position, d.Raw[i].Position)
	}
	return total
}

// Remaining returns how much more length fits under maxDistance
func (d *Drawing) Remaining(maxDistance float64) float64 {
	return maxDistance - d.Length()
}

// Append adds a point, shortening its segment so the raw length stays within maxDistance
// Returns false when no length remains
func (d *Drawing) Append(p DrawPoint, maxDistance float64) bool {
	remaining := d.Remaining(maxDistance)
	if !(remaining > 0) {
		return false
	}
	last := d.Raw[len(d.Raw)-1].Position
	p.Position = last.Add(p.Position.Sub(last).ClampLen(remaining))
	d.Raw = append(d.Raw, p)
	d.Smooth()
	return true
}

// Smooth rebuilds the smoothed polyline from the raw points
func (d *Drawing) Smooth() {
	points := make([]vmath.Vec2, 0, len(d.Raw))
	for _, p := range d.Raw {
		if n := len(points); n > 0 && points[n-1].Sub(p.Position).LenSq() < parameter.DrawDedupDistSq {
			continue
		}
		points = append(points, p.Position)
	}
	d.Smoothed = vmath.CardinalSpline(points, parameter.SplineTension, parameter.SplineSamples)
}

// Last returns the final smoothed point and the direction of the final segment
// ok is false with fewer than two smoothed points
func (d *Drawing) Last() (last, dir vmath.Vec2, ok bool) {
	n := len(d.Smoothed)
	if n < 2 {
		return vmath.Zero, vmath.Zero, false
	}
	last = d.Smoothed[n-1]
	return last, last.Sub(d.Smoothed[n-2]).NormalizeOrZero(), true
}
