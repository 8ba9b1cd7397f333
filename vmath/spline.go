package vmath

// CardinalSpline samples a cardinal Hermite spline through points
// Tangents are tension*(p[i+1]-p[i-1]) with one-sided tangents at the ends
// Each interval yields samples points starting at its left knot, followed by the final knot
// Fewer than 3 points returns a copy of the input
func CardinalSpline(points []Vec2, tension float64, samples int) []Vec2 {
	n := len(points)
	if n < 3 {
		return append([]Vec2(nil), points...)
	}
	if samples < 1 {
		samples = 1
	}

	tangents := make([]Vec2, n)
	tangents[0] = points[1].Sub(points[0]).Scale(tension)
	tangents[n-1] = points[n-1].Sub(points[n-2]).Scale(tension)
	for i := 1; i < n-1; i++ {
		tangents[i] = points[i+1].Sub(points[i-1]).Scale(tension)
	}

	out := make([]Vec2, 0, (n-1)*samples+1)
	for i := 0; i < n-1; i++ {
		p0, p1 := points[i], points[i+1]
		m0, m1 := tangents[i], tangents[i+1]
		for s := 0; s < samples; s++ {
			t := float64(s) / float64(samples)
			out = append(out, hermite(p0, m0, p1, m1, t))
		}
	}
	return append(out, points[n-1])
}

func hermite(p0, m0, p1, m1 Vec2, t float64) Vec2 {
	t2 := t * t
	t3 := t2 * t
	h00 := 2*t3 - 3*t2 + 1
	h10 := t3 - 2*t2 + t
	h01 := -2*t3 + 3*t2
	h11 := t3 - t2
	return p0.Scale(h00).Add(m0.Scale(h10)).Add(p1.Scale(h01)).Add(m1.Scale(h11))
}
