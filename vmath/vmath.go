package vmath

import (
	"math"
)

// Epsilon is the tolerance used for approximate float comparisons in the simulation
const Epsilon = 1e-6

// --- Arithmetic ---

// ApproxEqual reports whether a and b differ by at most Epsilon
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// Signum returns -1 for negatives and 1 otherwise, matching float signum where +0 is positive
func Signum(x float64) float64 {
	if math.Signbit(x) {
		return -1
	}
	return 1
}

// Fract returns the fractional part of a non-negative x
func Fract(x float64) float64 {
	return x - math.Floor(x)
}

// Finite reports whether x is neither NaN nor infinite
func Finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// --- Trigonometry ---

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// NormalizeAngle wraps an angle into (-pi, pi]
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	} else if a > math.Pi {
		a -= 2 * math.Pi
	}
	return a
}
