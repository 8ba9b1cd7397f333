package core

// Number is the set of scalar types a Bounded can hold
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Bounded is a scalar clamped to [min, max]
// Used for health, cooldowns, invincibility and charge timers
type Bounded[T Number] struct {
	value T
	min   T
	max   T
}

// NewBounded creates a bounded value, normalizing an inverted range and clamping the initial value
func NewBounded[T Number](value, min, max T) Bounded[T] {
	if max < min {
		min, max = max, min
	}
	b := Bounded[T]{min: min, max: max}
	b.Set(value)
	return b
}

// NewBoundedMax creates a value in [0, max] starting full
func NewBoundedMax[T Number](max T) Bounded[T] {
	return NewBounded(max, 0, max)
}

// NewBoundedZero creates a value in [0, max] starting empty
func NewBoundedZero[T Number](max T) Bounded[T] {
	return NewBounded(0, 0, max)
}

func (b Bounded[T]) Value() T { return b.value }
func (b Bounded[T]) Min() T   { return b.min }
func (b Bounded[T]) Max() T   { return b.max }

// Set assigns an absolute value, clamped into range
func (b *Bounded[T]) Set(v T) {
	switch {
	case v < b.min:
		b.value = b.min
	case v > b.max:
		b.value = b.max
	case v != v:
		// NaN collapses to floor
		b.value = b.min
	default:
		b.value = v
	}
}

// Change applies a relative delta, clamped into range
func (b *Bounded[T]) Change(delta T) {
	b.Set(b.value + delta)
}

// SetRatio places the value at min + ratio*(max-min); ratio outside [0,1] still clamps
func (b *Bounded[T]) SetRatio(ratio float64) {
	span := float64(b.max - b.min)
	b.Set(b.min + T(span*ratio))
	if ratio >= 1 {
		b.value = b.max
	}
}

// Ratio returns the normalized position in range, 0 for a zero-width range
func (b Bounded[T]) Ratio() float64 {
	span := float64(b.max - b.min)
	if span == 0 {
		return 0
	}
	return float64(b.value-b.min) / span
}

func (b Bounded[T]) IsMin() bool      { return b.value <= b.min }
func (b Bounded[T]) IsMax() bool      { return b.value >= b.max }
func (b Bounded[T]) IsAboveMin() bool { return b.value > b.min }
