package status

import "sync/atomic"

// Metric keys written by the simulation
const (
	KeyTicks          = "engine.ticks"
	KeyEnemiesAlive   = "enemy.alive"
	KeyEnemiesKilled  = "enemy.killed"
	KeyEnemiesSpawned = "enemy.spawned"
	KeyRoomsUnlocked  = "room.unlocked"
	KeyRoomsSquashed  = "room.squashed"
	KeyParticles      = "particle.count"
	KeyGestures       = "gesture.resolved"
	KeyDifficulty     = "game.difficulty"
	KeyWeapon         = "player.weapon"
)

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Int returns the current value of an int metric, 0 if never written
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Float returns the current value of a float metric, 0 if never written
func (r *Registry) Float(key string) float64 {
	if !r.Floats.Has(key) {
		return 0
	}
	return r.Floats.Get(key).Get()
}

// Attrs flattens every metric into slog key/value pairs, ints then floats then strings
func (r *Registry) Attrs() []any {
	attrs := make([]any, 0, 2*r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		attrs = append(attrs, key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		attrs = append(attrs, key, v.Get())
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		attrs = append(attrs, key, v.Load())
	})
	return attrs
}
