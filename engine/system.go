package engine

// System is one stage of the per-tick pipeline
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update(m *Model, dt float64)
}

// AddSystem registers a system, keeping the pipeline sorted by priority
// Equal priorities keep registration order
func (m *Model) AddSystem(system System) {
	m.systems = append(m.systems, system)

	// Sort by priority (insertion, small N)
	for i := len(m.systems) - 1; i > 0; i-- {
		if m.systems[i-1].Priority() <= m.systems[i].Priority() {
			break
		}
		m.systems[i-1], m.systems[i] = m.systems[i], m.systems[i-1]
	}
}

// Systems returns a copy of the registered pipeline
func (m *Model) Systems() []System {
	out := make([]System, len(m.systems))
	copy(out, m.systems)
	return out
}
