// Package system holds the per-tick stages of the simulation pipeline
package system

import (
	"github.com/lixenwraith/open-island/config"
	"github.com/lixenwraith/open-island/engine"
)

// Install registers the full pipeline on m
func Install(m *engine.Model) {
	m.AddSystem(NewDifficultySystem())
	m.AddSystem(NewCompressSystem())
	m.AddSystem(NewControlsSystem())
	m.AddSystem(NewEnemyAISystem())
	m.AddSystem(NewMinionAISystem())
	m.AddSystem(NewCollisionSystem())
	m.AddSystem(NewPassiveParticlesSystem())
	m.AddSystem(NewDeathSystem(m.Status))
	m.AddSystem(NewCameraSystem())
	m.AddSystem(NewSpawnSystem(m.Status))
	m.AddSystem(NewStatusSystem(m.Status))
}

// NewGame builds a model with every system installed
func NewGame(cfg *config.Config, opts ...engine.Option) *engine.Model {
	m := engine.NewModel(cfg, opts...)
	Install(m)
	return m
}
