package system

import (
	"math"

	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
)

// DifficultySystem ramps raw difficulty over time once the player has left the starting room
type DifficultySystem struct{}

func NewDifficultySystem() *DifficultySystem {
	return &DifficultySystem{}
}

func (s *DifficultySystem) Name() string {
	return "difficulty"
}

func (s *DifficultySystem) Priority() int {
	return parameter.PriorityDifficulty
}

func (s *DifficultySystem) Update(m *engine.Model, dt float64) {
	if m.InStartingRoom() {
		return
	}
	m.DifficultyRaw += m.Config.Difficulty.TimeScaling * dt
	m.Difficulty = SteppedDifficulty(m.DifficultyRaw)
}

// SteppedDifficulty quantizes raw difficulty down to whole budget steps
func SteppedDifficulty(raw float64) float64 {
	return math.Floor(raw/parameter.DifficultyStep) * parameter.DifficultyStep
}
