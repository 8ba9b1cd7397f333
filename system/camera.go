package system

import (
	"github.com/lixenwraith/open-island/engine"
	"github.com/lixenwraith/open-island/parameter"
)

// CameraSystem eases the view center toward the player
// The lone starting room stays framed, and the view holds still while a gesture is drawn
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (s *CameraSystem) Name() string {
	return "camera"
}

func (s *CameraSystem) Priority() int {
	return parameter.PriorityCamera
}

func (s *CameraSystem) Update(m *engine.Model, dt float64) {
	if m.InStartingRoom() || m.Player.Drawing != nil {
		return
	}
	delta := m.Player.Position().Sub(m.Camera.Center)
	m.Camera.Center = m.Camera.Center.Add(delta.Scale(dt / parameter.CameraLag))
}
