package render

import (
	"github.com/lixenwraith/open-island/component"
	"github.com/lixenwraith/open-island/config"
)

// Base palette (Tokyo Night)
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{26, 27, 38}
	RgbFloor      = RGB{36, 40, 59}
	RgbFloorBoss  = RGB{48, 30, 42}
	RgbWall       = RGB{86, 95, 137}
	RgbWallBreak  = RGB{224, 175, 104}
	RgbStatusBar  = RGB{192, 202, 245}
	RgbStatusDim  = RGB{115, 122, 162}
	RgbHealthHigh = RGB{158, 206, 106}
	RgbHealthLow  = RGB{247, 118, 142}
	RgbGameOver   = RGB{247, 118, 142}
)

// Entity colors
var (
	RgbPlayer      = RGB{255, 255, 255}
	RgbPlayerHurt  = RGB{255, 120, 120}
	RgbShield      = RGB{125, 207, 255}
	RgbMinion      = RGB{187, 154, 247}
	RgbBarrel      = RGB{255, 158, 100}
	RgbPacman1Up   = RGB{255, 255, 0}
	RgbUpgrade     = RGB{115, 218, 202}
	RgbUpgradeGun  = RGB{255, 199, 119}
	RgbDrawing     = RGB{255, 165, 0}
	RgbDrawingFull = RGB{255, 80, 80}
	RgbEnemyBoss   = RGB{255, 0, 90}
	RgbEnemyHit    = RGB{255, 255, 255}
)

var enemyColors = map[config.AIKind]RGB{
	config.AIIdle:       {169, 177, 214},
	config.AIBullet:     {255, 117, 127},
	config.AICrawler:    {247, 118, 142},
	config.AIShooter:    {255, 158, 100},
	config.AIHealer:     {158, 206, 106},
	config.AIShielder:   {122, 162, 247},
	config.AIPacman:     {255, 230, 0},
	config.AIHelicopter: {187, 154, 247},
}

var particleColors = [...]RGB{
	component.ParticleDraw:          {255, 165, 0},
	component.ParticleBounce:        {169, 177, 214},
	component.ParticleDamage:        {247, 118, 142},
	component.ParticleShield:        {125, 207, 255},
	component.ParticleDrawing:       {255, 199, 119},
	component.ParticleHitSelf:       {255, 60, 60},
	component.ParticleHeal:          {158, 206, 106},
	component.ParticleUpgrade:       {115, 218, 202},
	component.ParticleWallBreakable: {224, 175, 104},
	component.ParticleWallBlock:     {86, 95, 137},
}

// EnemyColor returns the body color of an AI variant
func EnemyColor(kind config.AIKind) RGB {
	if c, ok := enemyColors[kind]; ok {
		return c
	}
	return RgbStatusBar
}

// ParticleColor returns the color of a particle kind
func ParticleColor(kind component.ParticleKind) RGB {
	if int(kind) < len(particleColors) {
		return particleColors[kind]
	}
	return RgbStatusDim
}
