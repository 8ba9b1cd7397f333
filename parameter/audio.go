package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same one-shot cue
	MinSoundGap = 50 * time.Millisecond

	// AudioMasterVolume is the default master gain
	AudioMasterVolume = 0.6
)

// Hit Sound (metal tick)
const (
	HitSoundDuration = 90 * time.Millisecond
	HitSoundAttack   = 1 * time.Millisecond
	HitSoundRelease  = 70 * time.Millisecond
	HitSoundFreq     = 660.0
)

// Kill Sound (bell)
const (
	KillSoundDuration           = 400 * time.Millisecond
	KillSoundAttack             = 5 * time.Millisecond
	KillSoundFundamentalRelease = 350 * time.Millisecond
	KillSoundOvertoneRelease    = 150 * time.Millisecond
)

// HitSelf Sound (buzz)
const (
	HitSelfSoundDuration = 150 * time.Millisecond
	HitSelfSoundAttack   = 5 * time.Millisecond
	HitSelfSoundRelease  = 40 * time.Millisecond
	HitSelfSoundFreq     = 120.0
)

// Bounce Sound (falling sweep)
const (
	BounceSoundDuration = 100 * time.Millisecond
	BounceSoundAttack   = 2 * time.Millisecond
	BounceSoundRelease  = 80 * time.Millisecond
	BounceStartFreq     = 160.0
	BounceEndFreq       = 40.0
)

// Expand Sound (whoosh)
const (
	ExpandSoundDuration = 300 * time.Millisecond
	ExpandSoundAttack   = 150 * time.Millisecond
	ExpandSoundRelease  = 150 * time.Millisecond
)

// Minigun Sound (short crackle)
const (
	MinigunSoundDuration = 40 * time.Millisecond
	MinigunSoundAttack   = 1 * time.Millisecond
	MinigunSoundRelease  = 30 * time.Millisecond
)

// Explosion Sound (decaying rumble)
const (
	ExplosionSoundDuration = 500 * time.Millisecond
	ExplosionDecayRate     = 8.0
	ExplosionRumbleFreq    = 60.0
)

// Looped channels
const (
	// DrawingSweepPeriod is one full low-high-low cycle of the drawing tone
	DrawingSweepPeriod = 2 * time.Second
	DrawingSweepLow    = 80.0
	DrawingSweepHigh   = 200.0

	// HelicopterRotorPeriod is the blade thump interval
	HelicopterRotorPeriod = 90 * time.Millisecond
	HelicopterRotorFreq   = 55.0
)
