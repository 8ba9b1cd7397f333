package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
	"github.com/lixenwraith/open-island/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly from freq to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from start to end over duration
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     start,
		endFreq:  end,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.duration)
		freq := o.freq + (o.endFreq-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase = vmath.Fract(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// decay is noise plus a low rumble under an exponential falloff
type decay struct {
	rate     beep.SampleRate
	position int
	duration int
	noise    *vmath.FastRand
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if d.position >= d.duration {
			return i, i > 0
		}
		t := float64(d.position) / float64(d.rate)
		env := math.Exp(-t * parameter.ExplosionDecayRate)
		rumble := 0.3 * math.Sin(2*math.Pi*parameter.ExplosionRumbleFreq*t)
		val := env * (0.25*(d.noise.Float64()*2-1) + rumble)
		samples[i][0] = val
		samples[i][1] = val
		d.position++
	}
	return len(samples), true
}

func (d *decay) Err() error { return nil }

// sweepLoop is the endless drawing tone: a slow low-high-low frequency glide
type sweepLoop struct {
	rate   beep.SampleRate
	pos    int
	period int
	phase  float64
}

func (g *sweepLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		cyclePos := float64(g.pos%g.period) / float64(g.period)
		freq := parameter.DrawingSweepLow + (parameter.DrawingSweepHigh-parameter.DrawingSweepLow)*math.Sin(cyclePos*math.Pi)
		amplitude := 0.5 + 0.5*math.Sin(cyclePos*math.Pi*2)
		val := amplitude * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = val
		samples[i][1] = val
		g.phase = vmath.Fract(g.phase + freq/float64(g.rate))
		g.pos++
	}
	return len(samples), true
}

func (g *sweepLoop) Err() error { return nil }

// rotorLoop is the endless helicopter thump
type rotorLoop struct {
	rate   beep.SampleRate
	pos    int
	period int
}

func (g *rotorLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		beatPos := g.pos % g.period
		t := float64(beatPos) / float64(g.rate)
		env := 1.0 - float64(beatPos)/float64(g.period)
		val := env * env * math.Sin(2*math.Pi*parameter.HelicopterRotorFreq*(1+env)*t)
		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *rotorLoop) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so 0 volume is handled by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

func shaped(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(s, duration, attack, release, rate)
}

// CreateCue builds the streamer for a cue at its configured volume
// Looped cues never end; one-shots end after their duration
func CreateCue(cue event.Sound, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	var s beep.Streamer

	switch cue {
	case event.SoundDrawing:
		s = &sweepLoop{rate: rate, period: rate.N(parameter.DrawingSweepPeriod)}
	case event.SoundHelicopter:
		s = &rotorLoop{rate: rate, period: max(rate.N(parameter.HelicopterRotorPeriod), 1)}
	case event.SoundHit:
		osc := NewOscillator(parameter.HitSoundFreq, parameter.HitSoundDuration, WaveSquare, rate)
		s = shaped(osc, parameter.HitSoundDuration, parameter.HitSoundAttack, parameter.HitSoundRelease, rate)
	case event.SoundKill:
		// A5 with an octave overtone
		n := rate.N(parameter.KillSoundDuration)
		fund, err := generators.SineTone(rate, 880.0)
		if err != nil {
			return nil
		}
		over, err := generators.SineTone(rate, 1760.0)
		if err != nil {
			return nil
		}
		s = beep.Mix(
			newVolume(shaped(beep.Take(n, fund), parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundFundamentalRelease, rate), 0.7),
			newVolume(shaped(beep.Take(n, over), parameter.KillSoundDuration, parameter.KillSoundAttack, parameter.KillSoundOvertoneRelease, rate), 0.3),
		)
	case event.SoundHitSelf:
		osc := NewOscillator(parameter.HitSelfSoundFreq, parameter.HitSelfSoundDuration, WaveSaw, rate)
		s = shaped(osc, parameter.HitSelfSoundDuration, parameter.HitSelfSoundAttack, parameter.HitSelfSoundRelease, rate)
	case event.SoundBounce:
		osc := NewSweep(parameter.BounceStartFreq, parameter.BounceEndFreq, parameter.BounceSoundDuration, WaveSine, rate)
		s = shaped(osc, parameter.BounceSoundDuration, parameter.BounceSoundAttack, parameter.BounceSoundRelease, rate)
	case event.SoundExpand:
		osc := NewOscillator(0, parameter.ExpandSoundDuration, WaveNoise, rate)
		s = shaped(osc, parameter.ExpandSoundDuration, parameter.ExpandSoundAttack, parameter.ExpandSoundRelease, rate)
	case event.SoundMinigun:
		osc := NewOscillator(0, parameter.MinigunSoundDuration, WaveNoise, rate)
		s = shaped(osc, parameter.MinigunSoundDuration, parameter.MinigunSoundAttack, parameter.MinigunSoundRelease, rate)
	case event.SoundExplosion:
		s = &decay{rate: rate, duration: rate.N(parameter.ExplosionSoundDuration), noise: vmath.NewFastRand(uint64(time.Now().UnixNano()))}
	default:
		return nil
	}

	return newVolume(s, cfg.volume(cue))
}
