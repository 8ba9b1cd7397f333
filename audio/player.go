// Package audio plays simulation sound cues through beep
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
)

// SoundPlayer turns drained cue batches into audio
// Looped cues are channels kept alive by being present in the batch; one-shots are mixed in per occurrence
// Every method is safe to call before Initialize or after Cleanup, it just stays silent
type SoundPlayer struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	loops       map[event.Sound]*beep.Ctrl
	lastPlayed  [event.SoundCount]time.Time
	initialized bool

	// Injectable for tests
	now func() time.Time
}

// NewSoundPlayer creates a player; nil cfg uses defaults
func NewSoundPlayer(cfg *AudioConfig) *SoundPlayer {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundPlayer{
		cfg:   cfg,
		mixer: &beep.Mixer{},
		loops: make(map[event.Sound]*beep.Ctrl),
		now:   time.Now,
	}
}

// Initialize sets up the speaker; a disabled config is a silent no-op
func (p *SoundPlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds
func (p *SoundPlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	for _, ctrl := range p.loops {
		ctrl.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	clear(p.loops)
	p.initialized = false
}

// Play consumes one tick worth of cues
func (p *SoundPlayer) Play(cues []event.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	var held [event.SoundCount]bool
	var oneShots []beep.Streamer
	now := p.now()
	for _, cue := range cues {
		if int(cue) >= event.SoundCount {
			continue
		}
		if cue.Looped() {
			held[cue] = true
			continue
		}
		if now.Sub(p.lastPlayed[cue]) < parameter.MinSoundGap {
			continue
		}
		if s := CreateCue(cue, p.cfg); s != nil {
			p.lastPlayed[cue] = now
			oneShots = append(oneShots, s)
		}
	}

	speaker.Lock()
	defer speaker.Unlock()

	for _, s := range oneShots {
		p.mixer.Add(s)
	}
	for i := 0; i < event.SoundCount; i++ {
		cue := event.Sound(i)
		if !cue.Looped() {
			continue
		}
		p.setLoop(cue, held[cue])
	}
}

// setLoop starts, resumes or pauses a looped channel; caller holds the speaker lock
func (p *SoundPlayer) setLoop(cue event.Sound, on bool) {
	ctrl, ok := p.loops[cue]
	if !ok {
		if !on {
			return
		}
		s := CreateCue(cue, p.cfg)
		if s == nil {
			return
		}
		ctrl = &beep.Ctrl{Streamer: s}
		p.loops[cue] = ctrl
		p.mixer.Add(ctrl)
		return
	}
	ctrl.Paused = !on
}

// Silence pauses every looped channel, used while the game is paused
func (p *SoundPlayer) Silence() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	for _, ctrl := range p.loops {
		ctrl.Paused = true
	}
	speaker.Unlock()
}
