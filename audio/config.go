package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/open-island/event"
	"github.com/lixenwraith/open-island/parameter"
)

// AudioConfig holds playback settings; EffectVolumes is indexed by cue
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [event.SoundCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns audio enabled at the default master volume
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	// Continuous channels sit under the one-shots
	cfg.EffectVolumes[event.SoundDrawing] = 0.4
	cfg.EffectVolumes[event.SoundHelicopter] = 0.5
	return cfg
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv("OPEN_ISLAND_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 on the environment side
	if volume := os.Getenv("OPEN_ISLAND_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = min(max(float64(val)/100.0, 0), 1)
		}
	}

	// Effect volumes are a JSON object keyed by cue name, e.g. {"kill":0.5}
	if effectVols := os.Getenv("OPEN_ISLAND_SFX_VOLUMES"); effectVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(effectVols), &volumes); err == nil {
			for i := 0; i < event.SoundCount; i++ {
				if v, ok := volumes[event.Sound(i).String()]; ok {
					cfg.EffectVolumes[i] = v
				}
			}
		}
	}

	if sampleRate := os.Getenv("OPEN_ISLAND_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// volume returns the effective gain of a cue
func (c *AudioConfig) volume(s event.Sound) float64 {
	if int(s) >= len(c.EffectVolumes) {
		return 0
	}
	return c.EffectVolumes[s] * c.MasterVolume
}
