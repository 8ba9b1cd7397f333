package event

import "fmt"

// Sound is a cue emitted by the simulation for the audio layer
type Sound uint8

const (
	// SoundDrawing plays while a gesture is held
	// Trigger: every tick the player is drawing | Consumer: looped channel
	SoundDrawing Sound = iota

	// SoundHit plays when an enemy or barrel takes a hit
	// Trigger: gesture damage, bullet contact, barrel contact
	SoundHit

	// SoundKill plays once per non-bullet enemy removed
	// Trigger: death pass
	SoundKill

	// SoundHitSelf plays when the player takes damage
	// Trigger: player/enemy contact while vulnerable
	SoundHitSelf

	// SoundBounce plays on hard contacts and bullet dissolves
	// Trigger: wall or body contact above the bounce threshold
	SoundBounce

	// SoundExpand plays when a new room is generated
	// Trigger: room unlock
	SoundExpand

	// SoundMinigun plays per helicopter bullet
	SoundMinigun

	// SoundHelicopter plays every tick a helicopter is active | Consumer: looped channel
	SoundHelicopter

	// SoundExplosion plays when a barrel detonates
	SoundExplosion

	soundCount
)

// SoundCount is the number of distinct sound cues
const SoundCount = int(soundCount)

var soundNames = [...]string{
	SoundDrawing:    "drawing",
	SoundHit:        "hit",
	SoundKill:       "kill",
	SoundHitSelf:    "hit_self",
	SoundBounce:     "bounce",
	SoundExpand:     "expand",
	SoundMinigun:    "minigun",
	SoundHelicopter: "helicopter",
	SoundExplosion:  "explosion",
}

func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return fmt.Sprintf("Sound(%d)", uint8(s))
}

// Looped reports whether the cue is a continuous channel refreshed every tick
func (s Sound) Looped() bool {
	return s == SoundDrawing || s == SoundHelicopter
}
