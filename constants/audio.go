package constants

import "time"

// Audio Engine Setup
const (
	// AudioSampleRate is the default output sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing (bell ding)
const (
	EatSoundDuration           = 300 * time.Millisecond
	EatSoundAttack             = 5 * time.Millisecond
	EatSoundFundamentalRelease = 250 * time.Millisecond
	EatSoundOvertoneRelease    = 120 * time.Millisecond
)

// Game Over Sound Timing (low buzz)
const (
	GameOverSoundDuration = 400 * time.Millisecond
	GameOverSoundAttack   = 5 * time.Millisecond
	GameOverSoundRelease  = 250 * time.Millisecond
)
