package audio

import (
	"errors"

	"github.com/lixenwraith/vi-snake/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundGameOver                  // Collision
	soundTypeCount
)

func (t SoundType) String() string {
	switch t {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AudioConfig holds output and volume settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64 // 0.0 - 1.0
	SampleRate    int
	EffectVolumes map[SoundType]float64
}

// DefaultAudioConfig returns the default audio settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		SampleRate:   constants.AudioSampleRate,
		EffectVolumes: map[SoundType]float64{
			SoundEat:      1.0,
			SoundGameOver: 0.8,
		},
	}
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
