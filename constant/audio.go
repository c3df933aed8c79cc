package constant

import "time"

// Audio output
const (
	AudioSampleRate     = 44100
	AudioBufferDuration = 100 * time.Millisecond
)

// Audio assets
const (
	SoundsDir       = "Sounds"
	BackgroundMusic = "background-music.wav"

	// Synthesized fallbacks when an effect file is missing
	FallbackEffectDuration = 60 * time.Millisecond
	FallbackShootFreq      = 880.0
	FallbackHitFreq        = 220.0
	FallbackWinFreq        = 660.0
	FallbackLoseFreq       = 110.0
)
