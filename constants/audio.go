package constants

import "time"

// Ambient Track
const (
	// AmbientVolume is the linear playback gain of the ambient track
	AmbientVolume = 0.4

	// AmbientSampleRate is used by the built-in pad when no file is configured
	AmbientSampleRate = 44100

	// SpeakerBufferDuration sizes the speaker buffer
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Built-in Pad Voicing
const (
	// PadChordDuration is how long each chord of the pad progression sounds
	PadChordDuration = 6 * time.Second

	// PadCrossfade is the overlap between two consecutive chords
	PadCrossfade = 1500 * time.Millisecond

	// PadAmplitude is the peak amplitude of the summed pad voices
	PadAmplitude = 0.35

	// PadTremoloHz is the slow amplitude wobble applied to every voice
	PadTremoloHz = 0.15
)
