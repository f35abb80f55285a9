package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/reveal/constants"
)

// padProgression is the looping chord sequence of the built-in ambient pad (Hz)
var padProgression = [][]float64{
	{220.00, 277.18, 329.63, 440.00}, // A
	{185.00, 220.00, 277.18, 369.99}, // F#m
	{146.83, 220.00, 293.66, 369.99}, // D
	{164.81, 246.94, 329.63, 415.30}, // E
}

// PadGenerator synthesizes a slow, endless chord pad
// Consecutive chords crossfade; a short fade-in avoids a click on start
type PadGenerator struct {
	sr        beep.SampleRate
	pos       int
	chordLen  int
	crossfade int
	fadeIn    int
}

// NewPadGenerator creates a pad generator for the given sample rate
func NewPadGenerator(sr beep.SampleRate) *PadGenerator {
	return &PadGenerator{
		sr:        sr,
		chordLen:  sr.N(constants.PadChordDuration),
		crossfade: sr.N(constants.PadCrossfade),
		fadeIn:    sr.N(constants.PadCrossfade),
	}
}

func (g *PadGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		chord := (g.pos / g.chordLen) % len(padProgression)
		inChord := g.pos % g.chordLen

		sample := g.voice(padProgression[chord], t)

		// Blend the previous chord out over the crossfade window
		if inChord < g.crossfade && g.pos >= g.chordLen {
			mix := float64(inChord) / float64(g.crossfade)
			prev := (chord + len(padProgression) - 1) % len(padProgression)
			sample = mix*sample + (1-mix)*g.voice(padProgression[prev], t)
		}

		if g.pos < g.fadeIn {
			sample *= float64(g.pos) / float64(g.fadeIn)
		}

		tremolo := 0.85 + 0.15*math.Sin(2*math.Pi*constants.PadTremoloHz*t)
		sample *= tremolo * constants.PadAmplitude

		// Slight stereo spread from a detuned copy of the root
		spread := 0.02 * math.Sin(2*math.Pi*padProgression[chord][0]*1.003*t)

		samples[i][0] = sample + spread
		samples[i][1] = sample - spread
		g.pos++
	}
	return len(samples), true
}

func (g *PadGenerator) Err() error {
	return nil
}

// voice sums the chord tones normalized to unity peak
func (g *PadGenerator) voice(freqs []float64, t float64) float64 {
	sum := 0.0
	for _, f := range freqs {
		sum += math.Sin(2 * math.Pi * f * t)
	}
	return sum / float64(len(freqs))
}
