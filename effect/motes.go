package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/reveal/constants"
)

// Mote is one slowly pulsing background dot
type Mote struct {
	X, Y   float64 // fractions of the screen size
	Size   int     // 1..3, selects the glyph
	Period time.Duration
	Phase  float64
}

// MotePoint is a mote resolved to a cell for one frame
type MotePoint struct {
	X, Y      int
	Glyph     rune
	Intensity float64
}

var moteGlyphs = []rune{'·', '∙', '•'}

// Motes is the ambient background layer, present in every state
type Motes struct {
	start time.Time
	motes []Mote
}

// NewMotes scatters n motes with random position, size and period
func NewMotes(n int, rng *rand.Rand, start time.Time) *Motes {
	span := int64(constants.MoteMaxPeriod - constants.MoteMinPeriod)
	motes := make([]Mote, n)
	for i := range motes {
		motes[i] = Mote{
			X:      rng.Float64(),
			Y:      rng.Float64(),
			Size:   1 + rng.Intn(len(moteGlyphs)),
			Period: constants.MoteMinPeriod + time.Duration(rng.Int63n(span+1)),
			Phase:  rng.Float64(),
		}
	}
	return &Motes{start: start, motes: motes}
}

// Count returns the number of motes
func (m *Motes) Count() int {
	return len(m.motes)
}

// At resolves every mote to a cell at time now
// Each mote rises and brightens, then sinks and dims, once per period
func (m *Motes) At(now time.Time, width, height int) []MotePoint {
	if width <= 0 || height <= 0 {
		return nil
	}

	elapsed := now.Sub(m.start).Seconds()
	points := make([]MotePoint, 0, len(m.motes))
	for _, mote := range m.motes {
		cycle := elapsed/mote.Period.Seconds() + mote.Phase
		cycle -= math.Floor(cycle)
		swell := (1 - math.Cos(2*math.Pi*cycle)) / 2

		x := int(mote.X * float64(width-1))
		y := int(math.Round(mote.Y*float64(height-1) - constants.MoteRise*swell))
		if y < 0 {
			y = 0
		}

		points = append(points, MotePoint{
			X:         x,
			Y:         y,
			Glyph:     moteGlyphs[mote.Size-1],
			Intensity: constants.MoteMinIntensity + (constants.MoteMaxIntensity-constants.MoteMinIntensity)*swell,
		})
	}
	return points
}
