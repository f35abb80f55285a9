// Package effect renders the decorative particle layers: the one-shot confetti
// burst and the ambient background motes
package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reveal/clock"
	"github.com/lixenwraith/reveal/constants"
)

// Emitter is a launch point; X and Y are fractions of the screen size
type Emitter struct {
	X, Y float64
	// Angle in degrees, 90 points straight up
	Angle float64
}

// Burst describes one confetti effect
type Burst struct {
	PerFrame int
	Emitters []Emitter
	Spread   float64
	Velocity float64
	Colors   []tcell.Color
	Duration time.Duration
}

// DefaultBurst fires from both lower sides toward the center in gold and white
func DefaultBurst() Burst {
	return Burst{
		PerFrame: constants.ConfettiPerFrame,
		Emitters: []Emitter{
			{X: 0, Y: constants.ConfettiOriginY, Angle: 60},
			{X: 1, Y: constants.ConfettiOriginY, Angle: 120},
		},
		Spread:   constants.ConfettiSpread,
		Velocity: constants.ConfettiVelocity,
		Colors: []tcell.Color{
			tcell.NewHexColor(0xd4af37),
			tcell.NewHexColor(0xffffff),
			tcell.NewHexColor(0xffd700),
			tcell.NewHexColor(0xfdfcf0),
		},
		Duration: constants.ConfettiDuration,
	}
}

var confettiGlyphs = []rune{'▪', '•', '◆', '▴', '*'}

// Particle is one piece of confetti in cell coordinates
type Particle struct {
	X, Y   float64
	VX, VY float64
	Color  tcell.Color
	Glyph  rune
	Born   time.Time
}

// Confetti emits particles for the burst duration, then lets them fall out
type Confetti struct {
	clk   clock.Clock
	burst Burst
	rng   *rand.Rand

	fired     bool
	start     time.Time
	last      time.Time
	particles []Particle
}

// NewConfetti creates an idle confetti layer
func NewConfetti(clk clock.Clock, burst Burst, rng *rand.Rand) *Confetti {
	return &Confetti{
		clk:   clk,
		burst: burst,
		rng:   rng,
	}
}

// Fire starts the burst; later calls are ignored
func (c *Confetti) Fire() {
	if c.fired {
		return
	}
	c.fired = true
	c.start = c.clk.Now()
	c.last = c.start
}

// Fired reports whether the burst was started
func (c *Confetti) Fired() bool {
	return c.fired
}

// Emitting reports whether new particles are still launched at now
func (c *Confetti) Emitting(now time.Time) bool {
	return c.fired && now.Sub(c.start) < c.burst.Duration
}

// Active reports whether anything is left to draw or emit
func (c *Confetti) Active(now time.Time) bool {
	return c.Emitting(now) || len(c.particles) > 0
}

// Particles returns the live particles; the slice is reused by Update
func (c *Confetti) Particles() []Particle {
	return c.particles
}

// Update emits one frame of particles and integrates motion up to now
func (c *Confetti) Update(now time.Time, width, height int) {
	if !c.fired {
		return
	}

	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, 0.1)

	if c.Emitting(now) && width > 0 && height > 0 {
		for _, em := range c.burst.Emitters {
			for i := 0; i < c.burst.PerFrame; i++ {
				c.particles = append(c.particles, c.launch(em, now, width, height))
			}
		}
	}

	drag := math.Pow(constants.ConfettiDrag, dt)
	alive := c.particles[:0]
	for _, p := range c.particles {
		p.VX *= drag
		p.VY = p.VY*drag + constants.ConfettiGravity*dt
		p.X += p.VX * dt
		p.Y += p.VY * dt * constants.ConfettiCellAspect

		if now.Sub(p.Born) > constants.ConfettiLifetime {
			continue
		}
		if p.X < 0 || p.X >= float64(width) || p.Y >= float64(height) {
			continue
		}
		alive = append(alive, p)
	}
	c.particles = alive
}

func (c *Confetti) launch(em Emitter, now time.Time, width, height int) Particle {
	angle := em.Angle + (c.rng.Float64()-0.5)*c.burst.Spread
	rad := angle * math.Pi / 180
	speed := c.burst.Velocity * (0.5 + 0.5*c.rng.Float64())

	color := tcell.ColorWhite
	if len(c.burst.Colors) > 0 {
		color = c.burst.Colors[c.rng.Intn(len(c.burst.Colors))]
	}

	return Particle{
		X:     math.Min(em.X*float64(width), float64(width)-1),
		Y:     math.Min(em.Y*float64(height), float64(height)-1),
		VX:    math.Cos(rad) * speed,
		VY:    -math.Sin(rad) * speed,
		Color: color,
		Glyph: confettiGlyphs[c.rng.Intn(len(confettiGlyphs))],
		Born:  now,
	}
}
