package constants

import "time"

// Confetti Burst
const (
	// ConfettiDuration is how long the burst keeps emitting
	ConfettiDuration = 4 * time.Second

	// ConfettiPerFrame is the number of particles each emitter launches per frame
	ConfettiPerFrame = 3

	// ConfettiSpread is the cone width in degrees around the emitter angle
	ConfettiSpread = 55.0

	// ConfettiOriginY is the vertical launch position as a fraction of screen height
	ConfettiOriginY = 0.6

	// ConfettiVelocity is the launch speed in cells per second
	ConfettiVelocity = 45.0

	// ConfettiGravity is the downward acceleration in cells per second squared
	ConfettiGravity = 30.0

	// ConfettiDrag is the fraction of velocity kept per second
	ConfettiDrag = 0.35

	// ConfettiLifetime bounds how long a single particle lives
	ConfettiLifetime = 3 * time.Second

	// ConfettiCellAspect compensates for terminal cells being twice as tall as wide
	ConfettiCellAspect = 0.5
)

// Background Motes
const (
	// MoteCount is the number of drifting background dots
	MoteCount = 30

	// MoteMinPeriod and MoteMaxPeriod bound one drift cycle
	MoteMinPeriod = 10 * time.Second
	MoteMaxPeriod = 20 * time.Second

	// MoteRise is the peak upward drift in cells
	MoteRise = 3.0

	// MoteMinIntensity and MoteMaxIntensity bound the mote brightness
	MoteMinIntensity = 0.1
	MoteMaxIntensity = 0.4
)
