// Package audio plays the looping ambient track of a session
package audio

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"go.uber.org/zap"

	"github.com/lixenwraith/reveal/constants"
)

var (
	// ErrNoDevice wraps a failure to open the playback device
	ErrNoDevice = errors.New("audio device unavailable")
	// ErrClosed is returned by Play after Close
	ErrClosed = errors.New("audio channel closed")
)

// Config selects the ambient track and its gain
type Config struct {
	// Path to an mp3 or wav file; empty selects the built-in pad
	Path   string
	Volume float64
	Muted  bool
}

// DefaultConfig returns the built-in pad at the stock volume
func DefaultConfig() Config {
	return Config{Volume: constants.AmbientVolume}
}

// Channel owns the single ambient stream of a session
// Mute is a flag on the stream: toggling it never stops or restarts playback
type Channel struct {
	mu     sync.Mutex
	cfg    Config
	out    Output
	logger *zap.Logger

	muted     bool
	attempted bool
	ready     bool
	closed    bool

	track  *track
	volume *effects.Volume
	ctrl   *beep.Ctrl
}

// NewChannel creates an idle channel; nothing is opened until Play
// A nil output selects the system speaker
func NewChannel(cfg Config, out Output, logger *zap.Logger) *Channel {
	if out == nil {
		out = speakerOutput{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Channel{
		cfg:    cfg,
		out:    out,
		logger: logger,
		muted:  cfg.Muted,
	}
}

// Play opens the track and starts looping playback
// Only the first call does anything; a failed first attempt is not retried
func (c *Channel) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrClosed
	}
	if c.attempted {
		return nil
	}
	c.attempted = true

	tr, err := openTrack(c.cfg.Path)
	if err != nil {
		return err
	}

	sr := tr.format.SampleRate
	if err := c.out.Init(sr, sr.N(constants.SpeakerBufferDuration)); err != nil {
		tr.close()
		return fmt.Errorf("%w: %v", ErrNoDevice, err)
	}
	c.ready = true

	c.track = tr
	c.volume = &effects.Volume{
		Streamer: tr.streamer,
		Base:     2,
		Volume:   gainToVolume(c.cfg.Volume),
		Silent:   c.silent(),
	}
	c.ctrl = &beep.Ctrl{Streamer: c.volume}
	c.out.Play(c.ctrl)

	c.logger.Info("ambient track started",
		zap.String("path", c.cfg.Path),
		zap.Int("sample_rate", int(sr)),
		zap.Bool("muted", c.muted))
	return nil
}

// SetMuted sets the mute flag without interrupting playback
func (c *Channel) SetMuted(muted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = muted
	if c.volume == nil {
		return
	}
	c.out.Lock()
	c.volume.Silent = c.silent()
	c.out.Unlock()
}

// Toggle flips the mute flag and returns the new value
func (c *Channel) Toggle() bool {
	c.mu.Lock()
	muted := !c.muted
	c.mu.Unlock()

	c.SetMuted(muted)
	return muted
}

// Muted returns the mute flag
func (c *Channel) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Playing reports whether the stream is attached to the device
func (c *Channel) Playing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ctrl != nil && !c.closed
}

// Close stops playback and releases the track and device
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.ctrl != nil {
		c.out.Lock()
		c.ctrl.Paused = true
		c.out.Unlock()
	}
	if c.ready {
		c.out.Close()
	}

	var err error
	if c.track != nil {
		err = c.track.close()
	}
	c.logger.Debug("audio channel closed")
	return err
}

func (c *Channel) silent() bool {
	return c.muted || c.cfg.Volume <= 0
}

// gainToVolume converts a linear gain to the base-2 exponent used by effects.Volume
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0
	}
	return math.Log2(gain)
}
