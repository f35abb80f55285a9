// Package engine runs one presentation session on a terminal screen
package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/reveal/clock"
	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/content"
	"github.com/lixenwraith/reveal/effect"
	"github.com/lixenwraith/reveal/intro"
	"github.com/lixenwraith/reveal/presentation"
	"github.com/lixenwraith/reveal/render"
)

// Audio is the ambient channel as seen by the session
type Audio interface {
	Play() error
	SetMuted(muted bool)
	Toggle() bool
	Muted() bool
	Close() error
}

// Options configures a session; zero fields take defaults
type Options struct {
	Content       *content.Content
	Timings       intro.Timings
	Burst         effect.Burst
	FrameInterval time.Duration
	// Audio may be nil, in which case mute is tracked without sound
	Audio Audio
	// Muted is the starting mute flag when Audio is nil
	Muted  bool
	Clock  clock.Clock
	Theme  *render.Theme
	Logger *zap.Logger
	Seed   int64
}

// Session owns the screen, the controller and every timed collaborator
// All methods run on the session goroutine
type Session struct {
	screen     tcell.Screen
	content    *content.Content
	timings    intro.Timings
	frameEvery time.Duration
	clk        clock.Clock
	ownClock   *clock.LoopClock
	audio      Audio
	logger     *zap.Logger

	controller *presentation.Controller
	sequencer  *intro.Sequencer
	confetti   *effect.Confetti
	motes      *effect.Motes
	painter    *render.Painter

	scroll   int
	buttons  tcell.ButtonMask
	quitting bool
	closed   bool
}

// NewSession wires a session around an initialized screen
func NewSession(screen tcell.Screen, opts Options) *Session {
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Timings == (intro.Timings{}) {
		opts.Timings = intro.DefaultTimings()
	}
	if opts.Burst.Duration == 0 {
		opts.Burst = effect.DefaultBurst()
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = constants.FrameUpdateInterval
	}
	var ownClock *clock.LoopClock
	if opts.Clock == nil {
		ownClock = clock.NewLoopClock(constants.CallbackQueueSize)
		opts.Clock = ownClock
	}
	if opts.Audio == nil {
		opts.Audio = &silentAudio{muted: opts.Muted}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	theme := render.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	s := &Session{
		screen:     screen,
		content:    opts.Content,
		timings:    opts.Timings,
		frameEvery: opts.FrameInterval,
		clk:        opts.Clock,
		ownClock:   ownClock,
		audio:      opts.Audio,
		logger:     opts.Logger,
		confetti:   effect.NewConfetti(opts.Clock, opts.Burst, rng),
		motes:      effect.NewMotes(constants.MoteCount, rng, opts.Clock.Now()),
		painter:    render.NewPainter(screen, theme),
	}

	s.controller = presentation.NewController(s.audio, s.confetti, s.logger)
	s.controller.OnChange(s.onStateChange)
	return s
}

// State returns the presentation state
func (s *Session) State() presentation.State {
	return s.controller.State()
}

// Sequencer returns the intro sequencer of the current or last intro, nil before reveal
func (s *Session) Sequencer() *intro.Sequencer {
	return s.sequencer
}

// Confetti returns the celebration layer
func (s *Session) Confetti() *effect.Confetti {
	return s.confetti
}

// Muted reports the mute flag of the audio channel
func (s *Session) Muted() bool {
	return s.audio.Muted()
}

// ScrollOffset returns the letter scroll offset applied in the last frame
func (s *Session) ScrollOffset() int {
	return s.scroll
}

// Quitting reports whether a quit was requested
func (s *Session) Quitting() bool {
	return s.quitting
}

func (s *Session) onStateChange(from, to presentation.State) {
	if from == presentation.StateIntro {
		s.stopIntro()
	}

	switch to {
	case presentation.StateIntro:
		s.startIntro()
	case presentation.StateLetter:
		s.scroll = 0
	}
}

func (s *Session) startIntro() {
	s.stopIntro()
	s.sequencer = intro.New(s.clk, len(s.content.IntroLines), s.timings, intro.Hooks{
		OnAdvance: func(index int) {
			s.logger.Debug("intro line", zap.Int("index", index))
		},
		OnTitle: func() {
			s.logger.Debug("intro title shown")
		},
		OnComplete: func() {
			s.controller.CompleteIntro()
		},
	})
	s.sequencer.Start()
}

func (s *Session) stopIntro() {
	if s.sequencer != nil {
		s.sequencer.Stop()
	}
}

// Activate is the primary action: reveal when locked, open the gift in the letter
func (s *Session) Activate() bool {
	switch s.controller.State() {
	case presentation.StateLocked:
		return s.controller.Reveal()
	case presentation.StateLetter:
		return s.controller.OpenGift()
	}
	return false
}

// ToggleMute flips the mute flag in any state and returns the new value
func (s *Session) ToggleMute() bool {
	muted := s.audio.Toggle()
	s.logger.Info("mute toggled", zap.Bool("muted", muted))
	return muted
}

// Scroll moves the letter by delta rows; ignored outside LETTER and GIFT
func (s *Session) Scroll(delta int) {
	switch s.controller.State() {
	case presentation.StateLetter, presentation.StateGift:
	default:
		return
	}
	s.scroll = min(max(s.scroll+delta, 0), s.painter.MaxScroll())
}

// Quit requests the loop to exit
func (s *Session) Quit() {
	s.quitting = true
}

// Do applies an action; returns false once the session should end
func (s *Session) Do(a Action) bool {
	_, height := s.screen.Size()
	page := max(height-2, 1)

	switch a {
	case ActionActivate:
		s.Activate()
	case ActionToggleMute:
		s.ToggleMute()
	case ActionScrollUp:
		s.Scroll(-constants.ScrollStep)
	case ActionScrollDown:
		s.Scroll(constants.ScrollStep)
	case ActionPageUp:
		s.Scroll(-page)
	case ActionPageDown:
		s.Scroll(page)
	case ActionTop:
		s.Scroll(-s.painter.MaxScroll())
	case ActionBottom:
		s.Scroll(s.painter.MaxScroll())
	case ActionQuit:
		s.Quit()
	}
	return !s.quitting
}

// HandleEvent routes one terminal event; returns false once the session should end
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.Do(KeyAction(ev.Key(), ev.Rune()))

	case *tcell.EventMouse:
		s.handleMouse(ev)

	case *tcell.EventResize:
		s.screen.Sync()
	}
	return !s.quitting
}

func (s *Session) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons &^ s.buttons
	s.buttons = buttons & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	switch {
	case buttons&tcell.WheelUp != 0:
		s.Scroll(-constants.ScrollStep)
	case buttons&tcell.WheelDown != 0:
		s.Scroll(constants.ScrollStep)
	case pressed&tcell.Button1 != 0:
		x, y := ev.Position()
		s.click(x, y)
	}
}

// click toggles mute on the indicator in any state; otherwise it reveals from anywhere
// on the locked screen, and in the letter only the gift button counts
func (s *Session) click(x, y int) {
	if s.painter.MuteAt(x, y) {
		s.ToggleMute()
		return
	}

	switch s.controller.State() {
	case presentation.StateLocked:
		s.controller.Reveal()
	case presentation.StateLetter:
		if s.painter.ButtonAt(x, y) {
			s.controller.OpenGift()
		}
	}
}

// View returns the content blocks of the current state
func (s *Session) View() render.View {
	var progress render.Progress
	if s.sequencer != nil {
		progress = render.Progress{
			Visible:    s.sequencer.Visible(),
			TitleShown: s.sequencer.TitleShown(),
		}
	}
	return render.Build(s.controller.State(), progress, s.content)
}

// Draw advances the particle layers to now and paints one frame
func (s *Session) Draw() {
	now := s.clk.Now()
	width, height := s.screen.Size()

	s.confetti.Update(now, width, height)

	s.scroll = s.painter.Paint(render.Frame{
		View:     s.View(),
		Scroll:   s.scroll,
		Motes:    s.motes.At(now, width, height),
		Confetti: s.confetti.Particles(),
		Muted:    s.audio.Muted(),
	})
}

// Run drives the session until quit or ctx is done, then tears it down
func (s *Session) Run(ctx context.Context) error {
	defer s.Close()

	frameTicker := time.NewTicker(s.frameEvery)
	defer frameTicker.Stop()

	var callbacks <-chan func()
	if d, ok := s.clk.(clock.Dispatcher); ok {
		callbacks = d.Callbacks()
	}

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := s.screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	s.logger.Info("session started", zap.Stringer("state", s.controller.State()))
	s.Draw()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session cancelled")
			return nil

		case ev := <-eventChan:
			if !s.HandleEvent(ev) {
				s.logger.Info("session quit", zap.Stringer("state", s.controller.State()))
				return nil
			}

		case fn := <-callbacks:
			fn()

		case <-frameTicker.C:
			s.Draw()
		}
	}
}

// Close stops the intro timers and releases audio; the screen stays with its owner
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.stopIntro()
	if err := s.audio.Close(); err != nil {
		s.logger.Warn("audio close failed", zap.Error(err))
	}
	if s.ownClock != nil {
		s.ownClock.Close()
	}
}

// silentAudio keeps the mute flag when no audio channel is configured
type silentAudio struct {
	muted bool
}

func (a *silentAudio) Play() error         { return nil }
func (a *silentAudio) SetMuted(muted bool) { a.muted = muted }
func (a *silentAudio) Toggle() bool        { a.muted = !a.muted; return a.muted }
func (a *silentAudio) Muted() bool         { return a.muted }
func (a *silentAudio) Close() error        { return nil }
