package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/lixenwraith/reveal/clock"
	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/content"
	"github.com/lixenwraith/reveal/intro"
	"github.com/lixenwraith/reveal/presentation"
)

type fakeAudio struct {
	plays   int
	closes  int
	muted   bool
	err     error
	started chan struct{}
}

func (a *fakeAudio) Play() error {
	a.plays++
	if a.started != nil {
		a.started <- struct{}{}
	}
	return a.err
}
func (a *fakeAudio) SetMuted(muted bool) { a.muted = muted }
func (a *fakeAudio) Toggle() bool        { a.muted = !a.muted; return a.muted }
func (a *fakeAudio) Muted() bool         { return a.muted }
func (a *fakeAudio) Close() error        { a.closes++; return nil }

var epoch = time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)

type harness struct {
	screen  tcell.SimulationScreen
	clk     *clock.ManualClock
	audio   *fakeAudio
	session *Session
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	h := &harness{
		screen: screen,
		clk:    clock.NewManualClock(epoch),
		audio:  &fakeAudio{},
	}
	h.session = NewSession(screen, Options{
		Audio:  h.audio,
		Clock:  h.clk,
		Logger: zaptest.NewLogger(t),
		Seed:   7,
	})
	return h
}

func (h *harness) screenText() string {
	cells, w, height := h.screen.GetContents()
	var sb strings.Builder
	for y := 0; y < height; y++ {
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// bodyText is the screen without the indicator row
func (h *harness) bodyText() string {
	text := h.screenText()
	return text[strings.Index(text, "\n")+1:]
}

func (h *harness) find(needle string) (int, int, bool) {
	for y, row := range strings.Split(h.screenText(), "\n") {
		if i := strings.Index(row, needle); i >= 0 {
			return len([]rune(row[:i])), y, true
		}
	}
	return 0, 0, false
}

func (h *harness) click(x, y int) {
	h.session.HandleEvent(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))
	h.session.HandleEvent(tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))
}

// toLetter reveals and lets the intro run to completion
func (h *harness) toLetter(t *testing.T) {
	t.Helper()
	require.True(t, h.session.Activate())
	h.toLetterFromIntro(t)
}

func (h *harness) toLetterFromIntro(t *testing.T) {
	t.Helper()
	require.Equal(t, presentation.StateIntro, h.session.State())
	timings := intro.DefaultTimings()
	h.clk.Advance(5*timings.LineDelay + timings.TitleDelay + timings.TitleHold)
	require.Equal(t, presentation.StateLetter, h.session.State())
}

func TestSessionFullScenario(t *testing.T) {
	h := newHarness(t)
	c := content.Default()
	timings := intro.DefaultTimings()

	h.session.Draw()
	assert.Equal(t, presentation.StateLocked, h.session.State())
	assert.Contains(t, h.screenText(), c.LockedPrompt)
	assert.Nil(t, h.session.Sequencer())

	h.click(3, 3)
	require.Equal(t, presentation.StateIntro, h.session.State())
	assert.Equal(t, 1, h.audio.plays)

	h.session.Draw()
	assert.Contains(t, h.screenText(), c.IntroLines[0])
	assert.NotContains(t, h.screenText(), c.IntroLines[1])

	for i := 1; i < len(c.IntroLines); i++ {
		h.clk.Advance(timings.LineDelay)
		h.session.Draw()
		assert.Contains(t, h.screenText(), c.IntroLines[i], "line %d after %d delays", i, i)
	}

	// last line delay reveals nothing new, then the title follows
	h.clk.Advance(timings.LineDelay)
	assert.False(t, h.session.Sequencer().TitleShown())
	h.clk.Advance(timings.TitleDelay)
	h.session.Draw()
	assert.True(t, h.session.Sequencer().TitleShown())
	assert.Contains(t, h.screenText(), c.TitleHint)
	assert.Equal(t, presentation.StateIntro, h.session.State())

	h.clk.Advance(timings.TitleHold - time.Millisecond)
	assert.Equal(t, presentation.StateIntro, h.session.State())
	h.clk.Advance(time.Millisecond)
	require.Equal(t, presentation.StateLetter, h.session.State())
	assert.Equal(t, intro.PhaseStopped, h.session.Sequencer().Phase())

	h.session.Draw()
	assert.Contains(t, h.screenText(), "Hey Klara")

	h.session.Do(ActionBottom)
	h.session.Draw()
	x, y, ok := h.find(c.GiftButton)
	require.True(t, ok, "gift button visible after scrolling to the bottom")

	h.click(x+1, y)
	require.Equal(t, presentation.StateGift, h.session.State())
	assert.True(t, h.session.Confetti().Fired())
	assert.Equal(t, 1, h.audio.plays, "audio is started once per session")

	h.clk.Advance(100 * time.Millisecond)
	h.session.Draw()
	assert.NotEmpty(t, h.session.Confetti().Particles())

	h.session.Do(ActionBottom)
	h.session.Draw()
	assert.Contains(t, h.screenText(), c.Closing.Headline)

	assert.False(t, h.session.Do(ActionQuit))
	h.session.Close()
	assert.Equal(t, 1, h.audio.closes)
}

func TestSessionMuteIndependentOfState(t *testing.T) {
	h := newHarness(t)

	check := func(want presentation.State) {
		t.Helper()
		before := h.session.Muted()
		view := h.session.View()
		h.session.Draw()
		body := h.bodyText()

		assert.Equal(t, !before, h.session.ToggleMute())
		assert.Equal(t, want, h.session.State())
		assert.Equal(t, view, h.session.View())
		if want != presentation.StateGift {
			h.session.Draw()
			assert.Equal(t, body, h.bodyText(), "only the indicator row changes in %v", want)
		}

		h.session.Do(ActionToggleMute)
		assert.Equal(t, before, h.session.Muted())
		assert.Equal(t, want, h.session.State())
		assert.Equal(t, view, h.session.View())
	}

	check(presentation.StateLocked)
	h.session.Activate()
	check(presentation.StateIntro)
	timings := intro.DefaultTimings()
	h.clk.Advance(5*timings.LineDelay + timings.TitleDelay + timings.TitleHold)
	check(presentation.StateLetter)
	h.session.Activate()
	check(presentation.StateGift)
}

func TestSessionClickMuteIndicator(t *testing.T) {
	h := newHarness(t)

	h.session.Draw()
	x, y, ok := h.find(constants.MuteIndicatorOn)
	require.True(t, ok)

	h.click(x+1, y)
	assert.Equal(t, presentation.StateLocked, h.session.State())
	assert.True(t, h.session.Muted())
	assert.Zero(t, h.audio.plays)

	h.session.Draw()
	x, y, ok = h.find(constants.MuteIndicatorOff)
	require.True(t, ok)
	h.click(x, y)
	assert.False(t, h.session.Muted())

	h.click(0, 10)
	h.toLetterFromIntro(t)

	h.session.Draw()
	x, y, ok = h.find(constants.MuteIndicatorOn)
	require.True(t, ok)
	h.click(x+2, y)
	assert.Equal(t, presentation.StateLetter, h.session.State())
	assert.True(t, h.session.Muted())
	assert.False(t, h.session.Confetti().Fired())
}

func TestSessionStartsMutedWithoutAudio(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	s := NewSession(screen, Options{Clock: clock.NewManualClock(epoch), Muted: true})
	assert.True(t, s.Muted())

	s.Draw()
	cells, w, _ := screen.GetContents()
	var top strings.Builder
	for x := 0; x < w; x++ {
		if runes := cells[x].Runes; len(runes) > 0 {
			top.WriteRune(runes[0])
		}
	}
	assert.Contains(t, top.String(), constants.MuteIndicatorOff)
}

func TestSessionClosesOwnClock(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	s := NewSession(screen, Options{})
	require.NotNil(t, s.ownClock)
	s.Close()

	ignore := goleak.IgnoreCurrent()
	// more timers than the queue holds; nothing drains it after Close
	for i := 0; i < 2*constants.CallbackQueueSize; i++ {
		s.clk.AfterFunc(time.Millisecond, func() {})
	}
	goleak.VerifyNone(t, ignore)
}

func TestSessionIgnoresOutOfOrderActions(t *testing.T) {
	h := newHarness(t)

	h.session.Scroll(5)
	assert.Zero(t, h.session.ScrollOffset(), "locked screen does not scroll")

	require.True(t, h.session.Activate())
	assert.False(t, h.session.Activate(), "activate during intro is ignored")
	assert.Equal(t, presentation.StateIntro, h.session.State())

	h.session.Draw()
	h.click(0, 0)
	assert.Equal(t, presentation.StateIntro, h.session.State())
	assert.Equal(t, 1, h.audio.plays)
}

func TestSessionLetterClickOutsideButton(t *testing.T) {
	h := newHarness(t)
	h.toLetter(t)

	h.session.Draw()
	h.click(0, 23)
	assert.Equal(t, presentation.StateLetter, h.session.State())
	assert.False(t, h.session.Confetti().Fired())
}

func TestSessionScrollClamped(t *testing.T) {
	h := newHarness(t)
	h.toLetter(t)
	h.session.Draw()

	h.session.Do(ActionScrollUp)
	h.session.Draw()
	assert.Zero(t, h.session.ScrollOffset())

	h.session.Do(ActionPageDown)
	h.session.Draw()
	assert.Equal(t, 22, h.session.ScrollOffset())

	for i := 0; i < 100; i++ {
		h.session.HandleEvent(tcell.NewEventMouse(10, 10, tcell.WheelDown, tcell.ModNone))
	}
	h.session.Draw()
	bottom := h.session.ScrollOffset()
	assert.Greater(t, bottom, 22)

	h.session.Do(ActionScrollDown)
	h.session.Draw()
	assert.Equal(t, bottom, h.session.ScrollOffset())

	h.session.Do(ActionTop)
	h.session.Draw()
	assert.Zero(t, h.session.ScrollOffset())
}

func TestSessionQuitDuringIntroStopsTimers(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.session.Activate())
	h.clk.Advance(intro.DefaultTimings().LineDelay)
	require.Equal(t, 1, h.clk.Pending())

	assert.False(t, h.session.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	h.session.Close()
	h.session.Close()

	assert.Equal(t, intro.PhaseStopped, h.session.Sequencer().Phase())
	assert.Zero(t, h.clk.Pending())
	assert.Equal(t, 1, h.audio.closes)

	h.clk.Advance(time.Minute)
	assert.Equal(t, presentation.StateIntro, h.session.State())
}

func TestSessionWithoutAudioTracksMute(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)

	s := NewSession(screen, Options{Clock: clock.NewManualClock(epoch)})
	assert.False(t, s.Muted())
	assert.True(t, s.ToggleMute())
	assert.True(t, s.Activate())
	assert.Equal(t, presentation.StateIntro, s.State())
	s.Close()
}

func TestSessionRunUntilCancelled(t *testing.T) {
	h := newHarness(t)
	h.audio.started = make(chan struct{}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- h.session.Run(ctx) }()

	require.NoError(t, h.screen.PostEvent(tcell.NewEventMouse(2, 2, tcell.Button1, tcell.ModNone)))

	select {
	case <-h.audio.started:
	case <-time.After(5 * time.Second):
		t.Fatal("click was not delivered to the session")
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	assert.Equal(t, presentation.StateIntro, h.session.State())
	assert.Equal(t, 1, h.audio.closes)
	assert.Equal(t, intro.PhaseStopped, h.session.Sequencer().Phase())
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want Action
	}{
		{tcell.KeyEnter, 0, ActionActivate},
		{tcell.KeyRune, ' ', ActionActivate},
		{tcell.KeyRune, 'm', ActionToggleMute},
		{tcell.KeyRune, 'M', ActionToggleMute},
		{tcell.KeyRune, 'q', ActionQuit},
		{tcell.KeyEscape, 0, ActionQuit},
		{tcell.KeyCtrlC, 0, ActionQuit},
		{tcell.KeyUp, 0, ActionScrollUp},
		{tcell.KeyDown, 0, ActionScrollDown},
		{tcell.KeyRune, 'j', ActionScrollDown},
		{tcell.KeyPgUp, 0, ActionPageUp},
		{tcell.KeyPgDn, 0, ActionPageDown},
		{tcell.KeyHome, 0, ActionTop},
		{tcell.KeyEnd, 0, ActionBottom},
		{tcell.KeyRune, 'x', ActionNone},
		{tcell.KeyTab, 0, ActionNone},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyAction(tt.key, tt.r), "key %v rune %q", tt.key, tt.r)
	}
}
