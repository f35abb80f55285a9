// Package intro reveals the intro lines one at a time, then shows the title,
// then signals completion
package intro

import (
	"time"

	"github.com/lixenwraith/reveal/clock"
	"github.com/lixenwraith/reveal/constants"
)

// Phase is the internal state of a Sequencer
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRevealing
	PhaseTitle
	PhaseDone
	PhaseStopped
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRevealing:
		return "revealing"
	case PhaseTitle:
		return "title"
	case PhaseDone:
		return "done"
	case PhaseStopped:
		return "stopped"
	}
	return "unknown"
}

// Timings holds the three chained delays of the sequence
type Timings struct {
	LineDelay  time.Duration
	TitleDelay time.Duration
	TitleHold  time.Duration
}

// DefaultTimings returns the stock intro pacing
func DefaultTimings() Timings {
	return Timings{
		LineDelay:  constants.IntroLineDelay,
		TitleDelay: constants.IntroTitleDelay,
		TitleHold:  constants.IntroTitleHold,
	}
}

// Hooks are invoked on the clock's callback goroutine; all are optional
type Hooks struct {
	// OnAdvance fires after each line-delay with the new reveal index
	OnAdvance func(index int)
	// OnTitle fires once when the title replaces the lines
	OnTitle func()
	// OnComplete fires once after the title hold
	OnComplete func()
}

// Sequencer drives REVEALING(i) -> TITLE -> DONE with one pending timer at a time
type Sequencer struct {
	clk     clock.Clock
	lines   int
	timings Timings
	hooks   Hooks

	phase   Phase
	index   int
	pending clock.Timer
	// gen invalidates callbacks scheduled before the last Stop
	gen uint64
}

// New creates a sequencer for lineCount intro lines
func New(clk clock.Clock, lineCount int, timings Timings, hooks Hooks) *Sequencer {
	if lineCount < 0 {
		lineCount = 0
	}
	return &Sequencer{
		clk:     clk,
		lines:   lineCount,
		timings: timings,
		hooks:   hooks,
	}
}

// Start shows the first line and schedules the next step
// Calling Start on a running or finished sequencer is a no-op
func (s *Sequencer) Start() {
	if s.phase != PhaseIdle {
		return
	}
	s.phase = PhaseRevealing
	s.index = 0
	s.scheduleReveal()
}

// Stop cancels the pending timer; no hook fires afterwards
func (s *Sequencer) Stop() {
	if s.phase == PhaseStopped {
		return
	}
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.gen++
	s.phase = PhaseStopped
}

// Phase returns the current phase
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Visible returns the number of intro lines on screen
func (s *Sequencer) Visible() int {
	if s.phase == PhaseIdle || s.lines == 0 {
		return 0
	}
	return min(s.index+1, s.lines)
}

// TitleShown reports whether the title has replaced the lines
func (s *Sequencer) TitleShown() bool {
	return s.phase == PhaseTitle || s.phase == PhaseDone
}

// scheduleReveal arms either the next line-delay or the title delay
func (s *Sequencer) scheduleReveal() {
	if s.index < s.lines {
		s.after(s.timings.LineDelay, s.advance)
		return
	}
	s.after(s.timings.TitleDelay, s.showTitle)
}

func (s *Sequencer) advance() {
	s.index++
	if s.hooks.OnAdvance != nil {
		s.hooks.OnAdvance(s.index)
	}
	s.scheduleReveal()
}

func (s *Sequencer) showTitle() {
	s.phase = PhaseTitle
	if s.hooks.OnTitle != nil {
		s.hooks.OnTitle()
	}
	s.after(s.timings.TitleHold, s.complete)
}

func (s *Sequencer) complete() {
	s.phase = PhaseDone
	if s.hooks.OnComplete != nil {
		s.hooks.OnComplete()
	}
}

// after schedules step on the clock, bound to the current generation
func (s *Sequencer) after(d time.Duration, step func()) {
	gen := s.gen
	s.pending = s.clk.AfterFunc(d, func() {
		if gen != s.gen || s.phase == PhaseStopped {
			return
		}
		s.pending = nil
		step()
	})
}
