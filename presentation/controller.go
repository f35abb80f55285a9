package presentation

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/reveal/fsm"
)

// Player starts the ambient track; a returned error is logged and never retried
type Player interface {
	Play() error
}

// Effect launches the one-shot celebration overlay
type Effect interface {
	Fire()
}

// ChangeFunc observes a completed transition
type ChangeFunc func(from, to State)

const (
	eventReveal fsm.EventID = iota + 1
	eventIntroDone
	eventOpenGift
)

// Controller advances LOCKED -> INTRO -> LETTER -> GIFT
// Transition methods called from the wrong state return false and change nothing
type Controller struct {
	machine   *fsm.Machine[*Controller]
	player    Player
	effect    Effect
	logger    *zap.Logger
	listeners []ChangeFunc
}

// NewController builds the controller in StateLocked
// player and effect may be nil
func NewController(player Player, effect Effect, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Controller{
		machine: fsm.NewMachine[*Controller](),
		player:  player,
		effect:  effect,
		logger:  logger,
	}

	for _, s := range AllStates {
		c.machine.AddState(fsm.StateID(s), s.String())
	}
	c.mustLink(StateLocked, eventReveal, StateIntro)
	c.mustLink(StateIntro, eventIntroDone, StateLetter)
	c.mustLink(StateLetter, eventOpenGift, StateGift)

	c.machine.OnEnter(fsm.StateID(StateIntro), (*Controller).startAudio)
	c.machine.OnEnter(fsm.StateID(StateGift), (*Controller).fireEffect)

	if err := c.machine.Init(c, fsm.StateID(StateLocked)); err != nil {
		panic(err)
	}
	return c
}

func (c *Controller) mustLink(from State, event fsm.EventID, to State) {
	err := c.machine.AddTransition(fsm.StateID(from), fsm.Transition[*Controller]{
		Event:  event,
		Target: fsm.StateID(to),
	})
	if err != nil {
		panic(err)
	}
}

// OnChange registers a listener called after every transition
func (c *Controller) OnChange(fn ChangeFunc) {
	c.listeners = append(c.listeners, fn)
}

// State returns the active state
func (c *Controller) State() State {
	return State(c.machine.Current())
}

// Reveal leaves LOCKED and attempts audio playback
func (c *Controller) Reveal() bool {
	return c.dispatch(eventReveal)
}

// CompleteIntro leaves INTRO for the letter
func (c *Controller) CompleteIntro() bool {
	return c.dispatch(eventIntroDone)
}

// OpenGift leaves LETTER and fires the celebration effect
func (c *Controller) OpenGift() bool {
	return c.dispatch(eventOpenGift)
}

func (c *Controller) dispatch(event fsm.EventID) bool {
	from := c.State()
	if !c.machine.HandleEvent(c, event) {
		c.logger.Debug("transition ignored",
			zap.Stringer("state", from),
			zap.Int("event", int(event)))
		return false
	}

	to := c.State()
	c.logger.Info("state changed", zap.Stringer("from", from), zap.Stringer("to", to))
	for _, fn := range c.listeners {
		fn(from, to)
	}
	return true
}

func (c *Controller) startAudio() {
	if c.player == nil {
		return
	}
	if err := c.player.Play(); err != nil {
		c.logger.Warn("audio play blocked or failed", zap.Error(err))
	}
}

func (c *Controller) fireEffect() {
	if c.effect != nil {
		c.effect.Fire()
	}
}
