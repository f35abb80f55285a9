package fsm

// StateID is a unique identifier for a node
type StateID int

// EventID identifies an external trigger routed through HandleEvent
type EventID int

const StateNone StateID = -1

// Machine is a flat, event-driven finite state machine
// T is the context type passed to actions and guards
type Machine[T any] struct {
	// Graph data, immutable after Init
	nodes map[StateID]*Node[T]

	// Runtime state
	activeStateID StateID
	initialized   bool
}

// Node represents a single state
type Node[T any] struct {
	ID   StateID
	Name string

	// Lifecycle actions
	OnEnter []ActionFunc[T]
	OnExit  []ActionFunc[T]

	// Transitions in evaluation order
	Transitions []Transition[T]
}

// Transition defines an event-triggered link between states
type Transition[T any] struct {
	Event  EventID
	Target StateID
	Guard  GuardFunc[T] // nil = always true
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T)
