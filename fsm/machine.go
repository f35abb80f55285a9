package fsm

import "fmt"

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:         make(map[StateID]*Node[T]),
		activeStateID: StateNone,
	}
}

// Init enters the initial state, running its entry actions
func (m *Machine[T]) Init(ctx T, initial StateID) error {
	if m.initialized {
		return fmt.Errorf("FSM already initialized")
	}
	node, ok := m.nodes[initial]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", initial)
	}

	m.activeStateID = initial
	m.initialized = true
	for _, action := range node.OnEnter {
		action(ctx)
	}
	return nil
}

// HandleEvent routes an external event from the active state
// Returns true if the event triggered a transition; unmatched events leave the machine untouched
func (m *Machine[T]) HandleEvent(ctx T, event EventID) bool {
	if !m.initialized {
		return false
	}

	node := m.nodes[m.activeStateID]
	for _, trans := range node.Transitions {
		if trans.Event != event {
			continue
		}
		if trans.Guard != nil && !trans.Guard(ctx) {
			continue
		}
		m.transition(ctx, node, trans.Target)
		return true
	}
	return false
}

// transition performs the state change: exit actions, switch, entry actions
func (m *Machine[T]) transition(ctx T, from *Node[T], targetID StateID) {
	target := m.nodes[targetID]

	for _, action := range from.OnExit {
		action(ctx)
	}

	m.activeStateID = targetID

	for _, action := range target.OnEnter {
		action(ctx)
	}
}

// Current returns the active state, StateNone before Init
func (m *Machine[T]) Current() StateID {
	return m.activeStateID
}

// StateName returns the name of a state, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}
