package fsm

import "fmt"

// AddState registers a named state; re-adding an id replaces it
func (m *Machine[T]) AddState(id StateID, name string) *Node[T] {
	node := &Node[T]{
		ID:          id,
		Name:        name,
		Transitions: make([]Transition[T], 0),
	}
	m.nodes[id] = node
	return node
}

// AddTransition links sourceID to t.Target on t.Event; both states must exist
func (m *Machine[T]) AddTransition(sourceID StateID, t Transition[T]) error {
	node, ok := m.nodes[sourceID]
	if !ok {
		return fmt.Errorf("transition source %d not found", sourceID)
	}
	if _, ok := m.nodes[t.Target]; !ok {
		return fmt.Errorf("transition target %d not found", t.Target)
	}
	node.Transitions = append(node.Transitions, t)
	return nil
}

// OnEnter appends an entry action to a node
func (m *Machine[T]) OnEnter(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnEnter = append(node.OnEnter, fn)
	}
}

// OnExit appends an exit action to a node
func (m *Machine[T]) OnExit(id StateID, fn ActionFunc[T]) {
	if node, ok := m.nodes[id]; ok {
		node.OnExit = append(node.OnExit, fn)
	}
}
