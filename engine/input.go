package engine

import "github.com/gdamore/tcell/v2"

// Action is a semantic input independent of the device that produced it
type Action int

const (
	ActionNone Action = iota
	ActionActivate
	ActionToggleMute
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionTop
	ActionBottom
	ActionQuit
)

// KeyAction maps a key press to its action
func KeyAction(key tcell.Key, r rune) Action {
	switch key {
	case tcell.KeyEnter:
		return ActionActivate
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyUp:
		return ActionScrollUp
	case tcell.KeyDown:
		return ActionScrollDown
	case tcell.KeyPgUp:
		return ActionPageUp
	case tcell.KeyPgDn:
		return ActionPageDown
	case tcell.KeyHome:
		return ActionTop
	case tcell.KeyEnd:
		return ActionBottom
	case tcell.KeyRune:
		switch r {
		case ' ':
			return ActionActivate
		case 'm', 'M':
			return ActionToggleMute
		case 'q', 'Q':
			return ActionQuit
		case 'k':
			return ActionScrollUp
		case 'j':
			return ActionScrollDown
		case 'g':
			return ActionTop
		case 'G':
			return ActionBottom
		}
	}
	return ActionNone
}
