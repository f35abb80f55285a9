package constants

import "time"

// Session Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// CallbackQueueSize is the buffer of timer callbacks waiting for the session loop
	CallbackQueueSize = 16

	// EventQueueSize is the buffer of terminal events waiting for the session loop
	EventQueueSize = 100
)
