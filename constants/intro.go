package constants

import "time"

// Intro Sequence Timing
const (
	// IntroLineDelay is the pause between two revealed intro lines
	IntroLineDelay = 2800 * time.Millisecond

	// IntroTitleDelay is the pause after the last line before the title replaces the lines
	IntroTitleDelay = 1200 * time.Millisecond

	// IntroTitleHold is how long the title stays before the letter opens
	IntroTitleHold = 4500 * time.Millisecond
)
