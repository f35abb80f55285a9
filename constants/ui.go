package constants

// UI Layout Constants
const (
	// TextMaxWidth caps the column width of intro and letter text
	TextMaxWidth = 64

	// TextMargin is kept free on both sides when the screen is narrower than TextMaxWidth
	TextMargin = 4

	// ParagraphGap is the number of blank rows between letter paragraphs
	ParagraphGap = 1

	// HighlightGap is the number of blank rows around a highlighted paragraph
	HighlightGap = 2

	// ScrollStep is the number of rows moved per arrow key or wheel tick
	ScrollStep = 1

	// MuteIndicatorOn and MuteIndicatorOff label the audio toggle in the corner
	MuteIndicatorOn  = "[m] sound on "
	MuteIndicatorOff = "[m] sound off"
)
