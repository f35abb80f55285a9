package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/reveal/presentation"
)

// RGB color definitions
var (
	RgbBackground     = tcell.NewRGBColor(10, 10, 10)    // Near black
	RgbBackgroundGift = tcell.NewRGBColor(26, 20, 10)    // Warm dark brown once the gift is open
	RgbGold           = tcell.NewRGBColor(212, 175, 55)  // Promise and button accent
	RgbWhite          = tcell.NewRGBColor(255, 255, 255) // Titles
	RgbSoft           = tcell.NewRGBColor(179, 179, 179) // Intro lines, quote
	RgbMuted          = tcell.NewRGBColor(153, 153, 153) // Body paragraphs
	RgbFaint          = tcell.NewRGBColor(102, 102, 102) // Prompt
	RgbGhost          = tcell.NewRGBColor(77, 77, 77)    // Hints, footer, mute indicator
)

// Theme maps block kinds to styles
type Theme struct {
	Base   tcell.Style
	Styles map[Kind]tcell.Style
}

// DefaultTheme returns the dark theme
func DefaultTheme() Theme {
	base := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMuted)
	return Theme{
		Base: base,
		Styles: map[Kind]tcell.Style{
			KindPrompt:    base.Foreground(RgbFaint),
			KindButton:    base.Foreground(RgbWhite).Bold(true),
			KindIntroLine: base.Foreground(RgbSoft).Italic(true),
			KindTitle:     base.Foreground(RgbWhite).Bold(true),
			KindHint:      base.Foreground(RgbGhost),
			KindParagraph: base.Foreground(RgbMuted),
			KindHighlight: base.Foreground(RgbWhite).Bold(true).Italic(true),
			KindQuote:     base.Foreground(RgbSoft).Italic(true),
			KindPromise:   base.Foreground(RgbGold).Bold(true),
			KindHeadline:  base.Foreground(RgbWhite).Bold(true),
			KindFooter:    base.Foreground(RgbGhost),
		},
	}
}

// background returns the screen fill for a state
func (t Theme) background(state presentation.State) tcell.Style {
	if state == presentation.StateGift {
		return t.Base.Background(RgbBackgroundGift)
	}
	return t.Base
}

// style returns the block style on the state background
func (t Theme) style(kind Kind, state presentation.State) tcell.Style {
	s, ok := t.Styles[kind]
	if !ok {
		s = t.Base
	}
	_, bg, _ := t.background(state).Decompose()
	return s.Background(bg)
}

// grey returns a neutral color at the given brightness in [0,1]
func grey(intensity float64) tcell.Color {
	v := int32(min(max(intensity, 0), 1) * 255)
	return tcell.NewRGBColor(v, v, v)
}
