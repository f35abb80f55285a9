package render

import (
	"github.com/lixenwraith/reveal/content"
	"github.com/lixenwraith/reveal/presentation"
)

// Kind selects the style and spacing of a block
type Kind int

const (
	KindPrompt Kind = iota
	KindButton
	KindIntroLine
	KindTitle
	KindHint
	KindParagraph
	KindHighlight
	KindQuote
	KindPromise
	KindHeadline
	KindFooter
)

// Block is one piece of visible text
type Block struct {
	Kind Kind
	Text string
}

// Progress is the intro sequencer position needed to render INTRO
type Progress struct {
	Visible    int
	TitleShown bool
}

// View is everything visible in one state, top to bottom
type View struct {
	State      presentation.State
	Blocks     []Block
	Scrollable bool
}

// HasButton reports whether the view carries a clickable block
func (v View) HasButton() bool {
	for _, b := range v.Blocks {
		if b.Kind == KindButton {
			return true
		}
	}
	return false
}

// Build maps a state to its visible content
func Build(state presentation.State, progress Progress, c *content.Content) View {
	v := View{State: state}

	switch state {
	case presentation.StateLocked:
		v.Blocks = []Block{
			{Kind: KindPrompt, Text: c.LockedPrompt},
			{Kind: KindButton, Text: c.LockedButton},
		}

	case presentation.StateIntro:
		if progress.TitleShown {
			v.Blocks = []Block{
				{Kind: KindTitle, Text: c.Title},
				{Kind: KindHint, Text: c.TitleHint},
			}
			break
		}
		visible := min(max(progress.Visible, 0), len(c.IntroLines))
		for _, line := range c.IntroLines[:visible] {
			v.Blocks = append(v.Blocks, Block{Kind: KindIntroLine, Text: line})
		}

	case presentation.StateLetter, presentation.StateGift:
		v.Scrollable = true
		for _, p := range c.Paragraphs {
			kind := KindParagraph
			if p.Highlight {
				kind = KindHighlight
			}
			v.Blocks = append(v.Blocks, Block{Kind: kind, Text: p.Text})
		}

		if state == presentation.StateLetter {
			v.Blocks = append(v.Blocks, Block{Kind: KindButton, Text: c.GiftButton})
			break
		}

		for _, line := range c.Closing.Quote {
			v.Blocks = append(v.Blocks, Block{Kind: KindQuote, Text: line})
		}
		v.Blocks = append(v.Blocks,
			Block{Kind: KindPromise, Text: c.Closing.Promise},
			Block{Kind: KindHeadline, Text: c.Closing.Headline},
			Block{Kind: KindFooter, Text: c.Closing.Footer},
		)
	}

	return v
}
