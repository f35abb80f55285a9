package render

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reveal/constants"
)

// line is one wrapped row of a block
type line struct {
	Text string
	Kind Kind
}

// gapBefore is the number of blank rows inserted above a block of kind k
func gapBefore(k Kind, prev Kind, first bool) int {
	if first {
		return 0
	}
	switch {
	case k == KindQuote && prev == KindQuote:
		return 0
	case k == KindFooter && prev == KindHeadline:
		return 0
	case k == KindHighlight, prev == KindHighlight,
		k == KindButton, k == KindQuote, k == KindPromise, k == KindHeadline:
		return constants.HighlightGap
	}
	return constants.ParagraphGap
}

// textWidth returns the column width for a screen width
func textWidth(screenWidth int) int {
	w := min(constants.TextMaxWidth, screenWidth-2*constants.TextMargin)
	return max(w, 1)
}

// layout wraps every block to width and inserts gaps
func layout(v View, width int) []line {
	var lines []line
	for i, b := range v.Blocks {
		prev := KindParagraph
		if i > 0 {
			prev = v.Blocks[i-1].Kind
		}
		for g := gapBefore(b.Kind, prev, i == 0); g > 0; g-- {
			lines = append(lines, line{Kind: b.Kind})
		}

		for _, row := range strings.Split(text.WrapSoft(b.Text, width), "\n") {
			lines = append(lines, line{Text: strings.TrimSpace(row), Kind: b.Kind})
		}
	}
	return lines
}

// centerX returns the column that centers s on a screen of the given width
func centerX(s string, width int) int {
	return max((width-runewidth.StringWidth(s))/2, 0)
}
