// Package render turns the presentation state into terminal cells
package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/effect"
)

// scrollPadding is the number of blank rows above and below scrollable content
const scrollPadding = 2

// Rect is a screen region
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell is inside the rect
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Frame is everything the painter draws in one pass
type Frame struct {
	View     View
	Scroll   int
	Motes    []effect.MotePoint
	Confetti []effect.Particle
	Muted    bool
}

// Painter draws frames onto a tcell screen
type Painter struct {
	screen tcell.Screen
	theme  Theme

	button    Rect
	hasButton bool
	mute      Rect
	hasMute   bool
	maxScroll int
}

// NewPainter creates a painter for the screen
func NewPainter(screen tcell.Screen, theme Theme) *Painter {
	return &Painter{
		screen: screen,
		theme:  theme,
	}
}

// Paint renders the frame and returns the scroll offset actually applied
func (p *Painter) Paint(f Frame) int {
	width, height := p.screen.Size()
	state := f.View.State
	bg := p.theme.background(state)

	p.screen.SetStyle(bg)
	p.screen.Clear()
	p.hasButton = false
	p.hasMute = false

	p.drawMotes(f.Motes, bg)

	lines := layout(f.View, textWidth(width))

	var top, scroll int
	if f.View.Scrollable {
		total := len(lines) + 2*scrollPadding
		p.maxScroll = max(total-height, 0)
		scroll = min(max(f.Scroll, 0), p.maxScroll)
		top = scrollPadding - scroll
	} else {
		p.maxScroll = 0
		top = max((height-len(lines))/2, 0)
	}

	for i, ln := range lines {
		y := top + i
		if y < 0 || y >= height || ln.Text == "" {
			continue
		}
		x := centerX(ln.Text, width)
		p.drawString(x, y, ln.Text, p.theme.style(ln.Kind, state))

		if ln.Kind == KindButton {
			p.button = Rect{X: x, Y: y, W: runewidth.StringWidth(ln.Text), H: 1}
			p.hasButton = true
		}
	}

	p.drawConfetti(f.Confetti, bg, width, height)
	p.drawMuteIndicator(f.Muted, bg, width)

	p.screen.Show()
	return scroll
}

// ButtonAt reports whether the cell hits the button drawn in the last frame
func (p *Painter) ButtonAt(x, y int) bool {
	return p.hasButton && p.button.Contains(x, y)
}

// MuteAt reports whether the cell hits the mute indicator drawn in the last frame
func (p *Painter) MuteAt(x, y int) bool {
	return p.hasMute && p.mute.Contains(x, y)
}

// MaxScroll returns the largest useful scroll offset of the last frame
func (p *Painter) MaxScroll() int {
	return p.maxScroll
}

func (p *Painter) drawString(x, y int, s string, style tcell.Style) {
	width, _ := p.screen.Size()
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > width {
			return
		}
		p.screen.SetContent(x, y, r, nil, style)
		x += w
	}
}

func (p *Painter) drawMotes(motes []effect.MotePoint, bg tcell.Style) {
	for _, m := range motes {
		p.screen.SetContent(m.X, m.Y, m.Glyph, nil, bg.Foreground(grey(m.Intensity)))
	}
}

func (p *Painter) drawConfetti(particles []effect.Particle, bg tcell.Style, width, height int) {
	for _, pt := range particles {
		x, y := int(pt.X), int(pt.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			continue
		}
		p.screen.SetContent(x, y, pt.Glyph, nil, bg.Foreground(pt.Color))
	}
}

func (p *Painter) drawMuteIndicator(muted bool, bg tcell.Style, width int) {
	label := constants.MuteIndicatorOn
	if muted {
		label = constants.MuteIndicatorOff
	}
	x := width - len(label) - 1
	if x < 0 {
		return
	}
	p.drawString(x, 0, label, bg.Foreground(RgbGhost))
	p.mute = Rect{X: x, Y: 0, W: len(label), H: 1}
	p.hasMute = true
}
