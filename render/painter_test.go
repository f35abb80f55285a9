package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/reveal/constants"
	"github.com/lixenwraith/reveal/content"
	"github.com/lixenwraith/reveal/effect"
	"github.com/lixenwraith/reveal/presentation"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

// rows returns the screen as one string per row
func rows(screen tcell.SimulationScreen) []string {
	cells, w, h := screen.GetContents()
	out := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		out[y] = sb.String()
	}
	return out
}

func findRow(screen tcell.SimulationScreen, needle string) (int, int) {
	for y, row := range rows(screen) {
		if x := strings.Index(row, needle); x >= 0 {
			return x, y
		}
	}
	return -1, -1
}

func TestPaintLockedCentersPrompt(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPainter(screen, DefaultTheme())
	c := content.Default()

	p.Paint(Frame{View: Build(presentation.StateLocked, Progress{}, c)})

	x, y := findRow(screen, "TAP TO REVEAL")
	require.GreaterOrEqual(t, y, 0)
	assert.Equal(t, (80-len("TAP TO REVEAL"))/2, x)
	assert.InDelta(t, 12, y, 3, "locked prompt is vertically centered")

	_, by := findRow(screen, "(")
	require.Greater(t, by, y)
	assert.True(t, p.ButtonAt(40, by))
	assert.False(t, p.ButtonAt(0, by))
	assert.False(t, p.ButtonAt(40, y))
}

func TestPaintLetterScrolls(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPainter(screen, DefaultTheme())
	view := Build(presentation.StateLetter, Progress{}, content.Default())

	applied := p.Paint(Frame{View: view})
	assert.Zero(t, applied)
	_, y := findRow(screen, "Today a legend was born.")
	assert.Equal(t, scrollPadding, y)
	require.Greater(t, p.MaxScroll(), 0)
	assert.False(t, p.ButtonAt(40, 23), "button is below the fold")

	applied = p.Paint(Frame{View: view, Scroll: 10_000})
	assert.Equal(t, p.MaxScroll(), applied)

	bx, by := findRow(screen, "[ OPEN YOUR GIFT ]")
	require.GreaterOrEqual(t, by, 0)
	assert.True(t, p.ButtonAt(bx, by))

	assert.Zero(t, p.Paint(Frame{View: view, Scroll: -5}))
}

func TestPaintGiftShowsClosing(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPainter(screen, DefaultTheme())
	view := Build(presentation.StateGift, Progress{}, content.Default())

	p.Paint(Frame{View: view, Scroll: 10_000})

	_, y := findRow(screen, "Until you win.")
	assert.GreaterOrEqual(t, y, 0)
	_, y = findRow(screen, "OPEN YOUR GIFT")
	assert.Equal(t, -1, y)

	for x := 0; x < 80; x++ {
		for yy := 0; yy < 24; yy++ {
			assert.False(t, p.ButtonAt(x, yy))
		}
	}

	cells, w, _ := screen.GetContents()
	_, cellBg, _ := cells[w*23].Style.Decompose()
	assert.Equal(t, RgbBackgroundGift, cellBg)
}

func TestPaintWrapsLongParagraphs(t *testing.T) {
	screen := newScreen(t, 40, 60)
	p := NewPainter(screen, DefaultTheme())
	view := Build(presentation.StateLetter, Progress{}, content.Default())
	p.Paint(Frame{View: view})

	for _, row := range rows(screen) {
		trimmed := strings.TrimRight(row, " ")
		assert.LessOrEqual(t, len([]rune(trimmed)), 40)
	}
	_, y := findRow(screen, "You are chaos and calm in one")
	assert.GreaterOrEqual(t, y, 0)
}

func TestPaintMuteIndicator(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPainter(screen, DefaultTheme())
	view := Build(presentation.StateLocked, Progress{}, content.Default())

	p.Paint(Frame{View: view, Muted: false})
	_, y := findRow(screen, constants.MuteIndicatorOn)
	assert.Zero(t, y)

	p.Paint(Frame{View: view, Muted: true})
	x, y := findRow(screen, constants.MuteIndicatorOff)
	assert.Zero(t, y)

	assert.True(t, p.MuteAt(x, 0))
	assert.True(t, p.MuteAt(x+len(constants.MuteIndicatorOff)-1, 0))
	assert.False(t, p.MuteAt(x-1, 0))
	assert.False(t, p.MuteAt(x, 1))
	assert.False(t, p.ButtonAt(x, 0))
}

func TestPaintParticles(t *testing.T) {
	screen := newScreen(t, 80, 24)
	p := NewPainter(screen, DefaultTheme())
	view := Build(presentation.StateGift, Progress{}, content.Default())

	p.Paint(Frame{
		View: view,
		Motes: []effect.MotePoint{
			{X: 1, Y: 22, Glyph: '·', Intensity: 0.3},
		},
		Confetti: []effect.Particle{
			{X: 3.7, Y: 21.2, Glyph: '◆', Color: RgbGold, Born: time.Now()},
			{X: -1, Y: 5, Glyph: '◆'},
		},
	})

	grid := rows(screen)
	assert.Equal(t, '·', []rune(grid[22])[1])
	assert.Equal(t, '◆', []rune(grid[21])[3])
}
