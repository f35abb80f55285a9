package content

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid content")

// Load reads a content file and overlays it on Default
// An empty path returns Default unchanged; fields absent from the file keep their default
func Load(path string) (*Content, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content file: %w", err)
	}
	defer file.Close()

	var f contentFile
	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode content file %s: %w", path, err)
	}

	f.overlay(c)
	c.normalize()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// contentFile mirrors Content with optional fields so absent keys keep their default
type contentFile struct {
	LockedPrompt *string     `toml:"locked_prompt"`
	LockedButton *string     `toml:"locked_button"`
	IntroLines   []string    `toml:"intro_lines"`
	Title        *string     `toml:"title"`
	TitleHint    *string     `toml:"title_hint"`
	Paragraphs   []Paragraph `toml:"paragraphs"`
	GiftButton   *string     `toml:"gift_button"`
	Closing      *struct {
		Quote    []string `toml:"quote"`
		Promise  *string  `toml:"promise"`
		Headline *string  `toml:"headline"`
		Footer   *string  `toml:"footer"`
	} `toml:"closing"`
}

func (f *contentFile) overlay(c *Content) {
	setString(&c.LockedPrompt, f.LockedPrompt)
	setString(&c.LockedButton, f.LockedButton)
	setString(&c.Title, f.Title)
	setString(&c.TitleHint, f.TitleHint)
	setString(&c.GiftButton, f.GiftButton)
	if f.IntroLines != nil {
		c.IntroLines = f.IntroLines
	}
	if f.Paragraphs != nil {
		c.Paragraphs = f.Paragraphs
	}
	if f.Closing != nil {
		if f.Closing.Quote != nil {
			c.Closing.Quote = f.Closing.Quote
		}
		setString(&c.Closing.Promise, f.Closing.Promise)
		setString(&c.Closing.Headline, f.Closing.Headline)
		setString(&c.Closing.Footer, f.Closing.Footer)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// Validate checks the fields every state needs to render
func (c *Content) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("%w: title is empty", ErrInvalid)
	}
	if len(c.Paragraphs) == 0 {
		return fmt.Errorf("%w: letter has no paragraphs", ErrInvalid)
	}
	for i, p := range c.Paragraphs {
		if strings.TrimSpace(p.Text) == "" {
			return fmt.Errorf("%w: paragraph %d is empty", ErrInvalid, i+1)
		}
	}
	if strings.TrimSpace(c.GiftButton) == "" {
		return fmt.Errorf("%w: gift button label is empty", ErrInvalid)
	}
	return nil
}

// normalize drops blank intro lines and trims surrounding whitespace
func (c *Content) normalize() {
	lines := c.IntroLines[:0]
	for _, line := range c.IntroLines {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	c.IntroLines = lines

	for i := range c.Paragraphs {
		c.Paragraphs[i].Text = strings.TrimSpace(c.Paragraphs[i].Text)
	}
}
