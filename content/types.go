package content

// Paragraph is one block of the letter body
type Paragraph struct {
	Text      string `toml:"text"`
	Highlight bool   `toml:"highlight,omitempty"`
}

// Closing is the message shown once the gift is opened
type Closing struct {
	Quote    []string `toml:"quote"`
	Promise  string   `toml:"promise"`
	Headline string   `toml:"headline"`
	Footer   string   `toml:"footer"`
}

// Content is the complete, immutable text of one presentation
type Content struct {
	LockedPrompt string      `toml:"locked_prompt"`
	LockedButton string      `toml:"locked_button"`
	IntroLines   []string    `toml:"intro_lines"`
	Title        string      `toml:"title"`
	TitleHint    string      `toml:"title_hint"`
	Paragraphs   []Paragraph `toml:"paragraphs"`
	GiftButton   string      `toml:"gift_button"`
	Closing      Closing     `toml:"closing"`
}
