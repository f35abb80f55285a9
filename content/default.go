package content

// Default returns the built-in presentation text
func Default() *Content {
	return &Content{
		LockedPrompt: "TAP TO REVEAL",
		LockedButton: "( ● )",
		IntroLines: []string{
			"Today...",
			"A legend was born.",
			"Not the loud kind.",
			"The rare kind.",
			"The kind that fought her way into existence.",
		},
		Title:     "Hey Klara ✨",
		TitleHint: "SCROLL TO READ",
		Paragraphs: []Paragraph{
			{Text: "Today a legend was born."},
			{Text: "Not the loud kind. Not the ones the world immediately understands."},
			{Text: "But the rare kind. The kind that fights her way into existence."},
			{Text: "Hey Klara ✨\U0001F382", Highlight: true},
			{Text: "You didn’t just arrive on earth. You fought your way here."},
			{Text: "Through pressure. Through expectations. Through silent battles no one sees."},
			{Text: "And somehow… you still carry softness in your heart."},
			{Text: "You are chaos and calm in one body. Playful but deep. Sensitive but strong. Multi-talented but still humble about it."},
			{Text: "You feel everything. You care deeply. You support people even when you’re the one breaking inside."},
			{Text: "That’s rare."},
			{Text: "The world sees your smile. I see the weight you carry behind it."},
			{Text: "And still… you show up. You try. You survive. You love."},
			{Text: "That’s strength."},
			{Text: "Not the loud type. The quiet, legendary type."},
			{Text: "If life has been heavy lately… If pressure feels like it’s sitting on your chest… If you sometimes wonder whether you’re doing enough —"},
			{Text: "You are.", Highlight: true},
			{Text: "More than enough."},
			{Text: "And I know you go through a lot. More than you say. More than you show."},
			{Text: "But hear me clearly:"},
			{Text: "You don’t have to fight everything alone.", Highlight: true},
			{Text: "I’m here."},
			{Text: "Not just on easy days. Not just when you’re playful and bright."},
			{Text: "I’m here when it’s messy. When it’s overwhelming. When you feel too sensitive for this world."},
			{Text: "Because the world may not always understand your chaos… but it needs your light."},
		},
		GiftButton: "[ OPEN YOUR GIFT ]",
		Closing: Closing{
			Quote: []string{
				"“I’ll keep praying for you.",
				"Quietly. Consistently.",
				"Until everything you deserve starts choosing you.”",
			},
			Promise:  "Until you win.",
			Headline: "Happy Birthday, Klara \U0001F31F",
			Footer:   "YOU ARE AND ALWAYS WILL BE ENOUGH",
		},
	}
}
