package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/reveal/config"
	"github.com/lixenwraith/reveal/content"
)

func newPrintCommand(opts *options) *cobra.Command {
	var (
		width   int
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the whole letter to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			path := cfg.ContentFile
			if cmd.Flags().Changed("content") {
				path = opts.contentPath
			}

			letter, err := content.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			return printLetter(out, letter, width, !noColor && shouldColorize(out))
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 72, "wrap width")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable ANSI colors")
	return cmd
}

type printer struct {
	w     io.Writer
	width int
	color bool
	err   error
}

func (p *printer) line(s string, colors text.Colors) {
	if p.err != nil {
		return
	}
	for _, ln := range strings.Split(text.WrapSoft(s, p.width), "\n") {
		ln = strings.TrimRight(text.AlignCenter.Apply(strings.TrimSpace(ln), p.width), " ")
		if p.color && len(colors) > 0 && ln != "" {
			ln = colors.Sprint(ln)
		}
		if _, err := fmt.Fprintln(p.w, ln); err != nil {
			p.err = err
			return
		}
	}
}

func (p *printer) blank() {
	p.line("", nil)
}

// printLetter writes every part of the presentation in reading order
func printLetter(w io.Writer, c *content.Content, width int, color bool) error {
	if width <= 0 {
		width = 72
	}
	p := &printer{w: w, width: width, color: color}

	gold := text.Colors{text.FgHiYellow, text.Bold}
	soft := text.Colors{text.Faint}
	italic := text.Colors{text.Italic}

	for _, line := range c.IntroLines {
		p.line(line, soft)
	}
	p.blank()
	p.line(c.Title, gold)
	p.blank()

	for _, para := range c.Paragraphs {
		if para.Highlight {
			p.line(para.Text, gold)
		} else {
			p.line(para.Text, nil)
		}
		p.blank()
	}

	for _, line := range c.Closing.Quote {
		p.line(line, italic)
	}
	p.blank()
	p.line(c.Closing.Promise, gold)
	p.blank()
	p.line(c.Closing.Headline, gold)
	p.line(c.Closing.Footer, soft)

	return p.err
}
