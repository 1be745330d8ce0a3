package term

import (
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

const maxTextWidth = 80

// RenderMarkdown styles md for the terminal, or wraps it as dimmed plain
// text when glamour can't render it.
func RenderMarkdown(md string) string {
	width := min(GetTerminalWidth(), maxTextWidth)

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
		glamour.WithPreservedNewLines(),
	)
	if err == nil {
		var out string
		out, err = r.Render(md)
		if err == nil {
			return out
		}
	}

	log.Printf("error rendering markdown: %v\n", err)
	return plain(md, width-2)
}

func plain(s string, width int) string {
	lines := strings.Split(wordwrap.String(s, width), "\n")
	for i := range lines {
		lines[i] = "  " + lines[i]
	}

	c := "234"
	if IsDarkBg {
		c = "251"
	}
	return termenv.String(strings.Join(lines, "\n")).Foreground(termenv.ANSI256.Color(c)).String()
}
