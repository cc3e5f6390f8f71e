package diagfmt

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"druim/internal/source"
	"druim/internal/token"
)

// DumpTokens renders a lexed token sequence as an aligned table for
// the tokenize command. Column widths are measured in display cells so
// wide runes inside text literals keep the table straight.
func DumpTokens(toks []token.Token, src *source.Source) string {
	kindW := len("KIND")
	textW := len("TEXT")
	for _, t := range toks {
		if w := len(t.Kind.String()); w > kindW {
			kindW = w
		}
		if w := runewidth.StringWidth(displayText(t)); w > textW {
			textW = w
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s  %-*s  %s\n", kindW, "KIND", textW, "TEXT", "POS")
	for _, t := range toks {
		line, col := src.LineCol(t.Pos)
		text := displayText(t)
		pad := textW - runewidth.StringWidth(text)
		fmt.Fprintf(&b, "%-*s  %s%s  %d:%d\n",
			kindW, t.Kind.String(), text, strings.Repeat(" ", pad), line, col)
	}
	return b.String()
}

func displayText(t token.Token) string {
	if t.Kind == token.TextLit {
		return `"` + t.Text + `"`
	}
	return t.Text
}
