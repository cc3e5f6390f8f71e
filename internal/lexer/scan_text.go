package lexer

import (
	"druim/internal/token"
)

// scanText scans a `"`-delimited text literal. No escapes. Token.Text
// holds the content without the quotes; Pos points at the opening
// quote so diagnostics land there.
func (lx *Lexer) scanText() (token.Token, *LexError) {
	openPos := lx.cursor.Off
	lx.cursor.Bump() // opening '"'
	start := lx.cursor.Mark()

	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' {
		lx.cursor.Bump()
	}
	if lx.cursor.EOF() {
		return token.Token{}, &LexError{Kind: ErrUnterminatedText, Pos: openPos}
	}

	text := lx.cursor.Slice(start)
	lx.cursor.Bump() // closing '"'
	return token.Token{Kind: token.TextLit, Text: text, Pos: openPos}, nil
}
