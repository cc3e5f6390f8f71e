package lexer

import (
	"druim/internal/token"
)

// scanIdentOrKeyword scans a letter/underscore-leading run and checks
// it against the keyword table. Identifiers are ASCII only.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	text := lx.cursor.Slice(start)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Text: text, Pos: uint32(start)}
	}
	return token.Token{Kind: token.Ident, Text: text, Pos: uint32(start)}
}

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }
